package main

import "github.com/eslsoft/curriculum/cmd"

//go:generate go tool buf generate

func main() {
	cmd.Execute()
}
