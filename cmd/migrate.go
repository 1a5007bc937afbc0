package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appserver "github.com/eslsoft/curriculum/internal/app/server"
	"github.com/eslsoft/curriculum/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client, err := appserver.OpenClient(cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Schema.Create(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
