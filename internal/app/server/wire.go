//go:build wireinject

package server

import (
	"github.com/google/wire"

	"github.com/eslsoft/curriculum/internal/adapter/db"
	adaptertransport "github.com/eslsoft/curriculum/internal/adapter/transport"
	"github.com/eslsoft/curriculum/internal/core"
	"github.com/eslsoft/curriculum/internal/usecase"
)

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, func(), error) {
	wire.Build(
		NewConfig,
		NewLogger,
		NewEntClient,
		wire.Bind(new(core.CourseRepository), new(*db.CourseRepository)),
		db.NewCourseRepository,
		NewCourseLocker,
		wire.Bind(new(core.CourseService), new(*usecase.CourseService)),
		usecase.NewCourseService,
		adaptertransport.NewCourseHandler,
		NewProtoValidator,
		NewTracerProvider,
		NewHTTPHandler,
		NewServer,
	)
	return nil, nil, nil
}
