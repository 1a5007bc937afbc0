package server

import (
	"net/http"

	protovalidate "buf.build/go/protovalidate"
	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/eslsoft/curriculum/internal/adapter/transport"
	"github.com/eslsoft/curriculum/internal/config"
	"github.com/eslsoft/curriculum/pkg/api/course/v1/coursev1connect"
)

// NewHTTPHandler wires the Connect handlers into a ServeMux ready for serving.
func NewHTTPHandler(
	cfg config.Config,
	handler *transport.CourseHandler,
	validator protovalidate.Validator,
	tracerProvider trace.TracerProvider,
	logger *zap.Logger,
) (http.Handler, error) {
	tracing, err := otelconnect.NewInterceptor(
		otelconnect.WithTracerProvider(tracerProvider),
		otelconnect.WithoutMetrics(),
	)
	if err != nil {
		return nil, err
	}

	interceptors := connect.WithInterceptors(
		tracing,
		transport.NewLoggingInterceptor(logger),
		transport.NewErrorInterceptor(),
		transport.NewAuthInterceptor(cfg.AuthJWTSecret),
		transport.NewValidationInterceptor(validator),
	)

	mux := http.NewServeMux()

	path, svc := coursev1connect.NewCourseServiceHandler(handler, interceptors)
	logger.Debug("mounted service", zap.String("path", path))
	mux.Handle(path, svc)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Grpc-Status", "Grpc-Message"},
	}).Handler(mux), nil
}
