package transport

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

// NewLoggingInterceptor logs every unary call with its outcome code and latency.
func NewLoggingInterceptor(logger *zap.Logger) connect.Interceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("rpc")
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("procedure", req.Spec().Procedure),
				zap.Duration("duration", time.Since(start)),
			}
			if err == nil {
				logger.Info("rpc completed", fields...)
				return res, nil
			}

			code := connect.CodeOf(err)
			fields = append(fields, zap.String("code", code.String()), zap.Error(err))
			switch code {
			case connect.CodeInternal, connect.CodeUnavailable, connect.CodeUnknown:
				logger.Error("rpc failed", fields...)
			default:
				logger.Info("rpc rejected", fields...)
			}
			return nil, err
		}
	})
}
