package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a zap logger. "development" selects the console encoder at debug level;
// any other mode selects the JSON production config.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}
	return cfg.Build()
}
