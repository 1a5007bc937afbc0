package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "production", ""} {
		logger, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) error = %v", mode, err)
		}
		if logger == nil {
			t.Fatalf("New(%q) returned nil logger", mode)
		}
	}

	dev, _ := New("Development")
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected development logger to enable debug level")
	}
	prod, _ := New("production")
	if prod.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected production logger to skip debug level")
	}
}
