package observability

import (
	"context"
	"testing"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, shutdown, err := NewTracerProvider(false)
	if err != nil {
		t.Fatalf("NewTracerProvider() error = %v", err)
	}
	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	if span.IsRecording() {
		t.Fatal("expected disabled provider not to record spans")
	}
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	tp, shutdown, err := NewTracerProvider(true)
	if err != nil {
		t.Fatalf("NewTracerProvider() error = %v", err)
	}
	_, span := tp.Tracer("test").Start(context.Background(), "recorded")
	if !span.IsRecording() {
		t.Fatal("expected enabled provider to record spans")
	}
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}
}
