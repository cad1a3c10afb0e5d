package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, dev := range []bool{true, false} {
		logger, err := New("warn", dev)
		if err != nil {
			t.Fatalf("New(warn, %v): %v", dev, err)
		}
		if logger.Core().Enabled(zapcore.InfoLevel) || !logger.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("level not applied (dev=%v)", dev)
		}
	}
	if _, err := New("loud", true); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
