package curvekit

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestLogger_SetAndRestore(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	b := NewBuilder()
	b.Append(Pt(0, 0))
	b.Append(Pt(10, 10))

	if !strings.Contains(buf.String(), "curve rebuilt") {
		t.Errorf("expected rebuild debug log, got: %q", buf.String())
	}
}
