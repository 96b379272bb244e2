package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// discardLogger returns a logger for tests that should stay quiet.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden detail")
	logger.Info("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden detail") {
		t.Error("debug output should be filtered at info level")
	}
	if !strings.Contains(out, "visible message") {
		t.Error("info output should pass at info level")
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	logger.Debug("resolver details")
	if !strings.Contains(buf.String(), "resolver details") {
		t.Error("debug output should pass at debug level")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	p.done("Rendered 2 artifacts")

	out := buf.String()
	if !strings.Contains(out, "Rendered 2 artifacts") {
		t.Errorf("progress output %q should contain the message", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("progress output %q should contain the elapsed time", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := discardLogger()
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext should fall back to a usable logger")
	}
}
