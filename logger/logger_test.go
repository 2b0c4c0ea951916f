package logger_test

import (
	"bytes"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/switchback/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger_test\.go:\d+`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestSwitchbackLoggerLevels(t *testing.T) {
	b := new(bytes.Buffer)
	l := logger.New(
		logger.WithLogger(newTestLogger(b)),
		logger.WithLevel(logger.LogLevelWarn),
	)

	l.Debug("quiet", nil)
	l.Info("quiet", nil)
	require.Zero(t, b.Len())

	l.Warn("louder", nil)
	require.Contains(t, b.String(), "[WARN]")
	require.Contains(t, b.String(), "'louder'")

	l.Error("loudest", nil)
	require.Contains(t, b.String(), "[ERROR]")
	require.Contains(t, b.String(), "'loudest'")
}

func TestSwitchbackLoggerCallSite(t *testing.T) {
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	l.Info("test", nil)
	require.Regexp(t, logLevelRegexp, b.String())
	require.Regexp(t, fpRegexp, b.String())
}

func TestSwitchbackLoggerContext(t *testing.T) {
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	l.Info("test", &logger.LogContext{Data: map[string]any{"route": "/trails"}})
	require.Contains(t, b.String(), "log_context:")
	require.Contains(t, b.String(), `/trails`)
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		name     string
		val      string
		expected logger.LogLevel
	}{
		{"Debug", "DEBUG", logger.LogLevelDebug},
		{"Info", "INFO", logger.LogLevelInfo},
		{"Warn", "WARN", logger.LogLevelWarn},
		{"Error", "ERROR", logger.LogLevelError},
		{"Fatal", "FATAL", logger.LogLevelFatal},
		{"Unknown", "whatever", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}
