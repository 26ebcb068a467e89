package logger

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// observe installs an in-memory core as the root logger and returns its logs.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	resetLogger()

	core, logs := observer.New(zapcore.DebugLevel)
	baseLogger = zap.New(core).Sugar()
	t.Cleanup(resetLogger)

	return logs
}

func TestInit(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run("successful initialization with "+level+" level", func(t *testing.T) {
			resetLogger()
			err := Init(level)
			require.NoError(t, err)
			assert.NotNil(t, baseLogger)
		})
	}

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		err := Init("invalid")
		assert.Error(t, err)
		assert.Nil(t, baseLogger)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		err1 := Init("debug")
		require.NoError(t, err1)
		firstLogger := baseLogger

		err2 := Init("error")
		require.NoError(t, err2)
		assert.Equal(t, firstLogger, baseLogger, "Init() should only initialize once")
	})
}

func TestDeriveFromCtx(t *testing.T) {
	t.Run("adds span identifiers when the context carries a span", func(t *testing.T) {
		logs := observe(t)

		tp := sdktrace.NewTracerProvider()
		defer func() { _ = tp.Shutdown(context.Background()) }()

		ctx, span := tp.Tracer("test").Start(t.Context(), "test-span")
		defer span.End()

		deriveFromCtx(ctx, "key", "value").Info("hello")

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
		assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
		assert.Equal(t, "value", fields["key"])
	})

	t.Run("omits span identifiers without a span", func(t *testing.T) {
		logs := observe(t)

		deriveFromCtx(t.Context()).Info("hello")

		require.Equal(t, 1, logs.Len())
		assert.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
	})

	t.Run("falls back to a no-op logger before Init", func(t *testing.T) {
		resetLogger()
		assert.NotPanics(t, func() {
			deriveFromCtx(t.Context(), "key", "value").Info("dropped")
		})
	})
}

func TestDerive(t *testing.T) {
	t.Run("derived fields are attached to every entry", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "wallet", "treasury")
		ctx = Derive(ctx, "contract", "Staking MAYZ")
		Info(ctx, "scanned", "utxos", 3)

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "treasury", fields["wallet"])
		assert.Equal(t, "Staking MAYZ", fields["contract"])
		assert.EqualValues(t, 3, fields["utxos"])
	})

	t.Run("derive context stores a sugared logger", func(t *testing.T) {
		observe(t)

		derivedCtx := Derive(t.Context())

		l, ok := derivedCtx.Value(ctxKey).(*zap.SugaredLogger)
		assert.True(t, ok)
		assert.NotNil(t, l)
	})
}

func TestSync(t *testing.T) {
	t.Run("sync after init", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("info"))

		assert.NotPanics(t, func() {
			_ = Sync()
		})
	})

	t.Run("sync without init is a no-op", func(t *testing.T) {
		resetLogger()
		assert.NoError(t, Sync())
	})
}

func TestLevels(t *testing.T) {
	logs := observe(t)
	ctx := t.Context()

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "warn message", entries[2].Message)
}

func TestFatal(t *testing.T) {
	t.Run("fatal exits with code 1", func(t *testing.T) {
		if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
			_ = Init("debug")
			Fatal(context.Background(), "fatal error for test", "key", "value")
			return
		}

		cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
		cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		err := cmd.Run()
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "the subprocess should exit with a non-zero status")
		assert.Equal(t, 1, exitErr.ExitCode(), "logger.Fatal should terminate with exit code 1")
		assert.Contains(t, stderr.String(), `"level":"fatal"`)
		assert.Contains(t, stderr.String(), `"key":"value"`)
		assert.NotContains(t, stdout.String(), `"level":"fatal"`)
	})
}
