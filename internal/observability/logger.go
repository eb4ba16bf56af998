package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It is a no-op until one of the Init
// functions replaces it.
var Logger = zap.NewNop()

// InitLogger installs a JSON production logger writing to stdout.
func InitLogger() error {
	var err error

	Logger, err = zap.NewProduction()
	if err != nil {
		return err
	}

	return nil
}

// InitFileLogger installs a production logger writing to path. An empty
// path keeps logging disabled, which is what a full-screen terminal UI
// needs when no log file was asked for.
func InitFileLogger(path string) error {
	if path == "" {
		Logger = zap.NewNop()
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = logger
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger carrying trace_id and span_id from
// the active span in ctx, or Logger itself when there is none.
//
// ctx is also attached as a zap.Any("context", ctx) field. The otelzap core
// installed by InitLogging recognises a context.Context field and emits the
// record under it, so exported OTLP logs carry the native TraceID/SpanID and
// can be joined to traces. The string fields keep stdout logs greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
