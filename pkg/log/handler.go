package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// stackHandler is a slog handler that pulls the stack trace out of
// cockroachdb/errors values logged under ErrAttrKey and emits it as a
// separate stacktrace attribute.
type stackHandler struct {
	handler slog.Handler
}

// WrapWithStackHandler wraps a standard slog handler so that records carrying
// an error attribute also carry the error's stack trace.
func WrapWithStackHandler(handler slog.Handler) slog.Handler {
	return &stackHandler{handler: handler}
}

func (sh *stackHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return sh.handler.Enabled(ctx, l)
}

func (sh *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			err, ok := attr.Value.Any().(error)
			if ok {
				stacktrace = extractStacktrace(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return sh.handler.Handle(ctx, r)
}

func (sh *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stackHandler{handler: sh.handler.WithAttrs(attrs)}
}

func (sh *stackHandler) WithGroup(g string) slog.Handler {
	return &stackHandler{handler: sh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
