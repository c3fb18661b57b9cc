// Package trace wraps log/slog with operation-boundary logging for
// graph mutations: one Debug line when an operation starts, one when it
// ends, with elapsed time and the outcome error attached.
//
// Every helper is nil-safe. When the configured logger is nil or Debug
// is not enabled, Begin returns a nil *Op and the whole call pair costs
// a couple of branch checks, so callers never need to guard trace calls
// behind their own enabled flag.
//
// Operation names follow shapecore.<package>.<operation>, e.g.
// shapecore.shapegraph.addShape.
package trace

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying id. Begin and End pick it up
// and attach it to their log lines, so a host serving many concurrent
// edit requests can correlate the mutations each one caused.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom extracts the request ID set by WithRequestID. The bool
// distinguishes "not set" from an empty ID.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// Op is one in-flight traced operation, created by Begin and closed by
// End. A nil *Op is valid and inert.
type Op struct {
	// The context is retained so End can report cancellation state and
	// the request ID on the closing log line.
	ctx    context.Context
	logger *slog.Logger
	name   string
	start  time.Time
	ended  atomic.Bool
}

// Begin logs the start of the named operation at Debug level and
// returns the Op to close with End. Returns nil, without logging or
// allocating, when logger is nil or Debug is not enabled.
func Begin(ctx context.Context, logger *slog.Logger, name string, attrs ...slog.Attr) *Op {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}

	o := &Op{ctx: ctx, logger: logger, name: name, start: time.Now()}
	logger.LogAttrs(ctx, slog.LevelDebug, "operation started", o.withCommon(attrs, 0)...)
	return o
}

// End logs the completion of the operation, including its elapsed time,
// err (when non-nil), and the context's cancellation error (when set).
// Only the first call logs; repeats are ignored, so End may be both
// deferred and called explicitly on an early return.
func (o *Op) End(err error, attrs ...slog.Attr) {
	if o == nil || o.ended.Swap(true) {
		return
	}

	elapsed := time.Since(o.start)
	out := o.withCommon(nil, len(attrs)+4)
	out = append(out,
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
		slog.Duration("duration", elapsed),
	)
	if ctxErr := o.ctx.Err(); ctxErr != nil {
		out = append(out, slog.String("ctx_err", ctxErr.Error()))
	}
	if err != nil {
		out = append(out, slog.String("error", err.Error()))
	}
	out = append(out, attrs...)

	o.logger.LogAttrs(o.ctx, slog.LevelDebug, "operation ended", out...)
}

// withCommon prepends the attributes every trace line carries: the
// operation name and, when present, the request ID.
func (o *Op) withCommon(attrs []slog.Attr, extra int) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs)+extra+2)
	out = append(out, slog.String("op", o.name))
	if id, ok := RequestIDFrom(o.ctx); ok {
		out = append(out, slog.String("request_id", id))
	}
	return append(out, attrs...)
}
