// Package redisz provides a Redis list that can be extended like an in-memory container.
package redisz

import (
	"context"
	"iter"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

const defaultBatchSize = 100

type newOption struct {
	batchSize int
	logger    *slog.Logger
}

type Option func(o *newOption)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *newOption) {
		o.logger = log.With("component", "redisz")
	}
}

// WithBatchSize sets how many elements are sent with one RPUSH.
func WithBatchSize(n int) Option {
	return func(o *newOption) {
		o.batchSize = n
	}
}

// List is a Redis list that implements extend.Extender[string].
//
// Extend cannot return an error, so failures are collected and reported by [List.Err].
// A failed Extend stops pulling from its sequence; elements pushed before
// the failure stay in the list.
type List struct {
	ctx       context.Context
	rdb       redis.Cmdable
	key       string
	batchSize int
	logger    *slog.Logger
	tracer    trace.Tracer
	pushed    int64
	err       error
}

// NewList returns a List appending to key.
// The ctx is used for every command issued by Extend.
func NewList(ctx context.Context, rdb redis.Cmdable, key string, opts ...Option) *List {
	no := newOption{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&no)
	}
	if no.batchSize <= 0 {
		no.batchSize = defaultBatchSize
	}

	return &List{
		ctx:       ctx,
		rdb:       rdb,
		key:       key,
		batchSize: no.batchSize,
		logger:    no.logger,
		tracer:    otel.Tracer("github.com/adobaai/extend/redisz"),
	}
}

// Key returns the key of the list.
func (l *List) Key() string {
	return l.key
}

// Extend pushes the elements of seq to the tail of the list, in order.
func (l *List) Extend(seq iter.Seq[string]) {
	ctx, span := l.tracer.Start(l.ctx, "[redisz] extend "+l.key,
		trace.WithSpanKind(trace.SpanKindProducer),
	)
	defer span.End()

	var (
		batch = make([]any, 0, l.batchSize)
		n     int64
		err   error
	)
	flush := func() bool {
		if len(batch) == 0 {
			return true
		}
		if err = l.rdb.RPush(ctx, l.key, batch...).Err(); err != nil {
			return false
		}
		n += int64(len(batch))
		batch = batch[:0]
		return true
	}

	for it := range seq {
		batch = append(batch, it)
		if len(batch) == l.batchSize && !flush() {
			break
		}
	}
	if err == nil {
		flush()
	}

	l.pushed += n
	span.SetAttributes(attribute.Int64("redisz.pushed", n))
	if err != nil {
		l.err = multierr.Append(l.err, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		l.logger.ErrorContext(ctx, "extend list failed", "key", l.key, "pushed", n, "error", err)
	}
}

// Len returns how many elements have been pushed through l.
func (l *List) Len() int64 {
	return l.pushed
}

// Err returns the errors of all failed Extend calls combined, or nil.
func (l *List) Err() error {
	return l.err
}
