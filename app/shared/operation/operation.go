// Package operation runs service operations with tracing, metrics, logging,
// panic recovery and transaction handling.
package operation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReadSnapshot is used by read-only aggregations that issue several queries
// and must see one consistent state.
var ReadSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// Runner holds the dependencies shared by every operation of one service.
type Runner struct {
	Service string
	Logger  *slog.Logger
	Metrics metrics.OperationMetrics
	Tracer  trace.Tracer
	DB      *bun.DB
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default and nil
// metrics to the noop implementation.
func NewRunner(service string, logger *slog.Logger, m metrics.OperationMetrics, tracer trace.Tracer, db *bun.DB) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	return &Runner{
		Service: service,
		Logger:  logger,
		Metrics: m,
		Tracer:  tracer,
		DB:      db,
	}
}

// Func is the signature of an operation body.
type Func[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// TxFunc is the signature of an operation body that runs against a db handle.
type TxFunc[S any, F any] func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error)

// WithTelemetry wraps op with a span, operation metrics, structured logs and
// panic recovery. Infrastructure errors are wrapped with the operation name.
func WithTelemetry[S any, F any](
	r *Runner,
	ctx context.Context,
	operationName string,
	identifier string,
	op Func[S, F],
) (result results.OperationResult[S, F], err error) {
	var span trace.Span
	if r.Tracer != nil {
		ctx, span = r.Tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	r.Metrics.RecordOperationAttempt(ctx, operationName, r.Service)

	startTime := time.Now()
	defer func() {
		r.Metrics.RecordOperationDuration(ctx, operationName, r.Service, time.Since(startTime))
	}()

	r.Logger.InfoContext(ctx, "Operation triggered",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
	)

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, rec)
			r.Logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			r.Metrics.RecordOperationFailure(ctx, operationName, r.Service)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		r.Logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Error(wrappedErr),
		)
		r.Metrics.RecordOperationFailure(ctx, operationName, r.Service)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		r.Logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		r.Logger.InfoContext(ctx, "Operation completed successfully",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
		)
	}

	r.Metrics.RecordOperationSuccess(ctx, operationName, r.Service)
	return result, nil
}

// errFailureResult rolls back a transaction whose body returned a domain
// failure. It never leaves RunInTx.
var errFailureResult = errors.New("operation returned failure result")

// RunInTx runs fn inside a transaction. When the Runner has no db (unit
// tests) fn receives a nil handle and repositories fall back to their own.
// The transaction commits only when fn succeeds; a domain failure rolls it
// back and is returned as the result.
func RunInTx[S any, F any](
	r *Runner,
	ctx context.Context,
	opts *sql.TxOptions,
	fn TxFunc[S, F],
) (results.OperationResult[S, F], error) {
	if r.DB == nil {
		return fn(ctx, nil)
	}
	if opts == nil {
		opts = &sql.TxOptions{}
	}

	var result results.OperationResult[S, F]
	err := r.DB.RunInTx(ctx, opts, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		if txErr == nil && result.IsFailure() {
			return errFailureResult
		}
		return txErr
	})
	if errors.Is(err, errFailureResult) {
		return result, nil
	}
	return result, err
}

// Run is WithTelemetry around RunInTx.
func Run[S any, F any](
	r *Runner,
	ctx context.Context,
	operationName string,
	identifier string,
	opts *sql.TxOptions,
	fn TxFunc[S, F],
) (results.OperationResult[S, F], error) {
	return WithTelemetry(r, ctx, operationName, identifier, func(ctx context.Context) (results.OperationResult[S, F], error) {
		return RunInTx(r, ctx, opts, fn)
	})
}

// Collapse turns a result whose failure type is error into the (value, error)
// pair handlers work with.
func Collapse[S any](result results.OperationResult[S, error], err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	if result.IsFailure() {
		return zero, *result.Failure
	}
	if result.Success == nil {
		return zero, fmt.Errorf("operation returned no result")
	}
	return *result.Success, nil
}
