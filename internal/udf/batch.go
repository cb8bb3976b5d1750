package udf

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/signalsfoundry/astro-kernel/internal/logging"
)

const tracerName = "github.com/signalsfoundry/astro-kernel/internal/udf"

// minRowsPerWorker keeps small batches on one goroutine.
const minRowsPerWorker = 256

// CallBatch evaluates name over every row and returns one result per row in
// input order. Rows with domain violations yield Null(). The first
// non-domain error aborts the batch and is returned with its row index.
func (t *Table) CallBatch(ctx context.Context, name string, rows [][]Value) ([]Value, error) {
	f, ok := t.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "udf/CallBatch/"+name,
		trace.WithAttributes(
			attribute.String("udf.function", name),
			attribute.Int("udf.rows", len(rows)),
		))
	defer span.End()
	if br, ok := t.recorder.(BatchRecorder); ok {
		br.ObserveBatch(name, len(rows))
	}

	out := make([]Value, len(rows))
	chunks := t.chunks(len(rows))
	if chunks <= 1 {
		if err := t.evalRange(ctx, f, rows, out, 0, len(rows)); err != nil {
			return nil, t.batchFailed(ctx, span, name, err)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	size := (len(rows) + chunks - 1) / chunks
	for lo := 0; lo < len(rows); lo += size {
		lo, hi := lo, min(lo+size, len(rows))
		g.Go(func() error {
			return t.evalRange(gctx, f, rows, out, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, t.batchFailed(ctx, span, name, err)
	}
	return out, nil
}

// evalRange fills out[lo:hi]. Each goroutine owns a disjoint range.
func (t *Table) evalRange(ctx context.Context, f *function, rows [][]Value, out []Value, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if i%minRowsPerWorker == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v, err := t.eval(f, rows[i])
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}
	return nil
}

func (t *Table) chunks(n int) int {
	if t.workers <= 1 || n < 2*minRowsPerWorker {
		return 1
	}
	return min(t.workers, n/minRowsPerWorker)
}

func (t *Table) batchFailed(ctx context.Context, span trace.Span, name string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	t.logger(ctx).Warn(ctx, "batch call failed",
		logging.String("function", name),
		logging.String("error", err.Error()),
	)
	return err
}
