package rpc

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/signalsfoundry/astro-kernel/internal/logging"
	"github.com/signalsfoundry/astro-kernel/internal/udf"
)

// DefaultMaxBatchRows bounds one CallBatch request.
const DefaultMaxBatchRows = 1 << 20

// Service implements FunctionServiceServer over a function table.
type Service struct {
	table        *udf.Table
	log          logging.Logger
	maxBatchRows int
}

// Option customises a Service.
type Option func(*Service)

// WithMaxBatchRows overrides DefaultMaxBatchRows.
func WithMaxBatchRows(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchRows = n
		}
	}
}

// NewService wraps table for the gRPC transport.
func NewService(table *udf.Table, log logging.Logger, opts ...Option) *Service {
	if log == nil {
		log = logging.Noop()
	}
	s := &Service{table: table, log: log, maxBatchRows: DefaultMaxBatchRows}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Call evaluates one row. A missing result comes back as a null Value.
func (s *Service) Call(ctx context.Context, req *structpb.Struct) (*structpb.Value, error) {
	sig, err := s.signature(req)
	if err != nil {
		return nil, ToStatusError(err)
	}
	args, err := argsFromProto(sig, req.GetFields()["args"].GetListValue().GetValues())
	if err != nil {
		return nil, ToStatusError(err)
	}

	ctx, span := StartChildSpan(ctx, "udf/"+sig.Name, sig.Name)
	defer span.End()

	v, err := s.table.Call(ctx, sig.Name, args...)
	if err != nil {
		span.RecordError(err)
		return nil, ToStatusError(err)
	}
	out, err := valueToProto(v)
	if err != nil {
		return nil, ToStatusError(err)
	}
	return out, nil
}

// CallBatch evaluates every row of req and returns one value per row in order.
func (s *Service) CallBatch(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	sig, err := s.signature(req)
	if err != nil {
		return nil, ToStatusError(err)
	}
	wireRows := req.GetFields()["rows"].GetListValue().GetValues()
	if len(wireRows) > s.maxBatchRows {
		return nil, ToStatusError(fmt.Errorf("%w: %d rows, limit %d", ErrBatchTooLarge, len(wireRows), s.maxBatchRows))
	}

	rows := make([][]udf.Value, len(wireRows))
	for i, wr := range wireRows {
		list := wr.GetListValue()
		if list == nil {
			return nil, ToStatusError(fmt.Errorf("%w: row %d is not a list", ErrInvalidRequest, i))
		}
		args, err := argsFromProto(sig, list.GetValues())
		if err != nil {
			return nil, ToStatusError(fmt.Errorf("row %d: %w", i, err))
		}
		rows[i] = args
	}

	results, err := s.table.CallBatch(ctx, sig.Name, rows)
	if err != nil {
		return nil, ToStatusError(err)
	}
	out := &structpb.ListValue{Values: make([]*structpb.Value, len(results))}
	for i, v := range results {
		pv, err := valueToProto(v)
		if err != nil {
			return nil, ToStatusError(fmt.Errorf("row %d: %w", i, err))
		}
		out.Values[i] = pv
	}
	logging.LoggerFromContextOr(ctx, s.log).Debug(ctx, "batch evaluated",
		logging.String("function", sig.Name),
		logging.Int("rows", len(results)),
	)
	return out, nil
}

// ListFunctions returns every signature in name order.
func (s *Service) ListFunctions(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	sigs := s.table.Signatures()
	out := &structpb.ListValue{Values: make([]*structpb.Value, len(sigs))}
	for i, sig := range sigs {
		out.Values[i] = signatureToProto(sig)
	}
	return out, nil
}

func (s *Service) signature(req *structpb.Struct) (udf.Signature, error) {
	name := req.GetFields()["function"].GetStringValue()
	if name == "" {
		return udf.Signature{}, fmt.Errorf("%w: function name is required", ErrInvalidRequest)
	}
	sig, ok := s.table.Lookup(name)
	if !ok {
		return udf.Signature{}, fmt.Errorf("%w: %q", udf.ErrUnknownFunction, name)
	}
	return sig, nil
}
