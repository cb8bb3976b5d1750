package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/signalsfoundry/astro-kernel/core"
	"github.com/signalsfoundry/astro-kernel/internal/result"
	"github.com/signalsfoundry/astro-kernel/internal/udf"
)

var (
	// ErrInvalidRequest marks a request message with missing or malformed fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrBatchTooLarge is returned when a batch exceeds the server's row limit.
	ErrBatchTooLarge = errors.New("batch too large")
)

// ToStatusError maps kernel errors onto gRPC status codes.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, udf.ErrUnknownFunction):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, udf.ErrArity),
		errors.Is(err, udf.ErrArgumentType),
		errors.Is(err, core.ErrDepthOutOfRange):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, ErrBatchTooLarge):
		return status.Error(codes.ResourceExhausted, err.Error())

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())

	case errors.Is(err, result.ErrUnknownSchema),
		errors.Is(err, result.ErrFieldMismatch):
		return status.Error(codes.Internal, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
