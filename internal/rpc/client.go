package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls astro.v1.FunctionService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call evaluates function on one row. Arguments are Go values accepted by
// structpb.NewValue (nil, numbers, strings).
func (c *Client) Call(ctx context.Context, function string, args ...any) (*structpb.Value, error) {
	list, err := structpb.NewList(args)
	if err != nil {
		return nil, fmt.Errorf("encode arguments: %w", err)
	}
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"function": structpb.NewStringValue(function),
		"args":     structpb.NewListValue(list),
	}}
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, FunctionServiceCall, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CallBatch evaluates function on every row.
func (c *Client) CallBatch(ctx context.Context, function string, rows [][]any) (*structpb.ListValue, error) {
	wire := make([]*structpb.Value, len(rows))
	for i, row := range rows {
		list, err := structpb.NewList(row)
		if err != nil {
			return nil, fmt.Errorf("encode row %d: %w", i, err)
		}
		wire[i] = structpb.NewListValue(list)
	}
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"function": structpb.NewStringValue(function),
		"rows":     structpb.NewListValue(&structpb.ListValue{Values: wire}),
	}}
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FunctionServiceCallBatch, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFunctions fetches every signature the server exposes.
func (c *Client) ListFunctions(ctx context.Context) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FunctionServiceListFunction, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out, nil
}
