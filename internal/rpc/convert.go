package rpc

import (
	"fmt"
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/signalsfoundry/astro-kernel/internal/udf"
)

// maxExactInt is the largest integer a JSON/protobuf double holds exactly.
// Wider BIGINT values travel as decimal strings.
const maxExactInt = 1 << 53

// argsFromProto binds wire values to sig's parameter types. Numbers bind to
// DOUBLE or, when integral, BIGINT; BIGINT also accepts a decimal string.
func argsFromProto(sig udf.Signature, list []*structpb.Value) ([]udf.Value, error) {
	if len(list) != sig.Arity() {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", udf.ErrArity, sig.Name, sig.Arity(), len(list))
	}
	out := make([]udf.Value, len(list))
	for i, pv := range list {
		v, err := valueFromProto(sig.Params[i].Type, pv)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d (%s): %w", sig.Name, i+1, sig.Params[i].Name, err)
		}
		out[i] = v
	}
	return out, nil
}

func valueFromProto(want udf.Type, pv *structpb.Value) (udf.Value, error) {
	if pv == nil {
		return udf.Null(), nil
	}
	switch k := pv.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return udf.Null(), nil
	case *structpb.Value_NumberValue:
		switch want {
		case udf.TypeDouble:
			return udf.Double(k.NumberValue), nil
		case udf.TypeBigInt:
			n := k.NumberValue
			if n != math.Trunc(n) || math.Abs(n) > maxExactInt {
				return udf.Null(), fmt.Errorf("%w: %v is not an exact integer", udf.ErrArgumentType, n)
			}
			return udf.BigInt(int64(n)), nil
		}
	case *structpb.Value_StringValue:
		switch want {
		case udf.TypeVarchar:
			return udf.Varchar(k.StringValue), nil
		case udf.TypeBigInt:
			n, err := strconv.ParseInt(k.StringValue, 10, 64)
			if err != nil {
				return udf.Null(), fmt.Errorf("%w: %q is not an integer", udf.ErrArgumentType, k.StringValue)
			}
			return udf.BigInt(n), nil
		}
	}
	return udf.Null(), fmt.Errorf("%w: cannot bind %T to %s", udf.ErrArgumentType, pv.GetKind(), want)
}

// valueToProto renders a result cell for the wire.
func valueToProto(v udf.Value) (*structpb.Value, error) {
	switch v.Type() {
	case 0:
		return structpb.NewNullValue(), nil
	case udf.TypeDouble:
		f, _ := v.Float()
		return structpb.NewNumberValue(f), nil
	case udf.TypeBigInt:
		n, _ := v.Int()
		if n > maxExactInt || n < -maxExactInt {
			return structpb.NewStringValue(strconv.FormatInt(n, 10)), nil
		}
		return structpb.NewNumberValue(float64(n)), nil
	case udf.TypeVarchar:
		s, _ := v.Text()
		return structpb.NewStringValue(s), nil
	case udf.TypeStruct:
		rec, _ := v.Record()
		st, err := rec.ToStruct()
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(st), nil
	}
	return nil, fmt.Errorf("unsupported result type %s", v.Type())
}

func signatureToProto(sig udf.Signature) *structpb.Value {
	params := make([]*structpb.Value, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"name": structpb.NewStringValue(p.Name),
			"type": structpb.NewStringValue(p.Type.String()),
		}})
	}
	fields := map[string]*structpb.Value{
		"name":        structpb.NewStringValue(sig.Name),
		"params":      structpb.NewListValue(&structpb.ListValue{Values: params}),
		"returns":     structpb.NewStringValue(sig.Returns.String()),
		"description": structpb.NewStringValue(sig.Description),
	}
	if sig.Schema != "" {
		fields["schema"] = structpb.NewStringValue(sig.Schema)
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}
