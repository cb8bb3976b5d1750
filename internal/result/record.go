package result

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Value is one field value of a record. The zero Value is null.
type Value struct {
	kind Kind
	f    float64
	i    int64
	s    string
	list []string
}

// Null returns the absent value.
func Null() Value { return Value{} }

// Float wraps a float64.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// OptionalFloat wraps *v, or returns Null for a nil pointer.
func OptionalFloat(v *float64) Value {
	if v == nil {
		return Null()
	}
	return Float(*v)
}

// Int wraps an int64.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Text wraps a string.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// TextList wraps a string list. A nil list encodes as an empty list.
func TextList(v []string) Value {
	return Value{kind: KindTextList, list: append([]string{}, v...)}
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.kind == 0 }

// Kind returns the value's kind, or 0 when null.
func (v Value) Kind() Kind { return v.kind }

// AsFloat returns the float payload. Int values widen to float.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsInt returns the int payload.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsText returns the text payload.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsTextList returns a copy of the list payload.
func (v Value) AsTextList() ([]string, bool) {
	if v.kind != KindTextList {
		return nil, false
	}
	return append([]string{}, v.list...), true
}

// Record is an encoded composite value conforming to a registered schema.
type Record struct {
	schema *Schema
	values []Value
}

// Encode binds values, in schema order, to the schema named id. Non-finite
// floats become null in nullable fields and are rejected elsewhere.
func Encode(id string, values ...Value) (Record, error) {
	s, err := Lookup(id)
	if err != nil {
		return Record{}, err
	}
	if len(values) != len(s.fields) {
		return Record{}, fmt.Errorf("%w: schema %q has %d fields, got %d values",
			ErrFieldMismatch, id, len(s.fields), len(values))
	}

	out := make([]Value, len(values))
	for i, v := range values {
		f := s.fields[i]
		if v.kind == KindFloat && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
			v = Null()
		}
		if v.IsNull() {
			if !f.Nullable {
				return Record{}, fmt.Errorf("%w: %s.%s is not nullable", ErrFieldMismatch, id, f.Name)
			}
			out[i] = v
			continue
		}
		if v.kind != f.Kind {
			return Record{}, fmt.Errorf("%w: %s.%s wants %s, got %s",
				ErrFieldMismatch, id, f.Name, f.Kind, v.kind)
		}
		out[i] = v
	}
	return Record{schema: s, values: out}, nil
}

// Schema returns the record's schema, or nil for the zero Record.
func (r Record) Schema() *Schema { return r.schema }

// SchemaID returns the schema identifier, or "" for the zero Record.
func (r Record) SchemaID() string {
	if r.schema == nil {
		return ""
	}
	return r.schema.id
}

// Len returns the field count.
func (r Record) Len() int { return len(r.values) }

// At returns the value at position i.
func (r Record) At(i int) Value { return r.values[i] }

// Get returns the named field's value.
func (r Record) Get(name string) (Value, bool) {
	if r.schema == nil {
		return Null(), false
	}
	i := r.schema.Index(name)
	if i < 0 {
		return Null(), false
	}
	return r.values[i], true
}

// Float is a shortcut for Get(name) followed by AsFloat.
func (r Record) Float(name string) (float64, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// MarshalJSON writes the record as a JSON object with keys in schema order.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.schema == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range r.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(r.schema.fields[i].Name)
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case 0:
		buf.WriteString("null")
	case KindFloat:
		buf.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindText:
		b, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindTextList:
		b, err := json.Marshal(v.list)
		if err != nil {
			return err
		}
		buf.Write(b)
	default:
		return fmt.Errorf("%w: unsupported kind %d", ErrFieldMismatch, v.kind)
	}
	return nil
}

// Text returns the self-describing JSON text form of the record.
func (r Record) Text() (string, error) {
	b, err := r.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToStruct converts the record into a protobuf Struct. Field order is not
// carried by Struct; consumers recover it from the schema.
func (r Record) ToStruct() (*structpb.Struct, error) {
	if r.schema == nil {
		return nil, fmt.Errorf("%w: empty record", ErrFieldMismatch)
	}
	fields := make(map[string]*structpb.Value, len(r.values))
	for i, v := range r.values {
		fields[r.schema.fields[i].Name] = ValueToProto(v)
	}
	return &structpb.Struct{Fields: fields}, nil
}

// ValueToProto converts one field value into a protobuf Value.
func ValueToProto(v Value) *structpb.Value {
	switch v.kind {
	case KindFloat:
		return structpb.NewNumberValue(v.f)
	case KindInt:
		return structpb.NewNumberValue(float64(v.i))
	case KindText:
		return structpb.NewStringValue(v.s)
	case KindTextList:
		items := make([]*structpb.Value, 0, len(v.list))
		for _, s := range v.list {
			items = append(items, structpb.NewStringValue(s))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: items})
	default:
		return structpb.NewNullValue()
	}
}

// FromStruct decodes a protobuf Struct produced by ToStruct back into a
// record of the named schema.
func FromStruct(id string, st *structpb.Struct) (Record, error) {
	s, err := Lookup(id)
	if err != nil {
		return Record{}, err
	}
	values := make([]Value, len(s.fields))
	for i, f := range s.fields {
		pv, ok := st.GetFields()[f.Name]
		if !ok {
			return Record{}, fmt.Errorf("%w: %s.%s missing", ErrFieldMismatch, id, f.Name)
		}
		v, err := valueFromProto(f, pv)
		if err != nil {
			return Record{}, fmt.Errorf("%s.%s: %w", id, f.Name, err)
		}
		values[i] = v
	}
	return Encode(id, values...)
}

func valueFromProto(f Field, pv *structpb.Value) (Value, error) {
	if _, isNull := pv.GetKind().(*structpb.Value_NullValue); isNull || pv.GetKind() == nil {
		return Null(), nil
	}
	switch f.Kind {
	case KindFloat:
		if n, ok := pv.GetKind().(*structpb.Value_NumberValue); ok {
			return Float(n.NumberValue), nil
		}
	case KindInt:
		if n, ok := pv.GetKind().(*structpb.Value_NumberValue); ok {
			return Int(int64(n.NumberValue)), nil
		}
	case KindText:
		if s, ok := pv.GetKind().(*structpb.Value_StringValue); ok {
			return Text(s.StringValue), nil
		}
	case KindTextList:
		if l, ok := pv.GetKind().(*structpb.Value_ListValue); ok {
			items := make([]string, 0, len(l.ListValue.GetValues()))
			for _, item := range l.ListValue.GetValues() {
				items = append(items, item.GetStringValue())
			}
			return TextList(items), nil
		}
	}
	return Null(), fmt.Errorf("%w: wants %s", ErrFieldMismatch, f.Kind)
}
