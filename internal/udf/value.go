package udf

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/astro-kernel/internal/result"
)

// Type is a host-engine column type a function parameter or result uses.
type Type int

const (
	TypeDouble Type = iota + 1
	TypeBigInt
	TypeVarchar
	TypeStruct
)

func (t Type) String() string {
	switch t {
	case TypeDouble:
		return "DOUBLE"
	case TypeBigInt:
		return "BIGINT"
	case TypeVarchar:
		return "VARCHAR"
	case TypeStruct:
		return "STRUCT"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Value is one argument or result cell. The zero Value is SQL NULL.
type Value struct {
	typ Type
	f   float64
	i   int64
	s   string
	rec result.Record
}

// Null returns the missing value.
func Null() Value { return Value{} }

// Double wraps a float. NaN and infinities become Null so a non-finite
// number never reaches the host as data.
func Double(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	return Value{typ: TypeDouble, f: v}
}

// BigInt wraps an integer.
func BigInt(v int64) Value { return Value{typ: TypeBigInt, i: v} }

// Varchar wraps a string.
func Varchar(v string) Value { return Value{typ: TypeVarchar, s: v} }

// Struct wraps a composite record.
func Struct(rec result.Record) Value { return Value{typ: TypeStruct, rec: rec} }

// IsNull reports whether v is missing.
func (v Value) IsNull() bool { return v.typ == 0 }

// Type returns v's type, or 0 when null.
func (v Value) Type() Type { return v.typ }

// Float returns the numeric content; BIGINT widens to float.
func (v Value) Float() (float64, bool) {
	switch v.typ {
	case TypeDouble:
		return v.f, true
	case TypeBigInt:
		return float64(v.i), true
	}
	return 0, false
}

// Int returns the BIGINT content.
func (v Value) Int() (int64, bool) { return v.i, v.typ == TypeBigInt }

// Text returns the VARCHAR content.
func (v Value) Text() (string, bool) { return v.s, v.typ == TypeVarchar }

// Record returns the STRUCT content.
func (v Value) Record() (result.Record, bool) { return v.rec, v.typ == TypeStruct }

func (v Value) String() string {
	switch v.typ {
	case 0:
		return "NULL"
	case TypeDouble:
		return fmt.Sprintf("%g", v.f)
	case TypeBigInt:
		return fmt.Sprintf("%d", v.i)
	case TypeVarchar:
		return fmt.Sprintf("%q", v.s)
	case TypeStruct:
		text, err := v.rec.Text()
		if err != nil {
			return "STRUCT(?)"
		}
		return text
	}
	return "?"
}

// accepts reports whether a non-null argument of type got may bind to a
// parameter of type want. BIGINT widens to DOUBLE.
func accepts(want, got Type) bool {
	return want == got || (want == TypeDouble && got == TypeBigInt)
}
