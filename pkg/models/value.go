package models

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// ValueKind tags the scalar variant held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindText
	KindInt
	KindFloat
	KindBool
	KindTime
)

// Value is a tagged scalar cell from a query result. Result sets from
// arbitrary databases are heterogeneous, so drivers hand back untyped
// values; Value pins each one to a closed set of variants so the
// statistics and serialization code stays type-safe.
type Value struct {
	Kind  ValueKind
	Text  string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

// Row maps a result column name to its scalar value. Key sets are
// identical across all rows of one result.
type Row map[string]Value

// NullValue returns the null variant.
func NullValue() Value {
	return Value{Kind: KindNull}
}

// TextValue returns a text variant.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IntValue returns an integer variant.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue returns a floating-point variant.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// BoolValue returns a boolean variant.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// TimeValue returns a timestamp variant.
func TimeValue(t time.Time) Value {
	return Value{Kind: KindTime, Time: t}
}

// ValueOf converts a raw driver value into a tagged Value. Unknown types
// fall back to their string rendering; result cells must always be
// representable.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case string:
		return TextValue(x)
	case []byte:
		return TextValue(string(x))
	case int:
		return IntValue(int64(x))
	case int8:
		return IntValue(int64(x))
	case int16:
		return IntValue(int64(x))
	case int32:
		return IntValue(int64(x))
	case int64:
		return IntValue(x)
	case uint:
		return IntValue(int64(x))
	case uint8:
		return IntValue(int64(x))
	case uint16:
		return IntValue(int64(x))
	case uint32:
		return IntValue(int64(x))
	case uint64:
		return IntValue(int64(x))
	case float32:
		return FloatValue(float64(x))
	case float64:
		return FloatValue(x)
	case bool:
		return BoolValue(x)
	case time.Time:
		return TimeValue(x)
	case *big.Float:
		f, _ := x.Float64()
		return FloatValue(f)
	case fmt.Stringer:
		return TextValue(x.String())
	default:
		return TextValue(fmt.Sprint(x))
	}
}

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Numeric returns the value as a float64 when it holds an integer or
// floating-point variant. The second return is false otherwise.
func (v Value) Numeric() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// String renders the value for inclusion in prompt text.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindText:
		return v.Text
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindTime:
		return v.Time.Format(time.RFC3339)
	default:
		return ""
	}
}

// MarshalJSON emits the native scalar for each variant so API responses
// carry plain JSON values rather than the tagged wrapper.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindText:
		return json.Marshal(v.Text)
	case KindInt:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindTime:
		return json.Marshal(v.Time)
	default:
		return []byte("null"), nil
	}
}
