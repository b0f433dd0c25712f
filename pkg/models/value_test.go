package models

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{name: "nil", input: nil, expected: NullValue()},
		{name: "string", input: "hello", expected: TextValue("hello")},
		{name: "bytes", input: []byte("raw"), expected: TextValue("raw")},
		{name: "int", input: 42, expected: IntValue(42)},
		{name: "int64", input: int64(-7), expected: IntValue(-7)},
		{name: "uint32", input: uint32(9), expected: IntValue(9)},
		{name: "float64", input: 3.5, expected: FloatValue(3.5)},
		{name: "float32", input: float32(2), expected: FloatValue(2)},
		{name: "bool", input: true, expected: BoolValue(true)},
		{name: "time", input: ts, expected: TimeValue(ts)},
		{name: "big float", input: big.NewFloat(1.25), expected: FloatValue(1.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueOf(tt.input))
		})
	}
}

func TestValueOf_Stringer(t *testing.T) {
	id := uuid.MustParse("0195a2b4-0000-7000-8000-000000000000")
	v := ValueOf(id)
	assert.Equal(t, KindText, v.Kind)
	assert.Equal(t, id.String(), v.Text)
}

func TestValue_Numeric(t *testing.T) {
	n, ok := IntValue(5).Numeric()
	assert.True(t, ok)
	assert.Equal(t, 5.0, n)

	n, ok = FloatValue(2.5).Numeric()
	assert.True(t, ok)
	assert.Equal(t, 2.5, n)

	_, ok = TextValue("5").Numeric()
	assert.False(t, ok, "numeric-looking text is still text")

	_, ok = NullValue().Numeric()
	assert.False(t, ok)

	_, ok = BoolValue(true).Numeric()
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "null", NullValue().String())
	assert.Equal(t, "abc", TextValue("abc").String())
	assert.Equal(t, "-12", IntValue(-12).String())
	assert.Equal(t, "1.5", FloatValue(1.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "2025-06-01T12:00:00Z",
		TimeValue(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).String())
}

func TestRow_MarshalJSON(t *testing.T) {
	row := Row{
		"name":    TextValue("widget"),
		"qty":     IntValue(3),
		"price":   FloatValue(9.99),
		"active":  BoolValue(true),
		"deleted": NullValue(),
	}

	data, err := json.Marshal(row)
	require.NoError(t, err)

	// Native scalars on the wire, not tagged wrappers.
	assert.JSONEq(t, `{"name":"widget","qty":3,"price":9.99,"active":true,"deleted":null}`, string(data))
}
