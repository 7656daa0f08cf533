package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Value_accessors(t *testing.T) {
	n := Number(3.5)
	require.True(t, n.IsNumber())
	require.False(t, n.IsString())
	v, err := n.Num()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
	_, err = n.Str()
	assert.EqualError(t, err, "type error: expected String, got Number")

	s := String("hello")
	require.True(t, s.IsString())
	require.False(t, s.IsNumber())
	sv, err := s.Str()
	require.NoError(t, err)
	assert.Equal(t, "hello", sv)
	_, err = s.Num()
	assert.EqualError(t, err, "type error: expected Number, got String")
}

func Test_Value_Int_truncates_toward_zero(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want int
	}{
		{3.9, 3},
		{-3.9, -3},
		{0, 0},
		{-0.5, 0},
	} {
		got, err := Number(tc.in).Int()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Int(%v)", tc.in)
	}
}

func Test_Value_Truthy(t *testing.T) {
	assert.False(t, Number(0).Truthy())
	assert.True(t, Number(1).Truthy())
	assert.True(t, Number(-1).Truthy())
	assert.True(t, String("").Truthy(), "empty string is truthy per the language's truthiness rule")
	assert.True(t, String("false").Truthy())
}

func Test_Value_Equal(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("b")))
	assert.False(t, Number(1).Equal(String("1")), "values of different types are never equal")
}

func Test_Value_Less(t *testing.T) {
	less, err := Number(1).Less(Number(2))
	require.NoError(t, err)
	assert.True(t, less)

	less, err = String("a").Less(String("b"))
	require.NoError(t, err)
	assert.True(t, less)

	_, err = Number(1).Less(String("1"))
	assert.Error(t, err)
}

func Test_V2Str(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want string
	}{
		{"empty string", String(""), ""},
		{"leading space string", String(" x"), " x"},
		{"trailing space string", String("x "), "x "},
		{"plain string", String("hello"), "hello"},
		{"integral number", Number(3), "3"},
		{"negative integral number", Number(-5), "-5"},
		{"zero", Number(0), "0"},
		{"fractional number", Number(3.5), "3.5"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, V2Str(tc.v))
		})
	}
}
