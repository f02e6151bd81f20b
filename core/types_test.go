package core

import (
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestParameterType_String(t *testing.T) {
	assert.Equal(t, Flag.String(), "flag")
	assert.Equal(t, UInteger.String(), "unsigned integer")
	assert.Equal(t, Integer.String(), "integer")
	assert.Equal(t, Float.String(), "float")
	assert.Equal(t, String.String(), "string")
	assert.Equal(t, Path.String(), "path")
}

func TestParameterValue_ZeroValueIsUnset(t *testing.T) {
	var value ParameterValue
	assert.True(t, !value.IsSet())
	assert.Equal(t, value.String(), "<unset>")
}

func TestParameterValue_Accessors(t *testing.T) {
	assert.True(t, FlagValue().Bool())
	assert.Equal(t, UIntegerValue(42).UInteger(), uint64(42))
	assert.Equal(t, IntegerValue(-7).Integer(), int64(-7))
	assert.Equal(t, FloatValue(2.25).Float(), 2.25)
	assert.Equal(t, StringValue("hello").Text(), "hello")
	assert.Equal(t, PathValue("./a/b").Path(), "./a/b")
}

func TestParameterValue_WrongVariantReturnsZero(t *testing.T) {
	assert.Equal(t, UIntegerValue(5).Path(), "")
	assert.Equal(t, PathValue("./x").UInteger(), uint64(0))
	assert.Equal(t, StringValue("x").Path(), "")
	assert.True(t, !UIntegerValue(5).Bool())
}

func TestConvert_RoundTrip(t *testing.T) {
	// A converted value formatted back to text must re-convert to an equal
	// value for every value-taking type.
	cases := []struct {
		typ  ParameterType
		text string
	}{
		{UInteger, "5"},
		{UInteger, "18446744073709551615"},
		{Integer, "-12"},
		{Integer, "0"},
		{Float, "3.5"},
		{Float, "-0.125"},
		{String, "hello world"},
		{Path, "./Cargo.toml"},
	}

	for _, tc := range cases {
		first, err := convert(tc.typ, tc.text)
		assert.Nil(t, err)

		second, err := convert(tc.typ, first.String())
		assert.Nil(t, err)
		assert.Equal(t, first, second)
	}
}

func TestConvert_FlagTakesNoValue(t *testing.T) {
	_, err := convert(Flag, "true")
	assert.NotNil(t, err)
}
