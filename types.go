package cmdpro

import "github.com/sean-h/cmdpro/core"

// Processor is the parameter registry and command line parser.
//
// It is populated with AddParameter calls before parsing, mutated once by
// ParseCommandLine (or Parse), then queried read-only. A Processor is not
// safe for concurrent use.
type Processor = core.Processor

// ParameterType describes the shape of value a parameter accepts.
//
// Flag parameters are presence-only and consume no value token; every other
// type consumes exactly one following token as its value.
type ParameterType = core.ParameterType

const (
	// Flag is presence-only, e.g. --verbose.
	Flag = core.Flag

	// UInteger is a non-negative integer value.
	UInteger = core.UInteger

	// Integer is a signed integer value.
	Integer = core.Integer

	// Float is a decimal number value.
	Float = core.Float

	// String is raw text, stored verbatim.
	String = core.String

	// Path is a filesystem path, stored verbatim and never checked for
	// existence.
	Path = core.Path
)

// ParameterValue is the tagged value parsed for one parameter.
//
// Query the variant with Kind, then read the payload with the matching
// accessor (Bool, UInteger, Integer, Float, Text, Path). Its String method
// formats the payload back to text losslessly.
type ParameterValue = core.ParameterValue

// Value constructors, re-exported for callers composing expected values in
// tests or defaults of their own.
var (
	FlagValue     = core.FlagValue
	UIntegerValue = core.UIntegerValue
	IntegerValue  = core.IntegerValue
	FloatValue    = core.FloatValue
	StringValue   = core.StringValue
	PathValue     = core.PathValue
)
