package core

import "strconv"

// ParameterType describes the shape of value a parameter accepts on the
// command line.
type ParameterType int

const (
	// Flag is presence-only and consumes no value token.
	Flag ParameterType = iota

	// UInteger is a non-negative integer value.
	UInteger

	// Integer is a signed integer value.
	Integer

	// Float is a decimal number value.
	Float

	// String is raw text, stored verbatim.
	String

	// Path is a filesystem path, stored verbatim and never checked for
	// existence.
	Path
)

func (t ParameterType) String() string {
	switch t {
	case Flag:
		return "flag"
	case UInteger:
		return "unsigned integer"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// ParameterValue holds the parsed value of one parameter. The zero value
// means "not set". Accessors return the payload when the kind matches and
// the type's zero value otherwise; accessing the wrong variant is a caller
// logic error, not something the library reports.
type ParameterValue struct {
	kind ParameterType
	set  bool
	b    bool
	u    uint64
	i    int64
	f    float64
	s    string
}

// FlagValue records the presence of a Flag parameter.
func FlagValue() ParameterValue {
	return ParameterValue{kind: Flag, set: true, b: true}
}

// UIntegerValue wraps a non-negative integer.
func UIntegerValue(v uint64) ParameterValue {
	return ParameterValue{kind: UInteger, set: true, u: v}
}

// IntegerValue wraps a signed integer.
func IntegerValue(v int64) ParameterValue {
	return ParameterValue{kind: Integer, set: true, i: v}
}

// FloatValue wraps a decimal number.
func FloatValue(v float64) ParameterValue {
	return ParameterValue{kind: Float, set: true, f: v}
}

// StringValue wraps raw text.
func StringValue(v string) ParameterValue {
	return ParameterValue{kind: String, set: true, s: v}
}

// PathValue wraps a filesystem path.
func PathValue(v string) ParameterValue {
	return ParameterValue{kind: Path, set: true, s: v}
}

// Kind returns the variant this value holds. Only meaningful when IsSet
// reports true.
func (v ParameterValue) Kind() ParameterType { return v.kind }

// IsSet reports whether the value holds any variant.
func (v ParameterValue) IsSet() bool { return v.set }

// Bool returns true for a set Flag value.
func (v ParameterValue) Bool() bool {
	if v.kind != Flag {
		return false
	}
	return v.b
}

// UInteger returns the unsigned integer payload.
func (v ParameterValue) UInteger() uint64 {
	if v.kind != UInteger {
		return 0
	}
	return v.u
}

// Integer returns the signed integer payload.
func (v ParameterValue) Integer() int64 {
	if v.kind != Integer {
		return 0
	}
	return v.i
}

// Float returns the decimal number payload.
func (v ParameterValue) Float() float64 {
	if v.kind != Float {
		return 0
	}
	return v.f
}

// Text returns the raw text payload of a String value.
func (v ParameterValue) Text() string {
	if v.kind != String {
		return ""
	}
	return v.s
}

// Path returns the path payload of a Path value.
func (v ParameterValue) Path() string {
	if v.kind != Path {
		return ""
	}
	return v.s
}

// String formats the payload back to the text it was parsed from. Numeric
// formatting is lossless, so re-parsing the result yields an equal value.
func (v ParameterValue) String() string {
	if !v.set {
		return "<unset>"
	}
	switch v.kind {
	case Flag:
		return strconv.FormatBool(v.b)
	case UInteger:
		return strconv.FormatUint(v.u, 10)
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}
