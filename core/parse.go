package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sean-h/cmdpro/display"
	"github.com/sean-h/cmdpro/errors"
)

// Reserved tokens handled by the parser itself. Only the exact long forms
// are reserved; short forms like --v remain available as user aliases.
const (
	helpToken    = "--help"
	versionToken = "--version"
)

// Parse parses the program's own command line.
func (p *Processor) Parse() error {
	return p.ParseCommandLine(os.Args[1:])
}

// ParseCommandLine scans args left to right and fills in declared parameter
// values. A Flag parameter records presence; every other type consumes the
// next token verbatim as its value, even when that token looks like a flag.
// Encountering --help or --version emits the stored text, sets the abort
// flag, and stops the scan without error. The first malformed token ends the
// parse with an error and leaves later tokens unexamined.
func (p *Processor) ParseCommandLine(args []string) error {
	p.abortFlag = false

	for i := 0; i < len(args); i++ {
		token := args[i]
		switch token {
		case helpToken:
			display.WriteHelp(p.out, p.helpText)
			p.abortFlag = true
			return nil
		case versionToken:
			display.WriteVersion(p.out, p.versionText)
			p.abortFlag = true
			return nil
		}

		name, ok := p.aliases[token]
		if !ok {
			return errors.NewUnknownParameter(token, p.suggestAlias(token))
		}
		param := p.parameters[name]
		if param.typ == Flag {
			param.value = FlagValue()
			continue
		}
		if i+1 >= len(args) {
			return errors.NewMissingValue(name)
		}
		i++
		value, err := convert(param.typ, args[i])
		if err != nil {
			return errors.NewInvalidValue(name, args[i], param.typ.String())
		}
		param.value = value
	}
	return nil
}

// convert turns raw token text into a typed value.
func convert(typ ParameterType, text string) (ParameterValue, error) {
	switch typ {
	case UInteger:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return ParameterValue{}, err
		}
		return UIntegerValue(v), nil
	case Integer:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return ParameterValue{}, err
		}
		return IntegerValue(v), nil
	case Float:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ParameterValue{}, err
		}
		return FloatValue(v), nil
	case String:
		return StringValue(text), nil
	case Path:
		return PathValue(text), nil
	default:
		return ParameterValue{}, fmt.Errorf("type %s takes no value", typ)
	}
}
