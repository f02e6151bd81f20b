package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sean-h/cmdpro/display"
	"github.com/sean-h/cmdpro/errors"
	"github.com/sean-h/cmdpro/internal/common"
)

// parameter is one declared entry in the registry.
type parameter struct {
	name    string
	typ     ParameterType
	aliases []string
	desc    string
	value   ParameterValue
}

// Processor is the parameter registry and command line parser. Declare
// parameters with AddParameter, run ParseCommandLine (or Parse for the real
// process arguments), then query results with GetParameterValue and
// AbortFlag.
//
// A Processor is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Processor struct {
	parameters map[string]*parameter
	order      []string
	aliases    map[string]string // alias -> owning parameter name

	helpText    string
	versionText string
	abortFlag   bool
	out         io.Writer
}

// New returns an empty Processor writing help and version text to stdout.
func New() *Processor {
	return &Processor{
		parameters: map[string]*parameter{},
		aliases:    map[string]string{},
		out:        os.Stdout,
	}
}

// AddParameter registers a parameter under a unique name with one or more
// flag aliases (e.g. "--path", "--p"). Aliases are matched exactly and
// case-sensitively during parsing and must be unique across the whole
// registry. Registration is fail-fast: on any error the registry is left
// untouched.
func (p *Processor) AddParameter(name string, typ ParameterType, aliases ...string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewRegistration("parameter name must not be empty")
	}
	if len(aliases) == 0 {
		return errors.NewRegistration(fmt.Sprintf("parameter %s needs at least one alias", name))
	}
	if common.AnyBlank(aliases) {
		return errors.NewRegistration(fmt.Sprintf("parameter %s has a blank alias", name))
	}
	if _, ok := p.parameters[name]; ok {
		return errors.NewDuplicateName(name)
	}
	seen := make(map[string]struct{}, len(aliases))
	for _, alias := range aliases {
		if alias == helpToken || alias == versionToken {
			return errors.NewRegistration(fmt.Sprintf("alias %s is reserved", alias))
		}
		if owner, ok := p.aliases[alias]; ok {
			return errors.NewDuplicateAlias(alias, owner)
		}
		if _, ok := seen[alias]; ok {
			return errors.NewDuplicateAlias(alias, name)
		}
		seen[alias] = struct{}{}
	}

	p.parameters[name] = &parameter{
		name:    name,
		typ:     typ,
		aliases: append([]string(nil), aliases...),
	}
	p.order = append(p.order, name)
	for _, alias := range aliases {
		p.aliases[alias] = name
	}
	return nil
}

// Describe attaches a description to a declared parameter. Descriptions only
// appear in the listing built by Usage.
func (p *Processor) Describe(name, desc string) error {
	param, ok := p.parameters[name]
	if !ok {
		return errors.NewNotFound(name)
	}
	param.desc = desc
	return nil
}

// SetHelpText stores the text emitted verbatim when --help is encountered.
// Without it a default placeholder message is printed.
func (p *Processor) SetHelpText(text string) {
	p.helpText = text
}

// SetVersionText stores the text emitted when --version is encountered.
// Without it a default placeholder message is printed.
func (p *Processor) SetVersionText(text string) {
	p.versionText = text
}

// SetOutput redirects help and version emission away from stdout.
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// AbortFlag reports whether the last parse encountered --help or --version.
// Callers should skip normal execution when it returns true.
func (p *Processor) AbortFlag() bool {
	return p.abortFlag
}

// GetParameterValue returns the parsed value for a declared parameter name.
func (p *Processor) GetParameterValue(name string) (ParameterValue, error) {
	param, ok := p.parameters[name]
	if !ok {
		return ParameterValue{}, errors.NewNotFound(name)
	}
	if !param.value.IsSet() {
		return ParameterValue{}, errors.NewNotSet(name)
	}
	return param.value, nil
}

// Usage builds a usage listing of every declared parameter plus the reserved
// flags, in declaration order, under the given command name. The result is
// suitable as help text:
//
//	proc.SetHelpText(proc.Usage("mytool"))
func (p *Processor) Usage(name string) string {
	rows := make([]display.Option, 0, len(p.order)+2)
	for _, n := range p.order {
		param := p.parameters[n]
		hint := ""
		if param.typ != Flag {
			hint = "[" + strings.ToUpper(n) + "]"
		}
		rows = append(rows, display.Option{
			Flags: strings.Join(param.aliases, ", "),
			Hint:  hint,
			Desc:  param.desc,
		})
	}
	rows = append(rows,
		display.Option{Flags: helpToken, Desc: "Show this help message"},
		display.Option{Flags: versionToken, Desc: "Show version information"},
	)
	return display.BuildUsage(name, rows)
}
