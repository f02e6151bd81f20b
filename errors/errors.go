package errors

import "fmt"

// RegistrationError indicates a parameter declaration was rejected before it
// touched the registry, e.g. an empty name or a blank alias.
type RegistrationError struct{ Msg string }

func (e RegistrationError) Error() string { return e.Msg }

// DuplicateNameError indicates a parameter name was registered twice.
type DuplicateNameError struct{ Name string }

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("parameter already registered: %s", e.Name)
}

// DuplicateAliasError indicates an alias already belongs to another parameter.
// Owner names the parameter that holds the alias.
type DuplicateAliasError struct{ Alias, Owner string }

func (e DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %s already registered to parameter %s", e.Alias, e.Owner)
}

// MissingValueError indicates a value-taking parameter's alias was the last
// token on the command line with nothing following it.
type MissingValueError struct{ Name string }

func (e MissingValueError) Error() string {
	return fmt.Sprintf("no value passed for parameter %s", e.Name)
}

// InvalidValueError indicates a value token could not be converted to the
// parameter's declared type.
type InvalidValueError struct{ Name, Text, Want string }

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s: expected %s", e.Text, e.Name, e.Want)
}

// UnknownParameterError indicates a token matched no declared alias and no
// reserved token. Suggestion, if present, is a close match the user may have
// intended.
type UnknownParameterError struct{ Token, Suggestion string }

func (e UnknownParameterError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown parameter: %s (did you mean %q?)", e.Token, e.Suggestion)
	}
	return fmt.Sprintf("unknown parameter: %s", e.Token)
}

// NotFoundError indicates a query for a parameter name that was never declared.
type NotFoundError struct{ Name string }

func (e NotFoundError) Error() string {
	return fmt.Sprintf("parameter not declared: %s", e.Name)
}

// NotSetError indicates a declared parameter was never supplied on the
// command line.
type NotSetError struct{ Name string }

func (e NotSetError) Error() string {
	return fmt.Sprintf("parameter not set: %s", e.Name)
}

// Helper constructors
func NewRegistration(msg string) error { return RegistrationError{Msg: msg} }
func NewDuplicateName(name string) error {
	return DuplicateNameError{Name: name}
}
func NewDuplicateAlias(alias, owner string) error {
	return DuplicateAliasError{Alias: alias, Owner: owner}
}
func NewMissingValue(name string) error { return MissingValueError{Name: name} }
func NewInvalidValue(name, text, want string) error {
	return InvalidValueError{Name: name, Text: text, Want: want}
}
func NewUnknownParameter(token, suggestion string) error {
	return UnknownParameterError{Token: token, Suggestion: suggestion}
}
func NewNotFound(name string) error { return NotFoundError{Name: name} }
func NewNotSet(name string) error   { return NotSetError{Name: name} }
