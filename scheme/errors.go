package scheme

import "fmt"

// ParseError is the only error type returned by Parse. It wraps one of
// the typed causes below and records the 1-based line the document
// failed on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownIntentError reports an intent rune other than `+` or `!` on a
// rule or test line.
type UnknownIntentError struct {
	Char rune
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("unknown intent identifier %q: must be either `+` or `!`", e.Char)
}

// UnknownOperatorError reports an unrecognized line operator.
type UnknownOperatorError struct {
	Char rune
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown line operator %q", e.Char)
}

// UnknownClassError reports a class reference with no definition
// anywhere in the document.
type UnknownClassError struct {
	Name rune
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class %q", e.Name)
}

// PatternError reports a rule pattern that failed to compile after
// class substitution.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
