package patch

import "fmt"

// IOError reports a failed read or write of the configuration file.
type IOError struct {
	Err  error
	Op   string
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports malformed JSON in the configuration file.
type ParseError struct {
	Err  error
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
