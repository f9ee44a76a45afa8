package config

import (
	"errors"
	"fmt"
)

// InitError is the single error kind every initialization failure is
// wrapped into: I/O problems, an unparseable document, unknown enum
// values. The original cause is preserved for diagnostics.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("configuration initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// FatalError reports a port or cert-port outside the valid TCP range.
// A node with an unbindable port can never run, so this class bypasses
// InitError wrapping; the boundary that called Load decides whether the
// process dies.
type FatalError struct {
	Node  string
	Field string
	Value int
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("node %q: illegal %s %d, must be greater than 0 and smaller than 65536",
		e.Node, e.Field, e.Value)
}

// IsFatal reports whether err carries a *FatalError anywhere in its chain.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}
