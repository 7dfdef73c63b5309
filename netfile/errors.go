package netfile

import "errors"

// Sentinel errors returned by the readers. Line-level failures wrap one of
// them together with the 1-based line number.
var (
	// ErrSyntax indicates a line with the wrong shape or a non-integer field.
	ErrSyntax = errors.New("netfile: syntax error")

	// ErrNoProblemLine indicates DIMACS content before or without "p min N M".
	ErrNoProblemLine = errors.New("netfile: missing problem line")

	// ErrNodeRange indicates a DIMACS node number outside 1..N.
	ErrNodeRange = errors.New("netfile: node number out of range")

	// ErrLowerBound indicates a DIMACS arc with a non-zero lower bound.
	ErrLowerBound = errors.New("netfile: non-zero lower bounds are not supported")

	// ErrArcCount indicates a DIMACS file whose arc lines disagree with the problem line.
	ErrArcCount = errors.New("netfile: arc count does not match problem line")

	// ErrDuplicate indicates a node or edge declared twice.
	ErrDuplicate = errors.New("netfile: duplicate declaration")

	// ErrUnknownCommand indicates a script line with an unrecognized verb.
	ErrUnknownCommand = errors.New("netfile: unknown command")
)
