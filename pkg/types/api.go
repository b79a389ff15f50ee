package types

import (
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies fatal parse errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindEncoding  ErrKind = iota // bytes cannot be turned into a valid Unicode string
	ErrKindStructure                // broken line grammar or level discipline, misplaced HEAD, missing TRLR
)

// String implements the Stringer interface for ErrKind
func (k ErrKind) String() string {
	switch k {
	case ErrKindEncoding:
		return "encoding"
	case ErrKindStructure:
		return "structure"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
//
// Line is the 1-based input line the error originated from, or 0 when the
// position is not known (e.g. an encoding failure reported by byte offset).
type Error struct {
	Kind ErrKind
	Line int
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.String() + " error"
	if e.Line > 0 {
		msg += " at line " + strconv.Itoa(e.Line)
	}
	msg += ": " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same kind. This lets callers
// write errors.Is(err, types.ErrStructure) against any structure failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is matching by kind.
var (
	// ErrEncoding matches every EncodingError.
	ErrEncoding = &Error{Kind: ErrKindEncoding, Msg: "invalid character encoding"}
	// ErrStructure matches every StructureError.
	ErrStructure = &Error{Kind: ErrKindStructure, Msg: "invalid GEDCOM structure"}
)

// EncodingError builds an encoding failure.
func EncodingError(format string, args ...any) *Error {
	return &Error{Kind: ErrKindEncoding, Msg: fmt.Sprintf(format, args...)}
}

// StructureError builds a structure failure anchored at line (0 if unknown).
func StructureError(line int, format string, args ...any) *Error {
	return &Error{Kind: ErrKindStructure, Line: line, Msg: fmt.Sprintf(format, args...)}
}
