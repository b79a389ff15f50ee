// Package types defines the error and warning vocabulary shared by every
// stage of the GEDCOM parsing pipeline.
//
// Fatal problems are reported as *Error values with a stable ErrKind
// (encoding or structure) and, where determinable, the 1-based line number
// they originated from. Recoverable problems are reported as Warning values
// and returned alongside the best-effort Document.
//
// Design goals:
//   - Typed errors with stable categories; match with errors.Is against
//     ErrEncoding / ErrStructure.
//   - Never panic on malformed input.
//   - Warnings carry enough position data (line, byte offset, tag, xref)
//     to pinpoint every skipped record and unresolved reference.
//
// This package has no dependencies beyond the standard library.
package types
