// Package mmfile maps GEDCOM input files into memory for a single
// read-only pass.
//
// The returned bytes are only valid until release is called. Callers must
// not keep slices or unsafe strings of them past that point.
package mmfile
