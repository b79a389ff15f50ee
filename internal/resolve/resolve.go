// Package resolve binds the pointer fields of a mapped document to the
// records they name.
package resolve

import (
	"fmt"

	"github.com/joshuapare/gedkit/pkg/record"
	"github.com/joshuapare/gedkit/pkg/types"
)

// Result summarizes one resolution pass.
type Result struct {
	Bound    int             // pointers bound to a record
	Warnings []types.Warning // one DanglingReference per unbound pointer
}

// Dangling returns the number of pointers left unresolved.
func (r Result) Dangling() int { return len(r.Warnings) }

// Resolve visits every pointer of doc and looks its XRef up in the
// namespace of the pointer's declared target type. Found pointers are
// bound; the rest are marked dangling and reported. Resolve never fails
// and does nothing on a document that is already resolved.
func Resolve(doc *record.Document) Result {
	if doc.Resolved() {
		return Result{}
	}

	l := &linker{doc: doc}
	if doc.Header != nil {
		doc.Header.Link(l)
	}
	doc.Records(func(rec record.Record) {
		l.owner = rec.ID()
		rec.Link(l)
	})
	doc.MarkResolved()

	return Result{Bound: l.bound, Warnings: l.warnings}
}

// linker implements record.Linker against the document's collections.
type linker struct {
	doc      *record.Document
	owner    record.XRef // record whose pointers are being visited, "" for HEAD
	bound    int
	warnings []types.Warning
}

func (l *linker) Link(ref record.Ref) {
	ns := ref.Namespace()
	if i, ok := l.doc.IndexOf(ns, ref.Target()); ok {
		ref.Bind(i)
		l.bound++
		return
	}

	ref.MarkDangling()
	l.warnings = append(l.warnings, types.Warning{
		Kind: types.WarnDanglingReference,
		Line: ref.SourceLine(),
		XRef: string(l.owner),
		Msg:  fmt.Sprintf("no %s record %s", ns, ref.Target()),
	})
}
