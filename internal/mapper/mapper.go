// Package mapper turns top-level nodes of a GEDCOM tree into typed records.
//
// Each top-level node is mapped on its own: a failure in one record is
// reported in its Outcome and never touches another record, which is what
// lets MapRecords fan the work out across goroutines. Pointer fields come
// out pending; binding them is the resolver's job.
package mapper

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
	"github.com/joshuapare/gedkit/pkg/types"
)

// Status is the terminal state of mapping one top-level node.
type Status uint8

const (
	StatusMapped  Status = iota // Record is set
	StatusSkipped               // unsupported tag, subtree ignored
	StatusFailed                // Err is set, record dropped
)

func (s Status) String() string {
	switch s {
	case StatusMapped:
		return "mapped"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Outcome is the result of mapping one top-level node.
type Outcome struct {
	Node     ast.NodeID
	Status   Status
	Record   record.Record
	Warnings []types.Warning
	Err      error
}

// MapRecord maps the top-level node id. HEAD and TRLR are not records and
// come back skipped; the caller handles them.
func MapRecord(tree *ast.Tree, id ast.NodeID) Outcome {
	n := tree.Node(id)
	d := newDecoder(tree, id)

	var rec record.Record
	switch n.Tag {
	case ast.TagIndividual:
		rec = d.individual(id)
	case ast.TagFamily:
		rec = d.family(id)
	case ast.TagSource:
		rec = d.source(id)
	case ast.TagRepository:
		rec = d.repository(id)
	case ast.TagMultimedia:
		rec = d.multimedia(id)
	case ast.TagNote:
		rec = d.note(id)
	case ast.TagSubmitter:
		rec = d.submitter(id)
	default:
		d.warn(types.WarnUnsupportedRecord, id, "unsupported record %s skipped (%d lines)", n.Tag, tree.SubtreeSize(id))
		return Outcome{Node: id, Status: StatusSkipped, Warnings: d.warnings}
	}

	if d.err != nil {
		return Outcome{Node: id, Status: StatusFailed, Warnings: d.warnings, Err: d.err}
	}
	return Outcome{Node: id, Status: StatusMapped, Record: rec, Warnings: d.warnings}
}

// MapRecords maps roots concurrently with at most workers goroutines
// (GOMAXPROCS when workers <= 0). Outcomes are returned in the order of
// roots regardless of scheduling. The only error is ctx's.
func MapRecords(ctx context.Context, tree *ast.Tree, roots []ast.NodeID, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(roots))
	if len(roots) == 0 {
		return out, nil
	}

	if workers == 1 {
		for i, id := range roots {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = MapRecord(tree, id)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(roots)))
	for i, id := range roots {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine owns out[i]; the tree is only read
			out[i] = MapRecord(tree, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// decoder
// -----------------------------------------------------------------------------

// decoder maps one top-level subtree and collects its warnings.
type decoder struct {
	tree        *ast.Tree
	xref        string
	xrefInValue bool // xref was written after the tag
	warnings    []types.Warning
	err         error
}

func newDecoder(tree *ast.Tree, root ast.NodeID) *decoder {
	d := &decoder{tree: tree, xref: tree.Node(root).XRef}
	// Some producers write "0 INDI @I1@"; a bare pointer value stands in
	// for the missing xref.
	if d.xref == "" {
		if x, ok := ast.Pointer(tree.Node(root).Value); ok {
			d.xref, d.xrefInValue = x, true
		}
	}
	return d
}

func (d *decoder) node(id ast.NodeID) *ast.Node { return d.tree.Node(id) }

func (d *decoder) value(id ast.NodeID) string { return d.tree.Node(id).Value }

func (d *decoder) text(id ast.NodeID) string { return d.tree.Text(id) }

func (d *decoder) warn(kind types.WarningKind, id ast.NodeID, format string, args ...any) {
	n := d.tree.Node(id)
	d.warnings = append(d.warnings, types.Warning{
		Kind: kind,
		Line: n.Line,
		Tag:  n.Tag,
		XRef: d.xref,
		Msg:  fmt.Sprintf(format, args...),
	})
}

// fail marks the record as failed. Only the first failure is kept.
func (d *decoder) fail(id ast.NodeID, format string, args ...any) {
	if d.err == nil {
		d.err = types.StructureError(d.node(id).Line, format, args...)
	}
}

// recordXRef returns the xref of a record node, failing the record when
// it is missing.
func (d *decoder) recordXRef(id ast.NodeID) record.XRef {
	if d.xref == "" {
		d.fail(id, "%s record without cross-reference id", d.node(id).Tag)
	}
	return record.XRef(d.xref)
}

// skip reports a child tag the record has no field for. Continuation
// lines are consumed by the text they continue and are not reported.
func (d *decoder) skip(id ast.NodeID) {
	n := d.node(id)
	switch {
	case ast.IsContinuation(n.Tag):
	case strings.HasPrefix(n.Tag, ast.UserTagPrefix):
		d.warn(types.WarnUnsupportedRecord, id, "user-defined tag %s skipped", n.Tag)
	default:
		d.warn(types.WarnUnsupportedRecord, id, "unsupported tag %s skipped", n.Tag)
	}
}

// children calls fn for every child of id. fn returns false for tags it
// does not handle, which are then reported by skip.
func (d *decoder) children(id ast.NodeID, fn func(c ast.NodeID, tag string) bool) {
	for _, c := range d.tree.Children(id) {
		if !fn(c, d.node(c).Tag) {
			d.skip(c)
		}
	}
}

func pointerTo[T any](d *decoder, id ast.NodeID) record.Pointer[T] {
	n := d.node(id)
	x, ok := ast.Pointer(n.Value)
	if !ok {
		d.warn(types.WarnMalformedValue, id, "%s expects a cross-reference, got %q", n.Tag, n.Value)
		return record.Pointer[T]{}
	}
	return record.NewPointer[T](record.XRef(x), n.Line)
}

// appendPointer appends the pointer at id to ps when it is well formed.
func appendPointer[T any](d *decoder, ps []record.Pointer[T], id ast.NodeID) []record.Pointer[T] {
	if p := pointerTo[T](d, id); p.IsSet() {
		return append(ps, p)
	}
	return ps
}
