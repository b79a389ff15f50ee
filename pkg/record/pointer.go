package record

import "fmt"

// XRef is a cross-reference id including its '@' delimiters, e.g. "@I1@".
type XRef string

// Namespace is an independent id space. The same XRef text may name an
// individual and a source at the same time.
type Namespace uint8

const (
	NamespaceUnknown Namespace = iota
	NamespaceIndividual
	NamespaceFamily
	NamespaceSource
	NamespaceRepository
	NamespaceMultimedia
	NamespaceNote
	NamespaceSubmitter
)

// String implements the Stringer interface for Namespace
func (n Namespace) String() string {
	switch n {
	case NamespaceIndividual:
		return "individual"
	case NamespaceFamily:
		return "family"
	case NamespaceSource:
		return "source"
	case NamespaceRepository:
		return "repository"
	case NamespaceMultimedia:
		return "multimedia"
	case NamespaceNote:
		return "note"
	case NamespaceSubmitter:
		return "submitter"
	default:
		return fmt.Sprintf("Namespace(%d)", uint8(n))
	}
}

type pointerState uint8

const (
	pointerUnset pointerState = iota
	pointerPending
	pointerResolved
	pointerDangling
)

// Pointer is a field naming another record of kind T.
//
// The mapper fills in XRef and leaves the pointer pending. The resolver
// then either binds it to the target's position in its Collection or marks
// it dangling; a dangling pointer keeps its XRef for diagnostics. Use
// Collection.Get to dereference.
type Pointer[T any] struct {
	XRef XRef
	Line int // 1-based line the pointer was read from

	state pointerState
	index int
}

// NewPointer returns a pending pointer to x.
func NewPointer[T any](x XRef, line int) Pointer[T] {
	return Pointer[T]{XRef: x, Line: line, state: pointerPending}
}

// IsSet reports whether the field was present in the input.
func (p Pointer[T]) IsSet() bool { return p.state != pointerUnset }

// Resolved reports whether the pointer was bound to an existing record.
func (p Pointer[T]) Resolved() bool { return p.state == pointerResolved }

// Dangling reports whether the resolver found no record for XRef.
func (p Pointer[T]) Dangling() bool { return p.state == pointerDangling }

// Namespace returns the id space T lives in.
func (p *Pointer[T]) Namespace() Namespace {
	var zero T
	if k, ok := any(zero).(interface{ Namespace() Namespace }); ok {
		return k.Namespace()
	}
	return NamespaceUnknown
}

// Target returns the XRef the pointer names.
func (p *Pointer[T]) Target() XRef { return p.XRef }

// SourceLine returns the line the pointer was read from.
func (p *Pointer[T]) SourceLine() int { return p.Line }

// Bind records the position of the target within its collection.
func (p *Pointer[T]) Bind(index int) {
	p.index = index
	p.state = pointerResolved
}

// MarkDangling records that no target exists.
func (p *Pointer[T]) MarkDangling() {
	p.index = 0
	p.state = pointerDangling
}

func (p Pointer[T]) String() string {
	switch p.state {
	case pointerUnset:
		return "<unset>"
	case pointerDangling:
		return string(p.XRef) + " (unresolved)"
	default:
		return string(p.XRef)
	}
}

// Ref is a pointer field as seen by a Linker.
type Ref interface {
	Namespace() Namespace
	Target() XRef
	SourceLine() int
	Bind(index int)
	MarkDangling()
}

// Linker is handed every pointer field of a record, one at a time.
type Linker interface {
	Link(ref Ref)
}

func linkPointer[T any](l Linker, p *Pointer[T]) {
	if p.IsSet() {
		l.Link(p)
	}
}

func linkPointers[T any](l Linker, ps []Pointer[T]) {
	for i := range ps {
		linkPointer(l, &ps[i])
	}
}
