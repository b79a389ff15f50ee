package ast

import (
	"github.com/joshuapare/gedkit/internal/lexer"
	"github.com/joshuapare/gedkit/pkg/types"
)

// TokenSource yields tokens one at a time. *lexer.Lexer implements it.
type TokenSource interface {
	Next() bool
	Token() lexer.Token
	Err() error
}

// BuildString tokenizes text and builds its tree.
func BuildString(text string) (*Tree, error) {
	return Build(lexer.New(text))
}

// Build consumes src and assembles the node forest. It fails with a
// StructureError when the first line is not level 0 or when a line is
// more than one level deeper than the line it would attach under.
func Build(src TokenSource) (*Tree, error) {
	tree := NewTree()

	// open holds the chain of nodes a deeper line may still attach to.
	// open[i] is at level i, so the slice never needs a separate level field.
	open := make([]NodeID, 0, 8)

	for src.Next() {
		tok := src.Token()

		if tree.Len() == 0 && tok.Level != 0 {
			return nil, types.StructureError(tok.Line, "first line must be level 0, got level %d", tok.Level)
		}
		if tok.Level > len(open) {
			return nil, types.StructureError(tok.Line, "illegal level jump from %d to %d", len(open)-1, tok.Level)
		}
		open = open[:tok.Level]

		parent := NoParent
		if tok.Level > 0 {
			parent = open[tok.Level-1]
		}
		id := tree.Add(parent, Node{
			Level: tok.Level,
			XRef:  tok.XRef,
			Tag:   tok.Tag,
			Value: tok.Value,
			Line:  tok.Line,
		})
		open = append(open, id)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return tree, nil
}
