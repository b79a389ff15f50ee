// Package ast provides the raw node tree of a GEDCOM file.
//
// A GEDCOM file is a flat sequence of lines whose level numbers encode an
// implicit indentation. Build turns that sequence into a forest of nodes,
// one root per top-level record, checking the level discipline on the way.
// The tree carries no GEDCOM semantics: HEAD, INDI, CONT and user-defined
// tags are all just nodes. Mapping nodes to typed records is the job of the
// record mapper.
//
// # Core Types
//
// Tree is an arena. Nodes live in one slice and refer to their children by
// NodeID, so a tree has no parent pointers and no cycles. Roots returns the
// top-level nodes in document order.
//
// # Multi-line Text
//
// Long values are split across CONC (concatenate) and CONT (continue on a
// new line) children. Tree.Text reassembles them:
//
//	1 NOTE This is a lo
//	2 CONC ng note
//	2 CONT second line
//
// yields "This is a long note\nsecond line".
//
// # Usage Example
//
//	tree, err := ast.BuildString(text)
//	if err != nil {
//		return err
//	}
//	for _, root := range tree.Roots() {
//		n := tree.Node(root)
//		fmt.Println(n.Tag, n.XRef)
//	}
package ast
