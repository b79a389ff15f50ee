package gedcom

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshuapare/gedkit/internal/charset"
	"github.com/joshuapare/gedkit/internal/lexer"
	"github.com/joshuapare/gedkit/internal/logger"
	"github.com/joshuapare/gedkit/internal/mapper"
	"github.com/joshuapare/gedkit/internal/mmfile"
	"github.com/joshuapare/gedkit/internal/resolve"
	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
	"github.com/joshuapare/gedkit/pkg/types"
)

// ParseFile maps path into memory and parses its contents.
//
// Example:
//
//	doc, _, err := gedcom.ParseFile("royal92.ged", gedcom.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Individuals.Len(), "individuals")
func ParseFile(path string, opts Options) (*record.Document, []types.Warning, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read GEDCOM file %s: %w", path, err)
	}
	// Decoding copies the text out of the mapping, so nothing in the
	// document refers to data once Parse returns.
	defer func() { _ = release() }()
	return Parse(data, opts)
}

// ParseString parses GEDCOM text that is already held in a string. The
// string's bytes still go through encoding detection.
func ParseString(content string, opts Options) (*record.Document, []types.Warning, error) {
	return Parse([]byte(content), opts)
}

// Parse parses the raw bytes of a GEDCOM file.
func Parse(data []byte, opts Options) (*record.Document, []types.Warning, error) {
	return ParseContext(context.Background(), data, opts)
}

// ParseContext is Parse with a context that can cancel record mapping.
// The returned error is either a *types.Error (encoding or structure) or
// ctx's error.
func ParseContext(ctx context.Context, data []byte, opts Options) (*record.Document, []types.Warning, error) {
	log := logger.OrDiscard(opts.Logger)
	c := &collector{verbose: opts.Verbose, log: log}

	dec, err := charset.Decode(data, charset.Options{Lenient: opts.Lenient})
	if err != nil {
		return nil, nil, err
	}
	c.add(dec.Warnings...)
	log.Debug("decoded input", slog.String("encoding", dec.Encoding), slog.Int("bytes", len(data)))

	tree, err := ast.Build(lexer.New(dec.Text))
	if err != nil {
		return nil, nil, err
	}
	log.Debug("built tree", slog.Int("nodes", tree.Len()), slog.Int("records", len(tree.Roots())))

	head, body, err := frame(tree)
	if err != nil {
		return nil, nil, err
	}

	doc := record.NewDocument()
	doc.Encoding = dec.Encoding

	hdr, ws, err := mapper.MapHeader(tree, head)
	if err != nil {
		return nil, nil, err
	}
	doc.Header = hdr
	c.add(ws...)

	outcomes, err := mapper.MapRecords(ctx, tree, body, opts.Workers)
	if err != nil {
		return nil, nil, err
	}

	var skipped, failed int
	for _, o := range outcomes {
		c.add(o.Warnings...)
		n := tree.Node(o.Node)
		switch o.Status {
		case mapper.StatusSkipped:
			skipped++
		case mapper.StatusFailed:
			failed++
			c.add(types.Warning{
				Kind: types.WarnMalformedRecord,
				Line: n.Line,
				Tag:  n.Tag,
				XRef: n.XRef,
				Msg:  fmt.Sprintf("%s record dropped: %v", n.Tag, o.Err),
			})
		case mapper.StatusMapped:
			if !doc.Add(o.Record) {
				skipped++
				x := string(o.Record.ID())
				c.add(types.Warning{
					Kind: types.WarnDuplicateXRef,
					Line: n.Line,
					Tag:  n.Tag,
					XRef: x,
					Msg:  fmt.Sprintf("duplicate %s record %s dropped", o.Record.Namespace(), x),
				})
			}
		}
	}
	log.Debug("mapped records",
		slog.Int("records", doc.Len()),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed))

	res := resolve.Resolve(doc)
	c.add(res.Warnings...)
	log.Debug("resolved pointers", slog.Int("bound", res.Bound), slog.Int("dangling", res.Dangling()))

	return doc, c.warnings, nil
}

// frame checks the top-level layout: HEAD first, exactly one HEAD, TRLR
// last. It returns HEAD and the record nodes between HEAD and TRLR.
func frame(tree *ast.Tree) (ast.NodeID, []ast.NodeID, error) {
	roots := tree.Roots()
	if len(roots) == 0 {
		return 0, nil, types.StructureError(0, "empty file, expected HEAD")
	}

	head := roots[0]
	if n := tree.Node(head); n.Tag != ast.TagHead {
		return 0, nil, types.StructureError(n.Line, "file must begin with HEAD, got %s", n.Tag)
	}

	trailer := -1
	for i, id := range roots[1:] {
		n := tree.Node(id)
		switch {
		case trailer >= 0:
			return 0, nil, types.StructureError(n.Line, "%s after TRLR", n.Tag)
		case n.Tag == ast.TagHead:
			return 0, nil, types.StructureError(n.Line, "second HEAD record")
		case n.Tag == ast.TagTrailer:
			trailer = i + 1
		}
	}
	if trailer < 0 {
		last := tree.Node(roots[len(roots)-1])
		return 0, nil, types.StructureError(last.Line, "missing TRLR record")
	}
	return head, roots[1:trailer], nil
}

// collector accumulates warnings when verbose and echoes them to the log.
type collector struct {
	verbose  bool
	log      *slog.Logger
	warnings []types.Warning
}

func (c *collector) add(ws ...types.Warning) {
	if !c.verbose {
		return
	}
	for _, w := range ws {
		logger.Warning(c.log, w)
	}
	c.warnings = append(c.warnings, ws...)
}
