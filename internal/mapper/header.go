package mapper

import (
	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
	"github.com/joshuapare/gedkit/pkg/types"
)

// MapHeader maps the HEAD node. Unlike other records, a header that cannot
// be mapped fails the whole parse.
func MapHeader(tree *ast.Tree, id ast.NodeID) (*record.Header, []types.Warning, error) {
	n := tree.Node(id)
	if n.Tag != ast.TagHead {
		return nil, nil, types.StructureError(n.Line, "first record must be HEAD, got %s", n.Tag)
	}

	d := newDecoder(tree, id)
	h := &record.Header{}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "SOUR":
			h.Source = d.headerSource(c)
		case "DEST":
			h.Destination = d.value(c)
		case "DATE":
			h.Date = d.value(c)
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "TIME" {
					return false
				}
				h.Time = d.value(cc)
				return true
			})
		case "SUBM":
			h.Submitter = pointerTo[record.Submitter](d, c)
		case "SUBN":
			if x, ok := ast.Pointer(d.value(c)); ok {
				h.Submission = record.XRef(x)
			}
		case "FILE":
			h.File = d.value(c)
		case "COPR":
			h.Copyright = d.text(c)
		case "GEDC":
			d.children(c, func(cc ast.NodeID, tag string) bool {
				switch tag {
				case "VERS":
					h.GEDCOM.Version = d.value(cc)
				case "FORM":
					h.GEDCOM.Form = d.value(cc)
				default:
					return false
				}
				return true
			})
		case "CHAR":
			h.CharSet.Name = d.value(c)
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "VERS" {
					return false
				}
				h.CharSet.Version = d.value(cc)
				return true
			})
		case "LANG":
			h.Language = d.value(c)
		case "PLAC":
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "FORM" {
					return false
				}
				h.PlaceForm = d.value(cc)
				return true
			})
		case "NOTE":
			h.Note = d.text(c)
		default:
			return false
		}
		return true
	})
	return h, d.warnings, d.err
}

func (d *decoder) headerSource(id ast.NodeID) record.HeaderSource {
	src := record.HeaderSource{ID: d.value(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "VERS":
			src.Version = d.value(c)
		case "NAME":
			src.Name = d.value(c)
		case "CORP":
			corp := &record.Corporation{Name: d.value(c)}
			d.children(c, func(cc ast.NodeID, tag string) bool {
				return d.contact(&corp.Address, cc, tag)
			})
			src.Corporation = corp
		case "DATA":
			data := &record.HeaderSourceData{Name: d.value(c)}
			d.children(c, func(cc ast.NodeID, tag string) bool {
				switch tag {
				case "DATE":
					data.Date = d.value(cc)
				case "COPR":
					data.Copyright = d.text(cc)
				default:
					return false
				}
				return true
			})
			src.Data = data
		default:
			return false
		}
		return true
	})
	return src
}
