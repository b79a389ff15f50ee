package mapper

import (
	"strings"

	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
)

// -----------------------------------------------------------------------------
// Source
// -----------------------------------------------------------------------------

func (d *decoder) source(id ast.NodeID) *record.Source {
	src := &record.Source{XRef: d.recordXRef(id)}
	meta := recordMeta{refs: &src.UserReferences, rin: &src.RecordID, change: &src.Change, notes: &src.Notes}

	d.children(id, func(c ast.NodeID, tag string) bool {
		if d.meta(meta, c, tag) {
			return true
		}
		switch tag {
		case "DATA":
			src.Data = d.sourceData(c)
		case "AUTH":
			src.Author = d.text(c)
		case "TITL":
			src.Title = d.text(c)
		case "ABBR":
			src.Abbreviation = d.value(c)
		case "PUBL":
			src.Publication = d.text(c)
		case "TEXT":
			src.Text = d.text(c)
		case "REPO":
			src.Repositories = append(src.Repositories, d.repositoryCitation(c))
		case "OBJE":
			src.Media = append(src.Media, d.mediaLink(c))
		default:
			return false
		}
		return true
	})
	return src
}

func (d *decoder) sourceData(id ast.NodeID) *record.SourceData {
	data := &record.SourceData{}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "EVEN":
			ev := record.SourceDataEvent{Types: d.value(c)}
			d.children(c, func(cc ast.NodeID, tag string) bool {
				switch tag {
				case "DATE":
					ev.Date = d.value(cc)
				case "PLAC":
					ev.Place = d.value(cc)
				default:
					return false
				}
				return true
			})
			data.Events = append(data.Events, ev)
		case "AGNC":
			data.Agency = d.value(c)
		case "NOTE":
			data.Notes = append(data.Notes, d.noteStructure(c))
		default:
			return false
		}
		return true
	})
	return data
}

// repositoryCitation maps a REPO line of a source. An empty value is
// legal and means the repository is described only by its notes.
func (d *decoder) repositoryCitation(id ast.NodeID) record.RepositoryCitation {
	var rc record.RepositoryCitation
	if d.value(id) != "" {
		rc.Repository = pointerTo[record.Repository](d, id)
	}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "CALN":
			cn := record.CallNumber{Number: d.value(c)}
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "MEDI" {
					return false
				}
				cn.Media = d.value(cc)
				return true
			})
			rc.CallNumbers = append(rc.CallNumbers, cn)
		case "NOTE":
			rc.Notes = append(rc.Notes, d.noteStructure(c))
		default:
			return false
		}
		return true
	})
	return rc
}

// -----------------------------------------------------------------------------
// Repository
// -----------------------------------------------------------------------------

func (d *decoder) repository(id ast.NodeID) *record.Repository {
	repo := &record.Repository{XRef: d.recordXRef(id)}
	meta := recordMeta{refs: &repo.UserReferences, rin: &repo.RecordID, change: &repo.Change, notes: &repo.Notes}

	d.children(id, func(c ast.NodeID, tag string) bool {
		switch {
		case d.meta(meta, c, tag):
		case tag == "NAME":
			repo.Name = d.value(c)
		default:
			return d.contact(&repo.Address, c, tag)
		}
		return true
	})
	return repo
}

// -----------------------------------------------------------------------------
// Multimedia
// -----------------------------------------------------------------------------

func (d *decoder) multimedia(id ast.NodeID) *record.Multimedia {
	obj := &record.Multimedia{XRef: d.recordXRef(id)}
	meta := recordMeta{refs: &obj.UserReferences, rin: &obj.RecordID, change: &obj.Change, notes: &obj.Notes}

	d.children(id, func(c ast.NodeID, tag string) bool {
		switch {
		case d.meta(meta, c, tag):
		case tag == "FILE":
			obj.Files = append(obj.Files, d.mediaFile(c))
		case tag == "SOUR":
			obj.Sources = append(obj.Sources, d.citation(c))
		default:
			return false
		}
		return true
	})
	return obj
}

// -----------------------------------------------------------------------------
// Note
// -----------------------------------------------------------------------------

func (d *decoder) note(id ast.NodeID) *record.Note {
	note := &record.Note{XRef: d.recordXRef(id), Text: d.text(id)}
	if d.xrefInValue {
		note.Text = strings.TrimPrefix(strings.TrimPrefix(note.Text, d.value(id)), "\n")
	}
	meta := recordMeta{refs: &note.UserReferences, rin: &note.RecordID, change: &note.Change}

	d.children(id, func(c ast.NodeID, tag string) bool {
		switch {
		case d.meta(meta, c, tag):
		case tag == "SOUR":
			note.Sources = append(note.Sources, d.citation(c))
		default:
			return false
		}
		return true
	})
	return note
}

// -----------------------------------------------------------------------------
// Submitter
// -----------------------------------------------------------------------------

func (d *decoder) submitter(id ast.NodeID) *record.Submitter {
	subm := &record.Submitter{XRef: d.recordXRef(id)}
	meta := recordMeta{rin: &subm.RecordID, change: &subm.Change, notes: &subm.Notes}

	d.children(id, func(c ast.NodeID, tag string) bool {
		switch {
		case d.meta(meta, c, tag):
		case tag == "NAME":
			subm.Name = d.value(c)
		case tag == "OBJE":
			subm.Media = append(subm.Media, d.mediaLink(c))
		case tag == "LANG":
			subm.Languages = append(subm.Languages, d.value(c))
		case tag == "RFN":
			subm.RecordFileNumber = d.value(c)
		default:
			return d.contact(&subm.Address, c, tag)
		}
		return true
	})
	return subm
}
