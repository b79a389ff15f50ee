package mapper

import (
	"strconv"
	"strings"

	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
	"github.com/joshuapare/gedkit/pkg/types"
)

// -----------------------------------------------------------------------------
// Notes, citations and media links
// -----------------------------------------------------------------------------

func (d *decoder) noteStructure(id ast.NodeID) record.NoteStructure {
	n := d.node(id)
	var ns record.NoteStructure
	if x, ok := ast.Pointer(n.Value); ok {
		ns.Note = record.NewPointer[record.Note](record.XRef(x), n.Line)
	} else {
		ns.Text = d.text(id)
	}
	d.children(id, func(c ast.NodeID, tag string) bool {
		if tag != "SOUR" {
			return false
		}
		ns.Sources = append(ns.Sources, d.citation(c))
		return true
	})
	return ns
}

func (d *decoder) citation(id ast.NodeID) record.SourceCitation {
	n := d.node(id)
	var sc record.SourceCitation
	if x, ok := ast.Pointer(n.Value); ok {
		sc.Source = record.NewPointer[record.Source](record.XRef(x), n.Line)
	} else {
		sc.Description = d.text(id)
	}

	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "PAGE":
			sc.Page = d.text(c)
		case "EVEN":
			sc.Event = d.value(c)
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "ROLE" {
					return false
				}
				sc.Role = d.value(cc)
				return true
			})
		case "DATA":
			sc.Data = d.citationData(c)
		case "QUAY":
			q, ok := record.ParseQuay(d.value(c))
			if !ok {
				d.warn(types.WarnMalformedValue, c, "certainty assessment must be 0-3, got %q", d.value(c))
				break
			}
			sc.Quality = q
		case "TEXT":
			sc.Texts = append(sc.Texts, d.text(c))
		case "OBJE":
			sc.Media = append(sc.Media, d.mediaLink(c))
		case "NOTE":
			sc.Notes = append(sc.Notes, d.noteStructure(c))
		default:
			return false
		}
		return true
	})
	return sc
}

func (d *decoder) citationData(id ast.NodeID) *record.CitationData {
	data := &record.CitationData{}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "DATE":
			data.Date = d.value(c)
		case "TEXT":
			data.Texts = append(data.Texts, d.text(c))
		default:
			return false
		}
		return true
	})
	return data
}

func (d *decoder) mediaLink(id ast.NodeID) record.MultimediaLink {
	n := d.node(id)
	var ml record.MultimediaLink
	if n.Value != "" {
		ml.Object = pointerTo[record.Multimedia](d, id)
	}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "FILE":
			ml.Files = append(ml.Files, d.mediaFile(c))
		case "TITL":
			ml.Title = d.text(c)
		case "FORM":
			// GEDCOM 5.5 placed FORM beside FILE
			if len(ml.Files) > 0 {
				ml.Files[len(ml.Files)-1].Format = d.value(c)
			}
		default:
			return false
		}
		return true
	})
	return ml
}

func (d *decoder) mediaFile(id ast.NodeID) record.MultimediaFile {
	f := record.MultimediaFile{Path: d.text(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "FORM":
			f.Format = d.value(c)
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "TYPE" && tag != "MEDI" {
					return false
				}
				f.MediaType = d.value(cc)
				return true
			})
		case "TITL":
			f.Title = d.text(c)
		default:
			return false
		}
		return true
	})
	return f
}

// -----------------------------------------------------------------------------
// Record bookkeeping shared by every record kind
// -----------------------------------------------------------------------------

// recordMeta points at the bookkeeping fields of the record being mapped.
// A nil field means the record kind does not carry it.
type recordMeta struct {
	refs   *[]record.UserReference
	rin    *string
	change **record.ChangeDate
	notes  *[]record.NoteStructure
}

func (d *decoder) meta(m recordMeta, c ast.NodeID, tag string) bool {
	switch {
	case tag == "REFN" && m.refs != nil:
		*m.refs = append(*m.refs, d.userReference(c))
	case tag == "RIN" && m.rin != nil:
		*m.rin = d.value(c)
	case tag == "CHAN" && m.change != nil:
		*m.change = d.changeDate(c)
	case tag == "NOTE" && m.notes != nil:
		*m.notes = append(*m.notes, d.noteStructure(c))
	default:
		return false
	}
	return true
}

func (d *decoder) userReference(id ast.NodeID) record.UserReference {
	ref := record.UserReference{Number: d.value(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		if tag != "TYPE" {
			return false
		}
		ref.Type = d.value(c)
		return true
	})
	return ref
}

func (d *decoder) changeDate(id ast.NodeID) *record.ChangeDate {
	cd := &record.ChangeDate{}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "DATE":
			cd.Date = d.value(c)
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "TIME" {
					return false
				}
				cd.Time = d.value(cc)
				return true
			})
		case "NOTE":
			cd.Notes = append(cd.Notes, d.noteStructure(c))
		default:
			return false
		}
		return true
	})
	return cd
}

// -----------------------------------------------------------------------------
// Addresses and places
// -----------------------------------------------------------------------------

func (d *decoder) address(id ast.NodeID) *record.Address {
	a := &record.Address{Lines: d.text(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "ADR1":
			a.Line1 = d.value(c)
		case "ADR2":
			a.Line2 = d.value(c)
		case "ADR3":
			a.Line3 = d.value(c)
		case "CITY":
			a.City = d.value(c)
		case "STAE":
			a.State = d.value(c)
		case "POST":
			a.PostalCode = d.value(c)
		case "CTRY":
			a.Country = d.value(c)
		default:
			return false
		}
		return true
	})
	return a
}

// contact maps ADDR and the contact lines that sit beside it into *a,
// creating the Address on first use.
func (d *decoder) contact(a **record.Address, c ast.NodeID, tag string) bool {
	switch tag {
	case "ADDR":
		addr := d.address(c)
		if *a != nil {
			addr.Phones, addr.Emails = (*a).Phones, (*a).Emails
			addr.Faxes, addr.Websites = (*a).Faxes, (*a).Websites
		}
		*a = addr
		return true
	case "PHON", "EMAIL", "FAX", "WWW":
	default:
		return false
	}

	if *a == nil {
		*a = &record.Address{}
	}
	v := ast.Unescape(d.value(c))
	switch tag {
	case "PHON":
		(*a).Phones = append((*a).Phones, v)
	case "EMAIL":
		(*a).Emails = append((*a).Emails, v)
	case "FAX":
		(*a).Faxes = append((*a).Faxes, v)
	case "WWW":
		(*a).Websites = append((*a).Websites, v)
	}
	return true
}

func (d *decoder) place(id ast.NodeID) *record.Place {
	p := &record.Place{Name: d.value(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "FORM":
			p.Form = d.value(c)
		case "FONE":
			p.Phonetic = append(p.Phonetic, d.placeVariation(c))
		case "ROMN":
			p.Romanized = append(p.Romanized, d.placeVariation(c))
		case "MAP":
			p.Map = d.coordinates(c)
		case "NOTE":
			p.Notes = append(p.Notes, d.noteStructure(c))
		default:
			return false
		}
		return true
	})
	return p
}

func (d *decoder) placeVariation(id ast.NodeID) record.PlaceVariation {
	v := record.PlaceVariation{Name: d.value(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		if tag != "TYPE" {
			return false
		}
		v.Type = d.value(c)
		return true
	})
	return v
}

// coordinates reads LATI and LONG, e.g. "N41.913744" and "W88.31085".
// Both must be present and well formed, otherwise the MAP is dropped.
func (d *decoder) coordinates(id ast.NodeID) *record.Coordinates {
	var (
		m                record.Coordinates
		haveLat, haveLon bool
	)
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "LATI":
			m.Latitude, haveLat = d.degrees(c, 'N', 'S')
		case "LONG":
			m.Longitude, haveLon = d.degrees(c, 'E', 'W')
		default:
			return false
		}
		return true
	})
	if !haveLat || !haveLon {
		return nil
	}
	return &m
}

func (d *decoder) degrees(id ast.NodeID, pos, neg byte) (float64, bool) {
	v := strings.TrimSpace(d.value(id))
	if len(v) < 2 {
		d.warn(types.WarnMalformedValue, id, "malformed coordinate %q", v)
		return 0, false
	}
	hemi := v[0] &^ 0x20 // upper case
	if hemi != pos && hemi != neg {
		d.warn(types.WarnMalformedValue, id, "coordinate %q must start with %c or %c", v, pos, neg)
		return 0, false
	}
	f, err := strconv.ParseFloat(v[1:], 64)
	if err != nil {
		d.warn(types.WarnMalformedValue, id, "malformed coordinate %q", v)
		return 0, false
	}
	if hemi == neg {
		f = -f
	}
	return f, true
}

// -----------------------------------------------------------------------------
// Events
// -----------------------------------------------------------------------------

// eventDetail maps the children common to every event and attribute.
func (d *decoder) eventDetail(ed *record.EventDetail, c ast.NodeID, tag string) bool {
	switch tag {
	case "TYPE":
		ed.Type = d.value(c)
	case "DATE":
		ed.Date = d.value(c)
	case "PLAC":
		ed.Place = d.place(c)
	case "AGNC":
		ed.Agency = d.value(c)
	case "RELI":
		ed.Religion = d.value(c)
	case "CAUS":
		ed.Cause = d.value(c)
	case "RESN":
		ed.Restriction = d.value(c)
	case "NOTE":
		ed.Notes = append(ed.Notes, d.noteStructure(c))
	case "SOUR":
		ed.Sources = append(ed.Sources, d.citation(c))
	case "OBJE":
		ed.Media = append(ed.Media, d.mediaLink(c))
	default:
		return d.contact(&ed.Address, c, tag)
	}
	return true
}

// -----------------------------------------------------------------------------
// Personal names
// -----------------------------------------------------------------------------

func (d *decoder) personalName(id ast.NodeID) record.PersonalName {
	name := record.PersonalName{Value: d.value(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "TYPE":
			name.Type = d.value(c)
		case "FONE":
			name.Phonetic = append(name.Phonetic, d.nameVariation(c))
		case "ROMN":
			name.Romanized = append(name.Romanized, d.nameVariation(c))
		default:
			return d.namePiece(&name.Pieces, c, tag)
		}
		return true
	})
	return name
}

func (d *decoder) nameVariation(id ast.NodeID) record.NameVariation {
	v := record.NameVariation{Value: d.value(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		if tag == "TYPE" {
			v.Type = d.value(c)
			return true
		}
		return d.namePiece(&v.Pieces, c, tag)
	})
	return v
}

func (d *decoder) namePiece(p *record.NamePieces, c ast.NodeID, tag string) bool {
	switch tag {
	case "NPFX":
		p.Prefix = d.value(c)
	case "GIVN":
		p.Given = d.value(c)
	case "NICK":
		p.Nickname = d.value(c)
	case "SPFX":
		p.SurnamePrefix = d.value(c)
	case "SURN":
		p.Surname = d.value(c)
	case "NSFX":
		p.Suffix = d.value(c)
	case "NOTE":
		p.Notes = append(p.Notes, d.noteStructure(c))
	case "SOUR":
		p.Sources = append(p.Sources, d.citation(c))
	default:
		return false
	}
	return true
}
