package mapper

import (
	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
	"github.com/joshuapare/gedkit/pkg/types"
)

func (d *decoder) individual(id ast.NodeID) *record.Individual {
	ind := &record.Individual{XRef: d.recordXRef(id)}
	meta := recordMeta{refs: &ind.UserReferences, rin: &ind.RecordID, change: &ind.Change, notes: &ind.Notes}

	d.children(id, func(c ast.NodeID, tag string) bool {
		switch {
		case individualEvents[tag]:
			ind.Events = append(ind.Events, d.individualEvent(c))
			return true
		case individualAttributes[tag]:
			ind.Attributes = append(ind.Attributes, d.individualEvent(c))
			return true
		case d.meta(meta, c, tag):
			return true
		}

		switch tag {
		case "RESN":
			ind.Restriction = d.value(c)
		case "NAME":
			ind.Names = append(ind.Names, d.personalName(c))
		case "SEX":
			g, ok := record.ParseGender(d.value(c))
			if !ok {
				d.warn(types.WarnMalformedValue, c, "sex must be M, F, N or U, got %q", d.value(c))
				break
			}
			ind.Sex = g
		case "FAMC":
			if link, ok := d.childToFamily(c); ok {
				ind.ChildOf = append(ind.ChildOf, link)
			}
		case "FAMS":
			if link, ok := d.spouseToFamily(c); ok {
				ind.SpouseOf = append(ind.SpouseOf, link)
			}
		case "SUBM":
			ind.Submitters = appendPointer(d, ind.Submitters, c)
		case "ASSO":
			if a, ok := d.association(c); ok {
				ind.Associations = append(ind.Associations, a)
			}
		case "ALIA":
			ind.Aliases = appendPointer(d, ind.Aliases, c)
		case "ANCI":
			ind.AncestorInterest = appendPointer(d, ind.AncestorInterest, c)
		case "DESI":
			ind.DescendantInterest = appendPointer(d, ind.DescendantInterest, c)
		case "RFN":
			ind.RecordFileNumber = d.value(c)
		case "AFN":
			ind.AncestralFileNumber = d.value(c)
		case "SOUR":
			ind.Sources = append(ind.Sources, d.citation(c))
		case "OBJE":
			ind.Media = append(ind.Media, d.mediaLink(c))
		default:
			return false
		}
		return true
	})
	return ind
}

func (d *decoder) individualEvent(id ast.NodeID) record.IndividualEvent {
	n := d.node(id)
	ev := record.IndividualEvent{Tag: n.Tag, Value: d.text(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch {
		case tag == "AGE":
			ev.Age = d.value(c)
		case tag == "FAMC" && famcEvents[n.Tag]:
			ev.Family = pointerTo[record.Family](d, c)
			d.children(c, func(cc ast.NodeID, tag string) bool {
				if tag != "ADOP" {
					return false
				}
				ev.AdoptedBy = d.value(cc)
				return true
			})
		default:
			return d.eventDetail(&ev.EventDetail, c, tag)
		}
		return true
	})
	return ev
}

func (d *decoder) childToFamily(id ast.NodeID) (record.ChildToFamilyLink, bool) {
	link := record.ChildToFamilyLink{Family: pointerTo[record.Family](d, id)}
	if !link.Family.IsSet() {
		return link, false
	}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "PEDI":
			p, ok := record.ParsePedigree(d.value(c))
			if !ok {
				d.warn(types.WarnMalformedValue, c, "unknown pedigree %q", d.value(c))
				break
			}
			link.Pedigree = p
		case "STAT":
			link.Status = d.value(c)
		case "NOTE":
			link.Notes = append(link.Notes, d.noteStructure(c))
		default:
			return false
		}
		return true
	})
	return link, true
}

func (d *decoder) spouseToFamily(id ast.NodeID) (record.SpouseToFamilyLink, bool) {
	link := record.SpouseToFamilyLink{Family: pointerTo[record.Family](d, id)}
	if !link.Family.IsSet() {
		return link, false
	}
	d.children(id, func(c ast.NodeID, tag string) bool {
		if tag != "NOTE" {
			return false
		}
		link.Notes = append(link.Notes, d.noteStructure(c))
		return true
	})
	return link, true
}

func (d *decoder) association(id ast.NodeID) (record.Association, bool) {
	a := record.Association{Individual: pointerTo[record.Individual](d, id)}
	if !a.Individual.IsSet() {
		return a, false
	}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "RELA":
			a.Relation = d.value(c)
		case "SOUR":
			a.Sources = append(a.Sources, d.citation(c))
		case "NOTE":
			a.Notes = append(a.Notes, d.noteStructure(c))
		default:
			return false
		}
		return true
	})
	return a, true
}
