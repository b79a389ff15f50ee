package mapper

import (
	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
)

func (d *decoder) family(id ast.NodeID) *record.Family {
	fam := &record.Family{XRef: d.recordXRef(id)}
	meta := recordMeta{refs: &fam.UserReferences, rin: &fam.RecordID, change: &fam.Change, notes: &fam.Notes}

	d.children(id, func(c ast.NodeID, tag string) bool {
		if familyEvents[tag] {
			fam.Events = append(fam.Events, d.familyEvent(c))
			return true
		}
		if d.meta(meta, c, tag) {
			return true
		}

		switch tag {
		case "RESN":
			fam.Restriction = d.value(c)
		case "HUSB":
			fam.Husband = pointerTo[record.Individual](d, c)
		case "WIFE":
			fam.Wife = pointerTo[record.Individual](d, c)
		case "CHIL":
			fam.Children = appendPointer(d, fam.Children, c)
		case "NCHI":
			fam.ChildCount = d.value(c)
		case "SUBM":
			fam.Submitters = appendPointer(d, fam.Submitters, c)
		case "SOUR":
			fam.Sources = append(fam.Sources, d.citation(c))
		case "OBJE":
			fam.Media = append(fam.Media, d.mediaLink(c))
		default:
			return false
		}
		return true
	})
	return fam
}

func (d *decoder) familyEvent(id ast.NodeID) record.FamilyEvent {
	ev := record.FamilyEvent{Tag: d.node(id).Tag, Value: d.text(id)}
	d.children(id, func(c ast.NodeID, tag string) bool {
		switch tag {
		case "HUSB":
			ev.HusbandAge = d.spouseAge(c)
		case "WIFE":
			ev.WifeAge = d.spouseAge(c)
		default:
			return d.eventDetail(&ev.EventDetail, c, tag)
		}
		return true
	})
	return ev
}

// spouseAge reads the AGE under an event's HUSB or WIFE line.
func (d *decoder) spouseAge(id ast.NodeID) string {
	var age string
	d.children(id, func(c ast.NodeID, tag string) bool {
		if tag != "AGE" {
			return false
		}
		age = d.value(c)
		return true
	})
	return age
}
