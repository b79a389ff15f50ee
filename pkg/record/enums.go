package record

import "strings"

// Gender is the value of an individual's SEX line.
type Gender uint8

const (
	GenderUnset Gender = iota
	GenderMale
	GenderFemale
	GenderNonbinary
	GenderUnknown // explicit "U"
)

// ParseGender maps M, F, N and U. The second result is false for any
// other value.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return GenderMale, true
	case "F":
		return GenderFemale, true
	case "N":
		return GenderNonbinary, true
	case "U":
		return GenderUnknown, true
	default:
		return GenderUnset, false
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	case GenderNonbinary:
		return "N"
	case GenderUnknown:
		return "U"
	default:
		return ""
	}
}

// Quay is the certainty assessment of a source citation.
type Quay uint8

const (
	QuayUnset        Quay = iota
	QuayUnreliable        // 0: unreliable evidence or estimated data
	QuayQuestionable      // 1: questionable reliability
	QuaySecondary         // 2: secondary evidence, recorded after the event
	QuayDirect            // 3: direct and primary evidence
)

// ParseQuay maps the GEDCOM digits 0 through 3.
func ParseQuay(s string) (Quay, bool) {
	switch strings.TrimSpace(s) {
	case "0":
		return QuayUnreliable, true
	case "1":
		return QuayQuestionable, true
	case "2":
		return QuaySecondary, true
	case "3":
		return QuayDirect, true
	default:
		return QuayUnset, false
	}
}

// Level returns the GEDCOM digit for q, or -1 when unset.
func (q Quay) Level() int {
	if q == QuayUnset {
		return -1
	}
	return int(q) - 1
}

// Pedigree describes how a child belongs to a family.
type Pedigree uint8

const (
	PedigreeUnset Pedigree = iota
	PedigreeBirth
	PedigreeAdopted
	PedigreeFoster
	PedigreeSealing
)

// ParsePedigree maps the PEDI values case-insensitively.
func ParsePedigree(s string) (Pedigree, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "birth":
		return PedigreeBirth, true
	case "adopted":
		return PedigreeAdopted, true
	case "foster":
		return PedigreeFoster, true
	case "sealing":
		return PedigreeSealing, true
	default:
		return PedigreeUnset, false
	}
}

func (p Pedigree) String() string {
	switch p {
	case PedigreeBirth:
		return "birth"
	case PedigreeAdopted:
		return "adopted"
	case PedigreeFoster:
		return "foster"
	case PedigreeSealing:
		return "sealing"
	default:
		return ""
	}
}
