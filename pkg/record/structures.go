package record

import "strings"

// -----------------------------------------------------------------------------
// Shared substructures
// -----------------------------------------------------------------------------

// NoteStructure is a NOTE line inside a record: either inline text or a
// pointer to a Note record.
type NoteStructure struct {
	Text    string
	Note    Pointer[Note]
	Sources []SourceCitation
}

// IsPointer reports whether the note refers to a Note record.
func (n *NoteStructure) IsPointer() bool { return n.Note.IsSet() }

// SourceCitation is a SOUR line inside a record. Source is unset for an
// unlinked citation, whose text is kept in Description.
type SourceCitation struct {
	Source      Pointer[Source]
	Description string
	Texts       []string // TEXT lines of an unlinked citation
	Page        string
	Event       string
	Role        string
	Data        *CitationData
	Quality     Quay
	Media       []MultimediaLink
	Notes       []NoteStructure
}

// CitationData is the DATA block of a source citation.
type CitationData struct {
	Date  string
	Texts []string
}

// MultimediaLink is an OBJE line inside a record: a pointer to a
// Multimedia record or an inline file reference.
type MultimediaLink struct {
	Object Pointer[Multimedia]
	Files  []MultimediaFile
	Title  string
}

// MultimediaFile is one FILE line with its format.
type MultimediaFile struct {
	Path      string
	Format    string
	MediaType string
	Title     string
}

// ChangeDate is the CHAN block recording when a record was last modified.
type ChangeDate struct {
	Date  string
	Time  string
	Notes []NoteStructure
}

// Address is an ADDR block together with the PHON, EMAIL, FAX and WWW
// lines that accompany it.
type Address struct {
	Lines      string // full ADDR value with CONT lines
	Line1      string
	Line2      string
	Line3      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phones     []string
	Emails     []string
	Faxes      []string
	Websites   []string
}

// Place is a PLAC value with its hierarchy form, variants and coordinates.
type Place struct {
	Name      string
	Form      string
	Phonetic  []PlaceVariation
	Romanized []PlaceVariation
	Map       *Coordinates
	Notes     []NoteStructure
}

// Parts splits the jurisdictions of a comma-separated place name.
func (p *Place) Parts() []string {
	if p == nil || p.Name == "" {
		return nil
	}
	parts := strings.Split(p.Name, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// PlaceVariation is a FONE or ROMN variant of a place name.
type PlaceVariation struct {
	Name string
	Type string
}

// Coordinates are decimal degrees; south and west are negative.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// EventDetail is the detail shared by individual and family events and
// attributes.
type EventDetail struct {
	Type        string
	Date        string
	Place       *Place
	Address     *Address
	Agency      string
	Religion    string
	Cause       string
	Restriction string
	Notes       []NoteStructure
	Sources     []SourceCitation
	Media       []MultimediaLink
}

// PersonalName is a NAME line of an individual.
type PersonalName struct {
	Value     string // "John /Smith/"
	Type      string
	Pieces    NamePieces
	Phonetic  []NameVariation
	Romanized []NameVariation
}

// Given returns the GIVN piece, or the text before the surname slashes.
func (n *PersonalName) Given() string {
	if n.Pieces.Given != "" {
		return n.Pieces.Given
	}
	given, _, _ := splitName(n.Value)
	return given
}

// Surname returns the SURN piece, or the text between the slashes.
func (n *PersonalName) Surname() string {
	if n.Pieces.Surname != "" {
		return n.Pieces.Surname
	}
	_, surname, _ := splitName(n.Value)
	return surname
}

// Full returns the name with the surname slashes removed.
func (n *PersonalName) Full() string {
	given, surname, suffix := splitName(n.Value)
	return strings.Join(strings.Fields(given+" "+surname+" "+suffix), " ")
}

func splitName(v string) (given, surname, suffix string) {
	open := strings.IndexByte(v, '/')
	if open < 0 {
		return strings.TrimSpace(v), "", ""
	}
	rest := v[open+1:]
	closing := strings.IndexByte(rest, '/')
	if closing < 0 {
		return strings.TrimSpace(v[:open]), strings.TrimSpace(rest), ""
	}
	return strings.TrimSpace(v[:open]), strings.TrimSpace(rest[:closing]), strings.TrimSpace(rest[closing+1:])
}

// NamePieces are the structured parts of a personal name.
type NamePieces struct {
	Prefix        string
	Given         string
	Nickname      string
	SurnamePrefix string
	Surname       string
	Suffix        string
	Notes         []NoteStructure
	Sources       []SourceCitation
}

// NameVariation is a FONE or ROMN variant of a personal name.
type NameVariation struct {
	Value  string
	Type   string
	Pieces NamePieces
}

// UserReference is a REFN line.
type UserReference struct {
	Number string
	Type   string
}

// RepositoryCitation is a REPO line inside a source record.
type RepositoryCitation struct {
	Repository  Pointer[Repository]
	CallNumbers []CallNumber
	Notes       []NoteStructure
}

// CallNumber is a CALN line with its optional media type.
type CallNumber struct {
	Number string
	Media  string
}

// Association is an ASSO line linking an individual to another.
type Association struct {
	Individual Pointer[Individual]
	Relation   string
	Sources    []SourceCitation
	Notes      []NoteStructure
}

// ChildToFamilyLink is a FAMC line of an individual.
type ChildToFamilyLink struct {
	Family   Pointer[Family]
	Pedigree Pedigree
	Status   string
	Notes    []NoteStructure
}

// SpouseToFamilyLink is a FAMS line of an individual.
type SpouseToFamilyLink struct {
	Family Pointer[Family]
	Notes  []NoteStructure
}

// -----------------------------------------------------------------------------
// Linking
// -----------------------------------------------------------------------------

func linkNotes(l Linker, ns []NoteStructure) {
	for i := range ns {
		linkPointer(l, &ns[i].Note)
		linkCitations(l, ns[i].Sources)
	}
}

func linkCitations(l Linker, cs []SourceCitation) {
	for i := range cs {
		c := &cs[i]
		linkPointer(l, &c.Source)
		linkMedia(l, c.Media)
		linkNotes(l, c.Notes)
	}
}

func linkMedia(l Linker, ms []MultimediaLink) {
	for i := range ms {
		linkPointer(l, &ms[i].Object)
	}
}

func (c *ChangeDate) link(l Linker) {
	if c != nil {
		linkNotes(l, c.Notes)
	}
}

func (p *Place) link(l Linker) {
	if p != nil {
		linkNotes(l, p.Notes)
	}
}

func (d *EventDetail) link(l Linker) {
	d.Place.link(l)
	linkNotes(l, d.Notes)
	linkCitations(l, d.Sources)
	linkMedia(l, d.Media)
}

func (p *NamePieces) link(l Linker) {
	linkNotes(l, p.Notes)
	linkCitations(l, p.Sources)
}

func (n *PersonalName) link(l Linker) {
	n.Pieces.link(l)
	for i := range n.Phonetic {
		n.Phonetic[i].Pieces.link(l)
	}
	for i := range n.Romanized {
		n.Romanized[i].Pieces.link(l)
	}
}
