package record

// Record is implemented by the seven record kinds that live in a namespace.
type Record interface {
	Namespace() Namespace
	ID() XRef
	Link(l Linker)
}

// -----------------------------------------------------------------------------
// Header
// -----------------------------------------------------------------------------

// Header is the HEAD record. It has no XRef and no namespace.
type Header struct {
	Source      HeaderSource
	Destination string
	Date        string
	Time        string
	Submitter   Pointer[Submitter]
	Submission  XRef // SUBN records are not mapped; the id is kept as read
	File        string
	Copyright   string
	GEDCOM      GEDCOMInfo
	CharSet     CharSet
	Language    string
	PlaceForm   string
	Note        string
}

// HeaderSource identifies the program that produced the file.
type HeaderSource struct {
	ID          string
	Version     string
	Name        string
	Corporation *Corporation
	Data        *HeaderSourceData
}

// Corporation is the business behind the producing program.
type Corporation struct {
	Name    string
	Address *Address
}

// HeaderSourceData names the electronic source the data came from.
type HeaderSourceData struct {
	Name      string
	Date      string
	Copyright string
}

// GEDCOMInfo is the GEDC block.
type GEDCOMInfo struct {
	Version string
	Form    string
}

// CharSet is the CHAR block as declared, before any fallback.
type CharSet struct {
	Name    string
	Version string
}

// Link hands the header's pointers to l.
func (h *Header) Link(l Linker) {
	linkPointer(l, &h.Submitter)
}

// -----------------------------------------------------------------------------
// Individual
// -----------------------------------------------------------------------------

// Individual is an INDI record.
type Individual struct {
	XRef                XRef
	Restriction         string
	Names               []PersonalName
	Sex                 Gender
	Events              []IndividualEvent
	Attributes          []IndividualEvent
	ChildOf             []ChildToFamilyLink
	SpouseOf            []SpouseToFamilyLink
	Submitters          []Pointer[Submitter]
	Associations        []Association
	Aliases             []Pointer[Individual]
	AncestorInterest    []Pointer[Submitter]
	DescendantInterest  []Pointer[Submitter]
	RecordFileNumber    string
	AncestralFileNumber string
	UserReferences      []UserReference
	RecordID            string
	Change              *ChangeDate
	Notes               []NoteStructure
	Sources             []SourceCitation
	Media               []MultimediaLink
}

// IndividualEvent is an event (BIRT, DEAT, ...) or an attribute (OCCU,
// RESI, ...) of an individual. Value holds the line value, "Y" for an
// event asserted without detail or the attribute text.
type IndividualEvent struct {
	Tag       string
	Value     string
	Age       string
	Family    Pointer[Family] // FAMC of BIRT, CHR and ADOP
	AdoptedBy string          // HUSB, WIFE or BOTH under ADOP/FAMC
	EventDetail
}

func (Individual) Namespace() Namespace { return NamespaceIndividual }

// ID returns the record's XRef.
func (r *Individual) ID() XRef { return r.XRef }

// Name returns the first NAME, or nil.
func (r *Individual) Name() *PersonalName {
	if len(r.Names) == 0 {
		return nil
	}
	return &r.Names[0]
}

// Event returns the first event with the given tag, or nil.
func (r *Individual) Event(tag string) *IndividualEvent {
	for i := range r.Events {
		if r.Events[i].Tag == tag {
			return &r.Events[i]
		}
	}
	return nil
}

// Attribute returns the first attribute with the given tag, or nil.
func (r *Individual) Attribute(tag string) *IndividualEvent {
	for i := range r.Attributes {
		if r.Attributes[i].Tag == tag {
			return &r.Attributes[i]
		}
	}
	return nil
}

// Link hands the individual's pointers to l.
func (r *Individual) Link(l Linker) {
	for i := range r.Names {
		r.Names[i].link(l)
	}
	for _, evs := range [][]IndividualEvent{r.Events, r.Attributes} {
		for i := range evs {
			linkPointer(l, &evs[i].Family)
			evs[i].EventDetail.link(l)
		}
	}
	for i := range r.ChildOf {
		linkPointer(l, &r.ChildOf[i].Family)
		linkNotes(l, r.ChildOf[i].Notes)
	}
	for i := range r.SpouseOf {
		linkPointer(l, &r.SpouseOf[i].Family)
		linkNotes(l, r.SpouseOf[i].Notes)
	}
	linkPointers(l, r.Submitters)
	for i := range r.Associations {
		a := &r.Associations[i]
		linkPointer(l, &a.Individual)
		linkCitations(l, a.Sources)
		linkNotes(l, a.Notes)
	}
	linkPointers(l, r.Aliases)
	linkPointers(l, r.AncestorInterest)
	linkPointers(l, r.DescendantInterest)
	r.Change.link(l)
	linkNotes(l, r.Notes)
	linkCitations(l, r.Sources)
	linkMedia(l, r.Media)
}

// -----------------------------------------------------------------------------
// Family
// -----------------------------------------------------------------------------

// Family is a FAM record.
type Family struct {
	XRef           XRef
	Restriction    string
	Events         []FamilyEvent
	Husband        Pointer[Individual]
	Wife           Pointer[Individual]
	Children       []Pointer[Individual]
	ChildCount     string
	Submitters     []Pointer[Submitter]
	UserReferences []UserReference
	RecordID       string
	Change         *ChangeDate
	Notes          []NoteStructure
	Sources        []SourceCitation
	Media          []MultimediaLink
}

// FamilyEvent is an event of a family (MARR, DIV, ...).
type FamilyEvent struct {
	Tag        string
	Value      string
	HusbandAge string
	WifeAge    string
	EventDetail
}

func (Family) Namespace() Namespace { return NamespaceFamily }

// ID returns the record's XRef.
func (r *Family) ID() XRef { return r.XRef }

// Event returns the first event with the given tag, or nil.
func (r *Family) Event(tag string) *FamilyEvent {
	for i := range r.Events {
		if r.Events[i].Tag == tag {
			return &r.Events[i]
		}
	}
	return nil
}

// Link hands the family's pointers to l.
func (r *Family) Link(l Linker) {
	for i := range r.Events {
		r.Events[i].EventDetail.link(l)
	}
	linkPointer(l, &r.Husband)
	linkPointer(l, &r.Wife)
	linkPointers(l, r.Children)
	linkPointers(l, r.Submitters)
	r.Change.link(l)
	linkNotes(l, r.Notes)
	linkCitations(l, r.Sources)
	linkMedia(l, r.Media)
}

// -----------------------------------------------------------------------------
// Source
// -----------------------------------------------------------------------------

// Source is a SOUR record.
type Source struct {
	XRef           XRef
	Data           *SourceData
	Author         string
	Title          string
	Abbreviation   string
	Publication    string
	Text           string
	Repositories   []RepositoryCitation
	UserReferences []UserReference
	RecordID       string
	Change         *ChangeDate
	Notes          []NoteStructure
	Media          []MultimediaLink
}

// SourceData is the DATA block of a source record.
type SourceData struct {
	Events []SourceDataEvent
	Agency string
	Notes  []NoteStructure
}

// SourceDataEvent lists the kinds of events a source records.
type SourceDataEvent struct {
	Types string // comma-separated event tags
	Date  string
	Place string
}

func (Source) Namespace() Namespace { return NamespaceSource }

// ID returns the record's XRef.
func (r *Source) ID() XRef { return r.XRef }

// Link hands the source's pointers to l.
func (r *Source) Link(l Linker) {
	if r.Data != nil {
		linkNotes(l, r.Data.Notes)
	}
	for i := range r.Repositories {
		linkPointer(l, &r.Repositories[i].Repository)
		linkNotes(l, r.Repositories[i].Notes)
	}
	r.Change.link(l)
	linkNotes(l, r.Notes)
	linkMedia(l, r.Media)
}

// -----------------------------------------------------------------------------
// Repository
// -----------------------------------------------------------------------------

// Repository is a REPO record.
type Repository struct {
	XRef           XRef
	Name           string
	Address        *Address
	UserReferences []UserReference
	RecordID       string
	Change         *ChangeDate
	Notes          []NoteStructure
}

func (Repository) Namespace() Namespace { return NamespaceRepository }

// ID returns the record's XRef.
func (r *Repository) ID() XRef { return r.XRef }

// Link hands the repository's pointers to l.
func (r *Repository) Link(l Linker) {
	r.Change.link(l)
	linkNotes(l, r.Notes)
}

// -----------------------------------------------------------------------------
// Multimedia
// -----------------------------------------------------------------------------

// Multimedia is an OBJE record.
type Multimedia struct {
	XRef           XRef
	Files          []MultimediaFile
	UserReferences []UserReference
	RecordID       string
	Change         *ChangeDate
	Notes          []NoteStructure
	Sources        []SourceCitation
}

func (Multimedia) Namespace() Namespace { return NamespaceMultimedia }

// ID returns the record's XRef.
func (r *Multimedia) ID() XRef { return r.XRef }

// Link hands the multimedia record's pointers to l.
func (r *Multimedia) Link(l Linker) {
	r.Change.link(l)
	linkNotes(l, r.Notes)
	linkCitations(l, r.Sources)
}

// -----------------------------------------------------------------------------
// Note
// -----------------------------------------------------------------------------

// Note is a NOTE record.
type Note struct {
	XRef           XRef
	Text           string
	Sources        []SourceCitation
	UserReferences []UserReference
	RecordID       string
	Change         *ChangeDate
}

func (Note) Namespace() Namespace { return NamespaceNote }

// ID returns the record's XRef.
func (r *Note) ID() XRef { return r.XRef }

// Link hands the note's pointers to l.
func (r *Note) Link(l Linker) {
	linkCitations(l, r.Sources)
	r.Change.link(l)
}

// -----------------------------------------------------------------------------
// Submitter
// -----------------------------------------------------------------------------

// Submitter is a SUBM record.
type Submitter struct {
	XRef             XRef
	Name             string
	Address          *Address
	Media            []MultimediaLink
	Languages        []string
	RecordFileNumber string
	RecordID         string
	Change           *ChangeDate
	Notes            []NoteStructure
}

func (Submitter) Namespace() Namespace { return NamespaceSubmitter }

// ID returns the record's XRef.
func (r *Submitter) ID() XRef { return r.XRef }

// Link hands the submitter's pointers to l.
func (r *Submitter) Link(l Linker) {
	linkMedia(l, r.Media)
	r.Change.link(l)
	linkNotes(l, r.Notes)
}
