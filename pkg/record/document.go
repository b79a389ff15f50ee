package record

// Document is a parsed GEDCOM file.
//
// Records are owned by their collections. Pointers between records are
// lookup keys into those collections, never direct references, so the
// document is an acyclic ownership tree even when families and
// individuals refer to each other.
type Document struct {
	Encoding string // encoding the text was decoded with
	Header   *Header

	Individuals  Collection[Individual]
	Families     Collection[Family]
	Sources      Collection[Source]
	Repositories Collection[Repository]
	Multimedia   Collection[Multimedia]
	Notes        Collection[Note]
	Submitters   Collection[Submitter]

	resolved bool
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends r to the collection for its kind. It returns false when a
// record with the same XRef already exists in that namespace.
func (d *Document) Add(r Record) bool {
	switch v := r.(type) {
	case *Individual:
		return d.Individuals.Append(v.XRef, v)
	case *Family:
		return d.Families.Append(v.XRef, v)
	case *Source:
		return d.Sources.Append(v.XRef, v)
	case *Repository:
		return d.Repositories.Append(v.XRef, v)
	case *Multimedia:
		return d.Multimedia.Append(v.XRef, v)
	case *Note:
		return d.Notes.Append(v.XRef, v)
	case *Submitter:
		return d.Submitters.Append(v.XRef, v)
	default:
		return false
	}
}

// IndexOf returns the position of x in the collection for ns.
func (d *Document) IndexOf(ns Namespace, x XRef) (int, bool) {
	switch ns {
	case NamespaceIndividual:
		return d.Individuals.IndexOf(x)
	case NamespaceFamily:
		return d.Families.IndexOf(x)
	case NamespaceSource:
		return d.Sources.IndexOf(x)
	case NamespaceRepository:
		return d.Repositories.IndexOf(x)
	case NamespaceMultimedia:
		return d.Multimedia.IndexOf(x)
	case NamespaceNote:
		return d.Notes.IndexOf(x)
	case NamespaceSubmitter:
		return d.Submitters.IndexOf(x)
	default:
		return 0, false
	}
}

// Records calls fn for every record in namespace order, then document
// order within each namespace.
func (d *Document) Records(fn func(Record)) {
	for _, r := range d.Individuals.All() {
		fn(r)
	}
	for _, r := range d.Families.All() {
		fn(r)
	}
	for _, r := range d.Sources.All() {
		fn(r)
	}
	for _, r := range d.Repositories.All() {
		fn(r)
	}
	for _, r := range d.Multimedia.All() {
		fn(r)
	}
	for _, r := range d.Notes.All() {
		fn(r)
	}
	for _, r := range d.Submitters.All() {
		fn(r)
	}
}

// Len returns the number of records, the header excluded.
func (d *Document) Len() int {
	return d.Individuals.Len() + d.Families.Len() + d.Sources.Len() +
		d.Repositories.Len() + d.Multimedia.Len() + d.Notes.Len() + d.Submitters.Len()
}

// Resolved reports whether cross-references have been resolved.
func (d *Document) Resolved() bool { return d.resolved }

// MarkResolved is called once by the resolver after every pointer has
// been bound or marked dangling.
func (d *Document) MarkResolved() { d.resolved = true }

// -----------------------------------------------------------------------------
// Navigation (resolved pointers only)
// -----------------------------------------------------------------------------

// Parents returns the husband and wife of every family ind is a child of.
func (d *Document) Parents(ind *Individual) []*Individual {
	var out []*Individual
	for _, link := range ind.ChildOf {
		fam, ok := d.Families.Get(link.Family)
		if !ok {
			continue
		}
		if p, ok := d.Individuals.Get(fam.Husband); ok {
			out = append(out, p)
		}
		if p, ok := d.Individuals.Get(fam.Wife); ok {
			out = append(out, p)
		}
	}
	return out
}

// Children returns the children of every family ind is a spouse in.
func (d *Document) Children(ind *Individual) []*Individual {
	var out []*Individual
	for _, fam := range d.spouseFamilies(ind) {
		for _, c := range fam.Children {
			if child, ok := d.Individuals.Get(c); ok {
				out = append(out, child)
			}
		}
	}
	return out
}

// Spouses returns the other partner of every family ind is a spouse in.
func (d *Document) Spouses(ind *Individual) []*Individual {
	var out []*Individual
	for _, fam := range d.spouseFamilies(ind) {
		for _, p := range []Pointer[Individual]{fam.Husband, fam.Wife} {
			if sp, ok := d.Individuals.Get(p); ok && sp.XRef != ind.XRef {
				out = append(out, sp)
			}
		}
	}
	return out
}

func (d *Document) spouseFamilies(ind *Individual) []*Family {
	var out []*Family
	for _, link := range ind.SpouseOf {
		if fam, ok := d.Families.Get(link.Family); ok {
			out = append(out, fam)
		}
	}
	return out
}
