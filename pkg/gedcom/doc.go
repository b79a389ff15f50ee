// Package gedcom parses GEDCOM 5.5.1 files into a typed, cross-linked
// record.Document.
//
// A parse runs five stages: the raw bytes are decoded to Unicode (ANSEL,
// ANSI, IBM PC, Macintosh, ASCII, UTF-8 and UTF-16 are understood), split
// into lines, assembled into a tree by level number, mapped record by
// record into typed structures, and finally every pointer is resolved to
// the record it names.
//
// Only broken encodings and broken structure (bad line grammar, illegal
// level jumps, a missing HEAD or TRLR) are fatal. Everything else is
// tolerated and reported as a types.Warning:
//
//	doc, warnings, err := gedcom.ParseFile("family.ged", gedcom.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range warnings {
//	    fmt.Println(w)
//	}
//	for _, ind := range doc.Individuals.All() {
//	    fmt.Println(ind.XRef, ind.Name().Full())
//	}
package gedcom
