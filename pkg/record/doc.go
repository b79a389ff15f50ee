// Package record defines the typed GEDCOM 5.5.1 document model.
//
// A Document owns one Header and one Collection per record kind:
// Individual, Family, Source, Repository, Multimedia, Note and Submitter.
// Fields that name another record are Pointer values. A pointer is a
// lookup key into the target's collection, resolved once after every
// record has been mapped:
//
//	fam := doc.Families.At(0)
//	if husband, ok := doc.Individuals.Get(fam.Husband); ok {
//		fmt.Println(husband.Name().Full())
//	} else if fam.Husband.Dangling() {
//		fmt.Println("no record for", fam.Husband.XRef)
//	}
//
// Each kind has its own id space, so "@S1@" may name both a source and a
// submitter without conflict.
package record
