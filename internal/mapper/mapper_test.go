package mapper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gedkit/pkg/ast"
	"github.com/joshuapare/gedkit/pkg/record"
	"github.com/joshuapare/gedkit/pkg/types"
)

// mapOne builds lines into a tree and maps its first root.
func mapOne(t *testing.T, lines ...string) Outcome {
	t.Helper()
	tree, err := ast.BuildString(strings.Join(lines, "\n"))
	require.NoError(t, err)
	require.NotEmpty(t, tree.Roots())
	return MapRecord(tree, tree.Roots()[0])
}

func kinds(ws []types.Warning) []types.WarningKind {
	out := make([]types.WarningKind, len(ws))
	for i, w := range ws {
		out[i] = w.Kind
	}
	return out
}

// --- header ---

func TestMapHeader(t *testing.T) {
	tree, err := ast.BuildString(strings.Join([]string{
		"0 HEAD",
		"1 SOUR PAF",
		"2 VERS 5.2",
		"2 NAME Personal Ancestral File",
		"2 CORP The Church",
		"3 ADDR 50 East North Temple",
		"3 PHON 801-240-2331",
		"2 DATA Vital Records",
		"3 DATE 1 JAN 2000",
		"1 DEST ANSTFILE",
		"1 DATE 5 MAR 2024",
		"2 TIME 12:30:00",
		"1 SUBM @U1@",
		"1 FILE family.ged",
		"1 GEDC",
		"2 VERS 5.5.1",
		"2 FORM LINEAGE-LINKED",
		"1 CHAR ANSEL",
		"2 VERS ANSI Z39.47-1985",
		"1 LANG English",
		"1 PLAC",
		"2 FORM City, County, State, Country",
		"1 NOTE Exported for",
		"2 CONC  cousins",
		"1 _HME @I1@",
	}, "\n"))
	require.NoError(t, err)

	h, ws, err := MapHeader(tree, tree.Roots()[0])
	require.NoError(t, err)

	assert.Equal(t, "PAF", h.Source.ID)
	assert.Equal(t, "5.2", h.Source.Version)
	require.NotNil(t, h.Source.Corporation)
	assert.Equal(t, "The Church", h.Source.Corporation.Name)
	require.NotNil(t, h.Source.Corporation.Address)
	assert.Equal(t, []string{"801-240-2331"}, h.Source.Corporation.Address.Phones)
	require.NotNil(t, h.Source.Data)
	assert.Equal(t, "1 JAN 2000", h.Source.Data.Date)
	assert.Equal(t, "12:30:00", h.Time)
	assert.Equal(t, record.XRef("@U1@"), h.Submitter.XRef)
	assert.Equal(t, "5.5.1", h.GEDCOM.Version)
	assert.Equal(t, "ANSEL", h.CharSet.Name)
	assert.Equal(t, "ANSI Z39.47-1985", h.CharSet.Version)
	assert.Equal(t, "City, County, State, Country", h.PlaceForm)
	assert.Equal(t, "Exported for cousins", h.Note)

	require.Len(t, ws, 1)
	assert.Equal(t, types.WarnUnsupportedRecord, ws[0].Kind)
	assert.Equal(t, "_HME", ws[0].Tag)
	assert.Equal(t, 25, ws[0].Line)
}

func TestMapHeader_NotHead(t *testing.T) {
	tree, err := ast.BuildString("0 @I1@ INDI\n0 HEAD")
	require.NoError(t, err)

	_, _, err = MapHeader(tree, tree.Roots()[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrStructure))
}

// --- individual ---

func TestMapRecord_Individual(t *testing.T) {
	out := mapOne(t,
		"0 @I1@ INDI",
		"1 NAME John /Smith/",
		"2 GIVN John",
		"2 SURN Smith",
		"2 NICK Jack",
		"2 ROMN Jon /Smit/",
		"3 TYPE romaji",
		"1 SEX M",
		"1 BIRT",
		"2 DATE 1 JAN 1900",
		"2 PLAC Springfield, Illinois, USA",
		"3 MAP",
		"4 LATI N39.78",
		"4 LONG W89.65",
		"2 FAMC @F0@",
		"2 SOUR @S1@",
		"3 PAGE p. 12",
		"3 QUAY 3",
		"1 DEAT Y",
		"2 AGE 80y",
		"2 CAUS Old age",
		"1 OCCU Blacksmith",
		"2 DATE 1930",
		"1 DSCR Tall with",
		"2 CONC  red hair",
		"1 FAMC @F0@",
		"2 PEDI birth",
		"1 FAMS @F1@",
		"1 ASSO @I5@",
		"2 RELA Godfather",
		"1 ALIA @I7@",
		"1 SUBM @U1@",
		"1 REFN 42",
		"2 TYPE user",
		"1 RIN 7",
		"1 CHAN",
		"2 DATE 2 FEB 2020",
		"3 TIME 10:00",
		"1 NOTE @N1@",
		"1 NOTE Inline",
		"2 CONT second line",
		"1 OBJE @M1@",
	)
	require.Equal(t, StatusMapped, out.Status)
	assert.Empty(t, out.Warnings)

	ind, ok := out.Record.(*record.Individual)
	require.True(t, ok)
	assert.Equal(t, record.XRef("@I1@"), ind.XRef)
	assert.Equal(t, record.GenderMale, ind.Sex)

	name := ind.Name()
	require.NotNil(t, name)
	assert.Equal(t, "John /Smith/", name.Value)
	assert.Equal(t, "Jack", name.Pieces.Nickname)
	require.Len(t, name.Romanized, 1)
	assert.Equal(t, "romaji", name.Romanized[0].Type)

	birth := ind.Event("BIRT")
	require.NotNil(t, birth)
	assert.Equal(t, "1 JAN 1900", birth.Date)
	require.NotNil(t, birth.Place)
	require.NotNil(t, birth.Place.Map)
	assert.InDelta(t, 39.78, birth.Place.Map.Latitude, 1e-9)
	assert.InDelta(t, -89.65, birth.Place.Map.Longitude, 1e-9)
	assert.Equal(t, record.XRef("@F0@"), birth.Family.XRef)
	require.Len(t, birth.Sources, 1)
	assert.Equal(t, "p. 12", birth.Sources[0].Page)
	assert.Equal(t, record.QuayDirect, birth.Sources[0].Quality)

	death := ind.Event("DEAT")
	require.NotNil(t, death)
	assert.Equal(t, "Y", death.Value)
	assert.Equal(t, "80y", death.Age)
	assert.Equal(t, "Old age", death.Cause)

	assert.Equal(t, "Blacksmith", ind.Attribute("OCCU").Value)
	assert.Equal(t, "Tall with red hair", ind.Attribute("DSCR").Value)

	require.Len(t, ind.ChildOf, 1)
	assert.Equal(t, record.PedigreeBirth, ind.ChildOf[0].Pedigree)
	require.Len(t, ind.SpouseOf, 1)
	require.Len(t, ind.Associations, 1)
	assert.Equal(t, "Godfather", ind.Associations[0].Relation)
	assert.Len(t, ind.Aliases, 1)
	assert.Len(t, ind.Submitters, 1)
	assert.Equal(t, []record.UserReference{{Number: "42", Type: "user"}}, ind.UserReferences)
	assert.Equal(t, "7", ind.RecordID)
	require.NotNil(t, ind.Change)
	assert.Equal(t, "10:00", ind.Change.Time)

	require.Len(t, ind.Notes, 2)
	assert.True(t, ind.Notes[0].IsPointer())
	assert.Equal(t, "Inline\nsecond line", ind.Notes[1].Text)
	require.Len(t, ind.Media, 1)
	assert.Equal(t, record.XRef("@M1@"), ind.Media[0].Object.XRef)

	assert.False(t, ind.Notes[0].Note.Resolved(), "mapper leaves pointers pending")
}

func TestMapRecord_MalformedValuesAreWarnings(t *testing.T) {
	out := mapOne(t,
		"0 @I1@ INDI",
		"1 SEX Q",
		"1 FAMC not-a-pointer",
		"1 BIRT",
		"2 SOUR @S1@",
		"3 QUAY 9",
		"2 PLAC Somewhere",
		"3 MAP",
		"4 LATI 12.5",
		"4 LONG E1",
		"1 FAMC @F1@",
		"2 PEDI stepchild",
	)
	require.Equal(t, StatusMapped, out.Status)

	ind := out.Record.(*record.Individual)
	assert.Equal(t, record.GenderUnset, ind.Sex)
	require.Len(t, ind.ChildOf, 1, "the malformed FAMC is dropped, the valid one kept")
	assert.Equal(t, record.PedigreeUnset, ind.ChildOf[0].Pedigree)
	assert.Equal(t, record.QuayUnset, ind.Event("BIRT").Sources[0].Quality)
	assert.Nil(t, ind.Event("BIRT").Place.Map)

	assert.Equal(t, []types.WarningKind{
		types.WarnMalformedValue, // SEX
		types.WarnMalformedValue, // FAMC
		types.WarnMalformedValue, // QUAY
		types.WarnMalformedValue, // LATI
		types.WarnMalformedValue, // PEDI
	}, kinds(out.Warnings))
	for _, w := range out.Warnings {
		assert.Equal(t, "@I1@", w.XRef)
		assert.Positive(t, w.Line)
	}
}

func TestMapRecord_UnknownChildTagsSkipped(t *testing.T) {
	out := mapOne(t,
		"0 @I1@ INDI",
		"1 NAME Ann /Lee/",
		"1 XYZZ something",
		"2 NAME nested is not mapped",
		"1 _UID 0001",
		"1 SEX F",
	)
	require.Equal(t, StatusMapped, out.Status)

	ind := out.Record.(*record.Individual)
	assert.Len(t, ind.Names, 1)
	assert.Equal(t, record.GenderFemale, ind.Sex)

	require.Len(t, out.Warnings, 2)
	assert.Equal(t, "XYZZ", out.Warnings[0].Tag)
	assert.Equal(t, 3, out.Warnings[0].Line)
	assert.Equal(t, "_UID", out.Warnings[1].Tag)
	assert.Equal(t, []types.WarningKind{types.WarnUnsupportedRecord, types.WarnUnsupportedRecord}, kinds(out.Warnings))
}

func TestMapRecord_MissingXRefFails(t *testing.T) {
	for _, tag := range []string{"INDI", "FAM", "SOUR", "REPO", "OBJE", "NOTE", "SUBM"} {
		t.Run(tag, func(t *testing.T) {
			out := mapOne(t, "0 "+tag, "1 NAME x")
			assert.Equal(t, StatusFailed, out.Status)
			require.Error(t, out.Err)
			assert.True(t, errors.Is(out.Err, types.ErrStructure))
			assert.Nil(t, out.Record)
		})
	}
}

func TestMapRecord_XRefAfterTag(t *testing.T) {
	out := mapOne(t, "0 INDI @I1@", "1 NAME John /Smith/")
	require.Equal(t, StatusMapped, out.Status)
	assert.Empty(t, out.Warnings)
	assert.Equal(t, record.XRef("@I1@"), out.Record.ID())

	out = mapOne(t, "0 NOTE @N1@", "1 CONT first line")
	require.Equal(t, StatusMapped, out.Status)
	note := out.Record.(*record.Note)
	assert.Equal(t, record.XRef("@N1@"), note.XRef)
	assert.Equal(t, "first line", note.Text)
}

func TestMapRecord_UnsupportedTopLevel(t *testing.T) {
	out := mapOne(t, "0 @X1@ XYZZ", "1 FOO bar", "2 BAZ")
	assert.Equal(t, StatusSkipped, out.Status)
	assert.Nil(t, out.Record)
	require.Len(t, out.Warnings, 1, "the subtree is skipped as a whole")
	assert.Equal(t, types.WarnUnsupportedRecord, out.Warnings[0].Kind)
	assert.Equal(t, "XYZZ", out.Warnings[0].Tag)
}

// --- family ---

func TestMapRecord_Family(t *testing.T) {
	out := mapOne(t,
		"0 @F1@ FAM",
		"1 HUSB @I1@",
		"1 WIFE @I2@",
		"1 CHIL @I3@",
		"1 CHIL @I4@",
		"1 NCHI 2",
		"1 MARR",
		"2 DATE 10 JUN 1925",
		"2 HUSB",
		"3 AGE 25y",
		"2 WIFE",
		"3 AGE 22y",
		"2 ADDR 1 Church St",
		"2 PHON 555-0100",
		"1 DIV",
	)
	require.Equal(t, StatusMapped, out.Status)
	assert.Empty(t, out.Warnings)

	fam := out.Record.(*record.Family)
	assert.Equal(t, record.XRef("@I1@"), fam.Husband.XRef)
	assert.Equal(t, record.XRef("@I2@"), fam.Wife.XRef)
	require.Len(t, fam.Children, 2)
	assert.Equal(t, record.XRef("@I4@"), fam.Children[1].XRef)
	assert.Equal(t, "2", fam.ChildCount)

	marr := fam.Event("MARR")
	require.NotNil(t, marr)
	assert.Equal(t, "25y", marr.HusbandAge)
	assert.Equal(t, "22y", marr.WifeAge)
	require.NotNil(t, marr.Address)
	assert.Equal(t, "1 Church St", marr.Address.Lines)
	assert.Equal(t, []string{"555-0100"}, marr.Address.Phones)
	assert.NotNil(t, fam.Event("DIV"))
}

// --- source, repository, multimedia, note, submitter ---

func TestMapRecord_Source(t *testing.T) {
	out := mapOne(t,
		"0 @S1@ SOUR",
		"1 DATA",
		"2 EVEN BIRT, DEAT",
		"3 DATE FROM 1900 TO 1950",
		"3 PLAC Cook County",
		"2 AGNC County Clerk",
		"1 AUTH Cook County",
		"2 CONT Vital Records Office",
		"1 TITL Birth Regis",
		"2 CONC ter",
		"1 ABBR Births",
		"1 PUBL Chicago, 1951",
		"1 TEXT Entry 12:",
		"2 CONT John Smith",
		"1 REPO @R1@",
		"2 CALN 977.311",
		"3 MEDI book",
		"1 REPO",
		"2 NOTE Private collection",
	)
	require.Equal(t, StatusMapped, out.Status)
	assert.Empty(t, out.Warnings)

	src := out.Record.(*record.Source)
	require.NotNil(t, src.Data)
	require.Len(t, src.Data.Events, 1)
	assert.Equal(t, "BIRT, DEAT", src.Data.Events[0].Types)
	assert.Equal(t, "Cook County", src.Data.Events[0].Place)
	assert.Equal(t, "County Clerk", src.Data.Agency)
	assert.Equal(t, "Cook County\nVital Records Office", src.Author)
	assert.Equal(t, "Birth Register", src.Title)
	assert.Equal(t, "Entry 12:\nJohn Smith", src.Text)

	require.Len(t, src.Repositories, 2)
	assert.Equal(t, record.XRef("@R1@"), src.Repositories[0].Repository.XRef)
	assert.Equal(t, []record.CallNumber{{Number: "977.311", Media: "book"}}, src.Repositories[0].CallNumbers)
	assert.False(t, src.Repositories[1].Repository.IsSet())
	assert.Equal(t, "Private collection", src.Repositories[1].Notes[0].Text)
}

func TestMapRecord_OtherKinds(t *testing.T) {
	repo := mapOne(t,
		"0 @R1@ REPO",
		"1 NAME State Archive",
		"1 ADDR 100 Main St",
		"2 CITY Springfield",
		"2 POST 62701",
		"1 EMAIL archive@@example.org",
		"1 WWW https://example.org",
	).Record.(*record.Repository)
	assert.Equal(t, "State Archive", repo.Name)
	require.NotNil(t, repo.Address)
	assert.Equal(t, "Springfield", repo.Address.City)
	assert.Equal(t, "62701", repo.Address.PostalCode)
	assert.Equal(t, []string{"archive@example.org"}, repo.Address.Emails)
	assert.Equal(t, []string{"https://example.org"}, repo.Address.Websites)

	obj := mapOne(t,
		"0 @M1@ OBJE",
		"1 FILE photos/john.jpg",
		"2 FORM jpeg",
		"3 TYPE photo",
		"2 TITL John in 1920",
		"1 SOUR @S1@",
	).Record.(*record.Multimedia)
	require.Len(t, obj.Files, 1)
	assert.Equal(t, record.MultimediaFile{Path: "photos/john.jpg", Format: "jpeg", MediaType: "photo", Title: "John in 1920"}, obj.Files[0])
	assert.Len(t, obj.Sources, 1)

	note := mapOne(t,
		"0 @N1@ NOTE First",
		"1 CONC  part",
		"1 CONT Second",
		"1 SOUR @S1@",
		"1 RIN 3",
	).Record.(*record.Note)
	assert.Equal(t, "First part\nSecond", note.Text)
	assert.Len(t, note.Sources, 1)
	assert.Equal(t, "3", note.RecordID)

	subm := mapOne(t,
		"0 @U1@ SUBM",
		"1 NAME Jane Doe",
		"1 PHON 555-0199",
		"1 ADDR 2 Elm St",
		"1 LANG English",
		"1 LANG French",
		"1 OBJE",
		"2 FILE me.png",
	).Record.(*record.Submitter)
	assert.Equal(t, "Jane Doe", subm.Name)
	require.NotNil(t, subm.Address)
	assert.Equal(t, "2 Elm St", subm.Address.Lines)
	assert.Equal(t, []string{"555-0199"}, subm.Address.Phones, "contact lines survive a later ADDR")
	assert.Equal(t, []string{"English", "French"}, subm.Languages)
	require.Len(t, subm.Media, 1)
	assert.False(t, subm.Media[0].Object.IsSet())
	assert.Equal(t, "me.png", subm.Media[0].Files[0].Path)
}

func TestMapRecord_UnlinkedCitation(t *testing.T) {
	out := mapOne(t,
		"0 @I1@ INDI",
		"1 SOUR Family Bible",
		"2 CONT owned by Aunt May",
		"2 TEXT Born at home",
	)
	ind := out.Record.(*record.Individual)
	require.Len(t, ind.Sources, 1)
	assert.False(t, ind.Sources[0].Source.IsSet())
	assert.Equal(t, "Family Bible\nowned by Aunt May", ind.Sources[0].Description)
	assert.Equal(t, []string{"Born at home"}, ind.Sources[0].Texts)
}

// --- fan-out ---

func TestMapRecords_DeterministicOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("0 HEAD\n")
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, "0 @I%d@ INDI\n1 NAME Person /%d/\n", i, i)
		if i%50 == 0 {
			b.WriteString("0 @X1@ XYZZ\n")
		}
	}
	b.WriteString("0 TRLR\n")

	tree, err := ast.BuildString(b.String())
	require.NoError(t, err)
	roots := tree.Roots()[1 : len(tree.Roots())-1]

	sequential, err := MapRecords(context.Background(), tree, roots, 1)
	require.NoError(t, err)
	parallel, err := MapRecords(context.Background(), tree, roots, 8)
	require.NoError(t, err)

	require.Len(t, parallel, len(roots))
	assert.Equal(t, sequential, parallel)
	for i, out := range parallel {
		assert.Equal(t, roots[i], out.Node)
	}
}

func TestMapRecords_Canceled(t *testing.T) {
	tree, err := ast.BuildString("0 @I1@ INDI\n0 @I2@ INDI\n")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = MapRecords(ctx, tree, tree.Roots(), 4)
	assert.ErrorIs(t, err, context.Canceled)
}
