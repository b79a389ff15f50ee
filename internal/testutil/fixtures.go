// Package testutil holds GEDCOM fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/gedkit/pkg/types"
)

// Header is a minimal UTF-8 header. It occupies lines 1 through 6, so the
// first record after it starts on line 7.
const Header = "0 HEAD\r\n1 SOUR TEST\r\n1 GEDC\r\n2 VERS 5.5.1\r\n2 FORM LINEAGE-LINKED\r\n1 CHAR UTF-8\r\n"

// HeaderLines is the number of lines in Header.
const HeaderLines = 6

// GED joins lines with CRLF, the terminator most producers write.
func GED(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

// Document wraps record lines in Header and a trailer.
func Document(records ...string) string {
	return Header + GED(append(records, "0 TRLR")...)
}

// WriteFile writes data to name inside a fresh temp directory and returns
// the full path.
//
// Example:
//
//	path := testutil.WriteFile(t, "tiny.ged", []byte(testutil.Document("0 @I1@ INDI")))
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// Kinds projects warnings onto their kinds for compact assertions.
func Kinds(ws []types.Warning) []types.WarningKind {
	out := make([]types.WarningKind, len(ws))
	for i, w := range ws {
		out[i] = w.Kind
	}
	return out
}
