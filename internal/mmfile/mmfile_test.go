package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gedkit/internal/testutil"
)

func TestMap(t *testing.T) {
	want := []byte(testutil.Document("0 @I1@ INDI"))
	path := testutil.WriteFile(t, "tiny.ged", want)

	data, release, err := Map(path)
	require.NoError(t, err)
	assert.Equal(t, want, data)
	require.NoError(t, release())
}

func TestMap_Empty(t *testing.T) {
	data, release, err := Map(testutil.WriteFile(t, "empty.ged", nil))
	require.NoError(t, err)
	assert.Empty(t, data)
	require.NotNil(t, release)
	assert.NoError(t, release())
}

func TestMap_Missing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope.ged"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
