package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gedkit/pkg/types"
)

func TestTokenize_Grammar(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Token
	}{
		{"level and tag", "0 HEAD", Token{Line: 1, Level: 0, Tag: "HEAD"}},
		{"record with xref", "0 @I1@ INDI", Token{Line: 1, Level: 0, XRef: "@I1@", Tag: "INDI"}},
		{"value", "1 NAME John /Smith/", Token{Line: 1, Level: 1, Tag: "NAME", Value: "John /Smith/"}},
		{"pointer value", "1 HUSB @I99@", Token{Line: 1, Level: 1, Tag: "HUSB", Value: "@I99@"}},
		{"xref and value", "0 @N1@ NOTE first line", Token{Line: 1, Level: 0, XRef: "@N1@", Tag: "NOTE", Value: "first line"}},
		{"trailing whitespace trimmed", "2 DATE 1 JAN 1900  \t", Token{Line: 1, Level: 2, Tag: "DATE", Value: "1 JAN 1900"}},
		{"leading value spaces kept", "2 CONC  two spaces", Token{Line: 1, Level: 2, Tag: "CONC", Value: " two spaces"}},
		{"leading indentation", "   1 SEX M", Token{Line: 1, Level: 1, Tag: "SEX", Value: "M"}},
		{"user defined tag", "1 _UID 1234", Token{Line: 1, Level: 1, Tag: "_UID", Value: "1234"}},
		{"two digit level", "12 NOTE x", Token{Line: 1, Level: 12, Tag: "NOTE", Value: "x"}},
		{"tab delimiters", "1\tNAME\tJane", Token{Line: 1, Level: 1, Tag: "NAME", Value: "Jane"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.line)
			require.NoError(t, err)
			require.Len(t, toks, 1)
			assert.Equal(t, tt.want, toks[0])
		})
	}
}

func TestTokenize_LineTerminators(t *testing.T) {
	text := "0 HEAD\r\n1 CHAR UTF-8\r0 @I1@ INDI\n\n   \n1 NAME A\r\n0 TRLR"

	toks, err := Tokenize(text)
	require.NoError(t, err)
	require.Len(t, toks, 5)

	tags := make([]string, len(toks))
	lines := make([]int, len(toks))
	for i, tok := range toks {
		tags[i] = tok.Tag
		lines[i] = tok.Line
	}
	assert.Equal(t, []string{"HEAD", "CHAR", "INDI", "NAME", "TRLR"}, tags)
	// blank lines are skipped but still counted
	assert.Equal(t, []int{1, 2, 3, 6, 7}, lines)
}

func TestTokenize_Empty(t *testing.T) {
	toks, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, toks)

	toks, err = Tokenize("\n\r\n  \n")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestTokenize_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
	}{
		{"missing level", "0 HEAD\nHEAD", 2},
		{"missing tag", "0 HEAD\n1", 2},
		{"missing tag after xref", "0 @I1@", 1},
		{"level glued to tag", "0HEAD", 1},
		{"level too deep", "100 NOTE x", 1},
		{"level overflow", "99999999999999999999999 NOTE", 1},
		{"unterminated xref", "0 @I1 INDI", 1},
		{"empty xref", "0 @@ INDI", 1},
		{"bad tag characters", "0 HEAD\n\n1 NA-ME x", 3},
		{"tag too long", "1 ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrStructure))

			var perr *types.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestLexer_StopsAtFirstError(t *testing.T) {
	l := New("0 HEAD\nbad\n0 TRLR\n")

	require.True(t, l.Next())
	assert.Equal(t, "HEAD", l.Token().Tag)
	assert.False(t, l.Next())
	assert.False(t, l.Next(), "lexer must not resume after an error")
	require.Error(t, l.Err())
}

func TestLexer_Restartable(t *testing.T) {
	const text = "0 HEAD\n0 TRLR\n"
	first, err := Tokenize(text)
	require.NoError(t, err)
	second, err := Tokenize(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
