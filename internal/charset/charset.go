// Package charset recovers a canonical Unicode string from the raw bytes of
// a GEDCOM file.
//
// The declared encoding is read from the "1 CHAR" header line, which is
// ASCII-compatible in every single-byte encoding GEDCOM allows. UTF-16
// files are recognized by their byte order mark (or by the NUL byte next to
// the leading '0') before the header is scanned.
package charset

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/gedkit/pkg/types"
)

// Options controls decoding.
type Options struct {
	// Lenient replaces bytes without a mapping by Placeholder and records a
	// LossyEncoding warning instead of failing the decode.
	Lenient bool
}

// Result is the outcome of a successful decode.
type Result struct {
	Text     string          // canonical Unicode text, leading BOM removed
	Encoding string          // canonical name of the encoding used
	Declared string          // raw CHAR value, "" if absent
	Warnings []types.Warning // recoverable issues, in input order
}

// Decode detects the encoding of data and converts it to a Unicode string.
func Decode(data []byte, opts Options) (Result, error) {
	s := &sink{}

	// UTF-16 is unreadable as ASCII, so it is sniffed before the header scan.
	if enc, body, ok := sniffUTF16(data); ok {
		text, err := decodeUTF16(body, enc, opts, s)
		if err != nil {
			return Result{}, err
		}
		return Result{Text: trimBOM(text), Encoding: enc, Warnings: s.warnings}, nil
	}

	body := bytes.TrimPrefix(data, UTF8BOM)
	hadUTF8BOM := len(body) != len(data)

	declared, found := DeclaredCharset(body)
	enc, known := Canonical(declared)
	switch {
	case !found || declared == "":
		if hadUTF8BOM {
			enc = EncodingUTF8
			break
		}
		enc = EncodingANSI
		s.add(types.Warning{
			Kind: types.WarnCharsetFallback,
			Tag:  charTag,
			Msg:  "no CHAR declaration in header, assuming Windows-1252",
		})
	case !known:
		enc = EncodingANSI
		s.add(types.Warning{
			Kind: types.WarnCharsetFallback,
			Tag:  charTag,
			Msg:  fmt.Sprintf("unrecognized CHAR value %q, assuming Windows-1252", declared),
		})
	case enc == EncodingUnicode || enc == EncodingUTF16BE:
		// The header was readable as 8-bit text, so the body is not UTF-16.
		// Producers commonly write CHAR UNICODE into UTF-8 files.
		enc = EncodingUTF8
		s.add(types.Warning{
			Kind: types.WarnCharsetFallback,
			Tag:  charTag,
			Msg:  fmt.Sprintf("CHAR %s declared but content is 8-bit, decoding as UTF-8", declared),
		})
	}

	text, err := decodeAs(enc, body, opts, s)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: trimBOM(text), Encoding: enc, Declared: declared, Warnings: s.warnings}, nil
}

func decodeAs(enc string, body []byte, opts Options, s *sink) (string, error) {
	switch enc {
	case EncodingUTF8:
		return decodeUTF8(body, opts, s)
	case EncodingASCII:
		return decodeASCII(body, opts, s)
	case EncodingANSEL:
		return decodeANSEL(body, opts, s)
	case EncodingUnicode, EncodingUTF16BE:
		return decodeUTF16(body, enc, opts, s)
	case EncodingIBMPC:
		return decodeCharmap(body, charmap.CodePage437, enc, opts, s)
	case EncodingMacintosh:
		return decodeCharmap(body, charmap.Macintosh, enc, opts, s)
	case EncodingLatin1:
		return decodeCharmap(body, charmap.ISO8859_1, enc, opts, s)
	default:
		return decodeCharmap(body, charmap.Windows1252, EncodingANSI, opts, s)
	}
}

// Canonical maps a declared CHAR value to the encoding name used for
// decoding. The second result is false for values this package does not know.
func Canonical(declared string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(declared)) {
	case "UTF-8", "UTF8":
		return EncodingUTF8, true
	case "ASCII", "US-ASCII":
		return EncodingASCII, true
	case "ANSI", "WINDOWS-1252", "CP1252":
		return EncodingANSI, true
	case "UNICODE", "UTF-16", "UTF-16LE":
		return EncodingUnicode, true
	case "UTF-16BE":
		return EncodingUTF16BE, true
	case "ANSEL":
		return EncodingANSEL, true
	case "IBMPC", "IBM WINDOWS", "IBM DOS", "CP437":
		return EncodingIBMPC, true
	case "MACINTOSH", "MACROMAN":
		return EncodingMacintosh, true
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return EncodingLatin1, true
	default:
		return "", false
	}
}

// DeclaredCharset scans at most the first types.CharsetScanBudget bytes of
// data for a "1 CHAR <value>" line and returns its value. found is false
// when no such line appears within the budget.
func DeclaredCharset(data []byte) (value string, found bool) {
	prefix := data
	if len(prefix) > types.CharsetScanBudget {
		prefix = prefix[:types.CharsetScanBudget]
		// The last line may be cut short; only complete lines count.
		if i := bytes.LastIndexAny(prefix, "\r\n"); i >= 0 {
			prefix = prefix[:i]
		}
	}

	for len(prefix) > 0 {
		var line []byte
		if i := bytes.IndexAny(prefix, "\r\n"); i >= 0 {
			line, prefix = prefix[:i], prefix[i+1:]
		} else {
			line, prefix = prefix, nil
		}
		fields := bytes.Fields(line)
		if len(fields) < 2 || string(fields[0]) != charLevel || string(fields[1]) != charTag {
			continue
		}
		return string(bytes.Join(fields[2:], []byte(" "))), true
	}
	return "", false
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, string(byteOrderMark))
}

// sink accumulates warnings raised while decoding.
type sink struct {
	warnings []types.Warning
}

func (s *sink) add(w types.Warning) {
	s.warnings = append(s.warnings, w)
}

func (s *sink) lossy(offset int, format string, args ...any) {
	s.add(types.Warning{
		Kind:   types.WarnLossyEncoding,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	})
}

func unmappableError(enc string, offset int, c byte) error {
	return types.EncodingError("%s: byte 0x%02X at offset %d has no mapping", enc, c, offset)
}
