package charset

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// anselTable maps the upper half of ANSEL (ANSI/NISO Z39.47) plus the GEDCOM
// 5.5.1 extensions to Unicode. Index is byte-0x80. Zero means unmapped.
// Entries from 0xE0 up are combining marks; they precede their base
// character in ANSEL and follow it in Unicode.
var anselTable = [128]rune{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0x80-0x87
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x200D, 0x200C, 0x0000, // 0x88-0x8F ZWJ ZWNJ
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0x90-0x97
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0x98-0x9F
	0x0000, 0x0141, 0x00D8, 0x0110, 0x00DE, 0x00C6, 0x0152, 0x02B9, // 0xA0-0xA7 Ł Ø Đ Þ Æ Œ ʹ
	0x00B7, 0x266D, 0x00AE, 0x00B1, 0x01A0, 0x01AF, 0x02BC, 0x0000, // 0xA8-0xAF · ♭ ® ± Ơ Ư ʼ
	0x02BB, 0x0142, 0x00F8, 0x0111, 0x00FE, 0x00E6, 0x0153, 0x02BA, // 0xB0-0xB7 ʻ ł ø đ þ æ œ ʺ
	0x0131, 0x00A3, 0x00F0, 0x0000, 0x01A1, 0x01B0, 0x25A1, 0x25A0, // 0xB8-0xBF ı £ ð ơ ư □ ■
	0x00B0, 0x2113, 0x2117, 0x00A9, 0x266F, 0x00BF, 0x00A1, 0x00DF, // 0xC0-0xC7 ° ℓ ℗ © ♯ ¿ ¡ ß
	0x20AC, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x00DF, // 0xC8-0xCF € ß (GEDCOM)
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0xD0-0xD7
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0xD8-0xDF
	0x0309, 0x0300, 0x0301, 0x0302, 0x0303, 0x0304, 0x0306, 0x0307, // 0xE0-0xE7 hook grave acute circumflex tilde macron breve dot
	0x0308, 0x030C, 0x030A, 0xFE20, 0xFE21, 0x0315, 0x030B, 0x0310, // 0xE8-0xEF umlaut caron ring ligature-l ligature-r comma-right double-acute candrabindu
	0x0327, 0x0328, 0x0323, 0x0324, 0x0325, 0x0333, 0x0332, 0x0326, // 0xF0-0xF7 cedilla ogonek dot-below umlaut-below ring-below double-underline underline comma-below
	0x031C, 0x032E, 0xFE22, 0xFE23, 0x0000, 0x0000, 0x0313, 0x0000, // 0xF8-0xFF half-ring-below breve-below tilde-l tilde-r comma-above
}

// anselDecoder turns ANSEL bytes into NFC text. Diacritics arrive before the
// base character; they are queued and written after it.
type anselDecoder struct {
	opts    Options
	sink    *sink
	out     strings.Builder
	pending []pendingMark
}

type pendingMark struct {
	r      rune
	offset int
}

func decodeANSEL(data []byte, opts Options, s *sink) (string, error) {
	d := &anselDecoder{opts: opts, sink: s}
	d.out.Grow(len(data) + len(data)/8)

	for i, c := range data {
		switch {
		case c < anselExtendedFirst:
			if isControl(c) {
				// Marks never attach across a line break or control byte.
				d.orphanPending("control character")
				d.out.WriteByte(c)
				continue
			}
			d.out.WriteByte(c)
			d.flushPending()

		case c >= anselCombiningFirst:
			r := anselTable[c-anselExtendedFirst]
			if r == 0 {
				if err := d.unmappable(i, c); err != nil {
					return "", err
				}
				continue
			}
			d.pending = append(d.pending, pendingMark{r: r, offset: i})

		default:
			r := anselTable[c-anselExtendedFirst]
			d.orphanPending("extended character")
			if r == 0 {
				if err := d.unmappable(i, c); err != nil {
					return "", err
				}
				continue
			}
			d.out.WriteRune(r)
		}
	}
	d.orphanPending("end of input")

	return norm.NFC.String(d.out.String()), nil
}

// flushPending writes queued marks after the base just emitted, in arrival order.
func (d *anselDecoder) flushPending() {
	for _, m := range d.pending {
		d.out.WriteRune(m.r)
	}
	d.pending = d.pending[:0]
}

// orphanPending writes queued marks that have no base to attach to and
// records a warning for each.
func (d *anselDecoder) orphanPending(before string) {
	for _, m := range d.pending {
		d.out.WriteRune(m.r)
		d.sink.lossy(m.offset, "combining mark U+%04X has no base character (followed by %s)", m.r, before)
	}
	d.pending = d.pending[:0]
}

func (d *anselDecoder) unmappable(offset int, c byte) error {
	if !d.opts.Lenient {
		return unmappableError(EncodingANSEL, offset, c)
	}
	d.orphanPending("unmappable byte")
	d.out.WriteRune(Placeholder)
	d.sink.lossy(offset, "byte 0x%02X has no ANSEL mapping", c)
	return nil
}

func isControl(c byte) bool {
	return c < 0x20 || c == 0x7F
}
