package charset

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/gedkit/pkg/types"
)

// decodeUTF8 validates data as UTF-8. Valid input is returned without
// copying through a decoder.
func decodeUTF8(data []byte, opts Options, s *sink) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			if !opts.Lenient {
				return "", types.EncodingError("%s: invalid byte sequence at offset %d", EncodingUTF8, i)
			}
			s.lossy(i, "invalid UTF-8 byte 0x%02X", data[i])
			b.WriteRune(Placeholder)
			i++
			continue
		}
		b.Write(data[i : i+size])
		i += size
	}
	return b.String(), nil
}

// decodeASCII accepts 7-bit input only.
func decodeASCII(data []byte, opts Options, s *sink) (string, error) {
	i := bytes.IndexFunc(data, func(r rune) bool { return r >= utf8.RuneSelf })
	if i < 0 {
		return string(data), nil
	}
	if !opts.Lenient {
		return "", unmappableError(EncodingASCII, i, data[i])
	}

	var b strings.Builder
	b.Grow(len(data))
	for off, c := range data {
		if c >= utf8.RuneSelf {
			s.lossy(off, "byte 0x%02X is not ASCII", c)
			b.WriteRune(Placeholder)
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// decodeCharmap decodes a single-byte encoding. The lower half is always
// ASCII; the upper half goes through the code page table.
func decodeCharmap(data []byte, cm *charmap.Charmap, enc string, opts Options, s *sink) (string, error) {
	var b strings.Builder
	b.Grow(len(data) + len(data)/4)
	for i, c := range data {
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			continue
		}
		r := cm.DecodeByte(c)
		if r == utf8.RuneError {
			if !opts.Lenient {
				return "", unmappableError(enc, i, c)
			}
			s.lossy(i, "byte 0x%02X has no %s mapping", c, enc)
			b.WriteRune(Placeholder)
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// sniffUTF16 recognizes UTF-16 input by BOM, or by the NUL byte paired with
// the leading '0' of "0 HEAD". It returns the encoding and the body with any
// BOM removed.
func sniffUTF16(data []byte) (string, []byte, bool) {
	switch {
	case bytes.HasPrefix(data, UTF16LEBOM):
		return EncodingUnicode, data[len(UTF16LEBOM):], true
	case bytes.HasPrefix(data, UTF16BEBOM):
		return EncodingUTF16BE, data[len(UTF16BEBOM):], true
	case len(data) >= 2 && data[0] == '0' && data[1] == 0x00:
		return EncodingUnicode, data, true
	case len(data) >= 2 && data[0] == 0x00 && data[1] == '0':
		return EncodingUTF16BE, data, true
	}
	return "", nil, false
}

// decodeUTF16 validates surrogate pairing, then runs the x/text decoder.
func decodeUTF16(data []byte, enc string, opts Options, s *sink) (string, error) {
	var order binary.ByteOrder = binary.LittleEndian
	endian := xunicode.LittleEndian
	if enc == EncodingUTF16BE {
		order = binary.BigEndian
		endian = xunicode.BigEndian
	}
	data = bytes.TrimPrefix(data, bomFor(enc))

	if len(data)%UTF16CodeUnitSize != 0 {
		if !opts.Lenient {
			return "", types.EncodingError("%s: odd byte count %d", enc, len(data))
		}
		s.lossy(len(data)-1, "dropped trailing odd byte of UTF-16 input")
		data = data[:len(data)-1]
	}

	if err := checkSurrogates(data, order, enc, opts, s); err != nil {
		return "", err
	}

	out, _, err := transform.Bytes(xunicode.UTF16(endian, xunicode.IgnoreBOM).NewDecoder(), data)
	if err != nil {
		return "", types.EncodingError("%s: %v", enc, err)
	}
	return string(out), nil
}

// checkSurrogates reports every high surrogate not followed by a low one and
// every low surrogate not preceded by a high one. The x/text decoder
// silently replaces those; strict mode must reject them instead.
func checkSurrogates(data []byte, order binary.ByteOrder, enc string, opts Options, s *sink) error {
	units := len(data) / UTF16CodeUnitSize
	for i := 0; i < units; i++ {
		u := order.Uint16(data[i*UTF16CodeUnitSize:])
		if !utf16.IsSurrogate(rune(u)) {
			continue
		}
		if isHighSurrogate(u) && i+1 < units && isLowSurrogate(order.Uint16(data[(i+1)*UTF16CodeUnitSize:])) {
			i++
			continue
		}
		offset := i * UTF16CodeUnitSize
		if !opts.Lenient {
			return types.EncodingError("%s: unpaired surrogate 0x%04X at offset %d", enc, u, offset)
		}
		s.lossy(offset, "unpaired surrogate 0x%04X", u)
	}
	return nil
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u < 0xE000 }

func bomFor(enc string) []byte {
	if enc == EncodingUTF16BE {
		return UTF16BEBOM
	}
	return UTF16LEBOM
}
