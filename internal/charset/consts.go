package charset

const (
	// ============================================================================
	// Encoding Names (canonical values reported in Result.Encoding)
	// ============================================================================

	EncodingUTF8      = "UTF-8"
	EncodingASCII     = "ASCII"
	EncodingANSI      = "ANSI" // Windows-1252
	EncodingUnicode   = "UNICODE"
	EncodingUTF16BE   = "UTF-16BE"
	EncodingANSEL     = "ANSEL"
	EncodingIBMPC     = "IBMPC" // code page 437
	EncodingMacintosh = "MACINTOSH"
	EncodingLatin1    = "ISO-8859-1"

	// ============================================================================
	// Header scanning
	// ============================================================================

	// charLevel and charTag identify the header line declaring the encoding.
	charLevel = "1"
	charTag   = "CHAR"

	// ============================================================================
	// ANSEL byte ranges
	// ============================================================================

	// anselCombiningFirst is the first byte of the combining-diacritic block.
	// Every byte from here to 0xFF precedes the base character it modifies.
	anselCombiningFirst = 0xE0

	// anselExtendedFirst is the first byte of the extended (non-ASCII) half.
	anselExtendedFirst = 0x80

	// ============================================================================
	// UTF-16
	// ============================================================================

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes
	UTF16CodeUnitSize = 2

	// Placeholder replaces bytes that cannot be mapped in lenient mode.
	Placeholder = '\uFFFD'

	// byteOrderMark is U+FEFF, stripped from the start of decoded text.
	byteOrderMark = '\uFEFF'
)

var (
	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF16BEBOM is the byte order mark for UTF-16 big-endian
	UTF16BEBOM = []byte{0xFE, 0xFF}
)
