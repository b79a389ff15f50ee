package types

// ============================================================================
// GEDCOM 5.5.1 Grammar Limits
// ============================================================================

const (
	// CharsetScanBudget is how many leading bytes are inspected for the
	// "1 CHAR" declaration. Header tags are ASCII-compatible in every
	// single-byte and multibyte-UTF-8 GEDCOM encoding.
	CharsetScanBudget = 2048

	// MaxLevel is the deepest level number a line may carry.
	MaxLevel = 99

	// MaxTagLen is the maximum length of a tag, user-defined tags included.
	MaxTagLen = 31

	// MaxXRefLen is the maximum length of a cross-reference id including
	// the enclosing '@' characters. GEDCOM 5.5.1 allows 22; longer ids from
	// real producers (Ancestry exports use 20+ digit ids) are tolerated.
	MaxXRefLen = 64
)
