package ast

const (
	// ============================================================================
	// Top-level record tags
	// ============================================================================

	TagHead       = "HEAD"
	TagTrailer    = "TRLR"
	TagIndividual = "INDI"
	TagFamily     = "FAM"
	TagSource     = "SOUR"
	TagRepository = "REPO"
	TagMultimedia = "OBJE"
	TagNote       = "NOTE"
	TagSubmitter  = "SUBM"

	// ============================================================================
	// Line continuation
	// ============================================================================

	// TagConc joins its value to the previous text with no separator.
	TagConc = "CONC"

	// TagCont starts a new line of the previous text.
	TagCont = "CONT"

	// UserTagPrefix marks producer-defined tags such as _UID.
	UserTagPrefix = "_"
)
