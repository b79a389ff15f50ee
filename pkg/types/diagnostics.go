package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Warning System - recoverable issues collected alongside the Document
// -----------------------------------------------------------------------------
//
// Fatal problems are returned as *Error. Everything else (skipped records,
// unresolved pointers, lossy bytes) is recorded as a Warning so a caller who
// ignores them still gets a usable Document, and a caller who inspects them
// can pinpoint every degradation.

// WarningKind classifies a recoverable issue.
type WarningKind int

const (
	WarnUnsupportedRecord WarningKind = iota // unknown top-level or child tag, subtree skipped
	WarnDanglingReference                    // pointer names an xref with no matching record
	WarnLossyEncoding                        // byte replaced by a placeholder or mark orphaned
	WarnCharsetFallback                      // CHAR missing or unknown, Windows-1252 assumed
	WarnMalformedRecord                      // record failed to map and was skipped
	WarnMalformedValue                       // field value could not be interpreted, field left empty
	WarnDuplicateXRef                        // second record with an xref already used in its namespace
)

func (k WarningKind) String() string {
	switch k {
	case WarnUnsupportedRecord:
		return "UNSUPPORTED_RECORD"
	case WarnDanglingReference:
		return "DANGLING_REFERENCE"
	case WarnLossyEncoding:
		return "LOSSY_ENCODING"
	case WarnCharsetFallback:
		return "CHARSET_FALLBACK"
	case WarnMalformedRecord:
		return "MALFORMED_RECORD"
	case WarnMalformedValue:
		return "MALFORMED_VALUE"
	case WarnDuplicateXRef:
		return "DUPLICATE_XREF"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the kind by name in JSON output.
func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Warning is a single recoverable issue.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Line   int         `json:"line,omitempty"`   // 1-based input line, 0 if unknown
	Offset int         `json:"offset,omitempty"` // byte offset for encoding warnings
	Tag    string      `json:"tag,omitempty"`
	XRef   string      `json:"xref,omitempty"`
	Msg    string      `json:"message"`
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Kind.String())
	switch {
	case w.Line > 0:
		fmt.Fprintf(&b, " line %d", w.Line)
	case w.Offset > 0:
		fmt.Fprintf(&b, " offset 0x%X", w.Offset)
	}
	if w.Tag != "" {
		b.WriteString(" " + w.Tag)
	}
	if w.XRef != "" {
		b.WriteString(" " + w.XRef)
	}
	b.WriteString(": " + w.Msg)
	return b.String()
}

// Report groups warnings for presentation.
type Report struct {
	Encoding string    `json:"encoding,omitempty"`
	Warnings []Warning `json:"warnings"`

	Summary ReportSummary `json:"summary"`

	// Pre-computed groupings for efficient querying
	ByKind map[WarningKind][]Warning `json:"by_kind,omitempty"`
	ByLine []Warning                 `json:"-"` // sorted by line
}

// ReportSummary provides quick statistics
type ReportSummary struct {
	Total            int `json:"total"`
	SkippedRecords   int `json:"skipped_records"`
	DanglingPointers int `json:"dangling_pointers"`
	EncodingIssues   int `json:"encoding_issues"`
	MalformedValues  int `json:"malformed_values"`
	DuplicateRecords int `json:"duplicate_records"`
}

// NewReport creates a report over ws.
func NewReport(encoding string, ws []Warning) *Report {
	r := &Report{
		Encoding: encoding,
		ByKind:   make(map[WarningKind][]Warning),
	}
	for _, w := range ws {
		r.Add(w)
	}
	r.Finalize()
	return r
}

// Add adds a warning to the report and updates indices
func (r *Report) Add(w Warning) {
	r.Warnings = append(r.Warnings, w)
	r.Summary.Total++

	switch w.Kind {
	case WarnUnsupportedRecord, WarnMalformedRecord:
		r.Summary.SkippedRecords++
	case WarnDanglingReference:
		r.Summary.DanglingPointers++
	case WarnLossyEncoding, WarnCharsetFallback:
		r.Summary.EncodingIssues++
	case WarnMalformedValue:
		r.Summary.MalformedValues++
	case WarnDuplicateXRef:
		r.Summary.DuplicateRecords++
	}

	r.ByKind[w.Kind] = append(r.ByKind[w.Kind], w)
}

// Finalize sorts warnings by line and prepares for output
func (r *Report) Finalize() {
	r.ByLine = make([]Warning, len(r.Warnings))
	copy(r.ByLine, r.Warnings)
	sort.SliceStable(r.ByLine, func(i, j int) bool {
		return r.ByLine[i].Line < r.ByLine[j].Line
	})
}

// HasAnyIssues returns true if any warnings were recorded
func (r *Report) HasAnyIssues() bool {
	return len(r.Warnings) > 0
}

// Count returns how many warnings of kind k were recorded.
func (r *Report) Count(k WarningKind) int {
	return len(r.ByKind[k])
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatJSON returns the report as formatted JSON (2-space indentation)
func (r *Report) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable text report
func (r *Report) FormatText() string {
	var b strings.Builder

	b.WriteString("=" + strings.Repeat("=", 78) + "\n")
	b.WriteString("GEDCOM Parse Report\n")
	b.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	if r.Encoding != "" {
		b.WriteString(fmt.Sprintf("Encoding: %s\n\n", r.Encoding))
	}

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	b.WriteString(fmt.Sprintf("  Skipped records:   %d\n", r.Summary.SkippedRecords))
	b.WriteString(fmt.Sprintf("  Dangling pointers: %d\n", r.Summary.DanglingPointers))
	b.WriteString(fmt.Sprintf("  Encoding issues:   %d\n", r.Summary.EncodingIssues))
	b.WriteString(fmt.Sprintf("  Malformed values:  %d\n", r.Summary.MalformedValues))
	b.WriteString(fmt.Sprintf("  Duplicate records: %d\n\n", r.Summary.DuplicateRecords))

	if len(r.Warnings) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	b.WriteString("WARNINGS\n")
	b.WriteString(strings.Repeat("-", 79) + "\n\n")

	kinds := make([]WarningKind, 0, len(r.ByKind))
	for k := range r.ByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		ws := r.ByKind[kind]
		b.WriteString(fmt.Sprintf("%s (%d)\n", kind, len(ws)))
		b.WriteString(strings.Repeat("~", 79) + "\n")
		for i, w := range ws {
			b.WriteString(fmt.Sprintf("\n%d. ", i+1))
			if w.Line > 0 {
				b.WriteString(fmt.Sprintf("line %d", w.Line))
			} else {
				b.WriteString(fmt.Sprintf("offset 0x%X", w.Offset))
			}
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("   %s\n", w.Msg))
			if w.Tag != "" {
				b.WriteString(fmt.Sprintf("   Tag:  %s\n", w.Tag))
			}
			if w.XRef != "" {
				b.WriteString(fmt.Sprintf("   XRef: %s\n", w.XRef))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTextCompact returns a compact one-line-per-issue text format
func (r *Report) FormatTextCompact() string {
	var b strings.Builder

	for _, w := range r.ByLine {
		b.WriteString(w.String())
		b.WriteString("\n")
	}

	if len(r.Warnings) == 0 {
		b.WriteString("No issues found.\n")
	}

	return b.String()
}
