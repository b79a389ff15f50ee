package gedcom

import "log/slog"

// Options configures a parse.
type Options struct {
	// Verbose collects warnings and returns them alongside the document.
	// When false the returned warning slice is nil and nothing is logged
	// at Warn level.
	Verbose bool

	// Lenient replaces bytes the declared encoding cannot map with U+FFFD
	// and records a LossyEncoding warning instead of failing the parse.
	Lenient bool

	// Workers caps the goroutines used to map records. Zero or negative
	// means runtime.GOMAXPROCS(0); 1 maps sequentially.
	Workers int

	// Logger receives stage summaries at Debug and warnings at Warn.
	// Nil discards all output.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the convenience helpers:
// warnings collected, strict decoding, one worker per CPU.
func DefaultOptions() Options {
	return Options{Verbose: true}
}
