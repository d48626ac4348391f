package analysis

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options controls profiling behavior.
type Options struct {
	// Out receives the informational summary lines some operations print. Nil means stdout.
	Out io.Writer
	// Logger receives structured diagnostics.
	Logger zerolog.Logger
	// TopNullRows is the default limit for TopNullRows.
	TopNullRows int
	// NumericTopValues is how many most frequent values a numeric profile keeps.
	NumericTopValues int
	// CategoricalModes is how many ranked modes a categorical profile reports.
	CategoricalModes int
	// ModesIncludeMissing counts missing cells as their own bucket when ranking modes.
	ModesIncludeMissing bool
}

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		Out:                 os.Stdout,
		Logger:              zerolog.Nop(),
		TopNullRows:         10,
		NumericTopValues:    5,
		CategoricalModes:    3,
		ModesIncludeMissing: true,
	}
}

// Analyzer runs profiling operations. It holds configuration only; every operation takes
// the table explicitly and never retains it.
type Analyzer struct {
	opt   Options
	out   io.Writer
	log   zerolog.Logger
	runID string
}

// New builds an Analyzer. Non-positive limits fall back to DefaultOptions.
func New(opt Options) *Analyzer {
	def := DefaultOptions()
	if opt.TopNullRows <= 0 {
		opt.TopNullRows = def.TopNullRows
	}
	if opt.NumericTopValues <= 0 {
		opt.NumericTopValues = def.NumericTopValues
	}
	if opt.CategoricalModes <= 0 {
		opt.CategoricalModes = def.CategoricalModes
	}
	out := opt.Out
	if out == nil {
		out = os.Stdout
	}
	id := uuid.NewString()
	return &Analyzer{
		opt:   opt,
		out:   out,
		log:   opt.Logger.With().Str("run_id", id).Logger(),
		runID: id,
	}
}

// RunID identifies this analyzer in log output.
func (a *Analyzer) RunID() string { return a.runID }

// Options returns the effective options.
func (a *Analyzer) Options() Options { return a.opt }
