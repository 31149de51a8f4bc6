package manchu

import (
	"path/filepath"
	"reflect"

	"github.com/rs/zerolog"
)

// Config holds New's optional settings, set through Option values. The
// resource directory is not part of it: New takes that as its own
// argument.
type Config struct {
	// Converter does romanization-to-native-script conversion for the
	// phonotactic validator and ToNativeScriptInPlace. Defaults to
	// DefaultConverter when nil.
	Converter NativeScriptConverter
	// Logger receives structured progress/debug events. Defaults to
	// zerolog.Nop() when unset.
	Logger zerolog.Logger
}

// Option mutates a Config; passed variadically to New.
type Option func(*Config)

// WithConverter overrides the native-script converter.
func WithConverter(c NativeScriptConverter) Option {
	return func(cfg *Config) { cfg.Converter = c }
}

// WithLogger overrides the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// Resources holds the three process-lifetime immutable tables: suffixes,
// function words, and edge costs. Safe for concurrent reads from multiple
// goroutines once loaded.
type Resources struct {
	Suffixes      []Suffix
	FunctionWords []FunctionWord
	EdgeCosts     EdgeCostMap
	conv          NativeScriptConverter
	log           zerolog.Logger
}

// EdgeCostMap maps (categoryLeft, categoryRight) pairs to a signed integer
// cost; missing keys default to 0.
type EdgeCostMap map[[2]string]int

// Cost returns the edge cost between two categories, 0 if absent.
func (m EdgeCostMap) Cost(left, right string) int {
	return m[[2]string{left, right}]
}

// Analyzer is the process-wide, immutable-table-backed entry point for
// building lattices.
type Analyzer struct {
	res *Resources
}

// New loads the three resource tables from dataDir (suffix.csv,
// function_word.json, edge_cost.json) and returns a ready-to-use
// Analyzer.
func New(dataDir string, opts ...Option) (*Analyzer, error) {
	cfg := Config{Converter: DefaultConverter, Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Resources{conv: cfg.Converter, log: cfg.Logger}

	suffixes, err := loadSuffixTable(filepath.Join(dataDir, "suffix.csv"))
	if err != nil {
		return nil, err
	}
	res.Suffixes = suffixes
	res.log.Debug().Int("count", len(suffixes)).Msg("loaded suffix table")

	fws, err := loadFunctionWordTable(filepath.Join(dataDir, "function_word.json"))
	if err != nil {
		return nil, err
	}
	res.FunctionWords = fws
	res.log.Debug().Int("count", len(fws)).Msg("loaded function-word table")

	edges, err := loadEdgeCostTable(filepath.Join(dataDir, "edge_cost.json"))
	if err != nil {
		return nil, err
	}
	res.EdgeCosts = edges
	res.log.Debug().Int("count", len(edges)).Msg("loaded edge-cost table")

	return &Analyzer{res: res}, nil
}

// NewFromResources builds an Analyzer from already-loaded tables, skipping
// filesystem access entirely, for callers that preload from embedded
// bytes rather than a data directory.
func NewFromResources(res *Resources) *Analyzer {
	if res.conv == nil {
		res.conv = DefaultConverter
	}
	if reflect.ValueOf(res.log).IsZero() {
		res.log = zerolog.Nop()
	}
	return &Analyzer{res: res}
}

// FromSentence builds a Lattice for sentence using this Analyzer's
// resource tables.
func (a *Analyzer) FromSentence(sentence string) *Lattice {
	return fromSentence(sentence, a.res)
}
