package convert

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Warning type constants for per-row conversion problems.
const (
	WarningMissingPosition = "missing_position"
	WarningBadTimestamp    = "bad_timestamp"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().Str("component", "convert").Logger()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	log = l.With().Str("component", "convert").Logger()
}

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects per-row warnings during a conversion and emits
// consolidated summaries instead of one log line per bad row.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{warnings: map[string]*warningInfo{}}
}

// Add records a warning occurrence with an example row reference
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{examples: make([]string, 0, 3)}
	}
	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Count returns the number of occurrences recorded for a warning type.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated form.
func (w *WarningAggregator) LogAll() {
	for warningType, info := range w.warnings {
		var description, action string
		switch warningType {
		case WarningMissingPosition:
			description = "rows without latitude/longitude"
			action = "Dropped from output"
		case WarningBadTimestamp:
			description = "unparsable timestamps"
			action = "Building points without time"
		default:
			description = "unknown issue"
			action = "Continuing with fallback behavior"
		}
		log.Warn().
			Str("warning", warningType).
			Int("occurrences", info.count).
			Str("examples", strings.Join(info.examples, ", ")).
			Msgf("%s (%d occurrences). %s", description, info.count, action)
	}
}
