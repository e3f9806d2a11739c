package refactor

import "github.com/rs/zerolog"

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithMinSaved sets the minimum node-count gain a candidate rewrite must
// offer to be accepted (the evaluator's minSaved argument). Default 1.
func WithMinSaved(minSaved int) Option {
	return func(d *Driver) { d.minSaved = minSaved }
}

// WithUpdateLevels controls whether RunPass maintains Level/ReverseLevel
// incrementally through each Replace call. Default true.
func WithUpdateLevels(update bool) Option {
	return func(d *Driver) { d.updateLevels = update }
}

// WithMaxFanouts overrides the fanout-count ceiling above which a node is
// skipped rather than offered to the evaluator (spec §4.8 step 3). Default
// 1000.
func WithMaxFanouts(max int) Option {
	return func(d *Driver) { d.maxFanouts = max }
}

// WithLogger attaches a zerolog.Logger for per-pass debug output. The zero
// Driver logs nothing (zerolog.Nop()).
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}
