package strategy

import (
	"log/slog"
	"time"
)

// DefaultMaxDepth bounds how deep random inner-dtype choices may nest before
// only non-nested families are offered.
const DefaultMaxDepth = 4

// Option configures a Nested factory or a Strategies surface.
type Option func(*settings)

type settings struct {
	seed     uint64
	seeded   bool
	logger   *slog.Logger
	maxDepth int
	universe []*Lookup
}

func newSettings(opts []Option) settings {
	s := settings{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&s)
	}

	if !s.seeded {
		s.seed = uint64(time.Now().UnixNano())
	}

	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	return s
}

// WithSeed fixes the source of construction-time choices (random inner
// dtypes, array widths, decimal precision/scale). Without it a time-based
// seed is used and logged at debug level.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

// WithLogger routes debug records about construction-time choices to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithMaxDepth sets the nesting depth from which random inner-dtype choices
// exclude List and Array. Panics on a negative depth.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic("strategy: WithMaxDepth: depth must be non-negative")
	}

	return func(s *settings) { s.maxDepth = depth }
}

// WithUniverse sets the lookups whose families are candidates when an inner
// dtype is chosen at random. The lookups are read on every choice, so later
// registrations are seen.
func WithUniverse(lookups ...*Lookup) Option {
	return func(s *settings) { s.universe = lookups }
}
