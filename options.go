package lexlink

import (
	"github.com/lexlink/lexlink/connector"
)

type options struct {
	expected  int
	logger    *Logger
	parseOpts *connector.Options
}

// Option configures Registry construction.
type Option func(*options)

// WithExpectedConnectors pre-sizes the descriptor table for the expected
// number of distinct connector types in the dictionary. An accurate value
// avoids table growth during load entirely; a wrong one only costs
// rehashing.
func WithExpectedConnectors(n int) Option {
	return func(o *options) {
		o.expected = n
	}
}

// WithLogger sets the logger for registry lifecycle events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithParseOptions sets the parse options handed to every parse context the
// registry creates: the global short length for connectors whose
// descriptors store no limit, and the all-short clip.
//
// If nil is passed, connector.DefaultOptions() is used.
func WithParseOptions(po *connector.Options) Option {
	return func(o *options) {
		if po == nil {
			po = connector.DefaultOptions()
		}
		o.parseOpts = po
	}
}
