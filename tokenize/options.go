package tokenize

// Default scanner configuration values.
const (
	defaultMaxSegments    = 100000 // upper bound on segments per interchange
	defaultMaxElementSize = 65536  // upper bound on a single element's byte length
)

// config holds the tokenizer's tunables.
type config struct {
	allowEmptySegments bool
	maxSegments        int
	maxElementSize     int
	delimiters         *[4]rune // nil means detect from ISA
}

func defaultConfig() config {
	return config{
		allowEmptySegments: false,
		maxSegments:        defaultMaxSegments,
		maxElementSize:     defaultMaxElementSize,
	}
}

// Option configures a Scanner.
type Option func(*config)

// WithAllowEmptySegments permits runs of two consecutive segment
// terminators (an empty segment) to be silently skipped rather than
// reported as a TokenError. Some trading-partner implementations emit a
// trailing terminator before the interchange's final newline; this option
// tolerates that without weakening validation of genuinely malformed input.
func WithAllowEmptySegments(allow bool) Option {
	return func(c *config) { c.allowEmptySegments = allow }
}

// WithMaxSegments bounds the number of segments the scanner will read
// before failing with a TokenError, guarding against unbounded input.
func WithMaxSegments(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.maxSegments = limit
		}
	}
}

// WithMaxElementSize bounds the byte length of any single element.
func WithMaxElementSize(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.maxElementSize = limit
		}
	}
}

// WithDelimiters supplies an explicit delimiter set instead of detecting
// one from the leading ISA segment. Useful for re-tokenizing a fragment
// that does not begin with ISA (e.g. a single transaction set extracted
// from a larger interchange for testing).
func WithDelimiters(element, repetition, component, segment rune) Option {
	return func(c *config) {
		d := [4]rune{element, repetition, component, segment}
		c.delimiters = &d
	}
}
