// Package render converts a parsed x12.Interchange back to its wire-format
// byte representation. It mirrors the teacher's encode package: a
// functional-options constructor, a buffered Render entry point, and a
// context-aware streaming RenderToWriter for large interchanges.
package render

// Default renderer settings.
const (
	// DefaultPretty controls whether a readability newline follows every
	// segment terminator. Off by default, matching the teacher's encoder
	// defaulting to the bare HL7 "\r" with no extra formatting.
	DefaultPretty = false
)

type config struct {
	pretty                  bool
	includeTrailingElements bool
}

func defaultConfig() config {
	return config{
		pretty:                  DefaultPretty,
		includeTrailingElements: false,
	}
}

// Option is a functional option for configuring a Renderer.
type Option func(*config)

// WithPretty appends a newline after every segment terminator, for
// human-readable output. Interchanges rendered this way are still valid
// X12 — the newline falls between segments, never inside one — but are
// not byte-identical to a minimally-rendered interchange.
func WithPretty(pretty bool) Option {
	return func(c *config) { c.pretty = pretty }
}

// WithTrailingElements controls whether trailing empty elements are kept.
// When false (default), trailing empty elements are omitted, matching the
// common wire convention and the teacher's own trailingDelimiters default.
// When true, every declared element position is rendered even if empty,
// which some strict trading-partner validators expect.
func WithTrailingElements(include bool) Option {
	return func(c *config) { c.includeTrailingElements = include }
}
