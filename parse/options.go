package parse

import (
	"github.com/edihub/x12/ack"
	"github.com/edihub/x12/tokenize"
	"github.com/edihub/x12/validate"
)

// config holds the parser configuration, mirroring the teacher's
// parserConfig: a single struct of knobs set once via functional options
// and read throughout a parse.
type config struct {
	tokenizeOpts []tokenize.Option
	validator    *validate.Validator
	ackBuilder   *ack.Builder
	generateAcks bool
}

func defaultConfig() config {
	return config{
		validator:  validate.Default(),
		ackBuilder: ack.NewBuilder(),
	}
}

// Option is a functional option for configuring a Parser.
type Option func(*config)

// WithTokenizeOptions passes options through to the underlying
// tokenize.Scanner, e.g. WithTokenizeOptions(tokenize.WithMaxSegments(5000)).
func WithTokenizeOptions(opts ...tokenize.Option) Option {
	return func(c *config) {
		c.tokenizeOpts = append(c.tokenizeOpts, opts...)
	}
}

// WithValidator overrides the semantic validator run against every
// transaction set. Defaults to validate.Default().
func WithValidator(v *validate.Validator) Option {
	return func(c *config) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithAckBuilder overrides the 999 builder used when acknowledgments are
// enabled. Defaults to ack.NewBuilder().
func WithAckBuilder(b *ack.Builder) Option {
	return func(c *config) {
		if b != nil {
			c.ackBuilder = b
		}
	}
}

// WithAcknowledgments enables building a 999 Interchange for every
// transaction set parsed, available as TransactionResult.Ack. Disabled by
// default: most callers parse and inspect diagnostics directly rather than
// wanting a 999 on every call.
func WithAcknowledgments(enabled bool) Option {
	return func(c *config) {
		c.generateAcks = enabled
	}
}
