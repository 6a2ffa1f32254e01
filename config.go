package mathparse

import "github.com/kolkov/mathparse/internal/parser"

// DefaultMaxDepth is the nesting limit used when Config.MaxDepth is zero.
const DefaultMaxDepth = parser.DefaultMaxDepth

// Config holds configuration options for parsing.
type Config struct {
	// Filename is recorded in node positions and error messages (optional).
	Filename string

	// MaxDepth limits how deeply expressions may nest through parentheses,
	// call arguments and ^ chains (default: DefaultMaxDepth).
	// Deeper input fails with a ParseError.
	MaxDepth int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
}

// parserConfig copies config, which may be nil, with defaults applied.
// The caller's Config is never modified.
func parserConfig(config *Config) parser.Config {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()
	return parser.Config{
		Filename: cfg.Filename,
		MaxDepth: cfg.MaxDepth,
	}
}
