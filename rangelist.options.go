package rangelist

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a Parser.
type Option func(*parserConfig)

// parserConfig holds the internal configuration for a Parser.
type parserConfig struct {
	alphabet  string
	delimiter byte
	strict    bool
	logger    *zap.Logger
}

// defaultParserConfig returns the default parser configuration.
func defaultParserConfig() *parserConfig {
	return &parserConfig{
		alphabet:  DefaultAlphabet,
		delimiter: DefaultDelimiter,
		strict:    false,
		logger:    nil,
	}
}

// WithAlphabet sets the ordered alphabet that letters are drawn from
// and that range expansion indexes into.
// Default: "A".."Z"
func WithAlphabet(alphabet string) Option {
	return func(c *parserConfig) {
		c.alphabet = alphabet
	}
}

// WithDelimiter sets the list item separator.
// Default: ','
func WithDelimiter(delimiter byte) Option {
	return func(c *parserConfig) {
		c.delimiter = delimiter
	}
}

// WithStrictRanges makes reversed ranges (start after end in the
// alphabet) a hard parse error instead of an empty expansion.
// Default: permissive
func WithStrictRanges() Option {
	return func(c *parserConfig) {
		c.strict = true
	}
}

// WithLogger sets the logger for the parser.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *parserConfig) {
		c.logger = logger
	}
}

// validateConfig rejects alphabets and delimiters the grammar cannot
// express unambiguously
func validateConfig(c *parserConfig) error {
	if c.alphabet == "" {
		return NewInvalidAlphabetError(c.alphabet, ReasonAlphabetEmpty)
	}
	if c.delimiter == RangeSeparator {
		return NewInvalidDelimiterError(c.delimiter, ReasonDelimiterRangeSep)
	}

	seen := make(map[byte]bool, len(c.alphabet))
	for i := 0; i < len(c.alphabet); i++ {
		ch := c.alphabet[i]
		if ch >= utf8.RuneSelf {
			return NewInvalidAlphabetError(c.alphabet, ReasonAlphabetNonASCII)
		}
		if seen[ch] {
			return NewInvalidAlphabetError(c.alphabet, ReasonAlphabetDuplicate)
		}
		seen[ch] = true
		if ch == c.delimiter {
			return NewInvalidAlphabetError(c.alphabet, ReasonAlphabetDelimiter)
		}
		if ch == RangeSeparator {
			return NewInvalidAlphabetError(c.alphabet, ReasonAlphabetRangeSep)
		}
	}
	return nil
}
