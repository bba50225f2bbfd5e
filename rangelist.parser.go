package rangelist

import (
	"strings"

	"go.uber.org/zap"

	"github.com/itsatony/go-rangelist/internal"
)

// Parser parses delimited letter-range lists into individual letters.
// A Parser is immutable after construction and safe for concurrent use:
// each Parse call is an independent, stateless computation over its
// input.
type Parser struct {
	config  *parserConfig
	grammar internal.Rule
	logger  *zap.Logger
}

// New creates a new Parser with the given options.
func New(opts ...Option) (*Parser, error) {
	config := defaultParserConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Parser{
		config: config,
		logger: logger,
	}
	p.grammar = p.buildGrammar()

	logger.Debug(LogMsgParserCreated,
		zap.Int(LogFieldAlphabet, len(config.alphabet)),
		zap.Bool(LogFieldStrict, config.strict))
	return p, nil
}

// MustNew creates a new Parser and panics if there's an error.
func MustNew(opts ...Option) *Parser {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses a letter-range list and returns the flat ordered
// sequence of individual letters, with ranges expanded in place.
// Parsing either fully succeeds over the entire input or fails at the
// first irreconcilable token with a structured parse error carrying the
// failing position and an expectation description.
func (p *Parser) Parse(input string) ([]string, error) {
	p.logger.Debug(LogMsgParseStart, zap.Int(LogFieldSource, len(input)))

	if input == "" {
		return nil, NewEmptyInputError()
	}

	m, err := internal.Match(p.grammar, input, p.logger)
	if err != nil {
		return nil, wrapEngineError(err)
	}

	p.logger.Debug(LogMsgParseEnd, zap.Int(LogFieldTokens, len(m.Tokens)))
	return m.Tokens, nil
}

// Expand is a convenience method that parses the input and joins the
// expanded letters with the configured delimiter.
func (p *Parser) Expand(input string) (string, error) {
	letters, err := p.Parse(input)
	if err != nil {
		return "", err
	}
	return strings.Join(letters, string(p.config.delimiter)), nil
}

// Validate parses the input and discards the result.
func (p *Parser) Validate(input string) error {
	_, err := p.Parse(input)
	return err
}

// defaultParser backs the package-level convenience functions. Default
// options cannot fail validation.
var defaultParser = MustNew()

// Parse parses input with the default parser (uppercase A-Z alphabet,
// ',' delimiter, permissive ranges).
func Parse(input string) ([]string, error) {
	return defaultParser.Parse(input)
}

// MustParse parses input with the default parser and panics on error.
func MustParse(input string) []string {
	letters, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return letters
}

// Expand parses input with the default parser and joins the result
// with the default delimiter.
func Expand(input string) (string, error) {
	return defaultParser.Expand(input)
}
