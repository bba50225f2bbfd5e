package rangelist

// DefaultAlphabet is the ordered alphabet used for range expansion
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultDelimiter is the list item separator
const DefaultDelimiter = byte(',')

// RangeSeparator joins the two endpoints of a letter range
const RangeSeparator = byte('-')

// Named match fields for range endpoints
const (
	FieldStart = "start"
	FieldEnd   = "end"
)

// Expectation descriptions surfaced in parse errors
const (
	ExpectLetter = "letter"
	ExpectItem   = "letter or letter-range"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgParseFailed      = "range list parsing failed"
	ErrMsgEmptyInput       = "input cannot be empty"
	ErrMsgReversedRange    = "reversed range"
	ErrMsgInvalidAlphabet  = "invalid alphabet"
	ErrMsgInvalidDelimiter = "invalid delimiter"
)

// Configuration error reasons
const (
	ReasonAlphabetEmpty     = "alphabet cannot be empty"
	ReasonAlphabetNonASCII  = "alphabet must contain single-byte characters only"
	ReasonAlphabetDuplicate = "alphabet characters must be unique"
	ReasonAlphabetDelimiter = "alphabet cannot contain the delimiter"
	ReasonAlphabetRangeSep  = "alphabet cannot contain the range separator"
	ReasonDelimiterRangeSep = "delimiter cannot be the range separator"
)

// Error code constants for categorization
const (
	ErrCodeParse  = "RANGELIST_PARSE"
	ErrCodeConfig = "RANGELIST_CONFIG"
)

// Metadata keys for error context
const (
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyOffset    = "offset"
	MetaKeyExpected  = "expected"
	MetaKeyStart     = "start"
	MetaKeyEnd       = "end"
	MetaKeyAlphabet  = "alphabet"
	MetaKeyDelimiter = "delimiter"
	MetaKeyReason    = "reason"
)

// Log message constants
const (
	LogMsgParserCreated = "parser created"
	LogMsgParseStart    = "starting parse"
	LogMsgParseEnd      = "parse complete"
)

// Log field name constants
const (
	LogFieldSource   = "source_length"
	LogFieldTokens   = "token_count"
	LogFieldAlphabet = "alphabet_length"
	LogFieldStrict   = "strict"
)
