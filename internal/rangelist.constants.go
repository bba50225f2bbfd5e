package internal

// RuleKind identifies the grammar rule variant
type RuleKind string

// Rule kind constants
const (
	RuleKindLiteral   RuleKind = "LITERAL"
	RuleKindOneOf     RuleKind = "ONE_OF"
	RuleKindSeq       RuleKind = "SEQ"
	RuleKindChoice    RuleKind = "CHOICE"
	RuleKindDelimited RuleKind = "DELIMITED"
	RuleKindSuppress  RuleKind = "SUPPRESS"
	RuleKindNamed     RuleKind = "NAMED"
)

// Engine error messages
const (
	ErrMsgUnexpectedChar = "unexpected character"
	ErrMsgUnexpectedEnd  = "unexpected end of input"
)

// ExpectEndOfInput is the expectation reported for trailing input
const ExpectEndOfInput = "end of input"

// Log message constants
const (
	LogMsgMatchStart = "starting match"
	LogMsgMatchEnd   = "match complete"
)

// Log field name constants
const (
	LogFieldSource = "source_length"
	LogFieldTokens = "token_count"
)
