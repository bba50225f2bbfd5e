package rangelist

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-rangelist/internal"
)

// Position represents a location in the parsed input
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// NewParseError creates a parse error with position context
func NewParseError(msg string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewEmptyInputError creates the error for empty input; the grammar
// requires at least one list item
func NewEmptyInputError() error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgEmptyInput).
		WithMetadata(MetaKeyLine, "1").
		WithMetadata(MetaKeyColumn, "1").
		WithMetadata(MetaKeyOffset, "0").
		WithMetadata(MetaKeyExpected, ExpectItem)
}

// NewReversedRangeError creates the strict-mode error for a range whose
// start endpoint follows its end endpoint in the alphabet
func NewReversedRangeError(start, end string, pos Position) error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgReversedRange).
		WithMetadata(MetaKeyStart, start).
		WithMetadata(MetaKeyEnd, end).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewInvalidAlphabetError creates a configuration error for a bad alphabet
func NewInvalidAlphabetError(alphabet string, reason string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidAlphabet).
		WithMetadata(MetaKeyAlphabet, alphabet).
		WithMetadata(MetaKeyReason, reason)
}

// NewInvalidDelimiterError creates a configuration error for a bad delimiter
func NewInvalidDelimiterError(delimiter byte, reason string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidDelimiter).
		WithMetadata(MetaKeyDelimiter, string(delimiter)).
		WithMetadata(MetaKeyReason, reason)
}

// wrapEngineError converts engine-level failures into structured parse
// errors with position and expectation metadata. Errors produced by
// parse actions are already structured and pass through unchanged.
func wrapEngineError(err error) error {
	var custom *cuserr.CustomError
	if errors.As(err, &custom) {
		return custom
	}

	var engineErr *internal.ParseError
	if errors.As(err, &engineErr) {
		wrapped := cuserr.WrapStdError(err, ErrCodeParse, ErrMsgParseFailed).
			WithMetadata(MetaKeyLine, strconv.Itoa(engineErr.Position.Line)).
			WithMetadata(MetaKeyColumn, strconv.Itoa(engineErr.Position.Column)).
			WithMetadata(MetaKeyOffset, strconv.Itoa(engineErr.Position.Offset))
		if engineErr.Expected != "" {
			wrapped = wrapped.WithMetadata(MetaKeyExpected, engineErr.Expected)
		}
		return wrapped
	}

	return cuserr.WrapStdError(err, ErrCodeParse, ErrMsgParseFailed)
}
