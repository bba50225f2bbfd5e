package internal

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Rule is a grammar rule. Concrete rule types are tagged variants
// distinguished by Kind; composite rules may carry an Action that is
// applied immediately after the rule matches, before the parent rule
// continues.
type Rule interface {
	Kind() RuleKind
	match(s *Scanner) (*MatchResult, error)
}

// Action transforms a rule's match result in place. Returning an error
// aborts the parse at the rule's position.
type Action func(*MatchResult) error

// Match runs the grammar rooted at rule over source. The entire input
// must be consumed; trailing input is a ParseError.
func Match(rule Rule, source string, logger *zap.Logger) (*MatchResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgMatchStart, zap.Int(LogFieldSource, len(source)))

	s := NewScanner(source)
	m, err := rule.match(s)
	if err != nil {
		return nil, err
	}
	if !s.isAtEnd() {
		return nil, newMatchError(ErrMsgUnexpectedChar, ExpectEndOfInput, s.currentPosition())
	}

	logger.Debug(LogMsgMatchEnd, zap.Int(LogFieldTokens, len(m.Tokens)))
	return m, nil
}

// LiteralRule matches an exact string and keeps it as a single token
type LiteralRule struct {
	Text string
}

// Literal creates a rule matching the exact string text
func Literal(text string) *LiteralRule {
	return &LiteralRule{Text: text}
}

// Kind returns the rule kind
func (r *LiteralRule) Kind() RuleKind { return RuleKindLiteral }

func (r *LiteralRule) match(s *Scanner) (*MatchResult, error) {
	pos := s.currentPosition()
	if !s.matchStr(r.Text) {
		if s.isAtEnd() {
			return nil, newMatchError(ErrMsgUnexpectedEnd, fmt.Sprintf("%q", r.Text), pos)
		}
		return nil, newMatchError(ErrMsgUnexpectedChar, fmt.Sprintf("%q", r.Text), pos)
	}
	s.advanceN(len(r.Text))
	m := NewMatchResult(pos)
	m.Tokens = []string{r.Text}
	return m, nil
}

// OneOfRule matches a single character drawn from Set. Name is the
// expectation description used in errors (e.g. "letter").
type OneOfRule struct {
	Set  string
	Name string
}

// OneOf creates a rule matching one character from set
func OneOf(set, name string) *OneOfRule {
	return &OneOfRule{Set: set, Name: name}
}

// Kind returns the rule kind
func (r *OneOfRule) Kind() RuleKind { return RuleKindOneOf }

func (r *OneOfRule) match(s *Scanner) (*MatchResult, error) {
	pos := s.currentPosition()
	if s.isAtEnd() {
		return nil, newMatchError(ErrMsgUnexpectedEnd, r.Name, pos)
	}
	ch := s.peek()
	if strings.IndexByte(r.Set, ch) < 0 {
		return nil, newMatchError(ErrMsgUnexpectedChar, r.Name, pos)
	}
	s.advance()
	m := NewMatchResult(pos)
	m.Tokens = []string{string(ch)}
	return m, nil
}

// SeqRule matches each part in order and concatenates their tokens
type SeqRule struct {
	Parts  []Rule
	Action Action
}

// Seq creates a rule matching each part in order
func Seq(parts ...Rule) *SeqRule {
	return &SeqRule{Parts: parts}
}

// WithAction attaches a transform applied after the sequence matches
func (r *SeqRule) WithAction(a Action) *SeqRule {
	r.Action = a
	return r
}

// Kind returns the rule kind
func (r *SeqRule) Kind() RuleKind { return RuleKindSeq }

func (r *SeqRule) match(s *Scanner) (*MatchResult, error) {
	m := NewMatchResult(s.currentPosition())
	for _, part := range r.Parts {
		child, err := part.match(s)
		if err != nil {
			return nil, err
		}
		m.merge(child)
	}
	if err := applyAction(r.Action, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ChoiceRule tries its alternatives in listed order; the first matching
// alternative wins. Name is the expectation description for the whole
// alternation (e.g. "letter or letter-range").
type ChoiceRule struct {
	Name   string
	Alts   []Rule
	Action Action
}

// Choice creates an ordered-choice rule over the given alternatives
func Choice(name string, alts ...Rule) *ChoiceRule {
	return &ChoiceRule{Name: name, Alts: alts}
}

// WithAction attaches a transform applied after an alternative matches
func (r *ChoiceRule) WithAction(a Action) *ChoiceRule {
	r.Action = a
	return r
}

// Kind returns the rule kind
func (r *ChoiceRule) Kind() RuleKind { return RuleKindChoice }

func (r *ChoiceRule) match(s *Scanner) (*MatchResult, error) {
	pos := s.currentPosition()
	for _, alt := range r.Alts {
		mk := s.mark()
		m, err := alt.match(s)
		if err == nil {
			if actErr := applyAction(r.Action, m); actErr != nil {
				return nil, actErr
			}
			return m, nil
		}
		// Action errors are deliberate rejections, not failed
		// alternatives; they must not trigger fallback.
		if isActionError(err) {
			return nil, err
		}
		s.reset(mk)
	}
	if s.isAtEnd() {
		return nil, newMatchError(ErrMsgUnexpectedEnd, r.Name, pos)
	}
	return nil, newMatchError(ErrMsgUnexpectedChar, r.Name, pos)
}

// DelimitedRule matches Item one or more times with Sep between items.
// Separator tokens are recognized but discarded from the result. Once a
// separator has matched, the following item is required.
type DelimitedRule struct {
	Item   Rule
	Sep    Rule
	Action Action
}

// Delimited creates a separator-delimited list rule
func Delimited(item, sep Rule) *DelimitedRule {
	return &DelimitedRule{Item: item, Sep: sep}
}

// WithAction attaches a transform applied after the list matches
func (r *DelimitedRule) WithAction(a Action) *DelimitedRule {
	r.Action = a
	return r
}

// Kind returns the rule kind
func (r *DelimitedRule) Kind() RuleKind { return RuleKindDelimited }

func (r *DelimitedRule) match(s *Scanner) (*MatchResult, error) {
	m := NewMatchResult(s.currentPosition())

	first, err := r.Item.match(s)
	if err != nil {
		return nil, err
	}
	m.merge(first)

	for {
		mk := s.mark()
		if _, err := r.Sep.match(s); err != nil {
			s.reset(mk)
			break
		}
		item, err := r.Item.match(s)
		if err != nil {
			return nil, err
		}
		m.merge(item)
	}

	if err := applyAction(r.Action, m); err != nil {
		return nil, err
	}
	return m, nil
}

// SuppressRule matches its inner rule but contributes no tokens
type SuppressRule struct {
	Inner Rule
}

// Suppress creates a rule whose match is dropped from the result
func Suppress(inner Rule) *SuppressRule {
	return &SuppressRule{Inner: inner}
}

// Kind returns the rule kind
func (r *SuppressRule) Kind() RuleKind { return RuleKindSuppress }

func (r *SuppressRule) match(s *Scanner) (*MatchResult, error) {
	child, err := r.Inner.match(s)
	if err != nil {
		return nil, err
	}
	return NewMatchResult(child.Pos), nil
}

// NamedRule tags its inner rule's tokens with a field name so parent
// actions can access the sub-match by name instead of position
type NamedRule struct {
	Name  string
	Inner Rule
}

// Named creates a rule whose match is also recorded under name
func Named(name string, inner Rule) *NamedRule {
	return &NamedRule{Name: name, Inner: inner}
}

// Kind returns the rule kind
func (r *NamedRule) Kind() RuleKind { return RuleKindNamed }

func (r *NamedRule) match(s *Scanner) (*MatchResult, error) {
	child, err := r.Inner.match(s)
	if err != nil {
		return nil, err
	}
	child.setField(r.Name, child.Tokens)
	return child, nil
}

// applyAction runs an optional parse action against a match result
func applyAction(a Action, m *MatchResult) error {
	if a == nil {
		return nil
	}
	if err := a(m); err != nil {
		return &actionError{err: err}
	}
	return nil
}

// actionError wraps an error returned by a parse action so ordered
// choice can distinguish it from an ordinary failed alternative
type actionError struct {
	err error
}

func (e *actionError) Error() string { return e.err.Error() }

func (e *actionError) Unwrap() error { return e.err }

func isActionError(err error) bool {
	var ae *actionError
	return errors.As(err, &ae)
}

// ParseError is an engine-level parse failure carrying the failing
// position and an expectation description
type ParseError struct {
	Message  string
	Expected string
	Position Position
}

// newMatchError creates a ParseError at pos
func newMatchError(msg, expected string, pos Position) *ParseError {
	return &ParseError{
		Message:  msg,
		Expected: expected,
		Position: pos,
	}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s at %s: expected %s", e.Message, e.Position, e.Expected)
	}
	return e.Message + " at " + e.Position.String()
}
