package internal

// MatchResult carries the tokens produced by a successful rule match.
// Tokens gives positional access in input order; Fields gives access by
// name for sub-matches tagged with Named, so grammar evolution does not
// break consumers keyed by position.
type MatchResult struct {
	Tokens []string
	Fields map[string][]string
	Pos    Position
}

// NewMatchResult creates an empty result anchored at pos
func NewMatchResult(pos Position) *MatchResult {
	return &MatchResult{
		Tokens: nil,
		Fields: nil,
		Pos:    pos,
	}
}

// Token returns the i-th token, with ok=false when out of range
func (m *MatchResult) Token(i int) (string, bool) {
	if i < 0 || i >= len(m.Tokens) {
		return "", false
	}
	return m.Tokens[i], true
}

// Field returns the sub-match tokens tagged with name
func (m *MatchResult) Field(name string) ([]string, bool) {
	tokens, ok := m.Fields[name]
	return tokens, ok
}

// SetTokens replaces the positional tokens. Parse actions use this to
// rewrite a match in place before the parent rule continues.
func (m *MatchResult) SetTokens(tokens []string) {
	m.Tokens = tokens
}

// setField records a named sub-match
func (m *MatchResult) setField(name string, tokens []string) {
	if m.Fields == nil {
		m.Fields = make(map[string][]string)
	}
	m.Fields[name] = tokens
}

// merge appends a child result: tokens concatenate in input order and
// named fields propagate upward until an action consumes them
func (m *MatchResult) merge(child *MatchResult) {
	m.Tokens = append(m.Tokens, child.Tokens...)
	for name, tokens := range child.Fields {
		m.setField(name, tokens)
	}
}
