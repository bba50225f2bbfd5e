package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResult_Token(t *testing.T) {
	m := NewMatchResult(Position{Line: 1, Column: 1})
	m.SetTokens([]string{"A", "B"})

	tok, ok := m.Token(0)
	require.True(t, ok)
	assert.Equal(t, "A", tok)

	tok, ok = m.Token(1)
	require.True(t, ok)
	assert.Equal(t, "B", tok)

	_, ok = m.Token(2)
	assert.False(t, ok)

	_, ok = m.Token(-1)
	assert.False(t, ok)
}

func TestMatchResult_Field(t *testing.T) {
	m := NewMatchResult(Position{Line: 1, Column: 1})
	m.setField("start", []string{"A"})

	tokens, ok := m.Field("start")
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, tokens)

	_, ok = m.Field("end")
	assert.False(t, ok)
}

func TestMatchResult_Merge(t *testing.T) {
	parent := NewMatchResult(Position{Line: 1, Column: 1})
	parent.SetTokens([]string{"A"})

	child := NewMatchResult(Position{Offset: 1, Line: 1, Column: 2})
	child.SetTokens([]string{"B", "C"})
	child.setField("end", []string{"C"})

	parent.merge(child)

	assert.Equal(t, []string{"A", "B", "C"}, parent.Tokens)
	tokens, ok := parent.Field("end")
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, tokens)
}

func TestMatchResult_SetTokens(t *testing.T) {
	m := NewMatchResult(Position{Line: 1, Column: 1})
	m.SetTokens([]string{"A", "C"})

	m.SetTokens([]string{"A", "B", "C"})
	assert.Equal(t, []string{"A", "B", "C"}, m.Tokens)

	m.SetTokens(nil)
	assert.Empty(t, m.Tokens)
}
