package rangelist

import (
	"errors"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"mixed ranges and letters", "A-C,X,M-P,Z", []string{"A", "B", "C", "X", "M", "N", "O", "P", "Z"}},
		{"single letter", "Z", []string{"Z"}},
		{"single range", "A-C", []string{"A", "B", "C"}},
		{"degenerate range", "A-A", []string{"A"}},
		{"degenerate range mid-alphabet", "J-J", []string{"J"}},
		{"full alphabet", "A-Z", strings.Split(DefaultAlphabet, "")},
		{"adjacent single letters", "A,B,C", []string{"A", "B", "C"}},
		{"range at end", "X,Y-Z", []string{"X", "Y", "Z"}},
	}

	parser := MustNew()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			letters, err := parser.Parse(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, letters)
		})
	}
}

func TestParser_Parse_ExpansionLengthProperty(t *testing.T) {
	// The result length equals the sum of each item's expansion length:
	// 1 for a plain letter, end_index - start_index + 1 for a range.
	tests := []struct {
		input  string
		length int
	}{
		{"A-C,X,M-P,Z", 3 + 1 + 4 + 1},
		{"A-Z", 26},
		{"Q", 1},
		{"B-D,F-H", 3 + 3},
	}

	parser := MustNew()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			letters, err := parser.Parse(tt.input)

			require.NoError(t, err)
			assert.Len(t, letters, tt.length)
		})
	}
}

func TestParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		column string
	}{
		{"empty input", "", "1"},
		{"incomplete range", "A-", "2"},
		{"empty item between delimiters", "A,,B", "3"},
		{"missing delimiter", "AB", "2"},
		{"lowercase letter", "a", "1"},
		{"leading delimiter", ",A", "1"},
		{"trailing delimiter", "A,", "3"},
		{"dangling second range mark", "A-C-E", "4"},
	}

	parser := MustNew()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)

			require.Error(t, err)
			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))

			column, ok := customErr.GetMetadata(MetaKeyColumn)
			require.True(t, ok)
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestParser_Parse_ErrorExpectation(t *testing.T) {
	parser := MustNew()
	_, err := parser.Parse("A,,B")

	require.Error(t, err)
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	expected, ok := customErr.GetMetadata(MetaKeyExpected)
	require.True(t, ok)
	assert.Equal(t, ExpectItem, expected)
}

func TestParser_Parse_ReversedRangePermissive(t *testing.T) {
	parser := MustNew()

	// A reversed range contributes an empty sub-sequence by default
	letters, err := parser.Parse("X-M")
	require.NoError(t, err)
	assert.Empty(t, letters)

	letters, err = parser.Parse("X-M,A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, letters)
}

func TestParser_Parse_ReversedRangeStrict(t *testing.T) {
	parser := MustNew(WithStrictRanges())
	_, err := parser.Parse("X-M")

	require.Error(t, err)
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	start, ok := customErr.GetMetadata(MetaKeyStart)
	require.True(t, ok)
	assert.Equal(t, "X", start)

	end, ok := customErr.GetMetadata(MetaKeyEnd)
	require.True(t, ok)
	assert.Equal(t, "M", end)
}

func TestParser_Parse_StrictAcceptsOrderedRanges(t *testing.T) {
	parser := MustNew(WithStrictRanges())

	letters, err := parser.Parse("A-C,J-J,Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "J", "Z"}, letters)
}

func TestParser_Parse_Idempotence(t *testing.T) {
	// Re-parsing an already-expanded list is a no-op expansion
	parser := MustNew()

	expanded, err := parser.Expand("A-C,X,M-P,Z")
	require.NoError(t, err)

	again, err := parser.Parse(expanded)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "X", "M", "N", "O", "P", "Z"}, again)
}

func TestParser_Expand(t *testing.T) {
	parser := MustNew()

	joined, err := parser.Expand("A-C,X,M-P,Z")
	require.NoError(t, err)
	assert.Equal(t, "A,B,C,X,M,N,O,P,Z", joined)
}

func TestParser_Expand_Error(t *testing.T) {
	parser := MustNew()

	joined, err := parser.Expand("A-")
	require.Error(t, err)
	assert.Empty(t, joined)
}

func TestParser_Validate(t *testing.T) {
	parser := MustNew()

	assert.NoError(t, parser.Validate("A-C,Z"))
	assert.Error(t, parser.Validate("A,,B"))
}

func TestParser_CustomAlphabet(t *testing.T) {
	parser := MustNew(WithAlphabet("abcdefghijklmnopqrstuvwxyz"))

	letters, err := parser.Parse("a-c,z")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "z"}, letters)

	// Uppercase is outside the configured alphabet
	_, err = parser.Parse("A-C")
	assert.Error(t, err)
}

func TestParser_CustomDelimiter(t *testing.T) {
	parser := MustNew(WithDelimiter(';'))

	letters, err := parser.Parse("A-C;Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Z"}, letters)

	joined, err := parser.Expand("A-C;Z")
	require.NoError(t, err)
	assert.Equal(t, "A;B;C;Z", joined)
}

func TestParse_PackageLevel(t *testing.T) {
	letters, err := Parse("A-C,X,M-P,Z")

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "X", "M", "N", "O", "P", "Z"}, letters)
}

func TestExpand_PackageLevel(t *testing.T) {
	joined, err := Expand("M-P")

	require.NoError(t, err)
	assert.Equal(t, "M,N,O,P", joined)
}

func TestMustParse(t *testing.T) {
	letters := MustParse("A-C")
	assert.Equal(t, []string{"A", "B", "C"}, letters)
}

func TestMustParse_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("A-")
	})
}

func TestParser_ConcurrentUse(t *testing.T) {
	parser := MustNew()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				letters, err := parser.Parse("A-C,X,M-P,Z")
				assert.NoError(t, err)
				assert.Len(t, letters, 9)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
