package rangelist

import (
	"strings"

	"github.com/itsatony/go-rangelist/internal"
)

// buildGrammar assembles the letter-range-list grammar:
//
//	letter            := one of the configured alphabet
//	letter_range      := letter '-' letter
//	letter_range_item := letter_range | letter
//	letter_range_list := letter_range_item (delimiter letter_range_item)*
//
// letter_range_item is an ordered choice with letter_range first, so
// "A-C" is never read as "A" followed by a dangling "-C". Ranges are
// rewritten into individual letters by a parse action at match time;
// the final result needs no second traversal.
func (p *Parser) buildGrammar() internal.Rule {
	letter := internal.OneOf(p.config.alphabet, ExpectLetter)
	letterRange := internal.Seq(
		internal.Named(FieldStart, letter),
		internal.Suppress(internal.Literal(string(RangeSeparator))),
		internal.Named(FieldEnd, letter),
	).WithAction(p.expandRange)
	item := internal.Choice(ExpectItem, letterRange, letter)
	return internal.Delimited(item, internal.Literal(string(p.config.delimiter)))
}

// expandRange replaces a matched letter_range with the inclusive
// sub-sequence of alphabet letters from the start endpoint's index to
// the end endpoint's index. A reversed range yields an empty
// sub-sequence (inclusive-slice semantics) unless strict ranges are
// enabled, in which case it is a hard error.
func (p *Parser) expandRange(m *internal.MatchResult) error {
	start, _ := m.Field(FieldStart)
	end, _ := m.Field(FieldEnd)

	startIdx := strings.IndexByte(p.config.alphabet, start[0][0])
	endIdx := strings.IndexByte(p.config.alphabet, end[0][0])

	if startIdx > endIdx {
		if p.config.strict {
			pos := Position{Offset: m.Pos.Offset, Line: m.Pos.Line, Column: m.Pos.Column}
			return NewReversedRangeError(start[0], end[0], pos)
		}
		m.SetTokens(nil)
		return nil
	}

	letters := make([]string, 0, endIdx-startIdx+1)
	for i := startIdx; i <= endIdx; i++ {
		letters = append(letters, string(p.config.alphabet[i]))
	}
	m.SetTokens(letters)
	return nil
}
