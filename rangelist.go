// Package rangelist parses comma-delimited letter-range lists and
// expands ranges into individual letters.
//
// An input like "A-C,X,M-P,Z" is a list of items, where each item is
// either a single letter or an inclusive range of two letters joined
// by '-'. Parsing produces the flat ordered sequence of letters with
// every range expanded in place:
//
//	letters, err := rangelist.Parse("A-C,X,M-P,Z")
//	// letters: ["A" "B" "C" "X" "M" "N" "O" "P" "Z"]
//
// # Basic Usage
//
// Create a parser and parse or expand inputs:
//
//	parser := rangelist.MustNew()
//	letters, err := parser.Parse("A-C,Z")
//	joined, err := parser.Expand("A-C,Z") // "A,B,C,Z"
//
// The package-level Parse, MustParse and Expand functions use a shared
// default parser with the uppercase A-Z alphabet and ',' delimiter.
//
// # Grammar
//
// The grammar is a delimited list of items with ordered-choice
// alternation; a range is always tried before a plain letter:
//
//	letter            := one of 'A'..'Z'
//	letter_range      := letter '-' letter
//	letter_range_item := letter_range | letter
//	letter_range_list := letter_range_item (',' letter_range_item)*
//
// Range expansion happens at match time through a parse action, so the
// parser's result is already fully expanded.
//
// # Error Handling
//
// Malformed input surfaces as a structured error with the failing
// position and an expectation description:
//
//	_, err := rangelist.Parse("A,,B")
//	// err metadata: line 1, column 3, expected "letter or letter-range"
//
// # Configuration
//
// Customize a parser with functional options:
//
//	parser, err := rangelist.New(
//	    rangelist.WithAlphabet("abcdefghijklmnopqrstuvwxyz"),
//	    rangelist.WithDelimiter(';'),
//	    rangelist.WithStrictRanges(),
//	    rangelist.WithLogger(logger),
//	)
//
// By default a reversed range such as "X-M" expands to an empty
// sub-sequence (inclusive-slice semantics); WithStrictRanges turns it
// into a hard parse error.
package rangelist
