/*
File    : glox/scanner/scanner_test.go
Package : scanner
*/
package scanner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glox-lang/glox/diagnostics"
	"github.com/glox-lang/glox/token"
)

// expectedToken trims the scanner's full Token down to just the fields a
// test cares about, so cases don't need to spell out lexemes that are
// identical to their type.
type expectedToken struct {
	Type    token.Type
	Literal interface{}
}

type scanCase struct {
	Name     string
	Input    string
	Expected []expectedToken
}

func TestScanTokens(t *testing.T) {
	tests := []scanCase{
		{
			Name:  "single character tokens",
			Input: `(){},.;`,
			Expected: []expectedToken{
				{token.LEFT_PAREN, nil}, {token.RIGHT_PAREN, nil},
				{token.LEFT_BRACE, nil}, {token.RIGHT_BRACE, nil},
				{token.COMMA, nil}, {token.DOT, nil}, {token.SEMICOLON, nil},
				{token.EOF, nil},
			},
		},
		{
			Name:  "two-character operators prefer the longer match",
			Input: `!= == <= >= += -= *= /= ++ --`,
			Expected: []expectedToken{
				{token.BANG_EQUAL, nil}, {token.EQUAL_EQUAL, nil},
				{token.LESS_EQUAL, nil}, {token.GREATER_EQUAL, nil},
				{token.PLUS_EQUAL, nil}, {token.MINUS_EQUAL, nil},
				{token.STAR_EQUAL, nil}, {token.SLASH_EQUAL, nil},
				{token.PLUS_PLUS, nil}, {token.MINUS_MINUS, nil},
				{token.EOF, nil},
			},
		},
		{
			Name:  "line comment consumes to end of line",
			Input: "1 // this is a comment\n2",
			Expected: []expectedToken{
				{token.NUMBER, 1.0}, {token.NUMBER, 2.0}, {token.EOF, nil},
			},
		},
		{
			Name:  "number literal keeps fractional part",
			Input: `3.5`,
			Expected: []expectedToken{
				{token.NUMBER, 3.5}, {token.EOF, nil},
			},
		},
		{
			Name:  "string literal",
			Input: `"hello"`,
			Expected: []expectedToken{
				{token.STRING, "hello"}, {token.EOF, nil},
			},
		},
		{
			Name:  "keywords vs identifiers",
			Input: `var x = true and false`,
			Expected: []expectedToken{
				{token.VAR, nil}, {token.IDENTIFIER, nil}, {token.EQUAL, nil},
				{token.TRUE, nil}, {token.AND, nil}, {token.FALSE, nil},
				{token.EOF, nil},
			},
		},
		{
			Name:  "ternary and backslash tokens",
			Input: `a ? b : c \`,
			Expected: []expectedToken{
				{token.IDENTIFIER, nil}, {token.QUESTION, nil}, {token.IDENTIFIER, nil},
				{token.COLON, nil}, {token.IDENTIFIER, nil}, {token.BACKSLASH, nil},
				{token.EOF, nil},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := diagnostics.New(&buf, false)
			got := New(tc.Input, sink).ScanTokens()

			assert.Equal(t, len(tc.Expected), len(got))
			for i, want := range tc.Expected {
				assert.Equal(t, want.Type, got[i].Type)
				assert.Equal(t, want.Literal, got[i].Literal)
			}
			assert.False(t, sink.HadError())
		})
	}
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.New(&buf, false)
	New(`"never closed`, sink).ScanTokens()
	assert.True(t, sink.HadError())
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.New(&buf, false)
	New("@", sink).ScanTokens()
	assert.True(t, sink.HadError())
}

func TestScanTokens_LineTracking(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.New(&buf, false)
	got := New("1\n2\n3", sink).ScanTokens()

	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 2, got[1].Line)
	assert.Equal(t, 3, got[2].Line)
}
