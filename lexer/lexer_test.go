/*
File    : cou/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			// Two-character operators are matched before single-character ones
			Input: ` <= >= == != && || %/ < > = ! % / `,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(GE_OP, ">="),
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(AND_OP, "&&"),
				NewToken(OR_OP, "||"),
				NewToken(IDIV_OP, "%/"),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NOT_OP, "!"),
				NewToken(MOD_OP, "%"),
				NewToken(DIV_OP, "/"),
			},
		},
		{
			Input: `num bool str nil arr proc return as if elif else say true false nothing`,
			ExpectedTokens: []Token{
				NewToken(NUM_KEY, "num"),
				NewToken(BOOL_KEY, "bool"),
				NewToken(STR_KEY, "str"),
				NewToken(NIL_KEY, "nil"),
				NewToken(ARR_KEY, "arr"),
				NewToken(PROC_KEY, "proc"),
				NewToken(RETURN_KEY, "return"),
				NewToken(AS_KEY, "as"),
				NewToken(IF_KEY, "if"),
				NewToken(ELIF_KEY, "elif"),
				NewToken(ELSE_KEY, "else"),
				NewToken(SAY_KEY, "say"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(NOTHING_KEY, "nothing"),
			},
		},
		{
			// Number literals: integer and real share one token type
			Input: `1 1.23 12. 0 120`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(NUMBER_LIT, "1.23"),
				NewToken(NUMBER_LIT, "12."),
				NewToken(NUMBER_LIT, "0"),
				NewToken(NUMBER_LIT, "120"),
			},
		},
		{
			// Comments run to end of line
			Input: "a # the rest is ignored + - *\nb",
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(IDENTIFIER_ID, "b"),
			},
		},
		{
			Input: `'This is a long string  ' nowAnIdentifier_234 '12'`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		// Escape sequences in string literals
		{
			Input: `'hello\nworld'`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "hello\nworld"),
			},
		},
		{
			Input: `'tab\there'`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "tab\there"),
			},
		},
		{
			Input: `'escaped\\backslash'`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "escaped\\backslash"),
			},
		},
		{
			Input: `'escaped\'quote'`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "escaped'quote"),
			},
		},
		{
			Input: `'hex\x41\x62'`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "hexAb"),
			},
		},
		{
			Input: `'multiple\n\t\rescapes'`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "multiple\n\t\rescapes"),
			},
		},
		{
			// A full statement
			Input: `a: num = 12 %/ 5;`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(COLON_DELIM, ":"),
				NewToken(NUM_KEY, "num"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "12"),
				NewToken(IDIV_OP, "%/"),
				NewToken(NUMBER_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)

		gotTokens := lex.ConsumeTokens()

		// must: length match
		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		// must: token to token match
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}

}

// TestNewLexer_Positions verifies that every token carries a 1-based
// position and that positions are monotonically non-decreasing through
// the stream, across lines and comments.
func TestNewLexer_Positions(t *testing.T) {
	src := "a: num = 1;\n# comment line\nbb = a + 2;"
	lex := NewLexer(src)

	tokens := lex.ConsumeTokens()
	assert.NotEmpty(t, tokens)

	prevLine, prevColumn := 1, 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Line, 1)
		assert.GreaterOrEqual(t, tok.Column, 1)
		if tok.Line == prevLine {
			assert.Greater(t, tok.Column, prevColumn)
		} else {
			assert.Greater(t, tok.Line, prevLine)
		}
		prevLine, prevColumn = tok.Line, tok.Column
	}

	// The comment line is skipped entirely
	last := tokens[len(tokens)-1]
	assert.Equal(t, 3, last.Line)
	assert.Equal(t, SEMICOLON_DELIM, last.Type)
}

// TestNewLexer_EOF verifies that end of input yields EOF tokens repeatedly.
func TestNewLexer_EOF(t *testing.T) {
	lex := NewLexer("a")

	assert.Equal(t, IDENTIFIER_ID, lex.NextToken().Type)
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}

// TestNewLexer_Invalid verifies lexical error reporting: invalid characters,
// lone '&'/'|', unterminated strings and bad escapes all produce INVALID
// tokens carrying a message and the offending position.
func TestNewLexer_Invalid(t *testing.T) {
	tests := []struct {
		Input   string
		Message string
	}{
		{`a @ b`, "invalid character '@'"},
		{`a & b`, "invalid character '&'"},
		{`a | b`, "invalid character '|'"},
		{`'not closed`, "string literal not terminated"},
		{`'bad \q escape'`, `invalid escape sequence '\q'`},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)

		var got Token
		for {
			got = lex.NextToken()
			if got.Type == INVALID_TYPE || got.Type == EOF_TYPE {
				break
			}
		}

		assert.Equal(t, INVALID_TYPE, got.Type)
		assert.Equal(t, test.Message, got.Literal)
	}
}

// TestNewLexer_PeekChar verifies the destructive one-character lookahead:
// it returns the next non-whitespace, non-comment character and leaves the
// cursor there, so the next token starts at that character.
func TestNewLexer_PeekChar(t *testing.T) {
	lex := NewLexer("abc   # comment\n  : num")

	assert.Equal(t, IDENTIFIER_ID, lex.NextToken().Type)
	assert.Equal(t, byte(':'), lex.PeekChar())

	tok := lex.NextToken()
	assert.Equal(t, COLON_DELIM, tok.Type)
	assert.Equal(t, NUM_KEY, lex.NextToken().Type)
}

// TestToken_String verifies the debug form of a token.
func TestToken_String(t *testing.T) {
	tok := NewTokenWithMetadata(IDENTIFIER_ID, "abc", 3, 7)
	assert.Equal(t, "Token<Identifier,abc,3,7>", tok.String())
	assert.Equal(t, ", <line:3,col:7>", tok.Position())
}
