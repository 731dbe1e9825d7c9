package pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer([]byte(src))
	var out []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok.Kind == TokEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexerBasicTokens(t *testing.T) {
	toks := tokens(t, "/Name 42 -3.5 (lit) <48656C6C6F> [ ] << >> true false null")
	require.Len(t, toks, 12)
	require.Equal(t, TokName, toks[0].Kind)
	require.Equal(t, "Name", toks[0].Text)
	require.Equal(t, TokNumber, toks[1].Kind)
	require.Equal(t, 42.0, toks[1].Num)
	require.Equal(t, TokNumber, toks[2].Kind)
	require.Equal(t, -3.5, toks[2].Num)
	require.Equal(t, TokString, toks[3].Kind)
	require.Equal(t, "lit", toks[3].Text)
	require.Equal(t, TokString, toks[4].Kind)
	require.Equal(t, "Hello", toks[4].Text)
	require.Equal(t, TokArrayStart, toks[5].Kind)
	require.Equal(t, TokArrayEnd, toks[6].Kind)
	require.Equal(t, TokDictStart, toks[7].Kind)
	require.Equal(t, TokDictEnd, toks[8].Kind)
	require.Equal(t, TokKeyword, toks[9].Kind)
	require.Equal(t, "true", toks[9].Text)
}

func TestLexerNameHexEscape(t *testing.T) {
	toks := tokens(t, "/A#20B")
	require.Len(t, toks, 1)
	require.Equal(t, "A B", toks[0].Text)
}

func TestLexerLiteralStringEscapesAndNesting(t *testing.T) {
	toks := tokens(t, `(a\n(nested)\051\)b)`)
	require.Len(t, toks, 1)
	require.Equal(t, "a\n(nested))b", toks[0].Text)
}

func TestLexerHexStringOddNibble(t *testing.T) {
	toks := tokens(t, "<48656C6C6F0>")
	require.Len(t, toks, 1)
	want := append([]byte("Hello"), 0x00)
	require.Equal(t, string(want), toks[0].Text)
}

func TestLexerCommentsSkipped(t *testing.T) {
	toks := tokens(t, "1 % a comment\n2")
	require.Len(t, toks, 2)
	require.Equal(t, 1.0, toks[0].Num)
	require.Equal(t, 2.0, toks[1].Num)
}

func TestLexerUnrecognizedByteYieldsNullAndContinues(t *testing.T) {
	toks := tokens(t, "1 { 2")
	require.Len(t, toks, 3)
	require.Equal(t, 1.0, toks[0].Num)
	require.Equal(t, TokNull, toks[1].Kind)
	require.Equal(t, 2.0, toks[2].Num)
}
