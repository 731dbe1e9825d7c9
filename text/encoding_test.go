package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlyphToUnicodeKnownNames(t *testing.T) {
	r, ok := GlyphToUnicode("bullet")
	require.True(t, ok)
	require.Equal(t, '•', r)

	r, ok = GlyphToUnicode("Euro")
	require.True(t, ok)
	require.Equal(t, '€', r)
}

func TestGlyphToUnicodeCaseInsensitive(t *testing.T) {
	r, ok := GlyphToUnicode("BULLET")
	require.True(t, ok)
	require.Equal(t, '•', r)
}

func TestGlyphToUnicodeSingleCharFallback(t *testing.T) {
	r, ok := GlyphToUnicode("Q")
	require.True(t, ok)
	require.Equal(t, 'Q', r)
}

func TestGlyphToUnicodeUnknown(t *testing.T) {
	_, ok := GlyphToUnicode("zzz-not-a-glyph")
	require.False(t, ok)
}

func TestWinAnsiUndefinedBytesAreNul(t *testing.T) {
	for _, b := range []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		require.Equal(t, rune(0), WinAnsiToUnicode(b))
	}
}

func TestWinAnsiEuroAndAscii(t *testing.T) {
	require.Equal(t, '€', WinAnsiToUnicode(0x80))
	require.Equal(t, 'A', WinAnsiToUnicode('A'))
}

func TestMacRomanAppleLogoAndLatin(t *testing.T) {
	require.Equal(t, '\uF8FF', MacRomanToUnicode(0xF0))
	require.Equal(t, 'Ä', MacRomanToUnicode(0x80))
}

func TestMacExpertDigitsAndSuperiorFigures(t *testing.T) {
	require.Equal(t, '0', MacExpertToUnicode(0x30))
	require.Equal(t, '¹', MacExpertToUnicode(0x60))
	require.Equal(t, '₁', MacExpertToUnicode(0xC0))
}

func TestStandardEncodingAsciiAndUpper(t *testing.T) {
	require.Equal(t, 'a', StandardToUnicode('a'))
	require.Equal(t, '¡', StandardToUnicode(0xA1))
}

func TestPDFDocEncodingSpecialCases(t *testing.T) {
	require.Equal(t, '¥', PDFDocToUnicode(0x9F))
	require.Equal(t, '€', PDFDocToUnicode(0xA0))
	require.Equal(t, rune(0xFF), PDFDocToUnicode(0xFF))
}
