// Package text implements PDF text extraction: encoding tables, the
// ToUnicode CMap parser, font/encoding resolution from a page's resource
// dictionary, and the content-stream interpreter that turns a page's
// operator stream into plain text.
package text

var glyphNames = []struct {
	name string
	r    rune
}{
	{"space", ' '}, {"parenleft", '('}, {"parenright", ')'}, {"minus", '-'},
	{"period", '.'}, {"comma", ','}, {"colon", ':'}, {"semicolon", ';'},
	{"question", '?'}, {"exclam", '!'}, {"trademark", '™'}, {"Trademark", '™'},
	{"bullet", '•'}, {"Euro", '€'}, {"Euroglyph", '€'}, {"yen", '¥'},
	{"florin", 'ƒ'}, {"emdash", '—'}, {"endash", '–'},
	{"quotedblleft", '“'}, {"quotedblright", '”'},
	{"quoteleft", '‘'}, {"quoteright", '’'},
	{"AE", 'Æ'}, {"ae", 'æ'}, {"OE", 'Œ'}, {"oe", 'œ'},
	{"fi", 'ﬁ'}, {"fl", 'ﬂ'}, {"ffi", 'ﬃ'}, {"ffl", 'ﬄ'}, {"ff", 'ﬀ'},
	{"dotlessi", 'ı'}, {"dotlessj", 'ȷ'}, {"germandbls", 'ß'},
	{"registered", '®'}, {"copyright", '©'},
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// GlyphToUnicode maps a /Differences glyph name to a rune, falling back to
// treating a single-character name as that character literally. An exact
// name match wins over a case-insensitive one, so "ae" and "AE" stay
// distinct.
func GlyphToUnicode(name string) (rune, bool) {
	for _, g := range glyphNames {
		if g.name == name {
			return g.r, true
		}
	}
	for _, g := range glyphNames {
		if asciiEqualFold(g.name, name) {
			return g.r, true
		}
	}
	if len([]rune(name)) == 1 {
		return []rune(name)[0], true
	}
	return 0, false
}

// WinAnsiToUnicode maps a single WinAnsiEncoding (CP1252-derived) byte.
// Bytes with no CP1252 assignment (0x81, 0x8D, 0x8F, 0x90, 0x9D) map to
// NUL, matching the reference table; 0xA0-0xFF fall through to Latin-1.
func WinAnsiToUnicode(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	switch b {
	case 0x80:
		return '€'
	case 0x82:
		return '‚'
	case 0x83:
		return 'ƒ'
	case 0x84:
		return '„'
	case 0x85:
		return '…'
	case 0x86:
		return '†'
	case 0x87:
		return '‡'
	case 0x88:
		return 'ˆ'
	case 0x89:
		return '‰'
	case 0x8A:
		return 'Š'
	case 0x8B:
		return '‹'
	case 0x8C:
		return 'Œ'
	case 0x8E:
		return 'Ž'
	case 0x91:
		return '‘'
	case 0x92:
		return '’'
	case 0x93:
		return '“'
	case 0x94:
		return '”'
	case 0x95:
		return '•'
	case 0x96:
		return '–'
	case 0x97:
		return '—'
	case 0x98:
		return '˜'
	case 0x99:
		return '™'
	case 0x9A:
		return 'š'
	case 0x9B:
		return '›'
	case 0x9C:
		return 'œ'
	case 0x9E:
		return 'ž'
	case 0x9F:
		return 'Ÿ'
	case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return 0
	default:
		return rune(b)
	}
}

// MacRomanToUnicode maps a single MacRomanEncoding byte.
func MacRomanToUnicode(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	switch b {
	case 0x80:
		return 'Ä'
	case 0x81:
		return 'Å'
	case 0x82:
		return 'Ç'
	case 0x83:
		return 'É'
	case 0x84:
		return 'Ñ'
	case 0x85:
		return 'Ö'
	case 0x86:
		return 'Ü'
	case 0x87:
		return 'á'
	case 0x88:
		return 'à'
	case 0x89:
		return 'â'
	case 0x8A:
		return 'ä'
	case 0x8B:
		return 'ã'
	case 0x8C:
		return 'å'
	case 0x8D:
		return 'ç'
	case 0x8E:
		return 'é'
	case 0x8F:
		return 'è'
	case 0x90:
		return 'ê'
	case 0x91:
		return 'ë'
	case 0x92:
		return 'í'
	case 0x93:
		return 'ì'
	case 0x94:
		return 'î'
	case 0x95:
		return 'ï'
	case 0x96:
		return 'ñ'
	case 0x97:
		return 'ó'
	case 0x98:
		return 'ò'
	case 0x99:
		return 'ô'
	case 0x9A:
		return 'ö'
	case 0x9B:
		return 'õ'
	case 0x9C:
		return 'ú'
	case 0x9D:
		return 'ù'
	case 0x9E:
		return 'û'
	case 0x9F:
		return 'ü'
	case 0xA0:
		return '†'
	case 0xA1:
		return '°'
	case 0xA2:
		return '¢'
	case 0xA3:
		return '£'
	case 0xA4:
		return '§'
	case 0xA5:
		return '•'
	case 0xA6:
		return '¶'
	case 0xA7:
		return 'ß'
	case 0xA8:
		return '®'
	case 0xA9:
		return '©'
	case 0xAA:
		return '™'
	case 0xAB:
		return '´'
	case 0xAC:
		return '¨'
	case 0xAD:
		return '≠'
	case 0xAE:
		return 'Æ'
	case 0xAF:
		return 'Ø'
	case 0xB0:
		return '∞'
	case 0xB1:
		return '±'
	case 0xB2:
		return '≤'
	case 0xB3:
		return '≥'
	case 0xB4:
		return '¥'
	case 0xB5:
		return 'µ'
	case 0xB6:
		return '∂'
	case 0xB7:
		return '∑'
	case 0xB8:
		return '∏'
	case 0xB9:
		return 'π'
	case 0xBA:
		return '∫'
	case 0xBB:
		return 'ª'
	case 0xBC:
		return 'º'
	case 0xBD:
		return 'Ω'
	case 0xBE:
		return 'æ'
	case 0xBF:
		return 'ø'
	case 0xC0:
		return '¿'
	case 0xC1:
		return '¡'
	case 0xC2:
		return '¬'
	case 0xC3:
		return '√'
	case 0xC4:
		return 'ƒ'
	case 0xC5:
		return '≈'
	case 0xC6:
		return '∆'
	case 0xC7:
		return '«'
	case 0xC8:
		return '»'
	case 0xC9:
		return '…'
	case 0xCA:
		return ' '
	case 0xCB:
		return 'À'
	case 0xCC:
		return 'Ã'
	case 0xCD:
		return 'Õ'
	case 0xCE:
		return 'Œ'
	case 0xCF:
		return 'œ'
	case 0xD0:
		return '–'
	case 0xD1:
		return '—'
	case 0xD2:
		return '“'
	case 0xD3:
		return '”'
	case 0xD4:
		return '‘'
	case 0xD5:
		return '’'
	case 0xD6:
		return '÷'
	case 0xD7:
		return '◊'
	case 0xD8:
		return 'ÿ'
	case 0xD9:
		return 'Ÿ'
	case 0xDA:
		return '⁄'
	case 0xDB:
		return '€'
	case 0xDC:
		return '‹'
	case 0xDD:
		return '›'
	case 0xDE:
		return 'ﬁ'
	case 0xDF:
		return 'ﬂ'
	case 0xE0:
		return '‡'
	case 0xE1:
		return '·'
	case 0xE2:
		return '‚'
	case 0xE3:
		return '„'
	case 0xE4:
		return '‰'
	case 0xE5:
		return 'Â'
	case 0xE6:
		return 'Ê'
	case 0xE7:
		return 'Á'
	case 0xE8:
		return 'Ë'
	case 0xE9:
		return 'È'
	case 0xEA:
		return 'Í'
	case 0xEB:
		return 'Î'
	case 0xEC:
		return 'Ï'
	case 0xED:
		return 'Ì'
	case 0xEE:
		return 'Ó'
	case 0xEF:
		return 'Ô'
	case 0xF0:
		return '\uF8FF'
	case 0xF1:
		return 'Ò'
	case 0xF2:
		return 'Ú'
	case 0xF3:
		return 'Û'
	case 0xF4:
		return 'Ù'
	case 0xF5:
		return 'ı'
	case 0xF6:
		return 'ˆ'
	case 0xF7:
		return '˜'
	case 0xF8:
		return '¯'
	case 0xF9:
		return '˘'
	case 0xFA:
		return '˙'
	case 0xFB:
		return '˚'
	case 0xFC:
		return '¸'
	case 0xFD:
		return '˝'
	case 0xFE:
		return '˛'
	case 0xFF:
		return 'ˇ'
	default:
		return 0
	}
}

// MacExpertToUnicode maps a single MacExpertEncoding byte (partial: the
// digits, the superior/inferior figure ranges, small caps and a handful
// of symbols — the encoding is rarely seen outside specialty fonts).
func MacExpertToUnicode(b byte) rune {
	switch b {
	case 0x20:
		return ' '
	case 0x21:
		return '!'
	case 0x22:
		return '"'
	case 0x23:
		return '#'
	case 0x24:
		return '$'
	case 0x25:
		return '%'
	case 0x26:
		return '&'
	case 0x27:
		return '\''
	case 0x28:
		return '('
	case 0x29:
		return ')'
	case 0x2A:
		return '*'
	case 0x2B:
		return '+'
	case 0x2C:
		return ','
	case 0x2D:
		return '-'
	case 0x2E:
		return '.'
	case 0x2F:
		return '/'
	case 0x30:
		return '0'
	case 0x31:
		return '1'
	case 0x32:
		return '2'
	case 0x33:
		return '3'
	case 0x34:
		return '4'
	case 0x35:
		return '5'
	case 0x36:
		return '6'
	case 0x37:
		return '7'
	case 0x38:
		return '8'
	case 0x39:
		return '9'
	case 0x60:
		return '¹'
	case 0x61:
		return '¼'
	case 0x62:
		return '½'
	case 0x63:
		return '¾'
	case 0x64:
		return '⁄'
	case 0xB0:
		return '¹'
	case 0xB1:
		return '²'
	case 0xB2:
		return '³'
	case 0xB3:
		return '⁴'
	case 0xB4:
		return '⁵'
	case 0xB5:
		return '⁶'
	case 0xB6:
		return '⁷'
	case 0xB7:
		return '⁸'
	case 0xB8:
		return '⁹'
	case 0xB9:
		return '⁰'
	case 0xC0:
		return '₁'
	case 0xC1:
		return '₂'
	case 0xC2:
		return '₃'
	case 0xC3:
		return '₄'
	case 0xC4:
		return '₅'
	case 0xC5:
		return '₆'
	case 0xC6:
		return '₇'
	case 0xC7:
		return '₈'
	case 0xC8:
		return '₉'
	case 0xC9:
		return '₀'
	case 0xDA:
		return 'ﬁ'
	case 0xDB:
		return 'ﬂ'
	case 0xDC, 0xDD, 0xDE:
		return '?'
	case 0xE0:
		return 'A'
	case 0xE1:
		return 'B'
	case 0xE2:
		return 'C'
	case 0xE3:
		return 'D'
	case 0xE4:
		return 'E'
	case 0xE5:
		return 'F'
	case 0xE6:
		return 'G'
	case 0xE7:
		return 'H'
	case 0xE8:
		return 'I'
	case 0xE9:
		return 'J'
	case 0xEA:
		return 'K'
	case 0xEB:
		return 'L'
	case 0xEC:
		return 'M'
	case 0xED:
		return 'N'
	case 0xEE:
		return 'O'
	case 0xEF:
		return 'P'
	case 0xF0:
		return 'Q'
	case 0xF1:
		return 'R'
	case 0xF2:
		return 'S'
	case 0xF3:
		return 'T'
	case 0xF4:
		return 'U'
	case 0xF5:
		return 'V'
	case 0xF6:
		return 'W'
	case 0xF7:
		return 'X'
	case 0xF8:
		return 'Y'
	case 0xF9:
		return 'Z'
	case 0xAA:
		return '©'
	case 0xAF:
		return '™'
	case 0xBC:
		return '®'
	default:
		return 0
	}
}

// StandardToUnicode maps a single StandardEncoding (Adobe Standard Latin)
// byte. Above 0x7F the listed bytes follow Latin-1, matching the
// reference implementation's own caveat; 0x80-0xA0, 0xA6 and 0xAD are not
// listed and map to NUL.
func StandardToUnicode(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	switch b {
	case 0xA1:
		return '¡'
	case 0xA2:
		return '¢'
	case 0xA3:
		return '£'
	case 0xA4:
		return '¤'
	case 0xA5:
		return '¥'
	case 0xA7:
		return '§'
	case 0xA8:
		return '¨'
	case 0xA9:
		return '©'
	case 0xAA:
		return 'ª'
	case 0xAB:
		return '«'
	case 0xAC:
		return '¬'
	case 0xAE:
		return '®'
	case 0xAF:
		return '¯'
	case 0xB0:
		return '°'
	case 0xB1:
		return '±'
	case 0xB2:
		return '²'
	case 0xB3:
		return '³'
	case 0xB4:
		return '´'
	case 0xB5:
		return 'µ'
	case 0xB6:
		return '¶'
	case 0xB7:
		return '·'
	case 0xB8:
		return '¸'
	case 0xB9:
		return '¹'
	case 0xBA:
		return 'º'
	case 0xBB:
		return '»'
	case 0xBC:
		return '¼'
	case 0xBD:
		return '½'
	case 0xBE:
		return '¾'
	case 0xC0:
		return 'À'
	case 0xC1:
		return 'Á'
	case 0xC2:
		return 'Â'
	case 0xC3:
		return 'Ã'
	case 0xC4:
		return 'Ä'
	case 0xC5:
		return 'Å'
	case 0xC6:
		return 'Æ'
	case 0xC7:
		return 'Ç'
	case 0xC8:
		return 'È'
	case 0xC9:
		return 'É'
	case 0xCA:
		return 'Ê'
	case 0xCB:
		return 'Ë'
	case 0xCC:
		return 'Ì'
	case 0xCD:
		return 'Í'
	case 0xCE:
		return 'Î'
	case 0xCF:
		return 'Ï'
	case 0xD0:
		return 'Ð'
	case 0xD1:
		return 'Ñ'
	case 0xD2:
		return 'Ò'
	case 0xD3:
		return 'Ó'
	case 0xD4:
		return 'Ô'
	case 0xD5:
		return 'Õ'
	case 0xD6:
		return 'Ö'
	case 0xD7:
		return '×'
	case 0xD8:
		return 'Ø'
	case 0xD9:
		return 'Ù'
	case 0xDA:
		return 'Ú'
	case 0xDB:
		return 'Û'
	case 0xDC:
		return 'Ü'
	case 0xDD:
		return 'Ý'
	case 0xDE:
		return 'Þ'
	case 0xDF:
		return 'ß'
	case 0xE0:
		return 'à'
	case 0xE1:
		return 'á'
	case 0xE2:
		return 'â'
	case 0xE3:
		return 'ã'
	case 0xE4:
		return 'ä'
	case 0xE5:
		return 'å'
	case 0xE6:
		return 'æ'
	case 0xE7:
		return 'ç'
	case 0xE8:
		return 'è'
	case 0xE9:
		return 'é'
	case 0xEA:
		return 'ê'
	case 0xEB:
		return 'ë'
	case 0xEC:
		return 'ì'
	case 0xED:
		return 'í'
	case 0xEE:
		return 'î'
	case 0xEF:
		return 'ï'
	case 0xF0:
		return 'ð'
	case 0xF1:
		return 'ñ'
	case 0xF2:
		return 'ò'
	case 0xF3:
		return 'ó'
	case 0xF4:
		return 'ô'
	case 0xF5:
		return 'õ'
	case 0xF6:
		return 'ö'
	case 0xF7:
		return '÷'
	case 0xF8:
		return 'ø'
	case 0xF9:
		return 'ù'
	case 0xFA:
		return 'ú'
	case 0xFB:
		return 'û'
	case 0xFC:
		return 'ü'
	case 0xFD:
		return 'ý'
	case 0xFE:
		return 'þ'
	case 0xFF:
		return 'ÿ'
	default:
		return 0
	}
}

// PDFDocToUnicode maps a single PDFDocEncoding byte. Only two bytes
// (0x9F Yen, 0xA0 Euro) are special-cased; everything else above 0x7F
// falls through to Latin-1.
func PDFDocToUnicode(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	switch b {
	case 0x9F:
		return '¥'
	case 0xA0:
		return '€'
	default:
		return rune(b)
	}
}
