package text

import "strings"

// DecodeFontString decodes one content-stream string operand into text,
// using font's ToUnicode CMap if present, else falling back to its
// byte-level encoding (Differences first, then the named base encoding).
// A code with no ToUnicode mapping decodes to the replacement character
// and stays in the output; only the base-encoding fallback drops NUL and
// the replacement character, matching the reference decoder's asymmetric
// handling of the two paths.
func DecodeFontString(data []byte, f Font) string {
	if f.ToUnicodeMap != nil {
		isCID := f.Subtype == "Type0"
		if isCID {
			return DecodeBytesAsCID(data, f.ToUnicodeMap)
		}
		return decodeSingleByteCMap(data, f.ToUnicodeMap)
	}
	return stripNulAndReplacement(baseEncodeBytes(data, f))
}

func decodeSingleByteCMap(data []byte, cmap map[uint32]string) string {
	var b strings.Builder
	for _, c := range data {
		if s, ok := cmap[uint32(c)]; ok {
			b.WriteString(s)
		} else {
			b.WriteRune(replacementChar)
		}
	}
	return b.String()
}

func baseEncodeBytes(data []byte, f Font) string {
	var b strings.Builder
	for _, c := range data {
		if f.Differences != nil {
			if name, ok := f.Differences[uint32(c)]; ok {
				if r, ok := GlyphToUnicode(name); ok {
					b.WriteRune(r)
					continue
				}
			}
		}
		b.WriteRune(baseEncodingByte(c, f))
	}
	return b.String()
}

func baseEncodingByte(c byte, f Font) rune {
	switch f.Encoding {
	case "WinAnsiEncoding":
		return WinAnsiToUnicode(c)
	case "MacRomanEncoding":
		return MacRomanToUnicode(c)
	case "MacExpertEncoding":
		return MacExpertToUnicode(c)
	case "StandardEncoding":
		return StandardToUnicode(c)
	case "PDFDocEncoding":
		return PDFDocToUnicode(c)
	}
	if f.Encoding == "" && f.Subtype == "Type1" {
		return StandardToUnicode(c)
	}
	if c < 128 {
		return rune(c)
	}
	return replacementChar
}

func stripNulAndReplacement(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || r == replacementChar {
			return -1
		}
		return r
	}, s)
}
