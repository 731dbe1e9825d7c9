package pdf

import "github.com/pkg/errors"

// ParseValue parses a single PDF value (number, reference, name, string,
// array, dictionary or keyword literal) from l, starting at the lexer's
// current position. It does not know about streams: the "stream ...
// endstream" wrapper that can follow a dictionary is the document parser's
// concern (see document.go), because recognizing it requires knowing the
// dictionary's resolved /Length, which may itself be an indirect
// reference into objects not yet parsed.
//
// Numeric-vs-reference disambiguation mirrors the teacher's own
// parse(): an integer is spelled out, a lookahead reads a second integer
// and then a bare "R" keyword; if that doesn't hold the lexer rewinds and
// the first number is returned standalone.
func ParseValue(l *Lexer) (Object, error) {
	tok, err := l.Next()
	if err != nil {
		return Object{}, err
	}
	return parseValueFromToken(l, tok)
}

func parseValueFromToken(l *Lexer, tok Token) (Object, error) {
	switch tok.Kind {
	case TokEOF:
		return Object{}, errors.New("pdf: unexpected end of input while parsing value")
	case TokNumber:
		return parseNumberOrReference(l, tok.Num)
	case TokName:
		return NewName(tok.Text), nil
	case TokString:
		return NewString(tok.Text), nil
	case TokArrayStart:
		return parseArray(l)
	case TokDictStart:
		return parseDict(l)
	case TokNull:
		return Null(), nil
	case TokKeyword:
		switch tok.Text {
		case "true":
			return NewBool(true), nil
		case "false":
			return NewBool(false), nil
		case "null":
			return Null(), nil
		default:
			return Object{}, errors.Errorf("pdf: unexpected keyword %q", tok.Text)
		}
	default:
		return Object{}, errors.Errorf("pdf: unexpected token while parsing value")
	}
}

// isIntegral reports whether f has no fractional part, matching the
// original parser's requirement that only whole numbers can begin an
// indirect reference.
func isIntegral(f float64) bool { return f == float64(int64(f)) }

func parseNumberOrReference(l *Lexer, first float64) (Object, error) {
	if !isIntegral(first) || first < 0 {
		return NewNumber(first), nil
	}
	save1 := l.Pos()
	tok2, err := l.Next()
	if err != nil || tok2.Kind != TokNumber || !isIntegral(tok2.Num) || tok2.Num < 0 {
		l.Seek(save1)
		return NewNumber(first), nil
	}
	save2 := l.Pos()
	tok3, err := l.Next()
	if err != nil || tok3.Kind != TokKeyword || tok3.Text != "R" {
		l.Seek(save1)
		return NewNumber(first), nil
	}
	_ = save2
	return NewReference(uint32(first), uint16(tok2.Num)), nil
}

func parseArray(l *Lexer) (Object, error) {
	var elems []Object
	for {
		tok, err := l.Next()
		if err != nil {
			return Object{}, err
		}
		if tok.Kind == TokArrayEnd {
			return NewArray(elems), nil
		}
		if tok.Kind == TokEOF {
			return Object{}, errors.New("pdf: unterminated array")
		}
		v, err := parseValueFromToken(l, tok)
		if err != nil {
			return Object{}, err
		}
		elems = append(elems, v)
	}
}

// parseDict is tolerant of a malformed (non-Name) key: it skips the
// offending token and keeps scanning for the next key, but ">>" still
// terminates the dictionary. This matches the reference parser's
// behaviour on slightly-broken real-world PDFs.
func parseDict(l *Lexer) (Object, error) {
	d := make(map[string]Object)
	for {
		tok, err := l.Next()
		if err != nil {
			return Object{}, err
		}
		switch tok.Kind {
		case TokDictEnd:
			return NewDict(d), nil
		case TokEOF:
			return Object{}, errors.New("pdf: unterminated dictionary")
		case TokName:
			key := tok.Text
			val, err := ParseValue(l)
			if err != nil {
				return Object{}, err
			}
			d[key] = val
		default:
			// Skip one malformed token and keep looking for the next key.
			continue
		}
	}
}
