package text

import (
	"strings"

	"github.com/seetadev/zkpdf-go/pdf"
)

type csKind int

const (
	csNumber csKind = iota
	csString
	csName
	csOperator
	csArray
)

// csToken is a folded content-stream token: plain scalars plus nested
// arrays (needed for the TJ operator's array-of-strings-and-kerning-
// numbers operand). Built on top of pdf.Lexer, since content-stream COS
// syntax (numbers, names, strings, arrays) is the same lexical grammar the
// object parser already implements; only the flat-token-to-nested-array
// folding step and the operator-vs-keyword interpretation are specific to
// content streams.
type csToken struct {
	kind csKind
	num  float64
	text string
	arr  []csToken
}

func tokenizeContent(data []byte) []csToken {
	l := pdf.NewLexer(data)
	var flat []pdf.Token
	for {
		tok, err := l.Next()
		if err != nil {
			break
		}
		if tok.Kind == pdf.TokEOF {
			break
		}
		if tok.Kind == pdf.TokDictStart || tok.Kind == pdf.TokDictEnd {
			// Inline image dictionaries (BI ... ID ... EI) are not
			// interpreted; skip their delimiters rather than letting them
			// desynchronize array folding.
			continue
		}
		flat = append(flat, tok)
	}
	folded, _ := foldArrayTokens(flat, 0)
	return folded
}

func foldArrayTokens(flat []pdf.Token, start int) ([]csToken, int) {
	var out []csToken
	i := start
	for i < len(flat) {
		t := flat[i]
		if t.Kind == pdf.TokArrayEnd {
			return out, i + 1
		}
		if t.Kind == pdf.TokArrayStart {
			inner, next := foldArrayTokens(flat, i+1)
			out = append(out, csToken{kind: csArray, arr: inner})
			i = next
			continue
		}
		out = append(out, fromPdfToken(t))
		i++
	}
	return out, i
}

func fromPdfToken(t pdf.Token) csToken {
	switch t.Kind {
	case pdf.TokNumber:
		return csToken{kind: csNumber, num: t.Num}
	case pdf.TokName:
		return csToken{kind: csName, text: t.Text}
	case pdf.TokString:
		return csToken{kind: csString, text: t.Text}
	default: // pdf.TokKeyword: every content-stream operator (BT, Tj, Do, ...)
		return csToken{kind: csOperator, text: t.Text}
	}
}

const maxFormDepth = 32

// ExtractPageText interprets a page's content streams (concatenated with a
// separating space, as the PDF spec requires callers to treat them) and
// returns the plain text shown by the BT/ET text-showing operators,
// recursing into Form XObjects invoked via Do. The result is normalized
// per line: runs of whitespace collapse to one space, each line is
// trimmed, empty lines are dropped, and the rest are joined with "\n".
func ExtractPageText(doc *pdf.Document, page pdf.PageContent) string {
	var joined []byte
	for i, s := range page.ContentStreams {
		if i > 0 {
			joined = append(joined, ' ')
		}
		joined = append(joined, s...)
	}

	var out strings.Builder
	visited := make(map[pdf.Reference]bool)
	st := &interpState{doc: doc, visited: visited}
	st.run(joined, page.Resources, &out, 0)

	var kept []string
	for _, line := range strings.Split(out.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

type interpState struct {
	doc     *pdf.Document
	visited map[pdf.Reference]bool
}

func (st *interpState) run(data []byte, resources map[string]pdf.Object, out *strings.Builder, depth int) {
	toks := tokenizeContent(data)
	fonts := CollectFonts(st.doc, resources)

	inText := false
	var currentFont *Font

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.kind != csOperator {
			continue
		}
		switch t.text {
		case "BT":
			inText = true
		case "ET":
			inText = false
			currentFont = nil
			out.WriteByte('\n')
		case "Tf":
			if i >= 2 && toks[i-2].kind == csName {
				if f, ok := fonts[toks[i-2].text]; ok {
					fCopy := f
					currentFont = &fCopy
				}
			}
		case "Tj", "'", "\"":
			if !inText {
				continue
			}
			if t.text != "Tj" {
				out.WriteByte('\n')
			}
			if i >= 1 && toks[i-1].kind == csString {
				writeShown(out, toks[i-1].text, currentFont)
			}
		case "TJ":
			if !inText {
				continue
			}
			if i >= 1 && toks[i-1].kind == csArray {
				for _, el := range toks[i-1].arr {
					switch el.kind {
					case csString:
						writeShown(out, el.text, currentFont)
					case csNumber:
						if el.num < -200.0 {
							out.WriteByte(' ')
						}
					}
				}
			}
		case "T*":
			out.WriteByte('\n')
		case "Td", "TD":
			if !inText {
				continue
			}
			if i >= 1 && toks[i-1].kind == csNumber && toks[i-1].num != 0.0 {
				out.WriteByte('\n')
			}
		case "Do":
			if i >= 1 && toks[i-1].kind == csName {
				st.doXObject(toks[i-1].text, resources, out, depth)
			}
		}
	}
}

func writeShown(out *strings.Builder, raw string, f *Font) {
	if f == nil {
		out.WriteString(stripNulAndReplacement(raw))
		return
	}
	out.WriteString(DecodeFontString([]byte(raw), *f))
}

func (st *interpState) doXObject(name string, resources map[string]pdf.Object, out *strings.Builder, depth int) {
	if depth >= maxFormDepth {
		return
	}
	xobjEntry, ok := resources["XObject"]
	if !ok {
		return
	}
	xobjDict, ok := st.doc.Resolve(xobjEntry).AsDict()
	if !ok {
		return
	}
	entry, ok := xobjDict[name]
	if !ok {
		return
	}

	if ref, ok := entry.AsReference(); ok {
		if st.visited[ref] {
			return
		}
		st.visited[ref] = true
		defer delete(st.visited, ref)
	}

	resolved := st.doc.Resolve(entry)
	if resolved.Kind != pdf.KindStream {
		return
	}
	subtype, ok := resolved.Dict["Subtype"]
	if !ok {
		return
	}
	if subtypeName, ok := subtype.AsName(); !ok || subtypeName != "Form" {
		return
	}

	formResources := resources
	if r, ok := resolved.Dict["Resources"]; ok {
		if rd, ok := st.doc.Resolve(r).AsDict(); ok {
			formResources = rd
		}
	}

	data, err := pdf.DecodeStream(resolved.Dict, resolved.StreamData)
	if err != nil {
		return
	}
	st.run(data, formResources, out, depth+1)
}
