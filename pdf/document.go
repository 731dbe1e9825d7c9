package pdf

import (
	"bytes"

	"github.com/pkg/errors"
)

// Document is the result of a cross-reference-free streaming parse: every
// "N G obj ... endobj" body found by a single left-to-right scan of the
// file, keyed by its (object number, generation). The file's own xref
// table, if any, is never consulted — a signed PDF's xref table describes
// exactly the bytes an attacker controls, so trusting it would let a
// forged xref hide or substitute objects the signature never covered.
type Document struct {
	Objects map[Reference]Object
	Trailer map[string]Object
}

// Parse scans data left to right, recovering every indirect object body it
// can find, expanding object streams, and locating a trailer dictionary
// (literal "trailer" keyword, or a cross-reference-stream object carrying
// /Root, whichever is found).
func Parse(data []byte) (*Document, error) {
	doc := &Document{Objects: make(map[Reference]Object)}
	n := len(data)
	pos := skipPdfHeader(data, 0)

	for pos < n {
		np := skipWSComments(data, pos)
		if np >= n {
			break
		}
		pos = np

		if matchWord(data, pos, "xref") {
			pos = skipXrefSection(data, pos+len("xref"))
			continue
		}
		if matchWord(data, pos, "trailer") {
			pos = parseTrailerAt(doc, data, pos+len("trailer"))
			continue
		}
		if matchWord(data, pos, "startxref") {
			pos = skipPastEOFMarker(data, pos+len("startxref"))
			continue
		}

		objPos := pos
		num, p1, ok1 := readUint(data, pos)
		if !ok1 {
			pos = objPos + 1
			continue
		}
		p1 = skipWSComments(data, p1)
		gen, p2, ok2 := readUint(data, p1)
		if !ok2 {
			pos = objPos + 1
			continue
		}
		p2 = skipWSComments(data, p2)
		if !matchWord(data, p2, "obj") {
			pos = objPos + 1
			continue
		}
		p3 := p2 + len("obj")

		l := NewLexer(data)
		l.Seek(p3)
		val, err := ParseValue(l)
		if err != nil {
			pos = objPos + 1
			continue
		}
		ref := Reference{Num: uint32(num), Gen: uint16(gen)}
		afterVal := skipWSComments(data, l.Pos())

		if matchWord(data, afterVal, "stream") {
			streamDict, _ := val.AsDict()
			bodyStart := skipStreamEOL(data, afterVal+len("stream"))
			body, endPos := extractStreamBody(doc, data, streamDict, bodyStart)
			obj := NewStream(streamDict, body)
			doc.Objects[ref] = obj

			pos = skipWSComments(data, endPos)
			if matchWord(data, pos, "endobj") {
				pos += len("endobj")
			}
			if typeName, ok := streamDict["Type"]; ok {
				if name, ok := typeName.AsName(); ok && name == "ObjStm" {
					expandObjectStream(doc, streamDict, body)
				}
			}
			continue
		}

		doc.Objects[ref] = val
		pos = skipWSComments(data, afterVal)
		if matchWord(data, pos, "endobj") {
			pos += len("endobj")
		}
	}

	if doc.Trailer == nil {
		doc.Trailer = locateTrailerFallback(doc)
	}
	if doc.Trailer == nil {
		return nil, errors.New("pdf: no trailer dictionary found")
	}
	return doc, nil
}

func extractStreamBody(doc *Document, data []byte, dict map[string]Object, bodyStart int) ([]byte, int) {
	if length, ok := resolveLength(dict, doc); ok && bodyStart+length <= len(data) {
		candidate := data[bodyStart : bodyStart+length]
		checkPos := skipWSComments(data, bodyStart+length)
		if matchWord(data, checkPos, "endstream") {
			return candidate, checkPos + len("endstream")
		}
	}
	return scanForEndstream(data, bodyStart)
}

func resolveLength(dict map[string]Object, doc *Document) (int, bool) {
	v, ok := dict["Length"]
	if !ok {
		return 0, false
	}
	if n, ok := v.AsNumber(); ok && n >= 0 {
		return int(n), true
	}
	if ref, ok := v.AsReference(); ok {
		if obj, ok := doc.Objects[ref]; ok {
			if n, ok := obj.AsNumber(); ok && n >= 0 {
				return int(n), true
			}
		}
	}
	return 0, false
}

// scanForEndstream falls back to a forward scan for the literal keyword
// "endstream" when /Length can't be trusted (missing, unparsed forward
// reference, or simply wrong — both of which occur in the wild).
func scanForEndstream(data []byte, start int) ([]byte, int) {
	idx := bytes.Index(data[start:], []byte("endstream"))
	if idx < 0 {
		return data[start:], len(data)
	}
	end := start + idx
	body := data[start:end]
	body = trimTrailingEOL(body)
	return body, end + len("endstream")
}

func trimTrailingEOL(b []byte) []byte {
	if len(b) >= 2 && b[len(b)-2] == '\r' && b[len(b)-1] == '\n' {
		return b[:len(b)-2]
	}
	if len(b) >= 1 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		return b[:len(b)-1]
	}
	return b
}

func skipStreamEOL(data []byte, pos int) int {
	if pos+1 < len(data) && data[pos] == '\r' && data[pos+1] == '\n' {
		return pos + 2
	}
	if pos < len(data) && (data[pos] == '\n' || data[pos] == '\r') {
		return pos + 1
	}
	return pos
}

// expandObjectStream decodes an ObjStm's content and parses each of its
// compressed objects, storing them with generation 0 (the only generation
// an object stream member can have).
func expandObjectStream(doc *Document, dict map[string]Object, rawBody []byte) {
	data, err := DecodeStream(dict, rawBody)
	if err != nil {
		return
	}
	count, ok := dict["N"]
	if !ok {
		return
	}
	n, ok := count.AsInt()
	if !ok || n < 0 {
		return
	}
	firstObj, ok := dict["First"]
	if !ok {
		return
	}
	first, ok := firstObj.AsInt()
	if !ok {
		return
	}

	l := NewLexer(data)
	type pair struct{ num, offset int }
	pairs := make([]pair, 0, n)
	for i := 0; i < n; i++ {
		t1, err := l.Next()
		if err != nil || t1.Kind != TokNumber {
			return
		}
		t2, err := l.Next()
		if err != nil || t2.Kind != TokNumber {
			return
		}
		pairs = append(pairs, pair{int(t1.Num), int(t2.Num)})
	}
	for _, p := range pairs {
		sub := NewLexer(data)
		sub.Seek(first + p.offset)
		val, err := ParseValue(sub)
		if err != nil {
			continue
		}
		ref := Reference{Num: uint32(p.num), Gen: 0}
		if _, exists := doc.Objects[ref]; !exists {
			doc.Objects[ref] = val
		}
	}
}

func parseTrailerAt(doc *Document, data []byte, pos int) int {
	pos = skipWSComments(data, pos)
	l := NewLexer(data)
	l.Seek(pos)
	tok, err := l.Next()
	if err != nil || tok.Kind != TokDictStart {
		return pos + 1
	}
	val, err := parseDict(l)
	if err != nil {
		return l.Pos()
	}
	if d, ok := val.AsDict(); ok {
		if doc.Trailer == nil {
			doc.Trailer = make(map[string]Object)
		}
		for k, v := range d {
			doc.Trailer[k] = v
		}
	}
	return l.Pos()
}

// locateTrailerFallback is used when no literal "trailer" keyword was ever
// found: it looks for a cross-reference stream object (Type /XRef), which
// in xref-stream-only (PDF 1.5+) documents carries /Root directly in its
// own stream dictionary instead of a separate trailer dictionary.
func locateTrailerFallback(doc *Document) map[string]Object {
	for _, obj := range doc.Objects {
		dict, ok := obj.AsDict()
		if !ok {
			continue
		}
		typeName, ok := dict["Type"]
		if !ok {
			continue
		}
		if name, ok := typeName.AsName(); ok && name == "XRef" {
			if _, ok := dict["Root"]; ok {
				return dict
			}
		}
	}
	return nil
}

// Resolve follows a Reference chain (bounded, to tolerate cyclic or
// dangling references in adversarial input) until it reaches a
// non-reference value, returning Null if the chain is dangling.
func (d *Document) Resolve(o Object) Object {
	for depth := 0; o.Kind == KindReference && depth < 32; depth++ {
		next, ok := d.Objects[o.Ref]
		if !ok {
			return Null()
		}
		o = next
	}
	return o
}

// Get looks up an indirect object by reference.
func (d *Document) Get(ref Reference) (Object, bool) {
	o, ok := d.Objects[ref]
	return o, ok
}

// Catalog resolves the trailer's /Root into the document catalog
// dictionary, rejecting a (0,0) reference, which never names a real
// object. An inline page tree is rejected separately, by CollectPages.
func (d *Document) Catalog() (map[string]Object, error) {
	rootObj, ok := d.Trailer["Root"]
	if !ok {
		return nil, errors.New("pdf: trailer has no /Root entry")
	}
	if ref, ok := rootObj.AsReference(); ok && ref.Num == 0 && ref.Gen == 0 {
		return nil, errors.New("pdf: /Root is the (0,0) sentinel reference")
	}
	resolved := d.Resolve(rootObj)
	dict, ok := resolved.AsDict()
	if !ok {
		return nil, errors.New("pdf: /Root does not resolve to a dictionary")
	}
	return dict, nil
}

func skipPdfHeader(data []byte, pos int) int {
	idx := bytes.Index(data, []byte("%PDF"))
	if idx < 0 {
		return pos
	}
	for i := idx; i < len(data); i++ {
		if data[i] == '\n' || data[i] == '\r' {
			return skipWSComments(data, i)
		}
	}
	return len(data)
}

func skipWSComments(data []byte, pos int) int {
	n := len(data)
	for pos < n {
		b := data[pos]
		if isWhitespace(b) {
			pos++
			continue
		}
		if b == '%' {
			for pos < n && data[pos] != '\n' && data[pos] != '\r' {
				pos++
			}
			continue
		}
		break
	}
	return pos
}

func matchWord(data []byte, pos int, kw string) bool {
	n := len(data)
	if pos < 0 || pos+len(kw) > n {
		return false
	}
	if string(data[pos:pos+len(kw)]) != kw {
		return false
	}
	end := pos + len(kw)
	if end == n {
		return true
	}
	b := data[end]
	return isWhitespace(b) || isDelimiter(b)
}

func readUint(data []byte, pos int) (uint64, int, bool) {
	start := pos
	n := len(data)
	for pos < n && data[pos] >= '0' && data[pos] <= '9' {
		pos++
	}
	if pos == start {
		return 0, pos, false
	}
	var v uint64
	for _, b := range data[start:pos] {
		v = v*10 + uint64(b-'0')
	}
	return v, pos, true
}

// skipXrefSection skips past a classical xref table's subsection headers
// and 20-byte entries. The table itself is never parsed into an
// object-offset index; skipping it only keeps the main scan from
// misinterpreting its numeric entries as "N G obj" headers.
func skipXrefSection(data []byte, pos int) int {
	n := len(data)
	for {
		p := skipWSComments(data, pos)
		if p >= n {
			return p
		}
		if matchWord(data, p, "trailer") {
			return p
		}
		// A subsection header is "start count"; an entry is "offset gen n|f".
		// Either way it's two or three numbers followed by a keyword/EOL; skip
		// one line at a time.
		lineEnd := p
		for lineEnd < n && data[lineEnd] != '\n' && data[lineEnd] != '\r' {
			lineEnd++
		}
		if lineEnd == p {
			return p
		}
		pos = lineEnd
	}
}

func skipPastEOFMarker(data []byte, pos int) int {
	idx := bytes.Index(data[pos:], []byte("%%EOF"))
	if idx < 0 {
		return len(data)
	}
	return pos + idx + len("%%EOF")
}
