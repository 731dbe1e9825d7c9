package text

import "github.com/seetadev/zkpdf-go/pdf"

// Font carries everything the interpreter needs to decode a content
// stream's string operands for one /Font resource entry.
type Font struct {
	BaseName     string
	Subtype      string
	Encoding     string
	ToUnicodeMap map[uint32]string
	Differences  map[uint32]string
}

// CollectFonts resolves every entry of a page's /Font resource dictionary
// into a Font, following References against doc's object table.
func CollectFonts(doc *pdf.Document, resources map[string]pdf.Object) map[string]Font {
	out := make(map[string]Font)
	if resources == nil {
		return out
	}
	fontsEntry, ok := resources["Font"]
	if !ok {
		return out
	}
	fontDict, ok := doc.Resolve(fontsEntry).AsDict()
	if !ok {
		return out
	}

	for key, entry := range fontDict {
		resolved := doc.Resolve(entry)
		dict, ok := resolved.AsDict()
		if !ok {
			continue
		}
		out[key] = buildFont(doc, dict)
	}
	return out
}

func buildFont(doc *pdf.Document, dict map[string]pdf.Object) Font {
	f := Font{}
	if v, ok := dict["Subtype"]; ok {
		f.Subtype, _ = v.AsName()
	}
	if v, ok := dict["BaseFont"]; ok {
		f.BaseName, _ = v.AsName()
	}

	if encObj, ok := dict["Encoding"]; ok {
		resolveEncoding(doc, encObj, &f)
	}

	if tu, ok := dict["ToUnicode"]; ok {
		if ref, ok := tu.AsReference(); ok {
			if obj, ok := doc.Get(ref); ok && obj.Kind == pdf.KindStream {
				data, err := pdf.DecodeStream(obj.Dict, obj.StreamData)
				if err != nil {
					data = obj.StreamData
				}
				f.ToUnicodeMap = ParseToUnicodeCMap(data)
			}
		}
	}

	return f
}

func resolveEncoding(doc *pdf.Document, encObj pdf.Object, f *Font) {
	switch encObj.Kind {
	case pdf.KindName:
		f.Encoding, _ = encObj.AsName()
	case pdf.KindDict:
		applyEncodingDict(encObj.Dict, f)
	case pdf.KindReference:
		resolved := doc.Resolve(encObj)
		if name, ok := resolved.AsName(); ok {
			f.Encoding = name
			return
		}
		if dict, ok := resolved.AsDict(); ok {
			applyEncodingDict(dict, f)
		}
	}
}

func applyEncodingDict(dict map[string]pdf.Object, f *Font) {
	if be, ok := dict["BaseEncoding"]; ok {
		f.Encoding, _ = be.AsName()
	}
	diffObj, ok := dict["Differences"]
	if !ok {
		return
	}
	arr, ok := diffObj.AsArray()
	if !ok {
		return
	}
	diffs := make(map[uint32]string)
	var currentCode uint32
	isCode := true
	for _, item := range arr {
		if isCode {
			if n, ok := item.AsNumber(); ok {
				currentCode = uint32(n)
				isCode = false
			}
			continue
		}
		if name, ok := item.AsName(); ok {
			diffs[currentCode] = name
			currentCode++
			continue
		}
		isCode = true
		if n, ok := item.AsNumber(); ok {
			currentCode = uint32(n)
			isCode = false
		}
	}
	if len(diffs) > 0 {
		f.Differences = diffs
	}
}
