package pdf

import "github.com/pkg/errors"

// PageContent is one leaf page's decoded content streams plus its
// (Resources-inherited) resource dictionary. Font and encoding resolution
// is left to the text package, which works from Resources and the
// Document's object table directly.
type PageContent struct {
	ContentStreams [][]byte
	Resources      map[string]Object
}

// CollectPages walks the catalog's page tree, inheriting /Resources down
// through intermediate /Pages nodes, and returns one PageContent per leaf
// /Page in document order. A (objNum,gen) visited set breaks cycles caused
// by adversarial or malformed Kids arrays; a node already visited is
// simply skipped rather than erroring, so a subtree reached a second time
// (through a cycle or a diamond) is walked only once. A /Pages entry that
// is not an indirect reference is rejected.
func CollectPages(doc *Document) ([]PageContent, error) {
	cat, err := doc.Catalog()
	if err != nil {
		return nil, err
	}
	pagesObj, ok := cat["Pages"]
	if !ok {
		return nil, errors.New("pdf: catalog has no /Pages entry")
	}
	if _, ok := pagesObj.AsReference(); !ok {
		return nil, errors.New("pdf: /Pages is embedded in the catalog, not a reference")
	}

	var pages []PageContent
	visited := make(map[Reference]bool)
	if err := traverseNode(doc, pagesObj, nil, &pages, visited); err != nil {
		return nil, err
	}
	return pages, nil
}

func traverseNode(doc *Document, nodeObj Object, inherited map[string]Object, out *[]PageContent, visited map[Reference]bool) error {
	if ref, ok := nodeObj.AsReference(); ok {
		if ref.Num == 0 && ref.Gen == 0 {
			return errors.New("pdf: page tree node is the (0,0) sentinel reference")
		}
		if visited[ref] {
			return nil
		}
		visited[ref] = true
	}
	resolved := doc.Resolve(nodeObj)
	dict, ok := resolved.AsDict()
	if !ok {
		return errors.New("pdf: page tree node does not resolve to a dictionary")
	}

	resources := inherited
	if r, ok := dict["Resources"]; ok {
		if rd, ok := doc.Resolve(r).AsDict(); ok {
			resources = rd
		}
	}

	kidsObj, hasKids := dict["Kids"]
	typeName, _ := nameOf(dict["Type"])
	if typeName == "Pages" || hasKids {
		kids, ok := doc.Resolve(kidsObj).AsArray()
		if !ok {
			return errors.New("pdf: /Kids is not an array")
		}
		for _, kid := range kids {
			if err := traverseNode(doc, kid, resources, out, visited); err != nil {
				return err
			}
		}
		return nil
	}

	streams, err := collectPageContentStreams(doc, dict)
	if err != nil {
		return err
	}
	*out = append(*out, PageContent{ContentStreams: streams, Resources: resources})
	return nil
}

func nameOf(o Object) (string, bool) { return o.AsName() }

func collectPageContentStreams(doc *Document, pageDict map[string]Object) ([][]byte, error) {
	contents, ok := pageDict["Contents"]
	if !ok {
		return nil, nil
	}
	resolved := doc.Resolve(contents)

	var streamObjs []Object
	switch resolved.Kind {
	case KindStream:
		streamObjs = []Object{resolved}
	case KindArray:
		for _, elem := range resolved.Array {
			r := doc.Resolve(elem)
			if r.Kind == KindStream {
				streamObjs = append(streamObjs, r)
			}
		}
	default:
		return nil, errors.New("pdf: /Contents is neither a stream nor an array")
	}

	out := make([][]byte, 0, len(streamObjs))
	for _, s := range streamObjs {
		decoded, err := DecodeStream(s.Dict, s.StreamData)
		if err != nil {
			return nil, errors.Wrap(err, "pdf: decoding content stream")
		}
		out = append(out, decoded)
	}
	return out, nil
}
