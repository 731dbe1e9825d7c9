package pdf

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// DecodeStream applies the Filter chain named in dict to raw, returning the
// decoded bytes. Only FlateDecode (aliased "Flate") is implemented: the
// teacher's own parseStream never wires a third-party inflate library
// either, and nothing else in the corpus does so.
func DecodeStream(dict map[string]Object, raw []byte) ([]byte, error) {
	filter, ok := dict["Filter"]
	if !ok {
		return raw, nil
	}
	return applyFilter(filter, raw)
}

func applyFilter(filter Object, raw []byte) ([]byte, error) {
	switch filter.Kind {
	case KindName:
		return decodeOne(filter.Text, raw)
	case KindArray:
		if len(filter.Array) == 1 {
			return applyFilter(filter.Array[0], raw)
		}
		return nil, errors.Errorf("pdf: unsupported filter chain of length %d", len(filter.Array))
	default:
		return nil, errors.New("pdf: Filter entry is neither a Name nor an Array")
	}
}

func decodeOne(name string, raw []byte) ([]byte, error) {
	switch name {
	case "FlateDecode", "Flate":
		r, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(ErrDecompression, "zlib init: %v", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(ErrDecompression, "zlib inflate: %v", err)
		}
		return out, nil
	default:
		return nil, errors.Errorf("pdf: unsupported filter %q", name)
	}
}
