package pdf

import "github.com/pkg/errors"

// ErrDecompression is returned (optionally wrapped) when a stream filter
// fails, mirroring the distinction the reference implementation draws
// between a structural parse error and a codec failure.
var ErrDecompression = errors.New("pdf: stream decompression failed")
