// Package signature verifies a detached PKCS#7 (CMS SignedData) signature
// embedded in a PDF's /ByteRange + /Contents signature dictionary, using a
// hand-rolled positional DER cursor rather than reflection-based ASN.1
// decoding, so the exact encoded bytes of signedAttrs can be recovered for
// hashing.
package signature

import "github.com/pkg/errors"

var (
	ErrByteRangeNotFound    = errors.New("signature: /ByteRange not found")
	ErrByteRangeMalformed   = errors.New("signature: /ByteRange malformed")
	ErrByteRangeOutOfBounds = errors.New("signature: /ByteRange out of bounds")
	ErrContentsNotFound     = errors.New("signature: /Contents not found")
	ErrContentsMalformed    = errors.New("signature: /Contents malformed hex string")

	ErrDER                  = errors.New("signature: malformed DER")
	ErrStructure            = errors.New("signature: unexpected PKCS#7 structure")
	ErrUnsupportedDigest    = errors.New("signature: unsupported digest algorithm OID")
	ErrMissingMessageDigest = errors.New("signature: signedAttrs missing messageDigest")
	ErrNoMatchingCert       = errors.New("signature: no certificate matches signer serial number")
	ErrUnsupportedAlgorithm = errors.New("signature: unsupported signature algorithm")
	ErrInvalidPublicKey     = errors.New("signature: invalid RSA public key")
)

// MessageDigestMismatchError reports that the signedAttrs' messageDigest
// attribute does not equal the hash actually computed over the signed bytes.
type MessageDigestMismatchError struct {
	Expected   []byte
	Calculated []byte
}

func (e *MessageDigestMismatchError) Error() string {
	return "signature: messageDigest mismatch"
}
