package signature

import (
	"bytes"
	"crypto"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"math/big"

	"github.com/pkg/errors"
)

// Result is the outcome of verifying a PDF's embedded signature: whether
// it is cryptographically valid, the digest it was computed over, and the
// signer's public key in PKCS#1 DER form — both values the commitment
// layer's hashes bind to.
type Result struct {
	IsValid       bool
	MessageDigest []byte
	PublicKeyDER  []byte
	Modulus       *big.Int
	Exponent      int
}

func hashForOID(oid string) (crypto.Hash, error) {
	switch oid {
	case oidSha1:
		return crypto.SHA1, nil
	case oidSha256:
		return crypto.SHA256, nil
	case oidSha384:
		return crypto.SHA384, nil
	case oidSha512:
		return crypto.SHA512, nil
	}
	return 0, ErrUnsupportedDigest
}

// hashForSignatureAlgorithm resolves the combined *WithRSAEncryption OIDs
// directly; plain rsaEncryption means "digest algorithm is carried
// separately", which the caller resolves via the SignerInfo's own
// digestAlgorithm field instead.
func hashForSignatureAlgorithm(oid string) (crypto.Hash, bool, error) {
	switch oid {
	case oidSha1WithRSA:
		return crypto.SHA1, true, nil
	case oidSha256WithRSA:
		return crypto.SHA256, true, nil
	case oidSha384WithRSA:
		return crypto.SHA384, true, nil
	case oidSha512WithRSA:
		return crypto.SHA512, true, nil
	case oidRSAEncryption:
		return 0, false, nil
	}
	return 0, false, ErrUnsupportedAlgorithm
}

func sumHash(h crypto.Hash, data []byte) []byte {
	switch h {
	case crypto.SHA1:
		sum := sha1.Sum(data)
		return sum[:]
	case crypto.SHA256:
		sum := sha256.Sum256(data)
		return sum[:]
	case crypto.SHA384:
		sum := sha512.Sum384(data)
		return sum[:]
	case crypto.SHA512:
		sum := sha512.Sum512(data)
		return sum[:]
	}
	return nil
}

// VerifyPDFSignature verifies the detached PKCS#7 signature embedded in
// pdfBytes: it locates /ByteRange and /Contents, reconstructs the signed
// byte span, and checks (1) the signedAttrs messageDigest (if present)
// against the actual hash of the signed bytes, then (2) the RSA
// signature itself, over signedAttrs when present or over the raw
// content digest otherwise.
func VerifyPDFSignature(pdfBytes []byte) (*Result, error) {
	br, err := ParseByteRange(pdfBytes)
	if err != nil {
		return nil, err
	}
	signedBytes := ExtractSignedData(pdfBytes, br)

	der, err := ExtractSignatureDER(pdfBytes, br)
	if err != nil {
		return nil, err
	}

	sd, err := ParseSignedData(der)
	if err != nil {
		return nil, err
	}

	cert, ok := FindCertificateBySerial(sd.Certificates, sd.SignerInfo.SerialNumber)
	if !ok {
		return nil, ErrNoMatchingCert
	}

	digestHash, err := hashForOID(sd.SignerInfo.DigestAlgorithmOID)
	if err != nil {
		return nil, err
	}
	calculatedDigest := sumHash(digestHash, signedBytes)

	result := &Result{MessageDigest: calculatedDigest, Modulus: cert.Modulus, Exponent: cert.Exponent}

	if sd.SignerInfo.HasSignedAttrs {
		if !bytes.Equal(sd.SignerInfo.MessageDigest, calculatedDigest) {
			return nil, &MessageDigestMismatchError{
				Expected:   sd.SignerInfo.MessageDigest,
				Calculated: calculatedDigest,
			}
		}
	}

	signedOverHash := digestHash
	var signedOverDigest []byte
	if sd.SignerInfo.HasSignedAttrs {
		signedOverDigest = sumHash(digestHash, sd.SignerInfo.SignedAttrsRaw)
	} else {
		signedOverDigest = calculatedDigest
	}

	if sigHash, explicit, err := hashForSignatureAlgorithm(sd.SignerInfo.SignatureAlgorithmOID); err != nil {
		return nil, err
	} else if explicit {
		signedOverHash = sigHash
	}

	pub := &rsa.PublicKey{N: cert.Modulus, E: cert.Exponent}
	result.PublicKeyDER = x509.MarshalPKCS1PublicKey(pub)

	verifyErr := rsa.VerifyPKCS1v15(pub, signedOverHash, signedOverDigest, sd.SignerInfo.Signature)
	result.IsValid = verifyErr == nil
	if verifyErr != nil && !errors.Is(verifyErr, rsa.ErrVerification) {
		return nil, errors.Wrap(verifyErr, "signature: rsa verification")
	}

	return result, nil
}
