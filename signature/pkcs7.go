package signature

import "math/big"

const (
	oidSignedData    = "1.2.840.113549.1.7.2"
	oidRSAEncryption = "1.2.840.113549.1.1.1"
	oidMessageDigest = "1.2.840.113549.1.9.4"

	oidSha1WithRSA   = "1.2.840.113549.1.1.5"
	oidSha256WithRSA = "1.2.840.113549.1.1.11"
	oidSha384WithRSA = "1.2.840.113549.1.1.12"
	oidSha512WithRSA = "1.2.840.113549.1.1.13"

	oidSha1   = "1.3.14.3.2.26"
	oidSha256 = "2.16.840.1.101.3.4.2.1"
	oidSha384 = "2.16.840.1.101.3.4.2.2"
	oidSha512 = "2.16.840.1.101.3.4.2.3"
)

// Certificate is the subset of an X.509 certificate this package needs:
// enough to match a SignerInfo to its signing certificate and to recover
// its RSA public key.
type Certificate struct {
	SerialNumber *big.Int
	Modulus      *big.Int
	Exponent     int
}

// SignerInfo is one CMS SignerInfo, with signedAttrs kept in both parsed
// (MessageDigest) and raw-for-hashing (SignedAttrsRaw) form.
type SignerInfo struct {
	SerialNumber          *big.Int
	DigestAlgorithmOID    string
	SignatureAlgorithmOID string
	HasSignedAttrs        bool
	SignedAttrsRaw        []byte
	MessageDigest         []byte
	Signature             []byte
}

// SignedData is a parsed CMS SignedData content type, reduced to what PDF
// signature verification needs.
type SignedData struct {
	Certificates []Certificate
	SignerInfo   SignerInfo
}

// ParseSignedData walks a detached PKCS#7/CMS SignedData DER blob
// positionally (never through reflection-based ASN.1 decoding), so the
// exact encoded bytes backing signedAttrs can be recovered for hashing.
func ParseSignedData(der []byte) (*SignedData, error) {
	top, err := newCursor(der).readElement()
	if err != nil || !top.isUniversal(tagSequence) {
		return nil, ErrStructure
	}
	ciChildren, err := parseChildren(top.content)
	if err != nil || len(ciChildren) < 2 {
		return nil, ErrStructure
	}
	if !ciChildren[0].isUniversal(tagOID) || parseOID(ciChildren[0].content) != oidSignedData {
		return nil, ErrStructure
	}

	wrapper := ciChildren[1]
	if wrapper.class != classContextSpecific || wrapper.number != 0 {
		return nil, ErrStructure
	}
	signedDataEl, err := explicitOrDirectSequence(wrapper)
	if err != nil {
		return nil, err
	}

	sdChildren, err := parseChildren(signedDataEl.content)
	if err != nil || len(sdChildren) < 3 {
		return nil, ErrStructure
	}

	var certs []Certificate
	var signerInfosEl *element
	for i := len(sdChildren) - 1; i >= 0; i-- {
		el := sdChildren[i]
		if el.isUniversal(tagSet) {
			e := el
			signerInfosEl = &e
			break
		}
	}
	for _, el := range sdChildren {
		if el.class == classContextSpecific && el.number == 0 && el.constructed {
			certs, err = parseCertificates(el)
			if err != nil {
				return nil, err
			}
			break
		}
	}
	if signerInfosEl == nil {
		return nil, ErrStructure
	}

	siWrapper, err := parseChildren(signerInfosEl.content)
	if err != nil || len(siWrapper) == 0 {
		return nil, ErrStructure
	}
	signerInfo, err := parseSignerInfo(siWrapper[0])
	if err != nil {
		return nil, err
	}

	return &SignedData{Certificates: certs, SignerInfo: signerInfo}, nil
}

// explicitOrDirectSequence handles a [0] EXPLICIT wrapper whose content is
// itself a SEQUENCE TLV (the common case), tolerating producers that write
// the content as if the SEQUENCE tag had been replaced in place.
func explicitOrDirectSequence(wrapper element) (element, error) {
	inner, err := newCursor(wrapper.content).readElement()
	if err != nil {
		return element{}, ErrStructure
	}
	if inner.isUniversal(tagSequence) {
		return inner, nil
	}
	return element{}, ErrStructure
}

func parseCertificates(el element) ([]Certificate, error) {
	certEls, err := parseChildren(el.content)
	if err != nil {
		return nil, ErrStructure
	}
	// An EXPLICIT [0] holds one SET or SEQUENCE of certificates; descend
	// into it when that single child is not itself a certificate.
	if len(certEls) == 1 && (certEls[0].isUniversal(tagSet) || certEls[0].isUniversal(tagSequence)) {
		if _, err := parseCertificate(certEls[0]); err != nil {
			if inner, err := parseChildren(certEls[0].content); err == nil {
				certEls = inner
			}
		}
	}
	out := make([]Certificate, 0, len(certEls))
	for _, certEl := range certEls {
		cert, err := parseCertificate(certEl)
		if err != nil {
			continue
		}
		out = append(out, cert)
	}
	return out, nil
}

func parseCertificate(certEl element) (Certificate, error) {
	if !certEl.isUniversal(tagSequence) {
		return Certificate{}, ErrStructure
	}
	certChildren, err := parseChildren(certEl.content)
	if err != nil || len(certChildren) == 0 {
		return Certificate{}, ErrStructure
	}
	tbsChildren, err := parseChildren(certChildren[0].content)
	if err != nil || len(tbsChildren) == 0 {
		return Certificate{}, ErrStructure
	}

	idx := 0
	if tbsChildren[idx].class == classContextSpecific && tbsChildren[idx].number == 0 {
		idx++
	}
	if idx >= len(tbsChildren) || !tbsChildren[idx].isUniversal(tagInteger) {
		return Certificate{}, ErrStructure
	}
	serial := parseInteger(tbsChildren[idx].content)
	idx += 4 // serialNumber, signature, issuer, validity
	idx++    // subject
	if idx >= len(tbsChildren) {
		return Certificate{}, ErrStructure
	}
	spki := tbsChildren[idx]

	modulus, exponent, err := parseSubjectPublicKeyInfo(spki)
	if err != nil {
		return Certificate{}, err
	}
	return Certificate{SerialNumber: serial, Modulus: modulus, Exponent: exponent}, nil
}

func parseSubjectPublicKeyInfo(spki element) (*big.Int, int, error) {
	spkiChildren, err := parseChildren(spki.content)
	if err != nil || len(spkiChildren) < 2 {
		return nil, 0, ErrInvalidPublicKey
	}
	algChildren, err := parseChildren(spkiChildren[0].content)
	if err != nil || len(algChildren) == 0 || !algChildren[0].isUniversal(tagOID) {
		return nil, 0, ErrInvalidPublicKey
	}
	if parseOID(algChildren[0].content) != oidRSAEncryption {
		return nil, 0, ErrUnsupportedAlgorithm
	}
	bitString := spkiChildren[1]
	if !bitString.isUniversal(tagBitString) || len(bitString.content) < 1 {
		return nil, 0, ErrInvalidPublicKey
	}
	rsaKeyDER := bitString.content[1:] // skip unused-bits count byte
	rsaEl, err := newCursor(rsaKeyDER).readElement()
	if err != nil || !rsaEl.isUniversal(tagSequence) {
		return nil, 0, ErrInvalidPublicKey
	}
	rsaChildren, err := parseChildren(rsaEl.content)
	if err != nil || len(rsaChildren) < 2 {
		return nil, 0, ErrInvalidPublicKey
	}
	modulus := parseInteger(rsaChildren[0].content)
	exponent := parseInteger(rsaChildren[1].content)
	if !exponent.IsInt64() {
		return nil, 0, ErrInvalidPublicKey
	}
	return modulus, int(exponent.Int64()), nil
}

func parseSignerInfo(siEl element) (SignerInfo, error) {
	if !siEl.isUniversal(tagSequence) {
		return SignerInfo{}, ErrStructure
	}
	siChildren, err := parseChildren(siEl.content)
	if err != nil || len(siChildren) < 5 {
		return SignerInfo{}, ErrStructure
	}

	sidChildren, err := parseChildren(siChildren[1].content)
	if err != nil || len(sidChildren) == 0 {
		return SignerInfo{}, ErrStructure
	}
	serial := parseInteger(sidChildren[len(sidChildren)-1].content)

	digestAlgChildren, err := parseChildren(siChildren[2].content)
	if err != nil || len(digestAlgChildren) == 0 {
		return SignerInfo{}, ErrStructure
	}
	digestOID := parseOID(digestAlgChildren[0].content)

	idx := 3
	var signedAttrsEl element
	hasSignedAttrs := false
	if idx < len(siChildren) && siChildren[idx].class == classContextSpecific && siChildren[idx].number == 0 {
		signedAttrsEl = siChildren[idx]
		hasSignedAttrs = true
		idx++
	}
	if idx+1 >= len(siChildren) {
		return SignerInfo{}, ErrStructure
	}
	sigAlgChildren, err := parseChildren(siChildren[idx].content)
	if err != nil || len(sigAlgChildren) == 0 {
		return SignerInfo{}, ErrStructure
	}
	sigAlgOID := parseOID(sigAlgChildren[0].content)
	idx++

	if idx >= len(siChildren) || !siChildren[idx].isUniversal(tagOctetString) {
		return SignerInfo{}, ErrStructure
	}
	signature := siChildren[idx].content

	info := SignerInfo{
		SerialNumber:          serial,
		DigestAlgorithmOID:    digestOID,
		SignatureAlgorithmOID: sigAlgOID,
		HasSignedAttrs:        hasSignedAttrs,
		Signature:             signature,
	}
	if hasSignedAttrs {
		info.SignedAttrsRaw = retagSignedAttrsSet(signedAttrsEl)
		attrs, err := parseChildren(signedAttrsEl.content)
		if err != nil {
			return SignerInfo{}, ErrStructure
		}
		for _, attr := range attrs {
			attrChildren, err := parseChildren(attr.content)
			if err != nil || len(attrChildren) < 2 {
				continue
			}
			if parseOID(attrChildren[0].content) != oidMessageDigest {
				continue
			}
			valueChildren, err := parseChildren(attrChildren[1].content)
			if err != nil || len(valueChildren) == 0 {
				continue
			}
			info.MessageDigest = valueChildren[0].content
		}
		if info.MessageDigest == nil {
			return SignerInfo{}, ErrMissingMessageDigest
		}
	}
	return info, nil
}

// FindCertificateBySerial searches certs for the one whose serial number
// matches the signer's issuerAndSerialNumber — never "use the first
// certificate", since a chain can carry intermediates the signer isn't.
func FindCertificateBySerial(certs []Certificate, serial *big.Int) (Certificate, bool) {
	for _, c := range certs {
		if c.SerialNumber != nil && serial != nil && c.SerialNumber.Cmp(serial) == 0 {
			return c, true
		}
	}
	return Certificate{}, false
}
