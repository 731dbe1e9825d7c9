// Package commitment builds the zero-knowledge commitment a zkVM circuit
// emits as its public output: Keccak-256 hashes of the verified signature
// digest, signer public key and matched substring, plus a domain-separated
// nullifier binding all three to a page/offset, and the ABI-encodable
// tuple Solidity verifier contracts consume.
package commitment

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// NullifierDomain separates this nullifier's preimage space from any
// other commitment scheme that might hash the same three values together.
const NullifierDomain = "zkpdf-nullifier-v0"

// Output is the public commitment for one verified (pdf, page, offset,
// substring) claim.
type Output struct {
	SubstringMatches bool
	MessageDigestHash [32]byte
	SignerKeyHash     [32]byte
	SubstringHash     [32]byte
	Nullifier         [32]byte
}

// Keccak256 hashes data with the legacy (pre-standardization) Keccak
// padding PDF/Ethereum tooling uses — not the same as stdlib's
// standardized SHA-3, which pads differently and would produce a
// different digest over identical input.
func Keccak256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// ComputeNullifier hashes the domain tag, the three commitment hashes and
// the page/offset into a single binding value. Byte layout: domain ||
// messageDigestHash || signerKeyHash || substringHash || page(1 byte) ||
// offset(4 bytes, big-endian).
func ComputeNullifier(messageDigestHash, signerKeyHash, substringHash [32]byte, page uint8, offset uint32) [32]byte {
	preimage := make([]byte, 0, len(NullifierDomain)+32*3+1+4)
	preimage = append(preimage, NullifierDomain...)
	preimage = append(preimage, messageDigestHash[:]...)
	preimage = append(preimage, signerKeyHash[:]...)
	preimage = append(preimage, substringHash[:]...)
	preimage = append(preimage, page)
	var offsetBE [4]byte
	binary.BigEndian.PutUint32(offsetBE[:], offset)
	preimage = append(preimage, offsetBE[:]...)
	return Keccak256(preimage)
}

// Build constructs the full Output for a verified claim: messageDigest is
// the signature's verified digest, publicKeyDER is the signer's RSA
// public key in PKCS#1 DER form, substring is the matched text, and
// page/offset locate the match within the document.
func Build(substringMatches bool, messageDigest, publicKeyDER []byte, substring string, page uint8, offset uint32) Output {
	messageDigestHash := Keccak256(messageDigest)
	signerKeyHash := Keccak256(publicKeyDER)
	substringHash := Keccak256([]byte(substring))
	nullifier := ComputeNullifier(messageDigestHash, signerKeyHash, substringHash, page, offset)

	return Output{
		SubstringMatches:  substringMatches,
		MessageDigestHash: messageDigestHash,
		SignerKeyHash:     signerKeyHash,
		SubstringHash:     substringHash,
		Nullifier:         nullifier,
	}
}

// Failure returns the all-zero commitment used when verification itself
// fails before a claim can be evaluated.
func Failure() Output {
	return Output{}
}

// ABIEncode renders the commitment as a Solidity-compatible
// (bool,bytes32,bytes32,bytes32,bytes32) tuple: five 32-byte words, all
// static types, laid out in declaration order with no offset table.
func (o Output) ABIEncode() []byte {
	out := make([]byte, 0, 32*5)
	var boolWord [32]byte
	if o.SubstringMatches {
		boolWord[31] = 1
	}
	out = append(out, boolWord[:]...)
	out = append(out, o.MessageDigestHash[:]...)
	out = append(out, o.SignerKeyHash[:]...)
	out = append(out, o.SubstringHash[:]...)
	out = append(out, o.Nullifier[:]...)
	return out
}
