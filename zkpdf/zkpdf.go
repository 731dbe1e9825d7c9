// Package zkpdf is the public entry point: verify a PDF's embedded
// digital signature, extract its page text, and check whether a claimed
// substring appears at a claimed byte offset on a claimed page — with a
// Keccak-256 commitment output suitable as a zero-knowledge circuit's
// public values.
package zkpdf

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/seetadev/zkpdf-go/commitment"
	"github.com/seetadev/zkpdf-go/pdf"
	"github.com/seetadev/zkpdf-go/signature"
	"github.com/seetadev/zkpdf-go/text"
)

// ErrSignatureInvalid is returned by VerifyAndExtract and VerifyText when
// the embedded signature parses but does not verify; the check runs before
// any page text is extracted, so callers never see text from such a
// document.
var ErrSignatureInvalid = errors.New("zkpdf: signature is not valid")

// ErrPageOutOfRange is returned by VerifyText when the requested page
// index has no corresponding page.
var ErrPageOutOfRange = errors.New("zkpdf: page index out of range")

// VerifiedDocument is the result of VerifyAndExtract: per-page extracted
// text plus the signature verification result it depended on.
type VerifiedDocument struct {
	Pages     []string
	Signature *signature.Result
}

// VerifyAndExtract verifies pdfBytes' embedded signature and, only if it
// is valid, extracts the text of every page. A structurally valid PDF
// with an invalid signature is an error, never a partial success.
func VerifyAndExtract(pdfBytes []byte) (*VerifiedDocument, error) {
	sigResult, doc, pages, err := verifyAndParse(pdfBytes)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(pages))
	for i, p := range pages {
		texts[i] = text.ExtractPageText(doc, p)
	}

	return &VerifiedDocument{Pages: texts, Signature: sigResult}, nil
}

// TextClaimResult is the result of VerifyText: whether the requested
// substring was found at the requested offset, plus the signature
// verification result it depended on.
type TextClaimResult struct {
	SubstringMatches bool
	Signature        *signature.Result
}

// VerifyText verifies pdfBytes' embedded signature, then checks whether
// page pageIndex's decoded text, read starting at byte offset, begins
// with substring. pageIndex is zero-based; an out-of-range index is an
// error rather than a false match.
func VerifyText(pdfBytes []byte, pageIndex int, substring string, offset int) (*TextClaimResult, error) {
	sigResult, doc, pages, err := verifyAndParse(pdfBytes)
	if err != nil {
		return nil, err
	}

	if pageIndex < 0 || pageIndex >= len(pages) {
		return nil, ErrPageOutOfRange
	}

	pageText := text.ExtractPageText(doc, pages[pageIndex])
	matches := substringMatchesAt(pageText, substring, offset)

	return &TextClaimResult{SubstringMatches: matches, Signature: sigResult}, nil
}

// substringMatchesAt reports whether pageText, viewed as a byte string
// starting at byte offset, begins with substring. A negative or
// out-of-range offset never matches.
func substringMatchesAt(pageText string, substring string, offset int) bool {
	if offset < 0 || offset > len(pageText) {
		return false
	}
	return strings.HasPrefix(pageText[offset:], substring)
}

// ClaimInput is the circuit façade's input: the PDF bytes plus the
// (page, substring, offset) claim to verify.
type ClaimInput struct {
	PDFBytes  []byte
	Page      uint8
	Substring string
	Offset    uint32
}

// VerifyPDFClaim is the zkVM circuit entry point: it runs VerifyText and,
// on success, folds the signature digest, signer public key and matched
// substring into a Keccak-256 commitment. Any error collapses to the
// all-zero failure commitment instead of propagating, so the circuit
// always has a fixed-shape public output.
func VerifyPDFClaim(input ClaimInput) commitment.Output {
	result, err := VerifyText(input.PDFBytes, int(input.Page), input.Substring, int(input.Offset))
	if err != nil {
		return commitment.Failure()
	}

	return commitment.Build(
		result.SubstringMatches,
		result.Signature.MessageDigest,
		result.Signature.PublicKeyDER,
		input.Substring,
		input.Page,
		input.Offset,
	)
}

// verifyAndParse is the shared prelude of VerifyAndExtract and
// VerifyText: verify the signature, fail fast if it is invalid, then
// parse the PDF structure and collect its pages.
func verifyAndParse(pdfBytes []byte) (*signature.Result, *pdf.Document, []pdf.PageContent, error) {
	sigResult, err := signature.VerifyPDFSignature(pdfBytes)
	if err != nil {
		return nil, nil, nil, err
	}
	if !sigResult.IsValid {
		return nil, nil, nil, ErrSignatureInvalid
	}

	doc, err := pdf.Parse(pdfBytes)
	if err != nil {
		return nil, nil, nil, err
	}

	pages, err := pdf.CollectPages(doc)
	if err != nil {
		return nil, nil, nil, err
	}

	return sigResult, doc, pages, nil
}
