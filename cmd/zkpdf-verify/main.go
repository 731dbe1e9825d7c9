// zkpdf-verify verifies a PDF's embedded digital signature, optionally
// checking a substring claim and printing the resulting Keccak-256
// commitment.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/seetadev/zkpdf-go/zkpdf"
)

func die(status int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(status)
}

func usage() {
	die(1, "Usage: %s [-page N -substring S -offset N] PDF-FILENAME\n"+
		"       %s -claim -page N -substring S -offset N PDF-FILENAME",
		os.Args[0], os.Args[0])
}

var (
	page      = flag.Int("page", -1, "zero-based page index for a substring claim")
	substring = flag.String("substring", "", "substring to check at -offset on -page")
	offset    = flag.Int("offset", 0, "byte offset into the page's decoded text")
	claim     = flag.Bool("claim", false, "print the ABI-encoded commitment for the claim instead of page text")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}

	pdfBytes, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		die(1, "%s", err)
	}

	switch {
	case *claim:
		runClaim(pdfBytes)
	case *substring != "" || *page >= 0:
		runVerifyText(pdfBytes)
	default:
		runVerifyAndExtract(pdfBytes)
	}
}

func runVerifyAndExtract(pdfBytes []byte) {
	doc, err := zkpdf.VerifyAndExtract(pdfBytes)
	if err != nil {
		die(2, "error: %s", err)
	}
	fmt.Printf("signature valid: %t\n", doc.Signature.IsValid)
	for i, p := range doc.Pages {
		fmt.Printf("--- page %d ---\n%s\n", i, p)
	}
}

func runVerifyText(pdfBytes []byte) {
	if *page < 0 {
		usage()
	}
	result, err := zkpdf.VerifyText(pdfBytes, *page, *substring, *offset)
	if err != nil {
		die(2, "error: %s", err)
	}
	fmt.Printf("signature valid: %t\n", result.Signature.IsValid)
	fmt.Printf("substring matches: %t\n", result.SubstringMatches)
}

func runClaim(pdfBytes []byte) {
	if *page < 0 || *page > 255 {
		die(1, "error: -page is required and must fit in a byte for -claim")
	}
	if *offset < 0 {
		die(1, "error: -offset must be non-negative")
	}
	out := zkpdf.VerifyPDFClaim(zkpdf.ClaimInput{
		PDFBytes:  pdfBytes,
		Page:      uint8(*page),
		Substring: *substring,
		Offset:    uint32(*offset),
	})
	fmt.Println(hex.EncodeToString(out.ABIEncode()))
}
