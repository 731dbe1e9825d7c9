package text

import (
	"testing"

	"github.com/seetadev/zkpdf-go/pdf"
	"github.com/stretchr/testify/require"
)

func TestCollectFontsResolvesNameEncoding(t *testing.T) {
	doc := &pdf.Document{Objects: map[pdf.Reference]pdf.Object{}}
	fontDict := pdf.NewDict(map[string]pdf.Object{
		"Subtype":  pdf.NewName("Type1"),
		"BaseFont": pdf.NewName("Helvetica"),
		"Encoding": pdf.NewName("WinAnsiEncoding"),
	})
	resources := map[string]pdf.Object{
		"Font": pdf.NewDict(map[string]pdf.Object{"F1": fontDict}),
	}

	fonts := CollectFonts(doc, resources)
	require.Len(t, fonts, 1)
	require.Equal(t, "Helvetica", fonts["F1"].BaseName)
	require.Equal(t, "WinAnsiEncoding", fonts["F1"].Encoding)
}

func TestCollectFontsFollowsReference(t *testing.T) {
	ref := pdf.Reference{Num: 5, Gen: 0}
	fontDict := pdf.NewDict(map[string]pdf.Object{
		"Subtype":  pdf.NewName("Type1"),
		"BaseFont": pdf.NewName("Times"),
	})
	doc := &pdf.Document{Objects: map[pdf.Reference]pdf.Object{ref: fontDict}}
	resources := map[string]pdf.Object{
		"Font": pdf.NewDict(map[string]pdf.Object{"F1": pdf.NewReference(ref.Num, ref.Gen)}),
	}

	fonts := CollectFonts(doc, resources)
	require.Equal(t, "Times", fonts["F1"].BaseName)
}

func TestApplyEncodingDictDifferences(t *testing.T) {
	doc := &pdf.Document{Objects: map[pdf.Reference]pdf.Object{}}
	encDict := pdf.NewDict(map[string]pdf.Object{
		"BaseEncoding": pdf.NewName("WinAnsiEncoding"),
		"Differences": pdf.NewArray([]pdf.Object{
			pdf.NewNumber(65),
			pdf.NewName("bullet"),
			pdf.NewName("Euro"),
		}),
	})
	fontDict := pdf.NewDict(map[string]pdf.Object{
		"Subtype":  pdf.NewName("Type1"),
		"BaseFont": pdf.NewName("F1"),
		"Encoding": encDict,
	})
	resources := map[string]pdf.Object{
		"Font": pdf.NewDict(map[string]pdf.Object{"F1": fontDict}),
	}

	fonts := CollectFonts(doc, resources)
	f := fonts["F1"]
	require.Equal(t, "WinAnsiEncoding", f.Encoding)
	require.Equal(t, "bullet", f.Differences[65])
	require.Equal(t, "Euro", f.Differences[66])
}

func TestCollectFontsMissingResourceDictYieldsEmpty(t *testing.T) {
	doc := &pdf.Document{Objects: map[pdf.Reference]pdf.Object{}}
	fonts := CollectFonts(doc, map[string]pdf.Object{})
	require.Empty(t, fonts)
}

func TestCollectFontsNilResourcesYieldsEmpty(t *testing.T) {
	doc := &pdf.Document{Objects: map[pdf.Reference]pdf.Object{}}
	fonts := CollectFonts(doc, nil)
	require.Empty(t, fonts)
}
