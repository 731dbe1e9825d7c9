package pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePDF = "%PDF-1.4\n" +
	"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
	"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
	"3 0 obj\n<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>\nendobj\n" +
	"4 0 obj\n<< /Length 999 >>\nstream\nBT /F1 12 Tf (Hello) Tj ET\nendstream\nendobj\n" +
	"5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n" +
	"trailer\n<< /Root 1 0 R >>\n%%EOF\n"

func TestParseDocumentAndCatalog(t *testing.T) {
	doc, err := Parse([]byte(samplePDF))
	require.NoError(t, err)
	require.NotNil(t, doc.Trailer)

	cat, err := doc.Catalog()
	require.NoError(t, err)
	name, _ := cat["Type"].AsName()
	require.Equal(t, "Catalog", name)
}

func TestParseDocumentWrongLengthFallsBackToEndstreamScan(t *testing.T) {
	doc, err := Parse([]byte(samplePDF))
	require.NoError(t, err)
	streamObj, ok := doc.Get(Reference{Num: 4, Gen: 0})
	require.True(t, ok)
	require.Equal(t, KindStream, streamObj.Kind)
	require.Equal(t, "BT /F1 12 Tf (Hello) Tj ET", string(streamObj.StreamData))
}

func TestCollectPagesInheritsResources(t *testing.T) {
	doc, err := Parse([]byte(samplePDF))
	require.NoError(t, err)
	pages, err := CollectPages(doc)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Len(t, pages[0].ContentStreams, 1)
	require.Equal(t, "BT /F1 12 Tf (Hello) Tj ET", string(pages[0].ContentStreams[0]))

	fonts, ok := pages[0].Resources["Font"]
	require.True(t, ok)
	_, ok = fonts.AsDict()
	require.True(t, ok)
}

func TestCatalogRejectsSentinelRoot(t *testing.T) {
	doc := &Document{
		Objects: map[Reference]Object{},
		Trailer: map[string]Object{"Root": NewReference(0, 0)},
	}
	_, err := doc.Catalog()
	require.Error(t, err)
}

func TestResolveDanglingReferenceYieldsNull(t *testing.T) {
	doc := &Document{Objects: map[Reference]Object{}}
	got := doc.Resolve(NewReference(99, 0))
	require.Equal(t, KindNull, got.Kind)
}
