package signature

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadElementIntegerShortForm(t *testing.T) {
	// INTEGER 5
	data := []byte{0x02, 0x01, 0x05}
	el, err := newCursor(data).readElement()
	require.NoError(t, err)
	require.True(t, el.isUniversal(tagInteger))
	require.Equal(t, []byte{0x05}, el.content)
}

func TestReadElementLongFormLength(t *testing.T) {
	content := make([]byte, 200)
	for i := range content {
		content[i] = byte(i)
	}
	// OCTET STRING, long-form length: 0x81 0xC8 (200)
	data := append([]byte{0x04, 0x81, 0xC8}, content...)
	el, err := newCursor(data).readElement()
	require.NoError(t, err)
	require.True(t, el.isUniversal(tagOctetString))
	require.Equal(t, 200, len(el.content))
	require.Equal(t, content, el.content)
}

func TestReadElementTruncatedLengthErrors(t *testing.T) {
	data := []byte{0x02, 0x05, 0x01} // claims 5 bytes, only 1 present
	_, err := newCursor(data).readElement()
	require.ErrorIs(t, err, ErrDER)
}

func TestParseChildrenSequenceOfTwoIntegers(t *testing.T) {
	// SEQUENCE { INTEGER 1, INTEGER 2 }
	content := []byte{0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	els, err := parseChildren(content)
	require.NoError(t, err)
	require.Len(t, els, 2)
	require.Equal(t, big.NewInt(1), parseInteger(els[0].content))
	require.Equal(t, big.NewInt(2), parseInteger(els[1].content))
}

func TestParseOIDRsaEncryption(t *testing.T) {
	// 1.2.840.113549.1.1.1 (rsaEncryption) DER-encoded content bytes.
	content := []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x01}
	require.Equal(t, oidRSAEncryption, parseOID(content))
}

func TestParseOIDSha256(t *testing.T) {
	// 2.16.840.1.101.3.4.2.1
	content := []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}
	require.Equal(t, oidSha256, parseOID(content))
}

func TestParseIntegerTreatsLeadingZeroAsUnsigned(t *testing.T) {
	// A DER INTEGER carrying a leading 0x00 to keep a high bit from
	// reading as a sign: still represents the same positive magnitude.
	n := parseInteger([]byte{0x00, 0xFF})
	require.Equal(t, big.NewInt(255), n)
}

func TestRetagSignedAttrsSetSwapsOnlyTheTagByte(t *testing.T) {
	// [0] IMPLICIT wrapper around two bytes of content.
	el := element{raw: []byte{0xA0, 0x02, 0xAA, 0xBB}}
	got := retagSignedAttrsSet(el)
	require.Equal(t, []byte{0x31, 0x02, 0xAA, 0xBB}, got)
}
