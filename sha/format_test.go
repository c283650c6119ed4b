package sha

import (
	"testing"

	"git.gammaspectra.live/P2Pool/sha2/types"
	"github.com/stretchr/testify/require"
)

func TestUnpack(t *testing.T) {
	raw := unpack32([]uint32{0x01020304, 0xa0b0c0d0})
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0xa0, 0xb0, 0xc0, 0xd0}, raw[:8])

	raw = unpack64([]uint64{0x0102030405060708, 0xf0e0d0c0b0a09080})
	require.Equal(t, []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0xf0, 0xe0, 0xd0, 0xc0, 0xb0, 0xa0, 0x90, 0x80,
	}, raw[:16])
}

func TestFormatDigest(t *testing.T) {
	raw := []byte{0x00, 0x1f, 0xab, 0xff}

	dst := make([]byte, FormatRaw.EncodedLen(len(raw)))
	formatDigest(dst, raw, FormatRaw)
	require.Equal(t, raw, dst)

	dst = make([]byte, FormatHexLower.EncodedLen(len(raw)))
	formatDigest(dst, raw, FormatHexLower)
	require.Equal(t, "001fabff\x00", string(dst))

	dst = make([]byte, FormatHexUpper.EncodedLen(len(raw)))
	formatDigest(dst, raw, FormatHexUpper)
	require.Equal(t, "001FABFF\x00", string(dst))

	// uppercase output matches the Digest helper sharing the alphabet
	require.Equal(t, types.Digest(raw).Upper(), string(dst[:len(dst)-1]))
	require.Equal(t, types.MaxDigestSize, MaxDigestSize)
}

func TestFormatDigestTruncated(t *testing.T) {
	// SHA-224 and SHA-512/224 drop trailing state bytes
	state := unpack64(iv512_224[:])
	dst := make([]byte, FormatHexLower.EncodedLen(Size512224))
	formatDigest(dst, state[:Size512224], FormatHexLower)
	require.Equal(t, "8c3d37c819544da273e1996689dcd4d61dfab7ae32ff9c82679dd514\x00", string(dst))
}
