package sha

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/sha2/types"
	fasthex "github.com/tmthrgd/go-hex"
)

// MaxDigestSize is the size in bytes of the largest digest, SHA-512.
const MaxDigestSize = types.MaxDigestSize

// unpack32 lays out words big-endian, the caller truncates to the digest size.
func unpack32(words []uint32) (out [MaxDigestSize]byte) {
	for i, w := range words {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}

func unpack64(words []uint64) (out [MaxDigestSize]byte) {
	for i, w := range words {
		binary.BigEndian.PutUint64(out[i*8:], w)
	}
	return out
}

// formatDigest writes raw into dst in the requested format. Hex output is
// followed by a zero terminator at dst[2*len(raw)].
// dst must be at least format.EncodedLen(len(raw)) bytes long.
func formatDigest(dst, raw []byte, format Format) {
	switch format {
	case FormatRaw:
		copy(dst, raw)
	case FormatHexLower:
		n := fasthex.Encode(dst, raw)
		dst[n] = 0
	case FormatHexUpper:
		n := fasthex.RawEncode(dst, raw, types.UpperHexAlphabet)
		dst[n] = 0
	default:
		panic("unreachable")
	}
}
