package sha

import (
	"math"
	"strings"

	"github.com/dolthub/swiss"
	fasthex "github.com/tmthrgd/go-hex"
)

// Algorithm selects one of the supported hash algorithms.
type Algorithm uint8

const (
	SHA1 = Algorithm(iota)
	SHA224
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
)

// AllAlgorithms lists every supported algorithm in selector order.
var AllAlgorithms = []Algorithm{SHA1, SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256}

// Digest sizes in bytes.
const (
	Size1      = 20
	Size224    = 28
	Size256    = 32
	Size384    = 48
	Size512    = 64
	Size512224 = 28
	Size512256 = 32
)

// MaxMessageLength256 is the largest message in bytes accepted by SHA-1 and
// SHA-224/256, whose bit length must fit in 64 bits.
const MaxMessageLength256 = 1<<61 - 1

func (a Algorithm) Valid() bool {
	return a <= SHA512_256
}

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA-1"
	case SHA224:
		return "SHA-224"
	case SHA256:
		return "SHA-256"
	case SHA384:
		return "SHA-384"
	case SHA512:
		return "SHA-512"
	case SHA512_224:
		return "SHA-512/224"
	case SHA512_256:
		return "SHA-512/256"
	default:
		return "unknown"
	}
}

// DigestSize returns the size of the raw digest in bytes, or 0 for an
// invalid algorithm.
func (a Algorithm) DigestSize() int {
	switch a {
	case SHA1:
		return Size1
	case SHA224:
		return Size224
	case SHA256:
		return Size256
	case SHA384:
		return Size384
	case SHA512:
		return Size512
	case SHA512_224:
		return Size512224
	case SHA512_256:
		return Size512256
	default:
		return 0
	}
}

// BlockSize returns the compression block size in bytes.
func (a Algorithm) BlockSize() int {
	switch a {
	case SHA1, SHA224, SHA256:
		return BlockSize256
	case SHA384, SHA512, SHA512_224, SHA512_256:
		return BlockSize512
	default:
		return 0
	}
}

// MaxMessageLength returns the largest accepted message length in bytes.
func (a Algorithm) MaxMessageLength() uint64 {
	switch a {
	case SHA1, SHA224, SHA256:
		return MaxMessageLength256
	default:
		return math.MaxUint64
	}
}

var algorithmNames = func() *swiss.Map[string, Algorithm] {
	m := swiss.NewMap[string, Algorithm](uint32(len(AllAlgorithms) * 4))
	for _, a := range AllAlgorithms {
		canonical := strings.ToLower(a.String())
		m.Put(canonical, a)
		m.Put(strings.ReplaceAll(canonical, "-", ""), a)
		if strings.Contains(canonical, "/") {
			bare := strings.ReplaceAll(canonical, "-", "")
			m.Put(strings.ReplaceAll(bare, "/", "-"), a)
			m.Put(strings.ReplaceAll(bare, "/", "_"), a)
		}
	}
	return m
}()

// ParseAlgorithm looks up an algorithm by name, case-insensitively.
// Accepted spellings include "SHA-256", "sha256", "sha-512/256", "sha512/256",
// "sha512-256" and "sha512_256".
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmNames.Get(strings.ToLower(strings.TrimSpace(name))); ok {
		return a, nil
	}
	return 0, ErrInvalidAlgorithm
}

// Format selects how a digest is written to the output buffer.
type Format uint8

const (
	// FormatRaw writes the digest bytes unencoded.
	FormatRaw = Format(iota)
	// FormatHexLower writes lowercase hex followed by a zero terminator.
	FormatHexLower
	// FormatHexUpper writes uppercase hex followed by a zero terminator.
	FormatHexUpper
)

func (f Format) Valid() bool {
	return f <= FormatHexUpper
}

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatHexLower:
		return "hex"
	case FormatHexUpper:
		return "HEX"
	default:
		return "unknown"
	}
}

// EncodedLen returns the output buffer size required to hold a digest of
// n bytes in this format, including the hex terminator.
func (f Format) EncodedLen(n int) int {
	if f == FormatRaw {
		return n
	}
	return fasthex.EncodedLen(n) + 1
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "raw":
		return FormatRaw, nil
	case "hex":
		return FormatHexLower, nil
	case "HEX":
		return FormatHexUpper, nil
	default:
		return 0, ErrInvalidDigestFormat
	}
}
