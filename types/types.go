package types

import (
	"crypto/subtle"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// MaxDigestSize is the largest digest size in bytes, SHA-512.
const MaxDigestSize = 64

// UpperHexAlphabet is the uppercase alphabet for fasthex.RawEncode.
var UpperHexAlphabet = []byte("0123456789ABCDEF")

// Digest holds the raw bytes of a computed digest.
//
//nolint:recvcheck
type Digest []byte

func MustDigestFromString(s string) Digest {
	if d, err := DigestFromString(s); err != nil {
		panic(err)
	} else {
		return d
	}
}

// DigestFromString parses hex text in either case. Empty text is a nil Digest,
// the same as an empty JSON string.
func DigestFromString(s string) (Digest, error) {
	if len(s) == 0 {
		return nil, nil
	}
	if len(s)%2 != 0 || len(s) > MaxDigestSize*2 {
		return nil, errors.New("wrong size")
	}
	if buf, err := fasthex.DecodeString(s); err != nil {
		return nil, err
	} else {
		return buf, nil
	}
}

func (d Digest) String() string {
	return fasthex.EncodeToString(d)
}

// Upper returns the uppercase hex representation.
func (d Digest) Upper() string {
	return fasthex.RawEncodeToString(d, UpperHexAlphabet)
}

// Equal compares in constant time.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d, other) == 1
}

func (d Digest) Slice() []byte {
	return d
}

func (d Digest) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(d)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], d)
	return buf, nil
}

func (d *Digest) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid digest")
	}

	if len(buf) == 2 {
		*d = nil
		return nil
	}

	if (len(buf)-2)/2 > MaxDigestSize {
		return errors.New("wrong digest size")
	}

	*d = make(Digest, (len(buf)-2)/2)

	if _, err := fasthex.Decode(*d, buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}
