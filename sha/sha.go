// Package sha implements the SHA-1 and SHA-2 hash algorithms as defined in
// FIPS 180-4 over complete in-memory messages.
//
// Every entry point takes the caller's output buffer, the message, its length
// and an output Format. The padded message is never materialised: padding is
// kept in a small call-local buffer and read alongside the message.
//
// All state is call-local, entry points are safe for concurrent use.
package sha

import (
	"git.gammaspectra.live/P2Pool/sha2/types"
)

// validate checks the arguments of a call in a fixed order, so the same
// malformed call always reports the same error.
func (a Algorithm) validate(digest, message []byte, length uint64, format Format) error {
	if digest == nil {
		return ErrNullDigestPointer
	}
	if message == nil && length > 0 {
		return ErrNullMessagePointer
	}
	if length > a.MaxMessageLength() {
		return ErrUnsupportedDataSize
	}
	if !format.Valid() {
		return ErrInvalidDigestFormat
	}
	if length > uint64(len(message)) {
		return ErrShortMessage
	}
	if len(digest) < format.EncodedLen(a.DigestSize()) {
		return ErrShortDigestBuffer
	}
	return nil
}

func (a Algorithm) sum(digest, message []byte, length uint64, format Format) error {
	if err := a.validate(digest, message, length, format); err != nil {
		return err
	}
	message = message[:length]

	var raw [MaxDigestSize]byte
	switch a {
	case SHA1:
		h := iv1
		compress160(&h, message)
		raw = unpack32(h[:])
	case SHA224, SHA256:
		h := iv256
		if a == SHA224 {
			h = iv224
		}
		compress256(&h, message)
		raw = unpack32(h[:])
	case SHA384, SHA512, SHA512_224, SHA512_256:
		var h [8]uint64
		switch a {
		case SHA384:
			h = iv384
		case SHA512:
			h = iv512
		case SHA512_224:
			h = iv512_224
		case SHA512_256:
			h = iv512_256
		}
		compress512(&h, message)
		raw = unpack64(h[:])
	}

	formatDigest(digest, raw[:a.DigestSize()], format)
	return nil
}

// Sum1 computes the SHA-1 digest of message[:length] into digest.
func Sum1(digest, message []byte, length uint64, format Format) error {
	return SHA1.sum(digest, message, length, format)
}

// Sum224 computes the SHA-224 digest of message[:length] into digest.
func Sum224(digest, message []byte, length uint64, format Format) error {
	return SHA224.sum(digest, message, length, format)
}

// Sum256 computes the SHA-256 digest of message[:length] into digest.
func Sum256(digest, message []byte, length uint64, format Format) error {
	return SHA256.sum(digest, message, length, format)
}

// Sum384 computes the SHA-384 digest of message[:length] into digest.
func Sum384(digest, message []byte, length uint64, format Format) error {
	return SHA384.sum(digest, message, length, format)
}

// Sum512 computes the SHA-512 digest of message[:length] into digest.
func Sum512(digest, message []byte, length uint64, format Format) error {
	return SHA512.sum(digest, message, length, format)
}

// Sum512_224 computes the SHA-512/224 digest of message[:length] into digest.
func Sum512_224(digest, message []byte, length uint64, format Format) error {
	return SHA512_224.sum(digest, message, length, format)
}

// Sum512_256 computes the SHA-512/256 digest of message[:length] into digest.
func Sum512_256(digest, message []byte, length uint64, format Format) error {
	return SHA512_256.sum(digest, message, length, format)
}

// Sum dispatches to the entry point of algorithm.
// It returns ErrInvalidAlgorithm for an unknown selector.
func Sum(algorithm Algorithm, digest, message []byte, length uint64, format Format) error {
	switch algorithm {
	case SHA1:
		return Sum1(digest, message, length, format)
	case SHA224:
		return Sum224(digest, message, length, format)
	case SHA256:
		return Sum256(digest, message, length, format)
	case SHA384:
		return Sum384(digest, message, length, format)
	case SHA512:
		return Sum512(digest, message, length, format)
	case SHA512_224:
		return Sum512_224(digest, message, length, format)
	case SHA512_256:
		return Sum512_256(digest, message, length, format)
	default:
		return ErrInvalidAlgorithm
	}
}

// Digest returns the raw digest of message.
// It panics if a is not a valid algorithm.
func (a Algorithm) Digest(message []byte) types.Digest {
	var buf [MaxDigestSize]byte
	digest := buf[:a.DigestSize()]
	if err := Sum(a, digest, message, uint64(len(message)), FormatRaw); err != nil {
		panic(err)
	}
	return types.Digest(digest)
}

// Hex returns the hex encoded digest of message, without terminator.
// It panics if a is not a valid algorithm.
func (a Algorithm) Hex(message []byte, upper bool) string {
	format := FormatHexLower
	if upper {
		format = FormatHexUpper
	}
	var buf [MaxDigestSize*2 + 1]byte
	n := a.DigestSize() * 2
	if err := Sum(a, buf[:n+1], message, uint64(len(message)), format); err != nil {
		panic(err)
	}
	return string(buf[:n])
}
