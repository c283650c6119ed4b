package sha

// Error is a hash computation status code. A nil error means the digest was
// computed.
type Error uint8

const (
	ErrInvalidAlgorithm = Error(iota + 1)
	ErrInvalidDigestFormat
	ErrUnsupportedDataSize
	ErrNullMessagePointer
	ErrNullDigestPointer
	// ErrShortMessage is returned when the declared length exceeds the message slice.
	ErrShortMessage
	// ErrShortDigestBuffer is returned when the output slice cannot hold the digest in the requested format.
	ErrShortDigestBuffer
)

func (e Error) Error() string {
	switch e {
	case ErrInvalidAlgorithm:
		return "invalid algorithm"
	case ErrInvalidDigestFormat:
		return "invalid digest format"
	case ErrUnsupportedDataSize:
		return "unsupported data size"
	case ErrNullMessagePointer:
		return "nil message with non-zero length"
	case ErrNullDigestPointer:
		return "nil digest buffer"
	case ErrShortMessage:
		return "message shorter than declared length"
	case ErrShortDigestBuffer:
		return "digest buffer too small"
	default:
		return "unknown error"
	}
}
