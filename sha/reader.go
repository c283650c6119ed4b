package sha

import "encoding/binary"

// paddedMessage is a read-only view of a message followed by its padding.
// The two parts are never concatenated, words are assembled from whichever
// buffer holds each byte.
type paddedMessage struct {
	message   []byte
	pad       []byte
	blockSize uint64
}

func newPaddedMessage(message, pad []byte, blockSize int) paddedMessage {
	return paddedMessage{
		message:   message,
		pad:       pad,
		blockSize: uint64(blockSize),
	}
}

func (m paddedMessage) at(i uint64) byte {
	if length := uint64(len(m.message)); i >= length {
		return m.pad[i-length]
	}
	return m.message[i]
}

// word32 returns the big-endian 32-bit word at index word of block.
func (m paddedMessage) word32(block uint64, word int) uint32 {
	const size = 4
	start := block*m.blockSize + uint64(word)*size
	length := uint64(len(m.message))

	if start+size <= length {
		return binary.BigEndian.Uint32(m.message[start:])
	}
	if start >= length {
		return binary.BigEndian.Uint32(m.pad[start-length:])
	}

	// word straddles the end of the message
	var w uint32
	for i := range uint64(size) {
		w = w<<8 | uint32(m.at(start+i))
	}
	return w
}

// word64 returns the big-endian 64-bit word at index word of block.
func (m paddedMessage) word64(block uint64, word int) uint64 {
	const size = 8
	start := block*m.blockSize + uint64(word)*size
	length := uint64(len(m.message))

	if start+size <= length {
		return binary.BigEndian.Uint64(m.message[start:])
	}
	if start >= length {
		return binary.BigEndian.Uint64(m.pad[start-length:])
	}

	var w uint64
	for i := range uint64(size) {
		w = w<<8 | uint64(m.at(start+i))
	}
	return w
}
