package sha

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

const (
	// BlockSize256 is the block size in bytes of SHA-1 and SHA-224/256.
	BlockSize256 = 64
	// BlockSize512 is the block size in bytes of the SHA-384/512 family.
	BlockSize512 = 128

	lengthSize256 = 8
	lengthSize512 = 16

	// padding never spans more than one block plus the length field
	padSize256 = BlockSize256 + lengthSize256
	padSize512 = BlockSize512 + lengthSize512
)

// padMessage writes into pad the bytes that conceptually follow a message of
// length bytes: the 0x80 marker, zero fill and the big-endian bit length.
// pad must be at least padSize256 or padSize512 bytes long, matching blockSize.
// It returns the number of padding bytes used and the number of blocks in the
// padded stream.
func padMessage(pad []byte, length uint64, blockSize int) (padLen int, blocks uint64) {
	suffix := lengthSize256
	if blockSize == BlockSize512 {
		suffix = lengthSize512
	}

	b := uint64(blockSize)
	r := int(length % b)
	blocks = length / b

	padLen = blockSize - r
	if r < blockSize-suffix {
		blocks++
	} else {
		// no room for the marker and length in this block, spill into the next
		padLen += blockSize
		blocks += 2
	}

	clear(pad[:padLen])
	pad[0] = 0x80

	bitLength := uint128.From64(length).Lsh(3)
	if suffix == lengthSize512 {
		bitLength.PutBytesBE(pad[padLen-suffix : padLen])
	} else {
		binary.BigEndian.PutUint64(pad[padLen-suffix:padLen], bitLength.Lo)
	}

	return padLen, blocks
}
