package sha

import "math/bits"

func rotl32(x uint32, n int) uint32 { return bits.RotateLeft32(x, n) }
func rotr32(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }
func rotl64(x uint64, n int) uint64 { return bits.RotateLeft64(x, n) }
func rotr64(x uint64, n int) uint64 { return bits.RotateLeft64(x, -n) }

// ch selects bits of y where x is set, and bits of z otherwise.
func ch[T word](x, y, z T) T {
	return (x & y) ^ (^x & z)
}

// maj is set wherever at least two of x, y, z are set.
func maj[T word](x, y, z T) T {
	return (x & y) ^ (x & z) ^ (y & z)
}

func parity[T word](x, y, z T) T {
	return x ^ y ^ z
}

// SHA-224/256 functions, FIPS 180-4 section 4.1.2

func bigSigma0_256(x uint32) uint32 {
	return rotr32(x, 2) ^ rotr32(x, 13) ^ rotr32(x, 22)
}

func bigSigma1_256(x uint32) uint32 {
	return rotr32(x, 6) ^ rotr32(x, 11) ^ rotr32(x, 25)
}

func smallSigma0_256(x uint32) uint32 {
	return rotr32(x, 7) ^ rotr32(x, 18) ^ (x >> 3)
}

func smallSigma1_256(x uint32) uint32 {
	return rotr32(x, 17) ^ rotr32(x, 19) ^ (x >> 10)
}

// SHA-384/512 functions, FIPS 180-4 section 4.1.3

func bigSigma0_512(x uint64) uint64 {
	return rotr64(x, 28) ^ rotr64(x, 34) ^ rotr64(x, 39)
}

func bigSigma1_512(x uint64) uint64 {
	return rotr64(x, 14) ^ rotr64(x, 18) ^ rotr64(x, 41)
}

func smallSigma0_512(x uint64) uint64 {
	return rotr64(x, 1) ^ rotr64(x, 8) ^ (x >> 7)
}

func smallSigma1_512(x uint64) uint64 {
	return rotr64(x, 19) ^ rotr64(x, 61) ^ (x >> 6)
}
