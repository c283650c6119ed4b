package sha

// word is any of the two state word widths used by the compression routines.
type word interface {
	~uint32 | ~uint64
}

// wrapSum adds all addends modulo 2^32 or 2^64 depending on T.
// Go unsigned arithmetic wraps, so the order of addends does not matter.
func wrapSum[T word](addends ...T) (sum T) {
	for _, v := range addends {
		sum += v
	}
	return sum
}

func wrapAdd[T word](a, b T) T {
	return a + b
}
