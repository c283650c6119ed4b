package utils

import (
	"errors"
	"io"
	"math"
	"os"
	"slices"
)

// ReadAllProgressive reads r until EOF into memory. The buffer starts at
// sizeHint, at most 64 KiB when the hint is unknown, and doubles each time it fills.
func ReadAllProgressive(r io.Reader, sizeHint int) ([]byte, error) {
	if sizeHint <= 0 {
		sizeHint = math.MaxUint16 + 1
	}

	// one extra byte so a reader of exactly sizeHint reports EOF without growing
	buf := make([]byte, 0, sizeHint+1)

	for {
		if len(buf) == cap(buf) {
			// double size
			buf = slices.Grow(buf, cap(buf))
		}

		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			return buf, err
		}
	}
}

// ReadFile loads a whole file into memory, using its size as the initial
// buffer size. Files that grow while being read are still read in full.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sizeHint int
	if fi, err := f.Stat(); err == nil && fi.Size() < math.MaxInt32 {
		sizeHint = int(fi.Size())
	}

	return ReadAllProgressive(f, sizeHint)
}
