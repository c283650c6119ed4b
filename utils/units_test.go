package utils

import "testing"

func TestByteUnits(t *testing.T) {
	for n, expected := range map[uint64]string{
		0:          "0 B",
		1023:       "1023 B",
		1024:       "1.00 KiB",
		1536:       "1.50 KiB",
		1 << 20:    "1.00 MiB",
		5 << 30:    "5.00 GiB",
		1 << 60:    "1.00 EiB",
		^uint64(0): "16.00 EiB",
	} {
		if s := ByteUnits(n); s != expected {
			t.Errorf("%d: expected %q, got %q", n, expected, s)
		}
	}
}
