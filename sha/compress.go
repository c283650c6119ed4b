package sha

// compress160 runs the SHA-1 compression function over message and its
// padding, folding every block into h.
func compress160(h *[5]uint32, message []byte) {
	var pad [padSize256]byte
	padLen, blocks := padMessage(pad[:], uint64(len(message)), BlockSize256)
	m := newPaddedMessage(message, pad[:padLen], BlockSize256)

	var w [80]uint32

	for i := range blocks {
		t := 0
		for ; t < 16; t++ {
			w[t] = m.word32(i, t)
		}
		for ; t < 80; t++ {
			w[t] = rotl32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
		}

		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

		t = 0
		for ; t < 20; t++ {
			tmp := wrapSum(rotl32(a, 5), ch(b, c, d), e, k1_0, w[t])
			a, b, c, d, e = tmp, a, rotl32(b, 30), c, d
		}
		for ; t < 40; t++ {
			tmp := wrapSum(rotl32(a, 5), parity(b, c, d), e, k1_1, w[t])
			a, b, c, d, e = tmp, a, rotl32(b, 30), c, d
		}
		for ; t < 60; t++ {
			tmp := wrapSum(rotl32(a, 5), maj(b, c, d), e, k1_2, w[t])
			a, b, c, d, e = tmp, a, rotl32(b, 30), c, d
		}
		for ; t < 80; t++ {
			tmp := wrapSum(rotl32(a, 5), parity(b, c, d), e, k1_3, w[t])
			a, b, c, d, e = tmp, a, rotl32(b, 30), c, d
		}

		h[0] = wrapAdd(h[0], a)
		h[1] = wrapAdd(h[1], b)
		h[2] = wrapAdd(h[2], c)
		h[3] = wrapAdd(h[3], d)
		h[4] = wrapAdd(h[4], e)
	}
}

// compress256 runs the SHA-224/256 compression function.
func compress256(h *[8]uint32, message []byte) {
	var pad [padSize256]byte
	padLen, blocks := padMessage(pad[:], uint64(len(message)), BlockSize256)
	m := newPaddedMessage(message, pad[:padLen], BlockSize256)

	var w [64]uint32

	for i := range blocks {
		t := 0
		for ; t < 16; t++ {
			w[t] = m.word32(i, t)
		}
		for ; t < 64; t++ {
			w[t] = wrapSum(smallSigma1_256(w[t-2]), w[t-7], smallSigma0_256(w[t-15]), w[t-16])
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for t = 0; t < 64; t++ {
			t1 := wrapSum(hh, bigSigma1_256(e), ch(e, f, g), k256(t), w[t])
			t2 := wrapAdd(bigSigma0_256(a), maj(a, b, c))

			hh = g
			g = f
			f = e
			e = wrapAdd(d, t1)
			d = c
			c = b
			b = a
			a = wrapAdd(t1, t2)
		}

		h[0] = wrapAdd(h[0], a)
		h[1] = wrapAdd(h[1], b)
		h[2] = wrapAdd(h[2], c)
		h[3] = wrapAdd(h[3], d)
		h[4] = wrapAdd(h[4], e)
		h[5] = wrapAdd(h[5], f)
		h[6] = wrapAdd(h[6], g)
		h[7] = wrapAdd(h[7], hh)
	}
}

// compress512 runs the SHA-384/512 compression function, shared by the
// truncated SHA-512/t variants.
func compress512(h *[8]uint64, message []byte) {
	var pad [padSize512]byte
	padLen, blocks := padMessage(pad[:], uint64(len(message)), BlockSize512)
	m := newPaddedMessage(message, pad[:padLen], BlockSize512)

	var w [80]uint64

	for i := range blocks {
		t := 0
		for ; t < 16; t++ {
			w[t] = m.word64(i, t)
		}
		for ; t < 80; t++ {
			w[t] = wrapSum(smallSigma1_512(w[t-2]), w[t-7], smallSigma0_512(w[t-15]), w[t-16])
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for t = 0; t < 80; t++ {
			t1 := wrapSum(hh, bigSigma1_512(e), ch(e, f, g), k512[t], w[t])
			t2 := wrapAdd(bigSigma0_512(a), maj(a, b, c))

			hh = g
			g = f
			f = e
			e = wrapAdd(d, t1)
			d = c
			c = b
			b = a
			a = wrapAdd(t1, t2)
		}

		h[0] = wrapAdd(h[0], a)
		h[1] = wrapAdd(h[1], b)
		h[2] = wrapAdd(h[2], c)
		h[3] = wrapAdd(h[3], d)
		h[4] = wrapAdd(h[4], e)
		h[5] = wrapAdd(h[5], f)
		h[6] = wrapAdd(h[6], g)
		h[7] = wrapAdd(h[7], hh)
	}
}
