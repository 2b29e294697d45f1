// Package blake3 provides an implementation of kyber.XOF based on the
// BLAKE3 extendable-output function, the hash this module's Fiat-Shamir
// transcripts are built on.
package blake3

import (
	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/zeebo/blake3"
)

type xof struct {
	h   *blake3.Hasher
	out *blake3.OutputReader
	key []byte
}

// New creates a new XOF seeded with seed.
func New(seed []byte) kyber.XOF {
	h := blake3.New()
	h.Write(seed)
	return &xof{h: h}
}

func (x *xof) Clone() kyber.XOF {
	hCopy := *x.h
	return &xof{h: &hCopy}
}

func (x *xof) Reseed() {
	key := make([]byte, 128)
	x.Read(key)
	h := blake3.New()
	h.Write(key)
	x.h = h
	x.out = nil
}

func (x *xof) reader() *blake3.OutputReader {
	if x.out == nil {
		x.out = x.h.Digest()
	}
	return x.out
}

func (x *xof) Read(dst []byte) (int, error) {
	return x.reader().Read(dst)
}

func (x *xof) Write(src []byte) (int, error) {
	if x.out != nil {
		panic("blake3: Write after Read")
	}
	return x.h.Write(src)
}

func (x *xof) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("blake3: dst too short")
	}
	if len(x.key) < len(src) {
		x.key = make([]byte, len(src))
	}
	n, err := x.Read(x.key[0:len(src)])
	if err != nil {
		panic("blake3: error reading keystream: " + err.Error())
	}
	if n != len(src) {
		panic("blake3: short read on keystream")
	}
	for i := range src {
		dst[i] = src[i] ^ x.key[i]
	}
}
