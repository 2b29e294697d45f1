package kyber

import (
	"crypto/cipher"
	"io"
)

// XOF is an extendable output function: a cryptographic primitive that
// absorbs arbitrary input and can be read from, or used as a keystream,
// for an arbitrary number of bytes. This module's Fiat-Shamir
// transcripts (internal/transcript) and Scalar.Pick/Point.Pick both
// build on XOF implementations.
type XOF interface {
	cipher.Stream

	// Write absorbs more data into the XOF's state. It never returns
	// an error.
	io.Writer

	// Read squeezes output bytes from the XOF's current state. It
	// never returns an error, and always fills dst completely.
	io.Reader

	// Clone returns an independent copy of the XOF in its current
	// state.
	Clone() XOF

	// Reseed folds 128 bytes of its own output back in as a fresh
	// seed, after which the prior state cannot be recovered from the
	// new one.
	Reseed()
}
