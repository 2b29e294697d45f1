package kyber

import "io"

// Marshaling is implemented by Scalars and Points that support
// fixed-length binary encoding, decoding, and human-readable rendering.
// Every concrete Scalar/Point in this module implements it.
type Marshaling interface {
	// MarshalSize returns the length in bytes of the encoded value.
	MarshalSize() int

	// MarshalBinary encodes the receiver to its fixed-length binary form.
	MarshalBinary() (data []byte, err error)

	// MarshalTo encodes the receiver, writing it to w.
	MarshalTo(w io.Writer) (int, error)

	// UnmarshalBinary decodes a fixed-length binary encoding
	// produced by MarshalBinary back into the receiver.
	UnmarshalBinary(data []byte) error

	// UnmarshalFrom reads a fixed-length binary encoding from r
	// into the receiver.
	UnmarshalFrom(r io.Reader) (int, error)

	// String returns a human-readable rendering of the value,
	// used in logs and test failure messages.
	String() string
}
