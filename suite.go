package kyber

// Suite bundles a Group with the extendable-output hash used to build
// Fiat-Shamir transcripts and to seed deterministic Scalar/Point
// picking (internal/transcript, proof packages).
type Suite interface {
	Group

	// XOF returns a new extendable-output hash keyed by seed. A nil
	// seed returns an XOF seeded only from its own internal default.
	XOF(seed []byte) XOF
}
