// Package transcript implements the Fiat-Shamir transcript used to turn
// interactive discrete-log proofs (DLEQ, 1-of-2 disjunctive proofs,
// Schoenmakers and compact dealer proofs) into non-interactive ones.
//
// A Transcript absorbs the ordered byte encodings of every point and
// scalar a proof's challenge depends on, then squeezes a wide (64-byte)
// output from the underlying XOF and reduces it modulo the group
// order to obtain the challenge scalar. It must never be reused across
// two different challenges: construct a fresh Transcript per proof, per
// goroutine.
package transcript

import (
	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
)

// wideLen is the number of bytes squeezed from the XOF before reducing
// modulo the group order, wide enough to make the reduction bias
// cryptographically negligible for any group order this module uses.
const wideLen = 64

// Transcript accumulates byte strings for a single Fiat-Shamir
// challenge derivation.
type Transcript struct {
	suite kyber.Suite
	xof   kyber.XOF
	done  bool
}

// New starts a fresh transcript over suite's XOF, optionally seeded
// with a domain-separation label.
func New(suite kyber.Suite, label []byte) *Transcript {
	return &Transcript{suite: suite, xof: suite.XOF(label)}
}

// AppendPoint absorbs p's marshaled encoding. It panics if p fails to
// marshal, which can only happen if p is malformed or uninitialized.
func (t *Transcript) AppendPoint(p kyber.Point) *Transcript {
	return t.appendMarshaling(p)
}

// AppendScalar absorbs s's marshaled encoding.
func (t *Transcript) AppendScalar(s kyber.Scalar) *Transcript {
	return t.appendMarshaling(s)
}

// AppendPoints absorbs each point in ps, in order.
func (t *Transcript) AppendPoints(ps ...kyber.Point) *Transcript {
	for _, p := range ps {
		t.AppendPoint(p)
	}
	return t
}

// AppendScalars absorbs each scalar in ss, in order.
func (t *Transcript) AppendScalars(ss ...kyber.Scalar) *Transcript {
	for _, s := range ss {
		t.AppendScalar(s)
	}
	return t
}

func (t *Transcript) appendMarshaling(m kyber.Marshaling) *Transcript {
	if t.done {
		panic("transcript: append after challenge")
	}
	buf, err := m.MarshalBinary()
	if err != nil {
		panic("transcript: marshal: " + err.Error())
	}
	if _, err := t.xof.Write(buf); err != nil {
		panic("transcript: write: " + err.Error())
	}
	return t
}

// Challenge squeezes wideLen bytes from the transcript and reduces
// them modulo the group order, returning the Fiat-Shamir challenge
// scalar. It zeroizes the intermediate buffer and may only be called
// once per Transcript.
func (t *Transcript) Challenge() kyber.Scalar {
	if t.done {
		panic("transcript: challenge already taken")
	}
	buf := make([]byte, wideLen)
	if _, err := t.xof.Read(buf); err != nil {
		panic("transcript: read: " + err.Error())
	}
	c := t.suite.Scalar().SetBytes(buf)
	zeroize(buf)
	t.done = true
	return c
}

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
