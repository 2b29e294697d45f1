package pis

import (
	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/share"
	"github.com/KULeuven-COSIC/ppvss-evoting/wire"
)

// MarshalBinary encodes a ballot in the field order: encrypted shares,
// dealer proof (D, Z coefficients), encrypted vote, vote proof
// (A0,A1,B0,B1,D0,D1,R0,R1 — C is re-derived on verify and not sent).
func (r *VoteResult) MarshalBinary(g kyber.Group) ([]byte, error) {
	w := wire.NewWriter(g)
	if err := w.Points(r.EncryptedShares); err != nil {
		return nil, err
	}
	if err := w.Scalar(r.DealerProof.D); err != nil {
		return nil, err
	}
	if err := w.Scalars(r.DealerProof.Z.Coeffs()); err != nil {
		return nil, err
	}
	if err := w.Point(r.EncryptedVote); err != nil {
		return nil, err
	}
	vp := r.VoteProof
	for _, p := range []kyber.Point{vp.A0, vp.A1, vp.B0, vp.B1} {
		if err := w.Point(p); err != nil {
			return nil, err
		}
	}
	for _, s := range []kyber.Scalar{vp.D0, vp.D1, vp.R0, vp.R1} {
		if err := w.Scalar(s); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// UnmarshalVoteResult decodes a ballot produced by VoteResult.MarshalBinary.
func UnmarshalVoteResult(g kyber.Group, data []byte) (*VoteResult, error) {
	r := wire.NewReader(g, data)
	var result VoteResult
	var err error

	if result.EncryptedShares, err = r.Points(); err != nil {
		return nil, err
	}
	proof := &DealerProof{}
	if proof.D, err = r.Scalar(); err != nil {
		return nil, err
	}
	coeffs, err := r.Scalars()
	if err != nil {
		return nil, err
	}
	proof.Z = share.FromCoeffs(g, coeffs)
	result.DealerProof = proof

	if result.EncryptedVote, err = r.Point(); err != nil {
		return nil, err
	}

	vp := &VoteProof{}
	if vp.A0, err = r.Point(); err != nil {
		return nil, err
	}
	if vp.A1, err = r.Point(); err != nil {
		return nil, err
	}
	if vp.B0, err = r.Point(); err != nil {
		return nil, err
	}
	if vp.B1, err = r.Point(); err != nil {
		return nil, err
	}
	if vp.D0, err = r.Scalar(); err != nil {
		return nil, err
	}
	if vp.D1, err = r.Scalar(); err != nil {
		return nil, err
	}
	if vp.R0, err = r.Scalar(); err != nil {
		return nil, err
	}
	if vp.R1, err = r.Scalar(); err != nil {
		return nil, err
	}
	result.VoteProof = vp

	return &result, nil
}
