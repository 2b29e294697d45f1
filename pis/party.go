package pis

import (
	"crypto/cipher"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/transcript"
)

// ShareProof is a party's Fiat-Shamir proof that its decrypted share
// is consistent with its public key and encrypted share. Identical in
// shape to the Schoenmakers variant's proof: the compactness of Π_S is
// a dealer-side property, not a party-side one.
type ShareProof struct {
	D kyber.Scalar
	Z kyber.Scalar
}

// Party holds one participant's key material and protocol state. Index
// is 1-based and addresses slot Index (not Index-1) of the n+1-length
// encrypted-share arrays, since slot 0 is reserved for PK0.
type Party struct {
	suite kyber.Suite
	G, PK0 kyber.Point

	PrivateKey kyber.Scalar
	PublicKey  kyber.Point
	Index      int
	N, T       int

	ShareProof     *ShareProof
	EncryptedShare kyber.Point
	DecryptedShare kyber.Point

	DealerProof *DealerProof

	PublicKeys      []kyber.Point
	EncryptedShares []kyber.Point
	DecryptedShares []kyber.Point
	ShareProofs     []*ShareProof
	ValidatedShares []int
}

// NewParty generates a fresh key pair for party index (1-based) and
// validates the threshold parameters n == 2t+1.
func NewParty(suite kyber.Suite, G, PK0 kyber.Point, rand cipher.Stream, n, t, index int) (*Party, error) {
	if !(index <= n && t < n && n == 2*t+1) {
		return nil, errs.InvalidParameterSet(n, t, index)
	}
	sk := suite.Scalar().Pick(rand)
	pk := suite.Point().Mul(sk, G)
	return &Party{
		suite: suite, G: G, PK0: PK0,
		PrivateKey: sk, PublicKey: pk,
		Index: index, N: n, T: t,
	}, nil
}

// IngestEncryptedShares records the dealer's n+1-length encrypted
// share array (slot 0 under PK0, slots 1..n under the parties) and the
// caller's own slot.
func (p *Party) IngestEncryptedShares(encShares []kyber.Point) error {
	if len(encShares) != p.N+1 {
		return errs.CountMismatch(p.N+1, "shares (PK0 + parties)", len(encShares), "encrypted shares")
	}
	p.EncryptedShares = encShares
	p.EncryptedShare = encShares[p.Index]
	return nil
}

// IngestPublicKeys splices the caller's own public key into peers (the
// other n-1 parties' public keys, in their natural order) at index-1.
func (p *Party) IngestPublicKeys(peers []kyber.Point) error {
	if len(peers) != p.N-1 {
		return errs.CountMismatch(p.N-1, "peers", len(peers), "public keys")
	}
	pks := make([]kyber.Point, 0, p.N)
	pks = append(pks, peers[:p.Index-1]...)
	pks = append(pks, p.PublicKey)
	pks = append(pks, peers[p.Index-1:]...)
	p.PublicKeys = pks
	return nil
}

// IngestDealerProof records the dealer's compact challenge/response
// polynomial.
func (p *Party) IngestDealerProof(proof *DealerProof) error {
	if proof == nil || proof.Z == nil {
		return errs.InvalidProof("missing response polynomial")
	}
	if proof.D.Equal(p.suite.Scalar().Zero()) {
		return errs.InvalidProof("challenge is zero")
	}
	p.DealerProof = proof
	return nil
}

// IngestDecryptedSharesAndProofs splices the caller's own decrypted
// share and proof into the other n-1 parties' contributions at
// index-1. Unlike the encrypted-share array, decrypted shares and
// their proofs are addressed 0..n-1 (one per real party, never PK0's
// slot, which no party holds a private key for).
func (p *Party) IngestDecryptedSharesAndProofs(peerShares []kyber.Point, peerProofs []*ShareProof) error {
	if len(peerShares) != p.N-1 {
		return errs.CountMismatch(p.N-1, "peers", len(peerShares), "decrypted shares")
	}
	if len(peerProofs) != len(peerShares) {
		return errs.CountMismatch(len(peerShares), "shares", len(peerProofs), "proofs")
	}
	if p.DecryptedShare == nil || p.ShareProof == nil {
		return errs.UninitializedValue("party.decrypted_share/share_proof")
	}
	shares := make([]kyber.Point, 0, p.N)
	shares = append(shares, peerShares[:p.Index-1]...)
	shares = append(shares, p.DecryptedShare)
	shares = append(shares, peerShares[p.Index-1:]...)

	proofs := make([]*ShareProof, 0, p.N)
	proofs = append(proofs, peerProofs[:p.Index-1]...)
	proofs = append(proofs, p.ShareProof)
	proofs = append(proofs, peerProofs[p.Index-1:]...)

	p.DecryptedShares = shares
	p.ShareProofs = proofs
	return nil
}

// DecryptShare computes this party's decrypted share
// encrypted_share * private_key^-1.
func (p *Party) DecryptShare() error {
	if p.EncryptedShare == nil {
		return errs.UninitializedValue("party.encrypted_share")
	}
	inv := p.suite.Scalar().Inv(p.PrivateKey)
	p.DecryptedShare = p.suite.Point().Mul(inv, p.EncryptedShare)
	return nil
}

// DleqShare produces the Fiat-Shamir proof that DecryptedShare and
// EncryptedShare were derived from the same PrivateKey that produced
// PublicKey: a dlog-equality proof with bases G and DecryptedShare.
func (p *Party) DleqShare(rand cipher.Stream) error {
	if p.DecryptedShare == nil || p.EncryptedShare == nil {
		return errs.UninitializedValue("party.decrypted_share/encrypted_share")
	}
	r := p.suite.Scalar().Pick(rand)
	a1 := p.suite.Point().Mul(r, p.G)
	a2 := p.suite.Point().Mul(r, p.DecryptedShare)

	t := transcript.New(p.suite, []byte("pis/party"))
	t.AppendPoint(p.PublicKey)
	t.AppendPoint(p.EncryptedShare)
	t.AppendPoint(a1)
	t.AppendPoint(a2)
	c := t.Challenge()

	z := p.suite.Scalar().Mul(c, p.PrivateKey)
	z.Add(r, z)

	p.ShareProof = &ShareProof{D: c, Z: z}
	return nil
}

// VerifyDecryptedShares checks every peer's share proof against slots
// 1..n of EncryptedShares (slot 0, under PK0, is never decrypted by a
// party) and records the indices that verify. It returns true if more
// than t+1 shares validated.
func (p *Party) VerifyDecryptedShares() (bool, error) {
	if p.PublicKeys == nil || p.EncryptedShares == nil {
		return false, errs.UninitializedValue("party.public_keys/encrypted_shares")
	}
	if p.DecryptedShares == nil || p.ShareProofs == nil {
		return false, errs.UninitializedValue("party.decrypted_shares/share_proofs")
	}

	var validated []int
	for i := 0; i < p.N; i++ {
		d, z := p.ShareProofs[i].D, p.ShareProofs[i].Z
		pk, encShare, decShare := p.PublicKeys[i], p.EncryptedShares[i+1], p.DecryptedShares[i]

		a1 := p.suite.Point().Sub(
			p.suite.Point().Mul(z, p.G),
			p.suite.Point().Mul(d, pk),
		)
		a2 := p.suite.Point().Sub(
			p.suite.Point().Mul(z, decShare),
			p.suite.Point().Mul(d, encShare),
		)

		t := transcript.New(p.suite, []byte("pis/party"))
		t.AppendPoint(pk)
		t.AppendPoint(encShare)
		t.AppendPoint(a1)
		t.AppendPoint(a2)
		reconstructed := t.Challenge()

		if d.Equal(reconstructed) {
			validated = append(validated, i)
		}
	}
	p.ValidatedShares = validated
	return len(validated) > p.T+1, nil
}

// ReconstructSecret recovers G-times-the-shared-secret from the
// validated decrypted shares using the precomputed Lagrange
// coefficients, taking the first t+1 validated indices.
func (p *Party) ReconstructSecret(lambdas []kyber.Scalar) (kyber.Point, error) {
	if p.DecryptedShares == nil {
		return nil, errs.UninitializedValue("party.decrypted_shares")
	}
	acc := p.suite.Point().Null()
	count := p.T + 1
	if count > len(p.ValidatedShares) {
		count = len(p.ValidatedShares)
	}
	for _, idx := range p.ValidatedShares[:count] {
		acc.Add(acc, p.suite.Point().Mul(lambdas[idx], p.DecryptedShares[idx]))
	}
	return acc, nil
}
