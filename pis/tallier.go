package pis

import (
	"crypto/cipher"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
)

// Tallier binds a Party to the aggregated view of a Board it has
// observed: it ingests the board's summed encrypted shares as if they
// were a single dealer's output, then decrypts and proves its share
// exactly as a plain Party would.
type Tallier struct {
	*Party
	board *Board
}

// NewTallier constructs a fresh Party for this tallier's index and
// pairs it with board.
func NewTallier(suite kyber.Suite, G, PK0 kyber.Point, rand cipher.Stream, n, t, index int, board *Board) (*Tallier, error) {
	p, err := NewParty(suite, G, PK0, rand, n, t, index)
	if err != nil {
		return nil, err
	}
	return &Tallier{Party: p, board: board}, nil
}

// GenerateTalliers constructs one Tallier per index 1..n, all sharing
// the same board.
func GenerateTalliers(suite kyber.Suite, G, PK0 kyber.Point, rand cipher.Stream, n, t int, board *Board) ([]*Tallier, error) {
	talliers := make([]*Tallier, n)
	for i := 1; i <= n; i++ {
		t2, err := NewTallier(suite, G, PK0, rand, n, t, i, board)
		if err != nil {
			return nil, err
		}
		talliers[i-1] = t2
	}
	return talliers, nil
}

// IngestBoardTally feeds the board's aggregated encrypted shares into
// the underlying Party as if they were a single dealer's output.
func (t *Tallier) IngestBoardTally() error {
	return t.Party.IngestEncryptedShares(t.board.SumEncryptedShares())
}
