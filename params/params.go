// Package params constructs the shared PublicParameters and provides the
// random-message helper that proofs of correctness and tests build throwaway
// message vectors from (§4.2).
package params

import (
	"errors"
	"io"

	e "github.com/cloudflare/circl/ecc/bls12381"

	"github.com/aniagut/mercurial-signature/models"
	"github.com/aniagut/mercurial-signature/utils"
)

// New constructs the public parameters: the canonical BLS12-381 generators
// of G1 and G2. rng is accepted and checked for nil even though the
// generators themselves are deterministic; New never reads from it.
func New(rng io.Reader) (*models.PublicParameters, error) {
	if rng == nil {
		return nil, errors.New("mercurial: rng must not be nil")
	}
	return &models.PublicParameters{
		G1: e.G1Generator(),
		G2: e.G2Generator(),
	}, nil
}

// RandomMessage samples a vector of l independently uniform, nonzero G1
// elements. It exists for proofs of correctness and test fixtures; an
// application embedding this library supplies its own messages in
// production.
func RandomMessage(rng io.Reader, l int) (models.Message, error) {
	if l < 1 {
		return nil, errors.New("mercurial: message length must be >= 1")
	}
	m := make(models.Message, l)
	for i := 0; i < l; i++ {
		g, err := utils.RandomG1Element(rng)
		if err != nil {
			return nil, err
		}
		for g.IsIdentity() {
			g, err = utils.RandomG1Element(rng)
			if err != nil {
				return nil, err
			}
		}
		m[i] = g
	}
	return m, nil
}
