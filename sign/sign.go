// Package sign implements signing for the mercurial signature scheme
// (§4.4): binding a vector message to a secret key under a single hidden
// scalar y shared across the three signature components.
package sign

import (
	"fmt"
	"io"

	e "github.com/cloudflare/circl/ecc/bls12381"
	"golang.org/x/exp/slices"

	"github.com/aniagut/mercurial-signature/errs"
	"github.com/aniagut/mercurial-signature/models"
	"github.com/aniagut/mercurial-signature/utils"
)

// Sign produces a signature sigma = (Z, Y, Y_hat) on M under sk. It requires
// |M| = |sk| and M_i != O for every i.
func Sign(rng io.Reader, pp *models.PublicParameters, sk *models.SecretKey, M models.Message) (*models.Signature, error) {
	if len(M) != len(sk.X) {
		return nil, fmt.Errorf("mercurial: sign: |M|=%d != |sk|=%d: %w", len(M), len(sk.X), errs.ErrLengthMismatch)
	}
	if idx := slices.IndexFunc(M, func(m e.G1) bool { return m.IsIdentity() }); idx != -1 {
		return nil, fmt.Errorf("mercurial: sign: M[%d] is the identity element: %w", idx, errs.ErrIdentityElement)
	}

	y, err := utils.RandomNonZeroScalar(rng)
	if err != nil {
		return nil, err
	}

	var yInv e.Scalar
	yInv.Inv(&y)

	var Y e.G1
	Y.ScalarMult(&yInv, pp.G1)

	var YHat e.G2
	YHat.ScalarMult(&yInv, pp.G2)

	var acc e.G1
	acc.SetIdentity()
	for i := range M {
		mi := M[i]
		var term e.G1
		term.ScalarMult(&sk.X[i], &mi)
		acc.Add(&acc, &term)
	}

	var Z e.G1
	Z.ScalarMult(&y, &acc)

	return &models.Signature{Z: Z, Y: Y, YHat: YHat}, nil
}
