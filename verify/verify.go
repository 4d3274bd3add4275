// Package verify implements verification for the mercurial signature scheme
// (§4.5): the two pairing equations that bind a signature to a message and
// a public key.
package verify

import (
	"fmt"

	e "github.com/cloudflare/circl/ecc/bls12381"
	"golang.org/x/exp/slices"

	"github.com/aniagut/mercurial-signature/errs"
	"github.com/aniagut/mercurial-signature/models"
)

// Verify checks sigma = (Z, Y, Y_hat) against M and pk. A length mismatch is
// reported as an error; every other rejection (an identity element where
// forbidden, or a failed pairing equation) is reported as (false, nil) so a
// caller can treat Verify as a total boolean predicate over well-formed
// inputs.
func Verify(pp *models.PublicParameters, pk *models.PublicKey, M models.Message, sig *models.Signature) (bool, error) {
	if len(M) != len(pk.XHat) {
		return false, fmt.Errorf("mercurial: verify: |M|=%d != |pk|=%d: %w", len(M), len(pk.XHat), errs.ErrLengthMismatch)
	}

	if slices.ContainsFunc(M, func(m e.G1) bool { return m.IsIdentity() }) {
		return false, nil
	}
	if sig.Y.IsIdentity() || sig.YHat.IsIdentity() {
		return false, nil
	}

	// E1: Pi_i e(M_i, X_hat_i) = e(Z, Y_hat)
	var left e.Gt
	left.SetIdentity()
	for i := range M {
		mi := M[i]
		xi := pk.XHat[i]
		term := e.Pair(&mi, &xi)
		left.Mul(&left, term)
	}
	right := e.Pair(&sig.Z, &sig.YHat)
	if !left.IsEqual(right) {
		return false, nil
	}

	// E2: e(Y, P_hat) = e(P, Y_hat)
	l2 := e.Pair(&sig.Y, pp.G2)
	r2 := e.Pair(pp.G1, &sig.YHat)
	if !l2.IsEqual(r2) {
		return false, nil
	}

	return true, nil
}
