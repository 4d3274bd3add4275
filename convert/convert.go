// Package convert implements the change-of-representation operations of
// §4.6-4.8: moving a key to an equivalent representative under rho,
// re-randomizing a signature to match, and jointly rescaling a message and
// its signature under mu.
package convert

import (
	"fmt"
	"io"

	e "github.com/cloudflare/circl/ecc/bls12381"

	"github.com/aniagut/mercurial-signature/errs"
	"github.com/aniagut/mercurial-signature/models"
	"github.com/aniagut/mercurial-signature/utils"
)

// ConvertPK moves pk to the equivalent representative rho*X_hat, in place.
func ConvertPK(pk *models.PublicKey, rho *e.Scalar) error {
	if utils.IsZeroScalar(rho) {
		return fmt.Errorf("mercurial: convert_pk: %w", errs.ErrZeroScalar)
	}
	for i := range pk.XHat {
		old := pk.XHat[i]
		pk.XHat[i].ScalarMult(rho, &old)
	}
	return nil
}

// ConvertSK moves sk to the equivalent representative rho*x, in place. It is
// only required by a party that must sign further messages under the
// converted key; a verifier that only checks signatures never needs it
// (§9's Open Question).
func ConvertSK(sk *models.SecretKey, rho *e.Scalar) error {
	if utils.IsZeroScalar(rho) {
		return fmt.Errorf("mercurial: convert_sk: %w", errs.ErrZeroScalar)
	}
	for i := range sk.X {
		sk.X[i].Mul(&sk.X[i], rho)
	}
	return nil
}

// ConvertSig re-randomizes sig in place to remain valid against a public key
// converted by the same rho, sampling a fresh psi so (Y, Y_hat) are not
// trivially linkable to the pre-conversion signature (§4.7).
func ConvertSig(rng io.Reader, sig *models.Signature, rho *e.Scalar) error {
	if utils.IsZeroScalar(rho) {
		return fmt.Errorf("mercurial: convert_sig: %w", errs.ErrZeroScalar)
	}

	psi, err := utils.RandomNonZeroScalar(rng)
	if err != nil {
		return err
	}

	applyPsiRho(sig, &psi, rho)
	return nil
}

// ChangeRepresentation jointly rescales M by mu and sig to match, in place,
// moving the message to the equivalent representative mu*M while keeping
// sig valid against it (§4.8).
func ChangeRepresentation(rng io.Reader, M models.Message, sig *models.Signature, mu *e.Scalar) error {
	if utils.IsZeroScalar(mu) {
		return fmt.Errorf("mercurial: change_representation: %w", errs.ErrZeroScalar)
	}

	psi, err := utils.RandomNonZeroScalar(rng)
	if err != nil {
		return err
	}

	for i := range M {
		old := M[i]
		M[i].ScalarMult(mu, &old)
	}

	applyPsiRho(sig, &psi, mu)
	return nil
}

// applyPsiRho is the shared randomizer step of §4.7/§4.8: it scales Z by
// psi*rho and (Y, Y_hat) by psi^-1, which preserves E1 (the psi cancels
// across the pairing) and E2 (equal scaling of both arguments).
func applyPsiRho(sig *models.Signature, psi, rho *e.Scalar) {
	var psiRho e.Scalar
	psiRho.Mul(psi, rho)

	oldZ := sig.Z
	sig.Z.ScalarMult(&psiRho, &oldZ)

	var psiInv e.Scalar
	psiInv.Inv(psi)

	oldY := sig.Y
	sig.Y.ScalarMult(&psiInv, &oldY)

	oldYHat := sig.YHat
	sig.YHat.ScalarMult(&psiInv, &oldYHat)
}

// CloneSecretKey returns a deep copy of sk, for callers who want a
// pure-return variant of ConvertSK instead of mutating the original (§9).
func CloneSecretKey(sk *models.SecretKey) *models.SecretKey {
	x := make([]e.Scalar, len(sk.X))
	copy(x, sk.X)
	return &models.SecretKey{X: x}
}

// ClonePublicKey returns a deep copy of pk.
func ClonePublicKey(pk *models.PublicKey) *models.PublicKey {
	xHat := make([]e.G2, len(pk.XHat))
	copy(xHat, pk.XHat)
	return &models.PublicKey{XHat: xHat}
}

// CloneMessage returns a deep copy of M.
func CloneMessage(M models.Message) models.Message {
	out := make(models.Message, len(M))
	copy(out, M)
	return out
}

// CloneSignature returns a deep copy of sig.
func CloneSignature(sig *models.Signature) *models.Signature {
	clone := *sig
	return &clone
}
