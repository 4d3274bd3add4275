package verify

import (
	"crypto/rand"
	"testing"

	e "github.com/cloudflare/circl/ecc/bls12381"
	"github.com/stretchr/testify/assert"

	"github.com/aniagut/mercurial-signature/keygen"
	"github.com/aniagut/mercurial-signature/models"
	"github.com/aniagut/mercurial-signature/params"
	"github.com/aniagut/mercurial-signature/sign"
	"github.com/aniagut/mercurial-signature/utils"
)

func setup(t *testing.T, l int) (*models.PublicParameters, *models.PublicKey, *models.SecretKey, models.Message, *models.Signature) {
	t.Helper()
	pp, err := params.New(rand.Reader)
	assert.NoError(t, err)
	pk, sk, err := keygen.KeyGen(rand.Reader, pp, l)
	assert.NoError(t, err)
	M, err := params.RandomMessage(rand.Reader, l)
	assert.NoError(t, err)
	sig, err := sign.Sign(rand.Reader, pp, sk, M)
	assert.NoError(t, err)
	return pp, pk, sk, M, sig
}

func TestVerifyHappyPath(t *testing.T) {
	pp, pk, _, M, sig := setup(t, 10)
	ok, err := Verify(pp, pk, M, sig)
	assert.NoError(t, err)
	assert.True(t, ok, "a freshly produced signature should verify")
}

func TestVerifyRejectsLengthMismatch(t *testing.T) {
	pp, pk, _, M, sig := setup(t, 10)
	_, err := Verify(pp, pk, M[:5], sig)
	assert.Error(t, err, "verify should report a length mismatch as an error")
}

func TestVerifyRejectsIdentityMessageComponent(t *testing.T) {
	pp, pk, _, M, sig := setup(t, 5)
	var identity e.G1
	identity.SetIdentity()
	M[0] = identity

	ok, err := Verify(pp, pk, M, sig)
	assert.NoError(t, err, "an identity message component is rejected, not errored")
	assert.False(t, ok)
}

func TestVerifyTamperedZ(t *testing.T) {
	pp, pk, _, M, sig := setup(t, 10)

	tampered := *sig
	tampered.Z.Add(&tampered.Z, pp.G1)

	ok, err := Verify(pp, pk, M, &tampered)
	assert.NoError(t, err)
	assert.False(t, ok, "a tampered Z should fail verification")
}

func TestVerifyTamperedMessageComponent(t *testing.T) {
	pp, pk, _, M, sig := setup(t, 10)

	other, err := utils.RandomG1Element(rand.Reader)
	assert.NoError(t, err)
	M[0] = other

	ok, err := Verify(pp, pk, M, sig)
	assert.NoError(t, err)
	assert.False(t, ok, "tampering one message component should fail verification")
}

func TestVerifyCrossKeyForgery(t *testing.T) {
	pp, _, _, M, sig := setup(t, 10)
	otherPk, _, err := keygen.KeyGen(rand.Reader, pp, 10)
	assert.NoError(t, err)

	ok, err := Verify(pp, otherPk, M, sig)
	assert.NoError(t, err)
	assert.False(t, ok, "a signature should not verify under an unrelated key")
}
