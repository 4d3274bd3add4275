package utils

import (
	"crypto/rand"
	"testing"

	e "github.com/cloudflare/circl/ecc/bls12381"
	"github.com/stretchr/testify/assert"
)

func TestRandomScalar(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	assert.NoError(t, err, "RandomScalar should not return an error")
	assert.NotNil(t, s, "scalar should not be nil")
}

func TestRandomNonZeroScalarNeverZero(t *testing.T) {
	for i := 0; i < 50; i++ {
		s, err := RandomNonZeroScalar(rand.Reader)
		assert.NoError(t, err, "RandomNonZeroScalar should not return an error")
		assert.False(t, IsZeroScalar(&s), "sampled scalar should never be zero")
	}
}

func TestIsZeroScalar(t *testing.T) {
	var zero e.Scalar
	zero.SetUint64(0)
	assert.True(t, IsZeroScalar(&zero), "the zero scalar should be reported as zero")

	var one e.Scalar
	one.SetUint64(1)
	assert.False(t, IsZeroScalar(&one), "the scalar 1 should not be reported as zero")
}

func TestRandomG1ElementNotIdentity(t *testing.T) {
	g, err := RandomG1Element(rand.Reader)
	assert.NoError(t, err, "RandomG1Element should not return an error")
	assert.False(t, g.IsIdentity(), "sampled G1 element should not be the identity with overwhelming probability")
}

func TestRandomG2ElementNotIdentity(t *testing.T) {
	g, err := RandomG2Element(rand.Reader)
	assert.NoError(t, err, "RandomG2Element should not return an error")
	assert.False(t, g.IsIdentity(), "sampled G2 element should not be the identity with overwhelming probability")
}

func TestSerializeNonEmpty(t *testing.T) {
	g1, err := RandomG1Element(rand.Reader)
	assert.NoError(t, err)
	assert.NotEmpty(t, SerializeG1(&g1), "G1 serialization should not be empty")

	g2, err := RandomG2Element(rand.Reader)
	assert.NoError(t, err)
	assert.NotEmpty(t, SerializeG2(&g2), "G2 serialization should not be empty")

	s, err := RandomScalar(rand.Reader)
	assert.NoError(t, err)
	assert.NotEmpty(t, SerializeScalar(&s), "scalar serialization should not be empty")
}

func TestHashToScalarDeterministic(t *testing.T) {
	a, err := HashToScalar([]byte("hello"), []byte("world"))
	assert.NoError(t, err)
	b, err := HashToScalar([]byte("hello"), []byte("world"))
	assert.NoError(t, err)
	assert.True(t, a.IsEqual(&b) == 1, "HashToScalar should be deterministic for identical inputs")

	c, err := HashToScalar([]byte("hello"), []byte("there"))
	assert.NoError(t, err)
	assert.False(t, a.IsEqual(&c) == 1, "HashToScalar should differ for different inputs with overwhelming probability")
}

func TestSerializedReaderConcurrentSafe(t *testing.T) {
	safe := SerializedReader(rand.Reader)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			buf := make([]byte, 16)
			_, _ = safe.Read(buf)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
