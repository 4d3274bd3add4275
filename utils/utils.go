// Package utils provides the random-sampling and serialization building
// blocks the scheme is built from: uniform scalars in Fr, nonzero scalars,
// pseudo-random elements of G1/G2 for tests and proofs of correctness, and
// the canonical byte encodings of §6 delegated to the circl curve library.
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
	"math/big"
	"sync"

	e "github.com/cloudflare/circl/ecc/bls12381"
	"golang.org/x/crypto/hkdf"
)

// OrderAsBigInt returns the order r of the scalar field as a big.Int.
func OrderAsBigInt() *big.Int {
	return new(big.Int).SetBytes(e.Order())
}

// RandomScalar samples a scalar uniformly from Fr using rng.
func RandomScalar(rng io.Reader) (e.Scalar, error) {
	order := OrderAsBigInt()
	bigIntScalar, err := rand.Int(rng, order)
	if err != nil {
		return e.Scalar{}, errors.New("mercurial: failed to generate random scalar")
	}

	var scalar e.Scalar
	scalar.SetBytes(bigIntScalar.Bytes())
	return scalar, nil
}

// RandomNonZeroScalar samples a scalar uniformly from Fr \ {0} by
// loop-until-nonzero rejection sampling, per §7's "sampling routines that
// require nonzero output must loop-until-nonzero" policy.
func RandomNonZeroScalar(rng io.Reader) (e.Scalar, error) {
	for {
		s, err := RandomScalar(rng)
		if err != nil {
			return e.Scalar{}, err
		}
		if !IsZeroScalar(&s) {
			return s, nil
		}
	}
}

// IsZeroScalar reports whether s is the zero element of Fr.
func IsZeroScalar(s *e.Scalar) bool {
	var zero e.Scalar
	zero.SetUint64(0)
	return s.IsEqual(&zero) == 1
}

// RandomG1Element samples a pseudo-random element of G1 for use in proofs of
// correctness and test fixtures. rng's output is expanded with HKDF before
// being hashed to the curve, giving the domain-separated hash-to-curve input
// proper key-derivation hygiene instead of raw random bytes.
func RandomG1Element(rng io.Reader) (e.G1, error) {
	expanded, err := expandRandomness(rng, []byte("mercurial-signature-g1"), 48)
	if err != nil {
		return e.G1{}, err
	}
	var h e.G1
	h.Hash(expanded, []byte("mercurial-signature-dst-g1"))
	return h, nil
}

// RandomG2Element samples a pseudo-random element of G2, analogous to
// RandomG1Element.
func RandomG2Element(rng io.Reader) (e.G2, error) {
	expanded, err := expandRandomness(rng, []byte("mercurial-signature-g2"), 96)
	if err != nil {
		return e.G2{}, err
	}
	var h e.G2
	h.Hash(expanded, []byte("mercurial-signature-dst-g2"))
	return h, nil
}

func expandRandomness(rng io.Reader, info []byte, outLen int) ([]byte, error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, errors.New("mercurial: failed to generate random seed for hash-to-curve")
	}
	out := make([]byte, outLen)
	kdf := hkdf.New(sha256.New, seed, nil, info)
	if _, err := io.ReadFull(kdf, out); err != nil {
		return nil, errors.New("mercurial: failed to expand randomness for hash-to-curve")
	}
	return out, nil
}

// HashToScalar hashes a series of byte slices into a scalar in Fr. It is not
// used by the core sign/verify path (§4.4/§4.5 have no Fiat-Shamir
// challenge); it is exposed for callers who, per the Design Notes' remark
// on malleability, want to bind a context tag into a message component at a
// higher layer.
func HashToScalar(inputs ...[]byte) (e.Scalar, error) {
	hash := sha256.New()
	for _, input := range inputs {
		if _, err := hash.Write(input); err != nil {
			return e.Scalar{}, errors.New("mercurial: failed to hash input")
		}
	}
	digest := hash.Sum(nil)

	order := OrderAsBigInt()
	bigIntScalar := new(big.Int).SetBytes(digest)
	bigIntScalar.Mod(bigIntScalar, order)

	var scalar e.Scalar
	scalar.SetBytes(bigIntScalar.Bytes())
	return scalar, nil
}

// SerializeG1 returns the canonical compressed encoding of a G1 element.
func SerializeG1(g *e.G1) []byte { return g.Bytes() }

// SerializeG2 returns the canonical compressed encoding of a G2 element.
func SerializeG2(g *e.G2) []byte { return g.Bytes() }

// SerializeScalar returns the canonical encoding of a scalar.
func SerializeScalar(s *e.Scalar) []byte {
	data, _ := s.MarshalBinary()
	return data
}

// SerializeGt returns the canonical encoding of a Gt element.
func SerializeGt(g *e.Gt) []byte {
	data, _ := g.MarshalBinary()
	return data
}

// lockedReader serializes reads across goroutines that share one rng. A
// caller-supplied io.Reader is not guaranteed safe for concurrent use (unlike
// crypto/rand.Reader); KeyGen's per-slot goroutines wrap their shared rng in
// one so only the entropy reads are serialized, not the scalar-multiply work
// around them.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// SerializedReader wraps rng so concurrent callers can share it safely.
func SerializedReader(rng io.Reader) io.Reader {
	return &lockedReader{r: rng}
}
