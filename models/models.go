// Package models provides the data structures shared across the mercurial
// signature scheme: the public parameters, the secret and public key
// vectors, the message vector, and the three-element signature.
package models

import (
	e "github.com/cloudflare/circl/ecc/bls12381"
)

// PublicParameters holds the generators of G1 and G2 that every other
// operation in this module is defined against. It carries no secrets and is
// immutable after construction; it is safe to share across goroutines.
type PublicParameters struct {
	G1 *e.G1
	G2 *e.G2
}

// SecretKey is the ordered scalar vector x = (x_1, ..., x_l). It is mutated
// in place only by ConvertSK.
type SecretKey struct {
	X []e.Scalar
}

// PublicKey is the ordered G2 vector X_hat with X_hat_i = x_i * P_hat. It is
// mutated in place only by ConvertPK.
type PublicKey struct {
	XHat []e.G2
}

// Message is the ordered G1 vector M = (M_1, ..., M_l). The identity element
// is forbidden in any position. It is mutated in place only by
// ChangeRepresentation.
type Message []e.G1

// Signature is the triple (Z, Y, Y_hat) produced by Sign and updated in
// place by ConvertSig and ChangeRepresentation.
type Signature struct {
	Z    e.G1
	Y    e.G1
	YHat e.G2
}

// Len reports the vector length l shared by a well-formed (sk, pk, M) triple.
func (sk *SecretKey) Len() int { return len(sk.X) }

// Len reports the vector length l of the public key.
func (pk *PublicKey) Len() int { return len(pk.XHat) }
