// Package errs holds the error taxonomy that every operation in this module
// reports against. Every value here is a programmer error: a length
// mismatch, a forbidden identity element, or a scalar that was required to
// be nonzero. Callers should test against these with errors.Is; call sites
// wrap them with fmt.Errorf("...: %w", ...) for context.
package errs

import "errors"

var (
	// ErrLengthMismatch is returned when two vectors of incompatible
	// length were supplied to an operation.
	ErrLengthMismatch = errors.New("mercurial: vector length mismatch")

	// ErrIdentityElement is returned when a message component, Y, or
	// Y_hat equals the group identity where that is forbidden.
	ErrIdentityElement = errors.New("mercurial: identity element where forbidden")

	// ErrZeroScalar is returned when rho, mu, psi, or a signing scalar y
	// was zero where a nonzero scalar is required.
	ErrZeroScalar = errors.New("mercurial: zero scalar where nonzero required")
)
