// Package keygen provides key generation for the mercurial signature scheme
// (§4.3): sampling a secret scalar vector and deriving the matching public
// key vector over G2.
package keygen

import (
	"fmt"
	"io"
	"sync"

	e "github.com/cloudflare/circl/ecc/bls12381"
	"github.com/hashicorp/go-multierror"

	"github.com/aniagut/mercurial-signature/errs"
	"github.com/aniagut/mercurial-signature/models"
	"github.com/aniagut/mercurial-signature/utils"
)

// KeyGen samples x_i <- Fr for i = 1..l and computes X_hat_i = x_i * P_hat,
// returning the resulting (PublicKey, SecretKey) pair. Components are
// sampled concurrently, one goroutine per vector slot; each goroutine only
// ever writes its own index, so there is no partial key visible to the
// caller and no shared mutable state beyond the entropy stream, which is
// serialized via utils.SerializedReader.
func KeyGen(rng io.Reader, pp *models.PublicParameters, l int) (*models.PublicKey, *models.SecretKey, error) {
	if l < 1 {
		return nil, nil, fmt.Errorf("mercurial: key_gen: length %d: %w", l, errs.ErrLengthMismatch)
	}

	safeRng := utils.SerializedReader(rng)

	x := make([]e.Scalar, l)
	xHat := make([]e.G2, l)

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var errAcc *multierror.Error

	for i := 0; i < l; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			xi, err := utils.RandomNonZeroScalar(safeRng)
			if err != nil {
				errMu.Lock()
				errAcc = multierror.Append(errAcc, fmt.Errorf("sampling x_%d: %w", i, err))
				errMu.Unlock()
				return
			}

			var xHati e.G2
			xHati.ScalarMult(&xi, pp.G2)

			x[i] = xi
			xHat[i] = xHati
		}(i)
	}
	wg.Wait()

	if err := errAcc.ErrorOrNil(); err != nil {
		return nil, nil, err
	}

	return &models.PublicKey{XHat: xHat}, &models.SecretKey{X: x}, nil
}
