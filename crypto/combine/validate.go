// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package combine

import (
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/quorumvote/tpaillier/crypto/paillier"
)

// ValidatePartials checks every present partial decryption in C lies in
// (0, n²) before ShareCombine does any modular exponentiation on it. This
// is a best-effort pre-flight: it collects every out-of-range entry instead
// of stopping at the first, so a caller can report every bad server at
// once rather than one at a time.
func ValidatePartials(pk *paillier.PublicKey, c []*big.Int) error {
	var result *multierror.Error
	for i, ci := range c {
		if ci == nil || ci.Sign() == 0 {
			continue // sentinel: share absent
		}
		if ci.Sign() < 0 || ci.Cmp(pk.NSquare) >= 0 {
			result = multierror.Append(result, errors.Errorf("partial decryption at index %d is out of range [0, n²)", i))
		}
	}
	return result.ErrorOrNil()
}
