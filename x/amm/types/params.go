package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params defines the governance-adjustable parameters of the amm module.
type Params struct {
	// MaxPools bounds the total number of pools to keep genesis export and
	// invariant sweeps tractable.
	MaxPools uint64 `json:"max_pools"`
	// MinInitialDeposit is the smallest share amount a pool's first deposit
	// may mint. At the default it adds nothing beyond the MinimumLiquidity
	// lock; governance can raise it to keep dust pools from being seeded.
	MinInitialDeposit math.Int `json:"min_initial_deposit"`
}

// DefaultParams returns the default amm module parameters.
func DefaultParams() Params {
	return Params{
		MaxPools:          100_000,
		MinInitialDeposit: MinimumLiquidity,
	}
}

// Validate ensures the parameter set is usable.
func (p Params) Validate() error {
	if p.MaxPools == 0 {
		return fmt.Errorf("max pools must be positive")
	}
	if p.MinInitialDeposit.IsNil() || p.MinInitialDeposit.IsNegative() {
		return fmt.Errorf("min initial deposit must be non-negative")
	}
	return nil
}
