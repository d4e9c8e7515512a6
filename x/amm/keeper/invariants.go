package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/types"
)

// RegisterInvariants registers all amm module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "claim-supply", ClaimSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "locked-shares", LockedSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := ReserveBackingInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := ClaimSupplyInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := LockedSharesInvariant(k)(ctx); broken {
			return msg, broken
		}
		return PoolStateInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that every pool authority holds at least the
// reserves its pool record claims
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		k.IteratePools(ctx, func(pool types.Pool) bool {
			authority := types.PoolAuthorityAddress(pool.AccAddress())
			balanceA := k.bankKeeper.GetBalance(ctx, authority, pool.MintA)
			balanceB := k.bankKeeper.GetBalance(ctx, authority, pool.MintB)

			if balanceA.Amount.LT(pool.ReserveA) {
				broken = true
				msg += fmt.Sprintf("pool %s: authority holds %s %s, record claims %s\n",
					pool.Address, balanceA.Amount, pool.MintA, pool.ReserveA)
			}
			if balanceB.Amount.LT(pool.ReserveB) {
				broken = true
				msg += fmt.Sprintf("pool %s: authority holds %s %s, record claims %s\n",
					pool.Address, balanceB.Amount, pool.MintB, pool.ReserveB)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "reserve-backing", msg), broken
	}
}

// ClaimSupplyInvariant checks that the minted claim supply of every active
// pool equals its circulating shares plus the permanent lock
func ClaimSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		k.IteratePools(ctx, func(pool types.Pool) bool {
			supply := k.bankKeeper.GetSupply(ctx, pool.ShareDenom)

			if pool.IsEmpty() {
				if !supply.Amount.IsZero() {
					broken = true
					msg += fmt.Sprintf("pool %s: empty pool has claim supply %s\n", pool.Address, supply.Amount)
				}
				return false
			}

			expected := pool.TotalShares.Add(types.MinimumLiquidity)
			if !supply.Amount.Equal(expected) {
				broken = true
				msg += fmt.Sprintf("pool %s: claim supply %s, expected %s\n",
					pool.Address, supply.Amount, expected)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "claim-supply", msg), broken
	}
}

// LockedSharesInvariant checks that the module account still holds the
// MinimumLiquidity lock of every active pool
func LockedSharesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		moduleAddr := k.GetModuleAddress()
		k.IteratePools(ctx, func(pool types.Pool) bool {
			if pool.IsEmpty() {
				return false
			}
			locked := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.ShareDenom)
			if locked.Amount.LT(types.MinimumLiquidity) {
				broken = true
				msg += fmt.Sprintf("pool %s: module account holds %s locked shares, expected at least %s\n",
					pool.Address, locked.Amount, types.MinimumLiquidity)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "locked-shares", msg), broken
	}
}

// PoolStateInvariant checks the structural validity of every stored pool
// record, including address and denom derivation
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				broken = true
				msg += fmt.Sprintf("pool %s: %v\n", pool.Address, err)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "pool-state", msg), broken
	}
}
