package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/reefswap/reef/testutil/keeper"
	"github.com/reefswap/reef/x/amm/types"
)

// TestSwapNeverShrinksProduct checks that any executable swap leaves the
// reserve product at or above its pre-swap value.
func TestSwapNeverShrinksProduct(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveA := rapid.Int64Range(10_000, 1_000_000_000).Draw(rt, "reserveA")
		reserveB := rapid.Int64Range(10_000, 1_000_000_000).Draw(rt, "reserveB")
		amountIn := rapid.Int64Range(1, 100_000_000).Draw(rt, "amountIn")
		feeBps := uint32(rapid.Int64Range(0, int64(types.MaxFeeBps)-1).Draw(rt, "feeBps"))
		swapA := rapid.Bool().Draw(rt, "swapA")

		k, bank, ctx := keepertest.AmmKeeper(t)
		pool := seedPool(t, k, bank, ctx, feeBps, reserveA, reserveB)

		denomIn := "ureef"
		if !swapA {
			denomIn = "uatom"
		}
		trader := testAddr("trader")
		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomIn, math.NewInt(amountIn))))

		oldProduct := pool.ReserveA.Mul(pool.ReserveB)

		out, err := k.SwapExact(ctx, trader, pool.AccAddress(), swapA, math.NewInt(amountIn), math.ZeroInt())
		if err != nil {
			// The only acceptable rejection at these magnitudes is an
			// input fully consumed by the fee
			require.ErrorIs(rt, err, types.ErrSwapTooSmall)
			return
		}

		stored, err := k.GetPool(ctx, pool.AccAddress())
		require.NoError(rt, err)
		require.True(rt, stored.ReserveA.Mul(stored.ReserveB).GTE(oldProduct),
			"product shrank: %s * %s < %s", stored.ReserveA, stored.ReserveB, oldProduct)
		require.False(rt, out.IsNegative())
	})
}

// TestDepositNeverDilutesExistingHolders checks that a deposit never lowers
// the redeemable value of previously issued shares.
func TestDepositNeverDilutesExistingHolders(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveA := rapid.Int64Range(1_000, 1_000_000_000).Draw(rt, "reserveA")
		reserveB := rapid.Int64Range(1_000, 1_000_000_000).Draw(rt, "reserveB")
		depositA := rapid.Int64Range(1, 1_000_000_000).Draw(rt, "depositA")
		depositB := rapid.Int64Range(1, 1_000_000_000).Draw(rt, "depositB")

		k, bank, ctx := keepertest.AmmKeeper(t)
		pool := seedPool(t, k, bank, ctx, 30, reserveA, reserveB)

		seederShares := bank.GetBalance(ctx, testAddr("seeder"), pool.ShareDenom).Amount
		beforeA, beforeB, err := k.PositionValue(ctx, pool.AccAddress(), seederShares)
		require.NoError(rt, err)

		depositor := testAddr("depositor2")
		bank.FundAccount(depositor, sdk.NewCoins(
			sdk.NewCoin("ureef", math.NewInt(depositA)),
			sdk.NewCoin("uatom", math.NewInt(depositB)),
		))
		if _, err := k.DepositLiquidity(ctx, depositor, pool.AccAddress(), math.NewInt(depositA), math.NewInt(depositB)); err != nil {
			require.ErrorIs(rt, err, types.ErrDepositTooSmall)
			return
		}

		afterA, afterB, err := k.PositionValue(ctx, pool.AccAddress(), seederShares)
		require.NoError(rt, err)
		require.True(rt, afterA.GTE(beforeA), "seeder position in A diluted: %s -> %s", beforeA, afterA)
		require.True(rt, afterB.GTE(beforeB), "seeder position in B diluted: %s -> %s", beforeB, afterB)
	})
}

// TestWithdrawNeverExceedsDeposit checks the deposit/withdraw round trip
// cannot extract more than was put in.
func TestWithdrawNeverExceedsDeposit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveA := rapid.Int64Range(1_000, 100_000_000).Draw(rt, "reserveA")
		reserveB := rapid.Int64Range(1_000, 100_000_000).Draw(rt, "reserveB")
		fundA := rapid.Int64Range(1, 100_000_000).Draw(rt, "fundA")
		fundB := rapid.Int64Range(1, 100_000_000).Draw(rt, "fundB")

		k, bank, ctx := keepertest.AmmKeeper(t)
		pool := seedPool(t, k, bank, ctx, 30, reserveA, reserveB)

		depositor := testAddr("depositor2")
		bank.FundAccount(depositor, sdk.NewCoins(
			sdk.NewCoin("ureef", math.NewInt(fundA)),
			sdk.NewCoin("uatom", math.NewInt(fundB)),
		))

		credited, err := k.DepositLiquidity(ctx, depositor, pool.AccAddress(), math.NewInt(fundA), math.NewInt(fundB))
		if err != nil {
			require.ErrorIs(rt, err, types.ErrDepositTooSmall)
			return
		}

		depositedA := math.NewInt(fundA).Sub(bank.GetBalance(ctx, depositor, "ureef").Amount)
		depositedB := math.NewInt(fundB).Sub(bank.GetBalance(ctx, depositor, "uatom").Amount)

		outA, outB, err := k.WithdrawLiquidity(ctx, depositor, pool.AccAddress(), credited)
		require.NoError(rt, err)

		require.True(rt, outA.LTE(depositedA), "withdrew %s A for %s deposited", outA, depositedA)
		require.True(rt, outB.LTE(depositedB), "withdrew %s B for %s deposited", outB, depositedB)
	})
}

// TestLockOutlivesAllActivity checks that no sequence of deposit, swap and
// withdraw releases the locked shares or their backing.
func TestLockOutlivesAllActivity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveA := rapid.Int64Range(10_000, 10_000_000).Draw(rt, "reserveA")
		reserveB := rapid.Int64Range(10_000, 10_000_000).Draw(rt, "reserveB")
		swapIn := rapid.Int64Range(1, 1_000_000).Draw(rt, "swapIn")

		k, bank, ctx := keepertest.AmmKeeper(t)
		pool := seedPool(t, k, bank, ctx, 30, reserveA, reserveB)

		trader := testAddr("trader")
		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("ureef", math.NewInt(swapIn))))
		_, _ = k.SwapExact(ctx, trader, pool.AccAddress(), true, math.NewInt(swapIn), math.ZeroInt())

		seederShares := bank.GetBalance(ctx, testAddr("seeder"), pool.ShareDenom).Amount
		_, _, err := k.WithdrawLiquidity(ctx, testAddr("seeder"), pool.AccAddress(), seederShares)
		require.NoError(rt, err)

		locked := bank.GetBalance(ctx, k.GetModuleAddress(), pool.ShareDenom).Amount
		require.True(rt, locked.GTE(types.MinimumLiquidity))

		stored, err := k.GetPool(ctx, pool.AccAddress())
		require.NoError(rt, err)
		require.False(rt, stored.IsEmpty(), "reserves fully drained despite the lock")
	})
}

// TestLiquidityFlowsPreserveRatio checks that a random sequence of deposits
// and withdrawals never moves the reserve ratio by more than one unit of
// floor rounding per step.
func TestLiquidityFlowsPreserveRatio(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveA := rapid.Int64Range(10_000, 1_000_000_000).Draw(rt, "reserveA")
		reserveB := rapid.Int64Range(10_000, 1_000_000_000).Draw(rt, "reserveB")
		steps := rapid.IntRange(1, 8).Draw(rt, "steps")

		k, bank, ctx := keepertest.AmmKeeper(t)
		pool := seedPool(t, k, bank, ctx, 30, reserveA, reserveB)
		depositor := testAddr("depositor2")

		for i := 0; i < steps; i++ {
			before, err := k.GetPool(ctx, pool.AccAddress())
			require.NoError(rt, err)

			if rapid.Bool().Draw(rt, "deposit") {
				fundA := rapid.Int64Range(1, 10_000_000).Draw(rt, "fundA")
				fundB := rapid.Int64Range(1, 10_000_000).Draw(rt, "fundB")
				bank.FundAccount(depositor, sdk.NewCoins(
					sdk.NewCoin("ureef", math.NewInt(fundA)),
					sdk.NewCoin("uatom", math.NewInt(fundB)),
				))
				if _, err := k.DepositLiquidity(ctx, depositor, pool.AccAddress(), math.NewInt(fundA), math.NewInt(fundB)); err != nil {
					require.ErrorIs(rt, err, types.ErrDepositTooSmall)
					continue
				}
			} else {
				held := bank.GetBalance(ctx, depositor, pool.ShareDenom).Amount
				if held.IsZero() {
					continue
				}
				shares := rapid.Int64Range(1, held.Int64()).Draw(rt, "shares")
				_, _, err := k.WithdrawLiquidity(ctx, depositor, pool.AccAddress(), math.NewInt(shares))
				require.NoError(rt, err)
			}

			after, err := k.GetPool(ctx, pool.AccAddress())
			require.NoError(rt, err)

			// Cross-multiplied ratio drift stays under one rounding unit:
			// |A' * B - B' * A| < max(A, B)
			drift := after.ReserveA.Mul(before.ReserveB).Sub(after.ReserveB.Mul(before.ReserveA)).Abs()
			bound := math.MaxInt(before.ReserveA, before.ReserveB)
			require.True(rt, drift.LTE(bound),
				"ratio drifted by %s against bound %s (before %s/%s, after %s/%s)",
				drift, bound, before.ReserveA, before.ReserveB, after.ReserveA, after.ReserveB)
		}
	})
}
