package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/reefswap/reef/testutil/keeper"
	"github.com/reefswap/reef/x/amm/keeper"
	"github.com/reefswap/reef/x/amm/types"
)

// FuzzSafeMulDiv exercises the ratio helper with arbitrary operands. It must
// never panic; any failure has to surface as ErrOverflow.
func FuzzSafeMulDiv(f *testing.F) {
	f.Add(int64(9_970), int64(1_000_000), int64(1_009_970))
	f.Add(int64(1), int64(1), int64(1))
	f.Add(int64(0), int64(5), int64(7))
	f.Add(int64(1<<62), int64(1<<62), int64(1))

	f.Fuzz(func(t *testing.T, a, b, c int64) {
		if a < 0 || b < 0 || c < 0 {
			return
		}

		result, err := keeper.SafeMulDiv(math.NewInt(a), math.NewInt(b), math.NewInt(c))
		if err != nil {
			require.ErrorIs(t, err, types.ErrOverflow)
			return
		}
		require.False(t, result.IsNegative())

		if c != 0 && b != 0 {
			// floor division: result * c <= a * b
			lhs := result.Mul(math.NewInt(c))
			rhs := math.NewInt(a).Mul(math.NewInt(b))
			require.True(t, lhs.LTE(rhs))
		}
	})
}

// FuzzSafeSqrt checks the floor square root over arbitrary inputs.
func FuzzSafeSqrt(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(999_800_010_000))
	f.Add(int64(1 << 62))

	f.Fuzz(func(t *testing.T, a int64) {
		if a < 0 {
			return
		}

		root, err := keeper.SafeSqrt(math.NewInt(a))
		require.NoError(t, err)

		// root^2 <= a < (root+1)^2
		require.True(t, root.Mul(root).LTE(math.NewInt(a)))
		next := root.AddRaw(1)
		require.True(t, next.Mul(next).GT(math.NewInt(a)))
	})
}

// FuzzSwapExact runs arbitrary swaps against a seeded pool. Failures must be
// module errors, reserves must keep backing the record, and the product must
// never shrink.
func FuzzSwapExact(f *testing.F) {
	f.Add(int64(10_000), true)
	f.Add(int64(1), false)
	f.Add(int64(1<<40), true)

	f.Fuzz(func(t *testing.T, amountIn int64, swapA bool) {
		if amountIn <= 0 {
			return
		}

		k, bank, ctx := keepertest.AmmKeeper(t)
		pool := seedPool(t, k, bank, ctx, 30, 1_000_000, 1_000_000)

		denomIn := "ureef"
		if !swapA {
			denomIn = "uatom"
		}
		trader := testAddr("trader")
		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomIn, math.NewInt(amountIn))))

		out, err := k.SwapExact(ctx, trader, pool.AccAddress(), swapA, math.NewInt(amountIn), math.ZeroInt())
		if err != nil {
			require.True(t,
				types.ErrSwapTooSmall.Is(err) || types.ErrOverflow.Is(err) || types.ErrInsufficientLiquidity.Is(err),
				"unexpected error: %v", err)
			return
		}

		stored, err := k.GetPool(ctx, pool.AccAddress())
		require.NoError(t, err)
		require.True(t, stored.ReserveA.Mul(stored.ReserveB).GTE(math.NewInt(1_000_000).Mul(math.NewInt(1_000_000))))
		require.True(t, out.LT(math.NewInt(1_000_000)))

		msg, broken := keeper.AllInvariants(k)(ctx)
		require.False(t, broken, msg)
	})
}
