package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/types"
)

// PositionValue returns the amounts of mint A and mint B a holder of the
// given share count could withdraw right now. Uses the same floor arithmetic
// as WithdrawLiquidity, so the answer is exact.
func (k Keeper) PositionValue(ctx context.Context, poolAddr sdk.AccAddress, shares math.Int) (math.Int, math.Int, error) {
	pool, err := k.GetPool(ctx, poolAddr)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pool.IsEmpty() {
		return math.ZeroInt(), math.ZeroInt(), nil
	}

	denominator, err := SafeAdd(pool.TotalShares, types.MinimumLiquidity)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountA, err := SafeMulDiv(shares, pool.ReserveA, denominator)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountB, err := SafeMulDiv(shares, pool.ReserveB, denominator)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountA, amountB, nil
}
