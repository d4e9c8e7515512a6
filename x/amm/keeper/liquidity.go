package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/types"
)

// DepositLiquidity adds both assets to a pool and mints claim shares to the
// depositor. Requested amounts are clamped to the depositor's spendable
// balances. An active pool additionally scales the request down to the
// current reserve ratio so a deposit can never move the price. Shares are
// the floor square root of the deposited product; the first deposit must
// clear the MinimumLiquidity lock, which is minted to the module account and
// retained forever.
//
// Returns the shares credited to the depositor.
func (k Keeper) DepositLiquidity(ctx context.Context, depositor sdk.AccAddress, poolAddr sdk.AccAddress, amountA, amountB math.Int) (math.Int, error) {
	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return math.Int{}, errors.Wrap(types.ErrInvalidInput, "deposit amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolAddr)
	if err != nil {
		return math.Int{}, err
	}

	// 1. Clamp the request to what the depositor can actually spend
	spendable := k.bankKeeper.SpendableCoins(ctx, depositor)
	amountA = math.MinInt(amountA, spendable.AmountOf(pool.MintA))
	amountB = math.MinInt(amountB, spendable.AmountOf(pool.MintB))

	firstDeposit := pool.IsEmpty()

	// 2. For an active pool, scale the request to the reserve ratio
	if !firstDeposit {
		optimalB, err := SafeMulDiv(amountA, pool.ReserveB, pool.ReserveA)
		if err != nil {
			return math.Int{}, err
		}
		if optimalB.LTE(amountB) {
			amountB = optimalB
		} else {
			amountA, err = SafeMulDiv(amountB, pool.ReserveA, pool.ReserveB)
			if err != nil {
				return math.Int{}, err
			}
		}
	}

	// 3. Shares are the geometric mean of the deposited amounts
	product, err := SafeMul(amountA, amountB)
	if err != nil {
		return math.Int{}, err
	}
	minted, err := SafeSqrt(product)
	if err != nil {
		return math.Int{}, err
	}

	credited := minted
	if firstDeposit {
		// The first deposit funds the permanent lock; anything at or below
		// it would leave the depositor with nothing.
		if minted.LTE(types.MinimumLiquidity) {
			return math.Int{}, errors.Wrapf(types.ErrDepositTooSmall,
				"first deposit mints %s shares, need more than %s", minted.String(), types.MinimumLiquidity.String())
		}
		if minInitial := k.GetParams(ctx).MinInitialDeposit; minted.LT(minInitial) {
			return math.Int{}, errors.Wrapf(types.ErrDepositTooSmall,
				"first deposit mints %s shares, minimum initial deposit is %s", minted.String(), minInitial.String())
		}
		credited = minted.Sub(types.MinimumLiquidity)
	} else if minted.IsZero() {
		return math.Int{}, errors.Wrap(types.ErrDepositTooSmall, "deposit too small to mint any shares")
	}

	// 4. Move the reserves from the depositor to the pool authority
	authority := types.PoolAuthorityAddress(poolAddr)
	deposit := sdk.NewCoins(
		sdk.NewCoin(pool.MintA, amountA),
		sdk.NewCoin(pool.MintB, amountB),
	)
	if err := k.bankKeeper.SendCoins(ctx, depositor, authority, deposit); err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInsufficientFunds, "reserve transfer failed: %v", err)
	}

	// 5. Mint the full share amount to the module account, then release the
	// depositor's portion. On the first deposit the lock stays behind.
	shareCoins := sdk.NewCoins(sdk.NewCoin(pool.ShareDenom, minted))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInvalidPoolState, "share mint failed: %v", err)
	}
	creditedCoins := sdk.NewCoins(sdk.NewCoin(pool.ShareDenom, credited))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, creditedCoins); err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInvalidPoolState, "share transfer failed: %v", err)
	}

	// 6. Persist the updated pool
	if pool.ReserveA, err = SafeAdd(pool.ReserveA, amountA); err != nil {
		return math.Int{}, err
	}
	if pool.ReserveB, err = SafeAdd(pool.ReserveB, amountB); err != nil {
		return math.Int{}, err
	}
	if pool.TotalShares, err = SafeAdd(pool.TotalShares, credited); err != nil {
		return math.Int{}, err
	}
	k.SetPool(ctx, *pool)

	// 7. Emit event
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyPool, pool.Address),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, credited.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(pool.Address, pool.MintA).Add(metricAmount(amountA))
		k.metrics.LiquidityAdded.WithLabelValues(pool.Address, pool.MintB).Add(metricAmount(amountB))
		k.metrics.PoolReserves.WithLabelValues(pool.Address, pool.MintA).Set(metricAmount(pool.ReserveA))
		k.metrics.PoolReserves.WithLabelValues(pool.Address, pool.MintB).Set(metricAmount(pool.ReserveB))
		k.metrics.ClaimSupply.WithLabelValues(pool.Address).Set(metricAmount(pool.TotalShares))
	}

	return credited, nil
}

// WithdrawLiquidity burns claim shares and pays out the proportional slice of
// both reserves. Amounts are floored against the full share supply including
// the MinimumLiquidity lock, so the locked portion's backing stays in the
// pool forever.
//
// Returns the amounts of mint A and mint B paid out.
func (k Keeper) WithdrawLiquidity(ctx context.Context, withdrawer sdk.AccAddress, poolAddr sdk.AccAddress, shares math.Int) (math.Int, math.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.Int{}, math.Int{}, errors.Wrap(types.ErrInvalidInput, "share amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolAddr)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if pool.IsEmpty() {
		return math.Int{}, math.Int{}, errors.Wrap(types.ErrEmptyPool, "pool has no reserves to withdraw")
	}

	// 1. Compute the payout against the full supply, lock included
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

	// 2. Pull the shares back into the module account and burn them. The
	// transfer fails if the withdrawer holds fewer shares than claimed, so
	// no separate balance check is needed.
	shareCoins := sdk.NewCoins(sdk.NewCoin(pool.ShareDenom, shares))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, withdrawer, types.ModuleName, shareCoins); err != nil {
		return math.Int{}, math.Int{}, errors.Wrapf(types.ErrInsufficientFunds, "share transfer failed: %v", err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return math.Int{}, math.Int{}, errors.Wrapf(types.ErrInvalidPoolState, "share burn failed: %v", err)
	}

	// 3. Pay out the reserves from the pool authority
	authority := types.PoolAuthorityAddress(poolAddr)
	payout := sdk.NewCoins(
		sdk.NewCoin(pool.MintA, amountA),
		sdk.NewCoin(pool.MintB, amountB),
	)
	if !payout.IsZero() {
		if err := k.bankKeeper.SendCoins(ctx, authority, withdrawer, payout); err != nil {
			return math.Int{}, math.Int{}, errors.Wrapf(types.ErrInvalidPoolState, "reserve payout failed: %v", err)
		}
	}

	// 4. Persist the updated pool
	if pool.ReserveA, err = SafeSub(pool.ReserveA, amountA); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pool.ReserveB, err = SafeSub(pool.ReserveB, amountB); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pool.TotalShares, err = SafeSub(pool.TotalShares, shares); err != nil {
		return math.Int{}, math.Int{}, err
	}
	k.SetPool(ctx, *pool)

	// 5. Emit event
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyPool, pool.Address),
			sdk.NewAttribute(types.AttributeKeyWithdrawer, withdrawer.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(pool.Address, pool.MintA).Add(metricAmount(amountA))
		k.metrics.LiquidityRemoved.WithLabelValues(pool.Address, pool.MintB).Add(metricAmount(amountB))
		k.metrics.PoolReserves.WithLabelValues(pool.Address, pool.MintA).Set(metricAmount(pool.ReserveA))
		k.metrics.PoolReserves.WithLabelValues(pool.Address, pool.MintB).Set(metricAmount(pool.ReserveB))
		k.metrics.ClaimSupply.WithLabelValues(pool.Address).Set(metricAmount(pool.TotalShares))
	}

	return amountA, amountB, nil
}
