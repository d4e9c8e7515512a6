package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/types"
)

// swapQuote is the fully computed outcome of an exact-input swap, produced
// before any balance moves.
type swapQuote struct {
	denomIn  string
	denomOut string
	amountIn math.Int
	fee      math.Int
	output   math.Int
	// post-swap reserves in pool orientation
	newReserveA math.Int
	newReserveB math.Int
}

// SwapExact trades an exact input amount of one pool asset for the other.
// The input is clamped to the trader's spendable balance, the fee is charged
// on the way in and folded into the reserves, and the whole outcome,
// including the constant-product check, is computed before any transfer is
// made. A failed check aborts the swap with no balance movement.
//
// Returns the output amount credited to the trader.
func (k Keeper) SwapExact(ctx context.Context, trader sdk.AccAddress, poolAddr sdk.AccAddress, swapA bool, amountIn, minAmountOut math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolAddr)
	if err != nil {
		return math.Int{}, err
	}
	registry, err := k.GetRegistry(ctx, pool.RegistryId)
	if err != nil {
		return math.Int{}, err
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, errors.Wrap(types.ErrSwapTooSmall, "swap input must be positive")
	}
	if minAmountOut.IsNil() {
		minAmountOut = math.ZeroInt()
	}

	// 1. Clamp the input to the trader's spendable balance
	denomIn := pool.MintA
	if !swapA {
		denomIn = pool.MintB
	}
	spendable := k.bankKeeper.SpendableCoins(ctx, trader)
	amountIn = math.MinInt(amountIn, spendable.AmountOf(denomIn))

	// 2. Compute the full outcome before touching any balance
	quote, err := k.quoteSwap(pool, registry.FeeBps, swapA, amountIn)
	if err != nil {
		return math.Int{}, err
	}

	// 3. Enforce the trader's slippage floor
	if quote.output.LT(minAmountOut) {
		return math.Int{}, errors.Wrapf(types.ErrOutputTooSmall,
			"output %s below minimum %s", quote.output.String(), minAmountOut.String())
	}

	// 4. Execute the transfers
	authority := types.PoolAuthorityAddress(poolAddr)
	coinIn := sdk.NewCoins(sdk.NewCoin(quote.denomIn, quote.amountIn))
	if err := k.bankKeeper.SendCoins(ctx, trader, authority, coinIn); err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInsufficientFunds, "input transfer failed: %v", err)
	}
	coinOut := sdk.NewCoins(sdk.NewCoin(quote.denomOut, quote.output))
	if err := k.bankKeeper.SendCoins(ctx, authority, trader, coinOut); err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInvalidPoolState, "output transfer failed: %v", err)
	}

	// 5. Persist the post-swap reserves
	pool.ReserveA = quote.newReserveA
	pool.ReserveB = quote.newReserveB
	k.SetPool(ctx, *pool)

	// 6. Emit event
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPool, pool.Address),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, quote.amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, quote.output.String()),
			sdk.NewAttribute(types.AttributeKeyFee, quote.fee.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues(pool.Address, quote.denomIn, quote.denomOut).Inc()
		k.metrics.SwapVolume.WithLabelValues(pool.Address, quote.denomIn).Add(metricAmount(quote.amountIn))
		k.metrics.SwapFeesCollected.WithLabelValues(pool.Address, quote.denomIn).Add(metricAmount(quote.fee))
		k.metrics.PoolReserves.WithLabelValues(pool.Address, pool.MintA).Set(metricAmount(pool.ReserveA))
		k.metrics.PoolReserves.WithLabelValues(pool.Address, pool.MintB).Set(metricAmount(pool.ReserveB))
	}

	return quote.output, nil
}

// quoteSwap computes the outcome of an exact-input swap against the current
// reserves: fee on the way in, constant-product output with floor rounding,
// and the product check on the post-swap reserves. Pure with respect to
// state; nothing is written.
func (k Keeper) quoteSwap(pool *types.Pool, feeBps uint32, swapA bool, amountIn math.Int) (*swapQuote, error) {
	if pool.IsEmpty() {
		return nil, errors.Wrap(types.ErrEmptyPool, "cannot swap against empty reserves")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, errors.Wrap(types.ErrSwapTooSmall, "swap input must be positive")
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	denomIn, denomOut := pool.MintA, pool.MintB
	if !swapA {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
		denomIn, denomOut = pool.MintB, pool.MintA
	}

	// Fee is charged on the input and stays in the pool
	fee, err := SafeMulDiv(amountIn, math.NewInt(int64(feeBps)), math.NewInt(types.MaxFeeBps))
	if err != nil {
		return nil, err
	}
	taxed, err := SafeSub(amountIn, fee)
	if err != nil {
		return nil, err
	}
	if taxed.IsZero() {
		return nil, errors.Wrap(types.ErrSwapTooSmall, "input is consumed entirely by the fee")
	}

	// output = floor(taxed * reserveOut / (reserveIn + taxed))
	denominator, err := SafeAdd(reserveIn, taxed)
	if err != nil {
		return nil, err
	}
	output, err := SafeMulDiv(taxed, reserveOut, denominator)
	if err != nil {
		return nil, err
	}
	if output.GTE(reserveOut) {
		return nil, errors.Wrapf(types.ErrInsufficientLiquidity,
			"output %s would drain reserve %s", output.String(), reserveOut.String())
	}

	// The post-swap product, with the fee folded into the input reserve,
	// must not fall below the pre-swap product.
	oldProduct, err := SafeMul(reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	newReserveIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return nil, err
	}
	newReserveOut, err := SafeSub(reserveOut, output)
	if err != nil {
		return nil, err
	}
	newProduct, err := SafeMul(newReserveIn, newReserveOut)
	if err != nil {
		return nil, err
	}
	if newProduct.LT(oldProduct) {
		return nil, errors.Wrapf(types.ErrInvariantViolated,
			"product would shrink from %s to %s", oldProduct.String(), newProduct.String())
	}

	quote := &swapQuote{
		denomIn:  denomIn,
		denomOut: denomOut,
		amountIn: amountIn,
		fee:      fee,
		output:   output,
	}
	if swapA {
		quote.newReserveA, quote.newReserveB = newReserveIn, newReserveOut
	} else {
		quote.newReserveA, quote.newReserveB = newReserveOut, newReserveIn
	}
	return quote, nil
}

// SimulateSwap quotes an exact-input swap without executing it. The input is
// not clamped to any balance since the caller may not be the trader.
func (k Keeper) SimulateSwap(ctx context.Context, poolAddr sdk.AccAddress, swapA bool, amountIn math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolAddr)
	if err != nil {
		return math.Int{}, err
	}
	registry, err := k.GetRegistry(ctx, pool.RegistryId)
	if err != nil {
		return math.Int{}, err
	}

	quote, err := k.quoteSwap(pool, registry.FeeBps, swapA, amountIn)
	if err != nil {
		return math.Int{}, err
	}
	return quote.output, nil
}

// GetSpotPrice returns the marginal price of the pool as a decimal ratio of
// the output reserve over the input reserve, before fees.
func (k Keeper) GetSpotPrice(ctx context.Context, poolAddr sdk.AccAddress, swapA bool) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolAddr)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if pool.IsEmpty() {
		return math.LegacyDec{}, errors.Wrap(types.ErrEmptyPool, "empty pool has no price")
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if !swapA {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}
	return math.LegacyNewDecFromInt(reserveOut).QuoInt(reserveIn), nil
}
