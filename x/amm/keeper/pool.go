package keeper

import (
	"context"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/types"
)

// CreatePool creates an empty pool for an asset pair under a registry. The
// pool identity, its authority account and its claim denom are all derived
// from the (registry, mint A, mint B) triple, so the same triple can never
// yield two pools.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, registryID []byte, mintA, mintB string) (*types.Pool, error) {
	// 1. Validate the asset pair
	if mintA == mintB {
		return nil, errors.Wrapf(types.ErrInvalidMint, "asset denoms must differ, got %s twice", mintA)
	}
	if err := sdk.ValidateDenom(mintA); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidMint, "invalid denom %s: %v", mintA, err)
	}
	if err := sdk.ValidateDenom(mintB); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidMint, "invalid denom %s: %v", mintB, err)
	}

	// 2. The registry must exist before pools can bind to it
	if !k.HasRegistry(ctx, registryID) {
		return nil, errors.Wrapf(types.ErrRegistryNotFound, "registry %x not found", registryID)
	}

	// 3. Both assets must already circulate on the ledger
	if !k.bankKeeper.HasSupply(ctx, mintA) {
		return nil, errors.Wrapf(types.ErrInvalidMint, "denom %s has no supply", mintA)
	}
	if !k.bankKeeper.HasSupply(ctx, mintB) {
		return nil, errors.Wrapf(types.ErrInvalidMint, "denom %s has no supply", mintB)
	}

	// 4. Derive the pool identity and reject duplicates
	poolAddr := types.PoolAddress(registryID, mintA, mintB)
	if k.HasPool(ctx, poolAddr) {
		return nil, errors.Wrapf(types.ErrPoolExists, "pool %s already exists for this pair", poolAddr.String())
	}

	// 5. Enforce the pool count cap
	params := k.GetParams(ctx)
	count := k.GetPoolCount(ctx)
	if count >= params.MaxPools {
		return nil, errors.Wrapf(types.ErrMaxPoolsReached, "pool count %d has reached the cap", count)
	}

	// 6. Persist the empty pool
	pool := types.Pool{
		RegistryId:  registryID,
		MintA:       mintA,
		MintB:       mintB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
		ShareDenom:  types.ShareDenom(poolAddr),
		Address:     poolAddr.String(),
	}
	k.SetPool(ctx, pool)
	k.SetPoolCount(ctx, count+1)

	// 7. Emit event
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreatePool,
			sdk.NewAttribute(types.AttributeKeyRegistryId, hex.EncodeToString(registryID)),
			sdk.NewAttribute(types.AttributeKeyPool, pool.Address),
			sdk.NewAttribute(types.AttributeKeyShareDenom, pool.ShareDenom),
			sdk.NewAttribute(types.AttributeKeyMintA, mintA),
			sdk.NewAttribute(types.AttributeKeyMintB, mintB),
		),
	)

	if k.metrics != nil {
		k.metrics.PoolCreationRate.Inc()
		k.metrics.PoolsTotal.Set(float64(count + 1))
	}

	k.Logger(ctx).Info("created pool",
		"pool", pool.Address,
		"registry", hex.EncodeToString(registryID),
		"mint_a", mintA,
		"mint_b", mintB,
	)

	return &pool, nil
}

// GetPool retrieves a pool record by its identity address
func (k Keeper) GetPool(ctx context.Context, addr sdk.AccAddress) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolStoreKey(addr))
	if bz == nil {
		return nil, errors.Wrapf(types.ErrPoolNotFound, "pool %s not found", addr.String())
	}

	var pool types.Pool
	if err := k.cdc.Unmarshal(bz, &pool); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidInput, "failed to unmarshal pool: %v", err)
	}
	return &pool, nil
}

// GetPoolByAssets retrieves a pool by re-deriving its identity from the
// (registry, mint A, mint B) triple
func (k Keeper) GetPoolByAssets(ctx context.Context, registryID []byte, mintA, mintB string) (*types.Pool, error) {
	return k.GetPool(ctx, types.PoolAddress(registryID, mintA, mintB))
}

// HasPool reports whether a pool exists at the given identity address
func (k Keeper) HasPool(ctx context.Context, addr sdk.AccAddress) bool {
	return k.getStore(ctx).Has(PoolStoreKey(addr))
}

// SetPool stores a pool record
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&pool)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal pool: %v", err))
	}
	store.Set(PoolStoreKey(pool.AccAddress()), bz)
}

// IteratePools calls cb for every stored pool until cb returns true
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.Unmarshal(iterator.Value(), &pool); err != nil {
			panic(fmt.Sprintf("failed to unmarshal pool: %v", err))
		}
		if cb(pool) {
			break
		}
	}
}

// GetAllPools returns every stored pool record
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	var pools []types.Pool
	k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}

// GetPoolCount returns the number of pools created so far
func (k Keeper) GetPoolCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetPoolCount stores the pool count
func (k Keeper) SetPoolCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	store.Set(PoolCountKey, sdk.Uint64ToBigEndian(count))
}
