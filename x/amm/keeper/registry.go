package keeper

import (
	"context"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/types"
)

// CreateRegistry creates a fee registry owned by creator. The caller picks the
// 32-byte identity; the fee applies to every pool later bound to the registry.
func (k Keeper) CreateRegistry(ctx context.Context, creator sdk.AccAddress, id []byte, feeBps uint32) (*types.Registry, error) {
	// 1. Validate inputs
	if len(id) != types.RegistryIDLength {
		return nil, errors.Wrapf(types.ErrInvalidInput, "registry id must be %d bytes, got %d", types.RegistryIDLength, len(id))
	}
	if feeBps >= types.MaxFeeBps {
		return nil, errors.Wrapf(types.ErrInvalidFee, "fee %d bps must be below %d", feeBps, types.MaxFeeBps)
	}

	// 2. Reject duplicate identities
	if k.HasRegistry(ctx, id) {
		return nil, errors.Wrapf(types.ErrRegistryExists, "registry %x already exists", id)
	}

	// 3. Persist the record
	registry := types.Registry{
		Id:     id,
		Admin:  creator.String(),
		FeeBps: feeBps,
	}
	k.SetRegistry(ctx, registry)

	// 4. Emit event
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreateRegistry,
			sdk.NewAttribute(types.AttributeKeyRegistryId, hex.EncodeToString(id)),
			sdk.NewAttribute(types.AttributeKeyAdmin, registry.Admin),
			sdk.NewAttribute(types.AttributeKeyFeeBps, fmt.Sprintf("%d", feeBps)),
		),
	)

	if k.metrics != nil {
		k.metrics.RegistriesTotal.Inc()
	}

	return &registry, nil
}

// UpdateRegistryFee changes the swap fee of an existing registry. Only the
// registry admin may call it; the new fee takes effect for all bound pools on
// the next swap.
func (k Keeper) UpdateRegistryFee(ctx context.Context, admin sdk.AccAddress, id []byte, feeBps uint32) error {
	registry, err := k.GetRegistry(ctx, id)
	if err != nil {
		return err
	}

	if registry.Admin != admin.String() {
		return errors.Wrapf(types.ErrUnauthorized, "%s is not the registry admin", admin.String())
	}
	if feeBps >= types.MaxFeeBps {
		return errors.Wrapf(types.ErrInvalidFee, "fee %d bps must be below %d", feeBps, types.MaxFeeBps)
	}

	registry.FeeBps = feeBps
	k.SetRegistry(ctx, *registry)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateRegistryFee,
			sdk.NewAttribute(types.AttributeKeyRegistryId, hex.EncodeToString(id)),
			sdk.NewAttribute(types.AttributeKeyAdmin, registry.Admin),
			sdk.NewAttribute(types.AttributeKeyFeeBps, fmt.Sprintf("%d", feeBps)),
		),
	)

	if k.metrics != nil {
		k.metrics.FeeUpdates.WithLabelValues(hex.EncodeToString(id)).Inc()
	}

	return nil
}

// GetRegistry retrieves a registry record by its 32-byte identity
func (k Keeper) GetRegistry(ctx context.Context, id []byte) (*types.Registry, error) {
	store := k.getStore(ctx)
	bz := store.Get(RegistryStoreKey(id))
	if bz == nil {
		return nil, errors.Wrapf(types.ErrRegistryNotFound, "registry %x not found", id)
	}

	var registry types.Registry
	if err := k.cdc.Unmarshal(bz, &registry); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidInput, "failed to unmarshal registry: %v", err)
	}
	return &registry, nil
}

// HasRegistry reports whether a registry with the given identity exists
func (k Keeper) HasRegistry(ctx context.Context, id []byte) bool {
	return k.getStore(ctx).Has(RegistryStoreKey(id))
}

// SetRegistry stores a registry record
func (k Keeper) SetRegistry(ctx context.Context, registry types.Registry) {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&registry)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal registry: %v", err))
	}
	store.Set(RegistryStoreKey(registry.Id), bz)
}

// IterateRegistries calls cb for every stored registry until cb returns true
func (k Keeper) IterateRegistries(ctx context.Context, cb func(registry types.Registry) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RegistryKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var registry types.Registry
		if err := k.cdc.Unmarshal(iterator.Value(), &registry); err != nil {
			panic(fmt.Sprintf("failed to unmarshal registry: %v", err))
		}
		if cb(registry) {
			break
		}
	}
}

// GetAllRegistries returns every stored registry record
func (k Keeper) GetAllRegistries(ctx context.Context) []types.Registry {
	var registries []types.Registry
	k.IterateRegistries(ctx, func(registry types.Registry) bool {
		registries = append(registries, registry)
		return false
	})
	return registries
}
