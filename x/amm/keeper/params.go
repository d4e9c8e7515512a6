package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/errors"

	"github.com/reefswap/reef/x/amm/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when the store has not been initialized yet
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := k.cdc.Unmarshal(bz, &params); err != nil {
		panic(fmt.Sprintf("failed to unmarshal params: %v", err))
	}
	return params
}

// SetParams stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return errors.Wrapf(types.ErrInvalidInput, "failed to marshal params: %v", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}

// UpdateParams replaces the module parameters. Only the governance authority
// configured at keeper construction may call it.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return errors.Wrapf(types.ErrUnauthorized, "expected authority %s, got %s", k.authority, authority)
	}
	return k.SetParams(ctx, params)
}
