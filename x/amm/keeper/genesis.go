package keeper

import (
	"context"
	"fmt"

	"github.com/reefswap/reef/x/amm/types"
)

// InitGenesis initializes the amm module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for _, registry := range genState.Registries {
		k.SetRegistry(ctx, registry)
	}

	for _, pool := range genState.Pools {
		k.SetPool(ctx, pool)
	}
	k.SetPoolCount(ctx, uint64(len(genState.Pools)))

	return nil
}

// ExportGenesis returns the amm module state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:     k.GetParams(ctx),
		Registries: k.GetAllRegistries(ctx),
		Pools:      k.GetAllPools(ctx),
	}
}
