package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/reefswap/reef/testutil/keeper"
	"github.com/reefswap/reef/x/amm/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	seedPool(t, k, bank, ctx, 30, 1_000_000, 2_000_000)

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Registries, 1)
	require.Len(t, exported.Pools, 1)
	require.Equal(t, math.NewInt(1_000_000), exported.Pools[0].ReserveA)

	// Replay the export into a fresh keeper
	k2, _, ctx2 := keepertest.AmmKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reexported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported.Params, reexported.Params)
	require.Equal(t, exported.Registries, reexported.Registries)
	require.Equal(t, exported.Pools, reexported.Pools)
	require.Equal(t, uint64(1), k2.GetPoolCount(ctx2))
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	genState := types.GenesisState{
		Params: types.DefaultParams(),
		Pools: []types.Pool{
			{
				RegistryId:  testRegistryID(0x01),
				MintA:       "ureef",
				MintB:       "uatom",
				ReserveA:    math.NewInt(1),
				ReserveB:    math.NewInt(1),
				TotalShares: math.ZeroInt(),
				ShareDenom:  "bogus",
				Address:     testAddr("bogus").String(),
			},
		},
	}

	require.Error(t, k.InitGenesis(ctx, genState))
}

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Empty(t, gs.Registries)
	require.Empty(t, gs.Pools)
	require.Equal(t, types.DefaultParams(), gs.Params)
}
