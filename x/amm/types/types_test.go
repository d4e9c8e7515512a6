package types_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/reefswap/reef/x/amm/types"
)

func TestPoolAddressDeterminism(t *testing.T) {
	id := registryID()

	a1 := types.PoolAddress(id, "ureef", "uatom")
	a2 := types.PoolAddress(id, "ureef", "uatom")
	require.Equal(t, a1, a2)

	// Orientation matters: (A, B) and (B, A) are distinct pools
	require.NotEqual(t, a1, types.PoolAddress(id, "uatom", "ureef"))
}

func TestPoolAuthorityIsDistinct(t *testing.T) {
	poolAddr := types.PoolAddress(registryID(), "ureef", "uatom")
	authority := types.PoolAuthorityAddress(poolAddr)

	require.NotEqual(t, poolAddr, authority)
	// Re-derivation is stable
	require.Equal(t, authority, types.PoolAuthorityAddress(poolAddr))
}

func TestShareDenom(t *testing.T) {
	poolAddr := types.PoolAddress(registryID(), "ureef", "uatom")
	denom := types.ShareDenom(poolAddr)

	require.True(t, strings.HasPrefix(denom, types.ShareDenomPrefix))
	// One pool, one denom
	require.Equal(t, denom, types.ShareDenom(poolAddr))
}

func TestRegistryValidate(t *testing.T) {
	valid := types.Registry{Id: registryID(), Admin: addr("admin"), FeeBps: 30}
	require.NoError(t, valid.Validate())

	badID := types.Registry{Id: []byte{1, 2}, Admin: addr("admin"), FeeBps: 30}
	require.Error(t, badID.Validate())

	badAdmin := types.Registry{Id: registryID(), Admin: "nope", FeeBps: 30}
	require.Error(t, badAdmin.Validate())

	badFee := types.Registry{Id: registryID(), Admin: addr("admin"), FeeBps: types.MaxFeeBps}
	require.Error(t, badFee.Validate())
}

func TestPoolValidate(t *testing.T) {
	poolAddr := types.PoolAddress(registryID(), "ureef", "uatom")
	pool := types.Pool{
		RegistryId:  registryID(),
		MintA:       "ureef",
		MintB:       "uatom",
		ReserveA:    math.NewInt(10),
		ReserveB:    math.NewInt(10),
		TotalShares: math.NewInt(5),
		ShareDenom:  types.ShareDenom(poolAddr),
		Address:     poolAddr.String(),
	}
	require.NoError(t, pool.Validate())
	require.False(t, pool.IsEmpty())

	mismatched := pool
	mismatched.MintB = "uosmo"
	require.Error(t, mismatched.Validate(), "address no longer matches its derivation inputs")

	negative := pool
	negative.ReserveA = math.NewInt(-1)
	require.Error(t, negative.Validate())

	sharesWithoutReserves := pool
	sharesWithoutReserves.ReserveA = math.ZeroInt()
	sharesWithoutReserves.ReserveB = math.ZeroInt()
	require.Error(t, sharesWithoutReserves.Validate())
}

func TestMinimumLiquidityConstant(t *testing.T) {
	require.Equal(t, math.NewInt(100), types.MinimumLiquidity)
}
