package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/reefswap/reef/testutil/keeper"
	"github.com/reefswap/reef/x/amm/types"
)

func TestCreateRegistry(t *testing.T) {
	admin := testAddr("admin")

	tests := []struct {
		name    string
		id      []byte
		feeBps  uint32
		wantErr error
	}{
		{
			name:   "valid registry",
			id:     testRegistryID(0x01),
			feeBps: 30,
		},
		{
			name:   "zero fee is allowed",
			id:     testRegistryID(0x02),
			feeBps: 0,
		},
		{
			name:   "fee just below the cap",
			id:     testRegistryID(0x03),
			feeBps: types.MaxFeeBps - 1,
		},
		{
			name:    "fee at the cap is rejected",
			id:      testRegistryID(0x04),
			feeBps:  types.MaxFeeBps,
			wantErr: types.ErrInvalidFee,
		},
		{
			name:    "short identity",
			id:      []byte{0x01, 0x02},
			feeBps:  30,
			wantErr: types.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, _, ctx := keepertest.AmmKeeper(t)

			registry, err := k.CreateRegistry(ctx, admin, tt.id, tt.feeBps)

			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, registry)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.id, registry.Id)
			require.Equal(t, admin.String(), registry.Admin)
			require.Equal(t, tt.feeBps, registry.FeeBps)

			stored, err := k.GetRegistry(ctx, tt.id)
			require.NoError(t, err)
			require.Equal(t, *registry, *stored)
		})
	}
}

func TestCreateRegistryDuplicate(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	admin := testAddr("admin")
	id := testRegistryID(0x01)

	_, err := k.CreateRegistry(ctx, admin, id, 30)
	require.NoError(t, err)

	// Same identity again, even with a different admin and fee
	_, err = k.CreateRegistry(ctx, testAddr("other"), id, 50)
	require.ErrorIs(t, err, types.ErrRegistryExists)

	// The original record is untouched
	stored, err := k.GetRegistry(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint32(30), stored.FeeBps)
	require.Equal(t, admin.String(), stored.Admin)
}

func TestUpdateRegistryFee(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	admin := testAddr("admin")
	id := setupRegistry(t, k, ctx, admin, 30)

	// Admin can change the fee
	require.NoError(t, k.UpdateRegistryFee(ctx, admin, id, 100))
	stored, err := k.GetRegistry(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint32(100), stored.FeeBps)

	// A non-admin cannot
	err = k.UpdateRegistryFee(ctx, testAddr("mallory"), id, 0)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// The cap still applies
	err = k.UpdateRegistryFee(ctx, admin, id, types.MaxFeeBps)
	require.ErrorIs(t, err, types.ErrInvalidFee)

	// Unknown registry
	err = k.UpdateRegistryFee(ctx, admin, testRegistryID(0xff), 10)
	require.ErrorIs(t, err, types.ErrRegistryNotFound)
}

func TestGetAllRegistries(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	admin := testAddr("admin")

	require.Empty(t, k.GetAllRegistries(ctx))

	for seed := byte(1); seed <= 3; seed++ {
		_, err := k.CreateRegistry(ctx, admin, testRegistryID(seed), uint32(seed)*10)
		require.NoError(t, err)
	}

	registries := k.GetAllRegistries(ctx)
	require.Len(t, registries, 3)
	for _, registry := range registries {
		require.NoError(t, registry.Validate())
	}
}
