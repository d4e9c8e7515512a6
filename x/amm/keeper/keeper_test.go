package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/reefswap/reef/testutil/keeper"
	"github.com/reefswap/reef/x/amm/keeper"
	"github.com/reefswap/reef/x/amm/types"
)

type KeeperTestSuite struct {
	suite.Suite
	keeper keeper.Keeper
	bank   *keepertest.MockBankKeeper
	ctx    sdk.Context
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.keeper, suite.bank, suite.ctx = keepertest.AmmKeeper(suite.T())
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) TestModuleAddressIsStable() {
	require.Equal(suite.T(), suite.keeper.GetModuleAddress(), suite.keeper.GetModuleAddress())
	require.Len(suite.T(), suite.keeper.GetModuleAddress().Bytes(), 20)
}

// testAddr builds a deterministic 20-byte test account address
func testAddr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// testRegistryID builds a deterministic 32-byte registry identity
func testRegistryID(seed byte) []byte {
	return bytes.Repeat([]byte{seed}, types.RegistryIDLength)
}

// setupRegistry creates a registry with the given fee and returns its identity
func setupRegistry(t *testing.T, k keeper.Keeper, ctx sdk.Context, admin sdk.AccAddress, feeBps uint32) []byte {
	t.Helper()
	id := testRegistryID(0x11)
	_, err := k.CreateRegistry(ctx, admin, id, feeBps)
	require.NoError(t, err)
	return id
}

// setupPool creates a registry and an empty pool for the ureef/uatom pair,
// funding the creator so both denoms have supply
func setupPool(t *testing.T, k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, feeBps uint32) (*types.Pool, []byte) {
	t.Helper()
	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("ureef", math.NewInt(1)),
		sdk.NewCoin("uatom", math.NewInt(1)),
	))

	id := setupRegistry(t, k, ctx, creator, feeBps)
	pool, err := k.CreatePool(ctx, creator, id, "ureef", "uatom")
	require.NoError(t, err)
	return pool, id
}

// seedPool creates a pool charging feeBps and seeds it with the given
// reserves from a dedicated depositor
func seedPool(t *testing.T, k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, feeBps uint32, reserveA, reserveB int64) *types.Pool {
	t.Helper()
	pool, _ := setupPool(t, k, bank, ctx, feeBps)

	depositor := testAddr("seeder")
	bank.FundAccount(depositor, sdk.NewCoins(
		sdk.NewCoin("ureef", math.NewInt(reserveA)),
		sdk.NewCoin("uatom", math.NewInt(reserveB)),
	))

	_, err := k.DepositLiquidity(ctx, depositor, pool.AccAddress(), math.NewInt(reserveA), math.NewInt(reserveB))
	require.NoError(t, err)

	seeded, err := k.GetPool(ctx, pool.AccAddress())
	require.NoError(t, err)
	return seeded
}
