package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/reefswap/reef/x/amm/keeper"
	"github.com/reefswap/reef/x/amm/types"
)

// MockBankKeeper is an in-memory asset ledger backing keeper tests. It
// tracks per-account balances and total supply, resolves module names to
// their derived addresses, and creates balances implicitly on first credit.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

// NewMockBankKeeper creates an empty in-memory ledger
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
		supply:   sdk.NewCoins(),
	}
}

func (m *MockBankKeeper) moduleAddress(moduleName string) sdk.AccAddress {
	return authtypes.NewModuleAddress(moduleName)
}

func (m *MockBankKeeper) subtract(addr sdk.AccAddress, amt sdk.Coins) error {
	remaining, hasNeg := m.balances[addr.String()].SafeSub(amt...)
	if hasNeg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", addr, m.balances[addr.String()], amt)
	}
	m.balances[addr.String()] = remaining
	return nil
}

func (m *MockBankKeeper) add(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
}

// SendCoins moves coins between two accounts
func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if err := m.subtract(fromAddr, amt); err != nil {
		return err
	}
	m.add(toAddr, amt)
	return nil
}

// SendCoinsFromModuleToAccount moves coins from a module account to a user account
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, m.moduleAddress(senderModule), recipientAddr, amt)
}

// SendCoinsFromAccountToModule moves coins from a user account to a module account
func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, senderAddr, m.moduleAddress(recipientModule), amt)
}

// MintCoins creates new coins in the module account and grows supply
func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	m.add(m.moduleAddress(moduleName), amt)
	m.supply = m.supply.Add(amt...)
	return nil
}

// BurnCoins destroys coins held by the module account and shrinks supply
func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if err := m.subtract(m.moduleAddress(moduleName), amt); err != nil {
		return err
	}
	remaining, hasNeg := m.supply.SafeSub(amt...)
	if hasNeg {
		return fmt.Errorf("burn exceeds supply: %s", amt)
	}
	m.supply = remaining
	return nil
}

// GetBalance returns the balance of a single denom for an account
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

// SpendableCoins returns all coins an account can spend. The mock has no
// vesting, so everything is spendable.
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// GetSupply returns the total supply of a single denom
func (m *MockBankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.supply.AmountOf(denom))
}

// HasSupply reports whether any amount of the denom exists
func (m *MockBankKeeper) HasSupply(_ context.Context, denom string) bool {
	return m.supply.AmountOf(denom).IsPositive()
}

// FundAccount mints coins directly to an account for test setup
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.add(addr, amt)
	m.supply = m.supply.Add(amt...)
}

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// store and ledger
func AmmKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(
		types.ModuleCdc,
		storeKey,
		bank,
		authtypes.NewModuleAddress("gov").String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, ctx
}
