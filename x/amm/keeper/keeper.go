package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/reefswap/reef/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper
	authority  string
	metrics    *Metrics

	// moduleAddressCache avoids recomputing the module account address in
	// hot paths (deposits, withdrawals, swaps).
	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		authority:          authority,
		metrics:            GetMetrics(),
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// GetAuthority returns the module's governance authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address. The module
// account is the claim-token mint/burn authority and custodian of the
// permanently locked minimum-liquidity shares.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
