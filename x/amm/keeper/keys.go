package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key prefixes for the amm module
var (
	ParamsKey         = []byte{0x00}
	RegistryKeyPrefix = []byte{0x01}
	PoolKeyPrefix     = []byte{0x02}
	PoolCountKey      = []byte{0x03}
)

// RegistryStoreKey returns the store key for a registry record
func RegistryStoreKey(id []byte) []byte {
	return append(RegistryKeyPrefix, id...)
}

// PoolStoreKey returns the store key for a pool record
func PoolStoreKey(addr sdk.AccAddress) []byte {
	return append(PoolKeyPrefix, addr.Bytes()...)
}
