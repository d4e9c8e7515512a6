package types

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// MinimumLiquidity is the quantity of claim-token supply permanently locked
// on a pool's first deposit. The locked shares are minted to the module
// account and never transferred out, so the redeemable supply can never be
// drained to zero and re-seeded at a manipulated share price.
var MinimumLiquidity = math.NewInt(100)

// Registry is an AMM configuration record: a 32-byte identity, the account
// allowed to tune admin-controlled fields, and the swap fee charged by every
// pool bound to it.
type Registry struct {
	Id     []byte `json:"id"`
	Admin  string `json:"admin"`
	FeeBps uint32 `json:"fee_bps"`
}

// Validate checks the structural invariants of a registry record.
func (r Registry) Validate() error {
	if len(r.Id) != RegistryIDLength {
		return ErrInvalidInput.Wrapf("registry id must be %d bytes, got %d", RegistryIDLength, len(r.Id))
	}
	if _, err := sdk.AccAddressFromBech32(r.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}
	if r.FeeBps >= MaxFeeBps {
		return ErrInvalidFee.Wrapf("fee %d bps >= %d", r.FeeBps, MaxFeeBps)
	}
	return nil
}

// Pool is a single asset-pair pool bound to one registry entry. Reserves are
// held by the derived pool authority account; TotalShares tracks the
// circulating claim supply, excluding the MinimumLiquidity lock.
type Pool struct {
	RegistryId  []byte   `json:"registry_id"`
	MintA       string   `json:"mint_a"`
	MintB       string   `json:"mint_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	ShareDenom  string   `json:"share_denom"`
	Address     string   `json:"address"`
}

// IsEmpty reports whether the pool is still awaiting its first deposit.
func (p Pool) IsEmpty() bool {
	return p.ReserveA.IsZero() && p.ReserveB.IsZero()
}

// Validate checks the structural invariants of a pool record.
func (p Pool) Validate() error {
	if len(p.RegistryId) != RegistryIDLength {
		return ErrInvalidInput.Wrapf("registry id must be %d bytes, got %d", RegistryIDLength, len(p.RegistryId))
	}
	if p.MintA == "" || p.MintB == "" {
		return ErrInvalidMint.Wrap("asset denoms cannot be empty")
	}
	if p.MintA == p.MintB {
		return ErrInvalidMint.Wrap("asset denoms must be different")
	}
	if p.ReserveA.IsNil() || p.ReserveA.IsNegative() {
		return ErrInvalidPoolState.Wrap("reserve A is nil or negative")
	}
	if p.ReserveB.IsNil() || p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrap("reserve B is nil or negative")
	}
	if p.TotalShares.IsNil() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("total shares is nil or negative")
	}
	if p.ShareDenom != ShareDenom(p.AccAddress()) {
		return ErrInvalidPoolState.Wrapf("share denom %s does not match pool address", p.ShareDenom)
	}
	if addr, err := sdk.AccAddressFromBech32(p.Address); err != nil || !addr.Equals(PoolAddress(p.RegistryId, p.MintA, p.MintB)) {
		return ErrInvalidPoolState.Wrap("pool address does not match its derivation inputs")
	}
	// A pool can hold reserves with zero circulating shares only in the
	// degenerate fully-withdrawn state, never the reverse.
	if p.IsEmpty() && !p.TotalShares.IsZero() {
		return ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
	}
	return nil
}

// AccAddress returns the pool's identity address parsed from its bech32 form.
func (p Pool) AccAddress() sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(p.Address)
	if err != nil {
		panic(fmt.Sprintf("stored pool address %q is not bech32: %v", p.Address, err))
	}
	return addr
}

// PoolAddress derives the deterministic identity of the pool for a
// (registry, mint A, mint B) triple. The module name is the outer
// domain-separation tag, so no other module can occupy the same address,
// and identical inputs always collide, guaranteeing one pool per triple.
func PoolAddress(registryID []byte, mintA, mintB string) sdk.AccAddress {
	return address.Module(ModuleName, registryID, []byte(mintA), []byte(mintB))
}

// PoolAuthorityAddress derives the pool's authority sub-account from the pool
// identity plus the fixed authority seed. The authority exclusively owns the
// two reserve balances; only the keeper, by re-deriving this address, can
// move them.
func PoolAuthorityAddress(poolAddr sdk.AccAddress) sdk.AccAddress {
	return address.Module(ModuleName, poolAddr.Bytes(), PoolAuthoritySeed)
}

// ShareDenom returns the claim-token denomination for a pool address.
func ShareDenom(poolAddr sdk.AccAddress) string {
	return ShareDenomPrefix + hex.EncodeToString(poolAddr.Bytes())
}
