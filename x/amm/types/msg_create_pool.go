package types

import (
	"encoding/hex"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new liquidity pool under an
// existing registry. The pool starts with zero reserves; the first deposit
// activates it.
type MsgCreatePool struct {
	Creator    string `json:"creator"`
	RegistryId string `json:"registry_id"`
	MintA      string `json:"mint_a"`
	MintB      string `json:"mint_b"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator string, registryID []byte, mintA, mintB string) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:    creator,
		RegistryId: hex.EncodeToString(registryID),
		MintA:      mintA,
		MintB:      mintB,
	}
}

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return "create_pool" }
func (*MsgCreatePool) ProtoMessage()      {}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string {
	return "create_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// GetRegistryID decodes the hex-encoded registry identifier.
func (msg MsgCreatePool) GetRegistryID() ([]byte, error) {
	id, err := hex.DecodeString(msg.RegistryId)
	if err != nil {
		return nil, sdkerrors.Wrapf(ErrInvalidInput, "registry id is not hex: %v", err)
	}
	if len(id) != RegistryIDLength {
		return nil, sdkerrors.Wrapf(ErrInvalidInput, "registry id must be %d bytes, got %d", RegistryIDLength, len(id))
	}
	return id, nil
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if _, err := msg.GetRegistryID(); err != nil {
		return err
	}

	if err := sdk.ValidateDenom(msg.MintA); err != nil {
		return sdkerrors.Wrapf(ErrInvalidMint, "invalid mint A: %s", err)
	}

	if err := sdk.ValidateDenom(msg.MintB); err != nil {
		return sdkerrors.Wrapf(ErrInvalidMint, "invalid mint B: %s", err)
	}

	if msg.MintA == msg.MintB {
		return sdkerrors.Wrap(ErrInvalidMint, "asset denoms must be different")
	}

	return nil
}
