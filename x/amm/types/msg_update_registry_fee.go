package types

import (
	"encoding/hex"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgUpdateRegistryFee{}

// MsgUpdateRegistryFee defines a message for a registry admin to change the
// registry's swap fee. The fee bound is the same as at creation.
type MsgUpdateRegistryFee struct {
	Admin      string `json:"admin"`
	RegistryId string `json:"registry_id"`
	FeeBps     uint32 `json:"fee_bps"`
}

// NewMsgUpdateRegistryFee creates a new MsgUpdateRegistryFee instance
func NewMsgUpdateRegistryFee(admin string, registryID []byte, feeBps uint32) *MsgUpdateRegistryFee {
	return &MsgUpdateRegistryFee{
		Admin:      admin,
		RegistryId: hex.EncodeToString(registryID),
		FeeBps:     feeBps,
	}
}

func (msg *MsgUpdateRegistryFee) Reset()         { *msg = MsgUpdateRegistryFee{} }
func (msg *MsgUpdateRegistryFee) String() string { return "update_registry_fee" }
func (*MsgUpdateRegistryFee) ProtoMessage()      {}

// Route implements the sdk.Msg interface
func (msg MsgUpdateRegistryFee) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgUpdateRegistryFee) Type() string {
	return "update_registry_fee"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateRegistryFee) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateRegistryFee) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// GetRegistryID decodes the hex-encoded registry identifier.
func (msg MsgUpdateRegistryFee) GetRegistryID() ([]byte, error) {
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
func (msg MsgUpdateRegistryFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}

	if _, err := msg.GetRegistryID(); err != nil {
		return err
	}

	if msg.FeeBps >= MaxFeeBps {
		return sdkerrors.Wrapf(ErrInvalidFee, "fee %d bps must be below %d", msg.FeeBps, MaxFeeBps)
	}

	return nil
}
