package types

import (
	"encoding/hex"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreateRegistry{}

// MsgCreateRegistry defines a message to create a new AMM registry entry.
// The creator becomes the registry admin.
type MsgCreateRegistry struct {
	Creator    string `json:"creator"`
	RegistryId string `json:"registry_id"`
	FeeBps     uint32 `json:"fee_bps"`
}

// NewMsgCreateRegistry creates a new MsgCreateRegistry instance
func NewMsgCreateRegistry(creator string, registryID []byte, feeBps uint32) *MsgCreateRegistry {
	return &MsgCreateRegistry{
		Creator:    creator,
		RegistryId: hex.EncodeToString(registryID),
		FeeBps:     feeBps,
	}
}

func (msg *MsgCreateRegistry) Reset()         { *msg = MsgCreateRegistry{} }
func (msg *MsgCreateRegistry) String() string { return "create_registry" }
func (*MsgCreateRegistry) ProtoMessage()      {}

// Route implements the sdk.Msg interface
func (msg MsgCreateRegistry) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreateRegistry) Type() string {
	return "create_registry"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreateRegistry) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreateRegistry) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// GetRegistryID decodes the hex-encoded registry identifier.
func (msg MsgCreateRegistry) GetRegistryID() ([]byte, error) {
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
func (msg MsgCreateRegistry) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if _, err := msg.GetRegistryID(); err != nil {
		return err
	}

	if msg.FeeBps >= MaxFeeBps {
		return sdkerrors.Wrapf(ErrInvalidFee, "fee %d bps must be below %d", msg.FeeBps, MaxFeeBps)
	}

	return nil
}
