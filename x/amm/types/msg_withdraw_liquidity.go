package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWithdrawLiquidity{}

// MsgWithdrawLiquidity defines a message to burn claim tokens for a pro-rata
// share of both pool reserves.
type MsgWithdrawLiquidity struct {
	Withdrawer string   `json:"withdrawer"`
	Pool       string   `json:"pool"`
	Shares     math.Int `json:"shares"`
}

// NewMsgWithdrawLiquidity creates a new MsgWithdrawLiquidity instance
func NewMsgWithdrawLiquidity(withdrawer, pool string, shares math.Int) *MsgWithdrawLiquidity {
	return &MsgWithdrawLiquidity{
		Withdrawer: withdrawer,
		Pool:       pool,
		Shares:     shares,
	}
}

func (msg *MsgWithdrawLiquidity) Reset()         { *msg = MsgWithdrawLiquidity{} }
func (msg *MsgWithdrawLiquidity) String() string { return "withdraw_liquidity" }
func (*MsgWithdrawLiquidity) ProtoMessage()      {}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgWithdrawLiquidity) Type() string {
	return "withdraw_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdrawLiquidity) GetSigners() []sdk.AccAddress {
	withdrawer, err := sdk.AccAddressFromBech32(msg.Withdrawer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{withdrawer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdrawLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdrawLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Withdrawer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid withdrawer address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Pool); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid pool address: %s", err)
	}

	if msg.Shares.IsNil() || msg.Shares.LTE(math.ZeroInt()) {
		return sdkerrors.Wrap(ErrInvalidInput, "shares must be positive")
	}

	return nil
}
