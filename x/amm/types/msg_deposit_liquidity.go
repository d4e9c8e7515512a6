package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgDepositLiquidity{}

// MsgDepositLiquidity defines a message to deposit both pool assets in
// exchange for claim tokens. Requested amounts are upper bounds: they are
// clamped to the depositor's balances and, on an active pool, reduced to
// match the current reserve ratio.
type MsgDepositLiquidity struct {
	Depositor string   `json:"depositor"`
	Pool      string   `json:"pool"`
	AmountA   math.Int `json:"amount_a"`
	AmountB   math.Int `json:"amount_b"`
}

// NewMsgDepositLiquidity creates a new MsgDepositLiquidity instance
func NewMsgDepositLiquidity(depositor, pool string, amountA, amountB math.Int) *MsgDepositLiquidity {
	return &MsgDepositLiquidity{
		Depositor: depositor,
		Pool:      pool,
		AmountA:   amountA,
		AmountB:   amountB,
	}
}

func (msg *MsgDepositLiquidity) Reset()         { *msg = MsgDepositLiquidity{} }
func (msg *MsgDepositLiquidity) String() string { return "deposit_liquidity" }
func (*MsgDepositLiquidity) ProtoMessage()      {}

// Route implements the sdk.Msg interface
func (msg MsgDepositLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgDepositLiquidity) Type() string {
	return "deposit_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgDepositLiquidity) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDepositLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDepositLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid depositor address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Pool); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid pool address: %s", err)
	}

	if msg.AmountA.IsNil() || msg.AmountA.LTE(math.ZeroInt()) {
		return sdkerrors.Wrap(ErrInvalidInput, "amount A must be positive")
	}

	if msg.AmountB.IsNil() || msg.AmountB.LTE(math.ZeroInt()) {
		return sdkerrors.Wrap(ErrInvalidInput, "amount B must be positive")
	}

	return nil
}
