package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwapExact{}

// MsgSwapExact defines an exact-input swap against a pool. SwapA selects the
// direction: true trades mint A for mint B, false the reverse. MinAmountOut
// is the caller's slippage floor.
type MsgSwapExact struct {
	Trader       string   `json:"trader"`
	Pool         string   `json:"pool"`
	SwapA        bool     `json:"swap_a"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// NewMsgSwapExact creates a new MsgSwapExact instance
func NewMsgSwapExact(trader, pool string, swapA bool, amountIn, minAmountOut math.Int) *MsgSwapExact {
	return &MsgSwapExact{
		Trader:       trader,
		Pool:         pool,
		SwapA:        swapA,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

func (msg *MsgSwapExact) Reset()         { *msg = MsgSwapExact{} }
func (msg *MsgSwapExact) String() string { return "swap_exact" }
func (*MsgSwapExact) ProtoMessage()      {}

// Route implements the sdk.Msg interface
func (msg MsgSwapExact) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExact) Type() string {
	return "swap_exact"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExact) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExact) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExact) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Pool); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid pool address: %s", err)
	}

	if msg.AmountIn.IsNil() || msg.AmountIn.LTE(math.ZeroInt()) {
		return sdkerrors.Wrap(ErrInvalidInput, "input amount must be positive")
	}

	// A zero minimum output is allowed: the caller opts out of slippage
	// protection.
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "minimum output must be non-negative")
	}

	return nil
}
