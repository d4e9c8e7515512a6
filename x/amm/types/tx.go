package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreateRegistry(context.Context, *MsgCreateRegistry) (*MsgCreateRegistryResponse, error)
	UpdateRegistryFee(context.Context, *MsgUpdateRegistryFee) (*MsgUpdateRegistryFeeResponse, error)
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	DepositLiquidity(context.Context, *MsgDepositLiquidity) (*MsgDepositLiquidityResponse, error)
	WithdrawLiquidity(context.Context, *MsgWithdrawLiquidity) (*MsgWithdrawLiquidityResponse, error)
	SwapExact(context.Context, *MsgSwapExact) (*MsgSwapExactResponse, error)
}

// MsgCreateRegistryResponse defines the response for CreateRegistry
type MsgCreateRegistryResponse struct {
	RegistryId string `json:"registry_id"`
}

// MsgUpdateRegistryFeeResponse defines the response for UpdateRegistryFee
type MsgUpdateRegistryFeeResponse struct{}

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	Pool       string `json:"pool"`
	ShareDenom string `json:"share_denom"`
}

// MsgDepositLiquidityResponse defines the response for DepositLiquidity
type MsgDepositLiquidityResponse struct {
	SharesMinted math.Int `json:"shares_minted"`
}

// MsgWithdrawLiquidityResponse defines the response for WithdrawLiquidity
type MsgWithdrawLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapExactResponse defines the response for SwapExact
type MsgSwapExactResponse struct {
	AmountOut math.Int `json:"amount_out"`
}
