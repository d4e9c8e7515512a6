package keeper

import (
	"context"
	"encoding/hex"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateRegistry handles MsgCreateRegistry
func (k msgServer) CreateRegistry(ctx context.Context, msg *types.MsgCreateRegistry) (*types.MsgCreateRegistryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid creator address: %v", err)
	}
	id, err := msg.GetRegistryID()
	if err != nil {
		return nil, err
	}

	registry, err := k.Keeper.CreateRegistry(ctx, creator, id, msg.FeeBps)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateRegistryResponse{
		RegistryId: hex.EncodeToString(registry.Id),
	}, nil
}

// UpdateRegistryFee handles MsgUpdateRegistryFee
func (k msgServer) UpdateRegistryFee(ctx context.Context, msg *types.MsgUpdateRegistryFee) (*types.MsgUpdateRegistryFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid admin address: %v", err)
	}
	id, err := msg.GetRegistryID()
	if err != nil {
		return nil, err
	}

	if err := k.Keeper.UpdateRegistryFee(ctx, admin, id, msg.FeeBps); err != nil {
		return nil, err
	}

	return &types.MsgUpdateRegistryFeeResponse{}, nil
}

// CreatePool handles MsgCreatePool
func (k msgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid creator address: %v", err)
	}
	id, err := msg.GetRegistryID()
	if err != nil {
		return nil, err
	}

	pool, err := k.Keeper.CreatePool(ctx, creator, id, msg.MintA, msg.MintB)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{
		Pool:       pool.Address,
		ShareDenom: pool.ShareDenom,
	}, nil
}

// DepositLiquidity handles MsgDepositLiquidity
func (k msgServer) DepositLiquidity(ctx context.Context, msg *types.MsgDepositLiquidity) (*types.MsgDepositLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid depositor address: %v", err)
	}
	poolAddr, err := sdk.AccAddressFromBech32(msg.Pool)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid pool address: %v", err)
	}

	minted, err := k.Keeper.DepositLiquidity(ctx, depositor, poolAddr, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, err
	}

	return &types.MsgDepositLiquidityResponse{SharesMinted: minted}, nil
}

// WithdrawLiquidity handles MsgWithdrawLiquidity
func (k msgServer) WithdrawLiquidity(ctx context.Context, msg *types.MsgWithdrawLiquidity) (*types.MsgWithdrawLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	withdrawer, err := sdk.AccAddressFromBech32(msg.Withdrawer)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid withdrawer address: %v", err)
	}
	poolAddr, err := sdk.AccAddressFromBech32(msg.Pool)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid pool address: %v", err)
	}

	amountA, amountB, err := k.Keeper.WithdrawLiquidity(ctx, withdrawer, poolAddr, msg.Shares)
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// SwapExact handles MsgSwapExact
func (k msgServer) SwapExact(ctx context.Context, msg *types.MsgSwapExact) (*types.MsgSwapExactResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid trader address: %v", err)
	}
	poolAddr, err := sdk.AccAddressFromBech32(msg.Pool)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "invalid pool address: %v", err)
	}

	amountOut, err := k.Keeper.SwapExact(ctx, trader, poolAddr, msg.SwapA, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapExactResponse{AmountOut: amountOut}, nil
}
