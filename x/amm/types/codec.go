package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the module's concrete types on the
// LegacyAmino codec. The amm records and messages are hand-written structs,
// so amino is also the store codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateRegistry{}, "amm/MsgCreateRegistry", nil)
	cdc.RegisterConcrete(&MsgUpdateRegistryFee{}, "amm/MsgUpdateRegistryFee", nil)
	cdc.RegisterConcrete(&MsgCreatePool{}, "amm/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgDepositLiquidity{}, "amm/MsgDepositLiquidity", nil)
	cdc.RegisterConcrete(&MsgWithdrawLiquidity{}, "amm/MsgWithdrawLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwapExact{}, "amm/MsgSwapExact", nil)
}

// RegisterInterfaces registers the module's interface types
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateRegistry{},
		&MsgUpdateRegistryFee{},
		&MsgCreatePool{},
		&MsgDepositLiquidity{},
		&MsgWithdrawLiquidity{},
		&MsgSwapExact{},
	)
}

// ModuleCdc is the module-wide amino codec, used for sign bytes and for
// marshaling stored records.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
}
