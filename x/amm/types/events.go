package types

// Event types for the amm module
const (
	EventTypeCreateRegistry    = "create_registry"
	EventTypeUpdateRegistryFee = "update_registry_fee"
	EventTypeCreatePool        = "create_pool"
	EventTypeDeposit           = "deposit_liquidity"
	EventTypeWithdraw          = "withdraw_liquidity"
	EventTypeSwap              = "swap_exact"

	AttributeKeyRegistryId = "registry_id"
	AttributeKeyAdmin      = "admin"
	AttributeKeyFeeBps     = "fee_bps"
	AttributeKeyPool       = "pool"
	AttributeKeyShareDenom = "share_denom"
	AttributeKeyMintA      = "mint_a"
	AttributeKeyMintB      = "mint_b"
	AttributeKeyDepositor  = "depositor"
	AttributeKeyWithdrawer = "withdrawer"
	AttributeKeyTrader     = "trader"
	AttributeKeyAmountA    = "amount_a"
	AttributeKeyAmountB    = "amount_b"
	AttributeKeyShares     = "shares"
	AttributeKeyAmountIn   = "amount_in"
	AttributeKeyAmountOut  = "amount_out"
	AttributeKeyFee        = "fee"
)
