package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidFee            = errors.Register(ModuleName, 1, "fee rate must be below 10000 basis points")
	ErrInvalidMint           = errors.Register(ModuleName, 2, "invalid asset pair")
	ErrDepositTooSmall       = errors.Register(ModuleName, 3, "initial deposit below minimum liquidity")
	ErrOutputTooSmall        = errors.Register(ModuleName, 4, "output amount less than minimum required")
	ErrInvariantViolated     = errors.Register(ModuleName, 5, "constant product invariant violated")
	ErrOverflow              = errors.Register(ModuleName, 6, "arithmetic overflow")
	ErrRegistryExists        = errors.Register(ModuleName, 7, "registry already exists")
	ErrRegistryNotFound      = errors.Register(ModuleName, 8, "registry not found")
	ErrPoolExists            = errors.Register(ModuleName, 9, "pool already exists")
	ErrPoolNotFound          = errors.Register(ModuleName, 10, "pool not found")
	ErrInvalidInput          = errors.Register(ModuleName, 11, "invalid input")
	ErrInvalidAddress        = errors.Register(ModuleName, 12, "invalid address")
	ErrSwapTooSmall          = errors.Register(ModuleName, 13, "swap amount too small after fees")
	ErrEmptyPool             = errors.Register(ModuleName, 14, "pool has no reserves")
	ErrInsufficientFunds     = errors.Register(ModuleName, 15, "insufficient funds")
	ErrUnauthorized          = errors.Register(ModuleName, 16, "unauthorized")
	ErrInvalidPoolState      = errors.Register(ModuleName, 17, "invalid pool state")
	ErrMaxPoolsReached       = errors.Register(ModuleName, 18, "maximum number of pools reached")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 19, "insufficient liquidity in pool")
)
