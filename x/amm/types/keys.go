package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName
)

const (
	// RegistryIDLength is the exact byte length of a registry identifier.
	RegistryIDLength = 32

	// MaxFeeBps is the exclusive upper bound for registry fee rates.
	// A fee of 10000 bps would tax 100% of every swap input.
	MaxFeeBps = 10_000

	// ShareDenomPrefix prefixes every pool claim-token denomination. The
	// full denom is ShareDenomPrefix + hex(pool address), which keeps one
	// fungible claim supply per pool and stays inside the bank module's
	// denom charset.
	ShareDenomPrefix = "amm/pool/"
)

// PoolAuthoritySeed is the fixed domain-separation tag appended to a pool's
// identity when deriving its authority sub-account. No private key exists for
// the derived address; the keeper re-derives it on every mutating call.
var PoolAuthoritySeed = []byte("pool_authority")
