package types

import (
	"encoding/hex"
	"fmt"
)

// GenesisState defines the amm module's genesis state.
type GenesisState struct {
	Params     Params     `json:"params"`
	Registries []Registry `json:"registries"`
	Pools      []Pool     `json:"pools"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Registries: []Registry{},
		Pools:      []Pool{},
	}
}

// Validate ensures the genesis state is well-formed: valid params, no
// duplicate registries, and every pool bound to a declared registry with a
// unique derivation triple.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	registries := make(map[string]struct{}, len(gs.Registries))
	for _, registry := range gs.Registries {
		if err := registry.Validate(); err != nil {
			return fmt.Errorf("invalid registry %x: %w", registry.Id, err)
		}
		id := hex.EncodeToString(registry.Id)
		if _, ok := registries[id]; ok {
			return fmt.Errorf("duplicate registry id %s", id)
		}
		registries[id] = struct{}{}
	}

	if uint64(len(gs.Pools)) > gs.Params.MaxPools {
		return fmt.Errorf("genesis declares %d pools, max is %d", len(gs.Pools), gs.Params.MaxPools)
	}

	pools := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %s: %w", pool.Address, err)
		}
		if _, ok := registries[hex.EncodeToString(pool.RegistryId)]; !ok {
			return fmt.Errorf("pool %s references unknown registry %x", pool.Address, pool.RegistryId)
		}
		if _, ok := pools[pool.Address]; ok {
			return fmt.Errorf("duplicate pool %s", pool.Address)
		}
		pools[pool.Address] = struct{}{}
	}

	return nil
}
