package cli

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/reefswap/reef/x/amm/keeper"
	"github.com/reefswap/reef/x/amm/types"
)

// GetQueryCmd returns the query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM query subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		CmdQueryParams(),
		CmdQueryRegistry(),
		CmdQueryPool(),
		CmdQueryPoolByAssets(),
		CmdSimulateSwap(),
	)

	return ammQueryCmd
}

// queryStore fetches a raw value from the amm module store
func queryStore(clientCtx client.Context, key []byte) ([]byte, error) {
	result, err := clientCtx.QueryABCI(abci.RequestQuery{
		Path: fmt.Sprintf("store/%s/key", types.StoreKey),
		Data: key,
	})
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

func printRecord(clientCtx client.Context, record interface{}) error {
	bz, err := types.ModuleCdc.MarshalJSONIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// CmdQueryParams returns a CLI command handler for querying module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, keeper.ParamsKey)
			if err != nil {
				return err
			}

			params := types.DefaultParams()
			if bz != nil {
				if err := types.ModuleCdc.Unmarshal(bz, &params); err != nil {
					return err
				}
			}
			return printRecord(clientCtx, params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryRegistry returns a CLI command handler for querying a registry
func CmdQueryRegistry() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry [registry-id-hex]",
		Short: "Query a fee registry by its 32-byte hex identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid registry id: %w", err)
			}

			registry, err := fetchRegistry(clientCtx, id)
			if err != nil {
				return err
			}
			return printRecord(clientCtx, registry)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPool returns a CLI command handler for querying a pool
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-address]",
		Short: "Query a pool by its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolAddr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool address: %w", err)
			}

			pool, err := fetchPool(clientCtx, poolAddr)
			if err != nil {
				return err
			}
			return printRecord(clientCtx, pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPoolByAssets returns a CLI command handler that derives the pool
// address from its inputs and queries it
func CmdQueryPoolByAssets() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-by-assets [registry-id-hex] [mint-a] [mint-b]",
		Short: "Query a pool by registry and asset pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid registry id: %w", err)
			}

			pool, err := fetchPool(clientCtx, types.PoolAddress(id, args[1], args[2]))
			if err != nil {
				return err
			}
			return printRecord(clientCtx, pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdSimulateSwap returns a CLI command handler that quotes an exact-input
// swap against the current reserves without executing it
func CmdSimulateSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-swap [pool-address] [direction] [amount-in]",
		Short: "Quote an exact-input swap without executing it",
		Long: `Quote an exact-input swap against the current reserves. Direction is
"a-to-b" or "b-to-a". The quote charges the registry fee and rounds the
output down, matching the on-chain execution exactly.

Example:
  $ reefd query amm simulate-swap reef1pool... a-to-b 1000000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolAddr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool address: %w", err)
			}
			swapA, err := parseDirection(args[1])
			if err != nil {
				return err
			}
			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}

			pool, err := fetchPool(clientCtx, poolAddr)
			if err != nil {
				return err
			}
			registry, err := fetchRegistry(clientCtx, pool.RegistryId)
			if err != nil {
				return err
			}

			output, fee, err := quoteOutput(pool, registry.FeeBps, swapA, amountIn)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(fmt.Sprintf("amount_out: %s\nfee: %s\n", output, fee))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func fetchRegistry(clientCtx client.Context, id []byte) (*types.Registry, error) {
	bz, err := queryStore(clientCtx, keeper.RegistryStoreKey(id))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, fmt.Errorf("registry %x not found", id)
	}

	var registry types.Registry
	if err := types.ModuleCdc.Unmarshal(bz, &registry); err != nil {
		return nil, err
	}
	return &registry, nil
}

func fetchPool(clientCtx client.Context, poolAddr sdk.AccAddress) (*types.Pool, error) {
	bz, err := queryStore(clientCtx, keeper.PoolStoreKey(poolAddr))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, fmt.Errorf("pool %s not found", poolAddr)
	}

	var pool types.Pool
	if err := types.ModuleCdc.Unmarshal(bz, &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

// quoteOutput mirrors the on-chain exact-input formula: fee on the way in,
// floor division on the output.
func quoteOutput(pool *types.Pool, feeBps uint32, swapA bool, amountIn math.Int) (math.Int, math.Int, error) {
	if pool.IsEmpty() {
		return math.Int{}, math.Int{}, fmt.Errorf("pool %s has no reserves", pool.Address)
	}
	if !amountIn.IsPositive() {
		return math.Int{}, math.Int{}, fmt.Errorf("amount-in must be positive")
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if !swapA {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}

	fee := amountIn.Mul(math.NewInt(int64(feeBps))).Quo(math.NewInt(types.MaxFeeBps))
	taxed := amountIn.Sub(fee)
	if taxed.IsZero() {
		return math.Int{}, math.Int{}, fmt.Errorf("input is consumed entirely by the fee")
	}

	output := taxed.Mul(reserveOut).Quo(reserveIn.Add(taxed))
	return output, fee, nil
}
