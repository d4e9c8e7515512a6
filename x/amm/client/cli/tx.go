package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/reefswap/reef/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreateRegistry(),
		CmdUpdateRegistryFee(),
		CmdCreatePool(),
		CmdDepositLiquidity(),
		CmdWithdrawLiquidity(),
		CmdSwapExact(),
	)

	return ammTxCmd
}

// CmdCreateRegistry returns a CLI command handler for creating a fee registry
func CmdCreateRegistry() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-registry [registry-id-hex] [fee-bps]",
		Short: "Create a fee registry",
		Long: `Create a fee registry with a 32-byte hex identity and a swap fee in
basis points. The signer becomes the registry admin. Every pool later bound
to the registry charges this fee on swaps.

Example:
  $ reefd tx amm create-registry 6f8b...32-bytes-hex 30 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid registry id: %w", err)
			}
			if len(id) != types.RegistryIDLength {
				return fmt.Errorf("registry id must be %d bytes, got %d", types.RegistryIDLength, len(id))
			}

			feeBps, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fee-bps: %w", err)
			}

			msg := types.NewMsgCreateRegistry(clientCtx.GetFromAddress().String(), id, uint32(feeBps))

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateRegistryFee returns a CLI command handler for changing a registry fee
func CmdUpdateRegistryFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-registry-fee [registry-id-hex] [fee-bps]",
		Short: "Update the swap fee of a registry",
		Long: `Update the swap fee of an existing registry. Only the registry admin may
sign this transaction. The new fee applies to all bound pools from the next
swap onward.

Example:
  $ reefd tx amm update-registry-fee 6f8b...32-bytes-hex 50 --from adminkey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid registry id: %w", err)
			}

			feeBps, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fee-bps: %w", err)
			}

			msg := types.NewMsgUpdateRegistryFee(clientCtx.GetFromAddress().String(), id, uint32(feeBps))

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreatePool returns a CLI command handler for creating an empty pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [registry-id-hex] [mint-a] [mint-b]",
		Short: "Create an empty liquidity pool",
		Long: `Create an empty pool for an asset pair under a registry. The pool address
and its claim-token denom are derived from the registry and the pair, so the
same triple always maps to the same pool. Fund it afterwards with deposit.

Example:
  $ reefd tx amm create-pool 6f8b...32-bytes-hex ureef uatom --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid registry id: %w", err)
			}

			if args[1] == args[2] {
				return fmt.Errorf("mints must be different")
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), id, args[1], args[2])

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDepositLiquidity returns a CLI command handler for depositing into a pool
func CmdDepositLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [pool-address] [amount-a] [amount-b]",
		Short: "Deposit both assets into a pool",
		Long: `Deposit both assets into a pool and receive claim shares. Amounts are
upper bounds: they are clamped to your spendable balances, and on an active
pool scaled down to the current reserve ratio.

Example:
  $ reefd tx amm deposit reef1pool... 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}

			amountB, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[2])
			}

			if !amountA.IsPositive() || !amountB.IsPositive() {
				return fmt.Errorf("both amounts must be positive")
			}

			msg := types.NewMsgDepositLiquidity(clientCtx.GetFromAddress().String(), args[0], amountA, amountB)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawLiquidity returns a CLI command handler for withdrawing from a pool
func CmdWithdrawLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-address] [shares]",
		Short: "Burn claim shares and withdraw both assets",
		Long: `Burn claim shares and receive the proportional slice of both reserves.

Example:
  $ reefd tx amm withdraw reef1pool... 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}

			if !shares.IsPositive() {
				return fmt.Errorf("shares must be positive")
			}

			msg := types.NewMsgWithdrawLiquidity(clientCtx.GetFromAddress().String(), args[0], shares)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExact returns a CLI command handler for an exact-input swap
func CmdSwapExact() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-address] [direction] [amount-in] [min-amount-out]",
		Short: "Execute an exact-input swap",
		Long: `Execute an exact-input swap against a pool. Direction is "a-to-b" or
"b-to-a". The min-amount-out parameter protects against slippage; pass 0 to
opt out.

Use the simulate-swap query to estimate the output before swapping.

Example:
  $ reefd query amm simulate-swap reef1pool... a-to-b 1000000
  $ reefd tx amm swap reef1pool... a-to-b 1000000 950000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			swapA, err := parseDirection(args[1])
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}

			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}

			if !amountIn.IsPositive() {
				return fmt.Errorf("amount-in must be positive")
			}

			if minAmountOut.IsNegative() {
				return fmt.Errorf("min-amount-out cannot be negative")
			}

			msg := types.NewMsgSwapExact(clientCtx.GetFromAddress().String(), args[0], swapA, amountIn, minAmountOut)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func parseDirection(s string) (bool, error) {
	switch s {
	case "a-to-b":
		return true, nil
	case "b-to-a":
		return false, nil
	default:
		return false, fmt.Errorf("direction must be a-to-b or b-to-a, got %q", s)
	}
}
