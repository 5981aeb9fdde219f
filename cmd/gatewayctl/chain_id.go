package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jurisdiction_gateway/internal/pkg/utils"
)

var chainIDCmd = &cobra.Command{
	Use:   "chain-id",
	Short: "Compare the node's chain id with the expected one",
	RunE:  runChainID,
}

func runChainID(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	netCtx, err := rt.Networks.Current(ctx)
	if err != nil {
		return err
	}

	current := netCtx.ChainID
	if current == "" {
		current = "unknown"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Network:   %s\n", rt.Network.Name)
	fmt.Fprintf(out, "Expected:  %s\n", rt.Networks.ExpectedChainID())
	fmt.Fprintf(out, "Current:   %s\n", current)
	fmt.Fprintf(out, "Match:     %t\n", netCtx.ChainID == rt.Networks.ExpectedChainID())

	if netCtx.Signer == nil {
		fmt.Fprintln(out, "Signer:    none (read-only)")
		return nil
	}
	address := netCtx.Signer.Address()
	fmt.Fprintf(out, "Signer:    %s\n", address.Hex())
	balance, err := rt.Client.BalanceAt(ctx, address, nil)
	if err != nil {
		return fmt.Errorf("failed to read signer balance: %w", err)
	}
	formatted, err := utils.FormatBigInt(balance, 18)
	if err != nil {
		return err
	}
	symbol := rt.Network.NativeSymbol
	if symbol == "" {
		symbol = "ETH"
	}
	fmt.Fprintf(out, "Balance:   %s %s\n", formatted, symbol)
	return nil
}
