package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/abiargs"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	waitMined bool
)

var callCmd = &cobra.Command{
	Use:   "call <contract> <address> <method> [args...]",
	Short: "Read from a contract",
	Long: `Read from a contract. Arguments are JSON literals (numbers, booleans, arrays,
objects for tuples) or bare strings.

Example:
  gatewayctl call Case 0x5FbDB2315678afecb367f032d93F642f64180aa3 stage
  gatewayctl call AvatarNFT 0x9fE4...a6e0 getRepForDomain 12 social 1`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(cmd, args, false)
	},
}

var transactCmd = &cobra.Command{
	Use:   "transact <contract> <address> <method> [args...]",
	Short: "Send a transaction to a contract",
	Long: `Send a transaction to a contract. The node must be on the expected chain.
By default the command returns as soon as the transaction is submitted; use
--wait to block until it is mined.

Example:
  gatewayctl transact Case 0x5FbDB2315678afecb367f032d93F642f64180aa3 stageFile --wait`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(cmd, args, true)
	},
}

func init() {
	transactCmd.Flags().BoolVar(&waitMined, "wait", false, "wait for the transaction receipt")
}

func runInvoke(cmd *cobra.Command, args []string, mutating bool) error {
	contractName, address, method := args[0], args[1], args[2]

	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	descriptor, err := rt.Descriptors.Descriptor(contractName, address)
	if err != nil {
		return err
	}
	var inputs abi.Arguments
	abiMethod, known := descriptor.ABI.Methods[method]
	if known {
		inputs = abiMethod.Inputs
	}
	callArgs := parseCLIArgs(args[3:], inputs)
	if known {
		callArgs, err = abiargs.Coerce(abiMethod, callArgs)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	netCtx, err := rt.Networks.Current(ctx)
	if err != nil {
		return err
	}
	result, err := rt.Gateway.Invoke(ctx, descriptor, entity.CallRequest{Operation: method, Args: callArgs, Mutating: mutating}, netCtx)
	if err != nil {
		return err
	}

	if !mutating {
		return printJSON(cmd, map[string]any{"method": method, "values": abiargs.RenderAll(result.Values)})
	}

	out := map[string]any{"method": method, "txHash": result.Tx.Hash().Hex(), "nonce": result.Tx.Nonce()}
	if waitMined {
		fmt.Fprintf(cmd.ErrOrStderr(), "waiting for %s to be mined...\n", result.Tx.Hash().Hex())
		receipt, err := bind.WaitMined(ctx, rt.Client, result.Tx)
		if err != nil {
			return fmt.Errorf("failed waiting for %s: %w", result.Tx.Hash().Hex(), err)
		}
		out["blockNumber"] = receipt.BlockNumber.String()
		out["gasUsed"] = receipt.GasUsed
		out["success"] = receipt.Status == types.ReceiptStatusSuccessful
	}
	return printJSON(cmd, out)
}

// parseCLIArgs reads each argument as a JSON literal, falling back to the bare string.
// Arguments bound to a string input stay text unless they are a quoted JSON string.
func parseCLIArgs(raw []string, inputs abi.Arguments) []any {
	decoder := jsoniter.Config{UseNumber: true}.Froze()
	out := make([]any, len(raw))
	for i, arg := range raw {
		var v any
		if err := decoder.UnmarshalFromString(arg, &v); err != nil {
			out[i] = arg
			continue
		}
		if _, isString := v.(string); !isString && i < len(inputs) && inputs[i].Type.T == abi.StringTy {
			out[i] = arg
			continue
		}
		out[i] = v
	}
	return out
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
