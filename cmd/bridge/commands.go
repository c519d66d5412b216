package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/openweb3-io/bridgekit"
	"github.com/openweb3-io/bridgekit/blockchain/evm/address"
	"github.com/openweb3-io/bridgekit/builder"
	"github.com/openweb3-io/bridgekit/cmd/bridge/setup"
	"github.com/openweb3-io/bridgekit/contract"
	"github.com/openweb3-io/bridgekit/contract/abi/erc20"
	"github.com/openweb3-io/bridgekit/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func CmdConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration of the selected chain.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain := setup.UnwrapChain(cmd.Context())
			bz, err := yaml.Marshal(chain)
			if err != nil {
				return err
			}
			fmt.Print(string(bz))
			return nil
		},
	}
}

func CmdBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <token> <owner>",
		Short: "Show the token balance of an address.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accessor, err := dial(ctx)
			if err != nil {
				return err
			}
			defer accessor.Close()

			token := types.Address(args[0])
			owner, err := address.FromHex(types.Address(args[1]))
			if err != nil {
				return err
			}
			decimals, err := tokenDecimals(cmd, accessor, token)
			if err != nil {
				return err
			}

			balance, err := readUint(ctx, accessor, token, erc20.BalanceOfMethod, owner)
			if err != nil {
				return fmt.Errorf("could not read balance: %v", err)
			}
			fmt.Printf("%s (%s)\n", balance.ToHuman(decimals).String(), balance.String())
			return nil
		},
	}
	cmd.Flags().Int32("decimals", 0, "Token decimals, read from the token when not set")
	return cmd
}

func CmdAllowance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowance <token> <owner>",
		Short: "Show how much of a token the vault may move for an owner.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			chain := setup.UnwrapChain(ctx)
			accessor, err := dial(ctx)
			if err != nil {
				return err
			}
			defer accessor.Close()

			token := types.Address(args[0])
			owner := types.Address(args[1])
			spender, err := spenderFlag(cmd, chain)
			if err != nil {
				return err
			}
			decimals, err := tokenDecimals(cmd, accessor, token)
			if err != nil {
				return err
			}

			ownerAddr, err := address.FromHex(owner)
			if err != nil {
				return err
			}
			spenderAddr, err := address.FromHex(spender)
			if err != nil {
				return err
			}
			allowance, err := readUint(ctx, accessor, token, erc20.AllowanceMethod, ownerAddr, spenderAddr)
			if err != nil {
				return fmt.Errorf("could not read allowance: %v", err)
			}
			fmt.Printf("allowance: %s (%s)\n", allowance.ToHuman(decimals).String(), allowance.String())

			amountHuman, _ := cmd.Flags().GetString("amount")
			if amountHuman == "" {
				return nil
			}
			amount, err := parseTokenAmount(amountHuman, decimals)
			if err != nil {
				return err
			}
			query, err := builder.NewAllowanceQuery(token, owner, spender, amount)
			if err != nil {
				return err
			}
			b, err := newBridge(ctx, accessor)
			if err != nil {
				return err
			}
			required, err := b.RequireAllowance(ctx, query)
			if err != nil {
				return err
			}
			fmt.Printf("approve required for %s: %v\n", amountHuman, required)
			return nil
		},
	}
	cmd.Flags().String("spender", "", "Spender to check, defaults to the chain's vault")
	cmd.Flags().String("amount", "", "Also report whether an approval is needed for this amount")
	cmd.Flags().Int32("decimals", 0, "Token decimals, read from the token when not set")
	return cmd
}

func CmdApprove() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <token> <amount>",
		Short: "Allow the vault to move an amount of a token from the wallet.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			xcFactory := setup.UnwrapXc(ctx)
			chain := setup.UnwrapChain(ctx)
			rpcArgs := setup.UnwrapArgs(ctx)

			accessor, err := dial(ctx)
			if err != nil {
				return err
			}
			defer accessor.Close()

			token := types.Address(args[0])
			spender, err := spenderFlag(cmd, chain)
			if err != nil {
				return err
			}
			decimals, err := tokenDecimals(cmd, accessor, token)
			if err != nil {
				return err
			}
			amount, err := parseTokenAmount(args[1], decimals)
			if err != nil {
				return err
			}

			w, err := xcFactory.NewWallet(ctx, chain, rpcArgs.Key)
			if err != nil {
				return fmt.Errorf("could not load wallet: %v", err)
			}
			approveArgs, err := builder.NewApproveArgs(token, spender, amount, w)
			if err != nil {
				return err
			}

			b, err := newBridge(ctx, accessor)
			if err != nil {
				return err
			}
			approver, ok := b.(bridgekit.Approver)
			if !ok {
				return fmt.Errorf("bridge for %s does not support approvals", types.AssetKindERC20)
			}
			hash, err := approver.Approve(ctx, approveArgs)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"owner":   w.Address(),
				"spender": spender,
				"amount":  amount.String(),
			}).Info("approve submitted")
			fmt.Println(hash)
			return nil
		},
	}
	cmd.Flags().String("spender", "", "Spender to approve, defaults to the chain's vault")
	cmd.Flags().Int32("decimals", 0, "Token decimals, read from the token when not set")
	return cmd
}

func CmdEstimate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <token> <recipient> <amount>",
		Short: "Estimate the gas of a cross-chain send.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accessor, err := dial(ctx)
			if err != nil {
				return err
			}
			defer accessor.Close()

			b, req, err := bridgeRequest(cmd, accessor, args)
			if err != nil {
				return err
			}
			gas, err := b.EstimateGas(ctx, req)
			if err != nil {
				return fmt.Errorf("could not estimate gas: %v", err)
			}
			fmt.Println(gas)
			return nil
		},
	}
	addBridgeFlags(cmd)
	return cmd
}

func CmdSend() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "send <token> <recipient> <amount>",
		Aliases: []string{"bridge"},
		Short:   "Send tokens to another chain. The vault must already be approved.",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accessor, err := dial(ctx)
			if err != nil {
				return err
			}
			defer accessor.Close()

			b, req, err := bridgeRequest(cmd, accessor, args)
			if err != nil {
				return err
			}
			hash, err := b.Bridge(ctx, req)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"token":      req.GetToken(),
				"recipient":  req.GetRecipient(),
				"dest_chain": req.GetDestChainID().String(),
				"amount":     req.GetAmount().String(),
			}).Info("bridge submitted")
			fmt.Println(hash)
			return nil
		},
	}
	addBridgeFlags(cmd)
	return cmd
}

func addBridgeFlags(cmd *cobra.Command) {
	cmd.Flags().String("dest-chain", "", "Destination chain id. Required.")
	cmd.Flags().String("fee", "0", "Processing fee in native currency, e.g. 0.001")
	cmd.Flags().String("memo", "", "Optional memo")
	cmd.Flags().Bool("deployed", false, "Token is already deployed on the destination chain")
	cmd.Flags().Int32("decimals", 0, "Token decimals, read from the token when not set")
}

func bridgeRequest(cmd *cobra.Command, accessor *contract.EthAccessor, args []string) (bridgekit.Bridge, *builder.BridgeRequest, error) {
	ctx := cmd.Context()
	xcFactory := setup.UnwrapXc(ctx)
	chain := setup.UnwrapChain(ctx)
	rpcArgs := setup.UnwrapArgs(ctx)

	if chain.VaultAddress == "" {
		return nil, nil, fmt.Errorf("no vault_address configured for chain %s", chain.Name)
	}
	destChain, _ := cmd.Flags().GetString("dest-chain")
	if destChain == "" {
		return nil, nil, fmt.Errorf("--dest-chain required")
	}
	destChainID, ok := new(big.Int).SetString(destChain, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid --dest-chain: %s", destChain)
	}

	token := types.Address(args[0])
	recipient := types.Address(args[1])
	decimals, err := tokenDecimals(cmd, accessor, token)
	if err != nil {
		return nil, nil, err
	}
	amount, err := parseTokenAmount(args[2], decimals)
	if err != nil {
		return nil, nil, err
	}

	feeHuman, _ := cmd.Flags().GetString("fee")
	nativeDecimals := chain.Decimals
	if nativeDecimals == 0 {
		nativeDecimals = 18
	}
	fee, err := parseAmount(feeHuman, nativeDecimals)
	if err != nil {
		return nil, nil, err
	}
	memo, _ := cmd.Flags().GetString("memo")
	deployed, _ := cmd.Flags().GetBool("deployed")

	w, err := xcFactory.NewWallet(ctx, chain, rpcArgs.Key)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load wallet: %v", err)
	}

	req, err := builder.NewBridgeRequest(
		types.BigInt(*destChainID),
		recipient,
		token,
		amount,
		chain.VaultAddress,
		w,
		builder.WithProcessingFee(fee),
		builder.WithTokenDeployed(deployed),
		builder.WithMemo(memo),
	)
	if err != nil {
		return nil, nil, err
	}

	b, err := newBridge(ctx, accessor)
	if err != nil {
		return nil, nil, err
	}
	return b, req, nil
}

func dial(ctx context.Context) (*contract.EthAccessor, error) {
	xcFactory := setup.UnwrapXc(ctx)
	chain := setup.UnwrapChain(ctx)
	return xcFactory.NewAccessor(ctx, chain)
}

func newBridge(ctx context.Context, accessor contract.Accessor) (bridgekit.Bridge, error) {
	xcFactory := setup.UnwrapXc(ctx)
	chain := setup.UnwrapChain(ctx)
	return xcFactory.NewBridge(types.AssetKindERC20, accessor, chain)
}

func spenderFlag(cmd *cobra.Command, chain *types.ChainConfig) (types.Address, error) {
	spender, _ := cmd.Flags().GetString("spender")
	if spender != "" {
		return types.Address(spender), nil
	}
	if chain.VaultAddress == "" {
		return "", fmt.Errorf("no vault_address configured for chain %s, pass --spender", chain.Name)
	}
	return chain.VaultAddress, nil
}

func parseAmount(human string, decimals int32) (types.BigInt, error) {
	amount, err := types.NewAmountHumanReadableFromStr(human)
	if err != nil {
		return types.BigInt{}, fmt.Errorf("invalid amount %q: %v", human, err)
	}
	value, err := amount.ToBlockchainExact(decimals)
	if err != nil {
		return types.BigInt{}, fmt.Errorf("invalid amount %q: %v", human, err)
	}
	if value.Sign() < 0 {
		return types.BigInt{}, fmt.Errorf("invalid amount %q: must not be negative", human)
	}
	return value, nil
}

// parseTokenAmount is parseAmount for the moved token amount, which must be positive
func parseTokenAmount(human string, decimals int32) (types.BigInt, error) {
	value, err := parseAmount(human, decimals)
	if err != nil {
		return types.BigInt{}, err
	}
	if value.Sign() == 0 {
		return types.BigInt{}, fmt.Errorf("invalid amount %q: must be greater than zero", human)
	}
	return value, nil
}

func tokenDecimals(cmd *cobra.Command, accessor contract.Accessor, token types.Address) (int32, error) {
	decimals, _ := cmd.Flags().GetInt32("decimals")
	if decimals > 0 {
		return decimals, nil
	}
	reader, err := accessor.Reader(token, erc20.ABI)
	if err != nil {
		return 0, err
	}
	out, err := reader.Call(cmd.Context(), erc20.DecimalsMethod)
	if err != nil {
		return 0, fmt.Errorf("could not read token decimals, pass --decimals: %v", err)
	}
	if len(out) == 0 {
		return 0, fmt.Errorf("empty decimals result from %s", token)
	}
	value, ok := out[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("unexpected decimals result %T", out[0])
	}
	return int32(value), nil
}

func readUint(ctx context.Context, accessor contract.Accessor, token types.Address, method string, params ...interface{}) (types.BigInt, error) {
	reader, err := accessor.Reader(token, erc20.ABI)
	if err != nil {
		return types.BigInt{}, err
	}
	out, err := reader.Call(ctx, method, params...)
	if err != nil {
		return types.BigInt{}, err
	}
	if len(out) == 0 {
		return types.BigInt{}, fmt.Errorf("empty %s result from %s", method, token)
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return types.BigInt{}, fmt.Errorf("unexpected %s result %T", method, out[0])
	}
	return types.BigInt(*value), nil
}
