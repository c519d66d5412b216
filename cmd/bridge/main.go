package main

import (
	"os"

	"github.com/openweb3-io/bridgekit/cmd/bridge/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:          "bridge",
		Short:        "Move ERC20 tokens across chains through the bridge vault",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.RpcArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			if err := setup.ConfigureLogging(args); err != nil {
				return err
			}

			xcFactory, err := setup.LoadFactory(args)
			if err != nil {
				return err
			}

			chainConfig, err := setup.LoadChain(xcFactory, args)
			if err != nil {
				return err
			}

			ctx := setup.CreateContext(xcFactory, chainConfig, args)
			logrus.WithFields(logrus.Fields{
				"rpc":      chainConfig.URL,
				"chain":    chainConfig.Name,
				"chain_id": chainConfig.ChainID,
			}).Debug("chain")

			cmd.SetContext(ctx)
			return nil
		},
	}
	setup.AddRpcArgs(cmd)

	cmd.AddCommand(CmdConfig())
	cmd.AddCommand(CmdBalance())
	cmd.AddCommand(CmdAllowance())
	cmd.AddCommand(CmdApprove())
	cmd.AddCommand(CmdEstimate())
	cmd.AddCommand(CmdSend())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
