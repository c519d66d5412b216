package setup

import (
	"context"
	"fmt"

	"github.com/openweb3-io/bridgekit/config"
	"github.com/openweb3-io/bridgekit/factory"
	"github.com/openweb3-io/bridgekit/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ContextKey string

const (
	ContextXc    ContextKey = "xc"
	ContextChain ContextKey = "chain"
	ContextArgs  ContextKey = "args"
)

func WrapXc(ctx context.Context, xcFactory *factory.Factory) context.Context {
	ctx = context.WithValue(ctx, ContextXc, xcFactory)
	return ctx
}

func UnwrapXc(ctx context.Context) *factory.Factory {
	return ctx.Value(ContextXc).(*factory.Factory)
}

func WrapChain(ctx context.Context, chain *types.ChainConfig) context.Context {
	ctx = context.WithValue(ctx, ContextChain, chain)
	return ctx
}

func UnwrapChain(ctx context.Context) *types.ChainConfig {
	return ctx.Value(ContextChain).(*types.ChainConfig)
}

func WrapArgs(ctx context.Context, args *RpcArgs) context.Context {
	return context.WithValue(ctx, ContextArgs, args)
}

func UnwrapArgs(ctx context.Context) *RpcArgs {
	return ctx.Value(ContextArgs).(*RpcArgs)
}

func CreateContext(xcFactory *factory.Factory, chain *types.ChainConfig, args *RpcArgs) context.Context {
	ctx := context.Background()
	ctx = WrapXc(ctx, xcFactory)
	ctx = WrapChain(ctx, chain)
	ctx = WrapArgs(ctx, args)
	return ctx
}

type RpcArgs struct {
	ConfigPath string
	Chain      string
	Rpc        string
	Key        string
	Verbose    bool
}

func AddRpcArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to a YAML config merged over the defaults. Optional.")
	cmd.PersistentFlags().String("chain", "", "Chain to use. Defaults to the configured chain.")
	cmd.PersistentFlags().String("rpc", "", "RPC url to use. Optional.")
	cmd.PersistentFlags().String("key", "env:BRIDGE_PRIVATE_KEY", "Private key reference (env:, file:, vault:, gsm: or raw hex).")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging.")
}

func RpcArgsFromCmd(cmd *cobra.Command) (*RpcArgs, error) {
	configPath, _ := cmd.Flags().GetString("config")
	chain, _ := cmd.Flags().GetString("chain")
	rpc, _ := cmd.Flags().GetString("rpc")
	key, _ := cmd.Flags().GetString("key")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return &RpcArgs{
		ConfigPath: configPath,
		Chain:      chain,
		Rpc:        rpc,
		Key:        key,
		Verbose:    verbose,
	}, nil
}

// ConfigureLogging sets up logrus for the CLI and the global zap logger used by the library
func ConfigureLogging(args *RpcArgs) error {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	zapCfg := zap.NewProductionConfig()
	if args.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
		zapCfg = zap.NewDevelopmentConfig()
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func LoadFactory(rpcArgs *RpcArgs) (*factory.Factory, error) {
	cfg, err := config.Load(rpcArgs.ConfigPath)
	if err != nil {
		return nil, err
	}
	return factory.NewFactory(cfg, factory.WithLogger(zap.L())), nil
}

func LoadChain(xcFactory *factory.Factory, rpcArgs *RpcArgs) (*types.ChainConfig, error) {
	chainCfg, err := xcFactory.GetChain(rpcArgs.Chain)
	if err != nil {
		return nil, err
	}
	if rpcArgs.Rpc != "" {
		chainCfg.URL = rpcArgs.Rpc
	}
	return chainCfg, nil
}
