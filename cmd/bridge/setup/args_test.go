package setup_test

import (
	"testing"

	"github.com/openweb3-io/bridgekit/cmd/bridge/setup"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestRpcArgsFromCmd(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	setup.AddRpcArgs(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--chain", "bsc", "--rpc", "http://127.0.0.1:8545", "-v"}))

	args, err := setup.RpcArgsFromCmd(cmd)
	require.NoError(t, err)
	require.Equal(t, "bsc", args.Chain)
	require.Equal(t, "http://127.0.0.1:8545", args.Rpc)
	require.Equal(t, "env:BRIDGE_PRIVATE_KEY", args.Key)
	require.True(t, args.Verbose)
}

func TestLoadChainOverridesRpc(t *testing.T) {
	args := &setup.RpcArgs{Chain: "bsc", Rpc: "http://127.0.0.1:8545"}
	xcFactory, err := setup.LoadFactory(args)
	require.NoError(t, err)

	chain, err := setup.LoadChain(xcFactory, args)
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8545", chain.URL)
	require.EqualValues(t, 56, chain.ChainID)

	// the stored config keeps its url
	stored, err := xcFactory.GetChain("bsc")
	require.NoError(t, err)
	require.NotEqual(t, "http://127.0.0.1:8545", stored.URL)

	ctx := setup.CreateContext(xcFactory, chain, args)
	require.Equal(t, chain, setup.UnwrapChain(ctx))
	require.Equal(t, xcFactory, setup.UnwrapXc(ctx))
	require.Equal(t, args, setup.UnwrapArgs(ctx))
}
