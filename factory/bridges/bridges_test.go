package bridges_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openweb3-io/bridgekit"
	"github.com/openweb3-io/bridgekit/builder"
	"github.com/openweb3-io/bridgekit/contract"
	"github.com/openweb3-io/bridgekit/contract/mocks"
	"github.com/openweb3-io/bridgekit/factory/bridges"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type BridgesTestSuite struct {
	suite.Suite
	accessor *mocks.MockAccessor
	cfg      *xc.ChainConfig
}

func TestBridgesTestSuite(t *testing.T) {
	suite.Run(t, new(BridgesTestSuite))
}

func (s *BridgesTestSuite) SetupTest() {
	s.accessor = mocks.NewMockAccessor(gomock.NewController(s.T()))
	s.cfg = &xc.ChainConfig{
		Name:         "sepolia",
		ChainID:      11155111,
		VaultAddress: "0x0000000000000000000000000000000000000ddd",
		Bridge:       xc.BridgeConfig{NoTokenDeployedGasLimit: 1, NoOwnerGasLimit: 2},
	}
}

func (s *BridgesTestSuite) TestERC20Registered() {
	require := s.Require()

	b, err := bridges.NewBridge(xc.AssetKindERC20, s.accessor, s.cfg, bridges.Options{Logger: zap.NewNop()})
	require.NoError(err)
	require.NotNil(b)

	_, ok := b.(bridgekit.Approver)
	require.True(ok)
}

func (s *BridgesTestSuite) TestUnknownKind() {
	require := s.Require()

	_, err := bridges.NewBridge(xc.AssetKind("erc721"), s.accessor, s.cfg, bridges.Options{})
	require.ErrorContains(err, "unsupported asset kind")

	_, err = bridges.NewBridge(xc.AssetKindERC1155, s.accessor, s.cfg, bridges.Options{})
	require.ErrorContains(err, "bridge creator for erc1155 not found")
}

type stubBridge struct{}

func (b *stubBridge) EstimateGas(ctx context.Context, req *builder.BridgeRequest) (uint64, error) {
	return 0, nil
}

func (b *stubBridge) RequireAllowance(ctx context.Context, query *builder.AllowanceQuery) (bool, error) {
	return false, nil
}

func (b *stubBridge) Bridge(ctx context.Context, req *builder.BridgeRequest) (xc.TxHash, error) {
	return "", nil
}

func (s *BridgesTestSuite) TestRegisterBridge() {
	require := s.Require()

	bridges.RegisterBridge(xc.AssetKindNative, func(accessor contract.Accessor, cfg *xc.ChainConfig, opts bridges.Options) (bridgekit.Bridge, error) {
		return &stubBridge{}, nil
	})
	b, err := bridges.NewBridge(xc.AssetKindNative, s.accessor, s.cfg, bridges.Options{})
	require.NoError(err)
	require.IsType(&stubBridge{}, b)

	_, ok := b.(bridgekit.Approver)
	require.False(ok)
}
