package builder_test

import (
	"math/big"
	"testing"

	"github.com/openweb3-io/bridgekit/builder"
	"github.com/openweb3-io/bridgekit/testutil"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/stretchr/testify/suite"
)

type BuilderTestSuite struct {
	suite.Suite
	wallet    *testutil.StaticWallet
	recipient xc.Address
	token     xc.Address
	vault     xc.Address
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) SetupTest() {
	s.wallet = testutil.NewStaticWallet(testutil.PaddedAddress("0xCCC"))
	s.recipient = testutil.PaddedAddress("0xAAA")
	s.token = testutil.PaddedAddress("0xBBB")
	s.vault = testutil.PaddedAddress("0xDDD")
}

func (s *BuilderTestSuite) TestBridgeRequestDefaults() {
	require := s.Require()

	req, err := builder.NewBridgeRequest(
		xc.NewBigIntFromUint64(10), s.recipient, s.token, xc.NewBigIntFromUint64(5), s.vault, s.wallet,
	)
	require.NoError(err)
	require.Equal("10", req.GetDestChainID().String())
	require.Equal(s.recipient, req.GetRecipient())
	require.Equal(s.token, req.GetToken())
	require.Equal(s.vault, req.GetVault())
	require.Equal("5", req.GetAmount().String())
	require.Equal(s.wallet, req.GetWallet())

	require.Equal("", req.GetMemo())
	fee := req.GetProcessingFee()
	require.True(fee.IsZero())
	require.False(req.GetTokenDeployed())
}

func (s *BuilderTestSuite) TestBridgeRequestOptions() {
	require := s.Require()

	req, err := builder.NewBridgeRequest(
		xc.NewBigIntFromUint64(56), s.recipient, s.token, xc.NewBigIntFromUint64(100), s.vault, s.wallet,
		builder.WithMemo("invoice-42"),
		builder.WithProcessingFee(xc.NewBigIntFromUint64(7)),
		builder.WithTokenDeployed(true),
	)
	require.NoError(err)
	require.Equal("invoice-42", req.GetMemo())
	require.Equal("7", req.GetProcessingFee().String())
	require.True(req.GetTokenDeployed())

	q := req.AllowanceQuery()
	require.Equal(s.wallet.Address(), q.GetOwner())
	require.Equal(s.vault, q.GetSpender())
	require.Equal(s.token, q.GetToken())
	require.Equal("100", q.GetAmount().String())
}

func (s *BuilderTestSuite) TestBridgeRequestValidation() {
	require := s.Require()
	amount := xc.NewBigIntFromUint64(1)
	chain := xc.NewBigIntFromUint64(1)

	_, err := builder.NewBridgeRequest(chain, "0x12", s.token, amount, s.vault, s.wallet)
	require.ErrorIs(err, xc.ErrInvalidAddress)
	require.Contains(err.Error(), "recipient")

	_, err = builder.NewBridgeRequest(chain, s.recipient, "", amount, s.vault, s.wallet)
	require.ErrorIs(err, xc.ErrInvalidAddress)

	_, err = builder.NewBridgeRequest(chain, s.recipient, s.token, amount, "vault", s.wallet)
	require.ErrorIs(err, xc.ErrInvalidAddress)

	_, err = builder.NewBridgeRequest(chain, s.recipient, s.token, xc.NewBigIntFromInt64(-5), s.vault, s.wallet)
	require.ErrorIs(err, xc.ErrInvalidAmount)

	over := xc.BigInt(*new(big.Int).Lsh(big.NewInt(1), 256))
	_, err = builder.NewBridgeRequest(chain, s.recipient, s.token, amount, s.vault, s.wallet,
		builder.WithProcessingFee(over),
	)
	require.ErrorIs(err, xc.ErrInvalidAmount)

	_, err = builder.NewBridgeRequest(chain, s.recipient, s.token, amount, s.vault, nil)
	require.ErrorIs(err, builder.ErrMissingWallet)
}

func (s *BuilderTestSuite) TestAllowanceQuery() {
	require := s.Require()

	q, err := builder.NewAllowanceQuery(s.token, s.wallet.Address(), s.vault, xc.NewBigIntFromUint64(100))
	require.NoError(err)
	require.Equal(s.token, q.GetToken())
	require.Equal(s.wallet.Address(), q.GetOwner())
	require.Equal(s.vault, q.GetSpender())

	_, err = builder.NewAllowanceQuery(s.token, "0xnope", s.vault, xc.NewBigIntFromUint64(100))
	require.ErrorIs(err, xc.ErrInvalidAddress)

	_, err = builder.NewAllowanceQuery(s.token, s.wallet.Address(), s.vault, xc.NewBigIntFromInt64(-1))
	require.ErrorIs(err, xc.ErrInvalidAmount)
}

func (s *BuilderTestSuite) TestApproveArgs() {
	require := s.Require()

	args, err := builder.NewApproveArgs(s.token, s.vault, xc.NewBigIntFromUint64(100), s.wallet)
	require.NoError(err)
	require.Equal(s.wallet, args.GetWallet())
	require.Equal(s.vault, args.GetSpender())

	q := args.AllowanceQuery()
	require.Equal(s.wallet.Address(), q.GetOwner())
	require.Equal(s.vault, q.GetSpender())
	require.Equal("100", q.GetAmount().String())

	_, err = builder.NewApproveArgs(s.token, s.vault, xc.NewBigIntFromUint64(100), nil)
	require.ErrorIs(err, builder.ErrMissingWallet)

	_, err = builder.NewApproveArgs(s.token, "", xc.NewBigIntFromUint64(100), s.wallet)
	require.ErrorIs(err, xc.ErrInvalidAddress)
}
