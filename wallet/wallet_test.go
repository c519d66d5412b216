package wallet_test

import (
	"context"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/openweb3-io/bridgekit/wallet"
	"github.com/stretchr/testify/suite"
)

var pkStrHex = "8e812436a0e3323166e1f0e8ba79e19e217b2c4a53c970d4cca0cfb1078979df"

type WalletTestSuite struct {
	suite.Suite
	expected xc.Address
}

func TestWalletTestSuite(t *testing.T) {
	suite.Run(t, new(WalletTestSuite))
}

func (s *WalletTestSuite) SetupTest() {
	key, err := crypto.HexToECDSA(pkStrHex)
	s.Require().NoError(err)
	s.expected = xc.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())
}

func (s *WalletTestSuite) TestLocalWalletAddress() {
	require := s.Require()

	w, err := wallet.NewLocalWalletFromHex("0x" + pkStrHex)
	require.NoError(err)
	require.Equal(s.expected, w.Address())
}

func (s *WalletTestSuite) TestLocalWalletInvalidKey() {
	_, err := wallet.NewLocalWalletFromHex("not-a-key")
	s.Require().Error(err)
}

func (s *WalletTestSuite) TestSignTx() {
	require := s.Require()
	w, err := wallet.NewLocalWalletFromHex(pkStrHex)
	require.NoError(err)

	chainID := big.NewInt(11155111)
	to := common.HexToAddress("0x388C818CA8B9251b393131C08a736A67ccB19297")
	tx := ethtypes.NewTx(&ethtypes.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     1,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21000,
		To:        &to,
		Value:     big.NewInt(3000),
	})

	signed, err := w.SignTx(context.Background(), chainID, tx)
	require.NoError(err)

	from, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(chainID), signed)
	require.NoError(err)
	require.Equal(string(s.expected), from.Hex())
}

func (s *WalletTestSuite) TestProviderUsesRegisteredCreator() {
	require := s.Require()
	ctx := context.Background()

	local, err := wallet.NewLocalWalletFromHex(pkStrHex)
	require.NoError(err)

	p := wallet.NewProvider()
	p.Register("sepolia", func(ctx context.Context, key string) (wallet.Wallet, error) {
		return local, nil
	})

	w, err := p.Provide(ctx, "sepolia", "ignored")
	require.NoError(err)
	require.Equal(local.Address(), w.Address())

	_, err = p.Provide(ctx, "mainnet", "ignored")
	require.ErrorContains(err, "wallet creator for network mainnet not found")
}

func (s *WalletTestSuite) TestDefaultProviderResolvesEnvKey() {
	require := s.Require()
	require.NoError(os.Setenv("BRIDGEKIT_TEST_WALLET_KEY", pkStrHex))
	defer os.Unsetenv("BRIDGEKIT_TEST_WALLET_KEY")

	w, err := wallet.NewDefaultProvider().Provide(context.Background(), "any", "env:BRIDGEKIT_TEST_WALLET_KEY")
	require.NoError(err)
	require.Equal(s.expected, w.Address())
}
