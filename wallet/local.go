package wallet

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/pkg/errors"
)

// LocalWallet signs with a private key held in memory
type LocalWallet struct {
	key     *ecdsa.PrivateKey
	address xc.Address
}

var _ Wallet = &LocalWallet{}

func NewLocalWallet(key *ecdsa.PrivateKey) *LocalWallet {
	return &LocalWallet{
		key:     key,
		address: xc.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()),
	}
}

func NewLocalWalletFromHex(keyHex string) (*LocalWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return NewLocalWallet(key), nil
}

func (w *LocalWallet) Address() xc.Address {
	return w.address
}

func (w *LocalWallet) SignTx(ctx context.Context, chainID *big.Int, tx *ethtypes.Transaction) (*ethtypes.Transaction, error) {
	signedTx, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(chainID), w.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign transaction for %s", w.address)
	}
	return signedTx, nil
}
