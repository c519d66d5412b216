package testutil

import (
	"context"
	"math/big"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/openweb3-io/bridgekit/wallet"
)

// StaticWallet only knows its address, signing returns the transaction as is
type StaticWallet struct {
	Addr   xc.Address
	Signed []*ethtypes.Transaction
}

var _ wallet.Wallet = &StaticWallet{}

func NewStaticWallet(addr xc.Address) *StaticWallet {
	return &StaticWallet{Addr: addr}
}

func (w *StaticWallet) Address() xc.Address {
	return w.Addr
}

func (w *StaticWallet) SignTx(ctx context.Context, chainID *big.Int, tx *ethtypes.Transaction) (*ethtypes.Transaction, error) {
	w.Signed = append(w.Signed, tx)
	return tx, nil
}
