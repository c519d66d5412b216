package wallet

import (
	"context"
	"math/big"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	xc "github.com/openweb3-io/bridgekit/types"
)

// Wallet is a connected account able to sign the transactions it sends.
type Wallet interface {
	Address() xc.Address
	SignTx(ctx context.Context, chainID *big.Int, tx *ethtypes.Transaction) (*ethtypes.Transaction, error)
}
