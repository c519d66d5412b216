package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/openweb3-io/bridgekit/blockchain/evm/address"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/openweb3-io/bridgekit/wallet"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Backend is what the accessor needs from a node connection, *ethclient.Client satisfies it
type Backend interface {
	bind.ContractBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// EthAccessor hands out go-ethereum bound contracts
type EthAccessor struct {
	backend Backend
	chainID *big.Int
}

var _ Accessor = &EthAccessor{}

// NewEthAccessor creates an accessor, a nil or zero chainID is looked up from the node on each write
func NewEthAccessor(backend Backend, chainID *big.Int) *EthAccessor {
	return &EthAccessor{
		backend: backend,
		chainID: chainID,
	}
}

// Dial connects to a JSON-RPC endpoint, close the accessor when done
func Dial(ctx context.Context, url string, chainID int64) (*EthAccessor, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "error dial rpc %s", url)
	}
	return NewEthAccessor(client, big.NewInt(chainID)), nil
}

func (a *EthAccessor) Close() {
	if closer, ok := a.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (a *EthAccessor) Reader(addr xc.Address, contractAbi abi.ABI) (Reader, error) {
	contractAddress, err := address.FromHex(addr)
	if err != nil {
		return nil, err
	}
	return &ethReader{
		address: contractAddress,
		bound:   bind.NewBoundContract(contractAddress, contractAbi, a.backend, a.backend, a.backend),
	}, nil
}

func (a *EthAccessor) Writer(addr xc.Address, contractAbi abi.ABI, w wallet.Wallet) (Writer, error) {
	reader, err := a.Reader(addr, contractAbi)
	if err != nil {
		return nil, err
	}
	from, err := address.FromHex(w.Address())
	if err != nil {
		return nil, err
	}
	return &ethWriter{
		ethReader: reader.(*ethReader),
		abi:       contractAbi,
		backend:   a.backend,
		chainID:   a.chainID,
		wallet:    w,
		from:      from,
	}, nil
}

type ethReader struct {
	address common.Address
	bound   *bind.BoundContract
}

func (r *ethReader) Address() xc.Address {
	return address.ToAddress(r.address)
}

func (r *ethReader) Call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := r.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, err
	}
	return out, nil
}

type ethWriter struct {
	*ethReader
	abi     abi.ABI
	backend Backend
	chainID *big.Int
	wallet  wallet.Wallet
	from    common.Address
}

func (w *ethWriter) resolveChainID(ctx context.Context) (*big.Int, error) {
	if w.chainID != nil && w.chainID.Sign() > 0 {
		return w.chainID, nil
	}
	return w.backend.ChainID(ctx)
}

func (w *ethWriter) Transact(ctx context.Context, value *big.Int, method string, params ...interface{}) (xc.TxHash, error) {
	chainID, err := w.resolveChainID(ctx)
	if err != nil {
		return "", err
	}

	opts := &bind.TransactOpts{
		From:    w.from,
		Context: ctx,
		Value:   value,
		Signer: func(signer common.Address, tx *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			if signer != w.from {
				return nil, bind.ErrNotAuthorized
			}
			return w.wallet.SignTx(ctx, chainID, tx)
		},
	}

	tx, err := w.bound.Transact(opts, method, params...)
	if err != nil {
		return "", err
	}

	zap.S().Debugw("sent transaction",
		"from", w.from.Hex(),
		"to", w.address.Hex(),
		"method", method,
		"selector", hexutil.Encode(MethodID(w.abi.Methods[method].Sig)),
		"value", value.String(),
		"gas", tx.Gas(),
		"hash", tx.Hash().Hex(),
	)
	return xc.TxHash(tx.Hash().Hex()), nil
}

func (w *ethWriter) EstimateGas(ctx context.Context, value *big.Int, method string, params ...interface{}) (uint64, error) {
	data, err := w.abi.Pack(method, params...)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to pack %s", method)
	}

	return w.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  w.from,
		To:    &w.address,
		Value: value,
		Data:  data,
	})
}
