package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/openweb3-io/bridgekit/wallet"
)

//go:generate mockgen -destination=mocks/mock_contract.go -package=mocks github.com/openweb3-io/bridgekit/contract Accessor,Reader,Writer

// Reader is a read-only handle to a deployed contract
type Reader interface {
	Address() xc.Address
	// Call invokes a view method and returns its decoded outputs
	Call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error)
}

// Writer is a handle bound to a signing wallet
type Writer interface {
	Reader
	// Transact signs and sends a state-changing call, value is the native amount attached
	Transact(ctx context.Context, value *big.Int, method string, params ...interface{}) (xc.TxHash, error)
	// EstimateGas estimates the gas of the same call Transact would send
	EstimateGas(ctx context.Context, value *big.Int, method string, params ...interface{}) (uint64, error)
}

// Accessor hands out contract handles given an address and the contract interface
type Accessor interface {
	Reader(address xc.Address, contractAbi abi.ABI) (Reader, error)
	Writer(address xc.Address, contractAbi abi.ABI, w wallet.Wallet) (Writer, error)
}
