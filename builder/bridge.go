package builder

import (
	"errors"

	"github.com/openweb3-io/bridgekit/builder/validation"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/openweb3-io/bridgekit/wallet"
)

var ErrMissingWallet = errors.New("a wallet is required")

// BridgeRequest describes one cross-chain send through the vault.
// It is immutable once built.
type BridgeRequest struct {
	options     builderOptions
	destChainID xc.BigInt
	recipient   xc.Address
	token       xc.Address
	amount      xc.BigInt
	vault       xc.Address
	wallet      wallet.Wallet
}

func NewBridgeRequest(
	destChainID xc.BigInt,
	recipient xc.Address,
	token xc.Address,
	amount xc.BigInt,
	vault xc.Address,
	w wallet.Wallet,
	options ...BuilderOption,
) (*BridgeRequest, error) {
	if w == nil {
		return nil, ErrMissingWallet
	}
	if err := validation.Uint256("destination chain id", destChainID); err != nil {
		return nil, err
	}
	if err := validation.Uint256("amount", amount); err != nil {
		return nil, err
	}
	for _, field := range []struct {
		name string
		addr xc.Address
	}{
		{"recipient", recipient},
		{"token", token},
		{"vault", vault},
	} {
		if err := validation.Address(field.name, field.addr); err != nil {
			return nil, err
		}
	}

	req := &BridgeRequest{
		destChainID: destChainID,
		recipient:   recipient,
		token:       token,
		amount:      amount,
		vault:       vault,
		wallet:      w,
	}
	for _, opt := range options {
		if err := opt(&req.options); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (req *BridgeRequest) GetDestChainID() xc.BigInt { return req.destChainID }
func (req *BridgeRequest) GetRecipient() xc.Address  { return req.recipient }
func (req *BridgeRequest) GetToken() xc.Address      { return req.token }
func (req *BridgeRequest) GetAmount() xc.BigInt      { return req.amount }
func (req *BridgeRequest) GetVault() xc.Address      { return req.vault }
func (req *BridgeRequest) GetWallet() wallet.Wallet  { return req.wallet }

// GetMemo defaults to the empty string
func (req *BridgeRequest) GetMemo() string {
	memo, _ := req.options.GetMemo()
	return memo
}

// GetProcessingFee defaults to zero
func (req *BridgeRequest) GetProcessingFee() xc.BigInt {
	fee, ok := req.options.GetProcessingFee()
	if !ok {
		return xc.NewBigIntFromUint64(0)
	}
	return fee
}

// GetTokenDeployed defaults to false, the token is assumed new on the destination
func (req *BridgeRequest) GetTokenDeployed() bool {
	deployed, _ := req.options.GetTokenDeployed()
	return deployed
}

// AllowanceQuery returns the query that checks the vault may pull the amount from the wallet
func (req *BridgeRequest) AllowanceQuery() *AllowanceQuery {
	return &AllowanceQuery{
		amount:  req.amount,
		token:   req.token,
		owner:   req.wallet.Address(),
		spender: req.vault,
	}
}
