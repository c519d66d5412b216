package builder

import (
	"github.com/openweb3-io/bridgekit/builder/validation"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/openweb3-io/bridgekit/wallet"
)

// AllowanceQuery asks whether owner has allowed spender to move at least amount of token
type AllowanceQuery struct {
	amount  xc.BigInt
	token   xc.Address
	owner   xc.Address
	spender xc.Address
}

func NewAllowanceQuery(token xc.Address, owner xc.Address, spender xc.Address, amount xc.BigInt) (*AllowanceQuery, error) {
	if err := validation.Uint256("amount", amount); err != nil {
		return nil, err
	}
	for _, field := range []struct {
		name string
		addr xc.Address
	}{
		{"token", token},
		{"owner", owner},
		{"spender", spender},
	} {
		if err := validation.Address(field.name, field.addr); err != nil {
			return nil, err
		}
	}
	return &AllowanceQuery{
		amount:  amount,
		token:   token,
		owner:   owner,
		spender: spender,
	}, nil
}

func (q *AllowanceQuery) GetAmount() xc.BigInt   { return q.amount }
func (q *AllowanceQuery) GetToken() xc.Address   { return q.token }
func (q *AllowanceQuery) GetOwner() xc.Address   { return q.owner }
func (q *AllowanceQuery) GetSpender() xc.Address { return q.spender }

// ApproveArgs lets spender move amount of token out of the wallet
type ApproveArgs struct {
	amount  xc.BigInt
	token   xc.Address
	spender xc.Address
	wallet  wallet.Wallet
}

func NewApproveArgs(token xc.Address, spender xc.Address, amount xc.BigInt, w wallet.Wallet) (*ApproveArgs, error) {
	if w == nil {
		return nil, ErrMissingWallet
	}
	if err := validation.Uint256("amount", amount); err != nil {
		return nil, err
	}
	for _, field := range []struct {
		name string
		addr xc.Address
	}{
		{"token", token},
		{"spender", spender},
	} {
		if err := validation.Address(field.name, field.addr); err != nil {
			return nil, err
		}
	}
	return &ApproveArgs{
		amount:  amount,
		token:   token,
		spender: spender,
		wallet:  w,
	}, nil
}

func (args *ApproveArgs) GetAmount() xc.BigInt     { return args.amount }
func (args *ApproveArgs) GetToken() xc.Address     { return args.token }
func (args *ApproveArgs) GetSpender() xc.Address   { return args.spender }
func (args *ApproveArgs) GetWallet() wallet.Wallet { return args.wallet }

// AllowanceQuery uses the wallet as the owner
func (args *ApproveArgs) AllowanceQuery() *AllowanceQuery {
	return &AllowanceQuery{
		amount:  args.amount,
		token:   args.token,
		owner:   args.wallet.Address(),
		spender: args.spender,
	}
}
