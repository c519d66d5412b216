package erc20bridge

import (
	"context"
	"math/big"
	"time"

	"github.com/openweb3-io/bridgekit"
	"github.com/openweb3-io/bridgekit/blockchain/evm/address"
	"github.com/openweb3-io/bridgekit/builder"
	"github.com/openweb3-io/bridgekit/contract"
	"github.com/openweb3-io/bridgekit/contract/abi/erc20"
	"github.com/openweb3-io/bridgekit/contract/abi/vault"
	"github.com/openweb3-io/bridgekit/metrics"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ERC20Bridge sends ERC20 tokens through the vault's sendToken method.
// It only holds configuration, every call builds its own contract handles.
type ERC20Bridge struct {
	accessor contract.Accessor
	cfg      xc.BridgeConfig
	logger   *zap.Logger
	metrics  *metrics.BridgeMetrics
}

var _ bridgekit.Bridge = &ERC20Bridge{}
var _ bridgekit.Approver = &ERC20Bridge{}

type Option func(b *ERC20Bridge)

func WithLogger(logger *zap.Logger) Option {
	return func(b *ERC20Bridge) {
		b.logger = logger
	}
}

func WithMetrics(m *metrics.BridgeMetrics) Option {
	return func(b *ERC20Bridge) {
		b.metrics = m
	}
}

func NewERC20Bridge(accessor contract.Accessor, cfg xc.BridgeConfig, opts ...Option) *ERC20Bridge {
	b := &ERC20Bridge{
		accessor: accessor,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// log returns the injected logger, or the global one at the time of the call
func (b *ERC20Bridge) log() *zap.Logger {
	if b.logger != nil {
		return b.logger
	}
	return zap.L()
}

// preparedCall is the vault handle plus the positional sendToken arguments
type preparedCall struct {
	vault contract.Writer
	args  []interface{}
}

// GasLimit picks the destination execution gas limit forwarded to the vault
func (b *ERC20Bridge) GasLimit(req *builder.BridgeRequest) uint64 {
	if !req.GetTokenDeployed() {
		return b.cfg.NoTokenDeployedGasLimit
	}
	fee := req.GetProcessingFee()
	if fee.Sign() > 0 {
		return b.cfg.NoOwnerGasLimit
	}
	return 0
}

// Args returns the sendToken arguments in contract order:
// destChainId, recipient, token, amount, gasLimit, processingFee, refundAddress, memo
func (b *ERC20Bridge) Args(req *builder.BridgeRequest) ([]interface{}, error) {
	recipient, err := address.FromHex(req.GetRecipient())
	if err != nil {
		return nil, err
	}
	token, err := address.FromHex(req.GetToken())
	if err != nil {
		return nil, err
	}
	refund, err := address.FromHex(req.GetWallet().Address())
	if err != nil {
		return nil, err
	}

	args := []interface{}{
		req.GetDestChainID().Int(),
		recipient,
		token,
		req.GetAmount().Int(),
		new(big.Int).SetUint64(b.GasLimit(req)),
		req.GetProcessingFee().Int(),
		refund,
		req.GetMemo(),
	}
	return args, nil
}

func (b *ERC20Bridge) prepare(req *builder.BridgeRequest) (*preparedCall, error) {
	args, err := b.Args(req)
	if err != nil {
		return nil, err
	}

	b.log().Debug("prepared sendToken",
		zap.String("vault", string(req.GetVault())),
		zap.String("dest_chain_id", req.GetDestChainID().String()),
		zap.String("recipient", string(req.GetRecipient())),
		zap.String("token", string(req.GetToken())),
		zap.String("amount", req.GetAmount().String()),
		zap.Uint64("gas_limit", b.GasLimit(req)),
		zap.String("processing_fee", req.GetProcessingFee().String()),
		zap.String("refund", string(req.GetWallet().Address())),
		zap.String("memo", req.GetMemo()),
	)

	writer, err := b.accessor.Writer(req.GetVault(), vault.ABI, req.GetWallet())
	if err != nil {
		return nil, err
	}
	return &preparedCall{vault: writer, args: args}, nil
}

func (b *ERC20Bridge) EstimateGas(ctx context.Context, req *builder.BridgeRequest) (gas uint64, err error) {
	defer func(start time.Time) { b.metrics.Observe(metrics.OperationEstimateGas, start, err) }(time.Now())

	call, err := b.prepare(req)
	if err != nil {
		return 0, err
	}
	return call.vault.EstimateGas(ctx, req.GetProcessingFee().Int(), vault.SendTokenMethod, call.args...)
}

func (b *ERC20Bridge) RequireAllowance(ctx context.Context, query *builder.AllowanceQuery) (required bool, err error) {
	defer func(start time.Time) { b.metrics.Observe(metrics.OperationRequireAllowance, start, err) }(time.Now())

	return b.requireAllowance(ctx, query)
}

func (b *ERC20Bridge) requireAllowance(ctx context.Context, query *builder.AllowanceQuery) (bool, error) {
	owner, err := address.FromHex(query.GetOwner())
	if err != nil {
		return false, err
	}
	spender, err := address.FromHex(query.GetSpender())
	if err != nil {
		return false, err
	}

	token, err := b.accessor.Reader(query.GetToken(), erc20.ABI)
	if err != nil {
		return false, err
	}
	out, err := token.Call(ctx, erc20.AllowanceMethod, owner, spender)
	if err != nil {
		return false, err
	}
	if len(out) == 0 {
		return false, errors.Errorf("empty %s result from %s", erc20.AllowanceMethod, query.GetToken())
	}
	allowance, ok := out[0].(*big.Int)
	if !ok {
		return false, errors.Errorf("unexpected %s result type %T", erc20.AllowanceMethod, out[0])
	}

	return allowance.Cmp(query.GetAmount().Int()) < 0, nil
}

func (b *ERC20Bridge) Approve(ctx context.Context, args *builder.ApproveArgs) (hash xc.TxHash, err error) {
	defer func(start time.Time) { b.metrics.Observe(metrics.OperationApprove, start, err) }(time.Now())

	required, err := b.requireAllowance(ctx, args.AllowanceQuery())
	if err != nil {
		return "", err
	}
	if !required {
		return "", xc.AllowanceError(xc.ErrNoAllowanceRequired, args.GetAmount())
	}

	spender, err := address.FromHex(args.GetSpender())
	if err != nil {
		return "", err
	}
	token, err := b.accessor.Writer(args.GetToken(), erc20.ABI, args.GetWallet())
	if err != nil {
		return "", err
	}
	hash, err = token.Transact(ctx, big.NewInt(0), erc20.ApproveMethod, spender, args.GetAmount().Int())
	if err != nil {
		return "", err
	}

	b.log().Info("approve sent",
		zap.String("token", string(args.GetToken())),
		zap.String("spender", string(args.GetSpender())),
		zap.String("amount", args.GetAmount().String()),
		zap.String("hash", hash.String()),
	)
	return hash, nil
}

func (b *ERC20Bridge) Bridge(ctx context.Context, req *builder.BridgeRequest) (hash xc.TxHash, err error) {
	defer func(start time.Time) { b.metrics.Observe(metrics.OperationBridge, start, err) }(time.Now())

	required, err := b.requireAllowance(ctx, req.AllowanceQuery())
	if err != nil {
		return "", err
	}
	if required {
		return "", xc.AllowanceError(xc.ErrInsufficientAllowance, req.GetAmount())
	}

	call, err := b.prepare(req)
	if err != nil {
		return "", err
	}
	hash, err = call.vault.Transact(ctx, req.GetProcessingFee().Int(), vault.SendTokenMethod, call.args...)
	if err != nil {
		return "", err
	}

	b.log().Info("bridge sent",
		zap.String("vault", string(req.GetVault())),
		zap.String("token", string(req.GetToken())),
		zap.String("amount", req.GetAmount().String()),
		zap.String("hash", hash.String()),
	)
	return hash, nil
}
