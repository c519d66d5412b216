package factory

import (
	"context"

	"github.com/openweb3-io/bridgekit"
	"github.com/openweb3-io/bridgekit/config"
	"github.com/openweb3-io/bridgekit/contract"
	"github.com/openweb3-io/bridgekit/factory/bridges"
	"github.com/openweb3-io/bridgekit/metrics"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/openweb3-io/bridgekit/wallet"
	"go.uber.org/zap"
)

type IFactory interface {
	GetChain(name string) (*xc.ChainConfig, error)
	NewAccessor(ctx context.Context, cfg *xc.ChainConfig) (*contract.EthAccessor, error)
	NewBridge(kind xc.AssetKind, accessor contract.Accessor, cfg *xc.ChainConfig) (bridgekit.Bridge, error)
	NewWallet(ctx context.Context, cfg *xc.ChainConfig, key string) (wallet.Wallet, error)
}

type Factory struct {
	Config  *config.Config
	wallets wallet.Provider
	opts    bridges.Options
}

var _ IFactory = &Factory{}

type Option func(f *Factory)

func WithWalletProvider(provider wallet.Provider) Option {
	return func(f *Factory) {
		f.wallets = provider
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Factory) {
		f.opts.Logger = logger
	}
}

func WithMetrics(m *metrics.BridgeMetrics) Option {
	return func(f *Factory) {
		f.opts.Metrics = m
	}
}

func NewFactory(cfg *config.Config, options ...Option) *Factory {
	f := &Factory{
		Config:  cfg,
		wallets: wallet.NewDefaultProvider(),
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// NewDefaultFactory uses the embedded configuration and environment overrides
func NewDefaultFactory(options ...Option) (*Factory, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return NewFactory(cfg, options...), nil
}

func (f *Factory) GetChain(name string) (*xc.ChainConfig, error) {
	return f.Config.GetChain(name)
}

func (f *Factory) NewAccessor(ctx context.Context, cfg *xc.ChainConfig) (*contract.EthAccessor, error) {
	return contract.Dial(ctx, cfg.URL, cfg.ChainID)
}

func (f *Factory) NewBridge(kind xc.AssetKind, accessor contract.Accessor, cfg *xc.ChainConfig) (bridgekit.Bridge, error) {
	return bridges.NewBridge(kind, accessor, cfg, f.opts)
}

// NewWallet loads the wallet for the chain's network, key is a secret reference
func (f *Factory) NewWallet(ctx context.Context, cfg *xc.ChainConfig, key string) (wallet.Wallet, error) {
	network := cfg.Network
	if network == "" {
		network = f.Config.Network
	}
	return f.wallets.Provide(ctx, network, key)
}
