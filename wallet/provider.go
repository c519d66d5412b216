package wallet

import (
	"context"
	"fmt"

	"github.com/openweb3-io/bridgekit/secret"
)

type Options struct {
	failoverCreator Creator
}

type Option func(*Options)

func WithFailoverCreator(v Creator) Option {
	return func(o *Options) {
		o.failoverCreator = v
	}
}

// Creator builds a wallet from a key reference, see secret.Resolve for the reference formats
type Creator = func(ctx context.Context, key string) (Wallet, error)

type Provider interface {
	Register(network string, creator Creator)
	Provide(ctx context.Context, network, key string) (Wallet, error)
}

type provider struct {
	opts       *Options
	creatorMap map[string]Creator
}

func NewProvider(o ...Option) Provider {
	opts := &Options{}

	for _, opt := range o {
		opt(opts)
	}

	return &provider{
		opts:       opts,
		creatorMap: make(map[string]Creator),
	}
}

// NewDefaultProvider falls back to a local wallet for every network
func NewDefaultProvider() Provider {
	return NewProvider(WithFailoverCreator(LocalCreator))
}

func (p *provider) Register(network string, creator Creator) {
	p.creatorMap[network] = creator
}

func (p *provider) Provide(ctx context.Context, network, key string) (Wallet, error) {
	creator, ok := p.creatorMap[network]
	if !ok {
		if p.opts.failoverCreator == nil {
			return nil, fmt.Errorf("wallet creator for network %s not found", network)
		}

		creator = p.opts.failoverCreator
	}

	return creator(ctx, key)
}

// LocalCreator resolves the key reference and loads it as a local wallet
func LocalCreator(ctx context.Context, key string) (Wallet, error) {
	keyHex, err := secret.Resolve(ctx, key)
	if err != nil {
		return nil, err
	}
	return NewLocalWalletFromHex(keyHex)
}
