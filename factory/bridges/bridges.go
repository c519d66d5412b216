package bridges

import (
	"fmt"
	"sync"

	"github.com/openweb3-io/bridgekit"
	"github.com/openweb3-io/bridgekit/blockchain/evm/erc20bridge"
	"github.com/openweb3-io/bridgekit/contract"
	"github.com/openweb3-io/bridgekit/metrics"
	xc "github.com/openweb3-io/bridgekit/types"
	"go.uber.org/zap"
)

// Options are handed to every creator, nil fields fall back to the creator's defaults
type Options struct {
	Logger  *zap.Logger
	Metrics *metrics.BridgeMetrics
}

type BridgeCreator func(accessor contract.Accessor, cfg *xc.ChainConfig, opts Options) (bridgekit.Bridge, error)

var (
	mu         sync.RWMutex
	creatorMap = make(map[xc.AssetKind]BridgeCreator)
)

func RegisterBridge(kind xc.AssetKind, creator BridgeCreator) {
	mu.Lock()
	defer mu.Unlock()
	creatorMap[kind] = creator
}

func init() {
	RegisterBridge(xc.AssetKindERC20, func(accessor contract.Accessor, cfg *xc.ChainConfig, opts Options) (bridgekit.Bridge, error) {
		bridgeOpts := []erc20bridge.Option{}
		if opts.Logger != nil {
			bridgeOpts = append(bridgeOpts, erc20bridge.WithLogger(opts.Logger.With(zap.String("chain", cfg.Name))))
		}
		if opts.Metrics != nil {
			bridgeOpts = append(bridgeOpts, erc20bridge.WithMetrics(opts.Metrics))
		}
		return erc20bridge.NewERC20Bridge(accessor, cfg.Bridge, bridgeOpts...), nil
	})
}

func NewBridge(kind xc.AssetKind, accessor contract.Accessor, cfg *xc.ChainConfig, opts Options) (bridgekit.Bridge, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unsupported asset kind %q", kind)
	}
	mu.RLock()
	creator, ok := creatorMap[kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("bridge creator for %s not found", kind)
	}
	return creator(accessor, cfg, opts)
}
