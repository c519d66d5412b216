package bridgekit

import (
	"context"

	"github.com/openweb3-io/bridgekit/builder"
	"github.com/openweb3-io/bridgekit/types"
)

// Bridge is one asset-specific bridging strategy
type Bridge interface {
	/**
	 * estimate gas of the cross-chain send
	 */
	EstimateGas(ctx context.Context, req *builder.BridgeRequest) (uint64, error)

	/**
	 * true when the spender may not yet move the amount
	 */
	RequireAllowance(ctx context.Context, query *builder.AllowanceQuery) (bool, error)

	/**
	 * submit the cross-chain send, does not wait for confirmation
	 */
	Bridge(ctx context.Context, req *builder.BridgeRequest) (types.TxHash, error)
}

// Approver is implemented by strategies whose asset needs a spending approval first
type Approver interface {
	Approve(ctx context.Context, args *builder.ApproveArgs) (types.TxHash, error)
}
