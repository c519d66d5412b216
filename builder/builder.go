package builder

import (
	"github.com/openweb3-io/bridgekit/builder/validation"
	xc "github.com/openweb3-io/bridgekit/types"
)

// All possible builder arguments go in here, privately available.
// The public argument types select which of them they expose.
type builderOptions struct {
	memo          *string
	processingFee *xc.BigInt
	tokenDeployed *bool
}

// BridgeOptions are the optional knobs of a bridging request
type BridgeOptions interface {
	GetMemo() (string, bool)
	GetProcessingFee() (xc.BigInt, bool)
	GetTokenDeployed() (bool, bool)
}

var _ BridgeOptions = &builderOptions{}

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

func (opts *builderOptions) GetMemo() (string, bool)             { return get(opts.memo) }
func (opts *builderOptions) GetProcessingFee() (xc.BigInt, bool) { return get(opts.processingFee) }
func (opts *builderOptions) GetTokenDeployed() (bool, bool)      { return get(opts.tokenDeployed) }

type BuilderOption func(opts *builderOptions) error

func WithMemo(memo string) BuilderOption {
	return func(opts *builderOptions) error {
		opts.memo = &memo
		return nil
	}
}

// Native amount attached to the vault call to pay for destination execution
func WithProcessingFee(fee xc.BigInt) BuilderOption {
	return func(opts *builderOptions) error {
		if err := validation.Uint256("processing fee", fee); err != nil {
			return err
		}
		opts.processingFee = &fee
		return nil
	}
}

// Set when the token already has a representation on the destination chain
func WithTokenDeployed(deployed bool) BuilderOption {
	return func(opts *builderOptions) error {
		opts.tokenDeployed = &deployed
		return nil
	}
}
