package validation

import (
	"fmt"

	"github.com/openweb3-io/bridgekit/blockchain/evm/address"
	xc "github.com/openweb3-io/bridgekit/types"
)

// Uint256 checks that an amount can be passed as a uint256 contract argument
func Uint256(name string, amount xc.BigInt) error {
	if !amount.IsUint256() {
		return xc.WrapErr(xc.ErrInvalidAmount, fmt.Errorf("%s %s does not fit in uint256", name, amount.String()))
	}
	return nil
}

// Address checks that a value is a hex encoded 20 byte address
func Address(name string, addr xc.Address) error {
	if _, err := address.FromHex(addr); err != nil {
		return xc.WrapErr(xc.ErrInvalidAddress, fmt.Errorf("%s %q is not a valid address", name, addr))
	}
	return nil
}
