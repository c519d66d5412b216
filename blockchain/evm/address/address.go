package address

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	xc "github.com/openweb3-io/bridgekit/types"
)

// FromHex parses a hex address, rejecting anything that is not 20 bytes of hex.
func FromHex(address xc.Address) (common.Address, error) {
	if !common.IsHexAddress(string(address)) {
		return common.Address{}, xc.WrapErr(xc.ErrInvalidAddress, fmt.Errorf("%s is not a valid address", address))
	}
	return common.HexToAddress(string(address)), nil
}

// MustFromHex is FromHex that panics, for constants and tests
func MustFromHex(address xc.Address) common.Address {
	addr, err := FromHex(address)
	if err != nil {
		panic(err)
	}
	return addr
}

// ToAddress formats an address back to its checksummed string form
func ToAddress(address common.Address) xc.Address {
	return xc.Address(address.Hex())
}
