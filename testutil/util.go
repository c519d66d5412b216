package testutil

import (
	"encoding/hex"
	"strings"

	xc "github.com/openweb3-io/bridgekit/types"
)

func FromHex(s string) []byte {
	bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic(err)
	}
	return bz
}

// PaddedAddress left pads a short hex value to a 20 byte address, 0xAAA -> 0x000...0aaa
func PaddedAddress(short string) xc.Address {
	hexPart := strings.ToLower(strings.TrimPrefix(short, "0x"))
	return xc.Address("0x" + strings.Repeat("0", 40-len(hexPart)) + hexPart)
}
