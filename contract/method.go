package contract

import (
	"golang.org/x/crypto/sha3"
)

// MethodID returns the 4 byte selector of a canonical method signature,
// e.g. approve(address,uint256) -> 0x095ea7b3
func MethodID(signature string) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(signature))
	return hash.Sum(nil)[:4]
}
