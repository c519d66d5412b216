package vault

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const SendTokenMethod = "sendToken"

// SendTokenSignature is the canonical signature of the cross-chain send
const SendTokenSignature = "sendToken(uint256,address,address,uint256,uint256,uint256,address,string)"

const VaultABI = `[
	{"type":"function","name":"sendToken","stateMutability":"payable","inputs":[
		{"name":"destChainId","type":"uint256"},
		{"name":"recipient","type":"address"},
		{"name":"token","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"gasLimit","type":"uint256"},
		{"name":"processingFee","type":"uint256"},
		{"name":"refundAddress","type":"address"},
		{"name":"memo","type":"string"}
	],"outputs":[]}
]`

var ABI abi.ABI

func init() {
	var err error
	ABI, err = abi.JSON(strings.NewReader(VaultABI))
	if err != nil {
		panic(err)
	}
}
