package validation_test

import (
	"math/big"
	"testing"

	"github.com/openweb3-io/bridgekit/builder/validation"
	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/stretchr/testify/require"
)

func TestUint256(t *testing.T) {
	require.NoError(t, validation.Uint256("amount", xc.NewBigIntFromUint64(0)))
	require.NoError(t, validation.Uint256("amount", xc.NewBigIntFromUint64(100)))

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	require.NoError(t, validation.Uint256("amount", xc.BigInt(*max)))

	err := validation.Uint256("amount", xc.NewBigIntFromInt64(-1))
	require.ErrorIs(t, err, xc.ErrInvalidAmount)

	over := new(big.Int).Lsh(big.NewInt(1), 256)
	err = validation.Uint256("fee", xc.BigInt(*over))
	require.ErrorIs(t, err, xc.ErrInvalidAmount)
	require.Contains(t, err.Error(), "fee")
}

func TestAddress(t *testing.T) {
	require.NoError(t, validation.Address("token", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	require.NoError(t, validation.Address("token", "0x0000000000000000000000000000000000000aaa"))

	for _, invalid := range []xc.Address{"", "0x12", "not-an-address", "0xzz0000000000000000000000000000000000000a"} {
		err := validation.Address("recipient", invalid)
		require.ErrorIs(t, err, xc.ErrInvalidAddress, "address %q", invalid)
	}
}
