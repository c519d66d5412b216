package testutil_test

import (
	"testing"

	"github.com/openweb3-io/bridgekit/testutil"
	"github.com/stretchr/testify/require"
)

func TestPaddedAddress(t *testing.T) {
	require.EqualValues(t, "0x0000000000000000000000000000000000000aaa", testutil.PaddedAddress("0xAAA"))
	require.EqualValues(t, "0x0000000000000000000000000000000000000ccc", testutil.PaddedAddress("ccc"))
}

func TestFromHex(t *testing.T) {
	require.Equal(t, []byte{0x09, 0x5e, 0xa7, 0xb3}, testutil.FromHex("0x095ea7b3"))
}
