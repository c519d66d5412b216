package types_test

import (
	"math/big"
	"testing"

	. "github.com/openweb3-io/bridgekit/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BigIntTestSuite struct {
	suite.Suite
}

func TestBigInt(t *testing.T) {
	suite.Run(t, new(BigIntTestSuite))
}

func (s *BigIntTestSuite) TestNewBigIntFromUint64() {
	require := s.Require()
	amount := NewBigIntFromUint64(123)
	require.NotNil(amount)
	require.Equal(amount.Uint64(), uint64(123))
	require.Equal(amount.String(), "123")
}

func (s *BigIntTestSuite) TestAmountHumanReadable() {
	require := s.Require()
	amountDec, _ := decimal.NewFromString("10.3")
	amount := AmountHumanReadable(amountDec)
	require.NotNil(amount)
	require.Equal(amount.String(), "10.3")
}

func (s *BigIntTestSuite) TestNewAmountHumanReadableFromStr() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("10.3")
	require.NoError(err)
	require.Equal(amount.String(), "10.3")

	_, err = NewAmountHumanReadableFromStr("")
	require.Error(err)

	_, err = NewAmountHumanReadableFromStr("invalid")
	require.Error(err)
}

func (s *BigIntTestSuite) TestToBlockchainAndBack() {
	require := s.Require()
	human, err := NewAmountHumanReadableFromStr("1.5")
	require.NoError(err)

	amount := human.ToBlockchain(6)
	require.EqualValues(1500000, amount.Uint64())
	require.Equal("1.5", amount.ToHuman(6).String())
}

func (s *BigIntTestSuite) TestNewBlockchainAmountStr() {
	require := s.Require()
	amount := NewBigIntFromStr("10")
	require.EqualValues(amount.Uint64(), 10)

	amount = NewBigIntFromStr("10.1")
	require.EqualValues(amount.Uint64(), 0)

	amount = NewBigIntFromStr("0x10")
	require.EqualValues(amount.Uint64(), 16)
}

func (s *BigIntTestSuite) TestIsUint256() {
	require := s.Require()

	amount := NewBigIntFromUint64(0)
	require.True(amount.IsUint256())
	require.True(amount.IsZero())

	negative := NewBigIntFromInt64(-1)
	require.False(negative.IsUint256())

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	maxAmount := BigInt(*max)
	require.True(maxAmount.IsUint256())

	over := BigInt(*new(big.Int).Add(max, big.NewInt(1)))
	require.False(over.IsUint256())
}

func (s *BigIntTestSuite) TestCmp() {
	require := s.Require()
	a := NewBigIntFromUint64(50)
	b := NewBigIntFromUint64(100)
	require.Equal(-1, a.Cmp(&b))
	require.Equal(1, b.Cmp(&a))
	require.Equal(0, a.Cmp(&a))
}

func (s *BigIntTestSuite) TestToBlockchainExact() {
	require := s.Require()

	human, err := NewAmountHumanReadableFromStr("1.500000000")
	require.NoError(err)
	amount, err := human.ToBlockchainExact(6)
	require.NoError(err)
	require.Equal("1500000", amount.String())

	human, err = NewAmountHumanReadableFromStr("1.23456789")
	require.NoError(err)
	require.Equal("1234567", human.ToBlockchain(6).String())
	_, err = human.ToBlockchainExact(6)
	require.ErrorContains(err, "more than 6 decimal places")

	human, err = NewAmountHumanReadableFromStr("0.0000001")
	require.NoError(err)
	_, err = human.ToBlockchainExact(6)
	require.Error(err)
	amount, err = human.ToBlockchainExact(18)
	require.NoError(err)
	require.Equal("100000000000", amount.String())
}
