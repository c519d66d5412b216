package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// BigInt is a big integer amount as blockchain expects it for tx.
type BigInt big.Int

// AmountHumanReadable is a decimal amount as a human expects it for readability.
type AmountHumanReadable decimal.Decimal

func (amount BigInt) String() string {
	bigInt := big.Int(amount)
	return bigInt.String()
}

// Int converts an BigInt into *bit.Int
func (amount BigInt) Int() *big.Int {
	bigInt := big.Int(amount)
	return &bigInt
}

func (amount BigInt) Sign() int {
	bigInt := big.Int(amount)
	return bigInt.Sign()
}

// Uint64 converts an BigInt into uint64
func (amount BigInt) Uint64() uint64 {
	bigInt := big.Int(amount)
	return bigInt.Uint64()
}

// Use the underlying big.Int.Cmp()
func (amount *BigInt) Cmp(other *BigInt) int {
	return amount.Int().Cmp(other.Int())
}

var zero = big.NewInt(0)

func (amount *BigInt) IsZero() bool {
	return amount.Int().Cmp(zero) == 0
}

// IsUint256 reports whether the amount is non-negative and representable in 256 bits.
func (amount *BigInt) IsUint256() bool {
	v := amount.Int()
	return v.Sign() >= 0 && v.Cmp(math.MaxBig256) <= 0
}

func (amount *BigInt) ToHuman(decimals int32) AmountHumanReadable {
	dec := decimal.NewFromBigInt(amount.Int(), -decimals)
	return AmountHumanReadable(dec)
}

// NewBigIntFromUint64 creates a new BigInt from a uint64
func NewBigIntFromUint64(u64 uint64) BigInt {
	bigInt := new(big.Int).SetUint64(u64)
	return BigInt(*bigInt)
}

// NewBigIntFromInt64 creates a new BigInt from a int64
func NewBigIntFromInt64(i64 int64) BigInt {
	bigInt := new(big.Int).SetInt64(i64)
	return BigInt(*bigInt)
}

// NewBigIntFromStr creates a new BigInt from a string
func NewBigIntFromStr(str string) BigInt {
	var ok bool
	var bigInt *big.Int
	bigInt, ok = new(big.Int).SetString(str, 0)
	if !ok {
		return NewBigIntFromUint64(0)
	}
	return BigInt(*bigInt)
}

// NewAmountHumanReadableFromStr creates a new AmountHumanReadable from a string
func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	decimal, err := decimal.NewFromString(str)
	return AmountHumanReadable(decimal), err
}

func (amount AmountHumanReadable) ToBlockchain(decimals int32) BigInt {
	factor := decimal.NewFromInt32(10).Pow(decimal.NewFromInt32(decimals))
	raised := ((decimal.Decimal)(amount)).Mul(factor)
	return BigInt(*raised.BigInt())
}

// ToBlockchainExact is ToBlockchain for amounts that must be representable,
// it fails instead of truncating digits below the token's smallest unit
func (amount AmountHumanReadable) ToBlockchainExact(decimals int32) (BigInt, error) {
	factor := decimal.NewFromInt32(10).Pow(decimal.NewFromInt32(decimals))
	raised := ((decimal.Decimal)(amount)).Mul(factor)
	if !raised.Equal(raised.Truncate(0)) {
		return BigInt{}, fmt.Errorf("amount %s has more than %d decimal places", amount.String(), decimals)
	}
	return BigInt(*raised.BigInt()), nil
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}
