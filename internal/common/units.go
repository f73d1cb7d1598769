package common

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const EtherDecimals = 18

var weiPerEther = new(big.Float).SetFloat64(1e18)

// WeiToEther converts a base unit amount to its display unit using floating point
// division. Precision loss is acceptable here, the result is only ever displayed.
func WeiToEther(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEther).Float64()
	return f
}

// WeiToEtherExact returns the exact decimal representation of a base unit amount.
func WeiToEtherExact(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals).String()
}
