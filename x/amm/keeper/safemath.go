package keeper

import (
	"math/big"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/reefswap/reef/x/amm/types"
)

// SafeMath provides overflow-safe arithmetic operations for the AMM module.
// All results are bounded to 256 bits so the checked width matches the width
// of the stored reserve and share fields.

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())

	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, errors.Wrap(types.ErrOverflow, "addition result exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, errors.Wrapf(types.ErrOverflow, "underflow: cannot subtract %s from %s", b.String(), a.String())
	}

	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())

	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, errors.Wrap(types.ErrOverflow, "multiplication result exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division by zero checking
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, errors.Wrap(types.ErrOverflow, "division by zero")
	}

	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs floor((a * b) / c) with overflow protection.
// The intermediate product is allowed to exceed 256 bits; only the quotient
// is bounds-checked, which keeps ratio math usable near the reserve cap.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, errors.Wrap(types.ErrOverflow, "division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := new(big.Int).Quo(intermediate, c.BigInt())

	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, errors.Wrap(types.ErrOverflow, "quotient exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeSqrt returns the floor of the square root of a
func SafeSqrt(a math.Int) (math.Int, error) {
	if a.IsNegative() {
		return math.Int{}, errors.Wrap(types.ErrOverflow, "square root of negative value")
	}

	result := new(big.Int).Sqrt(a.BigInt())
	return math.NewIntFromBigInt(result), nil
}
