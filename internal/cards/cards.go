// Package cards holds the revolving-credit payment math: the due-day
// payment rule and the over-limit adhoc correction. Both are pure
// functions over decimals so the engine and its tests share one
// definition.
package cards

import (
	"github.com/shopspring/decimal"
)

var (
	// MinPaymentFloor is the smallest non-zero due-day payment.
	MinPaymentFloor = decimal.NewFromInt(25)
	// DefaultMinPct applies when a card does not set a minimum-payment
	// percentage.
	DefaultMinPct = decimal.NewFromFloat(0.03)
	// DefaultOverLimitPct applies when a card does not set an
	// over-limit paydown fraction: the full overage is paid.
	DefaultOverLimitPct = decimal.NewFromInt(1)
)

var one = decimal.NewFromInt(1)

// Clamp01 clamps a fraction into [0, 1].
func Clamp01(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(one) {
		return one
	}
	return d
}

// MinPayment computes the due-day payment for a card balance: the
// larger of the paydown needed to reach the carry target and the
// minimum payment (minPct of balance, floored at $25), clamped so a
// payment never exceeds the balance.
func MinPayment(balance, carryPct, minPct decimal.Decimal) decimal.Decimal {
	if balance.Sign() <= 0 {
		return decimal.Zero
	}
	carry := Clamp01(carryPct)
	paydownToCarry := balance.Sub(balance.Mul(carry))
	if paydownToCarry.IsNegative() {
		paydownToCarry = decimal.Zero
	}

	minPay := Clamp01(minPct).Mul(balance)
	if minPay.LessThan(MinPaymentFloor) {
		minPay = MinPaymentFloor
	}

	payment := decimal.Max(paydownToCarry, minPay)
	return decimal.Min(payment, balance)
}

// OverLimitAdhoc computes the immediate forced paydown when a balance
// exceeds a positive credit limit: pct of the overage, clamped to the
// balance. A zero or negative limit means no limit, so no paydown.
func OverLimitAdhoc(balance, creditLimit, pct decimal.Decimal) decimal.Decimal {
	if creditLimit.Sign() <= 0 || balance.LessThanOrEqual(creditLimit) {
		return decimal.Zero
	}
	over := balance.Sub(creditLimit)
	return decimal.Min(balance, over.Mul(Clamp01(pct)))
}
