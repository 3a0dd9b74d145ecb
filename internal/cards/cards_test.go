package cards

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestMinPaymentPercentageOfBalance(t *testing.T) {
	assertDecEqual(t, "30", MinPayment(dec("1000"), dec("1"), dec("0.03")))
}

func TestMinPaymentFloorEnforced(t *testing.T) {
	// 2% of 500 is 10, below the $25 floor.
	assertDecEqual(t, "25", MinPayment(dec("500"), dec("1"), dec("0.02")))
}

func TestMinPaymentPaydownToCarryDominates(t *testing.T) {
	// Carrying 80% of 1000 requires a 200 paydown, above the 30 minimum.
	assertDecEqual(t, "200", MinPayment(dec("1000"), dec("0.8"), dec("0.03")))
}

func TestMinPaymentClampedToBalance(t *testing.T) {
	assertDecEqual(t, "10", MinPayment(dec("10"), dec("1"), dec("0.03")))
}

func TestMinPaymentZeroBalance(t *testing.T) {
	assertDecEqual(t, "0", MinPayment(dec("0"), dec("1"), dec("0.03")))
	assertDecEqual(t, "0", MinPayment(dec("-50"), dec("1"), dec("0.03")))
}

func TestMinPaymentClampsPctInputs(t *testing.T) {
	// carryPct above 1 behaves like 1, negative minPct like 0.
	assertDecEqual(t, "25", MinPayment(dec("500"), dec("3"), dec("-0.5")))
}

func TestOverLimitAdhocFullOverage(t *testing.T) {
	assertDecEqual(t, "100", OverLimitAdhoc(dec("600"), dec("500"), dec("1")))
}

func TestOverLimitAdhocPartialOverage(t *testing.T) {
	assertDecEqual(t, "50", OverLimitAdhoc(dec("600"), dec("500"), dec("0.5")))
}

func TestOverLimitAdhocAtLimit(t *testing.T) {
	assertDecEqual(t, "0", OverLimitAdhoc(dec("500"), dec("500"), dec("1")))
}

func TestOverLimitAdhocNoLimit(t *testing.T) {
	// A zero limit means no limit at all.
	assertDecEqual(t, "0", OverLimitAdhoc(dec("400"), dec("0"), dec("1")))
	assertDecEqual(t, "0", OverLimitAdhoc(dec("400"), dec("-100"), dec("1")))
}

func TestClamp01(t *testing.T) {
	assertDecEqual(t, "0", Clamp01(dec("-0.5")))
	assertDecEqual(t, "0.25", Clamp01(dec("0.25")))
	assertDecEqual(t, "1", Clamp01(dec("1.5")))
}
