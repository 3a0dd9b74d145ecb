// Package model defines the configuration a projection runs from and
// the ledger records it produces. Plan values are fully normalized
// before they reach the engine: enums are closed, percentages are
// in-range, defaults are applied. The engine never revisits those
// decisions.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiabilityType classifies a recurring obligation.
type LiabilityType string

const (
	LiabilityUtility      LiabilityType = "utility"
	LiabilitySubscription LiabilityType = "subscription"
	LiabilityLoan         LiabilityType = "loan"
	LiabilityLiving       LiabilityType = "living_expense"
)

// Frequency selects the schedule policy for a recurring obligation.
type Frequency string

const (
	FreqExact         Frequency = "exact"
	FreqDaily         Frequency = "daily"
	FreqEveryOtherDay Frequency = "everyOtherDay"
	FreqWeekly        Frequency = "weekly"
	FreqAnnual        Frequency = "annual"
)

// Settings anchors a projection to a starting month and bank balance.
type Settings struct {
	Year      int
	Month     int // 1..12
	BankStart decimal.Decimal
}

// Income is a recurring monthly deposit on a fixed day.
type Income struct {
	ID     string
	Name   string
	Amount decimal.Decimal
	Day    int // 1..31, clamped to month length
}

// IncomeModifier is a raise applied to all recurring income from its
// effective date forward. Percent is a fraction; modifiers compound
// multiplicatively.
type IncomeModifier struct {
	Effective time.Time
	Percent   decimal.Decimal
}

// OneTimeIncome is a single deposit on an exact calendar date.
type OneTimeIncome struct {
	ID     string
	Name   string
	Type   string
	Amount decimal.Decimal
	Date   time.Time
}

// Loan carries the term details that give a liability a maturity date.
type Loan struct {
	Origination    time.Time
	TermMonths     int
	Rate           decimal.Decimal
	OriginalAmount decimal.Decimal
}

// Liability is a recurring bill, subscription, or loan payment. Source
// routes the amount: "Bank" (any case/prefix) hits the bank balance,
// anything else is charged to the named card.
type Liability struct {
	ID        string
	Name      string
	Type      LiabilityType
	Amount    decimal.Decimal
	Day       int
	Source    string
	Frequency Frequency
	Month     int   // annual frequency only; 0 = the evaluated month
	Loan      *Loan // set only for liabilities with a term
}

// Card holds revolving-credit terms. All pct fields are fractions in
// [0,1]; APR is an annual fraction.
type Card struct {
	ID                string
	Name              string
	APR               decimal.Decimal
	DueDay            int
	CarryPct          decimal.Decimal
	StartBalance      decimal.Decimal
	MinPct            decimal.Decimal
	CreditLimit       decimal.Decimal
	OverLimitAdhocPct decimal.Decimal
}

// Plan is a complete, immutable projection input. The engine reads it
// and never mutates it.
type Plan struct {
	Settings        Settings
	Incomes         []Income
	IncomeModifiers []IncomeModifier
	OneTimeIncomes  []OneTimeIncome
	Liabilities     []Liability
	Cards           []Card
}
