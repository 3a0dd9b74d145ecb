package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanMaturity marks a loan whose final scheduled charge lands on this
// day. MonthlyAmountSaved is the recurring amount freed up afterwards.
type LoanMaturity struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	MonthlyAmountSaved decimal.Decimal `json:"monthlyAmountSaved"`
}

// DayRecord is one day of the projected ledger. All cc* maps are keyed
// by card id. CCCharges, CCPayments, CCPaymentsPlanned and CCInterest
// only carry entries for cards touched that day; CCNetChange and
// CardBalances hold an entry for every card.
type DayRecord struct {
	Date              time.Time                  `json:"date"`
	Day               int                        `json:"day"`
	BankIn            decimal.Decimal            `json:"bankIn"`
	BankOut           decimal.Decimal            `json:"bankOut"`
	BankOutPlanned    decimal.Decimal            `json:"bankOutPlanned"`
	BankBalance       decimal.Decimal            `json:"bankBalance"`
	CCCharges         map[string]decimal.Decimal `json:"ccCharges"`
	CCPayments        map[string]decimal.Decimal `json:"ccPayments"`
	CCPaymentsPlanned map[string]decimal.Decimal `json:"ccPaymentsPlanned"`
	CCInterest        map[string]decimal.Decimal `json:"ccInterest"`
	CCNetChange       map[string]decimal.Decimal `json:"ccNetChange"`
	OverLimitCards    []string                   `json:"overLimitCards"`
	LoanMaturities    []LoanMaturity             `json:"loanMaturities"`
	Underfunded       bool                       `json:"underfunded"`
	CardBalances      map[string]decimal.Decimal `json:"cardBalances"`
}

// CardSummary is the month-end view of one card.
type CardSummary struct {
	Name          string          `json:"name"`
	EndBalance    decimal.Decimal `json:"endBalance"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	LastPayment   decimal.Decimal `json:"lastPayment"`
	APR           decimal.Decimal `json:"apr"`
	DueDay        int             `json:"dueDay"`
	CarryPct      decimal.Decimal `json:"carryPct"`
}

// MonthResult is the full projection for a single month.
//
// RequiredStartingBank is deliberately decoupled from Underfunded: it
// is the max drawdown of cumulative net flows from a hypothetical zero
// start, while Underfunded tracks the real running balance dipping
// below zero intraday.
type MonthResult struct {
	Days                 []DayRecord            `json:"days"`
	CardsSummary         map[string]CardSummary `json:"cardsSummary"`
	EndBank              decimal.Decimal        `json:"endBank"`
	RequiredStartingBank decimal.Decimal        `json:"requiredStartingBank"`
}

// HorizonMonth is one chained month within a multi-month projection.
type HorizonMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	MonthResult
}

// HorizonResult is an ordered multi-month projection.
type HorizonResult struct {
	Months []HorizonMonth `json:"months"`
}
