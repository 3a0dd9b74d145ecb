// Package engine projects a monthly plan into a day-by-day ledger of
// bank and credit-card movements, and chains single-month projections
// across a horizon.
//
// Simulate is total over its input: malformed or out-of-range values
// are clamped or ignored, never rejected. Identical plans always yield
// identical results; the plan itself is never mutated.
package engine

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/cards"
	"github.com/flowcast-dev/flowcast/internal/dates"
	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/schedule"
)

var twelve = decimal.NewFromInt(12)

// cardState is one card's working balance and running totals for the
// month being simulated.
type cardState struct {
	card          model.Card
	balance       decimal.Decimal
	lastPayment   decimal.Decimal
	totalInterest decimal.Decimal
}

// Simulate projects a single month and returns its daily ledger.
func Simulate(plan model.Plan) model.MonthResult {
	year, month := plan.Settings.Year, plan.Settings.Month
	dim := dates.DaysInMonth(year, month)

	maturities := loanMaturities(plan.Liabilities)
	oneTimes := oneTimesByDay(plan.OneTimeIncomes, year, month)

	bank := plan.Settings.BankStart
	states := make(map[string]*cardState, len(plan.Cards))
	order := make([]string, 0, len(plan.Cards))
	for _, c := range plan.Cards {
		states[c.ID] = &cardState{card: c, balance: c.StartBalance}
		order = append(order, c.ID)
	}

	days := make([]model.DayRecord, 0, dim)
	cumulativeNet := decimal.Zero
	maxDrawdown := decimal.Zero

	for d := 1; d <= dim; d++ {
		rec := model.DayRecord{
			Date:              time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC),
			Day:               d,
			CCCharges:         map[string]decimal.Decimal{},
			CCPayments:        map[string]decimal.Decimal{},
			CCPaymentsPlanned: map[string]decimal.Decimal{},
			CCInterest:        map[string]decimal.Decimal{},
			CCNetChange:       map[string]decimal.Decimal{},
			CardBalances:      map[string]decimal.Decimal{},
		}
		minBank := bank

		// Recurring incomes, with raises effective on or before today.
		// A pay day past the end of the month lands on its last day.
		for _, inc := range plan.Incomes {
			if dates.ClampDay(year, month, inc.Day) != d {
				continue
			}
			amt := inc.Amount.Mul(raiseFactor(plan.IncomeModifiers, year, month, d))
			bank = bank.Add(amt)
			rec.BankIn = rec.BankIn.Add(amt)
			minBank = decimal.Min(minBank, bank)
		}

		// One-time incomes.
		if amt, ok := oneTimes[d]; ok {
			bank = bank.Add(amt)
			rec.BankIn = rec.BankIn.Add(amt)
			minBank = decimal.Min(minBank, bank)
		}

		// Liabilities: bank outflow or card charge, honoring maturity.
		curKey := dates.Key(year, month, d)
		for _, liab := range plan.Liabilities {
			if matKey, ok := maturities[liab.ID]; ok {
				if curKey > matKey {
					continue
				}
				if curKey == matKey {
					rec.LoanMaturities = append(rec.LoanMaturities, model.LoanMaturity{
						ID:                 liab.ID,
						Name:               liab.Name,
						MonthlyAmountSaved: liab.Amount,
					})
				}
			}
			if !schedule.OccursOn(liab, d, dim, year, month) {
				continue
			}
			if isBankSource(liab.Source) {
				rec.BankOutPlanned = rec.BankOutPlanned.Add(liab.Amount)
				bank = bank.Sub(liab.Amount)
				rec.BankOut = rec.BankOut.Add(liab.Amount)
				minBank = decimal.Min(minBank, bank)
			} else if id, ok := resolveCardID(liab.Source, plan.Cards); ok {
				st := states[id]
				st.balance = st.balance.Add(liab.Amount)
				rec.CCCharges[id] = rec.CCCharges[id].Add(liab.Amount)
			}
			// An unresolvable card source drops the amount. The config
			// boundary warns about these; the engine stays total.
		}

		// Over-limit adhoc corrections, any day of the month.
		for _, id := range order {
			st := states[id]
			if st.card.CreditLimit.Sign() <= 0 || st.balance.LessThanOrEqual(st.card.CreditLimit) {
				continue
			}
			rec.OverLimitCards = append(rec.OverLimitCards, id)
			payment := cards.OverLimitAdhoc(st.balance, st.card.CreditLimit, st.card.OverLimitAdhocPct)
			if payment.Sign() <= 0 {
				continue
			}
			rec.BankOutPlanned = rec.BankOutPlanned.Add(payment)
			rec.CCPaymentsPlanned[id] = rec.CCPaymentsPlanned[id].Add(payment)
			bank = bank.Sub(payment)
			rec.BankOut = rec.BankOut.Add(payment)
			st.balance = st.balance.Sub(payment)
			st.lastPayment = st.lastPayment.Add(payment)
			rec.CCPayments[id] = rec.CCPayments[id].Add(payment)
			minBank = decimal.Min(minBank, bank)
		}

		// Due-day interest accrual, then the scheduled payment.
		for _, id := range order {
			st := states[id]
			if d != dates.ClampDay(year, month, st.card.DueDay) {
				continue
			}
			interest := st.balance.Mul(st.card.APR.Div(twelve))
			if interest.Sign() > 0 {
				st.balance = st.balance.Add(interest)
				st.totalInterest = st.totalInterest.Add(interest)
				rec.CCInterest[id] = rec.CCInterest[id].Add(interest)
			}
			payment := cards.MinPayment(st.balance, st.card.CarryPct, st.card.MinPct)
			if payment.Sign() <= 0 {
				continue
			}
			rec.BankOutPlanned = rec.BankOutPlanned.Add(payment)
			rec.CCPaymentsPlanned[id] = rec.CCPaymentsPlanned[id].Add(payment)
			bank = bank.Sub(payment)
			rec.BankOut = rec.BankOut.Add(payment)
			st.balance = st.balance.Sub(payment)
			st.lastPayment = st.lastPayment.Add(payment)
			rec.CCPayments[id] = rec.CCPayments[id].Add(payment)
			minBank = decimal.Min(minBank, bank)
		}

		for _, id := range order {
			net := rec.CCCharges[id].Add(rec.CCInterest[id]).Sub(rec.CCPayments[id])
			rec.CCNetChange[id] = net
			rec.CardBalances[id] = states[id].balance
		}

		cumulativeNet = cumulativeNet.Add(rec.BankIn).Sub(rec.BankOut)
		maxDrawdown = decimal.Max(maxDrawdown, cumulativeNet.Neg())

		rec.BankBalance = bank
		rec.Underfunded = minBank.IsNegative()
		days = append(days, rec)
	}

	summary := make(map[string]model.CardSummary, len(states))
	for id, st := range states {
		summary[id] = model.CardSummary{
			Name:          st.card.Name,
			EndBalance:    st.balance,
			TotalInterest: st.totalInterest,
			LastPayment:   st.lastPayment,
			APR:           st.card.APR,
			DueDay:        st.card.DueDay,
			CarryPct:      st.card.CarryPct,
		}
	}

	return model.MonthResult{
		Days:                 days,
		CardsSummary:         summary,
		EndBank:              bank,
		RequiredStartingBank: decimal.Max(decimal.Zero, maxDrawdown),
	}
}

// SimulateHorizon chains months months of projections, carrying each
// month's ending bank and card balances into the next. Everything else
// in the plan is reused unchanged, so annual liabilities and loan
// maturities fall in and out of scope as the months advance.
func SimulateHorizon(plan model.Plan, months int) model.HorizonResult {
	bankStart := plan.Settings.BankStart
	balances := make(map[string]decimal.Decimal, len(plan.Cards))
	for _, c := range plan.Cards {
		balances[c.ID] = c.StartBalance
	}

	out := model.HorizonResult{Months: make([]model.HorizonMonth, 0, months)}
	for i := 0; i < months; i++ {
		y, m := dates.AddMonths(plan.Settings.Year, plan.Settings.Month, i)

		step := plan
		step.Settings = model.Settings{Year: y, Month: m, BankStart: bankStart}
		step.Cards = make([]model.Card, len(plan.Cards))
		for j, c := range plan.Cards {
			c.StartBalance = balances[c.ID]
			step.Cards[j] = c
		}

		res := Simulate(step)
		out.Months = append(out.Months, model.HorizonMonth{Year: y, Month: m, MonthResult: res})

		bankStart = res.EndBank
		for id, cs := range res.CardsSummary {
			balances[id] = cs.EndBalance
		}
	}
	return out
}

// raiseFactor compounds every modifier effective on or before the
// given day. Each normalized percent is clamped into [-0.99, 10].
func raiseFactor(mods []model.IncomeModifier, year, month, day int) decimal.Decimal {
	f := decimal.NewFromInt(1)
	if len(mods) == 0 {
		return f
	}
	cur := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	lo := decimal.NewFromFloat(-0.99)
	hi := decimal.NewFromInt(10)
	for _, m := range mods {
		if m.Effective.IsZero() || m.Effective.After(cur) {
			continue
		}
		pct := normalizePercent(m.Percent)
		if pct.LessThan(lo) {
			pct = lo
		}
		if pct.GreaterThan(hi) {
			pct = hi
		}
		f = f.Mul(decimal.NewFromInt(1).Add(pct))
	}
	return f
}

// normalizePercent accepts raises given either as a fraction (0.03) or
// as percentage points (3): any magnitude above 1 is divided by 100.
func normalizePercent(raw decimal.Decimal) decimal.Decimal {
	if raw.Abs().GreaterThan(decimal.NewFromInt(1)) {
		return raw.Div(decimal.NewFromInt(100))
	}
	return raw
}

// oneTimesByDay buckets one-time incomes landing in the simulated
// month by day-of-month.
func oneTimesByDay(oneTimes []model.OneTimeIncome, year, month int) map[int]decimal.Decimal {
	byDay := make(map[int]decimal.Decimal)
	for _, ot := range oneTimes {
		if ot.Date.IsZero() || ot.Date.Year() != year || int(ot.Date.Month()) != month {
			continue
		}
		d := ot.Date.Day()
		byDay[d] = byDay[d].Add(ot.Amount)
	}
	return byDay
}

// loanMaturities precomputes each loan's final charge date as a
// comparable date key: origination plus the term, with the charge day
// clamped to that month's length.
func loanMaturities(liabilities []model.Liability) map[string]int {
	out := make(map[string]int)
	for _, liab := range liabilities {
		if liab.Type != model.LiabilityLoan || liab.Loan == nil || liab.Loan.Origination.IsZero() {
			continue
		}
		y, m := dates.AddMonths(liab.Loan.Origination.Year(), int(liab.Loan.Origination.Month()), liab.Loan.TermMonths)
		out[liab.ID] = dates.Key(y, m, dates.ClampDay(y, m, liab.Day))
	}
	return out
}

// isBankSource reports whether a liability source routes to the bank
// balance. Matching is by case-insensitive prefix so "Bank", "bank
// account" and friends all qualify; an empty source defaults to bank.
func isBankSource(source string) bool {
	if source == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(source), "bank")
}

// resolveCardID matches a liability source to a card: exact id match
// first (case-insensitive), then name match.
func resolveCardID(source string, cc []model.Card) (string, bool) {
	s := strings.ToLower(source)
	for _, c := range cc {
		if strings.ToLower(c.ID) == s {
			return c.ID, true
		}
	}
	for _, c := range cc {
		if strings.ToLower(c.Name) == s {
			return c.ID, true
		}
	}
	return "", false
}
