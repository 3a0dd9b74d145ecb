package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/cards"
	"github.com/flowcast-dev/flowcast/internal/dates"
	"github.com/flowcast-dev/flowcast/internal/model"
)

// Warning describes one coercion or suspect value found while
// normalizing a document. Warnings never stop a projection; the engine
// is total and runs with the coerced values. Fatal marks the warnings
// where the coercion loses money outright, such as a liability whose
// source matches no card.
type Warning struct {
	Entity  string
	ID      string
	Message string
	Fatal   bool
}

func (w Warning) String() string {
	if w.ID == "" {
		return fmt.Sprintf("%s: %s", w.Entity, w.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Entity, w.ID, w.Message)
}

// Normalize converts a loosely-typed document into the closed-enum,
// exact-decimal plan the engine consumes, applying defaults and clamps
// and collecting a warning for each one. A liability whose source
// matches no card gets a warning here; the engine itself will silently
// drop the amount.
func Normalize(doc *Document) (model.Plan, []Warning) {
	var warns []Warning

	plan := model.Plan{
		Settings: model.Settings{
			Year:      doc.Settings.Year,
			Month:     doc.Settings.Month,
			BankStart: dec(doc.Settings.BankStart),
		},
	}
	if plan.Settings.Month < 1 || plan.Settings.Month > 12 {
		warns = append(warns, Warning{Entity: "settings", Message: fmt.Sprintf("month %d out of range, using 1", plan.Settings.Month)})
		plan.Settings.Month = 1
	}

	for _, inc := range doc.Incomes {
		plan.Incomes = append(plan.Incomes, model.Income{
			ID: inc.ID, Name: inc.Name, Amount: dec(inc.Amount), Day: inc.Day,
		})
		if inc.Day < 1 || inc.Day > 31 {
			warns = append(warns, Warning{Entity: "income", ID: inc.ID, Message: fmt.Sprintf("day %d out of range, will be clamped", inc.Day)})
		}
	}

	for i, m := range doc.IncomeModifiers {
		eff, err := dates.ParseISO(m.EffectiveISO)
		if err != nil {
			warns = append(warns, Warning{Entity: "income_modifier", ID: fmt.Sprint(i), Message: fmt.Sprintf("unparseable effective date %q, modifier dropped", m.EffectiveISO)})
			continue
		}
		plan.IncomeModifiers = append(plan.IncomeModifiers, model.IncomeModifier{Effective: eff, Percent: dec(m.Percent)})
	}

	for _, ot := range doc.OneTimeIncomes {
		date, err := dates.ParseISO(ot.DateISO)
		if err != nil {
			warns = append(warns, Warning{Entity: "one_time_income", ID: ot.ID, Message: fmt.Sprintf("unparseable date %q, entry dropped", ot.DateISO)})
			continue
		}
		plan.OneTimeIncomes = append(plan.OneTimeIncomes, model.OneTimeIncome{
			ID: ot.ID, Name: ot.Name, Type: ot.Type, Amount: dec(ot.Amount), Date: date,
		})
	}

	for _, c := range doc.Cards {
		card := model.Card{
			ID:           c.ID,
			Name:         c.Name,
			APR:          dec(c.APR),
			DueDay:       c.DueDay,
			CarryPct:     clampPct(dec(c.CarryPct), c.ID, "carry_pct", &warns),
			StartBalance: dec(c.StartBalance),
			CreditLimit:  dec(c.CreditLimit),
		}
		if c.MinPct != nil {
			card.MinPct = clampPct(dec(*c.MinPct), c.ID, "min_pct", &warns)
		} else {
			card.MinPct = cards.DefaultMinPct
		}
		if c.OverLimitAdhocPct != nil {
			card.OverLimitAdhocPct = clampPct(dec(*c.OverLimitAdhocPct), c.ID, "over_limit_adhoc_pct", &warns)
		} else {
			card.OverLimitAdhocPct = cards.DefaultOverLimitPct
		}
		plan.Cards = append(plan.Cards, card)
	}

	for _, l := range doc.Liabilities {
		liab := model.Liability{
			ID:        l.ID,
			Name:      l.Name,
			Type:      parseLiabilityType(l.Type, l.ID, &warns),
			Amount:    dec(l.Amount),
			Day:       l.Day,
			Source:    l.Source,
			Frequency: parseFrequency(l.Frequency, l.ID, &warns),
			Month:     l.Month,
		}
		if l.Loan != nil {
			orig, err := dates.ParseISO(l.Loan.OriginationISO)
			if err != nil {
				warns = append(warns, Warning{Entity: "liability", ID: l.ID, Message: fmt.Sprintf("unparseable loan origination %q, maturity ignored", l.Loan.OriginationISO)})
			} else {
				liab.Loan = &model.Loan{
					Origination:    orig,
					TermMonths:     l.Loan.TermMonths,
					Rate:           dec(l.Loan.Rate),
					OriginalAmount: dec(l.Loan.OriginalAmount),
				}
			}
		}
		if !sourceResolves(liab.Source, plan.Cards) {
			warns = append(warns, Warning{Entity: "liability", ID: l.ID, Message: fmt.Sprintf("source %q matches no card; its amount will be dropped", l.Source), Fatal: true})
		}
		plan.Liabilities = append(plan.Liabilities, liab)
	}

	return plan, warns
}

// dec converts a document number to an exact decimal, with the
// numeric-or-zero fallback for values YAML could not have produced
// meaningfully.
func dec(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func clampPct(d decimal.Decimal, id, field string, warns *[]Warning) decimal.Decimal {
	clamped := cards.Clamp01(d)
	if !clamped.Equal(d) {
		*warns = append(*warns, Warning{Entity: "card", ID: id, Message: fmt.Sprintf("%s %s clamped to %s", field, d, clamped)})
	}
	return clamped
}

func parseLiabilityType(s, id string, warns *[]Warning) model.LiabilityType {
	switch canonical(s) {
	case "utility":
		return model.LiabilityUtility
	case "subscription":
		return model.LiabilitySubscription
	case "loan":
		return model.LiabilityLoan
	case "livingexpense", "":
		return model.LiabilityLiving
	default:
		*warns = append(*warns, Warning{Entity: "liability", ID: id, Message: fmt.Sprintf("unknown type %q, treating as living expense", s)})
		return model.LiabilityLiving
	}
}

func parseFrequency(s, id string, warns *[]Warning) model.Frequency {
	switch canonical(s) {
	case "exact", "":
		return model.FreqExact
	case "daily":
		return model.FreqDaily
	case "everyotherday":
		return model.FreqEveryOtherDay
	case "weekly":
		return model.FreqWeekly
	case "annual":
		return model.FreqAnnual
	default:
		*warns = append(*warns, Warning{Entity: "liability", ID: id, Message: fmt.Sprintf("unknown frequency %q, treating as exact", s)})
		return model.FreqExact
	}
}

// canonical lower-cases and strips separators so "Living Expense",
// "living_expense" and "livingExpense" all compare equal.
func canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// sourceResolves mirrors the engine's routing: bank prefixes always
// resolve, otherwise the source must match a card id or name.
func sourceResolves(source string, cc []model.Card) bool {
	if source == "" || strings.HasPrefix(strings.ToLower(source), "bank") {
		return true
	}
	s := strings.ToLower(source)
	for _, c := range cc {
		if strings.ToLower(c.ID) == s || strings.ToLower(c.Name) == s {
			return true
		}
	}
	return false
}
