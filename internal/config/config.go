// Package config owns the plan file: the loosely-typed document users
// edit, its YAML load/save, the JSON export envelope, and the
// normalization step that turns a document into the closed-enum
// model.Plan the engine consumes. All defaulting, clamping, and enum
// fallback happens here, with a warning per coercion, so the engine
// never sees a questionable value.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the top-level flowcast.yaml structure. It is loosely
// typed on purpose: numbers are plain floats and enums are free
// strings until Normalize converts them to exact decimals and closed
// enums. Fields with a meaningful default are pointers so "absent" and
// "zero" stay distinguishable.
type Document struct {
	Settings        SettingsDoc         `yaml:"settings" json:"settings"`
	Incomes         []IncomeDoc         `yaml:"incomes,omitempty" json:"incomes"`
	IncomeModifiers []IncomeModifierDoc `yaml:"income_modifiers,omitempty" json:"incomeModifiers"`
	OneTimeIncomes  []OneTimeIncomeDoc  `yaml:"one_time_incomes,omitempty" json:"oneTimeIncomes"`
	Liabilities     []LiabilityDoc      `yaml:"liabilities,omitempty" json:"liabilities"`
	Cards           []CardDoc           `yaml:"cards,omitempty" json:"cards"`
}

// SettingsDoc anchors the projection.
type SettingsDoc struct {
	Year      int     `yaml:"year" json:"year"`
	Month     int     `yaml:"month" json:"month"`
	BankStart float64 `yaml:"bank_start" json:"bankStart"`
}

// IncomeDoc is a recurring deposit row.
type IncomeDoc struct {
	ID     string  `yaml:"id" json:"id"`
	Name   string  `yaml:"name" json:"name"`
	Amount float64 `yaml:"amount" json:"amount"`
	Day    int     `yaml:"day" json:"day"`
}

// IncomeModifierDoc is a raise row. Percent accepts a fraction (0.03)
// or percentage points (3).
type IncomeModifierDoc struct {
	EffectiveISO string  `yaml:"effective" json:"effectiveISO"`
	Percent      float64 `yaml:"percent" json:"percent"`
}

// OneTimeIncomeDoc is a single dated deposit row.
type OneTimeIncomeDoc struct {
	ID      string  `yaml:"id" json:"id"`
	Name    string  `yaml:"name" json:"name"`
	Type    string  `yaml:"type,omitempty" json:"type"`
	Amount  float64 `yaml:"amount" json:"amount"`
	DateISO string  `yaml:"date" json:"dateISO"`
}

// LoanDoc carries loan-term details.
type LoanDoc struct {
	OriginationISO string  `yaml:"origination" json:"originationISO"`
	TermMonths     int     `yaml:"term_months" json:"termMonths"`
	Rate           float64 `yaml:"rate,omitempty" json:"rate"`
	OriginalAmount float64 `yaml:"original_amount,omitempty" json:"originalAmount"`
}

// LiabilityDoc is a recurring bill row. Type and Frequency are free
// strings here; Normalize maps them onto the closed enums.
type LiabilityDoc struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Type      string   `yaml:"type" json:"type"`
	Amount    float64  `yaml:"amount" json:"amount"`
	Day       int      `yaml:"day" json:"day"`
	Source    string   `yaml:"source" json:"source"`
	Frequency string   `yaml:"frequency,omitempty" json:"frequency"`
	Month     int      `yaml:"month,omitempty" json:"month,omitempty"`
	Loan      *LoanDoc `yaml:"loan,omitempty" json:"loan,omitempty"`
}

// CardDoc is a revolving-credit row. MinPct and OverLimitAdhocPct are
// pointers: absent means "use the default", zero means zero.
type CardDoc struct {
	ID                string   `yaml:"id" json:"id"`
	Name              string   `yaml:"name" json:"name"`
	APR               float64  `yaml:"apr" json:"apr"`
	DueDay            int      `yaml:"due_day" json:"dueDay"`
	CarryPct          float64  `yaml:"carry_pct" json:"carryPct"`
	StartBalance      float64  `yaml:"start_balance" json:"startBalance"`
	MinPct            *float64 `yaml:"min_pct,omitempty" json:"minPct,omitempty"`
	CreditLimit       float64  `yaml:"credit_limit" json:"creditLimit"`
	OverLimitAdhocPct *float64 `yaml:"over_limit_adhoc_pct,omitempty" json:"overLimitAdhocPct,omitempty"`
}

// Load reads a plan document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &doc, nil
}

// Save writes a plan document to a YAML file.
func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}

// Default returns a small sample plan for a given starting month.
func Default(year, month int) *Document {
	minPct := 0.03
	overPct := 1.0
	return &Document{
		Settings: SettingsDoc{
			Year:      year,
			Month:     month,
			BankStart: 1200,
		},
		Incomes: []IncomeDoc{
			{ID: "inc-payroll-1", Name: "Paycheck (1st)", Amount: 2400, Day: 1},
			{ID: "inc-payroll-15", Name: "Paycheck (15th)", Amount: 2400, Day: 15},
		},
		Liabilities: []LiabilityDoc{
			{ID: "liab-rent", Name: "Rent", Type: "Living Expense", Amount: 1500, Day: 1, Source: "Bank", Frequency: "exact"},
			{ID: "liab-power", Name: "Electric", Type: "Utility", Amount: 120, Day: 12, Source: "Bank", Frequency: "exact"},
			{ID: "liab-stream", Name: "Streaming", Type: "Subscription", Amount: 15.99, Day: 8, Source: "visa", Frequency: "exact"},
		},
		Cards: []CardDoc{
			{
				ID: "visa", Name: "Visa", APR: 0.2399, DueDay: 21,
				CarryPct: 0.5, StartBalance: 800,
				MinPct: &minPct, CreditLimit: 5000, OverLimitAdhocPct: &overPct,
			},
		},
	}
}
