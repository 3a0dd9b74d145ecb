// Package report renders projection results as plain text for the CLI.
// Anything fancier (charts, tables with tooltips) belongs to external
// consumers of the result records.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/flowcast-dev/flowcast/internal/model"
)

// Month writes a day-by-day ledger table plus card summaries.
func Month(w io.Writer, year, month int, res model.MonthResult) {
	fmt.Fprintf(w, "Projection for %04d-%02d\n\n", year, month)
	fmt.Fprintf(w, "%3s  %10s  %10s  %12s  %s\n", "day", "in", "out", "bank", "events")

	for _, d := range res.Days {
		var events []string
		for _, m := range d.LoanMaturities {
			events = append(events, fmt.Sprintf("loan %s matured (+%s/mo)", m.Name, m.MonthlyAmountSaved.StringFixed(2)))
		}
		for _, id := range d.OverLimitCards {
			events = append(events, "over limit: "+id)
		}
		if d.Underfunded {
			events = append(events, "UNDERFUNDED")
		}
		fmt.Fprintf(w, "%3d  %10s  %10s  %12s  %s\n",
			d.Day,
			d.BankIn.StringFixed(2),
			d.BankOut.StringFixed(2),
			d.BankBalance.StringFixed(2),
			strings.Join(events, "; "))
	}

	if len(res.CardsSummary) > 0 {
		fmt.Fprintf(w, "\n%-20s  %12s  %10s  %10s\n", "card", "end balance", "interest", "last pay")
		for _, id := range sortedCardIDs(res.CardsSummary) {
			cs := res.CardsSummary[id]
			fmt.Fprintf(w, "%-20s  %12s  %10s  %10s\n",
				cs.Name, cs.EndBalance.StringFixed(2), cs.TotalInterest.StringFixed(2), cs.LastPayment.StringFixed(2))
		}
	}

	fmt.Fprintf(w, "\nEnd bank:              %s\n", res.EndBank.StringFixed(2))
	fmt.Fprintf(w, "Required starting bank: %s\n", res.RequiredStartingBank.StringFixed(2))
}

// Horizon writes a one-line summary per chained month.
func Horizon(w io.Writer, res model.HorizonResult) {
	fmt.Fprintf(w, "%7s  %12s  %12s  %11s  %s\n", "month", "end bank", "req. start", "underfunded", "card balances")
	for _, m := range res.Months {
		underfunded := 0
		for _, d := range m.Days {
			if d.Underfunded {
				underfunded++
			}
		}
		var cc []string
		for _, id := range sortedCardIDs(m.CardsSummary) {
			cc = append(cc, fmt.Sprintf("%s=%s", id, m.CardsSummary[id].EndBalance.StringFixed(2)))
		}
		fmt.Fprintf(w, "%04d-%02d  %12s  %12s  %11d  %s\n",
			m.Year, m.Month,
			m.EndBank.StringFixed(2),
			m.RequiredStartingBank.StringFixed(2),
			underfunded,
			strings.Join(cc, " "))
	}
}

func sortedCardIDs(summary map[string]model.CardSummary) []string {
	ids := make([]string, 0, len(summary))
	for id := range summary {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
