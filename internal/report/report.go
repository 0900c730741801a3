// Package report formats calculation results for the console.
package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/rentcalc/internal/advice"
	"github.com/verte-zerg/rentcalc/internal/model"
)

// Reporter renders report sections as lines of text.
type Reporter struct {
	theme    Theme
	currency string
}

// New constructs a Reporter.
func New(theme Theme, currency string) *Reporter {
	return &Reporter{theme: theme, currency: currency}
}

// Theme returns the reporter's styling.
func (r *Reporter) Theme() Theme {
	return r.theme
}

// Currency returns the currency symbol prefixed to amounts.
func (r *Reporter) Currency() string {
	return r.currency
}

// Banner renders a title framed by '=' separators.
func (r *Reporter) Banner(title string) []string {
	sep := r.theme.Muted(separator('='))
	return []string{sep, r.theme.Heading(title), sep}
}

// Results renders the breakdown table, total and per-person cost.
func (r *Reporter) Results(sum model.Summary) []string {
	lines := []string{""}
	lines = append(lines, r.Banner("CALCULATION RESULTS")...)
	lines = append(lines, "", "Expense Breakdown:", r.theme.Muted(separator('-')))
	if len(sum.Breakdown) == 0 {
		lines = append(lines, "No expenses entered.")
	}
	for _, e := range sum.Breakdown {
		lines = append(lines, fmt.Sprintf("%s %s%10.2f (%5.1f%%)",
			dotPad(e.Category.Label(), labelWidth), r.currency, e.Amount, e.Percent))
	}
	lines = append(lines,
		r.theme.Muted(separator('-')),
		fmt.Sprintf("%s %s", dotPad("Total Expenses", labelWidth), r.theme.Accent(fmt.Sprintf("%s%10.2f", r.currency, sum.Total))),
		"",
		r.theme.Muted(separator('=')),
		fmt.Sprintf("Number of Persons: %d", sum.Persons),
		fmt.Sprintf("Per Person Cost: %s", r.theme.Accent(fmt.Sprintf("%s%.2f", r.currency, sum.PerPerson))),
		r.theme.Muted(separator('=')),
		"",
	)
	return lines
}

// Tips renders the savings tips section.
func (r *Reporter) Tips(tips []advice.Tip) []string {
	lines := []string{"", r.theme.Heading("SAVINGS TIPS:"), r.theme.Muted(separator('-'))}
	for _, tip := range tips {
		lines = append(lines, r.theme.Accent("•")+" "+tip.Headline)
		for _, detail := range tip.Detail {
			lines = append(lines, "  "+detail)
		}
	}
	return append(lines, "")
}

// Comparison renders per-person costs for alternate head-counts.
func (r *Reporter) Comparison(scenarios []model.Scenario) []string {
	lines := []string{"", r.theme.Heading("COMPARISON:"), r.theme.Muted(separator('-'))}
	for _, s := range scenarios {
		line := fmt.Sprintf("With %d person(s): %s%.2f per person", s.Persons, r.currency, s.PerPerson)
		if s.Current {
			line += " (Current)"
		}
		lines = append(lines, line)
	}
	return append(lines, "")
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
