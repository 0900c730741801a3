// Package expense aggregates collected household expenses.
package expense

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/verte-zerg/rentcalc/internal/model"
)

// ErrInvalidAmount reports text that is not a finite decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// Decimal orders of magnitude outside float64 range. Checked before
// conversion, which otherwise materializes 10^exponent as a big integer.
const (
	maxAmountOrder = 308
	minAmountOrder = -330
)

// ParseAmount parses a monetary amount typed by the user.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsZero() {
		return 0, nil
	}
	order := int64(d.NumDigits()) + int64(d.Exponent()) - 1
	if order > maxAmountOrder {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	if order < minAmountOrder {
		// Below the smallest float64; keep only the sign.
		if d.IsNegative() {
			return -math.SmallestNonzeroFloat64, nil
		}
		return 0, nil
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return v, nil
}

// Total sums all category amounts. Non-finite amounts make the total non-finite.
func Total(set model.ExpenseSet) float64 {
	sum := decimal.Zero
	for _, c := range model.Categories {
		amount := set.Amount(c)
		if math.IsInf(amount, 0) || math.IsNaN(amount) {
			return floatTotal(set)
		}
		sum = sum.Add(decimal.NewFromFloat(amount))
	}
	return sum.InexactFloat64()
}

func floatTotal(set model.ExpenseSet) float64 {
	var total float64
	for _, c := range model.Categories {
		total += set.Amount(c)
	}
	return total
}

// PerPerson splits a total evenly. Non-positive head-counts yield 0.
func PerPerson(total float64, persons int) float64 {
	if persons < 1 {
		return 0
	}
	return total / float64(persons)
}

// Percent returns amount as a percentage of total, or 0 when total is 0.
func Percent(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}

// Breakdown lists the non-zero categories with their share of total.
func Breakdown(set model.ExpenseSet, total float64) []model.BreakdownEntry {
	entries := make([]model.BreakdownEntry, 0, len(model.Categories))
	for _, c := range model.Categories {
		amount := set.Amount(c)
		if amount <= 0 {
			continue
		}
		entries = append(entries, model.BreakdownEntry{
			Category: c,
			Amount:   amount,
			Percent:  Percent(amount, total),
		})
	}
	return entries
}

// Highest returns the largest entry. Ties go to the earliest category.
func Highest(entries []model.BreakdownEntry) (model.BreakdownEntry, bool) {
	if len(entries) == 0 {
		return model.BreakdownEntry{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Amount > best.Amount {
			best = e
		}
	}
	return best, true
}

// Scenarios computes the per-person cost with one fewer and one more person.
// The fewer-person scenario is omitted for a single person, the more-person
// one when the head-count cannot grow.
func Scenarios(total float64, persons int) []model.Scenario {
	out := make([]model.Scenario, 0, 3)
	if persons > 1 {
		out = append(out, model.Scenario{Persons: persons - 1, PerPerson: PerPerson(total, persons-1)})
	}
	out = append(out, model.Scenario{Persons: persons, PerPerson: PerPerson(total, persons), Current: true})
	if persons < math.MaxInt {
		out = append(out, model.Scenario{Persons: persons + 1, PerPerson: PerPerson(total, persons+1)})
	}
	return out
}

// Summarize aggregates an expense set.
func Summarize(set model.ExpenseSet) model.Summary {
	total := Total(set)
	return model.Summary{
		Total:     total,
		PerPerson: PerPerson(total, set.Persons),
		Persons:   set.Persons,
		Breakdown: Breakdown(set, total),
	}
}
