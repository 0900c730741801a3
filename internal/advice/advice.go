// Package advice derives savings tips from an aggregated expense set.
package advice

import (
	"fmt"

	"github.com/verte-zerg/rentcalc/internal/expense"
	"github.com/verte-zerg/rentcalc/internal/model"
)

// Default thresholds.
const (
	DefaultElectricityLimit = 1000.0
	DefaultFoodShare        = 0.4
)

// Tip is one savings suggestion. Detail lines are printed indented below the headline.
type Tip struct {
	Headline string
	Detail   []string
}

// DefaultThresholds returns the built-in advisor thresholds.
func DefaultThresholds() model.Thresholds {
	return model.Thresholds{
		ElectricityLimit: DefaultElectricityLimit,
		FoodShare:        DefaultFoodShare,
	}
}

// Tips evaluates every rule independently against the current calculation.
func Tips(set model.ExpenseSet, sum model.Summary, th model.Thresholds) []Tip {
	tips := make([]Tip, 0, 3)

	if highest, ok := expense.Highest(sum.Breakdown); ok {
		tips = append(tips, Tip{
			Headline: fmt.Sprintf("Your highest expense is %s", highest.Category.Label()),
			Detail:   []string{"Consider ways to reduce it!"},
		})
	} else {
		tips = append(tips, Tip{Headline: "No expenses recorded, nothing to reduce."})
	}

	if set.Amount(model.Electricity) > th.ElectricityLimit {
		tips = append(tips, Tip{
			Headline: "Your electricity bill is high. Try using LED bulbs and",
			Detail:   []string{"unplug devices when not in use."},
		})
	}

	if set.Amount(model.Food) > sum.PerPerson*th.FoodShare {
		tips = append(tips, Tip{
			Headline: "Food expenses are significant. Consider cooking in bulk",
			Detail:   []string{"or meal planning to save money."},
		})
	}

	return tips
}
