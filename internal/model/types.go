// Package model defines shared data structures.
package model

import "time"

// Category identifies one of the fixed household expense types.
type Category int

// Expense categories in collection and display order.
const (
	Rent Category = iota
	Electricity
	Water
	Food
	Internet
	Maintenance
	Other
)

// CategoryCount is the number of expense categories.
const CategoryCount = int(Other) + 1

// Categories lists every category in display order.
var Categories = []Category{Rent, Electricity, Water, Food, Internet, Maintenance, Other}

var categoryLabels = [CategoryCount]string{
	Rent:        "Rent",
	Electricity: "Electricity",
	Water:       "Water",
	Food:        "Food",
	Internet:    "Internet",
	Maintenance: "Maintenance",
	Other:       "Other",
}

var categoryPrompts = [CategoryCount]string{
	Rent:        "Enter total rent of home: ",
	Electricity: "Enter electricity bill: ",
	Water:       "Enter water bill: ",
	Food:        "Enter food bill: ",
	Internet:    "Enter internet bill (0 if not applicable): ",
	Maintenance: "Enter maintenance charges (0 if not applicable): ",
	Other:       "Enter other expenses (0 if none): ",
}

// Label returns the display name of the category.
func (c Category) Label() string {
	if c < 0 || int(c) >= CategoryCount {
		return "Unknown"
	}
	return categoryLabels[c]
}

// Prompt returns the question asked when collecting the category amount.
func (c Category) Prompt() string {
	if c < 0 || int(c) >= CategoryCount {
		return "Enter amount: "
	}
	return categoryPrompts[c]
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return c.Label()
}

// ExpenseSet holds the amounts collected for one calculation.
type ExpenseSet struct {
	Amounts [CategoryCount]float64
	Persons int
}

// Amount returns the amount recorded for a category.
func (s ExpenseSet) Amount(c Category) float64 {
	if c < 0 || int(c) >= CategoryCount {
		return 0
	}
	return s.Amounts[c]
}

// BreakdownEntry is one category's share of the total.
type BreakdownEntry struct {
	Category Category
	Amount   float64
	Percent  float64
}

// Summary is the aggregated view of an ExpenseSet.
type Summary struct {
	Total     float64
	PerPerson float64
	Persons   int
	Breakdown []BreakdownEntry
}

// Scenario is the per-person cost for an alternate head-count.
type Scenario struct {
	Persons   int
	PerPerson float64
	Current   bool
}

// HistoryRecord captures a completed calculation.
type HistoryRecord struct {
	SessionID string
	CreatedAt time.Time
	Total     float64
	PerPerson float64
	Persons   int
}

// Thresholds configures the savings advisor.
type Thresholds struct {
	ElectricityLimit float64
	FoodShare        float64
}

// Config defines calculator settings.
type Config struct {
	Currency   string
	Color      bool
	Thresholds Thresholds
}
