package models

import "github.com/shopspring/decimal"

const (
	CategoryAppetizer   = "Appetizer"
	CategoryFriedSnacks = "Fried Snacks"
	CategoryMainCourse  = "Main Course"
	CategoryPizza       = "Pizza"
	CategoryDrink       = "Drink"
)

// CategoryOrder is the fixed display sequence of menu categories. Both the
// menu renderer and the category navigation consume this list; it is the
// only place the sequence is written down.
var CategoryOrder = []string{
	CategoryAppetizer,
	CategoryFriedSnacks,
	CategoryMainCourse,
	CategoryPizza,
	CategoryDrink,
}

func ValidCategory(category string) bool {
	for _, c := range CategoryOrder {
		if c == category {
			return true
		}
	}
	return false
}

// MenuItem is one orderable item from the catalog. Items are immutable once
// loaded; IDs are unique within a catalog.
type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}
