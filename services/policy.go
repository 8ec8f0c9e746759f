package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/tobybase/Meal-order-app/models"
)

// Business-rule rejections. These are expected conditions, reported to the
// user and never treated as faults.
var (
	ErrDrinkLimit     = errors.New("only one drink may be ordered")
	ErrBudgetExceeded = errors.New("order would exceed the budget")
	ErrEmptyOrder     = errors.New("order is empty")
)

// CanAdd decides whether one more unit of item may join the order. The
// drink rule is checked before the budget rule: a user whose add violates
// both is told about the drink limit first. The budget comparison is
// strict: a total exactly equal to the budget is allowed.
func CanAdd(order *Order, item models.MenuItem, budget decimal.Decimal) error {
	if item.Category == models.CategoryDrink && order.ContainsDrink() {
		return ErrDrinkLimit
	}
	if order.Total().Add(item.Price).GreaterThan(budget) {
		return ErrBudgetExceeded
	}
	return nil
}

// CanSetQuantity decides whether the line for itemID may take the candidate
// quantity. The total is recomputed with the candidate substituted for that
// line. Quantity zero is removal and is always allowed; negative quantities
// are invalid input and handled as a no-op by the controller, never here.
func CanSetQuantity(order *Order, itemID, quantity int, budget decimal.Decimal) error {
	if quantity <= 0 {
		return nil
	}
	total := decimal.Zero
	for _, line := range order.lines {
		qty := line.Qty
		if line.Item.ID == itemID {
			qty = quantity
		}
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	if total.GreaterThan(budget) {
		return ErrBudgetExceeded
	}
	return nil
}
