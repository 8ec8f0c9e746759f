package services

import (
	"github.com/shopspring/decimal"

	"github.com/tobybase/Meal-order-app/models"
)

// OrderLine is one catalog item with a chosen quantity. Qty is at least 1
// while the line exists; a quantity of zero means the line is removed, not
// stored.
type OrderLine struct {
	Item models.MenuItem
	Qty  int
}

func (l OrderLine) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Order holds the participant's current selection. Lines keep insertion
// order and are unique per item ID. Every mutation goes through the policy
// checks; rejected mutations leave the order untouched. Totals are derived
// on read, never stored.
//
// There is exactly one writer (the UI event loop), so no locking.
type Order struct {
	lines []OrderLine
}

func NewOrder() *Order {
	return &Order{}
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []OrderLine {
	out := make([]OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) Len() int {
	return len(o.lines)
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Quantity returns the chosen quantity for the item, 0 if not in the order.
func (o *Order) Quantity(itemID int) int {
	for _, line := range o.lines {
		if line.Item.ID == itemID {
			return line.Qty
		}
	}
	return 0
}

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	return total
}

func (o *Order) Remaining(budget decimal.Decimal) decimal.Decimal {
	return budget.Sub(o.Total())
}

func (o *Order) ContainsDrink() bool {
	for _, line := range o.lines {
		if line.Item.Category == models.CategoryDrink {
			return true
		}
	}
	return false
}

// Add puts one unit of item into the order. If a line for the item already
// exists, this is an increment through SetQuantity; otherwise a new line
// with quantity 1 is appended when the policy allows it.
func (o *Order) Add(item models.MenuItem, budget decimal.Decimal) error {
	if qty := o.Quantity(item.ID); qty > 0 {
		return o.SetQuantity(item.ID, qty+1, budget)
	}
	if err := CanAdd(o, item, budget); err != nil {
		return err
	}
	o.lines = append(o.lines, OrderLine{Item: item, Qty: 1})
	return nil
}

// SetQuantity replaces the quantity of the line for itemID. Negative
// quantities are a no-op; zero removes the line.
func (o *Order) SetQuantity(itemID, quantity int, budget decimal.Decimal) error {
	if quantity < 0 {
		return nil
	}
	if quantity == 0 {
		o.Remove(itemID)
		return nil
	}
	if err := CanSetQuantity(o, itemID, quantity, budget); err != nil {
		return err
	}
	for i := range o.lines {
		if o.lines[i].Item.ID == itemID {
			o.lines[i].Qty = quantity
			return nil
		}
	}
	return nil
}

// Remove deletes the line for itemID if present. Removal only ever lowers
// the total, so no policy check.
func (o *Order) Remove(itemID int) {
	for i := range o.lines {
		if o.lines[i].Item.ID == itemID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the order. Used after a completed order.
func (o *Order) Clear() {
	o.lines = nil
}
