package services

import (
	"errors"
	"testing"

	"github.com/tobybase/Meal-order-app/models"
)

func TestCanAddDrinkCheckedBeforeBudget(t *testing.T) {
	// The order already holds a drink and is nearly at budget: a second
	// drink violates both rules, and the user must hear about the drink
	// limit, not the budget.
	o := NewOrder()
	if err := o.Add(item(1, "TEA SOUR", models.CategoryDrink, 300), dec(320)); err != nil {
		t.Fatalf("setup add: %v", err)
	}

	err := CanAdd(o, item(2, "GIN TONIC", models.CategoryDrink, 300), dec(320))
	if !errors.Is(err, ErrDrinkLimit) {
		t.Fatalf("err = %v, want ErrDrinkLimit before ErrBudgetExceeded", err)
	}
}

func TestCanAdd(t *testing.T) {
	withDrink := NewOrder()
	if err := withDrink.Add(item(1, "TEA SOUR", models.CategoryDrink, 300), dec(1194)); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name      string
		order     *Order
		candidate models.MenuItem
		budget    int64
		want      error
	}{
		{"empty order, affordable", NewOrder(), item(2, "SALAD", models.CategoryAppetizer, 320), 1194, nil},
		{"exactly at budget allowed", NewOrder(), item(2, "SALAD", models.CategoryAppetizer, 1194), 1194, nil},
		{"one over budget rejected", NewOrder(), item(2, "FEAST", models.CategoryMainCourse, 1195), 1194, ErrBudgetExceeded},
		{"second drink rejected", withDrink, item(3, "CRAFT BEER", models.CategoryDrink, 280), 1194, ErrDrinkLimit},
		{"non-drink with drink present", withDrink, item(4, "FRIES", models.CategoryFriedSnacks, 300), 1194, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAdd(tt.order, tt.candidate, dec(tt.budget))
			if !errors.Is(got, tt.want) {
				t.Errorf("CanAdd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanSetQuantity(t *testing.T) {
	base := func() *Order {
		o := NewOrder()
		if err := o.Add(item(1, "RISOTTO", models.CategoryMainCourse, 300), dec(1194)); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := o.Add(item(2, "SALAD", models.CategoryAppetizer, 220), dec(1194)); err != nil {
			t.Fatalf("setup: %v", err)
		}
		return o
	}

	tests := []struct {
		name   string
		itemID int
		qty    int
		budget int64
		want   error
	}{
		{"within budget", 1, 3, 1194, nil},               // 900 + 220
		{"substituted total over budget", 1, 4, 1194, ErrBudgetExceeded}, // 1200 + 220
		{"zero always allowed", 1, 0, 1194, nil},
		{"zero allowed even at budget", 1, 0, 520, nil},
		{"absent id leaves total unchanged", 99, 5, 1194, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanSetQuantity(base(), tt.itemID, tt.qty, dec(tt.budget))
			if !errors.Is(got, tt.want) {
				t.Errorf("CanSetQuantity() = %v, want %v", got, tt.want)
			}
		})
	}
}
