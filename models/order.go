package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompletedOrder is the record of a finalized order at the moment of
// confirmation, used for the export artifacts and the event log.
type CompletedOrder struct {
	Ref         uuid.UUID
	Participant string
	Lines       []CompletedLine
	Total       decimal.Decimal
	CreatedAt   time.Time
}

type CompletedLine struct {
	Item     MenuItem
	Quantity int
	// LineTotal = Item.Price * Quantity, to the cent.
	LineTotal decimal.Decimal
}
