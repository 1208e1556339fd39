package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction is the side of a discretionary trade. The set is closed:
// anything outside {Buy, Sell} is rejected at the API boundary.
type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

func (d Direction) Valid() bool {
	return d == Buy || d == Sell
}

type Trade struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"user_id"`
	TradeDate  time.Time        `json:"trade_date"`
	Pair       string           `json:"pair"`
	Direction  Direction        `json:"trade_type"`
	EntryPrice decimal.Decimal  `json:"entry_price"`
	ExitPrice  decimal.Decimal  `json:"exit_price"`
	LotSize    decimal.Decimal  `json:"lot_size"`
	StopLoss   *decimal.Decimal `json:"stop_loss,omitempty"`
	TakeProfit *decimal.Decimal `json:"take_profit,omitempty"`
	ProfitLoss decimal.Decimal  `json:"profit_loss"`
	Notes      *string          `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}
