package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is an aggregate over a set of trades. NetProfit is zero-valued,
// never absent, for an empty set.
type Summary struct {
	TotalTrades int             `json:"total_trades"`
	Wins        int             `json:"wins"`
	Losses      int             `json:"losses"`
	NetProfit   decimal.Decimal `json:"net_profit"`
}

// MonthlySummary is one Summary per calendar month, keyed YYYY-MM.
type MonthlySummary struct {
	Month string `json:"month"`
	Summary
}

type EquityPoint struct {
	Date   time.Time       `json:"date"`
	Equity decimal.Decimal `json:"equity"`
}
