package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tradewell/tradelog-backend/internal/models"
)

// contractMultiplier converts a raw price difference into monetary P/L for
// the pip/point convention used by the journal (fixed at 100).
var contractMultiplier = decimal.NewFromInt(100)

// ComputePL derives the signed profit/loss of a closed trade.
//
// Buy:  (exit - entry) * 100 * lot
// Sell: (entry - exit) * 100 * lot
//
// Any other direction yields zero. That default is long-standing product
// behavior, not an oversight to fix here; the API layer refuses unknown
// directions before they reach this point.
func ComputePL(direction models.Direction, entry, exit, lot decimal.Decimal) decimal.Decimal {
	switch direction {
	case models.Buy:
		return exit.Sub(entry).Mul(contractMultiplier).Mul(lot)
	case models.Sell:
		return entry.Sub(exit).Mul(contractMultiplier).Mul(lot)
	default:
		return decimal.Zero
	}
}
