package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tradewell/tradelog-backend/internal/models"
)

// EquityCurve folds trades, ordered ascending by date, into a cumulative
// running total seeded at zero. One point per trade; date ties keep the
// order the store returned. Empty input yields an empty curve.
func EquityCurve(trades []models.Trade) []models.EquityPoint {
	curve := make([]models.EquityPoint, 0, len(trades))
	equity := decimal.Zero
	for _, t := range trades {
		equity = equity.Add(t.ProfitLoss)
		curve = append(curve, models.EquityPoint{Date: t.TradeDate, Equity: equity})
	}
	return curve
}

// Summarize aggregates a trade set. Trades with exactly zero P/L count as
// neither win nor loss.
func Summarize(trades []models.Trade) models.Summary {
	s := models.Summary{NetProfit: decimal.Zero}
	for _, t := range trades {
		s.TotalTrades++
		switch t.ProfitLoss.Sign() {
		case 1:
			s.Wins++
		case -1:
			s.Losses++
		}
		s.NetProfit = s.NetProfit.Add(t.ProfitLoss)
	}
	return s
}

// MonthlySummaries groups trades by the calendar month of their trade date
// and returns one summary per month, most recent month first.
func MonthlySummaries(trades []models.Trade) []models.MonthlySummary {
	buckets := make(map[string][]models.Trade)
	for _, t := range trades {
		key := t.TradeDate.Format("2006-01")
		buckets[key] = append(buckets[key], t)
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	out := make([]models.MonthlySummary, 0, len(months))
	for _, m := range months {
		out = append(out, models.MonthlySummary{
			Month:   m,
			Summary: Summarize(buckets[m]),
		})
	}
	return out
}

// BestWorst picks the trades with maximum and minimum P/L. Ties keep the
// first trade encountered in store order. Both results are nil for an
// empty set.
func BestWorst(trades []models.Trade) (best, worst *models.Trade) {
	for i := range trades {
		t := &trades[i]
		if best == nil || t.ProfitLoss.GreaterThan(best.ProfitLoss) {
			best = t
		}
		if worst == nil || t.ProfitLoss.LessThan(worst.ProfitLoss) {
			worst = t
		}
	}
	return best, worst
}
