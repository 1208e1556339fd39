package analytics

import (
	"testing"
	"time"

	"github.com/tradewell/tradelog-backend/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func tradesWithPL(pls ...string) []models.Trade {
	out := make([]models.Trade, len(pls))
	for i, p := range pls {
		out[i] = models.Trade{TradeDate: day(i + 1), ProfitLoss: dec(p)}
	}
	return out
}

func TestEquityCurve_Empty(t *testing.T) {
	curve := EquityCurve(nil)
	if len(curve) != 0 {
		t.Fatalf("expected empty curve, got %d points", len(curve))
	}
}

func TestEquityCurve_SingleTrade(t *testing.T) {
	curve := EquityCurve(tradesWithPL("12.5"))
	if len(curve) != 1 {
		t.Fatalf("expected 1 point, got %d", len(curve))
	}
	if !curve[0].Equity.Equal(dec("12.5")) {
		t.Fatalf("equity = %s, want 12.5", curve[0].Equity)
	}
	if !curve[0].Date.Equal(day(1)) {
		t.Fatalf("date = %s, want %s", curve[0].Date, day(1))
	}
}

func TestEquityCurve_CumulativeSum(t *testing.T) {
	curve := EquityCurve(tradesWithPL("10", "-5", "0", "20"))
	want := []string{"10", "5", "5", "25"}
	if len(curve) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(curve))
	}
	for i, w := range want {
		if !curve[i].Equity.Equal(dec(w)) {
			t.Fatalf("point %d: equity = %s, want %s", i, curve[i].Equity, w)
		}
	}
}

func TestEquityCurve_MonotonicForPositivePL(t *testing.T) {
	curve := EquityCurve(tradesWithPL("1", "2.5", "0.1", "7"))
	for i := 1; i < len(curve); i++ {
		if curve[i].Equity.LessThan(curve[i-1].Equity) {
			t.Fatalf("equity decreased at point %d: %s -> %s",
				i, curve[i-1].Equity, curve[i].Equity)
		}
	}
}

func TestEquityCurve_DateTiesKeepInputOrder(t *testing.T) {
	same := day(10)
	trades := []models.Trade{
		{TradeDate: same, ProfitLoss: dec("3")},
		{TradeDate: same, ProfitLoss: dec("-1")},
	}
	curve := EquityCurve(trades)
	if !curve[0].Equity.Equal(dec("3")) || !curve[1].Equity.Equal(dec("2")) {
		t.Fatalf("tie order not preserved: got %s then %s", curve[0].Equity, curve[1].Equity)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalTrades != 0 || s.Wins != 0 || s.Losses != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if !s.NetProfit.IsZero() {
		t.Fatalf("net profit = %s, want 0", s.NetProfit)
	}
}

func TestSummarize_Mixed(t *testing.T) {
	s := Summarize(tradesWithPL("10", "-5", "0", "20"))
	if s.TotalTrades != 4 {
		t.Fatalf("total = %d, want 4", s.TotalTrades)
	}
	if s.Wins != 2 {
		t.Fatalf("wins = %d, want 2 (zero P/L counts as neither)", s.Wins)
	}
	if s.Losses != 1 {
		t.Fatalf("losses = %d, want 1", s.Losses)
	}
	if !s.NetProfit.Equal(dec("25")) {
		t.Fatalf("net profit = %s, want 25", s.NetProfit)
	}
}

func TestMonthlySummaries_GroupsAndOrders(t *testing.T) {
	trades := []models.Trade{
		{TradeDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ProfitLoss: dec("10")},
		{TradeDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), ProfitLoss: dec("-4")},
		{TradeDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), ProfitLoss: dec("6")},
		{TradeDate: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), ProfitLoss: dec("0")},
	}

	out := MonthlySummaries(trades)
	if len(out) != 3 {
		t.Fatalf("expected 3 months, got %d", len(out))
	}

	wantOrder := []string{"2024-03", "2024-02", "2024-01"}
	for i, m := range wantOrder {
		if out[i].Month != m {
			t.Fatalf("month %d = %s, want %s (most recent first)", i, out[i].Month, m)
		}
	}

	jan := out[2]
	if jan.TotalTrades != 2 || jan.Wins != 2 || !jan.NetProfit.Equal(dec("16")) {
		t.Fatalf("january summary wrong: %+v", jan)
	}
}

func TestMonthlySummaries_Empty(t *testing.T) {
	if out := MonthlySummaries(nil); len(out) != 0 {
		t.Fatalf("expected no summaries, got %d", len(out))
	}
}

func TestBestWorst_Empty(t *testing.T) {
	best, worst := BestWorst(nil)
	if best != nil || worst != nil {
		t.Fatal("expected both nil for empty set")
	}
}

func TestBestWorst_PicksExtremes(t *testing.T) {
	best, worst := BestWorst(tradesWithPL("10", "-5", "20"))
	if best == nil || worst == nil {
		t.Fatal("expected both trades")
	}
	if !best.ProfitLoss.Equal(dec("20")) {
		t.Fatalf("best P/L = %s, want 20", best.ProfitLoss)
	}
	if !worst.ProfitLoss.Equal(dec("-5")) {
		t.Fatalf("worst P/L = %s, want -5", worst.ProfitLoss)
	}
}

func TestBestWorst_TieKeepsFirstEncountered(t *testing.T) {
	trades := tradesWithPL("7", "7", "-7", "-7")
	best, worst := BestWorst(trades)
	if !best.TradeDate.Equal(day(1)) {
		t.Fatalf("best tie should keep first trade, got date %s", best.TradeDate)
	}
	if !worst.TradeDate.Equal(day(3)) {
		t.Fatalf("worst tie should keep first trade, got date %s", worst.TradeDate)
	}
}

func TestBestWorst_SingleTradeIsBoth(t *testing.T) {
	best, worst := BestWorst(tradesWithPL("-3"))
	if best == nil || worst == nil {
		t.Fatal("expected both for single trade")
	}
	if !best.ProfitLoss.Equal(worst.ProfitLoss) {
		t.Fatal("single trade must be both best and worst")
	}
}
