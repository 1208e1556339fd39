package api

import (
	"fmt"
	"net/http"

	"github.com/tradewell/tradelog-backend/internal/analytics"
	"github.com/tradewell/tradelog-backend/internal/models"
)

type summaryResponse struct {
	Success bool           `json:"success"`
	Summary models.Summary `json:"summary"`
}

type monthlySummaryResponse struct {
	Success bool                    `json:"success"`
	Summary []models.MonthlySummary `json:"summary"`
}

type dashboardResponse struct {
	Success bool           `json:"success"`
	Stats   models.Summary `json:"stats"`
}

type equityResponse struct {
	Success bool                 `json:"success"`
	Curve   []models.EquityPoint `json:"curve"`
}

// handleWeeklySummary aggregates the trailing seven days of trades. The
// window filter lives in the store query; the aggregation is pure.
func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	trades, err := s.trades.ListTrailingWeek(r.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching weekly trades: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Failed to get summary")
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Success: true, Summary: analytics.Summarize(trades)})
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	trades, err := s.trades.ListByUser(r.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching trades for monthly summary: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Monthly summary failed")
		return
	}

	months := analytics.MonthlySummaries(trades)
	if months == nil {
		months = []models.MonthlySummary{}
	}
	writeJSON(w, http.StatusOK, monthlySummaryResponse{Success: true, Summary: months})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	trades, err := s.trades.ListByUser(r.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching trades for dashboard: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Dashboard stats failed")
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Success: true, Stats: analytics.Summarize(trades)})
}

func (s *Server) handleEquityCurve(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	trades, err := s.trades.ListChronological(r.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching trades for equity curve: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Equity curve failed")
		return
	}
	writeJSON(w, http.StatusOK, equityResponse{Success: true, Curve: analytics.EquityCurve(trades)})
}
