package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradewell/tradelog-backend/internal/analytics"
	"github.com/tradewell/tradelog-backend/internal/models"
)

// tradeRequest is the wire shape for create and update. Prices and sizes
// are decoded as decimals (JSON number or string) so no float arithmetic
// touches the P/L path. Pointer fields distinguish absent from zero.
type tradeRequest struct {
	UserID     *uuid.UUID       `json:"user_id"`
	TradeDate  string           `json:"trade_date"`
	Pair       string           `json:"pair"`
	TradeType  string           `json:"trade_type"`
	EntryPrice *decimal.Decimal `json:"entry_price"`
	ExitPrice  *decimal.Decimal `json:"exit_price"`
	LotSize    *decimal.Decimal `json:"lot_size"`
	StopLoss   *decimal.Decimal `json:"stop_loss"`
	TakeProfit *decimal.Decimal `json:"take_profit"`
	Notes      *string          `json:"notes"`
}

// toTrade validates the request and builds a Trade with a server-derived
// profit/loss. The owner id is only required (and only used) on create.
func (req *tradeRequest) toTrade(requireOwner bool) (*models.Trade, string) {
	if requireOwner && req.UserID == nil {
		return nil, "All trade fields required"
	}
	if req.TradeDate == "" || req.Pair == "" || req.TradeType == "" ||
		req.EntryPrice == nil || req.ExitPrice == nil || req.LotSize == nil {
		return nil, "All trade fields required"
	}
	if !validateDate(req.TradeDate) {
		return nil, "invalid trade_date, expected YYYY-MM-DD"
	}

	direction := models.Direction(req.TradeType)
	if !direction.Valid() {
		return nil, "invalid trade_type, expected Buy or Sell"
	}

	date, err := time.Parse("2006-01-02", req.TradeDate)
	if err != nil {
		return nil, "invalid trade_date, expected YYYY-MM-DD"
	}

	t := &models.Trade{
		TradeDate:  date,
		Pair:       req.Pair,
		Direction:  direction,
		EntryPrice: *req.EntryPrice,
		ExitPrice:  *req.ExitPrice,
		LotSize:    *req.LotSize,
		StopLoss:   req.StopLoss,
		TakeProfit: req.TakeProfit,
		Notes:      req.Notes,
	}
	if req.UserID != nil {
		t.UserID = *req.UserID
	}
	t.ProfitLoss = analytics.ComputePL(t.Direction, t.EntryPrice, t.ExitPrice, t.LotSize)
	return t, ""
}

type tradeResponse struct {
	Success bool          `json:"success"`
	Trade   *models.Trade `json:"trade"`
}

type tradeListResponse struct {
	Success bool           `json:"success"`
	Trades  []models.Trade `json:"trades"`
}

func (s *Server) handleCreateTrade(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trade, msg := req.toTrade(true)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := s.trades.Create(r.Context(), trade)
	if err != nil {
		fmt.Printf("Error adding trade: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Failed to add trade")
		return
	}
	writeJSON(w, http.StatusOK, tradeResponse{Success: true, Trade: created})
}

func (s *Server) handleListTrades(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	trades, err := s.trades.ListByUser(r.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching trades for user %s: %v\n", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch trades")
		return
	}
	if trades == nil {
		trades = []models.Trade{}
	}
	writeJSON(w, http.StatusOK, tradeListResponse{Success: true, Trades: trades})
}

// TODO: scope update and delete to the owning user once the frontend sends
// the caller's id; today any caller with a trade id can mutate it.
func (s *Server) handleUpdateTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := pathUUID(r, "tradeId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trade, msg := req.toTrade(false)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	trade.ID = tradeID

	updated, err := s.trades.Update(r.Context(), trade)
	if err != nil {
		fmt.Printf("Error updating trade %s: %v\n", tradeID, err)
		writeError(w, http.StatusInternalServerError, "Failed to update trade")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Trade not found")
		return
	}
	writeJSON(w, http.StatusOK, tradeResponse{Success: true, Trade: updated})
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleDeleteTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := pathUUID(r, "tradeId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	deleted, err := s.trades.Delete(r.Context(), tradeID)
	if err != nil {
		fmt.Printf("Error deleting trade %s: %v\n", tradeID, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete trade")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Trade not found")
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Trade deleted"})
}

type bestWorstResponse struct {
	Success bool          `json:"success"`
	Best    *models.Trade `json:"best"`
	Worst   *models.Trade `json:"worst"`
}

func (s *Server) handleBestWorst(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	trades, err := s.trades.ListByUser(r.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching trades for best/worst: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Best/Worst failed")
		return
	}

	best, worst := analytics.BestWorst(trades)
	writeJSON(w, http.StatusOK, bestWorstResponse{Success: true, Best: best, Worst: worst})
}
