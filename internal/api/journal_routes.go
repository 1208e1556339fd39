package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tradewell/tradelog-backend/internal/models"
)

type journalRequest struct {
	UserID        *uuid.UUID `json:"user_id"`
	EntryDate     string     `json:"entry_date"`
	EmotionBefore string     `json:"emotion_before"`
	EmotionAfter  string     `json:"emotion_after"`
	LessonLearned string     `json:"lesson_learned"`
}

type entryResponse struct {
	Success bool                 `json:"success"`
	Entry   *models.JournalEntry `json:"entry"`
}

type entryListResponse struct {
	Success bool                  `json:"success"`
	Entries []models.JournalEntry `json:"entries"`
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == nil || req.EntryDate == "" ||
		req.EmotionBefore == "" || req.EmotionAfter == "" || req.LessonLearned == "" {
		writeError(w, http.StatusBadRequest, "All journal fields required")
		return
	}
	if !validateDate(req.EntryDate) {
		writeError(w, http.StatusBadRequest, "invalid entry_date, expected YYYY-MM-DD")
		return
	}
	date, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry_date, expected YYYY-MM-DD")
		return
	}

	entry, err := s.journal.Create(r.Context(), &models.JournalEntry{
		UserID:        *req.UserID,
		EntryDate:     date,
		EmotionBefore: req.EmotionBefore,
		EmotionAfter:  req.EmotionAfter,
		LessonLearned: req.LessonLearned,
	})
	if err != nil {
		fmt.Printf("Error adding journal entry: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Failed to add journal entry")
		return
	}
	writeJSON(w, http.StatusOK, entryResponse{Success: true, Entry: entry})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	entries, err := s.journal.ListByUser(r.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching journal for user %s: %v\n", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch journal")
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	writeJSON(w, http.StatusOK, entryListResponse{Success: true, Entries: entries})
}
