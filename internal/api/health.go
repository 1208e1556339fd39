package api

import (
	"fmt"
	"net/http"
	"time"
)

type rootResponse struct {
	Success bool   `json:"success"`
	Time    string `json:"time"`
}

// handleRoot is the liveness probe: it confirms the database answers before
// reporting healthy.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		fmt.Printf("Health check DB ping failed: %v\n", err)
		writeError(w, http.StatusInternalServerError, "DB connection failed")
		return
	}

	writeJSON(w, http.StatusOK, rootResponse{
		Success: true,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
