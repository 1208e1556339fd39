package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/tradewell/tradelog-backend/internal/auth"
	"github.com/tradewell/tradelog-backend/internal/repository"
)

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userJSON struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

type registerResponse struct {
	Success bool     `json:"success"`
	User    userJSON `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "All fields required")
		return
	}

	ctx := r.Context()

	// Pre-check gives the friendly message; the users.email UNIQUE index is
	// what actually closes the race between concurrent registrations.
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		fmt.Printf("Error checking existing user: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user, err := s.users.Create(ctx, req.FullName, req.Email, hash)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		fmt.Printf("Error creating user: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{
		Success: true,
		User:    userJSON{ID: user.ID, FullName: user.FullName, Email: user.Email},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success  bool      `json:"success"`
	UserID   uuid.UUID `json:"userId"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "All fields required")
		return
	}

	user, err := s.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		fmt.Printf("Error fetching user for login: %v\n", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	// One message for unknown email and bad password, so the response does
	// not reveal which one was wrong.
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:  true,
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	})
}
