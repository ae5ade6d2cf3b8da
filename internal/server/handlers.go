package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/npapadam/openclaw-dashboard/internal/models"
	"github.com/npapadam/openclaw-dashboard/internal/repositories"
	"github.com/npapadam/openclaw-dashboard/internal/services"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleWebhookHealth lets scripts probe the ingest endpoint without
// credentials.
func (s *Server) handleWebhookHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type webhookRequest struct {
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Metadata    json.RawMessage `json:"metadata"`
	Timestamp   *time.Time      `json:"timestamp"`
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Validation short-circuits before the store is touched.
	if req.Type == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: type, title")
		return
	}

	activity := &models.Activity{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Metadata:    req.Metadata,
	}
	if req.Timestamp != nil {
		activity.Timestamp = *req.Timestamp
	}

	if err := s.activities.Append(r.Context(), activity); err != nil {
		if errors.Is(err, repositories.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Missing required fields: type, title")
			return
		}
		writeStorageError(w, "webhook", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	// Non-numeric or non-positive limits fall back to the default rather
	// than erroring; the feed always renders something.
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = repositories.DefaultListLimit
	}
	typeFilter := r.URL.Query().Get("type")

	activities, err := s.activities.List(r.Context(), limit, typeFilter)
	if err != nil {
		writeStorageError(w, "activities", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"activities": activities})
}

type cronResponse struct {
	Jobs       json.RawMessage `json:"jobs"`
	CapturedAt *time.Time      `json:"captured_at"`
}

func (s *Server) handleGetCron(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.snapshots.Latest(r.Context())
	if errors.Is(err, repositories.ErrNotFound) {
		// No snapshot ever taken; distinct from "zero scheduled jobs" only
		// by the null capture time.
		writeJSON(w, http.StatusOK, cronResponse{Jobs: json.RawMessage("[]")})
		return
	}
	if err != nil {
		writeStorageError(w, "cron", err)
		return
	}

	writeJSON(w, http.StatusOK, cronResponse{
		Jobs:       snapshot.Jobs,
		CapturedAt: &snapshot.CapturedAt,
	})
}

type cronSyncRequest struct {
	Jobs       json.RawMessage `json:"jobs"`
	CapturedAt *time.Time      `json:"captured_at"`
}

func (s *Server) handlePostCron(w http.ResponseWriter, r *http.Request) {
	var req cronSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	snapshot := &models.CronSnapshot{Jobs: req.Jobs}
	if req.CapturedAt != nil {
		snapshot.CapturedAt = *req.CapturedAt
	}

	count, err := s.snapshots.Append(r.Context(), snapshot)
	if err != nil {
		if errors.Is(err, repositories.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid jobs format")
			return
		}
		writeStorageError(w, "cron sync", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": count})
}

type loginRequest struct {
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := s.auth.Login(r.Context(), req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		writeStorageError(w, "login", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"expires_at": resp.ExpiresAt,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// requireSession already validated the cookie.
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.auth.Logout(r.Context(), cookie.Value); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeStorageError(w, "logout", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
