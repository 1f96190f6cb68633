package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/dates"
	"github.com/baharkarakas/exercise-tracker/internal/models"
)

type exerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type logsResponse struct {
	ID       string            `json:"_id"`
	Username string            `json:"username"`
	Count    int               `json:"count"`
	Log      []models.LogEntry `json:"log"`
}

// AddExercise handles POST /api/users/{id}/exercises. Exercise fields
// come from the request body; the path carries only the user id.
func (h *UsersHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	fields, err := httpx.Fields(r)
	if err != nil {
		httpx.WriteJSON(w, http.StatusOK, httpx.APIError{Error: "Invalid request body", Details: err.Error()})
		return
	}

	ref, ex, err := h.svc.AppendExercise(r.Context(),
		chi.URLParam(r, "id"), fields["description"], fields["duration"], fields["date"])
	if err != nil {
		writeErr(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, exerciseResponse{
		ID:          ref.ID,
		Username:    ref.Username,
		Date:        dates.DateString(ex.Date),
		Duration:    ex.Duration,
		Description: ex.Description,
	})
}

// Logs handles GET /api/users/{id}/logs with optional from/to/limit.
func (h *UsersHandler) Logs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref, log, err := h.svc.Logs(r.Context(),
		chi.URLParam(r, "id"), q.Get("from"), q.Get("to"), q.Get("limit"))
	if err != nil {
		writeErr(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, logsResponse{
		ID:       ref.ID,
		Username: ref.Username,
		Count:    len(log),
		Log:      log,
	})
}
