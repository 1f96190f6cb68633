package handlers

import (
	"net/http"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

type UsersHandler struct {
	svc *services.UserService
}

func NewUsersHandler(svc *services.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// Create handles POST /api/users. Re-posting an existing username
// returns that user unchanged.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := httpx.Fields(r)
	if err != nil {
		httpx.WriteJSON(w, http.StatusOK, httpx.APIError{Error: "Invalid request body", Details: err.Error()})
		return
	}

	ref, err := h.svc.CreateOrGet(r.Context(), fields["username"])
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ref)
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if users == nil {
		users = []models.UserRef{}
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

// writeErr maps the error taxonomy onto the wire: validation and
// not-found errors become 200 {error} bodies, anything else is a store
// failure carrying its diagnostic.
func writeErr(w http.ResponseWriter, err error) {
	if models.IsValidation(err) || models.IsNotFound(err) {
		httpx.WriteSoftError(w, err.Error())
		return
	}
	httpx.WriteStoreError(w, err)
}
