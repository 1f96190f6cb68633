package middleware

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "request_id", RequestIDFrom(r.Context()))
				httpx.WriteJSON(w, http.StatusInternalServerError, httpx.APIError{Error: "internal error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
