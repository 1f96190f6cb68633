package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the soft-failure envelope. The API never signals handler
// failures with a protocol status: validation and lookup errors still
// travel as 200 bodies carrying an error string.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSoftError renders a caller-facing failure as a 200 {error} body.
func WriteSoftError(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, APIError{Error: msg})
}

// WriteStoreError renders a store/driver failure with the lower-level
// diagnostic attached.
func WriteStoreError(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusOK, APIError{Error: "Database error", Details: err.Error()})
}

// Fields normalizes a urlencoded form or a JSON object body into string
// fields. JSON numbers come through as their decimal text so duration
// can arrive as either 30 or "30".
func Fields(r *http.Request) (map[string]string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var raw map[string]interface{}
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		out := make(map[string]string, len(raw))
		for k, v := range raw {
			switch t := v.(type) {
			case string:
				out[k] = t
			case nil:
			default:
				out[k] = fmt.Sprint(t)
			}
		}
		return out, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		out[k] = r.PostForm.Get(k)
	}
	return out, nil
}
