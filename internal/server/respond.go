package server

import (
	"encoding/json"
	"net/http"

	"github.com/desertthunder/musicplayer/internal/services"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type statusBody struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as {error[, message]} with the status of its [services.Kind].
func writeError(w http.ResponseWriter, err error) {
	e := services.AsError(err)
	writeJSON(w, e.Kind.Status(), errorBody{Error: e.Message, Message: e.Detail})
}

// decodeJSON decodes the request body as a T. Bodies that are empty or not a valid T decode to the zero value.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) T {
	var v T
	if r.Body == nil {
		return v
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&v); err != nil {
		var zero T
		return zero
	}
	return v
}

const maxBodySize = 1 << 20
