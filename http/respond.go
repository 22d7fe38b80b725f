package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/internal/store"
)

const maxBodyBytes = 1 << 20

func writeError(w http.ResponseWriter, req *http.Request, status int, code string, detail any) {
	body := map[string]any{"error": code}
	if detail != nil {
		body["detail"] = detail
	}
	render.Status(req, status)
	render.JSON(w, req, body)
}

// decodeJSON reads a size-limited JSON body into v and answers 400 on
// failure. It reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, req *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, req, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

// writeStoreError maps store errors onto the JSON error envelope.
func writeStoreError(w http.ResponseWriter, req *http.Request, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		render.Status(req, http.StatusBadRequest)
		render.JSON(w, req, map[string]any{"error": "validation_failed", "fields": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		writeError(w, req, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, store.ErrConflict):
		writeError(w, req, http.StatusConflict, "conflict", err.Error())
	default:
		writeError(w, req, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// confirmed enforces the explicit confirmation destructive operations
// need. Without ?confirm=true it answers 428 and returns false.
func confirmed(w http.ResponseWriter, req *http.Request) bool {
	if req.URL.Query().Get("confirm") == "true" {
		return true
	}
	writeError(w, req, http.StatusPreconditionRequired, "confirmation_required", "repeat the request with confirm=true")
	return false
}
