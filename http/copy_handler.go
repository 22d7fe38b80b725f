package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/gemini"
	"github.com/yourorg/listing-studio/internal/copywriter"
	"github.com/yourorg/listing-studio/internal/store"
)

type CopyDeps struct {
	Copy *copywriter.Service
	// PerMinute caps AI requests per client IP. Zero disables the limit.
	PerMinute int
}

type optimizeRequest struct {
	Text string `json:"text"`
}

// RegisterCopy mounts the AI copy endpoints. They never fail because of
// the model: errors come back as the fallback copy plus a notice.
func RegisterCopy(r chi.Router, d CopyDeps) {
	r.Group(func(r chi.Router) {
		if d.PerMinute > 0 {
			r.Use(httprate.LimitByIP(d.PerMinute, time.Minute))
		}

		r.Post("/captions", func(w http.ResponseWriter, req *http.Request) {
			var body gemini.CaptionRequest
			if !decodeJSON(w, req, &body) {
				return
			}
			if err := store.Validate(body); err != nil {
				writeStoreError(w, req, err)
				return
			}
			render.JSON(w, req, d.Copy.Caption(req.Context(), body))
		})

		r.Post("/descriptions/optimize", func(w http.ResponseWriter, req *http.Request) {
			var body optimizeRequest
			if !decodeJSON(w, req, &body) {
				return
			}
			render.JSON(w, req, d.Copy.Description(req.Context(), body.Text))
		})
	})
}
