package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/store"
)

type TemplatesDeps struct {
	Templates *store.Templates
}

func RegisterTemplates(r chi.Router, d TemplatesDeps) {
	r.Get("/templates", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{
			"ok":       true,
			"standard": card.Templates,
			"custom":   d.Templates.List(),
		})
	})

	r.Post("/templates", func(w http.ResponseWriter, req *http.Request) {
		var body store.CustomTemplate
		if !decodeJSON(w, req, &body) {
			return
		}
		body.ID = ""
		t, err := d.Templates.Create(body)
		if err != nil {
			writeStoreError(w, req, err)
			return
		}
		render.Status(req, http.StatusCreated)
		render.JSON(w, req, map[string]any{"ok": true, "template": t})
	})

	r.Delete("/templates/{templateID}", func(w http.ResponseWriter, req *http.Request) {
		if !confirmed(w, req) {
			return
		}
		if err := d.Templates.Delete(chi.URLParam(req, "templateID")); err != nil {
			writeStoreError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true})
	})
}
