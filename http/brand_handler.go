package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/store"
)

type BrandDeps struct {
	Brand *store.BrandKit
}

func RegisterBrand(r chi.Router, d BrandDeps) {
	r.Get("/brand", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"ok": true, "brand": d.Brand.Get()})
	})

	r.Put("/brand", func(w http.ResponseWriter, req *http.Request) {
		var body card.BrandSettings
		if !decodeJSON(w, req, &body) {
			return
		}
		saved, err := d.Brand.Replace(body)
		if err != nil {
			writeStoreError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "brand": saved})
	})
}
