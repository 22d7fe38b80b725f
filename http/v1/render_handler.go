package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/renderer"
	"github.com/yourorg/listing-studio/internal/store"
)

type RenderDeps struct {
	Renderer *renderer.Renderer
	Listings *store.Listings
}

// page wraps a card fragment in a standalone document so it can be opened
// directly in a browser.
var page = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;background:#f3f4f6}</style>
</head>
<body>
{{.Card}}
</body>
</html>
`))

func RegisterRender(r chi.Router, d RenderDeps) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", func(w http.ResponseWriter, req *http.Request) {
			var body renderer.Request
			if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 1<<20)).Decode(&body); err != nil {
				errorJSON(w, req, http.StatusBadRequest, "invalid_json", err.Error())
				return
			}
			if body.TemplateID == "" {
				errorJSON(w, req, http.StatusBadRequest, "template_required", "templateId is required")
				return
			}
			if body.Config != nil {
				if err := store.ValidateConfig(*body.Config); err != nil {
					var verr *store.ValidationError
					errors.As(err, &verr)
					render.Status(req, http.StatusBadRequest)
					render.JSON(w, req, map[string]any{"error": "validation_failed", "fields": verr.Fields})
					return
				}
			}
			serve(w, req, d, body)
		})

		// Renders a standard or custom template for a stored listing, or
		// for the sample property when no listing is given.
		r.Get("/templates/{templateID}/render", func(w http.ResponseWriter, req *http.Request) {
			body := renderer.Request{TemplateID: chi.URLParam(req, "templateID"), Property: card.SampleProperty()}
			if id := req.URL.Query().Get("listing"); id != "" {
				l, err := d.Listings.Get(id)
				if err != nil {
					errorJSON(w, req, http.StatusNotFound, "not_found", "listing "+id)
					return
				}
				body.Property = l.PropertyDetails
			}
			serve(w, req, d, body)
		})
	})
}

func serve(w http.ResponseWriter, req *http.Request, d RenderDeps, body renderer.Request) {
	q := req.URL.Query().Get("format")
	asPage := q == "page"
	if asPage {
		q = string(renderer.HTML)
	}
	format, ok := renderer.ParseFormat(q)
	if !ok {
		errorJSON(w, req, http.StatusBadRequest, "invalid_format", "format must be html, json or page")
		return
	}

	res, err := d.Renderer.Render(req.Context(), body, format)
	if err != nil {
		errorJSON(w, req, http.StatusInternalServerError, "render_error", err.Error())
		return
	}

	out := res.Body
	if asPage {
		var buf bytes.Buffer
		err := page.Execute(&buf, map[string]any{
			"Title": res.TemplateID.Label(),
			"Card":  template.HTML(res.Body),
		})
		if err != nil {
			errorJSON(w, req, http.StatusInternalServerError, "render_error", err.Error())
			return
		}
		out = buf.Bytes()
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("X-Template-Id", string(res.TemplateID))
	if res.Cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	_, _ = w.Write(out)
}

func errorJSON(w http.ResponseWriter, req *http.Request, status int, code, detail string) {
	render.Status(req, status)
	render.JSON(w, req, map[string]any{"error": code, "detail": detail})
}
