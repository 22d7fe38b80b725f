package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/internal/renderer"
	"github.com/yourorg/listing-studio/internal/store"
)

type PostsDeps struct {
	Posts    *store.Posts
	Renderer *renderer.Renderer
}

func RegisterPosts(r chi.Router, d PostsDeps) {
	r.Get("/posts", func(w http.ResponseWriter, req *http.Request) {
		posts := d.Posts.List()
		render.JSON(w, req, map[string]any{"ok": true, "count": len(posts), "posts": posts})
	})

	// Create or update: a body carrying an existing id replaces that post.
	r.Post("/posts", func(w http.ResponseWriter, req *http.Request) {
		var body store.SocialPost
		if !decodeJSON(w, req, &body) {
			return
		}
		p, err := d.Posts.Save(body)
		if err != nil {
			writeStoreError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "post": p})
	})

	r.Get("/posts/{postID}", func(w http.ResponseWriter, req *http.Request) {
		p, err := d.Posts.Get(chi.URLParam(req, "postID"))
		if err != nil {
			writeStoreError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "post": p})
	})

	r.Get("/posts/{postID}/card", func(w http.ResponseWriter, req *http.Request) {
		p, err := d.Posts.Get(chi.URLParam(req, "postID"))
		if err != nil {
			writeStoreError(w, req, err)
			return
		}
		format, ok := renderer.ParseFormat(req.URL.Query().Get("format"))
		if !ok {
			writeError(w, req, http.StatusBadRequest, "invalid_format", "format must be html or json")
			return
		}
		res, err := d.Renderer.Render(req.Context(), renderer.Request{TemplateID: p.TemplateID, Property: p.Property}, format)
		if err != nil {
			writeError(w, req, http.StatusInternalServerError, "render_error", err.Error())
			return
		}
		writeCard(w, res)
	})

	r.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"ok": true, "stats": d.Posts.Stats()})
	})
}

// writeCard sends a rendered card body as-is.
func writeCard(w http.ResponseWriter, res renderer.Result) {
	w.Header().Set("Content-Type", res.Format.ContentType())
	w.Header().Set("X-Template-Id", string(res.TemplateID))
	if res.Cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Body)
}
