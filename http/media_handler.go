package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/internal/store"
)

const maxUploadBytes = 10 << 20

type MediaDeps struct {
	Media *store.Media
}

func RegisterMedia(r chi.Router, d MediaDeps) {
	// Multipart upload with the image in the "file" field.
	r.Post("/media", func(w http.ResponseWriter, req *http.Request) {
		req.Body = http.MaxBytesReader(w, req.Body, maxUploadBytes)
		if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, req, http.StatusBadRequest, "invalid_upload", err.Error())
			return
		}
		f, _, err := req.FormFile("file")
		if err != nil {
			writeError(w, req, http.StatusBadRequest, "file_required", nil)
			return
		}
		defer f.Close()

		img, err := d.Media.Put(f)
		if err != nil {
			writeStoreError(w, req, err)
			return
		}
		render.Status(req, http.StatusCreated)
		render.JSON(w, req, map[string]any{"ok": true, "image": img})
	})

	r.Get("/media/{mediaID}", func(w http.ResponseWriter, req *http.Request) {
		img, err := d.Media.Get(chi.URLParam(req, "mediaID"))
		if err != nil {
			writeStoreError(w, req, err)
			return
		}
		w.Header().Set("Content-Type", img.ContentType())
		w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		_, _ = w.Write(img.Data)
	})
}
