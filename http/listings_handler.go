package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-studio/internal/copywriter"
	"github.com/yourorg/listing-studio/internal/events"
	"github.com/yourorg/listing-studio/internal/renderer"
	"github.com/yourorg/listing-studio/internal/store"
)

type ListingsDeps struct {
	Listings *store.Listings
	Pub      events.Publisher
	Copy     *copywriter.Service
	Renderer *renderer.Renderer
}

func RegisterListings(r chi.Router, d ListingsDeps) {
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			listings := d.Listings.Search(req.URL.Query().Get("q"))
			render.JSON(w, req, map[string]any{"ok": true, "count": len(listings), "listings": listings})
		})

		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var body store.Listing
			if !decodeJSON(w, req, &body) {
				return
			}
			body.ID = ""
			l, err := d.Listings.Add(body)
			if err != nil {
				writeStoreError(w, req, err)
				return
			}
			d.publish(req, l.ID)
			render.Status(req, http.StatusCreated)
			render.JSON(w, req, map[string]any{"ok": true, "listing": l})
		})

		r.Get("/{listingID}", func(w http.ResponseWriter, req *http.Request) {
			l, err := d.Listings.Get(chi.URLParam(req, "listingID"))
			if err != nil {
				writeStoreError(w, req, err)
				return
			}
			render.JSON(w, req, map[string]any{"ok": true, "listing": l})
		})

		r.Put("/{listingID}", func(w http.ResponseWriter, req *http.Request) {
			var body store.Listing
			if !decodeJSON(w, req, &body) {
				return
			}
			l, err := d.Listings.Update(chi.URLParam(req, "listingID"), body)
			if err != nil {
				writeStoreError(w, req, err)
				return
			}
			d.publish(req, l.ID)
			render.JSON(w, req, map[string]any{"ok": true, "listing": l})
		})

		r.Delete("/{listingID}", func(w http.ResponseWriter, req *http.Request) {
			if !confirmed(w, req) {
				return
			}
			if err := d.Listings.Delete(chi.URLParam(req, "listingID")); err != nil {
				writeStoreError(w, req, err)
				return
			}
			render.JSON(w, req, map[string]any{"ok": true})
		})

		// Rewrites the stored description. On AI failure the listing is
		// left as it was and the notice explains why. An edit that lands
		// while the rewrite is running wins and the rewrite answers 409.
		r.Post("/{listingID}/optimize-description", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "listingID")
			l, err := d.Listings.Get(id)
			if err != nil {
				writeStoreError(w, req, err)
				return
			}
			res := d.Copy.Description(req.Context(), l.Description)
			if !res.Fallback {
				if l, err = d.Listings.SetDescription(id, l.Description, res.Description); err != nil {
					writeStoreError(w, req, err)
					return
				}
				d.publish(req, id)
			}
			render.JSON(w, req, map[string]any{"ok": true, "listing": l, "fallback": res.Fallback, "notice": res.Notice})
		})

		r.Get("/{listingID}/previews", func(w http.ResponseWriter, req *http.Request) {
			l, err := d.Listings.Get(chi.URLParam(req, "listingID"))
			if err != nil {
				writeStoreError(w, req, err)
				return
			}
			previews, err := d.Renderer.Previews(req.Context(), l.PropertyDetails)
			if err != nil {
				writeError(w, req, http.StatusInternalServerError, "render_error", err.Error())
				return
			}
			render.JSON(w, req, map[string]any{"ok": true, "count": len(previews), "previews": previews})
		})
	})
}

func (d ListingsDeps) publish(req *http.Request, id string) {
	if d.Pub != nil {
		d.Pub.PublishListingSaved(req.Context(), events.ListingSaved{ListingID: id})
	}
}
