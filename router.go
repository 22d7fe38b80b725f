package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpapi "github.com/yourorg/listing-studio/http"
	httpv1 "github.com/yourorg/listing-studio/http/v1"
	"github.com/yourorg/listing-studio/internal/copywriter"
	"github.com/yourorg/listing-studio/internal/events"
	"github.com/yourorg/listing-studio/internal/logger"
	"github.com/yourorg/listing-studio/internal/renderer"
	"github.com/yourorg/listing-studio/internal/store"
)

type RouterDeps struct {
	Store       *store.Store
	Renderer    *renderer.Renderer
	Copy        *copywriter.Service
	Pub         events.Publisher
	Gatherer    prometheus.Gatherer
	Log         zerolog.Logger
	AIPerMinute int
}

func BuildRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logger.Middleware(d.Log))
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(300, 1*time.Minute))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"ok": true})
	})
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	httpapi.RegisterBrand(r, httpapi.BrandDeps{Brand: d.Store.Brand})
	httpapi.RegisterListings(r, httpapi.ListingsDeps{Listings: d.Store.Listings, Pub: d.Pub, Copy: d.Copy, Renderer: d.Renderer})
	httpapi.RegisterTemplates(r, httpapi.TemplatesDeps{Templates: d.Store.Templates})
	httpapi.RegisterPosts(r, httpapi.PostsDeps{Posts: d.Store.Posts, Renderer: d.Renderer})
	httpapi.RegisterCopy(r, httpapi.CopyDeps{Copy: d.Copy, PerMinute: d.AIPerMinute})
	httpapi.RegisterMedia(r, httpapi.MediaDeps{Media: d.Store.Media})

	httpv1.RegisterRender(r, httpv1.RenderDeps{Renderer: d.Renderer, Listings: d.Store.Listings})

	return r
}
