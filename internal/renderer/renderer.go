// Package renderer draws cards for the HTTP layer and the preview warmer:
// it resolves template ids against the custom template store, applies the
// brand kit and serves serialised output through the render cache.
package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/metrics"
	"github.com/yourorg/listing-studio/internal/rendercache"
	"github.com/yourorg/listing-studio/internal/store"
)

type Format string

const (
	HTML Format = "html"
	JSON Format = "json"
)

func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case "", HTML:
		return HTML, true
	case JSON:
		return JSON, true
	}
	return "", false
}

func (f Format) ContentType() string {
	if f == JSON {
		return "application/json"
	}
	return "text/html; charset=utf-8"
}

type Request struct {
	TemplateID string               `json:"templateId"`
	Property   card.PropertyDetails `json:"property"`
	Config     *card.TemplateConfig `json:"config,omitempty"`
}

type Result struct {
	TemplateID card.TemplateID `json:"templateId"`
	Format     Format          `json:"format"`
	Body       []byte          `json:"-"`
	Cached     bool            `json:"cached"`
}

// Preview is one entry of a listing's preview grid.
type Preview struct {
	TemplateID card.TemplateID `json:"templateId"`
	Label      string          `json:"label"`
	HTML       string          `json:"html"`
}

type Renderer struct {
	Brand     *store.BrandKit
	Templates *store.Templates
	Cache     *rendercache.Cache
	Metrics   *metrics.Metrics
	// Parallelism caps concurrent renders in Previews. Zero means 4.
	Parallelism int
}

// Render resolves req.TemplateID (custom template ids map to their base
// layout and saved config; a config in the request replaces the saved
// one) and returns the card serialised in format with the current brand
// kit applied.
func (r *Renderer) Render(ctx context.Context, req Request, format Format) (Result, error) {
	id, cfg := r.Templates.Resolve(req.TemplateID)
	if req.Config != nil {
		cfg = req.Config
	}
	brand := r.Brand.Get()
	return r.draw(ctx, id, req.Property, &brand, cfg, format)
}

func (r *Renderer) draw(ctx context.Context, id card.TemplateID, data card.PropertyDetails, brand *card.BrandSettings, cfg *card.TemplateConfig, format Format) (Result, error) {
	key := rendercache.Key(string(format), id, data, brand, cfg)
	body, hit, err := r.Cache.GetOrRender(ctx, key, func() ([]byte, error) {
		start := time.Now()
		node := card.Render(id, data, brand, cfg)
		out, err := serialize(node, format)
		r.Metrics.RecordRender(string(id), !id.Valid(), time.Since(start))
		return out, err
	})
	if err != nil {
		return Result{}, fmt.Errorf("render %s: %w", id, err)
	}
	return Result{TemplateID: id, Format: format, Body: body, Cached: hit}, nil
}

// Previews renders data with every standard template, in gallery order.
func (r *Renderer) Previews(ctx context.Context, data card.PropertyDetails) ([]Preview, error) {
	brand := r.Brand.Get()
	out := make([]Preview, len(card.Templates))

	g, gctx := errgroup.WithContext(ctx)
	limit := r.Parallelism
	if limit <= 0 {
		limit = 4
	}
	g.SetLimit(limit)
	for i, t := range card.Templates {
		g.Go(func() error {
			res, err := r.draw(gctx, t.ID, data, &brand, nil, HTML)
			if err != nil {
				return err
			}
			out[i] = Preview{TemplateID: t.ID, Label: t.Label, HTML: string(res.Body)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func serialize(n *card.Node, format Format) ([]byte, error) {
	if format == JSON {
		return json.Marshal(n)
	}
	return []byte(n.HTML()), nil
}
