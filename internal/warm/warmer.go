// Package warm pre-renders a listing's preview grid into the render cache
// whenever the listing is saved.
package warm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/events"
	"github.com/yourorg/listing-studio/internal/metrics"
	"github.com/yourorg/listing-studio/internal/refresh"
	"github.com/yourorg/listing-studio/internal/renderer"
	"github.com/yourorg/listing-studio/internal/store"
)

// Previewer renders the preview grid for a property.
type Previewer interface {
	Previews(ctx context.Context, data card.PropertyDetails) ([]renderer.Preview, error)
}

type Warmer struct {
	Pub      events.Publisher
	Listings *store.Listings
	Previews Previewer
	Metrics  *metrics.Metrics
	Log      zerolog.Logger
	Workers  int
}

// Run consumes ListingSaved events until ctx is cancelled, then waits for
// in-flight jobs to finish.
func (w *Warmer) Run(ctx context.Context) {
	log := w.Log.With().Str("component", "warmer").Logger()
	q := refresh.New(ctx, 256, w.Workers, 30*time.Second, func(ctx context.Context, j refresh.Job) {
		w.warm(ctx, log, j.Key)
	})
	sub := w.Pub.SubscribeListingSaved()
	for {
		select {
		case <-ctx.Done():
			q.Wait()
			return
		case evt := <-sub:
			if !q.Enqueue(refresh.Job{Key: evt.ListingID}) {
				w.Metrics.RecordWarm("skipped")
			}
		}
	}
}

func (w *Warmer) warm(ctx context.Context, log zerolog.Logger, listingID string) {
	l, err := w.Listings.Get(listingID)
	if errors.Is(err, store.ErrNotFound) {
		w.Metrics.RecordWarm("gone")
		return
	}
	if err != nil {
		w.Metrics.RecordWarm("error")
		log.Warn().Err(err).Str("listing_id", listingID).Msg("load listing failed")
		return
	}
	start := time.Now()
	if _, err := w.Previews.Previews(ctx, l.PropertyDetails); err != nil {
		w.Metrics.RecordWarm("error")
		log.Warn().Err(err).Str("listing_id", listingID).Msg("warm previews failed")
		return
	}
	w.Metrics.RecordWarm("ok")
	log.Debug().Str("listing_id", listingID).Dur("took", time.Since(start)).Msg("previews warmed")
}
