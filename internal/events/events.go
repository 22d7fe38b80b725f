// Package events carries listing change notifications from the HTTP
// handlers to background consumers such as the preview warmer.
package events

import (
	"context"
)

// ListingSaved is published after a listing is created or updated.
type ListingSaved struct {
	ListingID string
}

// Publisher fans listing changes out to a consumer. Publishing must not
// block the request that made the change.
type Publisher interface {
	PublishListingSaved(ctx context.Context, evt ListingSaved)
	SubscribeListingSaved() <-chan ListingSaved
}

type inMemory struct{ ch chan ListingSaved }

// NewInMemory returns a single-subscriber channel publisher. Publishing
// never blocks; events are dropped when the buffer is full.
func NewInMemory(buffer int) Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &inMemory{ch: make(chan ListingSaved, buffer)}
}

func (m *inMemory) PublishListingSaved(_ context.Context, evt ListingSaved) {
	select {
	case m.ch <- evt:
	default:
	}
}

func (m *inMemory) SubscribeListingSaved() <-chan ListingSaved { return m.ch }
