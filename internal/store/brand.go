package store

import (
	"sync"

	"github.com/yourorg/listing-studio/internal/card"
)

// DefaultBrand is the kit a fresh studio starts with.
func DefaultBrand() card.BrandSettings {
	return card.BrandSettings{
		PrimaryColor:   "#0ea5e9",
		SecondaryColor: "#0c4a6e",
		FontFamily:     card.FontInter,
		AgentName:      "John Doe",
		AgencyName:     "Realty One Group",
		Website:        "www.johndoerealty.com",
		Phone:          "(555) 123-4567",
		Email:          "john@realty.com",
	}
}

type BrandKit struct {
	mu    sync.RWMutex
	brand card.BrandSettings
}

func NewBrandKit() *BrandKit {
	return &BrandKit{brand: DefaultBrand()}
}

func (b *BrandKit) Get() card.BrandSettings {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.brand
}

// Replace swaps the whole kit after validating colors, font and email.
func (b *BrandKit) Replace(s card.BrandSettings) (card.BrandSettings, error) {
	if err := check(s, "").orNil(); err != nil {
		return card.BrandSettings{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.brand = s
	return s, nil
}
