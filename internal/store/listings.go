package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yourorg/listing-studio/internal/canon"
	"github.com/yourorg/listing-studio/internal/card"
)

type ListingStatus string

const (
	StatusActive  ListingStatus = "active"
	StatusPending ListingStatus = "pending"
	StatusSold    ListingStatus = "sold"
)

func (s ListingStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusSold:
		return true
	}
	return false
}

type Listing struct {
	card.PropertyDetails `yaml:",inline"`
	ID                   string        `json:"id" yaml:"id"`
	Status               ListingStatus `json:"status" yaml:"status"`
	DateAdded            time.Time     `json:"dateAdded" yaml:"dateAdded"`
}

type Listings struct {
	mu    sync.RWMutex
	now   Clock
	newID func() string
	byID  map[string]*Listing
	order []string
}

func validateListing(l Listing) error {
	verr := check(l.PropertyDetails, "")
	if l.Status != "" && !l.Status.Valid() {
		verr.add("status", "oneof")
	}
	return verr.orNil()
}

// Add stores a new listing. An empty status becomes active; ID and
// DateAdded are assigned unless already set.
func (s *Listings) Add(l Listing) (Listing, error) {
	l.Address = strings.TrimSpace(l.Address)
	l.Price = strings.TrimSpace(l.Price)
	if err := validateListing(l); err != nil {
		return Listing{}, err
	}
	if l.Status == "" {
		l.Status = StatusActive
	}
	if l.DateAdded.IsZero() {
		l.DateAdded = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = s.newID()
	}
	if _, exists := s.byID[l.ID]; !exists {
		s.order = append(s.order, l.ID)
	}
	stored := cloneListing(l)
	s.byID[l.ID] = &stored
	return cloneListing(stored), nil
}

// Update replaces the listing with the same id, keeping its DateAdded.
func (s *Listings) Update(id string, l Listing) (Listing, error) {
	l.Address = strings.TrimSpace(l.Address)
	l.Price = strings.TrimSpace(l.Price)
	if err := validateListing(l); err != nil {
		return Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.byID[id]
	if !ok {
		return Listing{}, notFound("listing", id)
	}
	l.ID = id
	l.DateAdded = cur.DateAdded
	if l.Status == "" {
		l.Status = cur.Status
	}
	stored := cloneListing(l)
	s.byID[id] = &stored
	return cloneListing(stored), nil
}

// SetDescription swaps the description of listing id from one value to
// another. It fails with ErrConflict when the stored description is no
// longer from, so a slow rewrite never clobbers an edit made meanwhile.
func (s *Listings) SetDescription(id, from, to string) (Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.byID[id]
	if !ok {
		return Listing{}, notFound("listing", id)
	}
	if cur.Description != from {
		return Listing{}, fmt.Errorf("listing %s description changed: %w", id, ErrConflict)
	}
	cur.Description = to
	return cloneListing(*cur), nil
}

func (s *Listings) Get(id string) (Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.byID[id]
	if !ok {
		return Listing{}, notFound("listing", id)
	}
	return cloneListing(*l), nil
}

func (s *Listings) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return notFound("listing", id)
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Search returns listings whose address or status matches q, newest
// first. Address matching ignores case and street-suffix spelling, so
// "maple ave" finds "123 Maple Avenue". An empty q returns everything.
func (s *Listings) Search(q string) []Listing {
	q = strings.TrimSpace(q)
	s.mu.RLock()
	out := make([]Listing, 0, len(s.order))
	for _, id := range s.order {
		l := s.byID[id]
		if q == "" || canon.Contains(l.Address, q) || strings.Contains(string(l.Status), strings.ToLower(q)) {
			out = append(out, cloneListing(*l))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].DateAdded.After(out[j].DateAdded) })
	return out
}

func (s *Listings) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func cloneListing(l Listing) Listing {
	l.Features = append([]string(nil), l.Features...)
	return l
}
