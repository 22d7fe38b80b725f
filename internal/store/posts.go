package store

import (
	"strings"
	"sync"
	"time"

	"github.com/yourorg/listing-studio/internal/card"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
)

// SocialPost is a composed post. TemplateID names either a standard
// template or a custom template id.
type SocialPost struct {
	ID          string               `json:"id" yaml:"id"`
	Platforms   []string             `json:"platforms" yaml:"platforms" validate:"min=1,dive,oneof=instagram facebook linkedin"`
	Content     string               `json:"content" yaml:"content"`
	Hashtags    []string             `json:"hashtags" yaml:"hashtags"`
	ScheduledAt *time.Time           `json:"scheduledAt,omitempty" yaml:"scheduledAt"`
	Status      PostStatus           `json:"status" yaml:"status"`
	TemplateID  string               `json:"templateId" yaml:"templateId"`
	Property    card.PropertyDetails `json:"property" yaml:"property" validate:"-"`
}

type DashboardStats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
}

type Posts struct {
	mu    sync.RWMutex
	newID func() string
	byID  map[string]*SocialPost
	order []string // newest first
}

// Save creates or replaces a post by id. The status is derived: scheduled
// when a schedule time is present, published otherwise. A new post goes
// to the front of the list; an update keeps its position.
func (s *Posts) Save(p SocialPost) (SocialPost, error) {
	verr := check(p, "")
	if strings.TrimSpace(p.TemplateID) == "" {
		verr.add("templateId", "required")
	}
	if err := verr.orNil(); err != nil {
		return SocialPost{}, err
	}
	if p.ScheduledAt != nil {
		p.Status = PostScheduled
	} else {
		p.Status = PostPublished
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.newID()
	}
	if _, exists := s.byID[p.ID]; !exists {
		s.order = append([]string{p.ID}, s.order...)
	}
	stored := clonePost(p)
	s.byID[p.ID] = &stored
	return clonePost(stored), nil
}

// put inserts p as-is, status included. Used by the seed loader.
func (s *Posts) put(p SocialPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	stored := clonePost(p)
	s.byID[p.ID] = &stored
}

func (s *Posts) Get(id string) (SocialPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return SocialPost{}, notFound("post", id)
	}
	return clonePost(*p), nil
}

func (s *Posts) List() []SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SocialPost, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clonePost(*s.byID[id]))
	}
	return out
}

func (s *Posts) Stats() DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := DashboardStats{Total: len(s.byID)}
	for _, p := range s.byID {
		switch p.Status {
		case PostScheduled:
			st.Scheduled++
		case PostPublished:
			st.Published++
		case PostDraft:
			st.Drafts++
		}
	}
	return st
}

func clonePost(p SocialPost) SocialPost {
	p.Platforms = append([]string(nil), p.Platforms...)
	p.Hashtags = append([]string(nil), p.Hashtags...)
	p.Property.Features = append([]string(nil), p.Property.Features...)
	if p.ScheduledAt != nil {
		t := *p.ScheduledAt
		p.ScheduledAt = &t
	}
	return p
}
