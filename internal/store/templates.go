package store

import (
	"strings"
	"sync"
	"time"

	"github.com/yourorg/listing-studio/internal/card"
)

// CustomTemplate is a saved configuration of one of the standard layouts.
type CustomTemplate struct {
	ID             string              `json:"id" yaml:"id"`
	Name           string              `json:"name" yaml:"name"`
	BaseTemplateID card.TemplateID     `json:"baseTemplateId" yaml:"baseTemplateId"`
	Config         card.TemplateConfig `json:"config" yaml:"config"`
	CreatedAt      time.Time           `json:"createdAt" yaml:"createdAt"`
}

type Templates struct {
	mu    sync.RWMutex
	now   Clock
	newID func() string
	byID  map[string]*CustomTemplate
	order []string
}

func validateTemplate(t CustomTemplate) error {
	verr := checkConfig(t.Config, "config")
	if strings.TrimSpace(t.Name) == "" {
		verr.add("name", "required")
	}
	if !t.BaseTemplateID.Valid() {
		verr.add("baseTemplateId", "oneof")
	}
	return verr.orNil()
}

// ValidateConfig checks a template config on its own, as sent inline with
// a render request.
func ValidateConfig(cfg card.TemplateConfig) error {
	return checkConfig(cfg, "config").orNil()
}

func checkConfig(cfg card.TemplateConfig, prefix string) *ValidationError {
	verr := check(cfg, prefix)
	if o := cfg.Layout; o != nil {
		if o.TextAlign != nil && !o.TextAlign.Valid() {
			verr.add(prefix+".layout.textAlignment", "oneof")
		}
		if o.ContentPosition != nil && !o.ContentPosition.Valid() {
			verr.add(prefix+".layout.contentPosition", "oneof")
		}
		if o.HeaderStyle != nil && !o.HeaderStyle.ValidHeader() {
			verr.add(prefix+".layout.headerStyle", "oneof")
		}
		if o.FooterStyle != nil && !o.FooterStyle.ValidFooter() {
			verr.add(prefix+".layout.footerStyle", "oneof")
		}
	}
	return verr
}

func (s *Templates) Create(t CustomTemplate) (CustomTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := validateTemplate(t); err != nil {
		return CustomTemplate{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = "custom-" + strings.ToLower(s.newID())
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now().UTC()
	}
	if _, exists := s.byID[t.ID]; !exists {
		s.order = append(s.order, t.ID)
	}
	stored := t
	s.byID[t.ID] = &stored
	return stored, nil
}

func (s *Templates) Get(id string) (CustomTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return CustomTemplate{}, notFound("template", id)
	}
	return *t, nil
}

func (s *Templates) List() []CustomTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CustomTemplate, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

func (s *Templates) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return notFound("template", id)
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

// Resolve maps a post or request template id to the layout to draw and
// its config. Custom template ids resolve to their base layout; anything
// else is passed through as a standard id with no config, so unknown ids
// still reach the renderer and come back as the placeholder.
func (s *Templates) Resolve(id string) (card.TemplateID, *card.TemplateConfig) {
	s.mu.RLock()
	t, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return card.TemplateID(id), nil
	}
	cfg := t.Config
	return t.BaseTemplateID, &cfg
}
