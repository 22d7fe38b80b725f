package store

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourorg/listing-studio/internal/card"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the YAML document used to pre-populate a store.
type Seed struct {
	Brand     *card.BrandSettings `yaml:"brand"`
	Listings  []Listing           `yaml:"listings"`
	Posts     []SeedPost          `yaml:"posts"`
	Templates []CustomTemplate    `yaml:"templates"`
}

// SeedPost is a post whose schedule may be given relative to load time.
type SeedPost struct {
	SocialPost `yaml:",inline"`
	ScheduleIn string `yaml:"scheduleIn"`
}

// LoadDefaultSeed loads the built-in sample listings and post.
func (s *Store) LoadDefaultSeed(now time.Time) error {
	return s.LoadSeed(bytes.NewReader(defaultSeed), now)
}

func (s *Store) LoadSeedFile(path string, now time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return s.LoadSeed(f, now)
}

// LoadSeed decodes a Seed from r and writes it through the normal
// validating paths. Posts keep an explicit status when one is given.
func (s *Store) LoadSeed(r io.Reader, now time.Time) error {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && err != io.EOF {
		return fmt.Errorf("decode seed: %w", err)
	}

	if seed.Brand != nil {
		if _, err := s.Brand.Replace(*seed.Brand); err != nil {
			return fmt.Errorf("seed brand: %w", err)
		}
	}
	for i, l := range seed.Listings {
		if _, err := s.Listings.Add(l); err != nil {
			return fmt.Errorf("seed listing %d: %w", i, err)
		}
	}
	for i, t := range seed.Templates {
		if _, err := s.Templates.Create(t); err != nil {
			return fmt.Errorf("seed template %d: %w", i, err)
		}
	}
	for i, sp := range seed.Posts {
		p := sp.SocialPost
		if sp.ScheduleIn != "" {
			d, err := time.ParseDuration(sp.ScheduleIn)
			if err != nil {
				return fmt.Errorf("seed post %d: scheduleIn: %w", i, err)
			}
			at := now.Add(d).UTC()
			p.ScheduledAt = &at
		}
		if err := check(p, "").orNil(); err != nil {
			return fmt.Errorf("seed post %d: %w", i, err)
		}
		if p.ID == "" {
			p.ID = s.Posts.newID()
		}
		if p.Status == "" {
			p.Status = PostPublished
			if p.ScheduledAt != nil {
				p.Status = PostScheduled
			}
		}
		s.Posts.put(p)
	}
	return nil
}
