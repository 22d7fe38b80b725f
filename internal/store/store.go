// Package store keeps the studio's working state in memory: listings,
// social posts, custom templates, the brand kit and uploaded media.
package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists every rejected field of a write. The store is
// left unchanged when one is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) add(field, rule string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule})
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs the struct tags of v and converts failures into a
// *ValidationError, prefixing field paths with prefix when set.
func check(v any, prefix string) *ValidationError {
	verr := &ValidationError{}
	err := validate.Struct(v)
	if err == nil {
		return verr
	}
	var fails validator.ValidationErrors
	if !errors.As(err, &fails) {
		verr.add(prefix, err.Error())
		return verr
	}
	for _, f := range fails {
		field := fieldPath(f.Namespace())
		if prefix != "" {
			field = prefix + "." + field
		}
		verr.add(field, f.Tag())
	}
	return verr
}

// Validate checks v against its validate struct tags.
func Validate(v any) error {
	return check(v, "").orNil()
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

type Clock func() time.Time

// Store bundles the collections. Each collection guards itself and is
// safe for concurrent use.
type Store struct {
	Listings  *Listings
	Posts     *Posts
	Templates *Templates
	Brand     *BrandKit
	Media     *Media
}

type Option func(*options)

type options struct {
	now   Clock
	newID func() string
}

func WithClock(c Clock) Option { return func(o *options) { o.now = c } }

func WithIDs(f func() string) Option { return func(o *options) { o.newID = f } }

func New(opts ...Option) *Store {
	o := options{now: time.Now, newID: func() string { return ulid.Make().String() }}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		Listings:  &Listings{now: o.now, newID: o.newID, byID: map[string]*Listing{}},
		Posts:     &Posts{newID: o.newID, byID: map[string]*SocialPost{}},
		Templates: &Templates{now: o.now, newID: o.newID, byID: map[string]*CustomTemplate{}},
		Brand:     NewBrandKit(),
		Media:     &Media{newID: o.newID, byID: map[string]*Image{}},
	}
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
