package copywriter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-studio/gemini"
	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/metrics"
)

type stubGenerator struct {
	caption    gemini.Caption
	captionErr error
	rewrite    string
	rewriteErr error
	gotRaw     string
}

func (s *stubGenerator) GenerateCaption(_ context.Context, _ gemini.CaptionRequest) (gemini.Caption, error) {
	return s.caption, s.captionErr
}

func (s *stubGenerator) OptimizeDescription(_ context.Context, raw string) (string, error) {
	s.gotRaw = raw
	return s.rewrite, s.rewriteErr
}

func request() gemini.CaptionRequest {
	return gemini.CaptionRequest{
		Property: card.PropertyDetails{
			Address: "8800 Sunset Blvd, LA",
			Price:   "$1,200,000",
			Beds:    2,
			Baths:   2,
			Sqft:    1400,
		},
		Platforms: []gemini.Platform{gemini.Instagram},
	}
}

func newService(t *testing.T, gen Generator) (*Service, *metrics.Metrics) {
	t.Helper()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	return New(gen, zerolog.Nop(), m), m
}

func TestCaption_Success(t *testing.T) {
	svc, _ := newService(t, &stubGenerator{caption: gemini.Caption{
		Caption:  "<b>Sunset</b> views & more",
		Hashtags: []string{"#luxury", "<i>#LA</i>", "  "},
	}})

	got := svc.Caption(context.Background(), request())
	assert.False(t, got.Fallback)
	assert.Empty(t, got.Notice)
	assert.Equal(t, "Sunset views & more", got.Caption)
	assert.Equal(t, []string{"#luxury", "#LA"}, got.Hashtags)
}

func TestCaption_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		notice string
	}{
		{"missing key", gemini.ErrMissingAPIKey, NoticeMissingKey},
		{"wrapped missing key", fmt.Errorf("caption: %w", gemini.ErrMissingAPIKey), NoticeMissingKey},
		{"malformed json", errors.New("malformed caption json: unexpected token"), NoticeCaptionFailed},
		{"api error", &gemini.APIError{Status: 500, Body: map[string]any{"error": "boom"}}, NoticeCaptionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, &stubGenerator{captionErr: tt.err})
			got := svc.Caption(context.Background(), request())

			assert.True(t, got.Fallback)
			assert.Equal(t, tt.notice, got.Notice)
			assert.Contains(t, got.Caption, "8800 Sunset Blvd, LA")
			assert.Contains(t, got.Caption, "$1,200,000")
			assert.Equal(t, []string{"#realestate", "#justlisted", "#newhome"}, got.Hashtags)
		})
	}
}

func TestCaption_MarkupOnlyCaptionFallsBack(t *testing.T) {
	svc, _ := newService(t, &stubGenerator{caption: gemini.Caption{Caption: "<script>alert(1)</script>"}})
	got := svc.Caption(context.Background(), request())
	assert.True(t, got.Fallback)
	assert.Equal(t, NoticeCaptionFailed, got.Notice)
}

func TestDescription(t *testing.T) {
	gen := &stubGenerator{rewrite: "  A sun-drenched retreat.  "}
	svc, _ := newService(t, gen)

	got := svc.Description(context.Background(), "2bd view")
	assert.Equal(t, "2bd view", gen.gotRaw)
	assert.Equal(t, DescriptionResult{Description: "A sun-drenched retreat."}, got)
}

func TestDescription_FailureKeepsOriginal(t *testing.T) {
	tests := map[string]*stubGenerator{
		"error":       {rewriteErr: errors.New("timeout")},
		"empty reply": {rewrite: "   "},
		"missing key": {rewriteErr: gemini.ErrMissingAPIKey},
	}
	for name, gen := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t, gen)
			got := svc.Description(context.Background(), "rough notes")
			assert.True(t, got.Fallback)
			assert.Equal(t, "rough notes", got.Description)
			assert.NotEmpty(t, got.Notice)
		})
	}
}
