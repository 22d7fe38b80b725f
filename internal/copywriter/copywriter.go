// Package copywriter wraps the AI client with the deterministic fallbacks
// the studio serves when generation is unavailable.
package copywriter

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/yourorg/listing-studio/gemini"
	"github.com/yourorg/listing-studio/internal/metrics"
)

const (
	NoticeMissingKey    = "Please configure your API_KEY in the environment."
	NoticeCaptionFailed = "Failed to generate caption. Please try again."
	NoticeRewriteFailed = "Could not optimize the description; the original text was kept."
)

const (
	reasonMissingKey = "missing_key"
	reasonUpstream   = "upstream"
	kindCaption      = "caption"
	kindDescription  = "description"
)

// Generator is the slice of gemini.Client the service needs.
type Generator interface {
	GenerateCaption(ctx context.Context, r gemini.CaptionRequest) (gemini.Caption, error)
	OptimizeDescription(ctx context.Context, raw string) (string, error)
}

type CaptionResult struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Fallback bool     `json:"fallback"`
	Notice   string   `json:"notice,omitempty"`
}

type DescriptionResult struct {
	Description string `json:"description"`
	Fallback    bool   `json:"fallback"`
	Notice      string `json:"notice,omitempty"`
}

type Service struct {
	gen     Generator
	log     zerolog.Logger
	metrics *metrics.Metrics
	policy  *bluemonday.Policy
}

func New(gen Generator, log zerolog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		gen:     gen,
		log:     log.With().Str("component", "copywriter").Logger(),
		metrics: m,
		policy:  bluemonday.StrictPolicy(),
	}
}

// Caption never fails: any generator error yields the fallback caption
// and a notice.
func (s *Service) Caption(ctx context.Context, r gemini.CaptionRequest) CaptionResult {
	out, err := s.gen.GenerateCaption(ctx, r)
	if err != nil {
		s.fallback(kindCaption, err)
		fb := gemini.FallbackCaption(r.Property)
		return CaptionResult{
			Caption:  fb.Caption,
			Hashtags: fb.Hashtags,
			Fallback: true,
			Notice:   captionNotice(err),
		}
	}

	tags := make([]string, 0, len(out.Hashtags))
	for _, t := range out.Hashtags {
		if t = s.clean(t); t != "" && t != "#" {
			tags = append(tags, t)
		}
	}
	caption := s.clean(out.Caption)
	if caption == "" {
		s.fallback(kindCaption, gemini.ErrEmptyResponse)
		fb := gemini.FallbackCaption(r.Property)
		return CaptionResult{Caption: fb.Caption, Hashtags: fb.Hashtags, Fallback: true, Notice: NoticeCaptionFailed}
	}
	return CaptionResult{Caption: caption, Hashtags: tags}
}

// Description returns the rewritten text, or raw unchanged when the
// rewrite fails or comes back empty.
func (s *Service) Description(ctx context.Context, raw string) DescriptionResult {
	out, err := s.gen.OptimizeDescription(ctx, raw)
	if err == nil {
		out = s.clean(out)
		if out == "" {
			err = gemini.ErrEmptyResponse
		}
	}
	if err != nil {
		s.fallback(kindDescription, err)
		notice := NoticeRewriteFailed
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			notice = NoticeMissingKey
		}
		return DescriptionResult{Description: raw, Fallback: true, Notice: notice}
	}
	return DescriptionResult{Description: out}
}

// clean strips markup from model output and returns plain text.
func (s *Service) clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

func (s *Service) fallback(kind string, err error) {
	reason := reasonUpstream
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		reason = reasonMissingKey
	}
	s.log.Warn().Err(err).Str("kind", kind).Str("reason", reason).Msg("serving fallback copy")
	s.metrics.RecordFallback(kind, reason)
}

func captionNotice(err error) string {
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		return NoticeMissingKey
	}
	return NoticeCaptionFailed
}
