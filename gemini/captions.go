package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourorg/listing-studio/internal/card"
)

type Platform string

const (
	Instagram Platform = "instagram"
	Facebook  Platform = "facebook"
	LinkedIn  Platform = "linkedin"
)

type Tone string

const (
	Professional Tone = "professional"
	Excited      Tone = "excited"
	Luxury       Tone = "luxury"
)

type CaptionRequest struct {
	Property  card.PropertyDetails `json:"property" validate:"required"`
	Platforms []Platform           `json:"platforms" validate:"min=1,dive,oneof=instagram facebook linkedin"`
	Tone      Tone                 `json:"tone" validate:"omitempty,oneof=professional excited luxury"`
}

type Caption struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// GenerateCaption asks the model for a post caption and hashtags. Any
// failure, including a reply that is not the expected JSON, is returned as
// an error; substituting a fallback is the caller's decision.
func (c *Client) GenerateCaption(ctx context.Context, r CaptionRequest) (Caption, error) {
	text, err := c.generate(ctx, captionPrompt(r), &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   captionSchema,
	})
	if err != nil {
		return Caption{}, err
	}
	return parseCaption(text)
}

// OptimizeDescription rewrites rough listing notes into a short polished
// paragraph.
func (c *Client) OptimizeDescription(ctx context.Context, raw string) (string, error) {
	prompt := fmt.Sprintf("Rewrite the following rough property notes into a polished, luxury real estate description paragraph (max 50 words): %q", raw)
	return c.generate(ctx, prompt, nil)
}

func captionPrompt(r CaptionRequest) string {
	tone := r.Tone
	if tone == "" {
		tone = Professional
	}
	names := make([]string, 0, len(r.Platforms))
	for _, p := range r.Platforms {
		names = append(names, string(p))
	}
	p := r.Property

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s real estate social media post for %s.\n", tone, strings.Join(names, " and "))
	b.WriteString("Property Details:\n")
	fmt.Fprintf(&b, "- Address: %s\n", p.Address)
	fmt.Fprintf(&b, "- Price: %s\n", p.Price)
	fmt.Fprintf(&b, "- Specs: %s Bed, %s Bath, %s sqft\n", p.BedsText(), p.BathsText(), p.SqftText())
	fmt.Fprintf(&b, "- Key Features: %s\n", strings.Join(p.Features, ", "))
	fmt.Fprintf(&b, "- Description Notes: %s\n\n", p.Description)
	b.WriteString("The post should be engaging and optimized for the selected platform's audience.\n")
	b.WriteString("Include emojis where appropriate.\n")
	return b.String()
}

var fallbackHashtags = []string{"#realestate", "#justlisted", "#newhome"}

// FallbackCaption is the deterministic caption used when generation fails.
func FallbackCaption(p card.PropertyDetails) Caption {
	return Caption{
		Caption: fmt.Sprintf("Check out this amazing property at %s! Listed for %s. %s beds, %s baths. Contact me for a tour!",
			p.Address, p.Price, p.BedsText(), p.BathsText()),
		Hashtags: append([]string(nil), fallbackHashtags...),
	}
}
