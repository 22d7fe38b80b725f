package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// hashtagList accepts either a JSON array of strings or a single
// space/comma separated string; models return both.
type hashtagList []string

func (h *hashtagList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*h = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*h = strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\n' })
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	*h = arr
	return nil
}

func firstCandidateText(raw []byte) (string, error) {
	var resp generateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	var b strings.Builder
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
		}
		if b.Len() > 0 {
			break
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// parseCaption decodes the structured caption reply. Code fences around
// the JSON are tolerated.
func parseCaption(text string) (Caption, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var out struct {
		Caption  string      `json:"caption"`
		Hashtags hashtagList `json:"hashtags"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		return Caption{}, fmt.Errorf("malformed caption json: %w", err)
	}
	if strings.TrimSpace(out.Caption) == "" {
		return Caption{}, fmt.Errorf("malformed caption json: %w", ErrEmptyResponse)
	}

	tags := make([]string, 0, len(out.Hashtags))
	for _, t := range out.Hashtags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, "#") {
			t = "#" + t
		}
		tags = append(tags, t)
	}
	return Caption{Caption: strings.TrimSpace(out.Caption), Hashtags: tags}, nil
}
