package gemini

// Wire types for models/{model}:generateContent.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

var captionSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"caption": {
			Type:        "STRING",
			Description: "The main body text of the social media post.",
		},
		"hashtags": {
			Type:        "ARRAY",
			Items:       &schema{Type: "STRING"},
			Description: "A list of relevant hashtags (5-10).",
		},
	},
	Required: []string{"caption", "hashtags"},
}
