// Package suggest calls the external theme suggestion provider. The call is
// best-effort enrichment: every failure mode degrades to an empty list.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Suggestion is one suggested event theme.
type Suggestion struct {
	ThemeName     string   `json:"themeName"`
	Vibe          string   `json:"vibe"`
	DecorIdeas    []string `json:"decorIdeas"`
	FoodSpecialty string   `json:"foodSpecialty"`
}

// Provider produces theme suggestions for an event.
type Provider interface {
	Suggest(ctx context.Context, eventType string, guestCount int) []Suggestion
}

// Client talks to a generateContent-style JSON endpoint. No timeout is
// imposed here; cancellation comes from the caller's context, so a caller
// that navigates away discards the result.
type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

// Ensure Client implements Provider
var _ Provider = (*Client)(nil)

// NewClient creates a suggestion client.
func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// suggestionSchema constrains the provider to the Suggestion list shape.
var suggestionSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"themeName": {"type": "STRING"},
			"vibe": {"type": "STRING"},
			"decorIdeas": {"type": "ARRAY", "items": {"type": "STRING"}},
			"foodSpecialty": {"type": "STRING"}
		},
		"required": ["themeName", "vibe", "decorIdeas", "foodSpecialty"]
	}
}`)

// Suggest asks the provider for themes matching the event type and guest
// count. Transport errors, non-200 responses and malformed bodies all
// return an empty list.
func (c *Client) Suggest(ctx context.Context, eventType string, guestCount int) []Suggestion {
	prompt := fmt.Sprintf(
		"Suggest 3 unique themes and catering ideas for a %s with %d guests in Pakistan. "+
			"Provide details on decoration, vibe, and a specialty food item for each.",
		eventType, guestCount,
	)
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   suggestionSchema,
		},
	})
	if err != nil {
		return []Suggestion{}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return []Suggestion{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return []Suggestion{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []Suggestion{}
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return []Suggestion{}
	}
	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return []Suggestion{}
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(body.Candidates[0].Content.Parts[0].Text), &suggestions); err != nil {
		return []Suggestion{}
	}
	return suggestions
}
