// Package recommend produces catalog recommendations for a free-form query,
// using TMDB search results when they exist and falling back to the Gemini
// generative API when the catalog comes up empty.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"slasshy/internal/httputil"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.5-flash"
)

// Recommendation is one suggested title.
type Recommendation struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	FakeID      int    `json:"fakeId"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// Gemini is a client for the generateContent API.
type Gemini struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

// NewGemini creates a Gemini client. An empty baseURL selects the public endpoint.
func NewGemini(apiKey, baseURL string) *Gemini {
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	return &Gemini{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: baseURL,
		client:  httputil.NewClient(),
	}
}

// Configured reports whether an API key is present.
func (g *Gemini) Configured() bool {
	return g.apiKey != ""
}

const systemInstruction = `You are a movie and TV show recommendation engine for a streaming platform called "Slasshy".
Your goal is to provide 3 distinct recommendations based on the user's query and the selected category (%s).
Return the data in a structured JSON format.
For each recommendation, provide a title, a release year, a short description (max 20 words), and a playful "reason" why it matches the query.
Also generate a random 5-digit number as a "fakeId" to simulate a database ID.
Respond with ONLY a JSON array of objects with exactly these fields: "title", "year", "description", "reason", "fakeId".`

// Recommendations asks Gemini for three suggestions matching the query.
func (g *Gemini) Recommendations(ctx context.Context, query, category string) ([]Recommendation, error) {
	if !g.Configured() {
		return nil, fmt.Errorf("gemini api key not configured")
	}

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: fmt.Sprintf(systemInstruction, category)}},
		},
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: query}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, geminiModel, g.apiKey)

	var out geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&out).
		SetError(&out).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil && out.Error.Message != "" {
			return nil, fmt.Errorf("gemini: %s", out.Error.Message)
		}
		return nil, fmt.Errorf("gemini: unexpected status %d", resp.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty response")
	}

	text := stripFences(out.Candidates[0].Content.Parts[0].Text)

	var recs []Recommendation
	if err := json.Unmarshal([]byte(text), &recs); err != nil {
		return nil, fmt.Errorf("parsing gemini response: %w", err)
	}
	return recs, nil
}

// stripFences removes a markdown code fence the model sometimes wraps its
// JSON in despite the JSON response mime type.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
