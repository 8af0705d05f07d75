package estimator

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/inovacc/macromind/internal/model"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Gemini estimates with the Gemini generateContent REST API.
type Gemini struct {
	client
	apiKey string
	model  string
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string         `json:"responseMimeType"`
		ResponseSchema   map[string]any `json:"responseSchema"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGemini creates a Gemini estimator.
func NewGemini(opts Options) (*Gemini, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}

	m := opts.Model
	if m == "" {
		m = DefaultGeminiModel
	}

	return &Gemini{
		client: newClient(opts, geminiBaseURL),
		apiKey: opts.APIKey,
		model:  m,
	}, nil
}

func (g *Gemini) Estimate(ctx context.Context, description string) (model.Nutrition, error) {
	if err := checkDescription(description); err != nil {
		return model.Nutrition{}, err
	}

	var req geminiRequest
	req.Contents = []geminiContent{{Parts: []geminiPart{{Text: Prompt(description)}}}}
	req.GenerationConfig.ResponseMimeType = "application/json"
	req.GenerationConfig.ResponseSchema = estimateSchema(strings.ToUpper)

	path := "/v1beta/models/" + url.PathEscape(g.model) + ":generateContent"

	var resp geminiResponse
	if err := g.postJSON(ctx, path, map[string]string{"x-goog-api-key": g.apiKey}, req, &resp); err != nil {
		return model.Nutrition{}, err
	}

	var text strings.Builder

	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}

	return decodeEstimate(text.String())
}
