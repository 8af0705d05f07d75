package estimator

import (
	"context"
	"fmt"
	"strings"

	"github.com/inovacc/macromind/internal/model"
)

const (
	openAIBaseURL      = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// OpenAI estimates with an OpenAI-compatible chat completions endpoint
// using structured outputs.
type OpenAI struct {
	client
	apiKey string
	model  string
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	ResponseFormat map[string]any  `json:"response_format"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenAI creates an OpenAI-compatible estimator.
func NewOpenAI(opts Options) (*OpenAI, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}

	m := opts.Model
	if m == "" {
		m = DefaultOpenAIModel
	}

	return &OpenAI{
		client: newClient(opts, openAIBaseURL),
		apiKey: opts.APIKey,
		model:  m,
	}, nil
}

func (o *OpenAI) Estimate(ctx context.Context, description string) (model.Nutrition, error) {
	if err := checkDescription(description); err != nil {
		return model.Nutrition{}, err
	}

	schema := estimateSchema(func(s string) string { return s })
	schema["additionalProperties"] = false

	req := openAIRequest{
		Model:    o.model,
		Messages: []openAIMessage{{Role: "user", Content: Prompt(description)}},
		ResponseFormat: map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "food_estimate",
				"strict": true,
				"schema": schema,
			},
		},
	}

	var resp openAIResponse
	if err := o.postJSON(ctx, "/chat/completions", map[string]string{"Authorization": "Bearer " + o.apiKey}, req, &resp); err != nil {
		return model.Nutrition{}, err
	}

	if len(resp.Choices) == 0 {
		return model.Nutrition{}, ErrEmptyResponse
	}

	return decodeEstimate(resp.Choices[0].Message.Content)
}
