// Package estimator turns a free-text food description into a nutrition
// estimate using a generative AI service.
//
// Two providers are supported: Google Gemini ([Gemini]) and any
// OpenAI-compatible chat completions endpoint ([OpenAI]). [New] builds the
// configured provider and wraps it with [Cached] and [Limited]. Without an
// API key [New] returns [Disabled], which always fails with
// [ErrNotConfigured] so callers fall back to manual entry.
//
// Every call is a single attempt bounded by a timeout; failures are
// reported as [*RequestError], [ErrEmptyResponse] or [ErrMalformedResponse].
package estimator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/inovacc/macromind/internal/encoding"
	"github.com/inovacc/macromind/internal/model"
)

// Estimator produces a nutrition estimate for a food description.
type Estimator interface {
	Estimate(ctx context.Context, description string) (model.Nutrition, error)
}

// Provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Defaults.
const (
	DefaultTimeout       = 30 * time.Second
	DefaultRatePerSecond = 1.0
	DefaultBurst         = 3
	DefaultCacheTTL      = time.Hour
)

const promptTemplate = `Analyze the nutritional content of the following food description. Estimate the calories and macronutrients (protein, carbs, fat) for the specified portion size. If no portion is specified, assume a standard serving.

Food description: "%s"`

// Options configures New.
type Options struct {
	Provider      string
	Model         string
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	CacheTTL      time.Duration
	RatePerSecond float64
	Burst         int
	HTTPClient    *http.Client
	Logger        *slog.Logger
}

// New builds the estimator described by opts.
func New(opts Options) (Estimator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if strings.TrimSpace(opts.APIKey) == "" {
		logger.Debug("no API key configured, AI estimation disabled")
		return Disabled{}, nil
	}

	var (
		base Estimator
		err  error
	)

	switch strings.ToLower(opts.Provider) {
	case "", ProviderGemini:
		base, err = NewGemini(opts)
	case ProviderOpenAI:
		base, err = NewOpenAI(opts)
	default:
		return nil, fmt.Errorf("unknown estimator provider %q", opts.Provider)
	}

	if err != nil {
		return nil, err
	}

	rps := opts.RatePerSecond
	if rps <= 0 {
		rps = DefaultRatePerSecond
	}

	burst := opts.Burst
	if burst <= 0 {
		burst = DefaultBurst
	}

	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return Cached(Limited(base, rps, burst), ttl), nil
}

// Disabled is the estimator used when no API key is configured.
type Disabled struct{}

func (Disabled) Estimate(context.Context, string) (model.Nutrition, error) {
	return model.Nutrition{}, ErrNotConfigured
}

// Prompt returns the instruction sent for description.
func Prompt(description string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(description))
}

func checkDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}

	return nil
}

// decodeEstimate parses the JSON text returned by a provider.
func decodeEstimate(text string) (model.Nutrition, error) {
	n, err := encoding.ParseJSON[model.Nutrition]([]byte(text))
	if err != nil {
		if errors.Is(err, encoding.ErrEmpty) {
			return model.Nutrition{}, ErrEmptyResponse
		}

		return model.Nutrition{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	n.Name = strings.TrimSpace(n.Name)

	if err := n.Validate(); err != nil {
		return model.Nutrition{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return n, nil
}

// estimateSchema describes the expected answer. typeName maps JSON schema
// type names to the provider's spelling.
func estimateSchema(typeName func(string) string) map[string]any {
	prop := func(t, desc string) map[string]any {
		return map[string]any{"type": typeName(t), "description": desc}
	}

	return map[string]any{
		"type": typeName("object"),
		"properties": map[string]any{
			"name":     prop("string", "A short, concise name for the food item (e.g., 'Grilled Chicken Breast', 'Oatmeal with Berries')."),
			"calories": prop("number", "Total calories (kcal)."),
			"protein":  prop("number", "Protein in grams."),
			"carbs":    prop("number", "Carbohydrates in grams."),
			"fat":      prop("number", "Fat in grams."),
		},
		"required": []string{"name", "calories", "protein", "carbs", "fat"},
	}
}
