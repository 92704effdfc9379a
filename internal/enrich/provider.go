package enrich

import (
	"context"
	"fmt"
	"strings"
)

// Summarizer produces a short natural-language description of a business
// from its extracted fields and website text.
type Summarizer interface {
	// Summarize returns a one-paragraph description.
	Summarize(ctx context.Context, input SummaryInput) (string, error)

	// Name returns the provider identifier.
	Name() string

	// Model returns the configured model name.
	Model() string
}

// SummaryInput is everything the prompt is built from.
type SummaryInput struct {
	Name     string
	Category string
	Address  string
	Website  string
	PageText string
}

// ProviderConfig configures a summarization provider.
type ProviderConfig struct {
	Provider   string
	APIKey     string
	Model      string
	MaxTokens  int
	MaxRetries int
}

// NewSummarizer creates the provider named in the configuration.
func NewSummarizer(cfg ProviderConfig) (Summarizer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic":
		return NewAnthropicSummarizer(cfg)
	case "openai":
		return NewOpenAISummarizer(cfg)
	default:
		return nil, fmt.Errorf("unsupported summary provider: %s", cfg.Provider)
	}
}

const systemPrompt = "You write compact, factual one-paragraph descriptions " +
	"of local businesses. Use only the information provided. Never invent " +
	"details, never mention missing data, and keep it under 60 words."

// maxPromptText caps how much page text reaches the model.
const maxPromptText = 4000

// buildPrompt assembles the user message for a summary request.
func buildPrompt(in SummaryInput) string {
	var b strings.Builder
	b.WriteString("Describe this business:\n")
	b.WriteString("Name: " + in.Name + "\n")
	if in.Category != "" {
		b.WriteString("Category: " + in.Category + "\n")
	}
	if in.Address != "" {
		b.WriteString("Address: " + in.Address + "\n")
	}
	if in.Website != "" {
		b.WriteString("Website: " + in.Website + "\n")
	}
	if text := in.PageText; text != "" {
		if len(text) > maxPromptText {
			text = text[:maxPromptText]
		}
		b.WriteString("Website text:\n" + text + "\n")
	}
	return b.String()
}
