package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicSummarizer implements Summarizer against the Anthropic API.
type AnthropicSummarizer struct {
	client anthropic.Client
	model  string
	cfg    ProviderConfig
}

// NewAnthropicSummarizer creates a new Anthropic summarizer.
func NewAnthropicSummarizer(cfg ProviderConfig) (*AnthropicSummarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	model := cfg.Model
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}

	return &AnthropicSummarizer{
		client: anthropic.NewClient(opts...),
		model:  model,
		cfg:    cfg,
	}, nil
}

// Summarize sends a summary request to Anthropic.
func (p *AnthropicSummarizer) Summarize(ctx context.Context, in SummaryInput) (string, error) {
	maxTokens := p.cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 256
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(in))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var content string
	for _, block := range resp.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			content = b.Text
		}
	}
	return strings.TrimSpace(content), nil
}

// Name returns the provider identifier.
func (p *AnthropicSummarizer) Name() string {
	return "anthropic"
}

// Model returns the configured model name.
func (p *AnthropicSummarizer) Model() string {
	return p.model
}

var _ Summarizer = (*AnthropicSummarizer)(nil)
