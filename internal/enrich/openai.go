package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAISummarizer implements Summarizer against the OpenAI API.
type OpenAISummarizer struct {
	client openai.Client
	model  string
	cfg    ProviderConfig
}

// NewOpenAISummarizer creates a new OpenAI summarizer.
func NewOpenAISummarizer(cfg ProviderConfig) (*OpenAISummarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key required")
	}

	model := cfg.Model
	if model == "" {
		model = string(openai.ChatModelGPT4o)
	}

	return &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  model,
		cfg:    cfg,
	}, nil
}

// Summarize sends a summary request to OpenAI.
func (p *OpenAISummarizer) Summarize(ctx context.Context, in SummaryInput) (string, error) {
	maxTokens := p.cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 256
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(in)),
		},
		MaxTokens: openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider identifier.
func (p *OpenAISummarizer) Name() string {
	return "openai"
}

// Model returns the configured model name.
func (p *OpenAISummarizer) Model() string {
	return p.model
}

var _ Summarizer = (*OpenAISummarizer)(nil)
