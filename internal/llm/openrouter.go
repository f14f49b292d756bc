package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	openRouterURL          = "https://openrouter.ai/api/v1/chat/completions"
	DefaultOpenRouterModel = "meta-llama/llama-3.3-70b-instruct"
)

// OpenRouter answers questions through the OpenRouter chat-completions
// API, which fronts many hosted models behind one endpoint.
type OpenRouter struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewOpenRouter builds an OpenRouter provider. An empty model falls
// back to DefaultOpenRouterModel.
func NewOpenRouter(apiKey, model string) (*OpenRouter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter: API key is required")
	}
	if model == "" {
		model = DefaultOpenRouterModel
	}
	return &OpenRouter{
		client: resty.New(),
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (o *OpenRouter) Name() string { return "openrouter" }

// Answer posts a single-message chat completion and extracts the first
// choice's content.
func (o *OpenRouter) Answer(ctx context.Context, docContext, question string) (string, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+o.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": o.model,
			"messages": []map[string]string{
				{"role": "user", "content": answerPrompt(docContext, question)},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		return "", fmt.Errorf("openrouter: request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter: status %s: %s", resp.Status(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("openrouter: empty response")
	}
	return strings.TrimSpace(text), nil
}
