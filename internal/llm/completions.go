package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is the hosted completion endpoint used when none is configured.
const DefaultBaseURL = "https://api.together.xyz/v1"

// CompletionsProvider implements Provider against any OpenAI-compatible
// chat completions endpoint (Together, OpenRouter, a self-hosted gateway).
type CompletionsProvider struct {
	client *openai.Client
	model  string
}

// NewCompletionsProvider creates a provider for the given endpoint. An empty
// apiKey is allowed: the request is still sent and rejected by the endpoint,
// which callers treat like any other remote failure.
func NewCompletionsProvider(apiKey, baseURL, model string) *CompletionsProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	return &CompletionsProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *CompletionsProvider) Name() string {
	return "completions"
}

func (p *CompletionsProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	var messages []openai.ChatCompletionMessage
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
		TopP:        float32(req.TopP),
		Stream:      false,
	}

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, err
	}

	var content, finishReason string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
		finishReason = string(resp.Choices[0].FinishReason)
	}

	return &CompletionResponse{
		Content:      content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
		FinishReason: finishReason,
	}, nil
}
