package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint.
// Groq exposes the same wire protocol, so it is served by the same client
// with an overridden base URL.
type OpenAIClient struct {
	client      *openai.Client
	provider    string
	model       string
	maxTokens   int
	temperature float32
}

func NewOpenAI(provider, apiKey, baseURL, model string, maxTokens int, temperature float32) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(config),
		provider:    provider,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Complete issues one blocking call and returns the first choice's message
// text with surrounding whitespace trimmed.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var oaMsgs []openai.ChatCompletionMessage
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", &ProviderError{Provider: c.provider, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: c.provider, Err: fmt.Errorf("empty response")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
