package llm

import (
	"fmt"
	"strings"

	"smartchat/internal/config"
)

const (
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
)

// Expected credential prefixes. Superficial format check only, not a real
// validation of the key.
const (
	openAIKeyPrefix = "sk-"
	groqKeyPrefix   = "gsk_"
)

// Factory creates provider clients with consistent logic
type Factory struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GroqAPIKey    string
	GroqBaseURL   string
	GroqModel     string
	MaxTokens     int
	Temperature   float32
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIModel:   cfg.OpenAIModel,
		GroqAPIKey:    cfg.GroqAPIKey,
		GroqBaseURL:   cfg.GroqBaseURL,
		GroqModel:     cfg.GroqModel,
		MaxTokens:     cfg.MaxTokens,
		Temperature:   float32(cfg.Temperature),
	}
}

// Providers lists the supported provider names in display order.
func Providers() []string {
	return []string{ProviderGroq, ProviderOpenAI}
}

// CreateClient resolves a provider selection to a ready client and its
// default model. A missing or wrong-prefix credential fails with
// *ConfigurationError before any client is constructed.
func (f *Factory) CreateClient(provider string) (Client, string, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		if !strings.HasPrefix(f.OpenAIAPIKey, openAIKeyPrefix) {
			return nil, "", &ConfigurationError{
				Provider: ProviderOpenAI,
				Reason:   "OpenAI key missing/invalid. Set OPENAI_API_KEY (starts with 'sk-').",
			}
		}
		c := NewOpenAI(ProviderOpenAI, f.OpenAIAPIKey, f.OpenAIBaseURL, f.OpenAIModel, f.MaxTokens, f.Temperature)
		return c, f.OpenAIModel, nil
	case ProviderGroq:
		if !strings.HasPrefix(f.GroqAPIKey, groqKeyPrefix) {
			return nil, "", &ConfigurationError{
				Provider: ProviderGroq,
				Reason:   "Groq key missing/invalid. Set GROQ_API_KEY (starts with 'gsk_').",
			}
		}
		c := NewOpenAI(ProviderGroq, f.GroqAPIKey, f.GroqBaseURL, f.GroqModel, f.MaxTokens, f.Temperature)
		return c, f.GroqModel, nil
	default:
		return nil, "", fmt.Errorf("unknown llm provider: %s", provider)
	}
}
