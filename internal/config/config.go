package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderGroq   LLMProvider = "groq"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// LLM settings
	DefaultProvider LLMProvider `env:"LLM_PROVIDER" envDefault:"groq"`
	OpenAIAPIKey    string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string      `env:"OPENAI_BASE_URL"`
	OpenAIModel     string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	GroqAPIKey      string      `env:"GROQ_API_KEY"`
	GroqBaseURL     string      `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel       string      `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
	MaxTokens       int         `env:"MAX_TOKENS" envDefault:"300"`
	Temperature     float64     `env:"TEMPERATURE" envDefault:"0.7"`

	// Prompts
	SystemPrompt string `env:"SYSTEM_PROMPT" envDefault:"You are a helpful AI assistant."`

	// Storage
	DBPath       string `env:"DB_PATH" envDefault:"data/chatbot.db"`
	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"200"`

	// Uploads
	UploadDir    string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadMaxAge time.Duration `env:"UPLOAD_MAX_AGE" envDefault:"168h"`

	// Capabilities
	PDFExtraction bool `env:"PDF_EXTRACTION" envDefault:"true"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
