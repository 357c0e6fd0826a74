package llm

import (
	"errors"
	"fmt"
	"testing"
)

func TestCreateClientPrefixCheck(t *testing.T) {
	f := &Factory{
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-3.5-turbo",
		GroqAPIKey:   "gsk_test",
		GroqModel:    "llama-3.1-8b-instant",
	}

	c, model, err := f.CreateClient(ProviderOpenAI)
	if err != nil {
		t.Fatalf("openai resolve: %v", err)
	}
	if c == nil || model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected openai resolution: %v %q", c, model)
	}

	c, model, err = f.CreateClient(ProviderGroq)
	if err != nil {
		t.Fatalf("groq resolve: %v", err)
	}
	if c == nil || model != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected groq resolution: %v %q", c, model)
	}
}

func TestCreateClientRejectsBadCredentials(t *testing.T) {
	cases := []struct {
		name     string
		factory  Factory
		provider string
	}{
		{"empty openai key", Factory{}, ProviderOpenAI},
		{"wrong openai prefix", Factory{OpenAIAPIKey: "gsk_nope"}, ProviderOpenAI},
		{"empty groq key", Factory{}, ProviderGroq},
		{"wrong groq prefix", Factory{GroqAPIKey: "sk-nope"}, ProviderGroq},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, err := tc.factory.CreateClient(tc.provider)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if c != nil {
				t.Fatalf("client constructed despite failed credential check")
			}
			if cfgErr.Provider != tc.provider {
				t.Errorf("error names provider %q, want %q", cfgErr.Provider, tc.provider)
			}
		})
	}
}

func TestCreateClientUnknownProvider(t *testing.T) {
	f := &Factory{}
	_, _, err := f.CreateClient("yandex")
	if err == nil {
		t.Fatalf("expected error for unknown provider")
	}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		t.Fatalf("unknown provider should not be a ConfigurationError")
	}
}

func TestIsSoftFailure(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("insufficient quota"), false}, // not a ProviderError
		{&ProviderError{Provider: ProviderGroq, Err: errors.New("insufficient_quota")}, true},
		{&ProviderError{Provider: ProviderOpenAI, Err: errors.New("status code: 401 Unauthorized")}, true},
		{&ProviderError{Provider: ProviderOpenAI, Err: errors.New("status code: 429 Too Many Requests")}, true},
		{&ProviderError{Provider: ProviderOpenAI, Err: errors.New("connection refused")}, false},
	}
	for i, tc := range cases {
		wrapped := tc.err
		if wrapped != nil {
			wrapped = fmt.Errorf("send failed: %w", tc.err)
		}
		if got := IsSoftFailure(wrapped); got != tc.want {
			t.Errorf("case %d: IsSoftFailure = %v, want %v", i, got, tc.want)
		}
	}
}
