package chat

import (
	"context"
	"fmt"
	"strings"

	"smartchat/internal/attach"
	"smartchat/internal/llm"
	"smartchat/internal/prompt"
	"smartchat/internal/session"
	"smartchat/internal/store"
)

// FallbackReply is recorded as the AI turn when the provider call fails, so
// the transcript still shows an answer for every send.
const FallbackReply = "Unable to reach AI service. Check API key/provider."

// Gateway resolves a provider selection to a completion client and its
// default model.
type Gateway interface {
	CreateClient(provider string) (llm.Client, string, error)
}

// Store is the persistence surface the controller drives.
type Store interface {
	Register(ctx context.Context, username, password string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
	AppendChat(ctx context.Context, username, userText, attachmentSummary, botText string) error
	LoadChats(ctx context.Context, username string, limit int) ([]store.Exchange, error)
	ClearChats(ctx context.Context, username string) error
}

// Service orchestrates one user action at a time: auth against the credential
// store, attachment summarization, prompt assembly, the single provider call,
// and transcript persistence.
type Service struct {
	store        Store
	gateway      Gateway
	summarizer   *attach.Summarizer
	systemPrompt string
	historyLimit int
}

func NewService(st Store, gw Gateway, sum *attach.Summarizer, systemPrompt string, historyLimit int) *Service {
	return &Service{
		store:        st,
		gateway:      gw,
		summarizer:   sum,
		systemPrompt: systemPrompt,
		historyLimit: historyLimit,
	}
}

// Register creates the user and, on success, logs the session in and
// rehydrates its transcript from the store. A taken username is reported as
// ok=false with no state change.
func (s *Service) Register(ctx context.Context, sess *session.Session, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}
	ok, err := s.store.Register(ctx, username, password)
	if err != nil || !ok {
		return false, err
	}
	return true, s.logIn(ctx, sess, username)
}

// Login authenticates and, on success, rehydrates the session transcript.
func (s *Service) Login(ctx context.Context, sess *session.Session, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	ok, err := s.store.Authenticate(ctx, username, password)
	if err != nil || !ok {
		return false, err
	}
	return true, s.logIn(ctx, sess, username)
}

func (s *Service) logIn(ctx context.Context, sess *session.Session, username string) error {
	history, err := s.store.LoadChats(ctx, username, s.historyLimit)
	if err != nil {
		return fmt.Errorf("failed to rehydrate transcript: %w", err)
	}
	sess.LoggedIn = true
	sess.Username = username
	sess.History = history
	return nil
}

// Result is the outcome of one send. ProviderErr is non-nil when the
// completion call failed and FallbackReply was substituted; the turn is still
// recorded either way.
type Result struct {
	Exchange    store.Exchange
	ProviderErr error
}

// Send runs one exchange: summarize the attachment, assemble the single-turn
// prompt, call the provider, append to the in-memory transcript and then
// persist. The in-memory append happens before persistence; a storage failure
// after that point leaves the views divergent until the next login.
func (s *Service) Send(ctx context.Context, sess *session.Session, text string, file *attach.File) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty message")
	}

	summary := s.summarizer.Summarize(file)
	client, _, err := s.gateway.CreateClient(sess.Provider)
	if err != nil {
		// ConfigurationError (or unknown provider): nothing is sent and no
		// turn is recorded.
		return nil, err
	}

	msgs := prompt.Assemble(s.systemPrompt, text, summary)
	answer, provErr := client.Complete(ctx, msgs)
	if provErr != nil {
		answer = FallbackReply
	}

	ex := store.Exchange{UserText: text, AttachmentSummary: summary, BotText: answer}
	sess.History = append(sess.History, ex)
	if err := s.store.AppendChat(ctx, sess.Username, ex.UserText, ex.AttachmentSummary, ex.BotText); err != nil {
		return nil, err
	}
	return &Result{Exchange: ex, ProviderErr: provErr}, nil
}

// DeleteHistory clears the durable transcript and empties the in-memory one.
func (s *Service) DeleteHistory(ctx context.Context, sess *session.Session) error {
	if err := s.store.ClearChats(ctx, sess.Username); err != nil {
		return err
	}
	sess.History = nil
	return nil
}
