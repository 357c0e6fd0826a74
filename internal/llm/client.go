package llm

import "context"

type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
