package store

import (
	"context"
	"fmt"
)

// Exchange is one transcript tuple: what the user sent, the attachment
// fragment that went with it (possibly empty), and what the model replied.
type Exchange struct {
	UserText          string
	AttachmentSummary string
	BotText           string
}

// AppendChat durably appends one exchange for the user. There is no retry;
// a storage failure is fatal to the triggering action.
func (s *Store) AppendChat(ctx context.Context, username, userText, attachmentSummary, botText string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chats (username, user_text, attachment_summary, bot_text) VALUES (?, ?, ?, ?)`,
		username, userText, attachmentSummary, botText)
	if err != nil {
		return fmt.Errorf("failed to append chat: %w", err)
	}
	return nil
}

// LoadChats returns up to limit oldest-first exchanges for the user.
func (s *Store) LoadChats(ctx context.Context, username string, limit int) ([]Exchange, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_text, attachment_summary, bot_text FROM chats
		 WHERE username = ? ORDER BY id ASC LIMIT ?`,
		username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chats: %w", err)
	}
	defer rows.Close()

	var out []Exchange
	for rows.Next() {
		var e Exchange
		if err := rows.Scan(&e.UserText, &e.AttachmentSummary, &e.BotText); err != nil {
			return nil, fmt.Errorf("failed to scan chat row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chats: %w", err)
	}
	return out, nil
}

// ClearChats deletes all exchanges for the user. Idempotent.
func (s *Store) ClearChats(ctx context.Context, username string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chats WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to clear chats: %w", err)
	}
	return nil
}
