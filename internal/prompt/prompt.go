package prompt

import "smartchat/internal/llm"

// Assemble builds the single-turn exchange sent to the model: a fixed system
// instruction and one user message. Earlier turns are never included — the
// transcript shown in the UI is display-only.
func Assemble(systemPrompt, userText, attachmentSummary string) []llm.Message {
	content := userText
	if attachmentSummary != "" {
		content += "\n\n" + attachmentSummary
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: content},
	}
}
