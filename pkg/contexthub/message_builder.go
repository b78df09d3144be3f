package contexthub

import (
	"context"
	"fmt"
)

// maxHistoryMessages caps how many prior messages enter the section before
// the character-level truncation in MessagesSection.Render applies.
const maxHistoryMessages = 40

// MessageBuilder materializes the conversation history section.
type MessageBuilder struct {
	store Store
}

// NewMessageBuilder creates a message builder.
func NewMessageBuilder(store Store) *MessageBuilder {
	return &MessageBuilder{store: store}
}

// Build reads prior completions for the report, excluding the still-open
// turn, keeping the most recent messages.
func (b *MessageBuilder) Build(ctx context.Context, reportID, excludeCompletionID string) (MessagesSection, error) {
	records, err := b.store.ListMessages(ctx, reportID, excludeCompletionID)
	if err != nil {
		return MessagesSection{}, fmt.Errorf("list messages: %w", err)
	}
	if len(records) > maxHistoryMessages {
		records = records[len(records)-maxHistoryMessages:]
	}
	section := MessagesSection{Messages: make([]HistoryMessage, 0, len(records))}
	for _, r := range records {
		section.Messages = append(section.Messages, HistoryMessage{
			Role:      r.Role,
			Content:   r.Content,
			Timestamp: r.CreatedAt,
			Mentions:  r.Mentions,
		})
	}
	return section, nil
}
