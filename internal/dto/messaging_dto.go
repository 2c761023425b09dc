package dto

import "time"

// CreateChatRequest starts a conversation between a fixed participant set.
type CreateChatRequest struct {
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=2"`
}

// SendMessageRequest appends a text message to an existing chat.
type SendMessageRequest struct {
	ChatID   string `json:"chat_id" validate:"required"`
	SenderID string `json:"sender_id" validate:"required"`
	Text     string `json:"text"`
}

// ChatSummary is the derived conversation row shown in a chat list.
type ChatSummary struct {
	ID           string     `json:"id"`
	DisplayName  string     `json:"display_name"`
	Preview      string     `json:"preview"`
	Unread       bool       `json:"unread"`
	MessageCount int        `json:"message_count"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}
