package models

import "time"

// MessageTypeText is the only message payload kind currently supported.
const MessageTypeText = "text"

// Message is a single chat payload. Read defaults to false, meaning unread
// for every participant other than the sender.
type Message struct {
	ID       string    `json:"id"`
	SenderID string    `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
	Type     string    `json:"type"`
	Read     bool      `json:"read"`
}

// Chat is a conversation between a fixed set of two or more participants.
// Messages are owned by the chat; insertion order is chronological order.
type Chat struct {
	ID             string    `json:"id"`
	ParticipantIDs []string  `json:"participant_ids"`
	Messages       []Message `json:"messages"`
	CreatedAt      time.Time `json:"created_at"`
}

// Clone returns a copy whose participant and message slices do not share
// backing arrays with the receiver.
func (c Chat) Clone() Chat {
	c.ParticipantIDs = append([]string(nil), c.ParticipantIDs...)
	c.Messages = append([]Message(nil), c.Messages...)
	return c
}

// HasParticipant reports whether the user belongs to this conversation.
func (c Chat) HasParticipant(userID string) bool {
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// LastMessage returns the most recent message, if any.
func (c Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}
