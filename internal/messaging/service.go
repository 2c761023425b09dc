// Package messaging manages conversations: listing, naming, previews,
// unread state and message append. Derivations are recomputed on every
// call from the raw collections; nothing here is cached.
package messaging

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edu-portal/internal/apperr"
	"github.com/noah-isme/edu-portal/internal/dto"
	"github.com/noah-isme/edu-portal/internal/models"
	"github.com/noah-isme/edu-portal/internal/observability"
	"github.com/noah-isme/edu-portal/internal/store"
)

const (
	// EmptyPreview is returned for chats with no messages yet.
	EmptyPreview = "No messages yet"
	// UnknownUserName is used when a participant id no longer resolves.
	UnknownUserName = "Unknown User"
	// GroupChatName is used for chats with more than two participants.
	GroupChatName = "Group Chat"
)

// ErrChatNotFound indicates the chat id does not resolve.
var ErrChatNotFound = fmt.Errorf("chat not found: %w", apperr.ErrNotFound)

// ErrNotParticipant indicates the sender does not belong to the chat.
var ErrNotParticipant = fmt.Errorf("sender is not a chat participant: %w", apperr.ErrValidation)

// Service exposes the messaging operations consumed by the view layer.
type Service interface {
	ListChats(actor models.User, search string) []dto.ChatSummary
	DisplayName(chat models.Chat, actor models.User) string
	Preview(chat models.Chat) string
	HasUnread(chat models.Chat, actor models.User) bool
	SendMessage(req dto.SendMessageRequest) (models.Message, error)
	MarkRead(chatID string, actor models.User) error
	CreateChat(req dto.CreateChatRequest) (models.Chat, error)
}

type service struct {
	store     *store.Store
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewService constructs the messaging service.
func NewService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) Service {
	return &service{
		store:     st,
		validate:  validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "messaging_service").Logger(),
		now:       time.Now,
	}
}

// ListChats returns conversation summaries in chat insertion order. A non-empty
// search narrows the list to chats whose display name or preview contains the
// term, case-insensitively.
func (s *service) ListChats(actor models.User, search string) []dto.ChatSummary {
	search = strings.ToLower(strings.TrimSpace(search))

	chats := s.store.Chats.All()
	summaries := make([]dto.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary := dto.ChatSummary{
			ID:           chat.ID,
			DisplayName:  s.DisplayName(chat, actor),
			Preview:      s.Preview(chat),
			Unread:       s.HasUnread(chat, actor),
			MessageCount: len(chat.Messages),
		}
		if last, ok := chat.LastMessage(); ok {
			sentAt := last.SentAt
			summary.LastActivity = &sentAt
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(summary.DisplayName), search) &&
			!strings.Contains(strings.ToLower(summary.Preview), search) {
			continue
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// DisplayName resolves a conversation title relative to the actor: the other
// participant's name for a two-party chat, or a group label otherwise.
func (s *service) DisplayName(chat models.Chat, actor models.User) string {
	others := make([]string, 0, len(chat.ParticipantIDs))
	for _, id := range chat.ParticipantIDs {
		if id != actor.ID {
			others = append(others, id)
		}
	}

	if len(others) == 1 {
		other, ok := s.store.Users.Get(others[0])
		if !ok {
			return UnknownUserName
		}
		return other.DisplayName
	}

	return GroupChatName
}

// Preview returns the text of the chat's last message.
func (s *service) Preview(chat models.Chat) string {
	last, ok := chat.LastMessage()
	if !ok {
		return EmptyPreview
	}
	return last.Text
}

// HasUnread reports whether any message from another sender is still unread.
func (s *service) HasUnread(chat models.Chat, actor models.User) bool {
	for _, msg := range chat.Messages {
		if msg.SenderID != actor.ID && !msg.Read {
			return true
		}
	}
	return false
}

// SendMessage appends a text message to the chat. The text is trimmed and
// stripped of markup before it is stored; a message that is empty after
// trimming is rejected.
func (s *service) SendMessage(req dto.SendMessageRequest) (models.Message, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Message{}, fmt.Errorf("invalid message: %v: %w", err, apperr.ErrValidation)
	}

	chat, ok := s.store.Chats.Get(req.ChatID)
	if !ok {
		return models.Message{}, ErrChatNotFound
	}

	if !chat.HasParticipant(req.SenderID) {
		return models.Message{}, ErrNotParticipant
	}

	// Sanitize strips markup but entity-escapes the survivors; unescape so
	// plain text like "2 < 3" is stored exactly as sent.
	text := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(req.Text)))
	if text == "" {
		return models.Message{}, apperr.Validation("message text is empty")
	}

	msg := models.Message{
		ID:       s.store.NewID(),
		SenderID: req.SenderID,
		Text:     text,
		SentAt:   s.now(),
		Type:     models.MessageTypeText,
	}

	s.store.Chats.Update(chat.ID, func(c models.Chat) models.Chat {
		c.Messages = append(c.Messages, msg)
		return c
	})

	observability.Operations().WithLabelValues("messaging", "send_message", "ok").Inc()
	s.logger.Info().Str("chat_id", chat.ID).Str("message_id", msg.ID).Msg("message sent")

	return msg, nil
}

// MarkRead flags every message from other senders as read for the actor.
func (s *service) MarkRead(chatID string, actor models.User) error {
	ok := s.store.Chats.Update(chatID, func(c models.Chat) models.Chat {
		for i := range c.Messages {
			if c.Messages[i].SenderID != actor.ID {
				c.Messages[i].Read = true
			}
		}
		return c
	})
	if !ok {
		return ErrChatNotFound
	}

	return nil
}

// CreateChat starts a conversation. The participant set is fixed at creation:
// at least two distinct ids, each resolving to an existing user.
func (s *service) CreateChat(req dto.CreateChatRequest) (models.Chat, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Chat{}, fmt.Errorf("invalid chat: %v: %w", err, apperr.ErrValidation)
	}

	seen := make(map[string]struct{}, len(req.ParticipantIDs))
	participants := make([]string, 0, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := s.store.Users.Get(id); !ok {
			return models.Chat{}, apperr.Validation("participant %q does not resolve", id)
		}
		participants = append(participants, id)
	}

	if len(participants) < 2 {
		return models.Chat{}, apperr.Validation("a chat needs at least 2 distinct participants")
	}

	chat := models.Chat{
		ID:             s.store.NewID(),
		ParticipantIDs: participants,
		Messages:       []models.Message{},
		CreatedAt:      s.now(),
	}
	s.store.Chats.Insert(chat)

	observability.Operations().WithLabelValues("messaging", "create_chat", "ok").Inc()
	s.logger.Info().Str("chat_id", chat.ID).Int("participants", len(participants)).Msg("chat created")

	return chat, nil
}
