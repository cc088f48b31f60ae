package services

import (
	"chatravel/domain"
	"chatravel/domain/event"
	chaterrors "chatravel/errors"
	"chatravel/repositories"
	"chatravel/runtime"
	"context"
	"log/slog"
	"strings"
	"time"
)

type IChatService interface {
	PostMessage(ctx context.Context, cmd domain.PostMessageCommand) (domain.Message, error)
	GetMessages(conversationID string, since *time.Time) ([]domain.Message, error)
	WaitForMessages(ctx context.Context, conversationID string, since *time.Time, timeout time.Duration) ([]domain.Message, error)
	StartConversation(firstUserID, secondUserID string, interest domain.Interest) (domain.Conversation, error)
	GetConversations(userID string) ([]domain.Conversation, error)
}

// ChatService owns the append-then-publish sequence: the store is always
// written first, then the bus is notified. The bus carries the persisted
// message only as a hint; every read path re-derives from the store.
type ChatService struct {
	log      *slog.Logger
	messages repositories.IMessageRepository
	bus      *runtime.Bus[event.MessagePosted]
	now      func() time.Time
}

func NewChatService(log *slog.Logger, messages repositories.IMessageRepository,
	bus *runtime.Bus[event.MessagePosted]) *ChatService {
	return &ChatService{log: log, messages: messages, bus: bus, now: time.Now}
}

// PostMessage validates, appends to the store, and publishes the
// persisted message. Blank text is a validation error: nothing is stored
// and nothing is published.
func (s *ChatService) PostMessage(_ context.Context, cmd domain.PostMessageCommand) (domain.Message, error) {
	if strings.TrimSpace(cmd.Text) == "" {
		return domain.Message{}, chaterrors.ErrBlankText
	}
	message, err := s.messages.AddMessage(cmd.ConversationID, cmd.SenderID, cmd.Text, s.now())
	if err != nil {
		return domain.Message{}, err
	}
	s.bus.Publish(event.MessagePosted{Message: message})
	return message, nil
}

func (s *ChatService) GetMessages(conversationID string, since *time.Time) ([]domain.Message, error) {
	return s.messages.GetMessages(conversationID, since)
}

// WaitForMessages implements the long-poll wait.
//
// Fast path: if the store already holds newer messages they are returned
// immediately, without touching the bus. Otherwise the call subscribes
// to the bus, re-checks the store once (a message appended between the
// first query and the subscription would otherwise go unseen until
// timeout), then waits for the first matching event. On a match the
// store is re-queried; the bus payload is never returned directly.
//
// Timeout returns an empty, non-nil slice: "no new data yet" is a normal
// outcome, not an error. Cancellation via ctx releases the subscription
// like every other exit path.
func (s *ChatService) WaitForMessages(ctx context.Context, conversationID string, since *time.Time, timeout time.Duration) ([]domain.Message, error) {
	initial, err := s.messages.GetMessages(conversationID, since)
	if err != nil {
		return nil, err
	}
	if len(initial) > 0 {
		return initial, nil
	}

	events, cancel := s.bus.Subscribe()
	defer cancel()

	recheck, err := s.messages.GetMessages(conversationID, since)
	if err != nil {
		return nil, err
	}
	if len(recheck) > 0 {
		return recheck, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return []domain.Message{}, nil
		case evt := <-events:
			if evt.ConversationID() != conversationID {
				continue
			}
			if since != nil && !evt.Message.CreatedAt.After(*since) {
				continue
			}
			return s.messages.GetMessages(conversationID, since)
		}
	}
}

func (s *ChatService) StartConversation(firstUserID, secondUserID string, interest domain.Interest) (domain.Conversation, error) {
	return s.messages.StartConversation(firstUserID, secondUserID, interest)
}

func (s *ChatService) GetConversations(userID string) ([]domain.Conversation, error) {
	return s.messages.GetConversations(userID)
}
