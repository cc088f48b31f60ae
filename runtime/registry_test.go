package runtime

import (
	"chatravel/domain/event"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeSink struct{}

func (s fakeSink) Consume(ctx context.Context, e event.MessagePosted) error {
	return nil
}

func TestRegistry_Subscribe_One_Conversation_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	conversationID := uuid.NewString()
	sink := fakeSink{}

	// Given no session is connected
	// And no conversation exists
	req.Empty(registry.Sessions)
	req.Empty(registry.Members)

	// When a session subscribes a conversation
	registry.Subscribe(sessionID, conversationID, sink)

	// Then
	req.Len(registry.Sessions, 1)
	req.Equal(sink, registry.Sessions[sessionID])

	req.Len(registry.Members, 1)
	req.Contains(registry.Members[conversationID], sessionID)

	req.Len(registry.SinksFor(conversationID), 1)
}

func TestRegistry_Subscribe_One_Conversation_Multiple_Sessions(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID1 := uuid.NewString()
	sessionID2 := uuid.NewString()
	conversationID := uuid.NewString()

	// When sessions subscribe a conversation
	registry.Subscribe(sessionID1, conversationID, fakeSink{})
	registry.Subscribe(sessionID2, conversationID, fakeSink{})

	// Then
	req.Len(registry.Sessions, 2)
	req.Len(registry.Members[conversationID], 2)
	req.Len(registry.SinksFor(conversationID), 2)
}

func TestRegistry_Unsubscribe_Removes_Empty_Conversation(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	conversationID := uuid.NewString()

	// Given a session subscribed to a conversation
	registry.Subscribe(sessionID, conversationID, fakeSink{})

	// When the session unsubscribes
	registry.Unsubscribe(sessionID, conversationID)

	// Then no session is left
	// And the conversation entry is pruned to bound memory
	req.Empty(registry.Sessions)
	req.Empty(registry.Members)
	req.Nil(registry.SinksFor(conversationID))
}

func TestRegistry_Switch_Conversation(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	oldConversation := uuid.NewString()
	newConversation := uuid.NewString()
	sink := fakeSink{}

	// Given a session subscribed to a conversation
	registry.Subscribe(sessionID, oldConversation, sink)

	// When the session switches: remove-old then add-new
	registry.Unsubscribe(sessionID, oldConversation)
	registry.Subscribe(sessionID, newConversation, sink)

	// Then the session belongs to exactly one conversation
	req.Nil(registry.SinksFor(oldConversation))
	req.Len(registry.SinksFor(newConversation), 1)
	req.Len(registry.Sessions, 1)
}

func TestRegistry_SinksFor_Unknown_Conversation(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.Nil(registry.SinksFor(uuid.NewString()))
}
