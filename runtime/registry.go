package runtime

import (
	"chatravel/contract"
	"chatravel/domain/event"
	"sync"
)

type Set map[string]struct{}

// Registry maps conversations to the live push-capable sessions
// subscribed to them.
type Registry struct {
	mu       sync.RWMutex
	Sessions map[string]contract.EventSink[event.MessagePosted] // session -> sink
	Members  map[string]Set                                     // conversation -> sessions
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions: make(map[string]contract.EventSink[event.MessagePosted]),
		Members:  make(map[string]Set),
	}
}

// SinksFor retrieves all active delivery channels for a conversation.
// It returns a snapshot so the caller can iterate while sessions
// subscribe or disconnect concurrently; a session removed mid-broadcast
// simply gets (and ignores) one last push.
// Returns nil if the conversation has no subscribers.
func (r *Registry) SinksFor(conversationID string) []contract.EventSink[event.MessagePosted] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.Members[conversationID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink[event.MessagePosted]
	for sessionID := range members {
		if sink, exists := r.Sessions[sessionID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a session's delivery sink under a conversation.
// A session belongs to at most one conversation; switching is performed
// by the session's own goroutine as Unsubscribe-then-Subscribe, so the
// two calls never race for the same session.
func (r *Registry) Subscribe(sessionID, conversationID string, sink contract.EventSink[event.MessagePosted]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[sessionID] = sink

	if _, ok := r.Members[conversationID]; !ok {
		r.Members[conversationID] = make(Set)
	}
	r.Members[conversationID][sessionID] = struct{}{}
}

// Unsubscribe removes a session and its conversation membership.
// An emptied conversation entry is removed entirely so the registry
// stays bounded by the number of live sessions.
func (r *Registry) Unsubscribe(sessionID, conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.Sessions, sessionID)

	if members, ok := r.Members[conversationID]; ok {
		delete(members, sessionID)

		if len(members) == 0 {
			delete(r.Members, conversationID)
		}
	}
}
