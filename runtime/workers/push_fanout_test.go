package workers

import (
	"chatravel/domain"
	"chatravel/domain/event"
	"chatravel/runtime"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu       sync.Mutex
	received []event.MessagePosted
	fail     bool
}

func (s *recordingSink) Consume(ctx context.Context, e event.MessagePosted) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return fmt.Errorf("connection closed")
	}
	s.received = append(s.received, e)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func messagePosted(conversationID string) event.MessagePosted {
	return event.MessagePosted{Message: domain.Message{
		MessageID:      "m1",
		ConversationID: conversationID,
		SenderID:       "alice",
		Text:           "hello",
		CreatedAt:      time.Now().UTC(),
	}}
}

func TestPushFanout_DeliversToConversationSinks(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	bus := runtime.NewBus[event.MessagePosted](log, 8, 0)
	registry := runtime.NewRegistry()

	sink := &recordingSink{}
	other := &recordingSink{}
	registry.Subscribe("s1", "c1", sink)
	registry.Subscribe("s2", "c2", other)

	worker := NewPushFanout(log, bus, registry)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// Give the worker time to subscribe before publishing
	time.Sleep(20 * time.Millisecond)

	// When a message for c1 is published
	bus.Publish(messagePosted("c1"))

	// Then only c1's sink receives it
	req.Eventually(func() bool { return sink.count() == 1 }, time.Second, 10*time.Millisecond)
	req.Equal(0, other.count())
}

func TestPushFanout_FailingSinkDoesNotStopSiblings(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	bus := runtime.NewBus[event.MessagePosted](log, 8, 0)
	registry := runtime.NewRegistry()

	// Given a broken sink and a healthy sibling in the same conversation
	broken := &recordingSink{fail: true}
	healthy := &recordingSink{}
	registry.Subscribe("s1", "c1", broken)
	registry.Subscribe("s2", "c1", healthy)

	worker := NewPushFanout(log, bus, registry)

	// When the event is fanned out
	worker.Fanout(context.Background(), messagePosted("c1"))

	// Then the healthy sibling still got the push
	req.Equal(1, healthy.count())
	// And the broken sink stays registered: its own close handler owns removal
	req.Len(registry.SinksFor("c1"), 2)
}

func TestPushFanout_StopsOnContextDone(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	bus := runtime.NewBus[event.MessagePosted](log, 8, 0)
	worker := NewPushFanout(log, bus, runtime.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("worker did not stop on context cancellation")
	}
	// The worker released its bus subscription on exit
	req.Eventually(func() bool { return bus.SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)
}
