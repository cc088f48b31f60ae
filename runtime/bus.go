// Package runtime owns the in-process delivery machinery: the
// notification buses, the conversation session registry, and the
// supervised workers that connect them. It contains no business rules.
package runtime

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Bus is a process-wide, in-memory publish/subscribe channel. It is
// explicitly constructed and injected, never a package-level global, so
// tests can run isolated instances.
//
// Publish is non-blocking: a subscriber whose delivery buffer is full
// loses that event. The bus is a hint channel, not a data-of-record
// channel; consumers re-query the store on notify.
//
// A replay depth > 0 hands the most recent events to new subscribers,
// which the interest-match side bus uses so late-arriving SSE clients
// see the latest snapshot.
//
// Bus is safe for concurrent use by multiple goroutines.
type Bus[T any] struct {
	mu          sync.RWMutex
	log         *slog.Logger
	subscribers map[string]chan T
	bufferSize  int
	replay      int
	history     []T
}

func NewBus[T any](log *slog.Logger, bufferSize, replay int) *Bus[T] {
	if bufferSize < replay {
		bufferSize = replay
	}
	return &Bus[T]{
		log:         log,
		subscribers: make(map[string]chan T),
		bufferSize:  bufferSize,
		replay:      replay,
	}
}

// Subscribe returns an independent receive channel and a cancel func.
// Cancel is idempotent and must be called on every exit path of the
// consumer; an abandoned handle only wastes its buffer until cancelled.
func (b *Bus[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, b.bufferSize)

	b.mu.Lock()
	for _, evt := range b.history {
		ch <- evt
	}
	id := uuid.NewString()
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish fans the event out to every current subscriber. It never
// blocks and never fails: a full buffer drops the event for that one
// subscriber only.
func (b *Bus[T]) Publish(evt T) {
	b.mu.Lock()
	if b.replay > 0 {
		b.history = append(b.history, evt)
		if len(b.history) > b.replay {
			b.history = b.history[len(b.history)-b.replay:]
		}
	}
	channels := make(map[string]chan T, len(b.subscribers))
	for id, ch := range b.subscribers {
		channels[id] = ch
	}
	b.mu.Unlock()

	for id, ch := range channels {
		select {
		case ch <- evt:
		default:
			b.log.Debug("Bus subscriber buffer full, event dropped", "subscriber", id)
		}
	}
}

// SubscriberCount is used by tests and the health endpoint.
func (b *Bus[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
