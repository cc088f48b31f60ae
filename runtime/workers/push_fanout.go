package workers

import (
	"chatravel/contract"
	"chatravel/domain/event"
	"chatravel/runtime"
	"context"
	"log/slog"
)

// PushFanout subscribes once to the notification bus for the process
// lifetime and pushes every published message to the sessions currently
// subscribed to that conversation.
//
// Delivery is best-effort with no guarantees regarding ordering,
// durability, or retries. A failing sink is skipped, never removed here:
// the session's own close handler owns its registry entry, which keeps
// this loop free of concurrent-modification hazards.
type PushFanout struct {
	log      *slog.Logger
	bus      *runtime.Bus[event.MessagePosted]
	registry contract.IRegistry
}

func NewPushFanout(log *slog.Logger, bus *runtime.Bus[event.MessagePosted], registry contract.IRegistry) *PushFanout {
	return &PushFanout{log: log, bus: bus, registry: registry}
}

func (w *PushFanout) Run(ctx context.Context) error {
	events, cancel := w.bus.Subscribe()
	defer cancel()

	for {
		select {
		case evt := <-events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping push fanout")
			return nil
		}
	}
}

// Fanout delivers one event to every sink of its conversation. A push
// failure is logged per-sink and does not stop delivery to siblings.
func (w *PushFanout) Fanout(ctx context.Context, evt event.MessagePosted) {
	sinks := w.registry.SinksFor(evt.ConversationID())
	for _, sink := range sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.log.Warn("Failed to push message to session",
				"conversation_id", evt.ConversationID(),
				"message_id", evt.Message.MessageID,
				"error", err)
		}
	}
}
