//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatravel/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink delivers one event to one remote peer. Consume must never
// block longer than ctx allows; a full delivery buffer drops the event.
type EventSink[T any] interface {
	Consume(ctx context.Context, e T) error
}

// IRegistry tracks which live sessions are subscribed to which
// conversation. A session belongs to at most one conversation at a time.
type IRegistry interface {
	SinksFor(conversationID string) []EventSink[event.MessagePosted]
	Subscribe(sessionID, conversationID string, sink EventSink[event.MessagePosted])
	Unsubscribe(sessionID, conversationID string)
}
