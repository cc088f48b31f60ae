package server

import (
	"chatravel/domain"
	"chatravel/domain/event"
	chaterrors "chatravel/errors"
	"chatravel/runtime"
	"chatravel/services"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	pb "chatravel/proto/chat"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	log               *slog.Logger
	chatService       services.IChatService
	bus               *runtime.Bus[event.MessagePosted]
	heartbeatInterval time.Duration
}

func NewChatServer(log *slog.Logger, chatService services.IChatService,
	bus *runtime.Bus[event.MessagePosted], heartbeatInterval time.Duration) *ChatServer {
	return &ChatServer{
		log:               log,
		chatService:       chatService,
		bus:               bus,
		heartbeatInterval: heartbeatInterval,
	}
}

// ChatStream runs the bidirectional hello/backfill/send/ack/heartbeat
// protocol. Three goroutines live for the stream's duration — inbound
// event loop, heartbeat emitter, and bus watcher — joined under one
// errgroup whose context derives from the stream's own. When any of
// them exits (client disconnect, transport error, cancellation) the
// others are torn down with it and no further events are emitted.
func (s *ChatServer) ChatStream(stream pb.ChatService_ChatStreamServer) error {
	session := &chatStream{
		log:         s.log,
		chatService: s.chatService,
		stream:      stream,
	}

	g, ctx := errgroup.WithContext(stream.Context())
	g.Go(func() error { return session.inboundLoop() })
	g.Go(func() error { return session.heartbeatLoop(ctx, s.heartbeatInterval) })
	g.Go(func() error { return session.busWatchLoop(ctx, s.bus) })

	err := g.Wait()
	if err == io.EOF || err == context.Canceled {
		return nil
	}
	return err
}

// chatStream is the per-stream state machine. conversationID and
// lastSeen are written by the inbound loop and read by the bus watcher;
// sends are serialized because a gRPC stream allows only one writer.
type chatStream struct {
	log         *slog.Logger
	chatService services.IChatService
	stream      pb.ChatService_ChatStreamServer

	sendMu sync.Mutex
	mu     sync.Mutex
	// Uninitialized until the first Hello sets a conversation.
	conversationID string
	lastSeen       *time.Time
}

func (c *chatStream) send(evt *pb.ChatServerEvent) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.stream.Send(evt)
}

// inboundLoop consumes client events until the stream closes. Its
// io.EOF return cancels the errgroup context, which stops the heartbeat
// and bus-watch loops.
func (c *chatStream) inboundLoop() error {
	for {
		in, err := c.stream.Recv()
		if err != nil {
			return err
		}

		switch kind := in.Kind.(type) {
		case *pb.ChatClientEvent_Hello:
			if err := c.handleHello(kind.Hello); err != nil {
				return err
			}
		case *pb.ChatClientEvent_Send:
			if err := c.handleSend(kind.Send); err != nil {
				return err
			}
		case *pb.ChatClientEvent_Ack:
			// Flow confirmation only.
			if err := c.send(ackEvent(&pb.ServerAck{Ok: true})); err != nil {
				return err
			}
		default:
			// Protocol-level error, not a stream-level failure.
			if err := c.send(ackEvent(&pb.ServerAck{Ok: false, Error: "unknown event"})); err != nil {
				return err
			}
		}
	}
}

// handleHello records the conversation and the client's last-seen
// marker, then emits the catch-up set as one Backfill. Hello is
// idempotent: a re-send simply recomputes the backfill.
func (c *chatStream) handleHello(hello *pb.ClientHello) error {
	since := parseISO(hello.LastSeenMessageIso)

	c.mu.Lock()
	c.conversationID = hello.ConversationId
	c.lastSeen = since
	c.mu.Unlock()

	messages, err := c.chatService.GetMessages(hello.ConversationId, since)
	if err != nil {
		return err
	}
	return c.sendBackfill(messages)
}

// handleSend validates and persists, acking with the new identifier.
// Blank text gets a negative ack; nothing is stored or published.
func (c *chatStream) handleSend(send *pb.ClientSend) error {
	saved, err := c.chatService.PostMessage(c.stream.Context(), domain.PostMessageCommand{
		ConversationID: send.ConversationId,
		SenderID:       send.UserId,
		Text:           send.Text,
	})
	if err == chaterrors.ErrBlankText {
		return c.send(ackEvent(&pb.ServerAck{Ok: false, Error: err.Error()}))
	}
	if err != nil {
		return err
	}
	return c.send(ackEvent(&pb.ServerAck{Ok: true, MessageId: saved.MessageID}))
}

func (c *chatStream) heartbeatLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			evt := &pb.ChatServerEvent{Kind: &pb.ChatServerEvent_Heartbeat{
				Heartbeat: &pb.ServerHeartbeat{ServerTimeIso: time.Now().UTC().Format(time.RFC3339Nano)},
			}}
			if err := c.send(evt); err != nil {
				return err
			}
		}
	}
}

// busWatchLoop turns notifications for the hello'd conversation into
// incremental Backfill frames. The event payload is only a hint: the
// store is re-queried, and lastSeen advances to the newest delivered
// message so a dropped bus event is repaired by the next one.
func (c *chatStream) busWatchLoop(ctx context.Context, bus *runtime.Bus[event.MessagePosted]) error {
	events, cancel := bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt := <-events:
			c.mu.Lock()
			conversationID, since := c.conversationID, c.lastSeen
			c.mu.Unlock()

			if conversationID == "" || evt.ConversationID() != conversationID {
				continue
			}
			if since != nil && !evt.Message.CreatedAt.After(*since) {
				continue
			}

			messages, err := c.chatService.GetMessages(conversationID, since)
			if err != nil {
				c.log.Warn("Failed to load messages after notify",
					"conversation_id", conversationID, "error", err)
				continue
			}
			if len(messages) == 0 {
				continue
			}
			if err := c.sendBackfill(messages); err != nil {
				return err
			}

			newest := messages[len(messages)-1].CreatedAt
			c.mu.Lock()
			c.lastSeen = &newest
			c.mu.Unlock()
		}
	}
}

func (c *chatStream) sendBackfill(messages []domain.Message) error {
	backfill := &pb.ServerBackfill{
		Messages: lo.Map(messages, func(item domain.Message, _ int) *pb.Message {
			return &pb.Message{
				MessageId:      item.MessageID,
				ConversationId: item.ConversationID,
				SenderId:       item.SenderID,
				Text:           item.Text,
				CreatedAtIso:   item.CreatedAtISO(),
			}
		}),
	}
	return c.send(&pb.ChatServerEvent{Kind: &pb.ChatServerEvent_Backfill{Backfill: backfill}})
}

func ackEvent(ack *pb.ServerAck) *pb.ChatServerEvent {
	return &pb.ChatServerEvent{Kind: &pb.ChatServerEvent_Ack{Ack: ack}}
}

func parseISO(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &parsed
}
