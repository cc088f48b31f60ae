package web

import (
	"chatravel/contract"
	"chatravel/domain"
	"chatravel/domain/event"
	chaterrors "chatravel/errors"
	"chatravel/services"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocket frame vocabulary, discriminated by "type".
type wsEnvelope struct {
	Type string `json:"type"`
}

type WsSubscribe struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId"`
}

type WsSendMessage struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Text           string `json:"text"`
}

type WsNewMessage struct {
	Type    string         `json:"type"`
	Message domain.Message `json:"message"`
}

type WsAck struct {
	Type      string  `json:"type"`
	Ok        bool    `json:"ok"`
	MessageID *string `json:"messageId,omitempty"`
	Error     *string `json:"error,omitempty"`
}

type WSConfig struct {
	SendBufferSize int
	PingInterval   time.Duration
	WriteWait      time.Duration
}

type WSHandler struct {
	log         *slog.Logger
	chatService services.IChatService
	registry    contract.IRegistry
	cfg         WSConfig
}

func NewWSHandler(log *slog.Logger, chatService services.IChatService,
	registry contract.IRegistry, cfg WSConfig) *WSHandler {
	return &WSHandler{log: log, chatService: chatService, registry: registry, cfg: cfg}
}

// Handle upgrades the connection and runs the session. An optional
// conversationId query parameter auto-subscribes before the first frame.
func (h *WSHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	session := &wsSession{
		id:          uuid.NewString(),
		log:         h.log,
		conn:        conn,
		send:        make(chan []byte, h.cfg.SendBufferSize),
		done:        make(chan struct{}),
		registry:    h.registry,
		chatService: h.chatService,
		cfg:         h.cfg,
	}

	if conversationID := r.URL.Query().Get("conversationId"); conversationID != "" {
		session.conversationID = conversationID
		h.registry.Subscribe(session.id, conversationID, session)
	}

	go session.writePump()
	session.readPump(r.Context())
}

// wsSession is one WebSocket connection. conversationID is owned by the
// read goroutine: subscription switches happen there as a single
// remove-old/add-new step, so the registry never sees racing updates
// for the same session. The session is also the registry sink for its
// conversation.
type wsSession struct {
	id          string
	log         *slog.Logger
	conn        *websocket.Conn
	send        chan []byte
	done        chan struct{}
	registry    contract.IRegistry
	chatService services.IChatService
	cfg         WSConfig

	conversationID string
}

// Consume implements contract.EventSink. Called by the fan-out worker;
// a full send buffer drops the event rather than blocking the
// broadcast, the poll endpoints cover the gap.
func (s *wsSession) Consume(ctx context.Context, e event.MessagePosted) error {
	payload, err := json.Marshal(WsNewMessage{Type: "newMessage", Message: e.Message})
	if err != nil {
		return err
	}
	select {
	case s.send <- payload:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// readPump processes inbound frames until the peer disconnects, then
// performs the session's one mandatory cleanup: registry removal and
// write-pump shutdown. Ping frames are answered with pongs by the
// connection's default ping handler.
func (s *wsSession) readPump(ctx context.Context) {
	defer func() {
		if s.conversationID != "" {
			s.registry.Unsubscribe(s.id, s.conversationID)
		}
		close(s.done)
		_ = s.conn.Close()
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("WebSocket read failed", "session_id", s.id, "error", err)
			}
			return
		}

		var envelope wsEnvelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			s.enqueueAck(WsAck{Type: "ack", Ok: false, Error: ptr("invalid frame")})
			continue
		}

		switch envelope.Type {
		case "subscribe":
			var evt WsSubscribe
			if err := json.Unmarshal(data, &evt); err != nil || evt.ConversationID == "" {
				s.enqueueAck(WsAck{Type: "ack", Ok: false, Error: ptr("invalid subscribe frame")})
				continue
			}
			if s.conversationID != "" {
				s.registry.Unsubscribe(s.id, s.conversationID)
			}
			s.conversationID = evt.ConversationID
			s.registry.Subscribe(s.id, evt.ConversationID, s)
			s.enqueueAck(WsAck{Type: "ack", Ok: true})

		case "sendMessage":
			var evt WsSendMessage
			if err := json.Unmarshal(data, &evt); err != nil {
				s.enqueueAck(WsAck{Type: "ack", Ok: false, Error: ptr("invalid sendMessage frame")})
				continue
			}
			saved, err := s.chatService.PostMessage(ctx, domain.PostMessageCommand{
				ConversationID: evt.ConversationID,
				SenderID:       evt.SenderID,
				Text:           evt.Text,
			})
			if err == chaterrors.ErrBlankText {
				s.enqueueAck(WsAck{Type: "ack", Ok: false, Error: ptr(err.Error())})
				continue
			}
			if err != nil {
				s.log.Error("Failed to post message from WebSocket", "session_id", s.id, "error", err)
				s.enqueueAck(WsAck{Type: "ack", Ok: false, Error: ptr("internal error")})
				continue
			}
			s.enqueueAck(WsAck{Type: "ack", Ok: true, MessageID: &saved.MessageID})

		default:
			s.enqueueAck(WsAck{Type: "ack", Ok: false, Error: ptr(fmt.Sprintf("unsupported event: %s", envelope.Type))})
		}
	}
}

// writePump owns all writes to the connection, keeping frame writes and
// pings serialized on a single goroutine.
func (s *wsSession) writePump() {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-s.done:
			return
		case payload := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *wsSession) enqueueAck(ack WsAck) {
	payload, err := json.Marshal(ack)
	if err != nil {
		return
	}
	select {
	case s.send <- payload:
	default:
		s.log.Debug("WebSocket send buffer full, ack dropped", "session_id", s.id)
	}
}

func ptr(s string) *string {
	return &s
}
