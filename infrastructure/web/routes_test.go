package web

import (
	"bytes"
	"chatravel/domain"
	"chatravel/domain/event"
	"chatravel/internal"
	"chatravel/repositories"
	"chatravel/runtime"
	"chatravel/runtime/workers"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chatravel/services"
)

type webFixture struct {
	server      *httptest.Server
	chatService *services.ChatService
	userService *services.UserService
	registry    *runtime.Registry
	matchBus    *runtime.Bus[event.DiscoverableUser]
}

// newWebFixture wires the full HTTP surface against real components:
// Badger on a temp dir, live buses, and the push fan-out worker.
func newWebFixture(t *testing.T) *webFixture {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	messageBus := runtime.NewBus[event.MessagePosted](log, 64, 0)
	matchBus := runtime.NewBus[event.DiscoverableUser](log, 64, 1)
	registry := runtime.NewRegistry()

	chatService := services.NewChatService(log, repositories.NewMessageRepository(db, log), messageBus)
	userService := services.NewUserService(log, repositories.NewUserRepository(db, log), matchBus)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	worker := workers.NewPushFanout(log, messageBus, registry)
	go func() { _ = worker.Run(ctx) }()

	handler := NewHandler(log, chatService, userService)
	wsHandler := NewWSHandler(log, chatService, registry, WSConfig{
		SendBufferSize: 16,
		PingInterval:   30 * time.Second,
		WriteWait:      5 * time.Second,
	})
	sseHandler := NewSSEHandler(log, userService, matchBus, 50*time.Millisecond)
	mux := handler.Routes(internal.HealthHandler(log), wsHandler, sseHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &webFixture{
		server:      server,
		chatService: chatService,
		userService: userService,
		registry:    registry,
		matchBus:    matchBus,
	}
}

func (f *webFixture) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(f.server.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRoutes_Health(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	resp, err := http.Get(fixture.server.URL + "/health")
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	req.Equal("ok", body["status"])
}

func TestRoutes_CreateUser(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	// Blank name is a validation error
	resp := fixture.postJSON(t, "/user", CreateOrUpdateUserRequest{UserID: "u1", Name: " "})
	req.Equal(http.StatusBadRequest, resp.StatusCode)
	req.Equal("user name must not be blank", decodeBody[ErrorResponse](t, resp).Error)

	// Valid registration is Created
	resp = fixture.postJSON(t, "/user", CreateOrUpdateUserRequest{
		UserID: "u1", Name: "Alice", Interests: []string{"FOOD"},
	})
	req.Equal(http.StatusCreated, resp.StatusCode)
}

func TestRoutes_CreateConversation_RequiresKnownUsers(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	_, err := fixture.userService.Register("u1", "Alice", []string{"FOOD"})
	req.NoError(err)

	// Unknown second user
	resp := fixture.postJSON(t, "/conversation", CreateConversationRequest{
		FirstUserID: "u1", SecondUserID: "ghost", Interest: "FOOD",
	})
	req.Equal(http.StatusBadRequest, resp.StatusCode)
	req.Equal("user ghost not existing", decodeBody[ErrorResponse](t, resp).Error)

	// Both users known
	_, err = fixture.userService.Register("u2", "Bob", []string{"FOOD"})
	req.NoError(err)
	resp = fixture.postJSON(t, "/conversation", CreateConversationRequest{
		FirstUserID: "u1", SecondUserID: "u2", Interest: "FOOD",
	})
	req.Equal(http.StatusCreated, resp.StatusCode)
	req.NotEmpty(decodeBody[CreateConversationResponse](t, resp).ConversationID)
}

func TestRoutes_CreateMessage(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	// Blank text
	resp := fixture.postJSON(t, "/message", CreateMessageRequest{
		ConversationID: "c1", SenderID: "u1", Text: "  ",
	})
	req.Equal(http.StatusBadRequest, resp.StatusCode)
	req.Equal("text must not be blank", decodeBody[ErrorResponse](t, resp).Error)

	// Valid message
	resp = fixture.postJSON(t, "/message", CreateMessageRequest{
		ConversationID: "c1", SenderID: "u1", Text: "hello",
	})
	req.Equal(http.StatusCreated, resp.StatusCode)
	req.NotEmpty(decodeBody[CreateMessageResponse](t, resp).MessageID)
}

func TestRoutes_ShortPoll(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	// Missing conversationId
	resp, err := http.Get(fixture.server.URL + "/message")
	req.NoError(err)
	req.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// With a stored message
	_, err = fixture.chatService.PostMessage(context.Background(), postCommand("c1", "hello"))
	req.NoError(err)

	resp, err = http.Get(fixture.server.URL + "/message?conversationId=c1")
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("5", resp.Header.Get("X-Poll-Interval-Seconds"))
	req.Equal("no-store", resp.Header.Get("Cache-Control"))

	body := decodeBody[MessagesResponse](t, resp)
	req.Len(body.Messages, 1)
	req.NotEmpty(body.ServerTime)
}

func TestRoutes_LongPoll_FastPath(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	_, err := fixture.chatService.PostMessage(context.Background(), postCommand("c1", "already there"))
	req.NoError(err)

	// timeoutSec below the clamp floor is raised to 5s, but the fast
	// path answers immediately
	start := time.Now()
	resp, err := http.Get(fixture.server.URL + "/message/long?conversationId=c1&timeoutSec=1")
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("5", resp.Header.Get("X-Long-Poll-Timeout-Seconds"))
	req.Less(time.Since(start), time.Second)

	body := decodeBody[MessagesResponse](t, resp)
	req.Len(body.Messages, 1)
}

func TestRoutes_LongPoll_ArrivalDuringWait(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	go func() {
		time.Sleep(150 * time.Millisecond)
		_, _ = fixture.chatService.PostMessage(context.Background(), postCommand("c1", "fresh"))
	}()

	start := time.Now()
	resp, err := http.Get(fixture.server.URL + "/message/long?conversationId=c1&timeoutSec=10")
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Less(time.Since(start), 2*time.Second)

	body := decodeBody[MessagesResponse](t, resp)
	req.Len(body.Messages, 1)
	req.Equal("fresh", body.Messages[0].Text)
}

func postCommand(conversationID, text string) domain.PostMessageCommand {
	return domain.PostMessageCommand{ConversationID: conversationID, SenderID: "tester", Text: text}
}
