// Package web exposes the HTTP transports: short/long polling, the
// message and user CRUD routes, the WebSocket push endpoint, and the
// interest-match SSE stream.
package web

import (
	"chatravel/domain"
	chaterrors "chatravel/errors"
	"chatravel/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	pollIntervalSeconds = 5
	longPollDefault     = 10 * time.Second
	longPollMin         = 5 * time.Second
	longPollMax         = 60 * time.Second
)

type Handler struct {
	log         *slog.Logger
	chatService services.IChatService
	userService services.IUserService
	validate    *validator.Validate
	now         func() time.Time
}

func NewHandler(log *slog.Logger, chatService services.IChatService, userService services.IUserService) *Handler {
	return &Handler{
		log:         log,
		chatService: chatService,
		userService: userService,
		validate:    validator.New(),
		now:         time.Now,
	}
}

// Routes registers every HTTP endpoint on a fresh mux.
func (h *Handler) Routes(health http.HandlerFunc, ws *WSHandler, sse *SSEHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health)
	mux.HandleFunc("POST /user", h.createUser)
	mux.HandleFunc("PUT /user", h.updateUser)
	mux.HandleFunc("GET /user", h.getUsers)
	mux.HandleFunc("POST /conversation", h.createConversation)
	mux.HandleFunc("GET /conversation", h.getConversations)
	mux.HandleFunc("POST /message", h.createMessage)
	mux.HandleFunc("GET /message", h.getMessages)
	mux.HandleFunc("GET /message/long", h.longPollMessages)
	mux.HandleFunc("GET /ws/messages", ws.Handle)
	mux.HandleFunc("GET /sse/interest-matches", sse.Handle)
	return mux
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var body CreateOrUpdateUserRequest
	if !h.decode(w, r, &body) {
		return
	}
	user, err := h.userService.Register(body.UserID, body.Name, body.Interests)
	if err == chaterrors.ErrBlankName {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, "register user", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var body CreateOrUpdateUserRequest
	if !h.decode(w, r, &body) {
		return
	}
	user, err := h.userService.UpdateInterests(body.UserID, body.Name, body.Interests)
	if err == chaterrors.ErrBlankName {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, "update user", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	interest := r.URL.Query().Get("interest")

	var users []domain.User
	var err error
	if interest == "" {
		users, err = h.userService.GetUsers()
	} else {
		users, err = h.userService.GetUsersByInterest(interest)
	}
	if err != nil {
		h.serverError(w, "list users", err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, UsersResponse{Users: users})
}

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	var body CreateConversationRequest
	if !h.decode(w, r, &body) {
		return
	}
	if body.Interest == "" {
		writeError(w, http.StatusBadRequest, chaterrors.ErrBlankInterest.Error())
		return
	}
	interest, ok := domain.ParseInterest(body.Interest)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown interest %q", body.Interest))
		return
	}
	for _, userID := range []string{body.FirstUserID, body.SecondUserID} {
		exists, err := h.userService.UserExists(userID)
		if err != nil {
			h.serverError(w, "check user", err)
			return
		}
		if !exists {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("user %s not existing", userID))
			return
		}
	}
	conversation, err := h.chatService.StartConversation(body.FirstUserID, body.SecondUserID, interest)
	if err != nil {
		h.serverError(w, "start conversation", err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateConversationResponse{ConversationID: conversation.ConversationID})
}

func (h *Handler) getConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId missing")
		return
	}
	conversations, err := h.chatService.GetConversations(userID)
	if err != nil {
		h.serverError(w, "list conversations", err)
		return
	}
	if conversations == nil {
		conversations = []domain.Conversation{}
	}
	writeJSON(w, http.StatusOK, ConversationsResponse{Conversations: conversations})
}

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	var body CreateMessageRequest
	if !h.decode(w, r, &body) {
		return
	}
	message, err := h.chatService.PostMessage(r.Context(), domain.PostMessageCommand{
		ConversationID: body.ConversationID,
		SenderID:       body.SenderID,
		Text:           body.Text,
	})
	if err == chaterrors.ErrBlankText {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, "post message", err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateMessageResponse{MessageID: message.MessageID})
}

// getMessages is the short-poll read. Response headers suggest a poll
// interval and keep intermediaries from caching dynamic content.
func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		writeError(w, http.StatusBadRequest, chaterrors.ErrConversationMissing.Error())
		return
	}
	since := parseSince(r.URL.Query().Get("since"))

	w.Header().Set("X-Poll-Interval-Seconds", strconv.Itoa(pollIntervalSeconds))
	w.Header().Set("Cache-Control", "no-store")

	messages, err := h.chatService.GetMessages(conversationID, since)
	if err != nil {
		h.serverError(w, "get messages", err)
		return
	}
	h.respondMessages(w, messages)
}

// longPollMessages blocks until a matching message arrives or the
// timeout elapses; timeout is a normal outcome answered with an empty
// list. The wait is bounded by the request's own cancellation.
func (h *Handler) longPollMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		writeError(w, http.StatusBadRequest, chaterrors.ErrConversationMissing.Error())
		return
	}
	since := parseSince(r.URL.Query().Get("since"))
	timeout := longPollTimeout(r.URL.Query().Get("timeoutSec"))

	w.Header().Set("X-Long-Poll-Timeout-Seconds", strconv.Itoa(int(timeout.Seconds())))
	w.Header().Set("Cache-Control", "no-store")

	messages, err := h.chatService.WaitForMessages(r.Context(), conversationID, since, timeout)
	if r.Context().Err() != nil {
		// Client went away; nothing left to answer.
		return
	}
	if err != nil {
		h.serverError(w, "long poll", err)
		return
	}
	h.respondMessages(w, messages)
}

func (h *Handler) respondMessages(w http.ResponseWriter, messages []domain.Message) {
	if messages == nil {
		messages = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, MessagesResponse{
		Messages:   messages,
		ServerTime: h.now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, body any) bool {
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (h *Handler) serverError(w http.ResponseWriter, action string, err error) {
	h.log.Error("Request failed", "action", action, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// longPollTimeout clamps the requested wait to 5-60s, defaulting to 10s.
func longPollTimeout(value string) time.Duration {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return longPollDefault
	}
	timeout := time.Duration(seconds) * time.Second
	if timeout < longPollMin {
		return longPollMin
	}
	if timeout > longPollMax {
		return longPollMax
	}
	return timeout
}

// parseSince treats an absent or unparseable timestamp as "no lower
// bound", mirroring the polling API's lenient contract.
func parseSince(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &parsed
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
