package web

import (
	"chatravel/domain"
	"chatravel/domain/event"
	"chatravel/runtime"
	"chatravel/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type SSEHandler struct {
	log               *slog.Logger
	userService       services.IUserService
	matchBus          *runtime.Bus[event.DiscoverableUser]
	heartbeatInterval time.Duration
}

func NewSSEHandler(log *slog.Logger, userService services.IUserService,
	matchBus *runtime.Bus[event.DiscoverableUser], heartbeatInterval time.Duration) *SSEHandler {
	return &SSEHandler{
		log:               log,
		userService:       userService,
		matchBus:          matchBus,
		heartbeatInterval: heartbeatInterval,
	}
}

type matchPayload struct {
	UserID    string            `json:"userId"`
	Name      string            `json:"name"`
	Interests []domain.Interest `json:"interests"`
}

type connectedPayload struct {
	Time      string            `json:"time"`
	Interests []domain.Interest `json:"interests"`
}

// Handle streams interest matches to one client. Events are filtered to
// other users sharing at least one interest with the caller. Comment
// lines keep intermediary proxies from timing the connection out. The
// bus subscription and the heartbeat tick both end with the request
// context.
func (h *SSEHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId missing")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// A user unknown to the store gets a stream with no matches rather
	// than an error.
	myInterests, err := h.userService.GetUserInterests(userID)
	if err != nil {
		myInterests = nil
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := h.matchBus.Subscribe()
	defer cancel()

	connected, _ := json.Marshal(connectedPayload{
		Time:      time.Now().UTC().Format(time.RFC3339Nano),
		Interests: myInterests,
	})
	writeSSEEvent(w, "connected", "", connected)
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// SSE comment line; most proxies accept this as keepalive.
			fmt.Fprintf(w, ": keep-alive %s\n\n", time.Now().UTC().Format(time.RFC3339Nano))
			flusher.Flush()
		case evt := <-events:
			if evt.UserID == userID {
				continue
			}
			if !overlaps(evt.Interests, myInterests) {
				continue
			}
			payload, err := json.Marshal(matchPayload{
				UserID:    evt.UserID,
				Name:      evt.Name,
				Interests: evt.Interests,
			})
			if err != nil {
				continue
			}
			writeSSEEvent(w, "match", evt.UserID, payload)
			flusher.Flush()
		}
	}
}

func overlaps(a, b []domain.Interest) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func writeSSEEvent(w http.ResponseWriter, eventName, id string, data []byte) {
	if eventName != "" {
		fmt.Fprintf(w, "event: %s\n", eventName)
	}
	if id != "" {
		fmt.Fprintf(w, "id: %s\n", id)
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}
