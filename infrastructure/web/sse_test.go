package web

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// sseClient reads one event stream line by line.
type sseClient struct {
	resp    *http.Response
	scanner *bufio.Scanner
}

func dialSSE(t *testing.T, fixture *webFixture, ctx context.Context, userID string) *sseClient {
	t.Helper()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fixture.server.URL+"/sse/interest-matches?userId="+userID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return &sseClient{resp: resp, scanner: bufio.NewScanner(resp.Body)}
}

// nextEvent skips comment heartbeats and returns the next named event
// with its data line.
func (c *sseClient) nextEvent(t *testing.T) (string, string) {
	t.Helper()
	var eventName string
	for c.scanner.Scan() {
		line := c.scanner.Text()
		switch {
		case strings.HasPrefix(line, ":"):
			continue
		case strings.HasPrefix(line, "event: "):
			eventName = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			return eventName, strings.TrimPrefix(line, "data: ")
		}
	}
	t.Fatal("stream ended before an event arrived")
	return "", ""
}

func TestSSE_RequiresUserID(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	resp, err := http.Get(fixture.server.URL + "/sse/interest-matches")
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestSSE_ConnectedThenMatch(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	_, err := fixture.userService.Register("u1", "Alice", []string{"FOOD", "TREKKING"})
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := dialSSE(t, fixture, ctx, "u1")
	req.Equal("text/event-stream", client.resp.Header.Get("Content-Type"))

	// The stream opens with a connected event
	name, _ := client.nextEvent(t)
	req.Equal("connected", name)

	// A user with an overlapping interest registers
	_, err = fixture.userService.Register("u2", "Bob", []string{"FOOD"})
	req.NoError(err)

	name, data := client.nextEvent(t)
	req.Equal("match", name)
	var match matchPayload
	req.NoError(json.Unmarshal([]byte(data), &match))
	req.Equal("u2", match.UserID)
	req.Equal("Bob", match.Name)
}

func TestSSE_FiltersSelfAndDisjointInterests(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	_, err := fixture.userService.Register("u1", "Alice", []string{"FOOD"})
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := dialSSE(t, fixture, ctx, "u1")
	client.nextEvent(t) // connected

	// Self-announcement and a disjoint-interest user must not match
	_, err = fixture.userService.UpdateInterests("u1", "Alice", []string{"FOOD"})
	req.NoError(err)
	_, err = fixture.userService.Register("u3", "Carol", []string{"SPORTS"})
	req.NoError(err)
	// This one does match
	_, err = fixture.userService.Register("u4", "Dave", []string{"FOOD"})
	req.NoError(err)

	name, data := client.nextEvent(t)
	req.Equal("match", name)
	var match matchPayload
	req.NoError(json.Unmarshal([]byte(data), &match))
	req.Equal("u4", match.UserID)
}

func TestSSE_DisconnectReleasesSubscription(t *testing.T) {
	req := require.New(t)
	fixture := newWebFixture(t)

	_, err := fixture.userService.Register("u1", "Alice", []string{"FOOD"})
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	client := dialSSE(t, fixture, ctx, "u1")
	client.nextEvent(t) // connected
	req.Equal(1, fixture.matchBus.SubscriberCount())

	// When the client goes away
	cancel()

	// Then the per-connection bus subscription is released
	req.Eventually(func() bool { return fixture.matchBus.SubscriberCount() == 0 },
		2*time.Second, 20*time.Millisecond)
}
