package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestHub stands up a websocket endpoint that registers every
// accepted connection with hub, then dials it once.
func dialTestHub(t *testing.T, hub *RealtimeHub, userID uint) (*websocket.Conn, *WSClient) {
	t.Helper()

	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	registered := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := NewWSClient(userID, conn)
		hub.Register(cl)
		registered <- cl
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, <-registered
}

func readEvent(t *testing.T, conn *websocket.Conn) ReminderEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev ReminderEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestReminderFeedDeliversMutationsInOrder(t *testing.T) {
	hub := NewRealtimeHub()
	svc := NewReminderService(newTestDB(t), hub, nil)
	conn, _ := dialTestHub(t, hub, 1)

	created, err := svc.Create(1, ReminderInput{Title: "Drink water", Time: "09:00", Type: "hydration"})
	require.NoError(t, err)
	_, err = svc.Update(1, created.ID, ReminderInput{Title: "Drink more water", Time: "10:00", Type: "hydration"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(1, created.ID))

	assert.Equal(t, "INSERT", readEvent(t, conn).Event)
	assert.Equal(t, "UPDATE", readEvent(t, conn).Event)

	ev := readEvent(t, conn)
	assert.Equal(t, "DELETE", ev.Event)
	payload, ok := ev.Reminder.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(created.ID), payload["id"])
}

func TestBroadcastDoesNotReachOtherUsers(t *testing.T) {
	hub := NewRealtimeHub()
	conn, _ := dialTestHub(t, hub, 2)

	hub.BroadcastReminder(1, "INSERT", map[string]any{"id": 1})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

// Overlapping mutations and the keepalive ticker write to the same
// connection from different goroutines; all frames must still arrive
// intact.
func TestBroadcastReminderConcurrentWriters(t *testing.T) {
	hub := NewRealtimeHub()
	conn, cl := dialTestHub(t, hub, 7)

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				hub.BroadcastReminder(7, "UPDATE", map[string]any{"seq": fmt.Sprintf("%d-%d", w, i)})
				if i%10 == 0 {
					_ = cl.Ping()
				}
			}
		}(w)
	}

	seen := 0
	for seen < writers*perWriter {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		ev := ReminderEvent{}
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, "UPDATE", ev.Event)
		seen++
	}
	wg.Wait()
}
