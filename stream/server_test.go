package stream

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steersim/engine"
	"github.com/lixenwraith/steersim/steering"
	"github.com/lixenwraith/steersim/vmath"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitClients(t *testing.T, s *Server, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for s.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count %d, want %d", s.ClientCount(), want)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestBroadcastReachesClients(t *testing.T) {
	s := NewServer(nil)
	defer s.Close()
	ts := httptest.NewServer(s)
	defer ts.Close()

	c1 := dial(t, ts.URL)
	c2 := dial(t, ts.URL)
	waitClients(t, s, 2)

	s.Broadcast(Snapshot{Tick: 7})

	for _, c := range []*websocket.Conn{c1, c2} {
		var got Snapshot
		c.SetReadDeadline(time.Now().Add(time.Second))
		require.NoError(t, c.ReadJSON(&got))
		assert.Equal(t, uint64(7), got.Tick)
	}
}

func TestDisconnectedClientDropped(t *testing.T) {
	s := NewServer(nil)
	defer s.Close()
	ts := httptest.NewServer(s)
	defer ts.Close()

	c := dial(t, ts.URL)
	waitClients(t, s, 1)
	c.Close()
	waitClients(t, s, 0)

	// Broadcast to an empty set is a no-op
	s.Broadcast(Snapshot{Tick: 1})
}

func TestSnapshotCapturesSteppedWorld(t *testing.T) {
	w := engine.NewWorld(engine.Config{Width: 100, Height: 100}, nil)
	cfg := steering.DefaultConfig()
	cfg.Kind = "probe"
	cfg.MaxSpeed = 5
	a := steering.NewAgent(vmath.Vec2{X: 10, Y: 20}, cfg)
	a.SeekTarget = target{vmath.Vec2{X: 90, Y: 20}}
	w.Spawn(a)
	w.Step()
	w.Step()

	snap := Capture(w)
	require.Len(t, snap.Agents, 1)
	got := snap.Agents[0]
	assert.Equal(t, uint64(2), snap.Tick)
	assert.Equal(t, "probe", got.Kind)
	assert.Equal(t, uint64(a.Entity()), got.ID)
	assert.Greater(t, got.X, 10.0, "agent moved toward its target")
	assert.InDelta(t, 20, got.Y, 1e-9)
	assert.InDelta(t, 5, got.VX, 1e-9)
	assert.InDelta(t, 0, got.Angle, 1e-9)
}

type target struct{ p vmath.Vec2 }

func (f target) Location() vmath.Vec2 { return f.p }
