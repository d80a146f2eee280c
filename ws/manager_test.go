package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/Snoupix/sharify-be/proto"
	"github.com/Snoupix/sharify-be/room"
	"github.com/Snoupix/sharify-be/spotify"
)

func newTestServer(t *testing.T) (*httptest.Server, *room.Manager, *Manager) {
	t.Helper()

	rooms := room.NewManager()
	manager := NewManager(rooms)

	router := mux.NewRouter()
	router.Methods(http.MethodGet).Path("/v1/{room_id}/{user_id}").HandlerFunc(manager.Handler())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, rooms, manager
}

func wsURL(srv *httptest.Server, roomID, userID string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/" + roomID + "/" + userID
}

func TestStartDataLoopRunsOncePerRoom(t *testing.T) {
	manager := NewManager(room.NewManager())

	roomID := room.ID{}
	manager.mu.Lock()
	manager.dataLoops[roomID] = &dataLoop{
		stop: make(chan struct{}, 1),
		tick: make(chan time.Duration, 5),
	}
	manager.mu.Unlock()

	// A solo owner reconnect must not spawn a second set of loops.
	assert.False(t, manager.startDataLoop(context.Background(), roomID))
}

func TestCloseSessionIgnoresStaleInstance(t *testing.T) {
	manager := NewManager(room.NewManager())

	roomID := room.ID{}
	stale := newInstance(manager, nil, roomID, "user-id")
	fresh := newInstance(manager, nil, roomID, "user-id")

	manager.mu.Lock()
	manager.instances["user-id"] = fresh
	manager.mu.Unlock()

	// The stale read loop winding down after a fast reconnect must not
	// deregister the replacement session.
	manager.closeSession(context.Background(), stale, nil)

	manager.mu.Lock()
	current := manager.instances["user-id"]
	manager.mu.Unlock()
	require.Equal(t, fresh, current)

	select {
	case <-fresh.done:
		t.Fatal("replacement session was closed")
	default:
	}

	manager.closeSession(context.Background(), fresh, nil)

	manager.mu.Lock()
	_, ok := manager.instances["user-id"]
	manager.mu.Unlock()
	assert.False(t, ok)
}

func TestQueueReconciledWhilePaused(t *testing.T) {
	ctx := context.Background()
	rooms := room.NewManager()
	manager := NewManager(rooms)

	created, err := rooms.CreateRoom(ctx, "owner-id", "Owner", "My room", room.Credentials{
		AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600, CreatedAt: time.Now().Unix(),
	})
	require.NoError(t, err)
	require.NoError(t, rooms.AddTrackToQueue(ctx, created.ID, "owner-id", "track-1", "Track 1", 1000))

	// A track finishing right as playback stops still leaves the queue.
	manager.adjustTickFromPlayback(ctx, created.ID, &spotify.Playback{
		IsPlaying: false,
		TrackID:   "track-1",
	}, false)

	r := rooms.GetRoom(ctx, created.ID)
	assert.Empty(t, r.TracksQueue)
	// The tick is untouched while idle outside full refreshes.
	assert.Equal(t, spotify.DefaultDataInterval, r.Metadata.SpotifyDataTick)
}

func TestHandlerRejectsInvalidRoomID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	_, res, err := websocket.DefaultDialer.Dial(wsURL(srv, "not-a-uuid", "user-id"), nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHandlerRejectsUnknownUser(t *testing.T) {
	srv, rooms, _ := newTestServer(t)

	created, err := rooms.CreateRoom(context.Background(), "owner-id", "Owner", "My room", room.Credentials{
		AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600, CreatedAt: time.Now().Unix(),
	})
	require.NoError(t, err)

	_, res, err := websocket.DefaultDialer.Dial(wsURL(srv, created.ID.String(), "stranger-id"), nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestSessionProcessesCommands(t *testing.T) {
	srv, rooms, _ := newTestServer(t)

	ctx := context.Background()
	created, err := rooms.CreateRoom(ctx, "owner-id", "Owner", "My room", room.Credentials{
		AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600, CreatedAt: time.Now().Unix(),
	})
	require.NoError(t, err)
	_, err = rooms.JoinRoom(ctx, created.ID, "Guest", "guest-id", created.Password)
	require.NoError(t, err)

	// Connect as the guest so the room is not considered new and no
	// background player loop spins up.
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, created.ID.String(), "guest-id"), nil)
	require.NoError(t, err)
	defer conn.Close()

	connected := rooms.GetRoom(ctx, created.ID)
	user, ok := connected.FindUser("guest-id")
	require.True(t, ok)
	assert.True(t, user.IsConnected)

	cmd, err := proto.Marshal(&pb.Command{Type: &pb.Command_GetRoom{GetRoom: true}})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, cmd))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var res pb.CommandResponse
		require.NoError(t, proto.Unmarshal(data, &res))

		// The session also receives its own NewUserJoined broadcast.
		if res.GetRoom() == nil {
			continue
		}

		assert.Equal(t, "My room", res.GetRoom().GetName())
		assert.Len(t, res.GetRoom().GetUsers(), 2)
		return
	}
}
