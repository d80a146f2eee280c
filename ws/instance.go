package ws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/gorilla/websocket"

	"github.com/Snoupix/sharify-be/logs"
	pb "github.com/Snoupix/sharify-be/proto"
	"github.com/Snoupix/sharify-be/room"
)

const (
	heartbeatInterval = 5 * time.Second
	// Twice the heartbeat so one skipped ping is safe.
	userWsTimeout = heartbeatInterval * 2

	writeWait = 10 * time.Second

	// 128kb max per frame.
	maxMessageSize = 1024 * 128

	sendBufferSize = 16
)

// Instance is one user's websocket session inside a room.
type Instance struct {
	manager *Manager
	conn    *websocket.Conn
	roomID  room.ID
	userID  room.UserID

	outbound  chan []byte
	closeOnce sync.Once
	done      chan struct{}

	mu sync.Mutex
	// Set on the first pong, after which the session can receive its
	// initial data.
	isReady     bool
	closeReason *string
}

func newInstance(m *Manager, conn *websocket.Conn, roomID room.ID, userID room.UserID) *Instance {
	return &Instance{
		manager:  m,
		conn:     conn,
		roomID:   roomID,
		userID:   userID,
		outbound: make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}
}

func (i *Instance) ready() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.isReady
}

func (i *Instance) setReady() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.isReady = true
}

// close shuts the session down, sending reason as the close frame
// description when given. Safe to call more than once.
func (i *Instance) close(reason *string) {
	i.closeOnce.Do(func() {
		i.mu.Lock()
		i.closeReason = reason
		i.mu.Unlock()

		close(i.done)
	})
}

func (i *Instance) send(cmd *pb.CommandResponse) {
	buf, err := proto.Marshal(cmd)
	if err != nil {
		return
	}

	i.sendRaw(buf)
}

func (i *Instance) sendRaw(buf []byte) {
	select {
	case i.outbound <- buf:
	case <-i.done:
	default:
		// Slow consumer, drop the frame rather than block a broadcast.
	}
}

// readPump owns the connection reads: pongs feed the heartbeat and
// binary frames are user commands.
func (i *Instance) readPump(ctx context.Context) {
	defer i.manager.closeSession(ctx, i, nil)

	i.conn.SetReadLimit(maxMessageSize)
	_ = i.conn.SetReadDeadline(time.Now().Add(userWsTimeout))
	i.conn.SetPongHandler(func(string) error {
		i.manager.markReady(i.userID)
		return i.conn.SetReadDeadline(time.Now().Add(userWsTimeout))
	})

	for {
		msgType, data, err := i.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logs.WithContext(ctx).Debug(fmt.Sprint(
					"[WS] Disconnecting failed heartbeat email:", room.DecodeUserEmail(i.userID),
					", id:", i.userID, ", room_id:", i.roomID))
			}
			return
		}

		if msgType != websocket.BinaryMessage {
			continue
		}

		if !i.handleBinaryMessage(ctx, data) {
			return
		}
	}
}

// writePump owns the connection writes: outbound frames, pings and the
// final close frame.
func (i *Instance) writePump() {
	ticker := time.NewTicker(heartbeatInterval)
	defer func() {
		ticker.Stop()
		_ = i.conn.Close()
	}()

	for {
		select {
		case buf := <-i.outbound:
			_ = i.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := i.conn.WriteMessage(websocket.BinaryMessage, buf); err != nil {
				return
			}
		case <-ticker.C:
			_ = i.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := i.conn.WriteMessage(websocket.PingMessage, []byte("PING")); err != nil {
				return
			}
		case <-i.done:
			// Flush pending frames so a kick or ban response is not
			// lost to the close.
			for drained := false; !drained; {
				select {
				case buf := <-i.outbound:
					_ = i.conn.SetWriteDeadline(time.Now().Add(writeWait))
					_ = i.conn.WriteMessage(websocket.BinaryMessage, buf)
				default:
					drained = true
				}
			}

			i.mu.Lock()
			reason := i.closeReason
			i.mu.Unlock()

			payload := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if reason != nil {
				payload = websocket.FormatCloseMessage(websocket.CloseNormalClosure, *reason)
			}

			_ = i.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = i.conn.WriteMessage(websocket.CloseMessage, payload)
			return
		}
	}
}

// handleBinaryMessage processes one user command frame. Returns whether
// the read loop should continue.
func (i *Instance) handleBinaryMessage(ctx context.Context, data []byte) bool {
	var cmd pb.Command
	if err := proto.Unmarshal(data, &cmd); err != nil {
		logs.WithContext(ctx).Debug(fmt.Sprint("Unrecognized command from user: ", room.DecodeUserEmail(i.userID)))
		return true
	}
	if cmd.GetType() == nil {
		return true
	}

	shouldRoomBeClosed, _ := i.manager.rooms.IsUserAnOwnerAndAlone(ctx, i.roomID, i.userID)

	outcome := NewProcessor(i.manager.rooms, i.userID, i.roomID).Process(ctx, &cmd)

	// Handle state impact first.
	if outcome.Failed == nil {
		switch outcome.Impact {
		case ImpactNothing:
		case ImpactBoth:
			fetch := outcome.Fetch
			go func() {
				// The websocket is faster than Spotify, give the
				// playback data time to sync before refetching it.
				time.Sleep(500 * time.Millisecond)
				_ = i.manager.sendSpotifyStateInRoom(ctx, i.roomID, fetch)
			}()
			fallthrough
		case ImpactRoom:
			i.manager.broadcastRoomData(ctx, i.roomID)
		}
	}

	// Then the command result.
	if outcome.Response != nil || outcome.Failed != nil {
		response := outcome.Response
		if response == nil {
			response = outcome.Failed
		}
		i.send(response)
		return true
	}

	// Commands with no direct response may still end sessions.
	switch c := cmd.Type.(type) {
	case *pb.Command_Kick_:
		i.manager.closeTargetSession(ctx, c.Kick.GetUserId(), &pb.CommandResponse{
			Type: &pb.CommandResponse_Kick_{Kick: &pb.CommandResponse_Kick{Reason: c.Kick.GetReason()}},
		})
	case *pb.Command_Ban_:
		i.manager.closeTargetSession(ctx, c.Ban.GetUserId(), &pb.CommandResponse{
			Type: &pb.CommandResponse_Ban_{Ban: &pb.CommandResponse_Ban{Reason: c.Ban.GetReason()}},
		})
	case *pb.Command_LeaveRoom:
		i.manager.closeSession(ctx, i, nil)

		if shouldRoomBeClosed {
			i.manager.closeRoom(ctx, i.roomID, "No owner left to manage the room, closing...")
		}

		return false
	}

	return true
}
