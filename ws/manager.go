package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Snoupix/sharify-be/logs"
	pb "github.com/Snoupix/sharify-be/proto"
	"github.com/Snoupix/sharify-be/room"
	"github.com/Snoupix/sharify-be/spotify"
)

// Manager maps every connected user to its websocket session and owns
// the per-room background loops.
type Manager struct {
	rooms    *room.Manager
	upgrader websocket.Upgrader

	mu        sync.Mutex
	instances map[room.UserID]*Instance
	dataLoops map[room.ID]*dataLoop
}

type dataLoop struct {
	stop chan struct{}
	tick chan time.Duration
}

func NewManager(rooms *room.Manager) *Manager {
	return &Manager{
		rooms: rooms,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		instances: make(map[room.UserID]*Instance),
		dataLoops: make(map[room.ID]*dataLoop),
	}
}

// Handler upgrades GET /v1/{room_id}/{user_id} to a websocket session.
// The user must have joined the room over HTTP first.
func (m *Manager) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := vars["user_id"]

		roomID, err := uuid.Parse(vars["room_id"])
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Invalid room id %s", vars["room_id"])
			return
		}

		ctx := logs.NewContext(context.Background())

		activeRoom := m.rooms.GetRoom(ctx, roomID)
		if activeRoom == nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Room %s does not exist", roomID)
			return
		}

		// A room cannot be empty because it self destructs when the
		// last user leaves, so a single user means the creator just
		// opened it.
		isRoomNew := len(activeRoom.Users) == 1

		user, ok := activeRoom.FindUser(userID)
		if !ok {
			// The user should have joined the room before the
			// websocket init.
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		username := user.Username

		m.mu.Lock()
		if instance, ok := m.instances[userID]; ok {
			delete(m.instances, userID)
			instance.close(nil)
		}
		m.mu.Unlock()

		if err = m.rooms.SetWsUserState(ctx, roomID, userID, true); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "%v", err)
			return
		}

		logs.WithContext(ctx).Debug(fmt.Sprint("[WS] Starting ws session for roomID ", roomID, " and userID ", userID))

		conn, err := m.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logs.WithContext(ctx).Error(err.Error())
			return
		}

		instance := newInstance(m, conn, roomID, userID)

		m.mu.Lock()
		m.instances[userID] = instance
		m.mu.Unlock()

		go instance.writePump()
		go instance.readPump(ctx)

		go m.sendDataWhenReady(ctx, userID, !isRoomNew)

		if isRoomNew {
			if m.startDataLoop(ctx, roomID) {
				go m.roomActivityCheckLoop(ctx, roomID)
			}
		} else {
			m.broadcast(roomID, &pb.CommandResponse{
				Type: &pb.CommandResponse_NewUserJoined{NewUserJoined: username},
			})
		}
	}
}

func (m *Manager) instance(userID room.UserID) *Instance {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.instances[userID]
}

func (m *Manager) markReady(userID room.UserID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if instance, ok := m.instances[userID]; ok {
		instance.setReady()
	}
}

// sendDataWhenReady waits for the first pong before pushing the initial
// room state, so the frontend never misses it.
func (m *Manager) sendDataWhenReady(ctx context.Context, userID room.UserID, includeSpotifyData bool) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		instance := m.instance(userID)
		if instance == nil {
			// Reachable if the user dropped instantly.
			return
		}

		if !instance.ready() {
			continue
		}

		m.broadcastRoomData(ctx, instance.roomID)

		if includeSpotifyData {
			if err := m.sendSpotifyStateInRoom(ctx, instance.roomID, spotify.FetchAll); err != nil {
				instance.send(spotifyErrorResponse(err))
			}
		}

		return
	}
}

// roomActivityCheckLoop deletes the room once nobody has been connected
// for a while, then stops the room data loop.
func (m *Manager) roomActivityCheckLoop(ctx context.Context, roomID room.ID) {
	ticker := time.NewTicker(spotify.DefaultDataInterval)
	defer ticker.Stop()

	for range ticker.C {
		var done, gone bool

		err := m.rooms.Update(roomID, func(r *room.Room) {
			connected := 0
			for _, u := range r.Users {
				if u.IsConnected {
					connected++
				}
			}

			if connected > 0 {
				r.Metadata.InactiveSince = time.Time{}
				return
			}

			if r.Metadata.InactiveSince.IsZero() {
				r.Metadata.InactiveSince = time.Now()
				return
			}

			if time.Since(r.Metadata.InactiveSince) >= room.InactiveRoomMins*time.Minute {
				done = true
			}
		})
		if err != nil {
			gone = true
		}

		if done {
			if err := m.rooms.DeleteRoom(ctx, roomID, nil); err != nil {
				logs.WithContext(ctx).Error(err.Error())
			}
		}

		if done || gone {
			break
		}
	}

	m.stopDataLoop(roomID)
}

// startDataLoop reports whether it actually started the room loops.
// False means they already run, as on a solo owner reconnect.
func (m *Manager) startDataLoop(ctx context.Context, roomID room.ID) bool {
	m.mu.Lock()

	if _, ok := m.dataLoops[roomID]; ok {
		m.mu.Unlock()
		logs.WithContext(ctx).Debug(fmt.Sprint("Data loop already running for room ", roomID))
		return false
	}

	loop := &dataLoop{
		stop: make(chan struct{}, 1),
		tick: make(chan time.Duration, 5),
	}
	m.dataLoops[roomID] = loop

	m.mu.Unlock()

	go m.spotifyDataLoop(ctx, roomID, loop)

	return true
}

func (m *Manager) stopDataLoop(roomID room.ID) {
	m.mu.Lock()
	loop, ok := m.dataLoops[roomID]
	if ok {
		delete(m.dataLoops, roomID)
	}
	m.mu.Unlock()

	if ok {
		close(loop.stop)
	}
}

// setSpotifyTick reschedules the next data fetch of a room.
func (m *Manager) setSpotifyTick(roomID room.ID, tick time.Duration) {
	m.mu.Lock()
	loop, ok := m.dataLoops[roomID]
	m.mu.Unlock()

	if !ok {
		return
	}

	select {
	case loop.tick <- tick:
	default:
	}
}

// spotifyDataLoop keeps every room member in sync with the creator's
// player, refetching around track ends.
func (m *Manager) spotifyDataLoop(ctx context.Context, roomID room.ID, loop *dataLoop) {
	if err := m.sendSpotifyStateInRoom(ctx, roomID, spotify.FetchAll); err != nil {
		// Most probably revoked tokens. They may have been refreshed
		// from here or elsewhere but the user holds stale tokens.
		m.closeRoom(ctx, roomID, "Spotify request error. Closing room...")
		return
	}

	timer := time.NewTimer(spotify.DefaultDataInterval)
	defer timer.Stop()

	for {
		select {
		case <-loop.stop:
			return
		case tick := <-loop.tick:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(tick)
		case <-timer.C:
			if err := m.sendSpotifyStateInRoom(ctx, roomID, spotify.FetchAll); err != nil {
				m.closeRoom(ctx, roomID, "Spotify request error. Closing room...")
				return
			}
			timer.Reset(m.roomTick(ctx, roomID))
		}
	}
}

func (m *Manager) roomTick(ctx context.Context, roomID room.ID) time.Duration {
	tick := spotify.DefaultDataInterval
	_ = m.rooms.Update(roomID, func(r *room.Room) {
		tick = r.Metadata.SpotifyDataTick
	})
	return tick
}

// sendSpotifyStateInRoom fetches the requested player state parts and
// broadcasts them, refreshing expired tokens first.
func (m *Manager) sendSpotifyStateInRoom(ctx context.Context, roomID room.ID, flags spotify.FetchFlags) error {
	activeRoom := m.rooms.GetRoom(ctx, roomID)
	if activeRoom == nil {
		return room.ErrRoomNotFound
	}

	client := activeRoom.Metadata.Spotify

	tokens := client.Tokens()
	expiresAt := time.Unix(tokens.CreatedAt, 0).Add(time.Duration(tokens.ExpiresIn) * time.Second)

	if time.Now().After(expiresAt) {
		if _, err := client.FetchRefreshToken(ctx); err != nil {
			logs.WithContext(ctx).Error(err.Error())
			m.broadcast(roomID, genericErrorResponse("Failed to refresh tokens"))
			return err
		}
	}

	var cmd *pb.CommandResponse

	switch {
	case flags&spotify.FetchAll == spotify.FetchAll:
		cmd = m.fetchSpotifyAll(ctx, roomID, client)
	case flags&spotify.FetchPlayback == spotify.FetchPlayback:
		cmd = m.fetchSpotifyPlayback(ctx, roomID, client)
	case flags&spotify.FetchTracksQueue == spotify.FetchTracksQueue:
		cmd = m.fetchSpotifyTracks(ctx, roomID, client)
	default:
		return fmt.Errorf("unhandled Spotify fetch flags: %d", flags)
	}

	if cmd == nil {
		return fmt.Errorf("failed to fetch Spotify state for room %s", roomID)
	}

	m.broadcast(roomID, cmd)

	return nil
}

func (m *Manager) fetchSpotifyAll(ctx context.Context, roomID room.ID, client *spotify.Client) *pb.CommandResponse {
	var (
		wg       sync.WaitGroup
		state    *spotify.Playback
		next     []spotify.Track
		previous []spotify.Track

		stateErr, nextErr, previousErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		state, stateErr = client.GetCurrentPlaybackState(ctx)
	}()
	go func() {
		defer wg.Done()
		next, nextErr = client.GetNextTracks(ctx)
	}()
	go func() {
		defer wg.Done()
		previous, previousErr = client.GetRecentTracks(ctx, 10)
	}()
	wg.Wait()

	m.reportFetchError(ctx, roomID, "recent tracks", previousErr)
	m.reportFetchError(ctx, roomID, "playback state", stateErr)
	m.reportFetchError(ctx, roomID, "next tracks (queue)", nextErr)

	if stateErr == nil {
		m.adjustTickFromPlayback(ctx, roomID, state, true)
	}

	all := &pb.CommandResponse_SpotifyAllState{}
	if previousErr == nil {
		all.PreviousTracks = tracksToProto(previous)
	}
	if stateErr == nil {
		all.State = playbackToProto(state)
	}
	if nextErr == nil {
		all.NextTracks = tracksToProto(next)
	}

	return &pb.CommandResponse{
		Type: &pb.CommandResponse_SpotifyAllState_{SpotifyAllState: all},
	}
}

func (m *Manager) fetchSpotifyTracks(ctx context.Context, roomID room.ID, client *spotify.Client) *pb.CommandResponse {
	var (
		wg       sync.WaitGroup
		next     []spotify.Track
		previous []spotify.Track

		nextErr, previousErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		next, nextErr = client.GetNextTracks(ctx)
	}()
	go func() {
		defer wg.Done()
		previous, previousErr = client.GetRecentTracks(ctx, 10)
	}()
	wg.Wait()

	m.reportFetchError(ctx, roomID, "recent tracks", previousErr)
	m.reportFetchError(ctx, roomID, "next tracks (queue)", nextErr)

	tracks := &pb.CommandResponse_SpotifyTracksState{}
	if previousErr == nil {
		tracks.PreviousTracks = tracksToProto(previous)
	}
	if nextErr == nil {
		tracks.NextTracks = tracksToProto(next)
	}

	return &pb.CommandResponse{
		Type: &pb.CommandResponse_SpotifyTracksState_{SpotifyTracksState: tracks},
	}
}

func (m *Manager) fetchSpotifyPlayback(ctx context.Context, roomID room.ID, client *spotify.Client) *pb.CommandResponse {
	state, err := client.GetCurrentPlaybackState(ctx)

	m.reportFetchError(ctx, roomID, "playback state", err)

	playback := &pb.CommandResponse_SpotifyPlaybackState{}
	if err == nil {
		m.adjustTickFromPlayback(ctx, roomID, state, false)
		playback.State = playbackToProto(state)
	}

	return &pb.CommandResponse{
		Type: &pb.CommandResponse_SpotifyPlaybackState_{SpotifyPlaybackState: playback},
	}
}

func (m *Manager) reportFetchError(ctx context.Context, roomID room.ID, what string, err error) {
	if err == nil {
		return
	}

	logs.WithContext(ctx).Error(fmt.Sprint("Failed to fetch ", what, " for room ", roomID, ": ", err))

	var rateLimited *spotify.RateLimitError
	if errors.As(err, &rateLimited) {
		m.broadcast(roomID, &pb.CommandResponse{
			Type: &pb.CommandResponse_SpotifyRateLimited{SpotifyRateLimited: rateLimited.RetryAfter},
		})
	}
}

// adjustTickFromPlayback schedules the next fetch right after the
// current track ends. With more than 2 minutes left, a fetch happens in
// the middle to keep sync with an external Spotify player.
func (m *Manager) adjustTickFromPlayback(ctx context.Context, roomID room.ID, playback *spotify.Playback, resetWhenIdle bool) {
	if playback == nil {
		return
	}

	// Reconcile the queue head first: a track can finish right as
	// playback stops.
	_ = m.rooms.RemoveTrackFromQueue(ctx, roomID, playback.TrackID)

	tick := spotify.DefaultDataInterval

	if playback.IsPlaying && playback.DurationMs >= playback.ProgressMs {
		restMs := playback.DurationMs - playback.ProgressMs

		if restMs > 1000*60*2 {
			restMs /= 2
		}

		tick = time.Duration(restMs+spotify.FetchOffsetMs) * time.Millisecond
	} else if !resetWhenIdle {
		return
	}

	_ = m.rooms.Update(roomID, func(r *room.Room) {
		r.Metadata.SpotifyDataTick = tick
	})
	m.setSpotifyTick(roomID, tick)
}

func (m *Manager) broadcastRoomData(ctx context.Context, roomID room.ID) {
	var cmd *pb.CommandResponse

	if activeRoom := m.rooms.GetRoom(ctx, roomID); activeRoom == nil {
		cmd = roomErrorResponse(room.ErrRoomNotFound)
	} else {
		cmd = &pb.CommandResponse{
			Type: &pb.CommandResponse_Room{Room: activeRoom.ToProto()},
		}
	}

	m.broadcast(roomID, cmd)
}

// broadcast sends a response to every connected member of a room.
func (m *Manager) broadcast(roomID room.ID, cmd *pb.CommandResponse) {
	buf, err := proto.Marshal(cmd)
	if err != nil {
		return
	}

	m.mu.Lock()
	instances := make([]*Instance, 0, len(m.instances))
	for _, instance := range m.instances {
		if instance.roomID == roomID {
			instances = append(instances, instance)
		}
	}
	m.mu.Unlock()

	for _, instance := range instances {
		instance.sendRaw(buf)
	}
}

// closeSession drops a websocket session and flags the user
// disconnected. Only the currently registered instance is deregistered,
// so a stale session closing after a fast reconnect cannot tear down
// the new one.
func (m *Manager) closeSession(ctx context.Context, instance *Instance, reason *string) {
	logs.WithContext(ctx).Debug(fmt.Sprint("[WS] Closing session email:", room.DecodeUserEmail(instance.userID), ", id:", instance.userID))

	m.mu.Lock()
	current := m.instances[instance.userID] == instance
	if current {
		delete(m.instances, instance.userID)
	}
	m.mu.Unlock()

	instance.close(reason)

	if current {
		_ = m.rooms.SetWsUserState(ctx, instance.roomID, instance.userID, false)
	}
}

// closeTargetSession sends a final response to a kicked or banned user
// then drops their session. Their room state is already gone so there
// is no connected flag left to clear.
func (m *Manager) closeTargetSession(ctx context.Context, userID room.UserID, cmd *pb.CommandResponse) {
	m.mu.Lock()
	instance, ok := m.instances[userID]
	if ok {
		delete(m.instances, userID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}

	logs.WithContext(ctx).Debug(fmt.Sprint("[WS] Closing session email:", room.DecodeUserEmail(userID), ", id:", userID))

	instance.send(cmd)
	instance.close(nil)
}

// closeRoom drops every session of a room and deletes the room.
func (m *Manager) closeRoom(ctx context.Context, roomID room.ID, reason string) {
	m.mu.Lock()
	instances := make([]*Instance, 0)
	for userID, instance := range m.instances {
		if instance.roomID == roomID {
			instances = append(instances, instance)
			delete(m.instances, userID)
		}
	}
	m.mu.Unlock()

	for _, instance := range instances {
		instance.close(&reason)
	}

	if err := m.rooms.DeleteRoom(ctx, roomID, nil); err != nil {
		logs.WithContext(ctx).Error(err.Error())
	}

	m.stopDataLoop(roomID)
}
