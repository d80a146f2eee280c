package room

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Snoupix/sharify-be/logs"
	"github.com/Snoupix/sharify-be/spotify"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Manager owns every active room. All methods are safe for concurrent
// use; mutating methods return copies so callers never hold a pointer
// into guarded state.
type Manager struct {
	mu          sync.Mutex
	activeRooms map[ID]*Room
	// User ids are globally unique across rooms.
	userIDs map[UserID]struct{}
}

func NewManager() *Manager {
	return &Manager{
		activeRooms: make(map[ID]*Room),
		userIDs:     make(map[UserID]struct{}),
	}
}

func (m *Manager) CreateRoom(ctx context.Context, userID UserID, username string, name string, creds Credentials) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.userIDs[userID]; ok {
		return nil, ErrUserIDExists
	}

	id, err := uuid.NewV7()
	if err != nil {
		logs.WithContext(ctx).Error(err.Error())
		return nil, ErrRoomCreationFail
	}

	roles := DefaultRoleManager()

	room := &Room{
		ID:   id,
		Name: name,
		Users: []User{{
			ID:          userID,
			Username:    username,
			RoleID:      roles.GetRoles()[0].ID,
			IsConnected: false,
		}},
		Roles:       roles,
		Password:    randAlphanumeric(PasswordLen),
		Logs:        make([]Log, 0, MaxLogsLen),
		BannedUsers: make([]UserID, 0),
		TracksQueue: make([]Track, 0, MaxTracksQueueLen),
		MaxUsers:    MaxUsers,
		Metadata: NewMetadata(spotify.NewClient(spotify.Tokens{
			AccessToken:  creds.AccessToken,
			RefreshToken: creds.RefreshToken,
			ExpiresIn:    creds.ExpiresIn,
			CreatedAt:    creds.CreatedAt,
		})),
	}

	m.activeRooms[id] = room
	m.userIDs[userID] = struct{}{}

	logs.WithContext(ctx).Debug(fmt.Sprint("[", id, "] Room ", name, " created"))

	return room.Clone(), nil
}

// DeleteRoom removes a room and frees every user id it held. A nil
// userID means the room self-destructed for inactivity; otherwise the
// user must hold a role allowed to manage the room.
func (m *Manager) DeleteRoom(ctx context.Context, roomID ID, userID *UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.deleteRoomLocked(ctx, roomID, userID)
}

func (m *Manager) deleteRoomLocked(ctx context.Context, roomID ID, userID *UserID) error {
	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	if userID != nil {
		role, err := room.UserPermissions(*userID)
		if err != nil {
			return err
		}

		if !role.Permissions.CanManageRoom {
			logs.WithContext(ctx).Error(fmt.Sprint("User ID ", *userID, " tried to delete room ID ", roomID, " without permission"))
			return ErrUnauthorized
		}

		logs.WithContext(ctx).Debug(fmt.Sprint("[", roomID, "] User ID ", *userID, " is deleting '", room.Name, "' room"))
	} else {
		logs.WithContext(ctx).Debug(fmt.Sprint("Deleting room ID ", roomID, " automatically for inactivity"))
	}

	for _, user := range room.Users {
		delete(m.userIDs, user.ID)
	}

	delete(m.activeRooms, roomID)

	return nil
}

func (m *Manager) SetWsUserState(ctx context.Context, roomID ID, userID UserID, isConnected bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Cannot find room id: ", roomID))
		return ErrRoomNotFound
	}

	user, ok := room.FindUser(userID)
	if !ok {
		return ErrRoomUserNotFound
	}

	user.IsConnected = isConnected

	return nil
}

// GetRoom returns a copy of the room, or nil when it does not exist.
func (m *Manager) GetRoom(ctx context.Context, roomID ID) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Cannot find room id: ", roomID))
		return nil
	}

	return room.Clone()
}

func (m *Manager) GetRoomForUserID(userID UserID) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, room := range m.activeRooms {
		if _, ok := room.FindUser(userID); ok {
			return room.Clone()
		}
	}

	return nil
}

// Update runs fn on the live room under the manager lock. fn must not
// block.
func (m *Manager) Update(roomID ID, fn func(*Room)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	fn(room)

	return nil
}

func (m *Manager) AddTrackToQueue(ctx context.Context, roomID ID, userID UserID, trackID, trackName string, trackDuration uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	user, ok := room.FindUser(userID)
	if !ok {
		return ErrRoomUserNotFound
	}

	if len(room.TracksQueue) >= MaxTracksQueueLen {
		room.TracksQueue = room.TracksQueue[1:]
	}

	room.TracksQueue = append(room.TracksQueue, Track{
		UserID:        userID,
		TrackID:       trackID,
		TrackName:     trackName,
		TrackDuration: trackDuration,
	})

	logs.WithContext(ctx).Debug(fmt.Sprint(user.Username, " added ", trackName, " to room ", room.Name, " ", roomID))

	return nil
}

// RemoveTrackFromQueue pops the head of the queue when it matches the
// track currently playing. Safe to call on every playback fetch.
func (m *Manager) RemoveTrackFromQueue(ctx context.Context, roomID ID, trackID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	if len(room.TracksQueue) > 0 && room.TracksQueue[0].TrackID == trackID {
		track := room.TracksQueue[0]
		room.TracksQueue = room.TracksQueue[1:]

		logs.WithContext(ctx).Debug(fmt.Sprint("Removed track ", track.TrackName, " from room ID ", room.ID, " queue"))
	}

	return nil
}

func (m *Manager) KickUser(ctx context.Context, roomID ID, authorID, userID UserID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	author, ok := room.FindUser(authorID)
	if !ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Unexpected error: Kick attempt from author id ", authorID, " that's not in the room id ", roomID))
		return ErrUnreachable
	}
	user, ok := room.FindUser(userID)
	if !ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Unexpected error: Attempt to kick a user id ", userID, " that's not in the room id ", roomID))
		return ErrUnreachable
	}

	authorName, username := author.Username, user.Username

	room.removeUser(userID)
	delete(m.userIDs, userID)

	room.appendLog(Log{
		Type:    LogKick,
		Details: fmt.Sprintf("User %s kicked %s from the room for: %s", authorName, username, reason),
	})

	return nil
}

func (m *Manager) BanUser(ctx context.Context, roomID ID, authorID, userID UserID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	author, ok := room.FindUser(authorID)
	if !ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Unexpected error: Ban attempt from author id ", authorID, " that's not in the room id ", roomID))
		return ErrUnreachable
	}
	user, ok := room.FindUser(userID)
	if !ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Unexpected error: Attempt to ban a user id ", userID, " that's not in the room id ", roomID))
		return ErrUnreachable
	}

	authorName, username := author.Username, user.Username

	room.removeUser(userID)
	room.BannedUsers = append(room.BannedUsers, userID)
	delete(m.userIDs, userID)

	room.appendLog(Log{
		Type:    LogBan,
		Details: fmt.Sprintf("User %s banned %s from the room for: %s", authorName, username, reason),
	})

	return nil
}

// JoinRoom adds a user to a room after checking its password. New users
// get the lowest role of the hierarchy.
func (m *Manager) JoinRoom(ctx context.Context, roomID ID, username string, userID UserID, password string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.userIDs[userID]; ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Error: user ID (approx email: ", DecodeUserEmail(userID), ") is already in use"))
		return nil, ErrUserIDExists
	}

	room, ok := m.activeRooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	if room.Password != password {
		return nil, ErrUnauthorized
	}

	for _, banned := range room.BannedUsers {
		if banned == userID {
			return nil, ErrUserBanned
		}
	}

	if uint32(len(room.Users)) >= room.MaxUsers {
		return nil, ErrRoomFull
	}

	roles := room.Roles.GetRoles()
	var role Role
	if len(roles) > 0 {
		role = roles[len(roles)-1]
	} else {
		guest := NewGuestRole()
		room.Roles.AddRole(guest.Name, guest.Permissions)
		role = room.Roles.GetRoles()[0]
	}

	room.Users = append(room.Users, User{
		ID:          userID,
		RoleID:      role.ID,
		Username:    username,
		IsConnected: false,
	})

	m.userIDs[userID] = struct{}{}

	logs.WithContext(ctx).Debug(fmt.Sprint("[", roomID, "] Added ", username, " to Room ", room.Name))

	return room.Clone(), nil
}

// LeaveRoom removes the user, deleting the room entirely when they were
// the last one able to manage it.
func (m *Manager) LeaveRoom(ctx context.Context, roomID ID, userID UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	alone, err := m.isUserAnOwnerAndAloneLocked(ctx, roomID, userID)
	if err != nil {
		return err
	}
	if alone {
		return m.deleteRoomLocked(ctx, roomID, &userID)
	}

	room := m.activeRooms[roomID]

	user, ok := room.FindUser(userID)
	if !ok {
		return ErrRoomUserNotFound
	}

	username := user.Username

	room.removeUser(userID)
	delete(m.userIDs, userID)

	logs.WithContext(ctx).Debug(fmt.Sprint("Removed ", username, " from room ", room.Name, " ", roomID))

	return nil
}

func (m *Manager) ChangeUsername(ctx context.Context, roomID ID, userID UserID, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	user, ok := room.FindUser(userID)
	if !ok {
		return ErrRoomUserNotFound
	}

	user.Username = username

	return nil
}

// IsUserAnOwnerAndAlone reports whether the user can manage the room
// and nobody else in it can.
func (m *Manager) IsUserAnOwnerAndAlone(ctx context.Context, roomID ID, userID UserID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.isUserAnOwnerAndAloneLocked(ctx, roomID, userID)
}

func (m *Manager) isUserAnOwnerAndAloneLocked(ctx context.Context, roomID ID, userID UserID) (bool, error) {
	room, ok := m.activeRooms[roomID]
	if !ok {
		return false, ErrRoomNotFound
	}

	user, ok := room.FindUser(userID)
	if !ok {
		return false, ErrRoomUserNotFound
	}

	role, ok := room.Roles.GetRoleByID(user.RoleID)
	if !ok {
		logs.WithContext(ctx).Error(fmt.Sprint("Cannot find role ID: ", user.RoleID, " in room ID: ", roomID))
		return false, ErrRoleNotFound
	}

	if !role.Permissions.CanManageRoom {
		return false, nil
	}

	managers := 0
	for _, u := range room.Users {
		if u.RoleID == role.ID {
			managers++
			continue
		}
		if r, ok := room.Roles.GetRoleByID(u.RoleID); ok && r.Permissions.CanManageRoom {
			managers++
		}
	}

	return managers <= 1, nil
}

func (m *Manager) UserIDExists(userID UserID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.userIDs[userID]
	return ok
}

func (m *Manager) AppendLog(roomID ID, log Log) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.activeRooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	room.appendLog(log)

	return nil
}

func (m *Manager) RoomCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.activeRooms)
}

func (r *Room) removeUser(userID UserID) {
	users := r.Users[:0]
	for _, u := range r.Users {
		if u.ID != userID {
			users = append(users, u)
		}
	}
	r.Users = users
}

func (r *Room) appendLog(log Log) {
	if len(r.Logs) >= MaxLogsLen {
		r.Logs = r.Logs[1:]
	}
	r.Logs = append(r.Logs, log)
}

func randAlphanumeric(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = alphanumeric[int(b[i])%len(alphanumeric)]
	}
	return string(b)
}
