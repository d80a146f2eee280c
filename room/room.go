package room

import (
	"github.com/google/uuid"
)

const (
	MaxUsers          = 15
	MaxLogsLen        = 25
	MaxTracksQueueLen = 50

	// Rooms with no connected user self-destruct after this delay.
	InactiveRoomMins = 5

	PasswordLen = 16
)

type ID = uuid.UUID

type UserID = string

// Room is the unit of state shared by everyone listening together. The
// role hierarchy in Roles is ordered most powerful first.
type Room struct {
	ID          ID
	Name        string
	Password    string
	Users       []User
	BannedUsers []UserID
	Roles       *RoleManager
	TracksQueue []Track
	MaxUsers    uint32
	// Last MaxLogsLen entries, oldest first.
	Logs []Log

	Metadata Metadata
}

type User struct {
	ID          UserID
	Username    string
	RoleID      uuid.UUID
	IsConnected bool
}

type Track struct {
	UserID        UserID
	TrackID       string
	TrackName     string
	TrackDuration uint32
}

type LogType int32

const (
	LogOther LogType = iota
	LogKick
	LogBan
	LogAddTrack
	LogJoinRoom
	LogLeaveRoom
	LogUsernameChange
)

type Log struct {
	Type    LogType
	Details string
}

// Credentials is the Spotify token set a room creator hands over so the
// room can drive their player.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    uint32
	CreatedAt    int64
}

type Error string

const (
	ErrRoomCreationFail Error = "RoomCreationFail"
	ErrRoomNotFound     Error = "RoomNotFound"
	ErrRoomUserNotFound Error = "RoomUserNotFound"
	ErrRoleNotFound     Error = "RoleNotFound"
	ErrUnauthorized     Error = "Unauthorized"
	ErrTrackNotFound    Error = "TrackNotFound"
	ErrRoomFull         Error = "RoomFull"
	ErrUserBanned       Error = "UserBanned"
	ErrUserIDExists     Error = "UserIDExists"
	ErrRoleInUse        Error = "RoleInUse"
	ErrUnreachable      Error = "Unreachable"
)

func (e Error) Error() string {
	return string(e)
}

func (r *Room) FindUser(userID UserID) (*User, bool) {
	for i := range r.Users {
		if r.Users[i].ID == userID {
			return &r.Users[i], true
		}
	}
	return nil, false
}

// UserPermissions resolves the role attached to a room user.
func (r *Room) UserPermissions(userID UserID) (Role, error) {
	user, ok := r.FindUser(userID)
	if !ok {
		return Role{}, ErrRoomUserNotFound
	}
	role, ok := r.Roles.GetRoleByID(user.RoleID)
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	return role, nil
}

func (r *Room) Clone() *Room {
	c := *r
	c.Users = append([]User(nil), r.Users...)
	c.BannedUsers = append([]UserID(nil), r.BannedUsers...)
	c.TracksQueue = append([]Track(nil), r.TracksQueue...)
	c.Logs = append([]Log(nil), r.Logs...)
	c.Roles = r.Roles.Clone()
	return &c
}
