package room

import (
	"fmt"

	"github.com/google/uuid"

	pb "github.com/Snoupix/sharify-be/proto"
)

// UUIDs travel on the wire as their 16 little-endian bytes, matching
// what the frontend decodes.
func UUIDToBytes(id uuid.UUID) []byte {
	b := make([]byte, 16)
	copy(b, id[:])
	b[0], b[1], b[2], b[3] = id[3], id[2], id[1], id[0]
	b[4], b[5] = id[5], id[4]
	b[6], b[7] = id[7], id[6]
	return b
}

func UUIDFromBytes(b []byte) (uuid.UUID, error) {
	if len(b) < 16 {
		return uuid.Nil, fmt.Errorf("invalid UUID length: %d", len(b))
	}

	var id uuid.UUID
	copy(id[:], b[:16])
	id[0], id[1], id[2], id[3] = b[3], b[2], b[1], b[0]
	id[4], id[5] = b[5], b[4]
	id[6], id[7] = b[7], b[6]
	return id, nil
}

func (r *Room) ToProto() *pb.Room {
	users := make([]*pb.RoomUser, 0, len(r.Users))
	for _, u := range r.Users {
		users = append(users, u.ToProto())
	}

	tracks := make([]*pb.RoomTrack, 0, len(r.TracksQueue))
	for _, t := range r.TracksQueue {
		tracks = append(tracks, t.ToProto())
	}

	roomLogs := make([]*pb.Log, 0, len(r.Logs))
	for _, l := range r.Logs {
		roomLogs = append(roomLogs, &pb.Log{
			Type:    pb.LogType(l.Type),
			Details: l.Details,
		})
	}

	return &pb.Room{
		Id:          UUIDToBytes(r.ID),
		Name:        r.Name,
		Password:    r.Password,
		Users:       users,
		BannedUsers: append([]string(nil), r.BannedUsers...),
		RoleManager: r.Roles.ToProto(),
		TracksQueue: tracks,
		MaxUsers:    r.MaxUsers,
		Logs:        roomLogs,
	}
}

func (u User) ToProto() *pb.RoomUser {
	return &pb.RoomUser{
		Id:          u.ID,
		Username:    u.Username,
		RoleId:      UUIDToBytes(u.RoleID),
		IsConnected: u.IsConnected,
	}
}

func (t Track) ToProto() *pb.RoomTrack {
	return &pb.RoomTrack{
		UserId:        t.UserID,
		TrackId:       t.TrackID,
		TrackName:     t.TrackName,
		TrackDuration: t.TrackDuration,
	}
}

func (rm *RoleManager) ToProto() *pb.RoleManager {
	roles := make([]*pb.Role, 0, len(rm.roles))
	for _, r := range rm.roles {
		roles = append(roles, &pb.Role{
			Id:   UUIDToBytes(r.ID),
			Name: r.Name,
			Permissions: &pb.RolePermission{
				CanUseControls:  r.Permissions.CanUseControls,
				CanManageUsers:  r.Permissions.CanManageUsers,
				CanAddSong:      r.Permissions.CanAddSong,
				CanAddModerator: r.Permissions.CanAddModerator,
				CanManageRoom:   r.Permissions.CanManageRoom,
			},
		})
	}

	return &pb.RoleManager{Roles: roles}
}
