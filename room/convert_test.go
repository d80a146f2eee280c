package room

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/Snoupix/sharify-be/proto"
)

func TestUUIDToBytesLittleEndian(t *testing.T) {
	id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")

	b := UUIDToBytes(id)
	assert.Equal(t, []byte{
		0x67, 0x45, 0x23, 0x01,
		0xab, 0x89,
		0xef, 0xcd,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}, b)

	back, err := UUIDFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, id, back)
}

func TestUUIDFromBytesTooShort(t *testing.T) {
	_, err := UUIDFromBytes([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}

func TestRoomToProto(t *testing.T) {
	roles := DefaultRoleManager()
	owner := roles.GetRoles()[0]

	r := &Room{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     "My room",
		Password: "secret",
		Users: []User{{
			ID:          "owner-id",
			Username:    "Owner",
			RoleID:      owner.ID,
			IsConnected: true,
		}},
		BannedUsers: []UserID{"banned-id"},
		Roles:       roles,
		TracksQueue: []Track{{
			UserID:        "owner-id",
			TrackID:       "track-1",
			TrackName:     "Track 1",
			TrackDuration: 1000,
		}},
		MaxUsers: MaxUsers,
		Logs:     []Log{{Type: LogJoinRoom, Details: "joined"}},
	}

	p := r.ToProto()

	assert.Equal(t, UUIDToBytes(r.ID), p.GetId())
	assert.Equal(t, "My room", p.GetName())
	assert.Equal(t, "secret", p.GetPassword())
	assert.Equal(t, []string{"banned-id"}, p.GetBannedUsers())
	assert.Equal(t, uint32(MaxUsers), p.GetMaxUsers())

	require.Len(t, p.GetUsers(), 1)
	assert.Equal(t, "owner-id", p.GetUsers()[0].GetId())
	assert.Equal(t, UUIDToBytes(owner.ID), p.GetUsers()[0].GetRoleId())
	assert.True(t, p.GetUsers()[0].GetIsConnected())

	require.Len(t, p.GetTracksQueue(), 1)
	assert.Equal(t, "Track 1", p.GetTracksQueue()[0].GetTrackName())

	require.Len(t, p.GetRoleManager().GetRoles(), 5)
	assert.Equal(t, "Owner", p.GetRoleManager().GetRoles()[0].GetName())
	assert.True(t, p.GetRoleManager().GetRoles()[0].GetPermissions().GetCanManageRoom())

	require.Len(t, p.GetLogs(), 1)
	assert.Equal(t, pb.LogType(LogJoinRoom), p.GetLogs()[0].GetType())
	assert.Equal(t, "joined", p.GetLogs()[0].GetDetails())
}
