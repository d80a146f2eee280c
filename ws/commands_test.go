package ws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/Snoupix/sharify-be/proto"
	"github.com/Snoupix/sharify-be/room"
)

// newTestRoom creates a room with an owner and a guest and returns the
// manager plus the room copy.
func newTestRoom(t *testing.T) (*room.Manager, *room.Room) {
	t.Helper()

	ctx := context.Background()
	rooms := room.NewManager()

	created, err := rooms.CreateRoom(ctx, "owner-id", "Owner", "My room", room.Credentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    3600,
		CreatedAt:    1700000000,
	})
	require.NoError(t, err)

	joined, err := rooms.JoinRoom(ctx, created.ID, "Guest", "guest-id", created.Password)
	require.NoError(t, err)

	return rooms, joined
}

func TestProcessNilCommand(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{})
	assert.Equal(t, ImpactNothing, outcome.Impact)
	assert.Nil(t, outcome.Response)
	assert.Nil(t, outcome.Failed)
}

func TestProcessGetRoom(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "guest-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_GetRoom{GetRoom: true},
	})

	require.Nil(t, outcome.Failed)
	require.NotNil(t, outcome.Response)
	assert.Equal(t, ImpactNothing, outcome.Impact)
	assert.Equal(t, "My room", outcome.Response.GetRoom().GetName())
	assert.Len(t, outcome.Response.GetRoom().GetUsers(), 2)
}

func TestGuestCannotUsePlayerControls(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "guest-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_Pause{Pause: true},
	})

	require.NotNil(t, outcome.Failed)
	assert.Equal(t, ImpactNothing, outcome.Impact)
	assert.Equal(t, room.ErrUnauthorized.Error(), outcome.Failed.GetRoomError().GetError())
}

func TestGuestCannotKick(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "guest-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_Kick_{Kick: &pb.Command_Kick{UserId: "owner-id", Reason: "nope"}},
	})

	require.NotNil(t, outcome.Failed)
	assert.Equal(t, room.ErrUnauthorized.Error(), outcome.Failed.GetRoomError().GetError())
}

func TestOwnerKicksGuest(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_Kick_{Kick: &pb.Command_Kick{UserId: "guest-id", Reason: "spam"}},
	})

	require.Nil(t, outcome.Failed)
	assert.Equal(t, ImpactRoom, outcome.Impact)

	updated := rooms.GetRoom(context.Background(), r.ID)
	assert.Len(t, updated.Users, 1)
}

func TestOwnerBansGuest(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_Ban_{Ban: &pb.Command_Ban{UserId: "guest-id", Reason: "spam"}},
	})

	require.Nil(t, outcome.Failed)
	assert.Equal(t, ImpactRoom, outcome.Impact)

	updated := rooms.GetRoom(context.Background(), r.ID)
	assert.Contains(t, updated.BannedUsers, "guest-id")
}

func TestLeaveRoom(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "guest-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_LeaveRoom{LeaveRoom: true},
	})

	require.Nil(t, outcome.Failed)
	assert.Equal(t, ImpactRoom, outcome.Impact)

	updated := rooms.GetRoom(context.Background(), r.ID)
	assert.Len(t, updated.Users, 1)
}

func TestCreateRole(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_CreateRole_{CreateRole: &pb.Command_CreateRole{
			Name:        "DJ",
			Permissions: &pb.RolePermission{CanAddSong: true},
		}},
	})

	require.Nil(t, outcome.Failed)
	assert.Equal(t, ImpactRoom, outcome.Impact)

	updated := rooms.GetRoom(context.Background(), r.ID)
	role, ok := updated.Roles.GetRoleByName("DJ")
	require.True(t, ok)
	assert.True(t, role.Permissions.CanAddSong)
}

func TestCreateRoleDuplicateName(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_CreateRole_{CreateRole: &pb.Command_CreateRole{
			Name:        "Guest",
			Permissions: &pb.RolePermission{},
		}},
	})

	require.NotNil(t, outcome.Failed)
	assert.Equal(t, ImpactNothing, outcome.Impact)
	assert.Equal(t, "A role with that name already exists", outcome.Failed.GetGenericError())
}

func TestRenameRoleBelowAuthor(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	vip, ok := r.Roles.GetRoleByName("VIP")
	require.True(t, ok)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_RenameRole_{RenameRole: &pb.Command_RenameRole{
			RoleId: room.UUIDToBytes(vip.ID),
			Name:   "Very Important",
		}},
	})

	require.Nil(t, outcome.Failed)
	assert.Equal(t, ImpactRoom, outcome.Impact)

	updated := rooms.GetRoom(context.Background(), r.ID)
	renamed, ok := updated.Roles.GetRoleByID(vip.ID)
	require.True(t, ok)
	assert.Equal(t, "Very Important", renamed.Name)
}

func TestRenameOwnRoleIsRejected(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	owner, ok := r.Roles.GetRoleByName("Owner")
	require.True(t, ok)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_RenameRole_{RenameRole: &pb.Command_RenameRole{
			RoleId: room.UUIDToBytes(owner.ID),
			Name:   "Boss",
		}},
	})

	require.NotNil(t, outcome.Failed)
	assert.Equal(t, room.ErrUnauthorized.Error(), outcome.Failed.GetRoomError().GetError())
}

func TestDeleteRoleInUse(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	guest, ok := r.Roles.GetRoleByName("Guest")
	require.True(t, ok)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_DeleteRole{DeleteRole: room.UUIDToBytes(guest.ID)},
	})

	require.NotNil(t, outcome.Failed)
	assert.Equal(t, room.ErrRoleInUse.Error(), outcome.Failed.GetRoomError().GetError())
}

func TestDeleteUnusedRole(t *testing.T) {
	rooms, r := newTestRoom(t)
	p := NewProcessor(rooms, "owner-id", r.ID)

	vip, ok := r.Roles.GetRoleByName("VIP")
	require.True(t, ok)

	outcome := p.Process(context.Background(), &pb.Command{
		Type: &pb.Command_DeleteRole{DeleteRole: room.UUIDToBytes(vip.ID)},
	})

	require.Nil(t, outcome.Failed)
	assert.Equal(t, ImpactRoom, outcome.Impact)

	updated := rooms.GetRoom(context.Background(), r.ID)
	_, ok = updated.Roles.GetRoleByID(vip.ID)
	assert.False(t, ok)
}

func TestCommandImpact(t *testing.T) {
	cases := []struct {
		cmd    *pb.Command
		impact StateImpact
	}{
		{&pb.Command{Type: &pb.Command_GetRoom{GetRoom: true}}, ImpactNothing},
		{&pb.Command{Type: &pb.Command_Search{Search: "daft punk"}}, ImpactNothing},
		{&pb.Command{Type: &pb.Command_LeaveRoom{LeaveRoom: true}}, ImpactRoom},
		{&pb.Command{Type: &pb.Command_AddToQueue{AddToQueue: &pb.Command_AddTrackToQueue{}}}, ImpactBoth},
		{&pb.Command{Type: &pb.Command_Pause{Pause: true}}, ImpactBoth},
		{&pb.Command{Type: &pb.Command_SkipNext{SkipNext: true}}, ImpactBoth},
	}

	for _, tc := range cases {
		impact, _ := commandImpact(tc.cmd)
		assert.Equal(t, tc.impact, impact)
	}
}
