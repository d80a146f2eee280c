package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoleManagerHierarchy(t *testing.T) {
	rm := DefaultRoleManager()

	roles := rm.GetRoles()
	require.Len(t, roles, 5)

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Owner", "Admin", "Moderator", "VIP", "Guest"}, names)

	assert.True(t, roles[0].Permissions.CanManageRoom)
	assert.False(t, roles[1].Permissions.CanManageRoom)
	assert.Equal(t, RolePermission{}, roles[4].Permissions)
}

func TestAddRoleRejectsDuplicateName(t *testing.T) {
	rm := DefaultRoleManager()

	assert.False(t, rm.AddRole("Guest", RolePermission{}))
	assert.Len(t, rm.GetRoles(), 5)

	assert.True(t, rm.AddRole("DJ", RolePermission{CanAddSong: true}))
	roles := rm.GetRoles()
	require.Len(t, roles, 6)
	// New roles land at the bottom of the hierarchy.
	assert.Equal(t, "DJ", roles[5].Name)
}

func TestRemoveRole(t *testing.T) {
	rm := DefaultRoleManager()

	role, ok := rm.GetRoleByName("VIP")
	require.True(t, ok)

	rm.RemoveRole(role.ID)

	assert.Len(t, rm.GetRoles(), 4)
	_, ok = rm.GetRoleByName("VIP")
	assert.False(t, ok)
}

func TestRenameRole(t *testing.T) {
	rm := DefaultRoleManager()

	role, ok := rm.GetRoleByName("VIP")
	require.True(t, ok)

	assert.True(t, rm.RenameRole(role.ID, "Very Important"))
	renamed, ok := rm.GetRoleByID(role.ID)
	require.True(t, ok)
	assert.Equal(t, "Very Important", renamed.Name)

	assert.False(t, rm.RenameRole(NewGuestRole().ID, "Nope"))
}

func TestEditRole(t *testing.T) {
	rm := DefaultRoleManager()

	role, ok := rm.GetRoleByName("Guest")
	require.True(t, ok)

	rm.EditRole(role.ID, "Listener", RolePermission{CanAddSong: true})

	edited, ok := rm.GetRoleByID(role.ID)
	require.True(t, ok)
	assert.Equal(t, "Listener", edited.Name)
	assert.True(t, edited.Permissions.CanAddSong)
}

func TestIndexOfAndSwap(t *testing.T) {
	rm := DefaultRoleManager()

	admin, _ := rm.GetRoleByName("Admin")
	mod, _ := rm.GetRoleByName("Moderator")

	assert.Equal(t, 1, rm.IndexOf(admin.ID))
	assert.Equal(t, 2, rm.IndexOf(mod.ID))
	assert.Equal(t, -1, rm.IndexOf(NewGuestRole().ID))

	rm.SwapRoles(1, 2)
	assert.Equal(t, 2, rm.IndexOf(admin.ID))
	assert.Equal(t, 1, rm.IndexOf(mod.ID))

	// Out of range indexes are ignored.
	rm.SwapRoles(-1, 10)
	assert.Equal(t, 2, rm.IndexOf(admin.ID))
}

func TestLookupsSurviveReordering(t *testing.T) {
	rm := DefaultRoleManager()

	admin, ok := rm.GetRoleByName("Admin")
	require.True(t, ok)
	adminID := admin.ID

	// Reorder, grow and shrink the hierarchy under the held value.
	rm.SwapRoles(1, 2)
	rm.AddRole("DJ", RolePermission{CanAddSong: true})
	guest, _ := rm.GetRoleByName("Guest")
	rm.RemoveRole(guest.ID)

	assert.Equal(t, adminID, admin.ID)
	assert.Equal(t, "Admin", admin.Name)

	found, ok := rm.GetRoleByID(adminID)
	require.True(t, ok)
	assert.Equal(t, "Admin", found.Name)
}

func TestRoleManagerClone(t *testing.T) {
	rm := DefaultRoleManager()
	clone := rm.Clone()

	clone.AddRole("DJ", RolePermission{CanAddSong: true})

	assert.Len(t, rm.GetRoles(), 5)
	assert.Len(t, clone.GetRoles(), 6)
}
