package room

import (
	"github.com/google/uuid"
)

// RoleManager keeps the room roles ordered, most powerful first. The
// position in the slice is the authority used when comparing two users.
type RoleManager struct {
	roles []Role
}

type Role struct {
	ID          uuid.UUID
	Name        string
	Permissions RolePermission
}

type RolePermission struct {
	CanUseControls bool
	// Only applies to users holding a lower role.
	CanManageUsers  bool
	CanAddSong      bool
	CanAddModerator bool
	// Owner level: delete the room, manage roles.
	CanManageRoom bool
}

func NewRoleManager(roles ...Role) *RoleManager {
	return &RoleManager{roles: roles}
}

// DefaultRoleManager returns the preset hierarchy every new room starts
// with: Owner, Admin, Moderator, VIP, Guest.
func DefaultRoleManager() *RoleManager {
	return NewRoleManager(
		NewOwnerRole(),
		NewAdminRole(),
		NewModeratorRole(),
		NewVIPRole(),
		NewGuestRole(),
	)
}

// AddRole appends a role at the bottom of the hierarchy. Returns false
// when the name is already taken.
func (rm *RoleManager) AddRole(name string, permissions RolePermission) bool {
	for i := range rm.roles {
		if rm.roles[i].Name == name {
			return false
		}
	}

	rm.roles = append(rm.roles, Role{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        name,
		Permissions: permissions,
	})

	return true
}

func (rm *RoleManager) RemoveRole(id uuid.UUID) {
	roles := rm.roles[:0]
	for i := range rm.roles {
		if rm.roles[i].ID != id {
			roles = append(roles, rm.roles[i])
		}
	}
	rm.roles = roles
}

func (rm *RoleManager) EditRole(id uuid.UUID, name string, permissions RolePermission) {
	for i := range rm.roles {
		if rm.roles[i].ID != id {
			continue
		}

		rm.roles[i].Name = name
		rm.roles[i].Permissions = permissions
		break
	}
}

func (rm *RoleManager) RenameRole(id uuid.UUID, name string) bool {
	for i := range rm.roles {
		if rm.roles[i].ID != id {
			continue
		}

		rm.roles[i].Name = name
		return true
	}
	return false
}

// GetRoleByName returns the role by value so later reordering or
// removal cannot change what the caller holds.
func (rm *RoleManager) GetRoleByName(name string) (Role, bool) {
	for i := range rm.roles {
		if rm.roles[i].Name == name {
			return rm.roles[i], true
		}
	}
	return Role{}, false
}

func (rm *RoleManager) GetRoleByID(id uuid.UUID) (Role, bool) {
	for i := range rm.roles {
		if rm.roles[i].ID == id {
			return rm.roles[i], true
		}
	}
	return Role{}, false
}

// IndexOf returns the position of a role in the hierarchy, or -1. Lower
// index means more authority.
func (rm *RoleManager) IndexOf(id uuid.UUID) int {
	for i := range rm.roles {
		if rm.roles[i].ID == id {
			return i
		}
	}
	return -1
}

func (rm *RoleManager) SwapRoles(idx1, idx2 int) {
	if idx1 < 0 || idx2 < 0 || idx1 >= len(rm.roles) || idx2 >= len(rm.roles) {
		return
	}

	rm.roles[idx1], rm.roles[idx2] = rm.roles[idx2], rm.roles[idx1]
}

func (rm *RoleManager) GetRoles() []Role {
	return rm.roles
}

func (rm *RoleManager) Clone() *RoleManager {
	return &RoleManager{roles: append([]Role(nil), rm.roles...)}
}

func NewGuestRole() Role {
	return Role{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "Guest",
		Permissions: RolePermission{},
	}
}

func NewVIPRole() Role {
	return Role{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "VIP",
		Permissions: RolePermission{
			CanAddSong: true,
		},
	}
}

func NewModeratorRole() Role {
	return Role{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Moderator",
		Permissions: RolePermission{
			CanUseControls: true,
			CanManageUsers: true,
			CanAddSong:     true,
		},
	}
}

func NewAdminRole() Role {
	return Role{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Admin",
		Permissions: RolePermission{
			CanUseControls:  true,
			CanManageUsers:  true,
			CanAddSong:      true,
			CanAddModerator: true,
		},
	}
}

func NewOwnerRole() Role {
	return Role{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Owner",
		Permissions: RolePermission{
			CanUseControls:  true,
			CanManageUsers:  true,
			CanAddSong:      true,
			CanAddModerator: true,
			CanManageRoom:   true,
		},
	}
}
