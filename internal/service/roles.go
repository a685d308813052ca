package service

import (
	"helpdesk-admin-backend/internal/database/models"
)

// roleRanks orders the help-desk hierarchy. Higher rank manages lower.
var roleRanks = map[models.PersonRole]int{
	models.PersonRoleRequester: 0,
	models.PersonRoleOfficial:  1,
	models.PersonRoleManager:   2,
	models.PersonRoleAdmin:     3,
}

// RoleRank returns the numeric rank of a role, -1 for unknown roles
func RoleRank(role models.PersonRole) int {
	rank, ok := roleRanks[role]
	if !ok {
		return -1
	}
	return rank
}

// IsValidRole reports whether role names a known role
func IsValidRole(role models.PersonRole) bool {
	_, ok := roleRanks[role]
	return ok
}

// AssignableRoles returns the roles a viewer may grant. Managers and below
// may only grant roles strictly below their own; admins may grant any role
// including admin.
func AssignableRoles(viewer models.PersonRole) []models.PersonRole {
	viewerRank := RoleRank(viewer)
	if viewerRank < 0 {
		return nil
	}

	var roles []models.PersonRole
	for _, role := range []models.PersonRole{
		models.PersonRoleAdmin,
		models.PersonRoleManager,
		models.PersonRoleOfficial,
		models.PersonRoleRequester,
	} {
		rank := RoleRank(role)
		if rank < viewerRank || (viewer == models.PersonRoleAdmin && role == models.PersonRoleAdmin) {
			roles = append(roles, role)
		}
	}
	return roles
}

// CanAssign reports whether the viewer may grant the target role
func CanAssign(viewer, target models.PersonRole) bool {
	for _, role := range AssignableRoles(viewer) {
		if role == target {
			return true
		}
	}
	return false
}

// CanManage reports whether the viewer may modify a person holding the
// subject role. A person manages peers and below, never above; admins
// manage everyone including other admins.
func CanManage(viewer, subject models.PersonRole) bool {
	viewerRank := RoleRank(viewer)
	subjectRank := RoleRank(subject)
	if viewerRank < 0 || subjectRank < 0 {
		return false
	}
	if viewer == models.PersonRoleAdmin {
		return true
	}
	return subjectRank < viewerRank
}

// VisibleRoles returns the roles whose holders appear in listings for the
// viewer. Admin-only records are hidden from everyone below admin.
func VisibleRoles(viewer models.PersonRole) []models.PersonRole {
	viewerRank := RoleRank(viewer)
	if viewerRank < 0 {
		return nil
	}

	var roles []models.PersonRole
	for role, rank := range roleRanks {
		if rank <= viewerRank {
			roles = append(roles, role)
		}
	}
	return roles
}
