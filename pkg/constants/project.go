package constants

// ProjectStatus 项目状态
const (
	ProjectStatusInProgress = "IN_PROGRESS"
	ProjectStatusOnHold     = "ON_HOLD"
	ProjectStatusCancelled  = "CANCELLED"
	ProjectStatusCompleted  = "COMPLETED"
	ProjectStatusArchived   = "ARCHIVED"
)

var projectStatuses = map[string]struct{}{
	ProjectStatusInProgress: {},
	ProjectStatusOnHold:     {},
	ProjectStatusCancelled:  {},
	ProjectStatusCompleted:  {},
	ProjectStatusArchived:   {},
}

// IsValidProjectStatus 检查项目状态是否合法
func IsValidProjectStatus(status string) bool {
	_, ok := projectStatuses[status]
	return ok
}

// Role 用户角色
const (
	RoleProjectManager = "PROJECT_MANAGER"
	RoleTeamLeader     = "TEAM_LEADER"
	RoleTeamMember     = "TEAM_MEMBER"
)

var roles = map[string]struct{}{
	RoleProjectManager: {},
	RoleTeamLeader:     {},
	RoleTeamMember:     {},
}

// IsValidRole 检查角色是否合法
func IsValidRole(role string) bool {
	_, ok := roles[role]
	return ok
}
