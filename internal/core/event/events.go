package event

import (
	"worktrack/internal/model"
)

// Event 领域事件, Name 用于订阅路由
type Event interface {
	Name() string
}

// 事件名
const (
	DepartmentDeletedName  = "department.deleted"
	ProjectDeletedName     = "project.deleted"
	TeamDeletedName        = "team.deleted"
	IssueDeletedName       = "issue.deleted"
	UserDeletedName        = "user.deleted"
	IssueStatusChangedName = "issue.status_changed"
)

// DepartmentDeleted 部门已删除
type DepartmentDeleted struct {
	DepartmentID int64
}

func (DepartmentDeleted) Name() string { return DepartmentDeletedName }

// ProjectDeleted 项目已删除
type ProjectDeleted struct {
	ProjectID int64
}

func (ProjectDeleted) Name() string { return ProjectDeletedName }

// TeamDeleted 团队已删除
type TeamDeleted struct {
	TeamID int64
}

func (TeamDeleted) Name() string { return TeamDeletedName }

// IssueDeleted 事项已删除
type IssueDeleted struct {
	IssueID int64
}

func (IssueDeleted) Name() string { return IssueDeletedName }

// UserDeleted 用户已删除
type UserDeleted struct {
	UserID int64
}

func (UserDeleted) Name() string { return UserDeletedName }

// IssueStatusChanged 事项状态已变更, 携带变更前快照供审计记录消费
type IssueStatusChanged struct {
	Issue          *model.Issue
	PreviousStatus string
	NewStatus      string
	ChangedByID    *int64
	Reason         *string
}

func (IssueStatusChanged) Name() string { return IssueStatusChangedName }
