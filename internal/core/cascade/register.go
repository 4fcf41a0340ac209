// Package cascade 实现父实体删除后的级联软删除
//
// 级联链(完整规格, 子级按注册顺序执行):
//
//	Department deleted -> Project      (继续发布 ProjectDeleted)
//	Project    deleted -> Issue        (置为 CANCELLED, 继续发布 IssueDeleted)
//	                   -> Team         (继续发布 TeamDeleted)
//	Issue      deleted -> IssueComment / IssueAttachment / IssueHistory (叶子)
//	Team       deleted -> TeamMember   (叶子)
//	User       deleted -> TeamMember / RefreshToken (叶子)
//
// 每个协调器只认识自己的子实体, 通过事件总线与上游解耦
// 整条链运行在同一个事务里, 任一环节失败则全部回滚
package cascade

import (
	"go.uber.org/zap"

	"worktrack/internal/core/event"
)

// Register 在总线上注册全部级联协调器
func Register(bus *event.Bus, logger *zap.Logger) {
	NewDepartmentCascade(bus, logger).Register(bus)
	NewProjectCascade(bus, logger).Register(bus)
	NewIssueCascade(logger).Register(bus)
	NewTeamCascade(logger).Register(bus)
	NewUserCascade(logger).Register(bus)
}
