package cascade

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

// ProjectCascade 项目删除 -> 软删除其下活跃事项与团队
// 事项删除时一并置为 CANCELLED, 再逐个发布 IssueDeleted / TeamDeleted
type ProjectCascade struct {
	bus    *event.Bus
	logger *zap.Logger
}

func NewProjectCascade(bus *event.Bus, logger *zap.Logger) *ProjectCascade {
	return &ProjectCascade{bus: bus, logger: logger}
}

func (c *ProjectCascade) Register(bus *event.Bus) {
	bus.Subscribe(event.ProjectDeletedName, c.onProjectDeleted)
}

func (c *ProjectCascade) onProjectDeleted(tx *gorm.DB, e event.Event) error {
	evt, ok := e.(event.ProjectDeleted)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", e)
	}

	if err := c.deleteIssues(tx, evt.ProjectID); err != nil {
		return err
	}
	return c.deleteTeams(tx, evt.ProjectID)
}

func (c *ProjectCascade) deleteIssues(tx *gorm.DB, projectID int64) error {
	var issues []model.Issue
	if err := tx.Where("project_id = ?", projectID).Find(&issues).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目下事项失败", err)
	}
	if len(issues) == 0 {
		return nil
	}

	ids := lo.Map(issues, func(i model.Issue, _ int) int64 { return i.ID })

	// 删除即取消: 先置状态再打墓碑
	if err := tx.Model(&model.Issue{}).Where("id IN ?", ids).
		Update("status", constants.IssueStatusCancelled).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新事项状态失败", err)
	}
	if err := tx.Delete(&model.Issue{}, ids).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目下事项失败", err)
	}

	c.logger.Info("级联删除事项",
		zap.Int64("project_id", projectID),
		zap.Int("count", len(issues)))

	for _, id := range ids {
		if err := c.bus.Publish(tx, event.IssueDeleted{IssueID: id}); err != nil {
			return err
		}
	}
	return nil
}

func (c *ProjectCascade) deleteTeams(tx *gorm.DB, projectID int64) error {
	var teams []model.Team
	if err := tx.Where("project_id = ?", projectID).Find(&teams).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目下团队失败", err)
	}
	if len(teams) == 0 {
		return nil
	}

	ids := lo.Map(teams, func(t model.Team, _ int) int64 { return t.ID })
	if err := tx.Delete(&model.Team{}, ids).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目下团队失败", err)
	}

	c.logger.Info("级联删除团队",
		zap.Int64("project_id", projectID),
		zap.Int("count", len(teams)))

	for _, id := range ids {
		if err := c.bus.Publish(tx, event.TeamDeleted{TeamID: id}); err != nil {
			return err
		}
	}
	return nil
}
