package cascade

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

// DepartmentCascade 部门删除 -> 软删除其下活跃项目, 并逐个发布 ProjectDeleted
type DepartmentCascade struct {
	bus    *event.Bus
	logger *zap.Logger
}

func NewDepartmentCascade(bus *event.Bus, logger *zap.Logger) *DepartmentCascade {
	return &DepartmentCascade{bus: bus, logger: logger}
}

func (c *DepartmentCascade) Register(bus *event.Bus) {
	bus.Subscribe(event.DepartmentDeletedName, c.onDepartmentDeleted)
}

func (c *DepartmentCascade) onDepartmentDeleted(tx *gorm.DB, e event.Event) error {
	evt, ok := e.(event.DepartmentDeleted)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", e)
	}

	var projects []model.Project
	if err := tx.Where("department_id = ?", evt.DepartmentID).Find(&projects).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询部门下项目失败", err)
	}
	if len(projects) == 0 {
		return nil
	}

	ids := lo.Map(projects, func(p model.Project, _ int) int64 { return p.ID })
	if err := tx.Delete(&model.Project{}, ids).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除部门下项目失败", err)
	}

	c.logger.Info("级联删除项目",
		zap.Int64("department_id", evt.DepartmentID),
		zap.Int("count", len(projects)))

	// 深度优先: 每个项目的下游级联走完才处理下一个项目
	for _, id := range ids {
		if err := c.bus.Publish(tx, event.ProjectDeleted{ProjectID: id}); err != nil {
			return err
		}
	}
	return nil
}
