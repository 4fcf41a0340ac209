package cascade

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

// TeamCascade 团队删除 -> 软删除其下活跃成员 (叶子)
type TeamCascade struct {
	logger *zap.Logger
}

func NewTeamCascade(logger *zap.Logger) *TeamCascade {
	return &TeamCascade{logger: logger}
}

func (c *TeamCascade) Register(bus *event.Bus) {
	bus.Subscribe(event.TeamDeletedName, c.onTeamDeleted)
}

func (c *TeamCascade) onTeamDeleted(tx *gorm.DB, e event.Event) error {
	evt, ok := e.(event.TeamDeleted)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", e)
	}

	result := tx.Where("team_id = ?", evt.TeamID).Delete(&model.TeamMember{})
	if result.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除团队成员失败", result.Error)
	}

	c.logger.Info("级联删除团队成员",
		zap.Int64("team_id", evt.TeamID),
		zap.Int64("count", result.RowsAffected))
	return nil
}
