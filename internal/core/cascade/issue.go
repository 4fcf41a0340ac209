package cascade

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

// IssueCascade 事项删除 -> 软删除其下评论/附件/历史记录
// 三类子实体均为叶子, 不再发布事件
type IssueCascade struct {
	logger *zap.Logger
}

func NewIssueCascade(logger *zap.Logger) *IssueCascade {
	return &IssueCascade{logger: logger}
}

func (c *IssueCascade) Register(bus *event.Bus) {
	bus.Subscribe(event.IssueDeletedName, c.onIssueDeleted)
}

func (c *IssueCascade) onIssueDeleted(tx *gorm.DB, e event.Event) error {
	evt, ok := e.(event.IssueDeleted)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", e)
	}

	if err := tx.Where("issue_id = ?", evt.IssueID).
		Delete(&model.IssueComment{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除事项评论失败", err)
	}
	if err := tx.Where("issue_id = ?", evt.IssueID).
		Delete(&model.IssueAttachment{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除事项附件失败", err)
	}
	if err := tx.Where("issue_id = ?", evt.IssueID).
		Delete(&model.IssueHistory{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除事项历史失败", err)
	}

	c.logger.Info("级联删除事项子记录", zap.Int64("issue_id", evt.IssueID))
	return nil
}
