package cascade

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

// UserCascade 用户删除 -> 软删除该用户在所有团队的成员记录, 并作废其刷新令牌
type UserCascade struct {
	logger *zap.Logger
}

func NewUserCascade(logger *zap.Logger) *UserCascade {
	return &UserCascade{logger: logger}
}

func (c *UserCascade) Register(bus *event.Bus) {
	bus.Subscribe(event.UserDeletedName, c.onUserDeleted)
}

func (c *UserCascade) onUserDeleted(tx *gorm.DB, e event.Event) error {
	evt, ok := e.(event.UserDeleted)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", e)
	}

	members := tx.Where("user_id = ?", evt.UserID).Delete(&model.TeamMember{})
	if members.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除用户团队成员记录失败", members.Error)
	}

	tokens := tx.Where("user_id = ?", evt.UserID).Delete(&model.RefreshToken{})
	if tokens.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "作废用户刷新令牌失败", tokens.Error)
	}

	c.logger.Info("级联清理用户关联记录",
		zap.Int64("user_id", evt.UserID),
		zap.Int64("memberships", members.RowsAffected),
		zap.Int64("tokens", tokens.RowsAffected))
	return nil
}
