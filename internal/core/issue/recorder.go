package issue

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

// HistoryRecorder 审计记录器
// 订阅 IssueStatusChanged, 每次成功的状态变更追加一条不可变历史记录
type HistoryRecorder struct {
	logger *zap.Logger
}

func NewHistoryRecorder(logger *zap.Logger) *HistoryRecorder {
	return &HistoryRecorder{logger: logger}
}

// Register 在总线上注册
func (r *HistoryRecorder) Register(bus *event.Bus) {
	bus.Subscribe(event.IssueStatusChangedName, r.onStatusChanged)
}

func (r *HistoryRecorder) onStatusChanged(tx *gorm.DB, e event.Event) error {
	evt, ok := e.(event.IssueStatusChanged)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", e)
	}

	history := &model.IssueHistory{
		IssueID:        evt.Issue.ID,
		PreviousStatus: evt.PreviousStatus,
		NewStatus:      evt.NewStatus,
		ChangedByID:    evt.ChangedByID,
		Reason:         evt.Reason,
	}
	if err := tx.Create(history).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "写入事项历史失败", err)
	}

	r.logger.Debug("已写入事项历史",
		zap.Int64("issue_id", evt.Issue.ID),
		zap.String("previous", evt.PreviousStatus),
		zap.String("new", evt.NewStatus))
	return nil
}
