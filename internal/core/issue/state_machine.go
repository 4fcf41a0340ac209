package issue

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

// transitions 事项状态转换表, 未登记的边一律拒绝
var transitions = map[string]map[string]struct{}{
	constants.IssueStatusBacklog: {
		constants.IssueStatusInAnalysis: {},
	},
	constants.IssueStatusInAnalysis: {
		constants.IssueStatusBacklog:    {},
		constants.IssueStatusInProgress: {},
		constants.IssueStatusBlocked:    {},
	},
	constants.IssueStatusInProgress: {
		constants.IssueStatusInAnalysis: {},
		constants.IssueStatusBlocked:    {},
		constants.IssueStatusCompleted:  {},
	},
	constants.IssueStatusBlocked: {
		constants.IssueStatusInProgress: {},
		constants.IssueStatusCancelled:  {},
	},
	// CANCELLED / COMPLETED 无出边
}

// StateMachine 事项状态机
// 状态变更成功时通过事件总线发布 IssueStatusChanged, 由审计记录器消费
type StateMachine struct {
	bus    *event.Bus
	logger *zap.Logger
}

func NewStateMachine(bus *event.Bus, logger *zap.Logger) *StateMachine {
	return &StateMachine{
		bus:    bus,
		logger: logger,
	}
}

// Validate 校验 (当前状态, 目标状态, 原因) 是否为合法转换
// 同状态视为合法的no-op, 由调用方短路
func (sm *StateMachine) Validate(current, next string, reason *string) error {
	if current == next {
		return nil
	}

	// 已完成为终态
	if current == constants.IssueStatusCompleted {
		return pkgErrors.New(pkgErrors.CodeInvalidTransition, "事项已完成, 状态不可再变更")
	}

	// BLOCKED/CANCELLED 必须携带原因
	if next == constants.IssueStatusBlocked || next == constants.IssueStatusCancelled {
		if reason == nil || strings.TrimSpace(*reason) == "" {
			return pkgErrors.New(pkgErrors.CodeInvalidTransition,
				fmt.Sprintf("转换到 %s 必须提供原因", next))
		}
	}

	if allowed, ok := transitions[current]; ok {
		if _, ok := allowed[next]; ok {
			return nil
		}
	}
	return pkgErrors.New(pkgErrors.CodeInvalidTransition,
		fmt.Sprintf("不允许的状态转换: %s -> %s", current, next))
}

// ChangeStatus 在调用方事务内执行一次状态变更
// 同状态直接返回, 不产生审计记录
// 事件在状态落库前发布, 订阅方看到的是变更前的快照
func (sm *StateMachine) ChangeStatus(tx *gorm.DB, issue *model.Issue, next string, reason *string, actorID *int64) error {
	log := sm.logger.Sugar().With(zap.Int64("issue_id", issue.ID))

	if issue.Status == next {
		log.Debugf("事项状态已是 %s, 跳过", next)
		return nil
	}

	if err := sm.Validate(issue.Status, next, reason); err != nil {
		log.Warnf("状态转换被拒绝 %s -> %s: %v", issue.Status, next, err)
		return err
	}

	if err := sm.bus.Publish(tx, event.IssueStatusChanged{
		Issue:          issue,
		PreviousStatus: issue.Status,
		NewStatus:      next,
		ChangedByID:    actorID,
		Reason:         reason,
	}); err != nil {
		return err
	}

	previous := issue.Status
	issue.Status = next
	if err := tx.Model(issue).Update("status", next).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新事项状态失败", err)
	}

	log.Infof("事项状态变更成功: %s -> %s", previous, next)
	return nil
}

// CanTransition 查询转换表, 仅判断边是否存在
func CanTransition(from, to string) bool {
	if allowed, ok := transitions[from]; ok {
		_, ok := allowed[to]
		return ok
	}
	return false
}
