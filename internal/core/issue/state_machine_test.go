package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"worktrack/internal/core/event"
	"worktrack/internal/model"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Issue{}, &model.IssueHistory{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestValidateTransitionTable(t *testing.T) {
	sm := NewStateMachine(event.NewBus(zap.NewNop()), zap.NewNop())
	reason := strPtr("有原因")

	tests := []struct {
		name    string
		current string
		next    string
		reason  *string
		wantOK  bool
	}{
		{"待办到分析", constants.IssueStatusBacklog, constants.IssueStatusInAnalysis, nil, true},
		{"分析退回待办", constants.IssueStatusInAnalysis, constants.IssueStatusBacklog, nil, true},
		{"分析到进行", constants.IssueStatusInAnalysis, constants.IssueStatusInProgress, nil, true},
		{"分析到阻塞", constants.IssueStatusInAnalysis, constants.IssueStatusBlocked, reason, true},
		{"进行退回分析", constants.IssueStatusInProgress, constants.IssueStatusInAnalysis, nil, true},
		{"进行到阻塞", constants.IssueStatusInProgress, constants.IssueStatusBlocked, reason, true},
		{"进行到完成", constants.IssueStatusInProgress, constants.IssueStatusCompleted, nil, true},
		{"阻塞恢复进行", constants.IssueStatusBlocked, constants.IssueStatusInProgress, nil, true},
		{"阻塞到取消", constants.IssueStatusBlocked, constants.IssueStatusCancelled, reason, true},

		{"待办不能直达进行", constants.IssueStatusBacklog, constants.IssueStatusInProgress, nil, false},
		{"待办不能直达完成", constants.IssueStatusBacklog, constants.IssueStatusCompleted, nil, false},
		{"待办不能阻塞", constants.IssueStatusBacklog, constants.IssueStatusBlocked, reason, false},
		{"分析不能直达完成", constants.IssueStatusInAnalysis, constants.IssueStatusCompleted, nil, false},
		{"进行不能直接取消", constants.IssueStatusInProgress, constants.IssueStatusCancelled, reason, false},
		{"阻塞不能退回分析", constants.IssueStatusBlocked, constants.IssueStatusInAnalysis, nil, false},
		{"已完成为终态", constants.IssueStatusCompleted, constants.IssueStatusInProgress, nil, false},
		{"已取消无出边", constants.IssueStatusCancelled, constants.IssueStatusInProgress, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sm.Validate(tt.current, tt.next, tt.reason)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, pkgErrors.Is(err, pkgErrors.CodeInvalidTransition))
			}
		})
	}
}

func TestValidateReasonRequired(t *testing.T) {
	sm := NewStateMachine(event.NewBus(zap.NewNop()), zap.NewNop())

	// 合法的边, 但缺少原因
	err := sm.Validate(constants.IssueStatusInProgress, constants.IssueStatusBlocked, nil)
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeInvalidTransition))

	// 空白原因同样拒绝
	err = sm.Validate(constants.IssueStatusBlocked, constants.IssueStatusCancelled, strPtr("   "))
	require.Error(t, err)

	err = sm.Validate(constants.IssueStatusInProgress, constants.IssueStatusBlocked, strPtr("依赖阻塞"))
	assert.NoError(t, err)
}

func TestValidateSameStatusIsNoop(t *testing.T) {
	sm := NewStateMachine(event.NewBus(zap.NewNop()), zap.NewNop())

	assert.NoError(t, sm.Validate(constants.IssueStatusCompleted, constants.IssueStatusCompleted, nil))
	assert.NoError(t, sm.Validate(constants.IssueStatusBlocked, constants.IssueStatusBlocked, nil))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(constants.IssueStatusBacklog, constants.IssueStatusInAnalysis))
	assert.False(t, CanTransition(constants.IssueStatusCompleted, constants.IssueStatusBacklog))
	assert.False(t, CanTransition("UNKNOWN", constants.IssueStatusBacklog))
}

func TestChangeStatusRecordsHistory(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	recorder := NewHistoryRecorder(zap.NewNop())
	recorder.Register(bus)
	sm := NewStateMachine(bus, zap.NewNop())

	issue := &model.Issue{
		ProjectID:  1,
		ReporterID: 1,
		Type:       constants.IssueTypeTask,
		Title:      "接入事件总线",
		Status:     constants.IssueStatusBacklog,
		Priority:   constants.PriorityMedium,
	}
	require.NoError(t, db.Create(issue).Error)

	actorID := int64(42)
	err := db.Transaction(func(tx *gorm.DB) error {
		return sm.ChangeStatus(tx, issue, constants.IssueStatusInAnalysis, nil, &actorID)
	})
	require.NoError(t, err)
	assert.Equal(t, constants.IssueStatusInAnalysis, issue.Status)

	var stored model.Issue
	require.NoError(t, db.First(&stored, issue.ID).Error)
	assert.Equal(t, constants.IssueStatusInAnalysis, stored.Status)

	var histories []model.IssueHistory
	require.NoError(t, db.Where("issue_id = ?", issue.ID).Find(&histories).Error)
	require.Len(t, histories, 1)
	assert.Equal(t, constants.IssueStatusBacklog, histories[0].PreviousStatus)
	assert.Equal(t, constants.IssueStatusInAnalysis, histories[0].NewStatus)
	require.NotNil(t, histories[0].ChangedByID)
	assert.Equal(t, actorID, *histories[0].ChangedByID)
}

func TestChangeStatusSameStatusSkipsHistory(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	NewHistoryRecorder(zap.NewNop()).Register(bus)
	sm := NewStateMachine(bus, zap.NewNop())

	issue := &model.Issue{
		ProjectID:  1,
		ReporterID: 1,
		Type:       constants.IssueTypeBug,
		Title:      "重复设置状态",
		Status:     constants.IssueStatusInProgress,
		Priority:   constants.PriorityHigh,
	}
	require.NoError(t, db.Create(issue).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return sm.ChangeStatus(tx, issue, constants.IssueStatusInProgress, nil, nil)
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.IssueHistory{}).Where("issue_id = ?", issue.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChangeStatusRejectedLeavesNoTrace(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	NewHistoryRecorder(zap.NewNop()).Register(bus)
	sm := NewStateMachine(bus, zap.NewNop())

	issue := &model.Issue{
		ProjectID:  1,
		ReporterID: 1,
		Type:       constants.IssueTypeTask,
		Title:      "非法流转",
		Status:     constants.IssueStatusBacklog,
		Priority:   constants.PriorityLow,
	}
	require.NoError(t, db.Create(issue).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return sm.ChangeStatus(tx, issue, constants.IssueStatusCompleted, nil, nil)
	})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeInvalidTransition))

	// 状态与历史都不应改变
	var stored model.Issue
	require.NoError(t, db.First(&stored, issue.ID).Error)
	assert.Equal(t, constants.IssueStatusBacklog, stored.Status)

	var count int64
	require.NoError(t, db.Model(&model.IssueHistory{}).Where("issue_id = ?", issue.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChangeStatusHandlerErrorRollsBack(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	NewHistoryRecorder(zap.NewNop()).Register(bus)
	bus.Subscribe(event.IssueStatusChangedName, func(tx *gorm.DB, e event.Event) error {
		return pkgErrors.New(pkgErrors.CodeInternalError, "下游处理失败")
	})
	sm := NewStateMachine(bus, zap.NewNop())

	issue := &model.Issue{
		ProjectID:  1,
		ReporterID: 1,
		Type:       constants.IssueTypeTask,
		Title:      "订阅方失败",
		Status:     constants.IssueStatusBacklog,
		Priority:   constants.PriorityMedium,
	}
	require.NoError(t, db.Create(issue).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return sm.ChangeStatus(tx, issue, constants.IssueStatusInAnalysis, nil, nil)
	})
	require.Error(t, err)

	// 事务回滚, 已写入的历史也随之消失
	var stored model.Issue
	require.NoError(t, db.First(&stored, issue.ID).Error)
	assert.Equal(t, constants.IssueStatusBacklog, stored.Status)

	var count int64
	require.NoError(t, db.Model(&model.IssueHistory{}).Where("issue_id = ?", issue.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChangeStatusFullLifecycle(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	NewHistoryRecorder(zap.NewNop()).Register(bus)
	sm := NewStateMachine(bus, zap.NewNop())

	issue := &model.Issue{
		ProjectID:  1,
		ReporterID: 1,
		Type:       constants.IssueTypeTask,
		Title:      "完整流转",
		Status:     constants.IssueStatusBacklog,
		Priority:   constants.PriorityMedium,
	}
	require.NoError(t, db.Create(issue).Error)

	steps := []struct {
		next   string
		reason *string
	}{
		{constants.IssueStatusInAnalysis, nil},
		{constants.IssueStatusInProgress, nil},
		{constants.IssueStatusBlocked, strPtr("等待外部依赖")},
		{constants.IssueStatusInProgress, nil},
		{constants.IssueStatusCompleted, nil},
	}

	for _, step := range steps {
		err := db.Transaction(func(tx *gorm.DB) error {
			return sm.ChangeStatus(tx, issue, step.next, step.reason, nil)
		})
		require.NoError(t, err, "transition to %s", step.next)
	}

	var count int64
	require.NoError(t, db.Model(&model.IssueHistory{}).Where("issue_id = ?", issue.ID).Count(&count).Error)
	assert.Equal(t, int64(len(steps)), count)

	// 终态后任何变更都被拒绝
	err := db.Transaction(func(tx *gorm.DB) error {
		return sm.ChangeStatus(tx, issue, constants.IssueStatusInProgress, nil, nil)
	})
	require.Error(t, err)
}
