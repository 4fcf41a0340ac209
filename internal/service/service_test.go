package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"worktrack/internal/core/cascade"
	"worktrack/internal/core/event"
	coreissue "worktrack/internal/core/issue"
	"worktrack/internal/model"
)

// testEnv 测试环境: 内存库 + 完整注册的事件总线
type testEnv struct {
	db  *gorm.DB
	bus *event.Bus
	sm  *coreissue.StateMachine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Department{},
		&model.Project{},
		&model.Team{},
		&model.TeamMember{},
		&model.User{},
		&model.RefreshToken{},
		&model.Issue{},
		&model.IssueComment{},
		&model.IssueAttachment{},
		&model.IssueHistory{},
	))

	logger := zap.NewNop()
	bus := event.NewBus(logger)
	cascade.Register(bus, logger)
	coreissue.NewHistoryRecorder(logger).Register(bus)

	return &testEnv{
		db:  db,
		bus: bus,
		sm:  coreissue.NewStateMachine(bus, logger),
	}
}

func strPtr(s string) *string { return &s }
