package cascade

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
	return db
}

// fixture 部门下完整的一棵树
type fixture struct {
	department model.Department
	project    model.Project
	team       model.Team
	member     model.TeamMember
	user       model.User
	issue      model.Issue
	comment    model.IssueComment
	attachment model.IssueAttachment
	history    model.IssueHistory
	history2   model.IssueHistory
}

func buildTree(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{}

	f.user = model.User{Name: "张三", Email: "zhangsan@example.com", Password: "x", Authorities: model.StringList{constants.RoleTeamMember}}
	require.NoError(t, db.Create(&f.user).Error)

	f.department = model.Department{Name: "研发部"}
	require.NoError(t, db.Create(&f.department).Error)

	f.project = model.Project{Title: "PHOENIX", Status: constants.ProjectStatusInProgress, DepartmentID: f.department.ID}
	require.NoError(t, db.Create(&f.project).Error)

	f.team = model.Team{Name: "CORE", ProjectID: f.project.ID}
	require.NoError(t, db.Create(&f.team).Error)

	f.member = model.TeamMember{TeamID: f.team.ID, UserID: f.user.ID}
	require.NoError(t, db.Create(&f.member).Error)

	f.issue = model.Issue{
		ProjectID:  f.project.ID,
		ReporterID: f.user.ID,
		Type:       constants.IssueTypeTask,
		Title:      "里程碑任务",
		Status:     constants.IssueStatusInProgress,
		Priority:   constants.PriorityHigh,
	}
	require.NoError(t, db.Create(&f.issue).Error)

	f.comment = model.IssueComment{IssueID: f.issue.ID, UserID: f.user.ID, Comment: "进展正常"}
	require.NoError(t, db.Create(&f.comment).Error)

	f.attachment = model.IssueAttachment{IssueID: f.issue.ID, FileName: "design.pdf", FilePath: "/files/design.pdf"}
	require.NoError(t, db.Create(&f.attachment).Error)

	f.history = model.IssueHistory{IssueID: f.issue.ID, PreviousStatus: constants.IssueStatusBacklog, NewStatus: constants.IssueStatusInAnalysis}
	require.NoError(t, db.Create(&f.history).Error)

	f.history2 = model.IssueHistory{IssueID: f.issue.ID, PreviousStatus: constants.IssueStatusInAnalysis, NewStatus: constants.IssueStatusInProgress}
	require.NoError(t, db.Create(&f.history2).Error)

	return f
}

// assertTombstoned 活跃查询查不到, Unscoped还在
func assertTombstoned(t *testing.T, db *gorm.DB, dest interface{}, id int64) {
	t.Helper()
	err := db.First(dest, id).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, db.Unscoped().First(dest, id).Error)
}

func TestDepartmentDeleteCascadesWholeTree(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	Register(bus, zap.NewNop())
	f := buildTree(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f.department).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.DepartmentDeleted{DepartmentID: f.department.ID})
	})
	require.NoError(t, err)

	assertTombstoned(t, db, &model.Department{}, f.department.ID)
	assertTombstoned(t, db, &model.Project{}, f.project.ID)
	assertTombstoned(t, db, &model.Team{}, f.team.ID)
	assertTombstoned(t, db, &model.TeamMember{}, f.member.ID)
	assertTombstoned(t, db, &model.Issue{}, f.issue.ID)
	assertTombstoned(t, db, &model.IssueComment{}, f.comment.ID)
	assertTombstoned(t, db, &model.IssueAttachment{}, f.attachment.ID)
	assertTombstoned(t, db, &model.IssueHistory{}, f.history.ID)
	assertTombstoned(t, db, &model.IssueHistory{}, f.history2.ID)

	// 用户不受部门级联影响
	require.NoError(t, db.First(&model.User{}, f.user.ID).Error)

	// 被级联删除的事项状态置为 CANCELLED
	var issue model.Issue
	require.NoError(t, db.Unscoped().First(&issue, f.issue.ID).Error)
	assert.Equal(t, constants.IssueStatusCancelled, issue.Status)
}

func TestProjectDeleteLeavesDepartmentIntact(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	Register(bus, zap.NewNop())
	f := buildTree(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f.project).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.ProjectDeleted{ProjectID: f.project.ID})
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&model.Department{}, f.department.ID).Error)
	assertTombstoned(t, db, &model.Project{}, f.project.ID)
	assertTombstoned(t, db, &model.Team{}, f.team.ID)
	assertTombstoned(t, db, &model.Issue{}, f.issue.ID)
}

func TestIssueDeleteCascadesLeavesOnly(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	Register(bus, zap.NewNop())
	f := buildTree(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f.issue).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.IssueDeleted{IssueID: f.issue.ID})
	})
	require.NoError(t, err)

	assertTombstoned(t, db, &model.IssueComment{}, f.comment.ID)
	assertTombstoned(t, db, &model.IssueAttachment{}, f.attachment.ID)
	assertTombstoned(t, db, &model.IssueHistory{}, f.history.ID)
	assertTombstoned(t, db, &model.IssueHistory{}, f.history2.ID)

	// 项目与团队不受影响
	require.NoError(t, db.First(&model.Project{}, f.project.ID).Error)
	require.NoError(t, db.First(&model.Team{}, f.team.ID).Error)
}

func TestTeamDeleteRemovesMembershipsNotUsers(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	Register(bus, zap.NewNop())
	f := buildTree(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f.team).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.TeamDeleted{TeamID: f.team.ID})
	})
	require.NoError(t, err)

	assertTombstoned(t, db, &model.TeamMember{}, f.member.ID)
	require.NoError(t, db.First(&model.User{}, f.user.ID).Error)
}

func TestUserDeleteRemovesMembershipsAndTokens(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	Register(bus, zap.NewNop())
	f := buildTree(t, db)

	token := model.RefreshToken{UserID: f.user.ID, Token: "rt-1"}
	require.NoError(t, db.Create(&token).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f.user).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.UserDeleted{UserID: f.user.ID})
	})
	require.NoError(t, err)

	assertTombstoned(t, db, &model.TeamMember{}, f.member.ID)
	assertTombstoned(t, db, &model.RefreshToken{}, token.ID)

	// 用户的评论与事项保留
	require.NoError(t, db.First(&model.IssueComment{}, f.comment.ID).Error)
	require.NoError(t, db.First(&model.Issue{}, f.issue.ID).Error)
}

func TestCascadeSkipsAlreadyDeletedChildren(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	Register(bus, zap.NewNop())
	f := buildTree(t, db)

	// 先单独删除事项并走完其级联
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&f.issue).Update("status", constants.IssueStatusCancelled).Error; err != nil {
			return err
		}
		if err := tx.Delete(&f.issue).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.IssueDeleted{IssueID: f.issue.ID})
	})
	require.NoError(t, err)

	var deletedAtBefore model.Issue
	require.NoError(t, db.Unscoped().First(&deletedAtBefore, f.issue.ID).Error)

	// 再删项目, 已删除的事项不应被重复处理
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f.project).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.ProjectDeleted{ProjectID: f.project.ID})
	})
	require.NoError(t, err)

	var deletedAtAfter model.Issue
	require.NoError(t, db.Unscoped().First(&deletedAtAfter, f.issue.ID).Error)
	assert.Equal(t, deletedAtBefore.DeletedAt.Time, deletedAtAfter.DeletedAt.Time)
}

func TestCascadeHandlerErrorRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus(zap.NewNop())
	Register(bus, zap.NewNop())
	f := buildTree(t, db)

	// 链尾注入一个失败的handler
	bus.Subscribe(event.TeamDeletedName, func(tx *gorm.DB, e event.Event) error {
		return pkgErrors.New(pkgErrors.CodeInternalError, "下游处理失败")
	})

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f.department).Error; err != nil {
			return err
		}
		return bus.Publish(tx, event.DepartmentDeleted{DepartmentID: f.department.ID})
	})
	require.Error(t, err)

	// 整棵树完好无损
	require.NoError(t, db.First(&model.Department{}, f.department.ID).Error)
	require.NoError(t, db.First(&model.Project{}, f.project.ID).Error)
	require.NoError(t, db.First(&model.Team{}, f.team.ID).Error)
	require.NoError(t, db.First(&model.TeamMember{}, f.member.ID).Error)
	require.NoError(t, db.First(&model.Issue{}, f.issue.ID).Error)

	var issue model.Issue
	require.NoError(t, db.First(&issue, f.issue.ID).Error)
	assert.Equal(t, constants.IssueStatusInProgress, issue.Status)
}
