package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/repository"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

type issueFixture struct {
	env       *testEnv
	issueSvc  IssueService
	projectID int64
	userID    int64
}

func newIssueFixture(t *testing.T) *issueFixture {
	t.Helper()
	env := newTestEnv(t)

	dept := model.Department{Name: "研发部"}
	require.NoError(t, env.db.Create(&dept).Error)
	project := model.Project{Title: "PHOENIX", Status: constants.ProjectStatusInProgress, DepartmentID: dept.ID}
	require.NoError(t, env.db.Create(&project).Error)
	user := model.User{Name: "李四", Email: "lisi@example.com", Password: "x", Authorities: model.StringList{constants.RoleTeamMember}}
	require.NoError(t, env.db.Create(&user).Error)

	issueSvc := NewIssueService(
		repository.NewIssueRepository(env.db),
		repository.NewProjectRepository(env.db),
		repository.NewUserRepository(env.db),
		env.sm, env.db, env.bus)

	return &issueFixture{env: env, issueSvc: issueSvc, projectID: project.ID, userID: user.ID}
}

func (f *issueFixture) createIssue(t *testing.T) *dto.IssueResponse {
	t.Helper()
	created, err := f.issueSvc.Create(&dto.IssueRequest{
		ProjectID:  f.projectID,
		ReporterID: f.userID,
		Type:       constants.IssueTypeTask,
		Title:      "接入事件总线",
		Priority:   constants.PriorityMedium,
		Labels:     []string{"backend", "infra"},
	})
	require.NoError(t, err)
	return created
}

func TestIssueCreateStartsInBacklog(t *testing.T) {
	f := newIssueFixture(t)

	created := f.createIssue(t)
	assert.Equal(t, constants.IssueStatusBacklog, created.Status)
	assert.Equal(t, []string{"backend", "infra"}, created.Labels)
}

func TestIssueCreateUnknownProject(t *testing.T) {
	f := newIssueFixture(t)

	_, err := f.issueSvc.Create(&dto.IssueRequest{
		ProjectID:  9999,
		ReporterID: f.userID,
		Type:       constants.IssueTypeTask,
		Title:      "孤儿事项",
		Priority:   constants.PriorityLow,
	})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))
}

func TestIssueUpdateStatusWritesHistory(t *testing.T) {
	f := newIssueFixture(t)
	created := f.createIssue(t)
	actor := &dto.UserInfo{UserID: f.userID, Email: "lisi@example.com"}

	updated, err := f.issueSvc.UpdateStatus(created.ID, actor, &dto.IssueStatusChangeRequest{
		Status: constants.IssueStatusInAnalysis,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.IssueStatusInAnalysis, updated.Status)

	var histories []model.IssueHistory
	require.NoError(t, f.env.db.Where("issue_id = ?", created.ID).Find(&histories).Error)
	require.Len(t, histories, 1)
	assert.Equal(t, constants.IssueStatusBacklog, histories[0].PreviousStatus)
	assert.Equal(t, constants.IssueStatusInAnalysis, histories[0].NewStatus)
	require.NotNil(t, histories[0].ChangedByID)
	assert.Equal(t, f.userID, *histories[0].ChangedByID)
}

func TestIssueUpdateStatusSameStatusNoop(t *testing.T) {
	f := newIssueFixture(t)
	created := f.createIssue(t)

	updated, err := f.issueSvc.UpdateStatus(created.ID, nil, &dto.IssueStatusChangeRequest{
		Status: constants.IssueStatusBacklog,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.IssueStatusBacklog, updated.Status)

	var count int64
	require.NoError(t, f.env.db.Model(&model.IssueHistory{}).Where("issue_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIssueUpdateStatusInvalidTransition(t *testing.T) {
	f := newIssueFixture(t)
	created := f.createIssue(t)

	_, err := f.issueSvc.UpdateStatus(created.ID, nil, &dto.IssueStatusChangeRequest{
		Status: constants.IssueStatusCompleted,
	})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeInvalidTransition))

	// 状态未变
	stored, err := f.issueSvc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.IssueStatusBacklog, stored.Status)
}

func TestIssueUpdateStatusBlockedNeedsReason(t *testing.T) {
	f := newIssueFixture(t)
	created := f.createIssue(t)

	_, err := f.issueSvc.UpdateStatus(created.ID, nil, &dto.IssueStatusChangeRequest{
		Status: constants.IssueStatusInAnalysis,
	})
	require.NoError(t, err)

	_, err = f.issueSvc.UpdateStatus(created.ID, nil, &dto.IssueStatusChangeRequest{
		Status: constants.IssueStatusBlocked,
	})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeInvalidTransition))

	updated, err := f.issueSvc.UpdateStatus(created.ID, nil, &dto.IssueStatusChangeRequest{
		Status: constants.IssueStatusBlocked,
		Reason: strPtr("等待外部依赖"),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.IssueStatusBlocked, updated.Status)

	var history model.IssueHistory
	require.NoError(t, f.env.db.Where("issue_id = ? AND new_status = ?", created.ID, constants.IssueStatusBlocked).
		First(&history).Error)
	require.NotNil(t, history.Reason)
	assert.Equal(t, "等待外部依赖", *history.Reason)
}

func TestIssueDeleteCancelsAndCascades(t *testing.T) {
	f := newIssueFixture(t)
	created := f.createIssue(t)

	comment := model.IssueComment{IssueID: created.ID, UserID: f.userID, Comment: "第一条评论"}
	require.NoError(t, f.env.db.Create(&comment).Error)

	require.NoError(t, f.issueSvc.Delete(created.ID))

	// 活跃查询查不到
	_, err := f.issueSvc.GetByID(created.ID)
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))

	// 墓碑记录状态为 CANCELLED
	var stored model.Issue
	require.NoError(t, f.env.db.Unscoped().First(&stored, created.ID).Error)
	assert.Equal(t, constants.IssueStatusCancelled, stored.Status)
	assert.True(t, stored.IsDeleted())

	var count int64
	require.NoError(t, f.env.db.Model(&model.IssueComment{}).Where("issue_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIssueListFiltersByStatus(t *testing.T) {
	f := newIssueFixture(t)
	first := f.createIssue(t)

	second, err := f.issueSvc.Create(&dto.IssueRequest{
		ProjectID:  f.projectID,
		ReporterID: f.userID,
		Type:       constants.IssueTypeBug,
		Title:      "线上缺陷",
		Priority:   constants.PriorityHigh,
	})
	require.NoError(t, err)

	_, err = f.issueSvc.UpdateStatus(second.ID, nil, &dto.IssueStatusChangeRequest{
		Status: constants.IssueStatusInAnalysis,
	})
	require.NoError(t, err)

	query := &dto.IssueListQuery{ProjectID: f.projectID, Status: constants.IssueStatusBacklog}
	issues, total, err := f.issueSvc.List(query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, issues, 1)
	assert.Equal(t, first.ID, issues[0].ID)
}
