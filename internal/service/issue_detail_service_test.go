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

type detailFixture struct {
	env           *testEnv
	commentSvc    IssueCommentService
	attachmentSvc IssueAttachmentService
	issueID       int64
	userID        int64
}

func newDetailFixture(t *testing.T) *detailFixture {
	t.Helper()
	env := newTestEnv(t)

	dept := model.Department{Name: "测试部"}
	require.NoError(t, env.db.Create(&dept).Error)
	project := model.Project{Title: "ALPHA", Status: constants.ProjectStatusInProgress, DepartmentID: dept.ID}
	require.NoError(t, env.db.Create(&project).Error)
	user := model.User{Name: "王五", Email: "wangwu@example.com", Password: "x", Authorities: model.StringList{constants.RoleTeamMember}}
	require.NoError(t, env.db.Create(&user).Error)
	issue := model.Issue{
		ProjectID: project.ID, ReporterID: user.ID,
		Type: constants.IssueTypeTask, Title: "补充验收标准",
		Status: constants.IssueStatusBacklog, Priority: constants.PriorityLow,
	}
	require.NoError(t, env.db.Create(&issue).Error)

	issueRepo := repository.NewIssueRepository(env.db)
	userRepo := repository.NewUserRepository(env.db)

	return &detailFixture{
		env:           env,
		commentSvc:    NewIssueCommentService(repository.NewIssueCommentRepository(env.db), issueRepo, userRepo),
		attachmentSvc: NewIssueAttachmentService(repository.NewIssueAttachmentRepository(env.db), issueRepo),
		issueID:       issue.ID,
		userID:        user.ID,
	}
}

func TestCommentCreateAndList(t *testing.T) {
	f := newDetailFixture(t)

	created, err := f.commentSvc.Create(&dto.IssueCommentRequest{
		IssueID: f.issueID,
		UserID:  f.userID,
		Comment: "需要先和产品确认边界",
	})
	require.NoError(t, err)
	assert.Equal(t, "需要先和产品确认边界", created.Comment)

	comments, err := f.commentSvc.ListByIssue(f.issueID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, created.ID, comments[0].ID)
}

func TestCommentCreateUnknownIssue(t *testing.T) {
	f := newDetailFixture(t)

	_, err := f.commentSvc.Create(&dto.IssueCommentRequest{
		IssueID: 9999,
		UserID:  f.userID,
		Comment: "挂在不存在的事项上",
	})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))
}

func TestCommentUpdateOnlyChangesContent(t *testing.T) {
	f := newDetailFixture(t)

	created, err := f.commentSvc.Create(&dto.IssueCommentRequest{
		IssueID: f.issueID,
		UserID:  f.userID,
		Comment: "初稿",
	})
	require.NoError(t, err)

	updated, err := f.commentSvc.Update(created.ID, &dto.IssueCommentRequest{
		IssueID: 9999, // 更新时不允许挪到别的事项
		UserID:  9999,
		Comment: "定稿",
	})
	require.NoError(t, err)
	assert.Equal(t, "定稿", updated.Comment)
	assert.Equal(t, f.issueID, updated.IssueID)
	assert.Equal(t, f.userID, updated.UserID)
}

func TestAttachmentLifecycle(t *testing.T) {
	f := newDetailFixture(t)

	created, err := f.attachmentSvc.Create(&dto.IssueAttachmentRequest{
		IssueID:  f.issueID,
		FileName: "设计稿.pdf",
		FilePath: "/uploads/2026/设计稿.pdf",
	})
	require.NoError(t, err)

	attachments, err := f.attachmentSvc.ListByIssue(f.issueID)
	require.NoError(t, err)
	require.Len(t, attachments, 1)

	require.NoError(t, f.attachmentSvc.Delete(created.ID))

	attachments, err = f.attachmentSvc.ListByIssue(f.issueID)
	require.NoError(t, err)
	assert.Empty(t, attachments)

	err = f.attachmentSvc.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))
}
