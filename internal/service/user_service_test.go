package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/pkg/crypto"
	"worktrack/internal/repository"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

func newUserService(env *testEnv) UserService {
	return NewUserService(repository.NewUserRepository(env.db), env.db, env.bus)
}

func TestUserCreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	created, err := svc.Create("王五", "wangwu@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, []string{constants.RoleTeamMember}, created.Authorities)

	// 密码bcrypt存储
	var stored model.User
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, crypto.CheckPassword("s3cret-pass", stored.Password))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	_, err := svc.Create("王五", "wangwu@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Create("王五二号", "wangwu@example.com", "s3cret-pass")
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeConflict))
}

func TestUserAddRoleIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	created, err := svc.Create("王五", "wangwu@example.com", "s3cret-pass")
	require.NoError(t, err)

	updated, err := svc.AddRole(created.ID, constants.RoleTeamLeader)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{constants.RoleTeamMember, constants.RoleTeamLeader}, updated.Authorities)

	// 重复添加为no-op
	updated, err = svc.AddRole(created.ID, constants.RoleTeamLeader)
	require.NoError(t, err)
	assert.Len(t, updated.Authorities, 2)
}

func TestUserRemoveRole(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	created, err := svc.Create("王五", "wangwu@example.com", "s3cret-pass")
	require.NoError(t, err)
	_, err = svc.AddRole(created.ID, constants.RoleProjectManager)
	require.NoError(t, err)

	updated, err := svc.RemoveRole(created.ID, constants.RoleProjectManager)
	require.NoError(t, err)
	assert.Equal(t, []string{constants.RoleTeamMember}, updated.Authorities)

	// 移除未持有的角色为no-op
	updated, err = svc.RemoveRole(created.ID, constants.RoleTeamLeader)
	require.NoError(t, err)
	assert.Equal(t, []string{constants.RoleTeamMember}, updated.Authorities)
}

func TestUserBaseRoleNotRemovable(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	created, err := svc.Create("王五", "wangwu@example.com", "s3cret-pass")
	require.NoError(t, err)

	// TEAM_MEMBER 永远保留
	updated, err := svc.RemoveRole(created.ID, constants.RoleTeamMember)
	require.NoError(t, err)
	assert.Contains(t, updated.Authorities, constants.RoleTeamMember)
}

func TestUserUpdateSelfOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	created, err := svc.Create("王五", "wangwu@example.com", "s3cret-pass")
	require.NoError(t, err)

	req := &dto.UserUpdateRequest{Name: "王五改", Email: "wangwu@example.com", Password: "new-pass-123"}

	// 他人操作被拒绝
	stranger := &dto.UserInfo{UserID: 999, Email: "other@example.com"}
	_, err = svc.Update(created.ID, stranger, req)
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeForbidden))

	// 本人操作成功
	self := &dto.UserInfo{UserID: created.ID, Email: created.Email}
	updated, err := svc.Update(created.ID, self, req)
	require.NoError(t, err)
	assert.Equal(t, "王五改", updated.Name)
}

func TestUserDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	created, err := svc.Create("王五", "wangwu@example.com", "s3cret-pass")
	require.NoError(t, err)

	dept := model.Department{Name: "研发部"}
	require.NoError(t, env.db.Create(&dept).Error)
	project := model.Project{Title: "PHOENIX", Status: constants.ProjectStatusInProgress, DepartmentID: dept.ID}
	require.NoError(t, env.db.Create(&project).Error)
	team := model.Team{Name: "CORE", ProjectID: project.ID}
	require.NoError(t, env.db.Create(&team).Error)
	member := model.TeamMember{TeamID: team.ID, UserID: created.ID}
	require.NoError(t, env.db.Create(&member).Error)
	token := model.RefreshToken{UserID: created.ID, Token: "rt-1"}
	require.NoError(t, env.db.Create(&token).Error)

	require.NoError(t, svc.Delete(created.ID))

	var count int64
	require.NoError(t, env.db.Model(&model.TeamMember{}).Where("user_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, env.db.Model(&model.RefreshToken{}).Where("user_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)

	// 邮箱可复用
	_, err = svc.Create("新王五", "wangwu@example.com", "s3cret-pass")
	assert.NoError(t, err)
}
