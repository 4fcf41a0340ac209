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

type memberFixture struct {
	env       *testEnv
	memberSvc TeamMemberService
	teamID    int64
	userID    int64
}

func newMemberFixture(t *testing.T) *memberFixture {
	t.Helper()
	env := newTestEnv(t)

	dept := model.Department{Name: "研发部"}
	require.NoError(t, env.db.Create(&dept).Error)
	project := model.Project{Title: "PHOENIX", Status: constants.ProjectStatusInProgress, DepartmentID: dept.ID}
	require.NoError(t, env.db.Create(&project).Error)
	team := model.Team{Name: "CORE", ProjectID: project.ID}
	require.NoError(t, env.db.Create(&team).Error)
	user := model.User{Name: "李四", Email: "lisi@example.com", Password: "x", Authorities: model.StringList{constants.RoleTeamMember}}
	require.NoError(t, env.db.Create(&user).Error)

	memberSvc := NewTeamMemberService(
		repository.NewTeamMemberRepository(env.db),
		repository.NewTeamRepository(env.db),
		repository.NewUserRepository(env.db))

	return &memberFixture{env: env, memberSvc: memberSvc, teamID: team.ID, userID: user.ID}
}

func TestTeamMemberAdd(t *testing.T) {
	f := newMemberFixture(t)

	resp, err := f.memberSvc.Add(f.teamID, &dto.TeamMemberAddRequest{UserID: f.userID})
	require.NoError(t, err)
	assert.Equal(t, f.teamID, resp.TeamID)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, f.userID, resp.Members[0].UserID)
	assert.Equal(t, "李四", resp.Members[0].Name)
}

func TestTeamMemberAddTwiceConflicts(t *testing.T) {
	f := newMemberFixture(t)

	_, err := f.memberSvc.Add(f.teamID, &dto.TeamMemberAddRequest{UserID: f.userID})
	require.NoError(t, err)

	_, err = f.memberSvc.Add(f.teamID, &dto.TeamMemberAddRequest{UserID: f.userID})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeConflict))
}

func TestTeamMemberReAddRestoresRecord(t *testing.T) {
	f := newMemberFixture(t)

	resp, err := f.memberSvc.Add(f.teamID, &dto.TeamMemberAddRequest{UserID: f.userID})
	require.NoError(t, err)
	originalID := resp.Members[0].ID

	require.NoError(t, f.memberSvc.Remove(originalID))

	members, err := f.memberSvc.ListByTeam(f.teamID)
	require.NoError(t, err)
	assert.Empty(t, members)

	// 重新加入恢复原纪录而不是新建
	resp, err = f.memberSvc.Add(f.teamID, &dto.TeamMemberAddRequest{UserID: f.userID})
	require.NoError(t, err)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, originalID, resp.Members[0].ID)

	var count int64
	require.NoError(t, f.env.db.Unscoped().Model(&model.TeamMember{}).
		Where("team_id = ? AND user_id = ?", f.teamID, f.userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTeamMemberAddUnknownUser(t *testing.T) {
	f := newMemberFixture(t)

	_, err := f.memberSvc.Add(f.teamID, &dto.TeamMemberAddRequest{UserID: 9999})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))
}

func TestTeamMemberRemoveNotFound(t *testing.T) {
	f := newMemberFixture(t)

	err := f.memberSvc.Remove(9999)
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))
}
