package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktrack/internal/dto"
	"worktrack/internal/repository"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

func newProjectService(env *testEnv) (ProjectService, DepartmentService) {
	deptSvc := newDepartmentService(env)
	projSvc := NewProjectService(
		repository.NewProjectRepository(env.db),
		repository.NewDepartmentRepository(env.db),
		env.db, env.bus)
	return projSvc, deptSvc
}

func createDepartment(t *testing.T, deptSvc DepartmentService, name string) int64 {
	t.Helper()
	dept, err := deptSvc.Create(&dto.DepartmentRequest{Name: name})
	require.NoError(t, err)
	return dept.ID
}

func TestProjectCreateUppercasesTitle(t *testing.T) {
	env := newTestEnv(t)
	projSvc, deptSvc := newProjectService(env)
	deptID := createDepartment(t, deptSvc, "研发部")

	created, err := projSvc.Create(&dto.ProjectRequest{Title: "phoenix", DepartmentID: deptID})
	require.NoError(t, err)
	assert.Equal(t, "PHOENIX", created.Title)
	assert.Equal(t, constants.ProjectStatusInProgress, created.Status)
}

func TestProjectCreateDuplicateTitle(t *testing.T) {
	env := newTestEnv(t)
	projSvc, deptSvc := newProjectService(env)
	deptID := createDepartment(t, deptSvc, "研发部")

	_, err := projSvc.Create(&dto.ProjectRequest{Title: "ATLAS", DepartmentID: deptID})
	require.NoError(t, err)

	// 大小写不同仍视为同名
	_, err = projSvc.Create(&dto.ProjectRequest{Title: "atlas", DepartmentID: deptID})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeConflict))
}

func TestProjectCreateMissingDepartment(t *testing.T) {
	env := newTestEnv(t)
	projSvc, _ := newProjectService(env)

	_, err := projSvc.Create(&dto.ProjectRequest{Title: "ORPHAN", DepartmentID: 9999})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))
}

func TestProjectUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	projSvc, deptSvc := newProjectService(env)
	deptID := createDepartment(t, deptSvc, "研发部")

	created, err := projSvc.Create(&dto.ProjectRequest{Title: "HELIX", DepartmentID: deptID})
	require.NoError(t, err)

	updated, err := projSvc.UpdateStatus(created.ID, constants.ProjectStatusOnHold)
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectStatusOnHold, updated.Status)

	updated, err = projSvc.UpdateStatus(created.ID, constants.ProjectStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectStatusCompleted, updated.Status)

	// 已完成的项目不可再变更
	_, err = projSvc.UpdateStatus(created.ID, constants.ProjectStatusInProgress)
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeInvalidTransition))
}

func TestProjectTitleReusableAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	projSvc, deptSvc := newProjectService(env)
	deptID := createDepartment(t, deptSvc, "研发部")

	created, err := projSvc.Create(&dto.ProjectRequest{Title: "NOVA", DepartmentID: deptID})
	require.NoError(t, err)
	require.NoError(t, projSvc.Delete(created.ID))

	_, err = projSvc.Create(&dto.ProjectRequest{Title: "NOVA", DepartmentID: deptID})
	assert.NoError(t, err)
}
