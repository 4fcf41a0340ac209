package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/repository"
	pkgErrors "worktrack/pkg/errors"
)

func newDepartmentService(env *testEnv) DepartmentService {
	return NewDepartmentService(repository.NewDepartmentRepository(env.db), env.db, env.bus)
}

func TestDepartmentCreateAndDuplicate(t *testing.T) {
	env := newTestEnv(t)
	svc := newDepartmentService(env)

	created, err := svc.Create(&dto.DepartmentRequest{Name: "研发部"})
	require.NoError(t, err)
	assert.Equal(t, "研发部", created.Name)

	_, err = svc.Create(&dto.DepartmentRequest{Name: "研发部"})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeConflict))
}

func TestDepartmentNameReusableAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := newDepartmentService(env)

	created, err := svc.Create(&dto.DepartmentRequest{Name: "市场部"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(created.ID))

	// 墓碑记录不占用名称
	recreated, err := svc.Create(&dto.DepartmentRequest{Name: "市场部"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, recreated.ID)
}

func TestDepartmentDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := newDepartmentService(env)

	err := svc.Delete(9999)
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.CodeNotFound))
}

func TestDepartmentDeleteCascadesProjects(t *testing.T) {
	env := newTestEnv(t)
	svc := newDepartmentService(env)

	created, err := svc.Create(&dto.DepartmentRequest{Name: "平台部"})
	require.NoError(t, err)

	project := model.Project{Title: "ATLAS", Status: "IN_PROGRESS", DepartmentID: created.ID}
	require.NoError(t, env.db.Create(&project).Error)

	require.NoError(t, svc.Delete(created.ID))

	var count int64
	require.NoError(t, env.db.Model(&model.Project{}).Where("id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
}
