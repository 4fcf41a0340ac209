package repository

import (
	"gorm.io/gorm"

	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	Update(project *model.Project) error
	FindByID(id int64) (*model.Project, error)
	FindByTitle(title string) (*model.Project, error)
	ListByDepartment(departmentID int64, page, pageSize int) ([]*model.Project, int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "项目不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目失败", err)
	}
	return &project, nil
}

// FindByTitle 只查活跃记录
func (r *projectRepository) FindByTitle(title string) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("title = ?", title).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目失败", err)
	}
	return &project, nil
}

func (r *projectRepository) ListByDepartment(departmentID int64, page, pageSize int) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	query := r.db.Model(&model.Project{}).Where("department_id = ?", departmentID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计项目失败", err)
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&projects).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目列表失败", err)
	}

	return projects, total, nil
}
