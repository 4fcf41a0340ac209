package repository

import (
	"gorm.io/gorm"

	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

type DepartmentRepository interface {
	Create(department *model.Department) error
	Update(department *model.Department) error
	FindByID(id int64) (*model.Department, error)
	FindByName(name string) (*model.Department, error)
	List(page, pageSize int, keyword string) ([]*model.Department, int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(department *model.Department) error {
	if err := r.db.Create(department).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建部门失败", err)
	}
	return nil
}

func (r *departmentRepository) Update(department *model.Department) error {
	if err := r.db.Save(department).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新部门失败", err)
	}
	return nil
}

func (r *departmentRepository) FindByID(id int64) (*model.Department, error) {
	var department model.Department
	err := r.db.First(&department, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "部门不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询部门失败", err)
	}
	return &department, nil
}

// FindByName 只查活跃记录, 已删除部门的名称可以复用
func (r *departmentRepository) FindByName(name string) (*model.Department, error) {
	var department model.Department
	err := r.db.Where("name = ?", name).First(&department).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询部门失败", err)
	}
	return &department, nil
}

func (r *departmentRepository) List(page, pageSize int, keyword string) ([]*model.Department, int64, error) {
	var departments []*model.Department
	var total int64

	query := r.db.Model(&model.Department{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计部门失败", err)
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&departments).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询部门列表失败", err)
	}

	return departments, total, nil
}
