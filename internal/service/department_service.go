package service

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/repository"
	pkgErrors "worktrack/pkg/errors"
)

type DepartmentService interface {
	Create(req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(id int64) (*dto.DepartmentResponse, error)
	List(query *dto.DepartmentListQuery) ([]*dto.DepartmentResponse, int64, error)
	Update(id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(id int64) error
}

type departmentService struct {
	repo repository.DepartmentRepository
	db   *gorm.DB
	bus  *event.Bus
}

func NewDepartmentService(repo repository.DepartmentRepository, db *gorm.DB, bus *event.Bus) DepartmentService {
	return &departmentService{
		repo: repo,
		db:   db,
		bus:  bus,
	}
}

func (s *departmentService) Create(req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if err := s.existsByName(name); err != nil {
		return nil, err
	}

	department := &model.Department{Name: name}
	if err := s.repo.Create(department); err != nil {
		return nil, err
	}

	return s.toResponse(department), nil
}

func (s *departmentService) GetByID(id int64) (*dto.DepartmentResponse, error) {
	department, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(department), nil
}

func (s *departmentService) List(query *dto.DepartmentListQuery) ([]*dto.DepartmentResponse, int64, error) {
	departments, total, err := s.repo.List(query.GetPage(), query.GetPageSize(), query.Keyword)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.DepartmentResponse, len(departments))
	for i, department := range departments {
		responses[i] = s.toResponse(department)
	}
	return responses, total, nil
}

func (s *departmentService) Update(id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if department.Name != name {
		if err := s.existsByName(name); err != nil {
			return nil, err
		}
	}

	department.Name = name
	if err := s.repo.Update(department); err != nil {
		return nil, err
	}

	return s.toResponse(department), nil
}

// Delete 软删除部门并级联: 整条链在一个事务内, 任一环节失败全部回滚
func (s *departmentService) Delete(id int64) error {
	department, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(department).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除部门失败", err)
		}
		return s.bus.Publish(tx, event.DepartmentDeleted{DepartmentID: department.ID})
	})
}

func (s *departmentService) existsByName(name string) error {
	existing, err := s.repo.FindByName(name)
	if err != nil && err != pkgErrors.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		return pkgErrors.New(pkgErrors.CodeConflict, fmt.Sprintf("部门 %s 已存在", name))
	}
	return nil
}

func (s *departmentService) toResponse(department *model.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:        department.ID,
		Name:      department.Name,
		CreatedAt: department.CreatedAt.Format(time.RFC3339),
		UpdatedAt: department.UpdatedAt.Format(time.RFC3339),
	}
}
