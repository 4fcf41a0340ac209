package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/repository"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

type ProjectService interface {
	Create(req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	GetByID(id int64) (*dto.ProjectResponse, error)
	List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error)
	Update(id int64, req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	UpdateStatus(id int64, status string) (*dto.ProjectResponse, error)
	Delete(id int64) error
}

type projectService struct {
	repo           repository.ProjectRepository
	departmentRepo repository.DepartmentRepository
	db             *gorm.DB
	bus            *event.Bus
}

func NewProjectService(repo repository.ProjectRepository, departmentRepo repository.DepartmentRepository, db *gorm.DB, bus *event.Bus) ProjectService {
	return &projectService{
		repo:           repo,
		departmentRepo: departmentRepo,
		db:             db,
		bus:            bus,
	}
}

func (s *projectService) Create(req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	if _, err := s.departmentRepo.FindByID(req.DepartmentID); err != nil {
		return nil, err
	}

	// 标题统一大写存储, 与历史数据保持一致
	title := strings.ToUpper(strings.TrimSpace(req.Title))
	if err := s.existsByTitle(title); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constants.ProjectStatusInProgress
	}

	project := &model.Project{
		Title:        title,
		Description:  req.Description,
		Status:       status,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, err
	}

	return s.toResponse(project), nil
}

func (s *projectService) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

func (s *projectService) List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error) {
	if _, err := s.departmentRepo.FindByID(query.DepartmentID); err != nil {
		return nil, 0, err
	}

	projects, total, err := s.repo.ListByDepartment(query.DepartmentID, query.GetPage(), query.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	responses := lo.Map(projects, func(p *model.Project, _ int) *dto.ProjectResponse {
		return s.toResponse(p)
	})
	return responses, total, nil
}

func (s *projectService) Update(id int64, req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	title := strings.ToUpper(strings.TrimSpace(req.Title))
	if project.Title != title {
		if err := s.existsByTitle(title); err != nil {
			return nil, err
		}
	}

	if project.DepartmentID != req.DepartmentID {
		if _, err := s.departmentRepo.FindByID(req.DepartmentID); err != nil {
			return nil, err
		}
	}

	project.Title = title
	project.Description = req.Description
	if req.Status != "" {
		project.Status = req.Status
	}
	project.DepartmentID = req.DepartmentID

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}

	return s.toResponse(project), nil
}

// UpdateStatus 项目状态只有一条规则: 已完成的项目不可再变更
func (s *projectService) UpdateStatus(id int64, status string) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if project.Status == constants.ProjectStatusCompleted {
		return nil, pkgErrors.New(pkgErrors.CodeInvalidTransition, "项目已完成, 状态不可再变更")
	}

	project.Status = status
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}

	return s.toResponse(project), nil
}

// Delete 软删除项目并级联其下事项与团队
func (s *projectService) Delete(id int64) error {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(project).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目失败", err)
		}
		return s.bus.Publish(tx, event.ProjectDeleted{ProjectID: project.ID})
	})
}

func (s *projectService) existsByTitle(title string) error {
	existing, err := s.repo.FindByTitle(title)
	if err != nil && err != pkgErrors.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		return pkgErrors.New(pkgErrors.CodeConflict, fmt.Sprintf("项目 %s 已存在", title))
	}
	return nil
}

func (s *projectService) toResponse(project *model.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		Status:       project.Status,
		DepartmentID: project.DepartmentID,
		CreatedAt:    project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    project.UpdatedAt.Format(time.RFC3339),
	}
}
