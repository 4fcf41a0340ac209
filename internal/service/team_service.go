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
	pkgErrors "worktrack/pkg/errors"
)

type TeamService interface {
	Create(req *dto.TeamRequest) (*dto.TeamResponse, error)
	GetByID(id int64) (*dto.TeamMemberListResponse, error)
	ListByProject(projectID int64) ([]*dto.TeamResponse, error)
	Update(id int64, req *dto.TeamRequest) (*dto.TeamResponse, error)
	Delete(id int64) error
}

type teamService struct {
	repo        repository.TeamRepository
	projectRepo repository.ProjectRepository
	memberSvc   TeamMemberService
	db          *gorm.DB
	bus         *event.Bus
}

func NewTeamService(repo repository.TeamRepository, projectRepo repository.ProjectRepository, memberSvc TeamMemberService, db *gorm.DB, bus *event.Bus) TeamService {
	return &teamService{
		repo:        repo,
		projectRepo: projectRepo,
		memberSvc:   memberSvc,
		db:          db,
		bus:         bus,
	}
}

func (s *teamService) Create(req *dto.TeamRequest) (*dto.TeamResponse, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return nil, err
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if err := s.existsByName(name); err != nil {
		return nil, err
	}

	team := &model.Team{
		Name:      name,
		ProjectID: req.ProjectID,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, err
	}

	return s.toResponse(team), nil
}

func (s *teamService) GetByID(id int64) (*dto.TeamMemberListResponse, error) {
	team, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	members, err := s.memberSvc.ListByTeam(id)
	if err != nil {
		return nil, err
	}

	return &dto.TeamMemberListResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
		Members:  members,
	}, nil
}

func (s *teamService) ListByProject(projectID int64) ([]*dto.TeamResponse, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return nil, err
	}

	teams, err := s.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}

	return lo.Map(teams, func(t *model.Team, _ int) *dto.TeamResponse {
		return s.toResponse(t)
	}), nil
}

func (s *teamService) Update(id int64, req *dto.TeamRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if team.Name != name {
		if err := s.existsByName(name); err != nil {
			return nil, err
		}
	}

	if team.ProjectID != req.ProjectID {
		if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
			return nil, err
		}
		team.ProjectID = req.ProjectID
	}

	team.Name = name
	if err := s.repo.Update(team); err != nil {
		return nil, err
	}

	return s.toResponse(team), nil
}

// Delete 软删除团队并级联其下成员
func (s *teamService) Delete(id int64) error {
	team, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(team).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除团队失败", err)
		}
		return s.bus.Publish(tx, event.TeamDeleted{TeamID: team.ID})
	})
}

func (s *teamService) existsByName(name string) error {
	existing, err := s.repo.FindByName(name)
	if err != nil && err != pkgErrors.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		return pkgErrors.New(pkgErrors.CodeConflict, fmt.Sprintf("团队 %s 已存在", name))
	}
	return nil
}

func (s *teamService) toResponse(team *model.Team) *dto.TeamResponse {
	return &dto.TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		ProjectID: team.ProjectID,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
		UpdatedAt: team.UpdatedAt.Format(time.RFC3339),
	}
}
