package service

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coreissue "worktrack/internal/core/issue"

	"worktrack/internal/core/event"
	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/repository"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

type IssueService interface {
	Create(req *dto.IssueRequest) (*dto.IssueResponse, error)
	GetByID(id int64) (*dto.IssueResponse, error)
	List(query *dto.IssueListQuery) ([]*dto.IssueResponse, int64, error)
	Update(id int64, req *dto.IssueUpdateRequest) (*dto.IssueResponse, error)
	UpdateStatus(id int64, actor *dto.UserInfo, req *dto.IssueStatusChangeRequest) (*dto.IssueResponse, error)
	Delete(id int64) error
}

type issueService struct {
	repo         repository.IssueRepository
	projectRepo  repository.ProjectRepository
	userRepo     repository.UserRepository
	stateMachine *coreissue.StateMachine
	db           *gorm.DB
	bus          *event.Bus
}

func NewIssueService(repo repository.IssueRepository, projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository, stateMachine *coreissue.StateMachine,
	db *gorm.DB, bus *event.Bus) IssueService {
	return &issueService{
		repo:         repo,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
		stateMachine: stateMachine,
		db:           db,
		bus:          bus,
	}
}

func (s *issueService) Create(req *dto.IssueRequest) (*dto.IssueResponse, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(req.ReporterID); err != nil {
		return nil, err
	}
	if req.AssigneeID != nil {
		if _, err := s.userRepo.FindByID(*req.AssigneeID); err != nil {
			return nil, err
		}
	}

	issue := &model.Issue{
		ProjectID:          req.ProjectID,
		AssigneeID:         req.AssigneeID,
		ReporterID:         req.ReporterID,
		Type:               req.Type,
		Title:              req.Title,
		Description:        req.Description,
		UserStory:          req.UserStory,
		AcceptanceCriteria: req.AcceptanceCriteria,
		Status:             constants.IssueStatusBacklog,
		Priority:           req.Priority,
		DueDate:            req.DueDate,
		Labels:             marshalLabels(req.Labels),
	}
	if err := s.repo.Create(issue); err != nil {
		return nil, err
	}

	return s.toResponse(issue), nil
}

func (s *issueService) GetByID(id int64) (*dto.IssueResponse, error) {
	issue, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(issue), nil
}

func (s *issueService) List(query *dto.IssueListQuery) ([]*dto.IssueResponse, int64, error) {
	if _, err := s.projectRepo.FindByID(query.ProjectID); err != nil {
		return nil, 0, err
	}

	issues, total, err := s.repo.ListByProject(query.ProjectID, query.GetPage(), query.GetPageSize(), query.Status)
	if err != nil {
		return nil, 0, err
	}

	responses := lo.Map(issues, func(i *model.Issue, _ int) *dto.IssueResponse {
		return s.toResponse(i)
	})
	return responses, total, nil
}

// Update 更新事项内容, 状态不在此处变更
func (s *issueService) Update(id int64, req *dto.IssueUpdateRequest) (*dto.IssueResponse, error) {
	issue, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.AssigneeID != nil {
		if _, err := s.userRepo.FindByID(*req.AssigneeID); err != nil {
			return nil, err
		}
	}
	issue.AssigneeID = req.AssigneeID

	issue.Type = req.Type
	issue.Title = req.Title
	issue.Description = req.Description
	issue.UserStory = req.UserStory
	issue.AcceptanceCriteria = req.AcceptanceCriteria
	issue.Priority = req.Priority
	issue.DueDate = req.DueDate
	issue.Labels = marshalLabels(req.Labels)

	if err := s.repo.Update(issue); err != nil {
		return nil, err
	}

	return s.toResponse(issue), nil
}

// UpdateStatus 通过状态机变更事项状态
// 同状态为幂等no-op; 成功变更通过事件追加一条历史记录, 与变更同事务
func (s *issueService) UpdateStatus(id int64, actor *dto.UserInfo, req *dto.IssueStatusChangeRequest) (*dto.IssueResponse, error) {
	issue, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if issue.Status == req.Status {
		return s.toResponse(issue), nil
	}

	var actorID *int64
	if actor != nil {
		actorID = &actor.UserID
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.stateMachine.ChangeStatus(tx, issue, req.Status, req.Reason, actorID)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(issue), nil
}

// Delete 软删除事项: 置为 CANCELLED 并级联其下评论/附件/历史
func (s *issueService) Delete(id int64) error {
	issue, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(issue).Update("status", constants.IssueStatusCancelled).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新事项状态失败", err)
		}
		if err := tx.Delete(issue).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除事项失败", err)
		}
		return s.bus.Publish(tx, event.IssueDeleted{IssueID: issue.ID})
	})
}

func (s *issueService) toResponse(issue *model.Issue) *dto.IssueResponse {
	return &dto.IssueResponse{
		ID:                 issue.ID,
		ProjectID:          issue.ProjectID,
		AssigneeID:         issue.AssigneeID,
		ReporterID:         issue.ReporterID,
		Type:               issue.Type,
		Title:              issue.Title,
		Description:        issue.Description,
		UserStory:          issue.UserStory,
		AcceptanceCriteria: issue.AcceptanceCriteria,
		Status:             issue.Status,
		Priority:           issue.Priority,
		DueDate:            issue.DueDate,
		Labels:             unmarshalLabels(issue.Labels),
		CreatedAt:          issue.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          issue.UpdatedAt.Format(time.RFC3339),
	}
}

func marshalLabels(labels []string) datatypes.JSON {
	if len(labels) == 0 {
		return nil
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return nil
	}
	return data
}

func unmarshalLabels(data datatypes.JSON) []string {
	if len(data) == 0 {
		return nil
	}
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil
	}
	return labels
}
