package service

import (
	"time"

	"github.com/samber/lo"

	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/repository"
)

// IssueCommentService 事项评论
type IssueCommentService interface {
	Create(req *dto.IssueCommentRequest) (*dto.IssueCommentResponse, error)
	Update(id int64, req *dto.IssueCommentRequest) (*dto.IssueCommentResponse, error)
	ListByIssue(issueID int64) ([]*dto.IssueCommentResponse, error)
	Delete(id int64) error
}

type issueCommentService struct {
	repo      repository.IssueCommentRepository
	issueRepo repository.IssueRepository
	userRepo  repository.UserRepository
}

func NewIssueCommentService(repo repository.IssueCommentRepository,
	issueRepo repository.IssueRepository, userRepo repository.UserRepository) IssueCommentService {
	return &issueCommentService{
		repo:      repo,
		issueRepo: issueRepo,
		userRepo:  userRepo,
	}
}

func (s *issueCommentService) Create(req *dto.IssueCommentRequest) (*dto.IssueCommentResponse, error) {
	if _, err := s.issueRepo.FindByID(req.IssueID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, err
	}

	comment := &model.IssueComment{
		IssueID: req.IssueID,
		UserID:  req.UserID,
		Comment: req.Comment,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	return commentToResponse(comment), nil
}

func (s *issueCommentService) Update(id int64, req *dto.IssueCommentRequest) (*dto.IssueCommentResponse, error) {
	comment, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	comment.Comment = req.Comment
	if err := s.repo.Update(comment); err != nil {
		return nil, err
	}

	return commentToResponse(comment), nil
}

func (s *issueCommentService) ListByIssue(issueID int64) ([]*dto.IssueCommentResponse, error) {
	if _, err := s.issueRepo.FindByID(issueID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListByIssue(issueID)
	if err != nil {
		return nil, err
	}

	return lo.Map(comments, func(c *model.IssueComment, _ int) *dto.IssueCommentResponse {
		return commentToResponse(c)
	}), nil
}

func (s *issueCommentService) Delete(id int64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func commentToResponse(comment *model.IssueComment) *dto.IssueCommentResponse {
	resp := &dto.IssueCommentResponse{
		ID:        comment.ID,
		IssueID:   comment.IssueID,
		UserID:    comment.UserID,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}
	if comment.User != nil {
		resp.UserName = comment.User.Name
	}
	return resp
}

// IssueAttachmentService 事项附件
type IssueAttachmentService interface {
	Create(req *dto.IssueAttachmentRequest) (*dto.IssueAttachmentResponse, error)
	ListByIssue(issueID int64) ([]*dto.IssueAttachmentResponse, error)
	Delete(id int64) error
}

type issueAttachmentService struct {
	repo      repository.IssueAttachmentRepository
	issueRepo repository.IssueRepository
}

func NewIssueAttachmentService(repo repository.IssueAttachmentRepository,
	issueRepo repository.IssueRepository) IssueAttachmentService {
	return &issueAttachmentService{
		repo:      repo,
		issueRepo: issueRepo,
	}
}

func (s *issueAttachmentService) Create(req *dto.IssueAttachmentRequest) (*dto.IssueAttachmentResponse, error) {
	if _, err := s.issueRepo.FindByID(req.IssueID); err != nil {
		return nil, err
	}

	attachment := &model.IssueAttachment{
		IssueID:  req.IssueID,
		FileName: req.FileName,
		FilePath: req.FilePath,
	}
	if err := s.repo.Create(attachment); err != nil {
		return nil, err
	}

	return attachmentToResponse(attachment), nil
}

func (s *issueAttachmentService) ListByIssue(issueID int64) ([]*dto.IssueAttachmentResponse, error) {
	if _, err := s.issueRepo.FindByID(issueID); err != nil {
		return nil, err
	}

	attachments, err := s.repo.ListByIssue(issueID)
	if err != nil {
		return nil, err
	}

	return lo.Map(attachments, func(a *model.IssueAttachment, _ int) *dto.IssueAttachmentResponse {
		return attachmentToResponse(a)
	}), nil
}

func (s *issueAttachmentService) Delete(id int64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func attachmentToResponse(attachment *model.IssueAttachment) *dto.IssueAttachmentResponse {
	return &dto.IssueAttachmentResponse{
		ID:        attachment.ID,
		IssueID:   attachment.IssueID,
		FileName:  attachment.FileName,
		FilePath:  attachment.FilePath,
		CreatedAt: attachment.CreatedAt.Format(time.RFC3339),
	}
}

// IssueHistoryService 事项状态变更历史, 只读
type IssueHistoryService interface {
	ListByIssue(issueID int64) ([]*dto.IssueHistoryResponse, error)
}

type issueHistoryService struct {
	repo      repository.IssueHistoryRepository
	issueRepo repository.IssueRepository
}

func NewIssueHistoryService(repo repository.IssueHistoryRepository,
	issueRepo repository.IssueRepository) IssueHistoryService {
	return &issueHistoryService{
		repo:      repo,
		issueRepo: issueRepo,
	}
}

func (s *issueHistoryService) ListByIssue(issueID int64) ([]*dto.IssueHistoryResponse, error) {
	if _, err := s.issueRepo.FindByID(issueID); err != nil {
		return nil, err
	}

	histories, err := s.repo.ListByIssue(issueID)
	if err != nil {
		return nil, err
	}

	return lo.Map(histories, func(h *model.IssueHistory, _ int) *dto.IssueHistoryResponse {
		resp := &dto.IssueHistoryResponse{
			ID:             h.ID,
			IssueID:        h.IssueID,
			PreviousStatus: h.PreviousStatus,
			NewStatus:      h.NewStatus,
			ChangedByID:    h.ChangedByID,
			Reason:         h.Reason,
			CreatedAt:      h.CreatedAt.Format(time.RFC3339),
		}
		if h.ChangedBy != nil {
			resp.ChangedByName = h.ChangedBy.Name
		}
		return resp
	}), nil
}
