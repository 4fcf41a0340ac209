package service

import (
	"time"

	"github.com/samber/lo"

	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/repository"
	pkgErrors "worktrack/pkg/errors"
)

type TeamMemberService interface {
	Add(teamID int64, req *dto.TeamMemberAddRequest) (*dto.TeamMemberListResponse, error)
	ListByTeam(teamID int64) ([]*dto.TeamMemberResponse, error)
	Remove(id int64) error
}

type teamMemberService struct {
	repo     repository.TeamMemberRepository
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

func NewTeamMemberService(repo repository.TeamMemberRepository, teamRepo repository.TeamRepository, userRepo repository.UserRepository) TeamMemberService {
	return &teamMemberService{
		repo:     repo,
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// Add 添加团队成员
// (团队,用户)组合存在历史记录时: 活跃记录报冲突, 已删除记录恢复而不新建
func (s *teamMemberService) Add(teamID int64, req *dto.TeamMemberAddRequest) (*dto.TeamMemberListResponse, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAnyByTeamAndUser(teamID, req.UserID)
	if err != nil && err != pkgErrors.ErrRecordNotFound {
		return nil, err
	}

	switch {
	case existing == nil:
		member := &model.TeamMember{
			TeamID: teamID,
			UserID: req.UserID,
		}
		if err := s.repo.Create(member); err != nil {
			return nil, err
		}
	case existing.IsDeleted():
		// 保留成员历史, 恢复墓碑记录
		if err := s.repo.Restore(existing.ID); err != nil {
			return nil, err
		}
	default:
		return nil, pkgErrors.New(pkgErrors.CodeConflict, "用户已是该团队成员")
	}

	members, err := s.ListByTeam(teamID)
	if err != nil {
		return nil, err
	}
	return &dto.TeamMemberListResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
		Members:  members,
	}, nil
}

func (s *teamMemberService) ListByTeam(teamID int64) ([]*dto.TeamMemberResponse, error) {
	members, err := s.repo.ListByTeam(teamID)
	if err != nil {
		return nil, err
	}
	return lo.Map(members, func(m *model.TeamMember, _ int) *dto.TeamMemberResponse {
		return s.toResponse(m)
	}), nil
}

func (s *teamMemberService) Remove(id int64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *teamMemberService) toResponse(member *model.TeamMember) *dto.TeamMemberResponse {
	resp := &dto.TeamMemberResponse{
		ID:        member.ID,
		TeamID:    member.TeamID,
		UserID:    member.UserID,
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
	}
	if member.User != nil {
		resp.Name = member.User.Name
		resp.Email = member.User.Email
	}
	return resp
}
