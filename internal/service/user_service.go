package service

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"worktrack/internal/core/event"
	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/pkg/crypto"
	"worktrack/internal/repository"
	"worktrack/pkg/constants"
	pkgErrors "worktrack/pkg/errors"
)

type UserService interface {
	Create(name, email, password string) (*dto.UserResponse, error)
	GetByID(id int64) (*dto.UserResponse, error)
	List(query *dto.UserListQuery) ([]*dto.UserResponse, int64, error)
	Update(id int64, actor *dto.UserInfo, req *dto.UserUpdateRequest) (*dto.UserResponse, error)
	AddRole(id int64, role string) (*dto.UserResponse, error)
	RemoveRole(id int64, role string) (*dto.UserResponse, error)
	Delete(id int64) error
}

type userService struct {
	repo repository.UserRepository
	db   *gorm.DB
	bus  *event.Bus
}

func NewUserService(repo repository.UserRepository, db *gorm.DB, bus *event.Bus) UserService {
	return &userService{
		repo: repo,
		db:   db,
		bus:  bus,
	}
}

func (s *userService) Create(name, email, password string) (*dto.UserResponse, error) {
	if err := s.existsByEmail(email); err != nil {
		return nil, err
	}

	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	user := &model.User{
		Name:        name,
		Email:       email,
		Password:    hashed,
		Authorities: model.StringList{constants.RoleTeamMember},
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}

func (s *userService) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

func (s *userService) List(query *dto.UserListQuery) ([]*dto.UserResponse, int64, error) {
	users, total, err := s.repo.List(query.GetPage(), query.GetPageSize(), query.Keyword)
	if err != nil {
		return nil, 0, err
	}

	responses := lo.Map(users, func(u *model.User, _ int) *dto.UserResponse {
		return s.toResponse(u)
	})
	return responses, total, nil
}

// Update 只允许本人修改自己的资料
func (s *userService) Update(id int64, actor *dto.UserInfo, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if actor == nil || actor.Email != user.Email {
		return nil, pkgErrors.New(pkgErrors.CodeForbidden, "无权修改其他用户")
	}

	if user.Email != req.Email {
		if err := s.existsByEmail(req.Email); err != nil {
			return nil, err
		}
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Password = hashed
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}

// AddRole 重复添加为no-op
func (s *userService) AddRole(id int64, role string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if user.Authorities.Contains(role) {
		return s.toResponse(user), nil
	}

	user.Authorities = normalizeAuthorities(append(user.Authorities, role))
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

// RemoveRole TEAM_MEMBER 不可移除; 移除未持有的角色为no-op
func (s *userService) RemoveRole(id int64, role string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if role == constants.RoleTeamMember || !user.Authorities.Contains(role) {
		return s.toResponse(user), nil
	}

	user.Authorities = normalizeAuthorities(lo.Filter(user.Authorities, func(r string, _ int) bool {
		return r != role
	}))
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

// Delete 软删除用户并级联清理其团队成员记录与刷新令牌
func (s *userService) Delete(id int64) error {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(user).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除用户失败", err)
		}
		return s.bus.Publish(tx, event.UserDeleted{UserID: user.ID})
	})
}

func (s *userService) existsByEmail(email string) error {
	existing, err := s.repo.FindByEmail(email)
	if err != nil && err != pkgErrors.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		return pkgErrors.New(pkgErrors.CodeConflict, fmt.Sprintf("邮箱 %s 已被注册", email))
	}
	return nil
}

func (s *userService) toResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Authorities: user.Authorities,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
	}
}

// normalizeAuthorities 角色集合去重, 并保证 TEAM_MEMBER 永远在集合内
func normalizeAuthorities(authorities model.StringList) model.StringList {
	result := lo.Uniq(authorities)
	if !model.StringList(result).Contains(constants.RoleTeamMember) {
		result = append(result, constants.RoleTeamMember)
	}
	return result
}
