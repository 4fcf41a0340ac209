package service

import (
	"time"

	"go.uber.org/zap"

	"worktrack/internal/dto"
	"worktrack/internal/model"
	"worktrack/internal/pkg/crypto"
	"worktrack/internal/pkg/jwt"
	"worktrack/internal/pkg/logger"
	"worktrack/internal/repository"
	pkgErrors "worktrack/pkg/errors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(userID int64) error
}

type authService struct {
	userSvc   UserService
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
}

func NewAuthService(userSvc UserService, userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository) AuthService {
	return &authService{
		userSvc:   userSvc,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// Register 注册新用户并签发令牌
func (s *authService) Register(req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	userResp, err := s.userSvc.Create(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	logger.Info("用户注册成功", zap.Int64("user_id", userResp.ID), zap.String("email", userResp.Email))

	return s.issueTokens(userResp)
}

// Login 邮箱密码登录
func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if pkgErrors.Is(err, pkgErrors.CodeNotFound) {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		logger.Warn("登录密码错误", zap.String("email", req.Email))
		return nil, pkgErrors.ErrInvalidCredentials
	}

	return s.issueTokens(userToResponse(user))
}

// Refresh 校验并轮换刷新令牌: 旧令牌作废, 签发新的令牌对
func (s *authService) Refresh(req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.FindByToken(req.RefreshToken)
	if err != nil {
		if pkgErrors.Is(err, pkgErrors.CodeNotFound) {
			return nil, pkgErrors.ErrInvalidToken
		}
		return nil, err
	}

	if stored.ExpiryDate.Before(time.Now()) {
		_ = s.tokenRepo.Delete(stored.ID)
		return nil, pkgErrors.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, err
	}

	// 轮换: 旧令牌只能用一次
	if err := s.tokenRepo.Delete(stored.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(userToResponse(user))
}

// Logout 作废用户的全部刷新令牌
func (s *authService) Logout(userID int64) error {
	return s.tokenRepo.DeleteByUserID(userID)
}

func (s *authService) issueTokens(user *dto.UserResponse) (*dto.TokenResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Name, user.Email, user.Authorities)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "签发访问令牌失败", err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.ID, user.Name, user.Email, user.Authorities)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "签发刷新令牌失败", err)
	}

	if err := s.tokenRepo.Create(&model.RefreshToken{
		UserID:     user.ID,
		Token:      refreshToken,
		ExpiryDate: jwt.RefreshTokenExpiry(),
	}); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func userToResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Authorities: user.Authorities,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
	}
}
