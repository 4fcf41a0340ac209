package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worktrack/internal/api/middleware"
	"worktrack/internal/dto"
	"worktrack/internal/service"
	"worktrack/pkg/responses"
	"worktrack/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register 注册
// @Summary 注册新用户
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册请求"
// @Success 200 {object} responses.Response{data=dto.TokenResponse}
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	tokens, err := h.authService.Register(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, tokens)
}

// Login 登录
// @Summary 邮箱密码登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} responses.Response{data=dto.TokenResponse}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, tokens)
}

// Refresh 刷新令牌
// @Summary 刷新访问令牌, 旧刷新令牌作废
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "刷新令牌请求"
// @Success 200 {object} responses.Response{data=dto.TokenResponse}
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	tokens, err := h.authService.Refresh(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, tokens)
}

// Logout 登出
// @Summary 登出并作废全部刷新令牌
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.Response
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		responses.ErrorWithCode(c, 401, "未认证")
		return
	}

	if err := h.authService.Logout(user.UserID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// GetMe 当前用户信息
// @Summary 获取当前登录用户信息
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.Response{data=dto.UserInfo}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		responses.ErrorWithCode(c, 401, "未认证")
		return
	}

	responses.Success(c, user)
}
