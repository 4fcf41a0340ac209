package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worktrack/internal/api/middleware"
	"worktrack/internal/dto"
	"worktrack/internal/service"
	"worktrack/pkg/responses"
	"worktrack/pkg/utils"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetByID 获取用户详情
// @Summary 获取用户详情
// @Tags User
// @Produce json
// @Param id path int64 true "用户ID"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的用户ID", err.Error())
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// List 获取用户列表
// @Summary 获取用户列表
// @Tags User
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} responses.Response{data=[]dto.UserResponse}
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var query dto.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	users, total, err := h.userService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, users, total, query.GetPage(), query.GetPageSize())
}

// Update 更新用户
// @Summary 更新用户资料, 仅本人可操作
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int64 true "用户ID"
// @Param request body dto.UserUpdateRequest true "更新用户请求"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的用户ID", err.Error())
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.Update(id, middleware.GetCurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// AddRole 添加角色
// @Summary 为用户添加角色, 已持有时为幂等操作
// @Tags User
// @Accept json
// @Produce json
// @Param id path int64 true "用户ID"
// @Param request body dto.UserRoleRequest true "角色请求"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/users/{id}/roles [post]
func (h *UserHandler) AddRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的用户ID", err.Error())
		return
	}

	var req dto.UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.AddRole(id, req.Role)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// RemoveRole 移除角色
// @Summary 移除用户角色, TEAM_MEMBER角色不可移除
// @Tags User
// @Accept json
// @Produce json
// @Param id path int64 true "用户ID"
// @Param request body dto.UserRoleRequest true "角色请求"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/users/{id}/roles [delete]
func (h *UserHandler) RemoveRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的用户ID", err.Error())
		return
	}

	var req dto.UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.RemoveRole(id, req.Role)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// Delete 删除用户
// @Summary 删除用户, 级联移除团队成员关系并作废令牌
// @Tags User
// @Produce json
// @Param id path int64 true "用户ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的用户ID", err.Error())
		return
	}

	if err := h.userService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
