package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worktrack/internal/dto"
	"worktrack/internal/service"
	"worktrack/pkg/responses"
	"worktrack/pkg/utils"
)

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Create 创建团队
// @Summary 创建团队
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.TeamRequest true "创建团队请求"
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, team)
}

// GetByID 获取团队详情
// @Summary 获取团队详情, 包含成员列表
// @Tags Team
// @Produce json
// @Param id path int64 true "团队ID"
// @Success 200 {object} responses.Response{data=dto.TeamMemberListResponse}
// @Router /api/v1/teams/{id} [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的团队ID", err.Error())
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, team)
}

// List 获取团队列表
// @Summary 按项目获取团队列表
// @Tags Team
// @Produce json
// @Param project_id query int64 true "项目ID"
// @Success 200 {object} responses.Response{data=[]dto.TeamResponse}
// @Router /api/v1/teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Query("project_id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的项目ID", err.Error())
		return
	}

	teams, err := h.teamService.ListByProject(projectID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, teams)
}

// Update 更新团队
// @Summary 更新团队
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int64 true "团队ID"
// @Param request body dto.TeamRequest true "更新团队请求"
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/teams/{id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的团队ID", err.Error())
		return
	}

	var req dto.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, team)
}

// Delete 删除团队
// @Summary 删除团队, 级联移除成员关系
// @Tags Team
// @Produce json
// @Param id path int64 true "团队ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的团队ID", err.Error())
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
