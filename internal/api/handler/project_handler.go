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

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create 创建项目
// @Summary 创建项目
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.ProjectRequest true "创建项目请求"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// GetByID 获取项目详情
// @Summary 获取项目详情
// @Tags Project
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的项目ID", err.Error())
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// List 获取项目列表
// @Summary 按部门获取项目列表
// @Tags Project
// @Produce json
// @Param department_id query int64 true "部门ID"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} responses.Response{data=[]dto.ProjectResponse}
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	projects, total, err := h.projectService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, projects, total, query.GetPage(), query.GetPageSize())
}

// Update 更新项目
// @Summary 更新项目
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.ProjectRequest true "更新项目请求"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的项目ID", err.Error())
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// UpdateStatus 更新项目状态
// @Summary 更新项目状态, 已完成的项目不可再变更
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.ProjectStatusRequest true "状态变更请求"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id}/status [patch]
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的项目ID", err.Error())
		return
	}

	var req dto.ProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.UpdateStatus(id, req.Status)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// Delete 删除项目
// @Summary 删除项目, 级联删除其下团队与事项
// @Tags Project
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的项目ID", err.Error())
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
