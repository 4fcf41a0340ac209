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

type IssueHandler struct {
	issueService service.IssueService
}

func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{
		issueService: issueService,
	}
}

// Create 创建事项
// @Summary 创建事项, 初始状态为BACKLOG
// @Tags Issue
// @Accept json
// @Produce json
// @Param request body dto.IssueRequest true "创建事项请求"
// @Success 200 {object} responses.Response{data=dto.IssueResponse}
// @Router /api/v1/issues [post]
func (h *IssueHandler) Create(c *gin.Context) {
	var req dto.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	issue, err := h.issueService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, issue)
}

// GetByID 获取事项详情
// @Summary 获取事项详情
// @Tags Issue
// @Produce json
// @Param id path int64 true "事项ID"
// @Success 200 {object} responses.Response{data=dto.IssueResponse}
// @Router /api/v1/issues/{id} [get]
func (h *IssueHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的事项ID", err.Error())
		return
	}

	issue, err := h.issueService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, issue)
}

// List 获取事项列表
// @Summary 按项目获取事项列表, 可按状态过滤
// @Tags Issue
// @Produce json
// @Param project_id query int64 true "项目ID"
// @Param status query string false "事项状态"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} responses.Response{data=[]dto.IssueResponse}
// @Router /api/v1/issues [get]
func (h *IssueHandler) List(c *gin.Context) {
	var query dto.IssueListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	issues, total, err := h.issueService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, issues, total, query.GetPage(), query.GetPageSize())
}

// Update 更新事项
// @Summary 更新事项内容, 状态变更走独立入口
// @Tags Issue
// @Accept json
// @Produce json
// @Param id path int64 true "事项ID"
// @Param request body dto.IssueUpdateRequest true "更新事项请求"
// @Success 200 {object} responses.Response{data=dto.IssueResponse}
// @Router /api/v1/issues/{id} [put]
func (h *IssueHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的事项ID", err.Error())
		return
	}

	var req dto.IssueUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	issue, err := h.issueService.Update(id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, issue)
}

// UpdateStatus 变更事项状态
// @Summary 按状态机流转事项状态, BLOCKED/CANCELLED需给出原因
// @Tags Issue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int64 true "事项ID"
// @Param request body dto.IssueStatusChangeRequest true "状态变更请求"
// @Success 200 {object} responses.Response{data=dto.IssueResponse}
// @Router /api/v1/issues/{id}/status [patch]
func (h *IssueHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的事项ID", err.Error())
		return
	}

	var req dto.IssueStatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	issue, err := h.issueService.UpdateStatus(id, middleware.GetCurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, issue)
}

// Delete 删除事项
// @Summary 删除事项, 状态置为CANCELLED并级联删除评论/附件/历史
// @Tags Issue
// @Produce json
// @Param id path int64 true "事项ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/issues/{id} [delete]
func (h *IssueHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的事项ID", err.Error())
		return
	}

	if err := h.issueService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
