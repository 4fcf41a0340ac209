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

// IssueDetailHandler 事项评论/附件/历史
type IssueDetailHandler struct {
	commentService    service.IssueCommentService
	attachmentService service.IssueAttachmentService
	historyService    service.IssueHistoryService
}

func NewIssueDetailHandler(commentService service.IssueCommentService,
	attachmentService service.IssueAttachmentService,
	historyService service.IssueHistoryService) *IssueDetailHandler {
	return &IssueDetailHandler{
		commentService:    commentService,
		attachmentService: attachmentService,
		historyService:    historyService,
	}
}

// CreateComment 创建评论
// @Summary 创建事项评论
// @Tags IssueDetail
// @Accept json
// @Produce json
// @Param request body dto.IssueCommentRequest true "创建评论请求"
// @Success 200 {object} responses.Response{data=dto.IssueCommentResponse}
// @Router /api/v1/issue_comments [post]
func (h *IssueDetailHandler) CreateComment(c *gin.Context) {
	var req dto.IssueCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	comment, err := h.commentService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, comment)
}

// UpdateComment 更新评论
// @Summary 更新事项评论
// @Tags IssueDetail
// @Accept json
// @Produce json
// @Param id path int64 true "评论ID"
// @Param request body dto.IssueCommentRequest true "更新评论请求"
// @Success 200 {object} responses.Response{data=dto.IssueCommentResponse}
// @Router /api/v1/issue_comments/{id} [put]
func (h *IssueDetailHandler) UpdateComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的评论ID", err.Error())
		return
	}

	var req dto.IssueCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	comment, err := h.commentService.Update(id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, comment)
}

// ListComments 评论列表
// @Summary 获取事项评论列表
// @Tags IssueDetail
// @Produce json
// @Param id path int64 true "事项ID"
// @Success 200 {object} responses.Response{data=[]dto.IssueCommentResponse}
// @Router /api/v1/issues/{id}/comments [get]
func (h *IssueDetailHandler) ListComments(c *gin.Context) {
	issueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的事项ID", err.Error())
		return
	}

	comments, err := h.commentService.ListByIssue(issueID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, comments)
}

// DeleteComment 删除评论
// @Summary 删除事项评论
// @Tags IssueDetail
// @Produce json
// @Param id path int64 true "评论ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/issue_comments/{id} [delete]
func (h *IssueDetailHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的评论ID", err.Error())
		return
	}

	if err := h.commentService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// CreateAttachment 创建附件
// @Summary 登记事项附件
// @Tags IssueDetail
// @Accept json
// @Produce json
// @Param request body dto.IssueAttachmentRequest true "创建附件请求"
// @Success 200 {object} responses.Response{data=dto.IssueAttachmentResponse}
// @Router /api/v1/issue_attachments [post]
func (h *IssueDetailHandler) CreateAttachment(c *gin.Context) {
	var req dto.IssueAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	attachment, err := h.attachmentService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, attachment)
}

// ListAttachments 附件列表
// @Summary 获取事项附件列表
// @Tags IssueDetail
// @Produce json
// @Param id path int64 true "事项ID"
// @Success 200 {object} responses.Response{data=[]dto.IssueAttachmentResponse}
// @Router /api/v1/issues/{id}/attachments [get]
func (h *IssueDetailHandler) ListAttachments(c *gin.Context) {
	issueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的事项ID", err.Error())
		return
	}

	attachments, err := h.attachmentService.ListByIssue(issueID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, attachments)
}

// DeleteAttachment 删除附件
// @Summary 删除事项附件
// @Tags IssueDetail
// @Produce json
// @Param id path int64 true "附件ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/issue_attachments/{id} [delete]
func (h *IssueDetailHandler) DeleteAttachment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的附件ID", err.Error())
		return
	}

	if err := h.attachmentService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// ListHistories 状态变更历史
// @Summary 获取事项状态变更历史
// @Tags IssueDetail
// @Produce json
// @Param id path int64 true "事项ID"
// @Success 200 {object} responses.Response{data=[]dto.IssueHistoryResponse}
// @Router /api/v1/issues/{id}/histories [get]
func (h *IssueDetailHandler) ListHistories(c *gin.Context) {
	issueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的事项ID", err.Error())
		return
	}

	histories, err := h.historyService.ListByIssue(issueID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, histories)
}
