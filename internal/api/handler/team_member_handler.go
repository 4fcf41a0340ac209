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

type TeamMemberHandler struct {
	teamMemberService service.TeamMemberService
}

func NewTeamMemberHandler(teamMemberService service.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{
		teamMemberService: teamMemberService,
	}
}

// AddMember 添加团队成员
// @Summary 添加团队成员, 曾被移除的成员会恢复原纪录
// @Tags TeamMember
// @Accept json
// @Produce json
// @Param id path int64 true "团队ID"
// @Param request body dto.TeamMemberAddRequest true "添加成员请求"
// @Success 200 {object} responses.Response{data=dto.TeamMemberListResponse}
// @Router /api/v1/teams/{id}/members [post]
func (h *TeamMemberHandler) AddMember(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的团队ID", err.Error())
		return
	}

	var req dto.TeamMemberAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamMemberService.Add(teamID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, team)
}

// ListMembers 成员列表
// @Summary 获取团队成员列表
// @Tags TeamMember
// @Produce json
// @Param id path int64 true "团队ID"
// @Success 200 {object} responses.Response{data=[]dto.TeamMemberResponse}
// @Router /api/v1/teams/{id}/members [get]
func (h *TeamMemberHandler) ListMembers(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的团队ID", err.Error())
		return
	}

	members, err := h.teamMemberService.ListByTeam(teamID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, members)
}

// DeleteMember 移除团队成员
// @Summary 移除团队成员
// @Tags TeamMember
// @Produce json
// @Param member_id path int64 true "成员记录ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/team_members/{member_id} [delete]
func (h *TeamMemberHandler) DeleteMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的成员记录ID", err.Error())
		return
	}

	if err := h.teamMemberService.Remove(memberID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
