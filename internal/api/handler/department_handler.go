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

type DepartmentHandler struct {
	departmentService service.DepartmentService
}

func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// Create 创建部门
// @Summary 创建部门
// @Tags Department
// @Accept json
// @Produce json
// @Param request body dto.DepartmentRequest true "创建部门请求"
// @Success 200 {object} responses.Response{data=dto.DepartmentResponse}
// @Router /api/v1/departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	department, err := h.departmentService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, department)
}

// GetByID 获取部门详情
// @Summary 获取部门详情
// @Tags Department
// @Produce json
// @Param id path int64 true "部门ID"
// @Success 200 {object} responses.Response{data=dto.DepartmentResponse}
// @Router /api/v1/departments/{id} [get]
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的部门ID", err.Error())
		return
	}

	department, err := h.departmentService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, department)
}

// List 获取部门列表
// @Summary 获取部门列表
// @Tags Department
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} responses.Response{data=[]dto.DepartmentResponse}
// @Router /api/v1/departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	var query dto.DepartmentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	departments, total, err := h.departmentService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, departments, total, query.GetPage(), query.GetPageSize())
}

// Update 更新部门
// @Summary 更新部门
// @Tags Department
// @Accept json
// @Produce json
// @Param id path int64 true "部门ID"
// @Param request body dto.DepartmentRequest true "更新部门请求"
// @Success 200 {object} responses.Response{data=dto.DepartmentResponse}
// @Router /api/v1/departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的部门ID", err.Error())
		return
	}

	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	department, err := h.departmentService.Update(id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, department)
}

// Delete 删除部门
// @Summary 删除部门, 级联删除其下项目/团队/事项
// @Tags Department
// @Produce json
// @Param id path int64 true "部门ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "无效的部门ID", err.Error())
		return
	}

	if err := h.departmentService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
