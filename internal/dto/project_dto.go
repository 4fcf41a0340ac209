package dto

// ProjectRequest 创建/更新项目请求
type ProjectRequest struct {
	Title        string  `json:"title" binding:"required,max=100"`
	Description  *string `json:"description"`
	Status       string  `json:"status" binding:"omitempty,project_status"`
	DepartmentID int64   `json:"department_id" binding:"required,min=1"`
}

// ProjectStatusRequest 更新项目状态请求
type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required,project_status"`
}

// ProjectListQuery 项目列表查询
type ProjectListQuery struct {
	PageQuery
	DepartmentID int64 `form:"department_id" binding:"required,min=1"`
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Status       string  `json:"status"`
	DepartmentID int64   `json:"department_id"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
