package dto

// DepartmentRequest 创建/更新部门请求
type DepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// DepartmentListQuery 部门列表查询
type DepartmentListQuery struct {
	PageQuery
}

// DepartmentResponse 部门响应
type DepartmentResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
