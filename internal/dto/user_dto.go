package dto

// UserUpdateRequest 更新用户请求
type UserUpdateRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UserRoleRequest 角色变更请求
type UserRoleRequest struct {
	Role string `json:"role" binding:"required,user_role"`
}

// UserListQuery 用户列表查询
type UserListQuery struct {
	PageQuery
}

// UserResponse 用户响应
type UserResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Authorities []string `json:"authorities"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}
