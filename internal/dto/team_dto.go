package dto

// TeamRequest 创建/更新团队请求
type TeamRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	ProjectID int64  `json:"project_id" binding:"required,min=1"`
}

// TeamResponse 团队响应
type TeamResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ProjectID int64  `json:"project_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TeamMemberAddRequest 添加团队成员请求
type TeamMemberAddRequest struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
}

// TeamMemberResponse 团队成员响应
type TeamMemberResponse struct {
	ID        int64  `json:"id"`
	TeamID    int64  `json:"team_id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

// TeamMemberListResponse 团队及成员响应
type TeamMemberListResponse struct {
	TeamID   int64                 `json:"team_id"`
	TeamName string                `json:"team_name"`
	Members  []*TeamMemberResponse `json:"members"`
}
