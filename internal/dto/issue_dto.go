package dto

import "time"

// IssueRequest 创建事项请求
type IssueRequest struct {
	ProjectID          int64      `json:"project_id" binding:"required,min=1"`
	AssigneeID         *int64     `json:"assignee_id"`
	ReporterID         int64      `json:"reporter_id" binding:"required,min=1"`
	Type               string     `json:"type" binding:"required,issue_type"`
	Title              string     `json:"title" binding:"required,max=200"`
	Description        *string    `json:"description"`
	UserStory          *string    `json:"user_story"`
	AcceptanceCriteria *string    `json:"acceptance_criteria"`
	Priority           string     `json:"priority" binding:"required,priority"`
	DueDate            *time.Time `json:"due_date"`
	Labels             []string   `json:"labels"`
}

// IssueUpdateRequest 更新事项请求, 状态变更走单独入口
type IssueUpdateRequest struct {
	AssigneeID         *int64     `json:"assignee_id"`
	Type               string     `json:"type" binding:"required,issue_type"`
	Title              string     `json:"title" binding:"required,max=200"`
	Description        *string    `json:"description"`
	UserStory          *string    `json:"user_story"`
	AcceptanceCriteria *string    `json:"acceptance_criteria"`
	Priority           string     `json:"priority" binding:"required,priority"`
	DueDate            *time.Time `json:"due_date"`
	Labels             []string   `json:"labels"`
}

// IssueStatusChangeRequest 状态变更请求
type IssueStatusChangeRequest struct {
	Status string  `json:"status" binding:"required,issue_status"`
	Reason *string `json:"reason"`
}

// IssueListQuery 事项列表查询
type IssueListQuery struct {
	PageQuery
	ProjectID int64  `form:"project_id" binding:"required,min=1"`
	Status    string `form:"status" binding:"omitempty,issue_status"`
}

// IssueResponse 事项响应
type IssueResponse struct {
	ID                 int64      `json:"id"`
	ProjectID          int64      `json:"project_id"`
	AssigneeID         *int64     `json:"assignee_id,omitempty"`
	ReporterID         int64      `json:"reporter_id"`
	Type               string     `json:"type"`
	Title              string     `json:"title"`
	Description        *string    `json:"description,omitempty"`
	UserStory          *string    `json:"user_story,omitempty"`
	AcceptanceCriteria *string    `json:"acceptance_criteria,omitempty"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	Labels             []string   `json:"labels,omitempty"`
	CreatedAt          string     `json:"created_at"`
	UpdatedAt          string     `json:"updated_at"`
}
