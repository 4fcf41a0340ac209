package dto

// IssueCommentRequest 创建/更新评论请求
type IssueCommentRequest struct {
	IssueID int64  `json:"issue_id" binding:"required,min=1"`
	UserID  int64  `json:"user_id" binding:"required,min=1"`
	Comment string `json:"comment" binding:"required"`
}

// IssueCommentResponse 评论响应
type IssueCommentResponse struct {
	ID        int64  `json:"id"`
	IssueID   int64  `json:"issue_id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// IssueAttachmentRequest 创建附件请求
type IssueAttachmentRequest struct {
	IssueID  int64  `json:"issue_id" binding:"required,min=1"`
	FileName string `json:"file_name" binding:"required,max=255"`
	FilePath string `json:"file_path" binding:"required,max=500"`
}

// IssueAttachmentResponse 附件响应
type IssueAttachmentResponse struct {
	ID        int64  `json:"id"`
	IssueID   int64  `json:"issue_id"`
	FileName  string `json:"file_name"`
	FilePath  string `json:"file_path"`
	CreatedAt string `json:"created_at"`
}

// IssueHistoryResponse 事项历史响应
type IssueHistoryResponse struct {
	ID             int64   `json:"id"`
	IssueID        int64   `json:"issue_id"`
	PreviousStatus string  `json:"previous_status"`
	NewStatus      string  `json:"new_status"`
	ChangedByID    *int64  `json:"changed_by_id,omitempty"`
	ChangedByName  string  `json:"changed_by_name,omitempty"`
	Reason         *string `json:"reason,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
