package model

const IssueCommentTableName = "issue_comments"
const IssueAttachmentTableName = "issue_attachments"
const IssueHistoryTableName = "issue_histories"

// IssueComment 事项评论
type IssueComment struct {
	BaseModelWithSoftDelete
	IssueID int64  `gorm:"not null;index" json:"issue_id"`
	UserID  int64  `gorm:"not null;index" json:"user_id"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	Issue *Issue `gorm:"foreignKey:IssueID" json:"issue,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (IssueComment) TableName() string {
	return IssueCommentTableName
}

// IssueAttachment 事项附件, 只存储定位符, 文件内容由外部对象存储负责
type IssueAttachment struct {
	BaseModelWithSoftDelete
	IssueID  int64  `gorm:"not null;index" json:"issue_id"`
	FileName string `gorm:"size:255;not null" json:"file_name"`
	FilePath string `gorm:"size:500;not null" json:"file_path"`

	Issue *Issue `gorm:"foreignKey:IssueID" json:"issue,omitempty"`
}

func (IssueAttachment) TableName() string {
	return IssueAttachmentTableName
}

// IssueHistory 事项状态变更审计记录, 创建后不可更新
// 只有在父事项删除时才随之软删除
type IssueHistory struct {
	BaseModelWithSoftDelete
	IssueID        int64   `gorm:"not null;index" json:"issue_id"`
	PreviousStatus string  `gorm:"size:20;not null" json:"previous_status"`
	NewStatus      string  `gorm:"size:20;not null" json:"new_status"`
	ChangedByID    *int64  `gorm:"index" json:"changed_by_id,omitempty"`
	Reason         *string `gorm:"type:text" json:"reason,omitempty"`

	Issue     *Issue `gorm:"foreignKey:IssueID" json:"issue,omitempty"`
	ChangedBy *User  `gorm:"foreignKey:ChangedByID" json:"changed_by,omitempty"`
}

func (IssueHistory) TableName() string {
	return IssueHistoryTableName
}
