package model

import (
	"time"

	"gorm.io/datatypes"
)

const IssueTableName = "issues"

// Issue 事项模型
type Issue struct {
	BaseModelWithSoftDelete
	ProjectID  int64  `gorm:"not null;index" json:"project_id"`
	AssigneeID *int64 `gorm:"index" json:"assignee_id,omitempty"`
	ReporterID int64  `gorm:"not null;index" json:"reporter_id"`

	Type               string     `gorm:"size:20;not null" json:"type"`
	Title              string     `gorm:"size:200;not null" json:"title"`
	Description        *string    `gorm:"type:text" json:"description"`
	UserStory          *string    `gorm:"type:text" json:"user_story,omitempty"`
	AcceptanceCriteria *string    `gorm:"type:text" json:"acceptance_criteria,omitempty"`
	Status             string     `gorm:"size:20;not null;default:BACKLOG;index" json:"status"`
	Priority           string     `gorm:"size:20;not null" json:"priority"`
	DueDate            *time.Time `json:"due_date,omitempty"`

	Labels datatypes.JSON `gorm:"type:json" json:"labels,omitempty"`

	// Relations
	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignee *User    `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Reporter *User    `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
}

func (Issue) TableName() string {
	return IssueTableName
}
