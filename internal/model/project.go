package model

const ProjectTableName = "projects"

// Project 项目模型
// 唯一性只针对活跃记录校验, 在service层做, 不建库级唯一索引
type Project struct {
	BaseModelWithSoftDelete
	Title        string  `gorm:"size:100;not null;index" json:"title"`
	Description  *string `gorm:"type:text" json:"description"`
	Status       string  `gorm:"size:20;not null;default:IN_PROGRESS;index" json:"status"`
	DepartmentID int64   `gorm:"not null;index" json:"department_id"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Project) TableName() string {
	return ProjectTableName
}
