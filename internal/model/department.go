package model

const DepartmentTableName = "departments"

// Department 部门模型
type Department struct {
	BaseModelWithSoftDelete
	Name string `gorm:"size:100;not null;index" json:"name"`
}

func (Department) TableName() string {
	return DepartmentTableName
}
