package model

import (
	"gorm.io/gorm"
	"time"
)

type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// BaseModelWithSoftDelete 基础模型, 所有实体统一使用墓碑时间戳软删除
type BaseModelWithSoftDelete struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// IsDeleted 记录是否已软删除
func (m *BaseModelWithSoftDelete) IsDeleted() bool {
	return m.DeletedAt.Valid
}
