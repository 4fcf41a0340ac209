package model

import "time"

const RefreshTokenTableName = "refresh_tokens"

// RefreshToken 刷新令牌, 轮换时旧记录软删除
type RefreshToken struct {
	BaseModelWithSoftDelete
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	Token      string    `gorm:"size:191;not null;index" json:"token"`
	ExpiryDate time.Time `gorm:"not null" json:"expiry_date"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (RefreshToken) TableName() string {
	return RefreshTokenTableName
}
