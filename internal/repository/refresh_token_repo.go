package repository

import (
	"time"

	"gorm.io/gorm"

	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

type RefreshTokenRepository interface {
	Create(token *model.RefreshToken) error
	FindByToken(token string) (*model.RefreshToken, error)
	Delete(id int64) error
	DeleteByUserID(userID int64) error
	DeleteExpired(before time.Time) (int64, error)
}

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(token *model.RefreshToken) error {
	if err := r.db.Create(token).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建刷新令牌失败", err)
	}
	return nil
}

func (r *refreshTokenRepository) FindByToken(token string) (*model.RefreshToken, error) {
	var refreshToken model.RefreshToken
	err := r.db.Where("token = ?", token).Preload("User").First(&refreshToken).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "刷新令牌不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询刷新令牌失败", err)
	}
	return &refreshToken, nil
}

func (r *refreshTokenRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.RefreshToken{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "作废刷新令牌失败", err)
	}
	return nil
}

func (r *refreshTokenRepository) DeleteByUserID(userID int64) error {
	if err := r.db.Where("user_id = ?", userID).
		Delete(&model.RefreshToken{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "作废用户刷新令牌失败", err)
	}
	return nil
}

// DeleteExpired 软删除过期令牌, 由定时任务调用
func (r *refreshTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expiry_date < ?", before).Delete(&model.RefreshToken{})
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "清理过期刷新令牌失败", result.Error)
	}
	return result.RowsAffected, nil
}
