package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"worktrack/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.RefreshToken{}))
	return db
}

func TestCleanupExpiredTokens(t *testing.T) {
	db := newTestDB(t)

	user := model.User{Name: "张三", Email: "zhangsan@example.com", Password: "x", Authorities: model.StringList{"TEAM_MEMBER"}}
	require.NoError(t, db.Create(&user).Error)

	expired := model.RefreshToken{UserID: user.ID, Token: "expired-token", ExpiryDate: time.Now().Add(-time.Hour)}
	live := model.RefreshToken{UserID: user.ID, Token: "live-token", ExpiryDate: time.Now().Add(time.Hour)}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&live).Error)

	s := NewScheduler(db, zap.NewNop())
	require.NoError(t, s.CleanupExpiredTokens())

	var tokens []model.RefreshToken
	require.NoError(t, db.Find(&tokens).Error)
	require.Len(t, tokens, 1)
	assert.Equal(t, "live-token", tokens[0].Token)

	// 软删除, 墓碑仍可追溯
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.RefreshToken{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
