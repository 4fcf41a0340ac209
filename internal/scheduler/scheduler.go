package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/pkg/config"
	"worktrack/internal/repository"
)

// Scheduler 调度器
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	tokenRepo     repository.RefreshTokenRepository
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(db *gorm.DB, logger *zap.Logger) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		tokenRepo:     repository.NewRefreshTokenRepository(db),
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.Config) error {
	log := s.logger.Sugar()

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.Scheduler.TokenCleanupCron
	if cronExpr == "" {
		cronExpr = "0 0 2 * * *" // 默认: 每天凌晨2点
		log.Warnf("未配置scheduler.token_cleanup_cron，使用默认值: %s", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 清理过期刷新令牌")
		if err := s.CleanupExpiredTokens(); err != nil {
			log.Errorf("清理过期刷新令牌任务执行失败: %v", err)
		}
	})

	if err != nil {
		log.Errorf("注册清理任务: %v 失败: %v", cronExpr, err)
		return err
	}

	s.cronSchedules["token_cleanup"] = entryID
	log.Infof("过期刷新令牌清理任务已注册: %s entry_id=%d", cronExpr, entryID)

	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 等待正在执行的任务完成
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// CleanupExpiredTokens 清理过期刷新令牌（定时触发, 也可手动触发）
func (s *Scheduler) CleanupExpiredTokens() error {
	deleted, err := s.tokenRepo.DeleteExpired(time.Now())
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("过期刷新令牌清理完成", zap.Int64("deleted", deleted))
	}
	return nil
}
