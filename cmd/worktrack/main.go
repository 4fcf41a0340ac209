package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "worktrack/docs" // Swagger docs
	"worktrack/internal/api/router"
	"worktrack/internal/model"
	"worktrack/internal/pkg/config"
	"worktrack/internal/pkg/database"
	"worktrack/internal/pkg/logger"
	"worktrack/internal/pkg/seed"
	"worktrack/internal/scheduler"
	"worktrack/pkg/utils"
)

// @title WorkTrack API
// @version 1.0
// @description 组织工作协同平台 API 文档
// @description 提供部门、项目、团队、事项管理等功能

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "配置文件路径 (例如: -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "显示版本信息")
)

const (
	appVersion = "1.0.0"
	appName    = "worktrack-service"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// init config logger
	var cfg *config.Config
	{
		// 优先级: 命令行参数 > 环境变量 > 默认路径
		configPath := getConfigPath()

		c, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = c

		if err := logger.Init(&cfg.Log); err != nil {
			fmt.Printf("初始化日志失败: %v\n", err)
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("Load config file: %s", configPath))

		defer func() {
			_ = logger.Close()
		}()
	}

	logger.Info(fmt.Sprintf("服务 %s 启动中...", appName), zap.String("version", appVersion))

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer func() {
		_ = database.Close()
	}()

	logger.Info(fmt.Sprintf("数据库连接成功 %s:%v", cfg.Database.Host, cfg.Database.Port), zap.String("database", cfg.Database.Database))

	// 同步表结构
	if err := database.GetDB().AutoMigrate(
		&model.Department{},
		&model.Project{},
		&model.Team{},
		&model.TeamMember{},
		&model.User{},
		&model.RefreshToken{},
		&model.Issue{},
		&model.IssueComment{},
		&model.IssueAttachment{},
		&model.IssueHistory{},
	); err != nil {
		logger.Fatal("同步表结构失败", zap.Error(err))
	}

	// 注册请求参数校验器
	if err := utils.RegisterValidators(); err != nil {
		logger.Fatal("注册参数校验器失败", zap.Error(err))
	}

	// 写入初始数据
	if cfg.Seed.Enabled && cfg.Seed.FilePath != "" {
		data, err := seed.Load(cfg.Seed.FilePath)
		if err != nil {
			logger.Fatal("加载初始数据失败", zap.Error(err))
		}
		if err := seed.Apply(database.GetDB(), data); err != nil {
			logger.Fatal("写入初始数据失败", zap.Error(err))
		}
	}

	// 初始化并启动定时任务调度器
	taskScheduler := scheduler.NewScheduler(database.GetDB(), logger.Log)
	if err := taskScheduler.Start(cfg); err != nil {
		logger.Warn("定时任务调度器启动失败", zap.Error(err))
	}

	// 设置路由
	r := router.Setup(cfg, database.GetDB(), logger.Log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info(fmt.Sprintf("%s 服务启动成功", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务正在关闭...")

	taskScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
}

// getConfigPath 获取配置文件路径
// 优先级: 命令行参数 > 环境变量 > 默认路径
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}

	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}

	return "configs/config.yaml"
}
