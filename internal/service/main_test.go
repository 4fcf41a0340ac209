package service

import (
	"os"
	"testing"

	"worktrack/internal/pkg/config"
	"worktrack/internal/pkg/logger"
)

// TestMain 初始化全局日志，避免服务代码中的 logger 调用因未初始化而 panic
func TestMain(m *testing.M) {
	if err := logger.Init(&config.LogConfig{Level: "error", Output: "stdout"}); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}
