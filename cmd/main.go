package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PredictAdmin/internal/api"
	"PredictAdmin/internal/config"
	"PredictAdmin/internal/database"
	"PredictAdmin/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run 返回前执行全部 defer（关闭数据库连接等），由 main 决定退出码
func run() error {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	// 2. 初始化日志
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	logger.Info("配置文件加载成功")

	// 3. 初始化 PostgreSQL 连接（库不存在则先创建再连）
	clock := clockwork.NewRealClock()
	db, err := database.Open(cfg.Database, logger, clock)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.WithError(err).Warn("关闭数据库连接失败")
		}
	}()
	logger.Info("PostgreSQL连接成功")

	// 4. 库表不存在则自动创建；使用 cmd/migrate 管理版本时关闭
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		logger.Info("数据库表结构检查完成（不存在则已创建）")
	}

	// 5. 配置Gin运行模式并注册路由
	gin.SetMode(cfg.Server.Mode)
	r := api.NewRouter(cfg, db, logger, clock)
	logger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 6. 启动服务，收到信号或监听失败时退出
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Infof("服务启动，端口：%d", cfg.Server.Port)
	return serve(ctx, srv, logger)
}

// serve 监听直到 ctx 结束后优雅关闭；监听失败时把错误交回调用方
func serve(ctx context.Context, srv *http.Server, logger *logrus.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.WithError(err).Error("启动服务失败")
			return fmt.Errorf("启动服务失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("收到退出信号，正在关闭服务…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("服务关闭失败")
		return err
	}
	return nil
}
