package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"catalog_admin_v1_202608/config"
	"catalog_admin_v1_202608/internal/service"
	"catalog_admin_v1_202608/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg := config.Load()

	// 2. 初始化日志
	zapLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 初始化依赖
	deps := initDependencies(cfg, zapLogger)

	// 4. 冒烟运行：拉分类 + 默认页商品，确认后台连通
	smokeRun(deps, cfg.Listing.DefaultPage, zapLogger)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Hub     *service.NotificationHub
	Gateway *service.GatewayService
	Staging *service.StagingService
	Form    *service.FormService
	Listing *service.ListingService
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, zapLogger *zap.Logger) *Dependencies {
	hub := service.NewNotificationHub()

	gateway := service.NewGatewayService(&service.GatewayConfig{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, zapLogger)

	staging := service.NewStagingService(zapLogger)
	form := service.NewFormService(gateway, staging, hub, zapLogger)
	listing := service.NewListingService(gateway, hub, zapLogger)

	return &Dependencies{
		Hub:     hub,
		Gateway: gateway,
		Staging: staging,
		Form:    form,
		Listing: listing,
	}
}

// ==================== 冒烟运行 ====================

func smokeRun(deps *Dependencies, page int, zapLogger *zap.Logger) {
	ctx := context.Background()

	categories, err := deps.Gateway.FetchCategories(ctx)
	if err != nil {
		zapLogger.Warn("分类拉取失败", zap.Error(err))
	} else {
		zapLogger.Info("分类拉取完成", zap.Int("count", len(categories)))
	}

	if err := deps.Listing.LoadPage(ctx, page); err != nil {
		zapLogger.Warn("商品列表加载失败", zap.Error(err))
		return
	}

	zapLogger.Info("商品列表就绪",
		zap.String("state", deps.Listing.State()),
		zap.Int("current_page", deps.Listing.CurrentPage()),
		zap.Int("total_pages", deps.Listing.TotalPages()),
		zap.Int("total_products", deps.Listing.TotalProducts()))
}
