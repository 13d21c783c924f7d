package main

import (
	"log"
	"os"

	"campus-admin/internal/config"
	"campus-admin/internal/models"
	"campus-admin/internal/repository"
	"campus-admin/internal/router"
	"campus-admin/internal/service"
	"campus-admin/internal/utils"
	"campus-admin/pkg/redis_limiter"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置（从项目根目录读取）
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化数据库并幂等建表
	db, err := models.OpenDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("数据库建表失败: %v", err)
	}

	// 初始化JWT管理器
	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)

	// 初始化默认管理员账户
	adminRepo := repository.NewAdminRepository(db)
	authService := service.NewAuthService(adminRepo, jwtManager, cfg)
	if err := authService.InitAdmin(); err != nil {
		logger.Warnf("初始化管理员失败: %v", err)
	}

	// 初始化登录限流（未配置Redis时禁用）
	var limiter *redis_limiter.RedisLimiter
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		limiter = redis_limiter.NewRedisLimiter(
			redisClient,
			cfg.RateLimit.MaxAttempts,
			"login_attempts:",
			cfg.RateLimit.GetWindow(),
		)
	} else {
		logger.Info("未配置Redis，登录限流已禁用")
	}

	// 设置路由
	r := router.SetupRouter(cfg, jwtManager, logger, db, limiter)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if !cfg.Server.ProductionMode {
		logger.Infof("默认管理员账号: %s", cfg.Admin.Username)
	}

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
