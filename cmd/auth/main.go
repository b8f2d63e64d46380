package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	pgrepo "github.com/cookhub/auth-service/internal/adapters/db/postgres"
	redisrepo "github.com/cookhub/auth-service/internal/adapters/db/redis"
	transport "github.com/cookhub/auth-service/internal/adapters/transport/http"
	httpmw "github.com/cookhub/auth-service/internal/adapters/transport/http/middleware"
	appsvc "github.com/cookhub/auth-service/internal/app/auth/service"
	apptoken "github.com/cookhub/auth-service/internal/app/auth/token"
	"github.com/cookhub/auth-service/internal/infra/config"
	lg "github.com/cookhub/auth-service/internal/infra/log"
	"github.com/cookhub/auth-service/internal/infra/migrate"
	"github.com/cookhub/auth-service/internal/infra/server"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	redisCli := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisCli.Close()

	userRepo := pgrepo.NewUserRepo(db)
	tokenRepo := redisrepo.NewTokenBlacklist(redisCli)
	codec := apptoken.NewCodec(cfg.JWTSecret)
	svc := appsvc.New(userRepo, tokenRepo, codec, cfg, validator.New())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpmw.RequestLogger(zapLog))
	router.Use(httpmw.RateLimitPerIP(50, 100, 10_000, time.Hour))

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{
				"Origin", "Content-Type", "Accept",
				"Authorization",
				"X-Requested-With",
			},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: cfg.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}))
	}

	transport.NewHandler(svc, zapLog).Register(router)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(rootCtx)
	g.Go(func() error {
		return server.StartHTTPServer(ctx, cfg.HTTPAddress, router, zapLog)
	})

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
