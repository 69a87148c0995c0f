package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool, zlog); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	usersRepo := repo.NewUsersRepo(pool)
	docsRepo := repo.NewDocumentsRepo(pool)
	renderer := infra.NewChromedpRenderer(cfg.ChromePath)

	accounts := usecase.NewAccountService(usersRepo, []byte(cfg.JWTSecret), zlog)
	documents := usecase.NewDocumentService(docsRepo, usersRepo, cfg.FreePlanLimit, zlog)
	exporter := usecase.NewExporter(docsRepo, renderer, zlog)
	summaries := usecase.NewTemplateSummaryGenerator()

	app := fiber.New(fiber.Config{
		AppName: "resume-builder",
	})
	h := httpadapter.NewHandler(accounts, documents, exporter, summaries, zlog)
	h.Register(app)

	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zlog.Error("shutdown failed", zap.Error(err))
	}
}
