// Файл: main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"branches-api/internal/repositories"
	"branches-api/internal/routes"
	"branches-api/pkg/config"
	applogger "branches-api/pkg/logger"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger, err := applogger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Хранилище
	branchRepo, closeStorage, err := repositories.NewBranchStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Не удалось открыть хранилище", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStorage()

	// 3. Echo и маршруты
	e, err := routes.NewEcho(cfg, logger)
	if err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	routes.InitRouter(e, branchRepo, cfg.Storage.Driver, logger)

	// 4. Запуск сервера
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Ошибка запуска сервера", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
}
