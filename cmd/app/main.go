package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/trello-export/internal/config"
	"github.com/BuzzLyutic/trello-export/internal/export"
	"github.com/BuzzLyutic/trello-export/internal/handler"
	"github.com/BuzzLyutic/trello-export/internal/logging"
	"github.com/BuzzLyutic/trello-export/internal/repo"
	"github.com/BuzzLyutic/trello-export/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Подключаем логгер
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	boardService := service.NewBoardService(repo.NewBoardRepo(), service.Options{
		DefaultPath: cfg.DefaultDataPath,
		Policy:      cfg.UnknownLabels,
		Export:      export.Options{LabelSeparator: cfg.LabelSeparator},
	})
	boardHandler := handler.NewBoardHandler(boardService, logger, cfg.MaxUploadBytes)

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(boardHandler, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started",
			zap.String("addr", srv.Addr),
			zap.String("default_data_path", cfg.DefaultDataPath),
			zap.Stringer("unknown_labels", cfg.UnknownLabels),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped successfully!")
}
