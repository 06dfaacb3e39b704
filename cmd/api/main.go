package main

import (
	"log"

	"github.com/devsync-community/devsync-backend/config"
	"github.com/devsync-community/devsync-backend/internal/bootstrap"
	cronjob "github.com/devsync-community/devsync-backend/internal/community/cron"
	"github.com/devsync-community/devsync-backend/internal/community/repository"
	"github.com/devsync-community/devsync-backend/internal/community/service"
	"github.com/devsync-community/devsync-backend/internal/genai"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/devsync-community/devsync-backend/internal/metrics"
)

const serviceName = "devsync-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.New(serviceName, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)
	metrics.Register()

	genClient, err := genai.NewFromConfig(cfg.GenAI)
	if err != nil {
		log.Fatalf("generation client: %v", err)
	}
	reviewer := genai.NewReviewer(genClient)

	store := repository.NewStore()
	repository.Seed(store)

	notifications := service.NewNotificationService(store, appLog)
	projects := service.NewProjectService(store, notifications, appLog)
	analysis := service.NewAnalysisService(reviewer, projects, appLog)

	watcher := cronjob.NewScheduler(store, notifications, appLog, cfg.App.DeadlineCheckSpec)
	if err := watcher.Start(); err != nil {
		log.Fatalf("deadline watcher: %v", err)
	}
	defer watcher.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Log:            appLog,
		Projects:       projects,
		Notifications:  notifications,
		Analysis:       analysis,
	})

	appLog.WithOperation("startup").Infof("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
