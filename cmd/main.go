package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"report-service/internal/config"
	"report-service/internal/database/minio"
	"report-service/internal/database/postgres"
	"report-service/internal/database/redis"
	"report-service/internal/event"
	"report-service/internal/handlers"
	"report-service/internal/repository"
	"report-service/internal/services"

	"github.com/gofiber/fiber/v3"
	_ "github.com/lib/pq"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/investhub", "log", "report_service")
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))
	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()

	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}
	defer minioClient.Close()

	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitConn.Close()

	// Repositories
	applicationRepo := repository.NewApplicationRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Services
	templateResolver := services.NewCachedTemplateResolver(templateRepo, redisClient.GetClient(), 10*time.Minute)
	viewBuilder := services.NewViewModelBuilder(templateResolver, cfg.ReportCfg)
	htmlRenderer := services.NewStorageTemplateRenderer(minioClient)
	pdfRenderer := services.NewWkhtmltopdfRenderer()
	reportStorage := services.NewReportStorageService(minioClient)
	notifier := event.NewReportNotifier(event.NewNotificationPublisher(rabbitConn))

	reportService := services.NewReportService(
		applicationRepo,
		viewBuilder,
		htmlRenderer,
		pdfRenderer,
		reportStorage,
		notifier,
	)

	// HTTP surface
	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Report service is healthy")
	})

	handlers.NewReportHandler(reportService, cfg.ReportCfg.TemplateBaseURL).Register(app)
	handlers.NewApplicationHandler(applicationRepo).Register(app)

	slog.Info("Report service starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
