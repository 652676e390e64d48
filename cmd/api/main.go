package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/WebArtifcatsind/my-project-backend/internal/ai"
	httptransport "github.com/WebArtifcatsind/my-project-backend/internal/api/http"
	"github.com/WebArtifcatsind/my-project-backend/internal/api/http/handlers"
	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/config"
	"github.com/WebArtifcatsind/my-project-backend/internal/mail"
	"github.com/WebArtifcatsind/my-project-backend/internal/observability"
	"github.com/WebArtifcatsind/my-project-backend/internal/persistence"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	"github.com/WebArtifcatsind/my-project-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	blobs, err := storage.NewS3BlobStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to init blob store", zap.Error(err))
	}

	mailer := mail.NewSMTPMailer(cfg.SMTP, logger)
	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	salaryRepo := repository.NewSalaryRepository(pool)
	trainingRepo := repository.NewTrainingRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	authService := service.NewAuthService(*cfg, userRepo, mailer, logger)
	userService := service.NewUserService(userRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, cfg.Attendance)
	leaveService := service.NewLeaveService(leaveRepo)
	documentService := service.NewDocumentService(documentRepo, blobs)
	salaryService := service.NewSalaryService(salaryRepo, blobs)
	trainingService := service.NewTrainingService(trainingRepo, blobs, logger)
	clientService := service.NewClientService(complaintRepo, feedbackRepo, blobs)
	notificationService := service.NewNotificationService(notificationRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	contactService := service.NewContactService(contactRepo, mailer, cfg.SMTP.CompanyInbox, logger)
	chatService := service.NewChatService(
		ai.NewGeminiClient(cfg.Gemini),
		ai.NewRedisHistoryStore(redis.Client, cfg.Gemini.HistoryTTL()),
		logger,
	)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Attendance:     handlers.NewAttendanceHandler(attendanceService),
		Leave:          handlers.NewLeaveHandler(leaveService),
		Documents:      handlers.NewDocumentsHandler(documentService),
		Salary:         handlers.NewSalaryHandler(salaryService),
		Training:       handlers.NewTrainingHandler(trainingService),
		Clients:        handlers.NewClientsHandler(clientService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Contact:        handlers.NewContactHandler(contactService),
		Chat:           handlers.NewChatHandler(chatService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
