package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/testcase-service/internal/api/http"
	"github.com/spec-kit/testcase-service/internal/api/http/handlers"
	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/config"
	"github.com/spec-kit/testcase-service/internal/events"
	"github.com/spec-kit/testcase-service/internal/observability"
	"github.com/spec-kit/testcase-service/internal/persistence"
	"github.com/spec-kit/testcase-service/internal/repository"
	"github.com/spec-kit/testcase-service/internal/service"
	"github.com/spec-kit/testcase-service/internal/worker"
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

	if cfg.Auth.UsingDefaultSecret() {
		logger.Warn("AUTH_JWT_SECRET not set; using the development fallback secret")
	}

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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	suiteRepo := repository.NewSuiteRepository(pool)
	caseRepo := repository.NewTestCaseRepository(pool)
	runRepo := repository.NewRunRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	userService := service.NewUserService(userRepo, dispatcher, cfg.Auth.BcryptCost)
	projectService := service.NewProjectService(projectRepo)
	caseService := service.NewCaseService(service.CaseDependencies{
		SuiteRepo:    suiteRepo,
		TestCaseRepo: caseRepo,
		Dispatcher:   dispatcher,
	})
	runService := service.NewRunService(service.RunDependencies{
		RunRepo:      runRepo,
		TestCaseRepo: caseRepo,
		ProjectRepo:  projectRepo,
		Dispatcher:   dispatcher,
	})

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	resolver := auth.NewResolver(authService.TokenCodec())
	guard := auth.NewRouteGuard(resolver, httptransport.GuardExcludedPrefixes)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:       handlers.NewAuthHandler(authService),
		AdminUsers: handlers.NewAdminUsersHandler(userService),
		Projects:   handlers.NewProjectsHandler(projectService),
		Cases:      handlers.NewCasesHandler(caseService),
		Runs:       handlers.NewRunsHandler(runService),
		RouteGuard: guard,
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
