package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/yogahom/studio-api/config"
	attendanceHandler "github.com/yogahom/studio-api/internal/handler/attendance"
	authHandler "github.com/yogahom/studio-api/internal/handler/auth"
	classHandler "github.com/yogahom/studio-api/internal/handler/class"
	customerHandler "github.com/yogahom/studio-api/internal/handler/customer"
	dashboardHandler "github.com/yogahom/studio-api/internal/handler/dashboard"
	"github.com/yogahom/studio-api/internal/handler/health"
	instructorHandler "github.com/yogahom/studio-api/internal/handler/instructor"
	packageHandler "github.com/yogahom/studio-api/internal/handler/packages"
	reportsHandler "github.com/yogahom/studio-api/internal/handler/reports"
	saleHandler "github.com/yogahom/studio-api/internal/handler/sale"
	"github.com/yogahom/studio-api/internal/middleware"
	"github.com/yogahom/studio-api/internal/repository/postgres"
	"github.com/yogahom/studio-api/internal/router"
	attendanceService "github.com/yogahom/studio-api/internal/service/attendance"
	authService "github.com/yogahom/studio-api/internal/service/auth"
	classService "github.com/yogahom/studio-api/internal/service/class"
	customerService "github.com/yogahom/studio-api/internal/service/customer"
	dashboardService "github.com/yogahom/studio-api/internal/service/dashboard"
	instructorService "github.com/yogahom/studio-api/internal/service/instructor"
	packageService "github.com/yogahom/studio-api/internal/service/packages"
	reportService "github.com/yogahom/studio-api/internal/service/report"
	saleService "github.com/yogahom/studio-api/internal/service/sale"
	"github.com/yogahom/studio-api/internal/service/schedule"
	"github.com/yogahom/studio-api/pkg/logger"
	"github.com/yogahom/studio-api/pkg/metrics"
)

func main() {
	log.Logger = logger.NewLogger(nil).Zerolog()

	// .env is optional; container deployments set real env vars
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	customerRepo := postgres.NewCustomerRepository(db)
	instructorRepo := postgres.NewInstructorRepository(db)
	classRepo := postgres.NewClassRepository(db)
	packageRepo := postgres.NewPackageRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	checker := schedule.NewChecker(classRepo)
	customerSvc := customerService.NewService(customerRepo)
	instructorSvc := instructorService.NewService(instructorRepo)
	classSvc := classService.NewService(classRepo, checker)
	packageSvc := packageService.NewService(packageRepo)
	saleSvc := saleService.NewService(saleRepo, customerRepo, packageRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, customerRepo, classRepo)
	reportSvc := reportService.NewService(saleRepo, customerRepo, instructorRepo, classRepo, packageRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewService(customerRepo, instructorRepo, classRepo, saleRepo)
	authSvc := authService.NewService(userRepo, log.Logger)

	m := metrics.NewMetrics(cfg.Monitoring.Namespace)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(m, router.Config{
		RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst: cfg.RateLimit.Burst,
		CORS:           corsConfig,
	},
		health.NewHandler(db),
		customerHandler.NewHandler(customerSvc),
		instructorHandler.NewHandler(instructorSvc),
		classHandler.NewHandler(classSvc, m),
		packageHandler.NewHandler(packageSvc),
		saleHandler.NewHandler(saleSvc, m),
		attendanceHandler.NewHandler(attendanceSvc, m),
		reportsHandler.NewHandler(reportSvc, m),
		dashboardHandler.NewHandler(dashboardSvc),
		authHandler.NewHandler(authSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
