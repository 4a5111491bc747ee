package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthbridge/healthbridge/internal/config"
	"github.com/healthbridge/healthbridge/internal/domain/assessment"
	"github.com/healthbridge/healthbridge/internal/domain/emr"
	"github.com/healthbridge/healthbridge/internal/domain/labs"
	"github.com/healthbridge/healthbridge/internal/domain/recommendation"
	"github.com/healthbridge/healthbridge/internal/domain/settings"
	"github.com/healthbridge/healthbridge/internal/platform/auth"
	"github.com/healthbridge/healthbridge/internal/platform/db"
	"github.com/healthbridge/healthbridge/internal/platform/middleware"
	"github.com/healthbridge/healthbridge/internal/platform/notification"
)

// SubjectDirectoryAdapter adapts the EMR service to the
// assessment.SubjectDirectory interface, avoiding a direct dependency
// between the assessment and emr packages.
type SubjectDirectoryAdapter struct {
	emr *emr.Service
}

func NewSubjectDirectoryAdapter(svc *emr.Service) *SubjectDirectoryAdapter {
	return &SubjectDirectoryAdapter{emr: svc}
}

// Subject implements assessment.SubjectDirectory.
func (a *SubjectDirectoryAdapter) Subject(ctx context.Context, id uuid.UUID) (*assessment.Subject, error) {
	gender, age, err := a.emr.Demographics(ctx, id)
	if err != nil {
		return nil, err
	}
	return &assessment.Subject{ID: id, Gender: gender, Age: age}, nil
}

// RecommendationSourceAdapter adapts the recommendation resolver to the
// assessment.RecommendationSource interface.
type RecommendationSourceAdapter struct {
	recs *recommendation.Service
}

func NewRecommendationSourceAdapter(svc *recommendation.Service) *RecommendationSourceAdapter {
	return &RecommendationSourceAdapter{recs: svc}
}

// CoronaryRecommendation implements assessment.RecommendationSource.
func (a *RecommendationSourceAdapter) CoronaryRecommendation(ctx context.Context, ageGroup, gender, riskLevel string) (*assessment.CoronaryGuidance, error) {
	rec, fallback, err := a.recs.ResolveCoronary(ctx, ageGroup, gender, riskLevel)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return &assessment.CoronaryGuidance{
		DietAdjustments:      rec.DietAdjustments,
		PhysicalActivity:     rec.PhysicalActivity,
		MedicalInterventions: rec.MedicalInterventions,
		FallbackUsed:         fallback,
	}, nil
}

// StrokeRecommendation implements assessment.RecommendationSource.
func (a *RecommendationSourceAdapter) StrokeRecommendation(ctx context.Context, riskLevel string) (*assessment.StrokeGuidance, error) {
	rec, err := a.recs.ResolveStroke(ctx, riskLevel)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return &assessment.StrokeGuidance{
		DietRecommendation:             rec.DietRecommendation,
		MedicalRecommendation:          rec.MedicalRecommendation,
		PhysicalActivityRecommendation: rec.PhysicalActivityRecommendation,
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthbridge-server",
		Short: "HealthBridge risk-scoring API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(normalizeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	if os.Getenv("ENV") == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// connect loads configuration and opens the database pool shared by all
// subcommands.
func connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the risk-scoring API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			ctx := context.Background()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			ctx := context.Background()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed recommendation reference data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := recommendation.NewService(
				recommendation.NewCoronaryRepoPG(pool),
				recommendation.NewStrokeRepoPG(pool),
			)
			count, err := svc.Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed recommendations: %w", err)
			}

			fmt.Printf("Seeded %d recommendation record(s).\n", count)
			return nil
		},
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize-risk-levels",
		Short: "Rewrite legacy free-text risk levels to canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			normalizer := assessment.NewLevelNormalizer(pool, assessment.NewClassifier())
			count, err := normalizer.Run(ctx)
			if err != nil {
				return fmt.Errorf("normalize risk levels: %w", err)
			}

			fmt.Printf("Normalized %d assessment record(s).\n", count)
			return nil
		},
	}
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			JWKSURL:    cfg.AuthJWKSURL,
			SigningKey: []byte(cfg.JWTSigningKey),
		}))
	}

	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// -- Domain services --

	// EMR (subjects)
	emrSvc := emr.NewService(emr.NewPatientRepoPG(pool))
	emr.NewHandler(emrSvc).RegisterRoutes(api)

	// Lab categories
	labsSvc := labs.NewService(labs.NewCategoryRepoPG(pool))
	labs.NewHandler(labsSvc).RegisterRoutes(api)

	// Global settings
	settingsSvc := settings.NewService(settings.NewRepoPG(pool))
	settings.NewHandler(settingsSvc).RegisterRoutes(api)

	// Recommendations
	recSvc := recommendation.NewService(
		recommendation.NewCoronaryRepoPG(pool),
		recommendation.NewStrokeRepoPG(pool),
	)
	recommendation.NewHandler(recSvc).RegisterRoutes(api)

	// Notifications
	var emailSender notification.EmailSender
	if cfg.SMTPHost != "" {
		emailSender = &notification.SMTPEmailSender{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			From: cfg.SMTPFrom,
		}
	} else {
		logger.Warn().Msg("SMTP_HOST not set; email delivery uses the in-memory sender")
		emailSender = &notification.MockEmailSender{}
	}
	notifyMgr := notification.NewNotificationManager(emailSender, &notification.MockSMSSender{}, notification.NewTemplateEngine())
	notifyGroup := api.Group("", auth.RequireRole("admin"))
	notification.NewNotificationHandler(notifyMgr).RegisterRoutes(notifyGroup)

	alertsEnabled := func(ctx context.Context) bool {
		return settingsSvc.BoolOr(ctx, settings.KeyHighRiskAlerts, true)
	}
	alertNotifier := notification.NewAlertNotifier(notifyMgr, cfg.AlertRecipient, alertsEnabled, logger)

	// Assessments
	assessSvc := assessment.NewService(
		assessment.NewCoronaryRepoPG(pool),
		assessment.NewDiabeticRepoPG(pool),
		assessment.NewLiverRepoPG(pool),
		assessment.NewStrokeRepoPG(pool),
		NewSubjectDirectoryAdapter(emrSvc),
		assessment.NewClassifier(),
		NewRecommendationSourceAdapter(recSvc),
	)
	assessSvc.SetAlertSink(alertNotifier)
	assessment.NewHandler(assessSvc).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
