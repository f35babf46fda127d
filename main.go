package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/bakrinola/portfolio-backend/src/config"
	"github.com/bakrinola/portfolio-backend/src/logger"
	"github.com/bakrinola/portfolio-backend/src/middleware"
	"github.com/bakrinola/portfolio-backend/src/routes"
	"github.com/bakrinola/portfolio-backend/src/services"
	"github.com/bakrinola/portfolio-backend/src/store"
)

func main() {
	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	// Document and blob stores
	stores, err := store.NewStores(cfg.DataDir, cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up storage")
	}

	// Auth setup
	credentials, err := services.NewEnvCredentials(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		log.Fatal().Err(err).Msg("error preparing admin credentials")
	}
	middleware.SetSecretKey(cfg.JWTSecret)

	// Services setup
	authService := services.NewAuthService(credentials, cfg.JWTSecret, cfg.TokenDuration)
	serviceService := services.NewServiceService(stores.Services)
	categoryService := services.NewCategoryService(stores.Categories)
	portfolioService := services.NewPortfolioService(stores.Portfolio, stores.Blobs)
	resumeService := services.NewResumeService(stores.Resume, stores.Blobs)
	contactService := services.NewContactService(stores.Contacts)
	testimonialService := services.NewTestimonialService(stores.Testimonials)
	dashboardService := services.NewDashboardService(stores.Portfolio, stores.Contacts)
	exportService := services.NewExportService(contactService)
	emailService := services.NewEmailService(cfg.Email)
	if !emailService.Enabled() {
		log.Warn().Msg("email service not configured, contact notifications disabled")
	}

	// Gin router setup
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SetupCORS(cfg.CORSOrigins))

	// Uploaded blobs are served statically by reference path
	router.Static(store.MountPoint, stores.Blobs.Dir())

	// Routes setup
	routes.SetupServiceRoutes(router, serviceService)
	routes.SetupCategoryRoutes(router, categoryService)
	routes.SetupPortfolioRoutes(router, portfolioService, stores.Blobs)
	routes.SetupResumeRoutes(router, resumeService, stores.Blobs)
	routes.SetupContactRoutes(router, contactService, exportService, emailService, log)
	routes.SetupTestimonialRoutes(router, testimonialService)
	routes.SetupAdminRoutes(router, authService, dashboardService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "message": "Server is running"})
	})

	// Server run with graceful shutdown
	server := &http.Server{Addr: cfg.Address, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", cfg.Address).Msg("server starting")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}
