package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wahanakarya/cms_api/internal/auth"
	"github.com/wahanakarya/cms_api/internal/cache"
	"github.com/wahanakarya/cms_api/internal/config"
	"github.com/wahanakarya/cms_api/internal/database"
	"github.com/wahanakarya/cms_api/internal/handler"
	"github.com/wahanakarya/cms_api/internal/middleware"
	"github.com/wahanakarya/cms_api/internal/repository"
	"github.com/wahanakarya/cms_api/internal/schema"
	"github.com/wahanakarya/cms_api/internal/service"
)

// main is the application entrypoint for the Wahana Karya content API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting cms api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Schema registry. Warm it up front so the first request pays no
	// DDL cost; repositories still ensure defensively per call.
	registry := schema.NewRegistry(db)
	if err := registry.EnsureAll(context.Background()); err != nil {
		log.Error().Err(err).Msg("initial schema ensure failed")
		fmt.Fprintf(os.Stderr, "initial schema ensure failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("schema ensured for all content domains")

	// 3b. Connect to Redis. The content cache is optional; a missing Redis
	// only costs repeated reads.
	var contentCache *cache.ContentCache
	if redisClient, err := cache.NewRedisClient(&cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("redis unavailable - content caching disabled")
	} else {
		defer redisClient.Close()
		contentCache = cache.NewContentCache(redisClient)
		log.Info().Msg("redis connected successfully")
	}

	// 4. Initialize repositories
	adminRepo := repository.NewAdminUserRepository(db, registry)
	articleRepo := repository.NewArticleRepository(db, registry)
	testimonialRepo := repository.NewTestimonialRepository(db, registry)
	mediaRepo := repository.NewMediaRepository(db, registry)
	jobRepo := repository.NewJobPostingRepository(db, registry)
	procurementRepo := repository.NewProcurementRepository(db, registry)
	reportRepo := repository.NewReportRepository(db, registry)
	staffRepo := repository.NewStaffRepository(db, registry)
	galleryRepo := repository.NewGalleryRepository(db, registry)
	subscriberRepo := repository.NewSubscriberRepository(db, registry)

	// 5. Initialize services
	tokenSvc := auth.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	adminAuthSvc := service.NewAdminAuthService(adminRepo, cfg.Seed)
	uploadSvc, err := service.NewUploadService(&cfg.S3)
	if err != nil {
		log.Warn().Err(err).Msg("upload service initialization failed - media uploads will be disabled")
	}

	secure := cfg.Env == "production"

	// 6. Initialize handlers
	handlers := &Handlers{
		Auth:        handler.NewAuthHandler(adminAuthSvc, tokenSvc, secure),
		Article:     handler.NewArticleHandler(articleRepo, contentCache),
		Testimonial: handler.NewTestimonialHandler(testimonialRepo),
		Media:       handler.NewMediaHandler(mediaRepo),
		Job:         handler.NewJobPostingHandler(jobRepo),
		Procurement: handler.NewProcurementHandler(procurementRepo),
		Report:      handler.NewReportHandler(reportRepo),
		Staff:       handler.NewStaffHandler(staffRepo),
		Gallery:     handler.NewGalleryHandler(galleryRepo),
		Subscriber:  handler.NewSubscriberHandler(subscriberRepo),
		Upload:      handler.NewUploadHandler(uploadSvc),
		Public: handler.NewPublicHandler(handler.PublicHandlerDeps{
			Articles:     articleRepo,
			Testimonials: testimonialRepo,
			Media:        mediaRepo,
			Jobs:         jobRepo,
			Procurement:  procurementRepo,
			Reports:      reportRepo,
			Staff:        staffRepo,
			Galleries:    galleryRepo,
			Subscribers:  subscriberRepo,
			Cache:        contentCache,
		}),
	}

	// 7. Initialize middleware
	sessionMw := middleware.NewSessionMiddleware(tokenSvc, secure)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, sessionMw)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Auth        *handler.AuthHandler
	Article     *handler.ArticleHandler
	Testimonial *handler.TestimonialHandler
	Media       *handler.MediaHandler
	Job         *handler.JobPostingHandler
	Procurement *handler.ProcurementHandler
	Report      *handler.ReportHandler
	Staff       *handler.StaffHandler
	Gallery     *handler.GalleryHandler
	Subscriber  *handler.SubscriberHandler
	Upload      *handler.UploadHandler
	Public      *handler.PublicHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, sessionMw *middleware.SessionMiddleware) {
	// Public site (no authentication)
	router.GET("/v1/health", handlers.Public.Health)
	router.GET("/v1/articles", handlers.Public.ListArticles)
	router.GET("/v1/articles/:slug", handlers.Public.GetArticle)
	router.GET("/v1/testimonials", handlers.Public.ListTestimonials)
	router.GET("/v1/media", handlers.Public.ListMedia)
	router.GET("/v1/jobs", handlers.Public.ListJobs)
	router.GET("/v1/procurement", handlers.Public.ListProcurement)
	router.GET("/v1/reports", handlers.Public.ListReports)
	router.GET("/v1/staff", handlers.Public.ListStaff)
	router.GET("/v1/galleries", handlers.Public.ListGalleries)
	router.GET("/v1/galleries/:slug", handlers.Public.GetGallery)
	router.POST("/v1/subscribe", handlers.Public.Subscribe)

	// Admin auth endpoints; session introspection stays outside the gate so
	// it can answer "not authenticated" instead of 401-ing at the door.
	router.POST("/v1/admin/auth/login", handlers.Auth.Login)
	router.GET("/v1/admin/auth/session", handlers.Auth.Session)
	router.POST("/v1/admin/auth/logout", handlers.Auth.Logout)

	// Admin API (programmatic; structured 401 on failure)
	admin := router.Group("/v1/admin")
	admin.Use(sessionMw.RequireAPI())
	{
		// Admin accounts
		admin.GET("/admins", handlers.Auth.ListAdmins)
		admin.POST("/admins", handlers.Auth.CreateAdmin)

		// Articles
		admin.GET("/articles", handlers.Article.List)
		admin.POST("/articles", handlers.Article.Create)
		admin.GET("/articles/:id", handlers.Article.Get)
		admin.PUT("/articles/:id", handlers.Article.Update)
		admin.DELETE("/articles/:id", handlers.Article.Delete)

		// Testimonials
		admin.GET("/testimonials", handlers.Testimonial.List)
		admin.POST("/testimonials", handlers.Testimonial.Create)
		admin.GET("/testimonials/:id", handlers.Testimonial.Get)
		admin.PUT("/testimonials/:id", handlers.Testimonial.Update)
		admin.DELETE("/testimonials/:id", handlers.Testimonial.Delete)

		// Media items
		admin.GET("/media", handlers.Media.List)
		admin.POST("/media", handlers.Media.Create)
		admin.GET("/media/:id", handlers.Media.Get)
		admin.PUT("/media/:id", handlers.Media.Update)
		admin.DELETE("/media/:id", handlers.Media.Delete)

		// Job postings
		admin.GET("/jobs", handlers.Job.List)
		admin.POST("/jobs", handlers.Job.Create)
		admin.GET("/jobs/:id", handlers.Job.Get)
		admin.PUT("/jobs/:id", handlers.Job.Update)
		admin.DELETE("/jobs/:id", handlers.Job.Delete)

		// Procurement notices
		admin.GET("/procurement", handlers.Procurement.List)
		admin.POST("/procurement", handlers.Procurement.Create)
		admin.GET("/procurement/:id", handlers.Procurement.Get)
		admin.PUT("/procurement/:id", handlers.Procurement.Update)
		admin.DELETE("/procurement/:id", handlers.Procurement.Delete)

		// Reports
		admin.GET("/reports", handlers.Report.List)
		admin.POST("/reports", handlers.Report.Create)
		admin.GET("/reports/:id", handlers.Report.Get)
		admin.PUT("/reports/:id", handlers.Report.Update)
		admin.DELETE("/reports/:id", handlers.Report.Delete)

		// Staff profiles
		admin.GET("/staff", handlers.Staff.List)
		admin.POST("/staff", handlers.Staff.Create)
		admin.GET("/staff/:id", handlers.Staff.Get)
		admin.PUT("/staff/:id", handlers.Staff.Update)
		admin.DELETE("/staff/:id", handlers.Staff.Delete)

		// Galleries
		admin.GET("/galleries", handlers.Gallery.List)
		admin.POST("/galleries", handlers.Gallery.Create)
		admin.GET("/galleries/:id", handlers.Gallery.Get)
		admin.PUT("/galleries/:id", handlers.Gallery.Update)
		admin.DELETE("/galleries/:id", handlers.Gallery.Delete)
		admin.POST("/galleries/:id/images", handlers.Gallery.AddImage)
		admin.DELETE("/galleries/:id/images/:imageId", handlers.Gallery.DeleteImage)

		// Subscribers
		admin.GET("/subscribers", handlers.Subscriber.List)
		admin.DELETE("/subscribers/:id", handlers.Subscriber.Delete)

		// Media uploads
		admin.POST("/uploads", handlers.Upload.Upload)
	}

	// Admin pages (navigational; redirect to login on failure)
	router.GET(middleware.LoginPath, func(c *gin.Context) {
		c.File("./web/admin/login.html")
	})
	pages := router.Group("/admin")
	pages.Use(sessionMw.RequirePage())
	{
		pages.GET("", func(c *gin.Context) {
			c.File("./web/admin/index.html")
		})
		pages.GET("/:page", func(c *gin.Context) {
			// Single-page panel; every section boots from the same shell.
			c.File("./web/admin/index.html")
		})
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
