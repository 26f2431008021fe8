package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/avdeev21/retro-market/internal/handlers"
	"github.com/avdeev21/retro-market/internal/jwt"
	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/middlewares"
	"github.com/avdeev21/retro-market/internal/repositories"
	"github.com/avdeev21/retro-market/internal/seed"
	"github.com/avdeev21/retro-market/internal/services"
	"github.com/avdeev21/retro-market/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Retro Games Marketplace API
// @version 1.0.0
// @description Marketplace backend for listing and browsing retro video games
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		uploadDir, maxUploadMB, seedSample,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		uploadDir, maxUploadMB, seedSample,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT, upload, and seeding configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	uploadDir string, maxUploadMB int, seedSample bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "retromarket")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "600")); err != nil {
		return
	}

	// Kafka config; an empty broker list disables contact publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_CONTACT_TOPIC", "seller-contact")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Upload config
	uploadDir = getEnv("UPLOAD_DIR", "uploads")
	if maxUploadMB, err = strconv.Atoi(getEnv("MAX_UPLOAD_MB", "16")); err != nil {
		return
	}

	seedSample = getEnv("SEED_SAMPLE_DATA", "false") == "true"

	return
}

// run initializes the logger, database, Redis, Kafka producer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown. Postgres is the only hard dependency: Redis and Kafka failures
// degrade to an uncached or non-publishing service.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	uploadDir string, maxUploadMB int, seedSample bool,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	connectCtx, cancelConnect := context.WithTimeout(ctx, 5*time.Second)
	defer cancelConnect()
	db, err := sqlx.ConnectContext(connectCtx, "pgx", dsn)
	if err != nil {
		log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		log.Errorw("schema setup failed", "error", err)
		return err
	}

	// Connect to Redis; the console cache is skipped when it is unreachable
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	defer rdb.Close()

	var consoleCache services.ConsoleCache
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, console cache disabled", "error", err)
	} else {
		consoleCache = repositories.NewConsoleCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	}

	// Kafka producer for contact messages
	var contactWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		contactWriter = w
	} else {
		log.Warnw("no Kafka brokers configured, contact publishing disabled")
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize image store
	imageStore, err := storage.NewImageStore(uploadDir)
	if err != nil {
		log.Errorw("image store setup failed", "dir", uploadDir, "error", err)
		return err
	}

	// Initialize repositories
	consoleReadRepo := repositories.NewConsoleReadRepository(db)
	consoleWriteRepo := repositories.NewConsoleWriteRepository(db)
	sellerReadRepo := repositories.NewSellerReadRepository(db)
	sellerWriteRepo := repositories.NewSellerWriteRepository(db)
	gameReadRepo := repositories.NewGameReadRepository(db)
	gameWriteRepo := repositories.NewGameWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(sellerReadRepo, sellerWriteRepo, jwt)
	listingService := services.NewListingService(gameReadRepo, gameWriteRepo, consoleReadRepo, sellerReadRepo)
	sellerService := services.NewSellerService(sellerReadRepo, sellerWriteRepo, gameReadRepo)
	consoleService := services.NewConsoleService(consoleReadRepo, consoleCache, consoleWriteRepo)
	contactService := services.NewContactService(sellerReadRepo, contactWriter)

	if seedSample {
		if err := seed.Run(ctx,
			struct {
				*repositories.ConsoleReadRepository
				*repositories.ConsoleWriteRepository
			}{consoleReadRepo, consoleWriteRepo},
			struct {
				*repositories.SellerReadRepository
				*repositories.SellerWriteRepository
			}{sellerReadRepo, sellerWriteRepo},
			struct {
				*repositories.GameReadRepository
				*repositories.GameWriteRepository
			}{gameReadRepo, gameWriteRepo},
		); err != nil {
			log.Errorw("sample data seeding failed", "error", err)
			return err
		}
	}

	maxUploadBytes := int64(maxUploadMB) << 20

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/listings", handlers.NewListListingsHandler(listingService))
	r.Get("/listings/{id}", handlers.NewGetListingHandler(listingService))
	r.Get("/sellers", handlers.NewListSellersHandler(sellerService))
	r.Get("/sellers/{id}", handlers.NewGetSellerHandler(sellerService))
	r.Post("/sellers/{id}/contact", handlers.NewContactSellerHandler(contactService))
	r.Get("/consoles", handlers.NewListConsolesHandler(consoleService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwt, authService))
		r.Post("/listings", handlers.NewCreateListingHandler(listingService))
		r.Post("/listings/{id}/images", handlers.NewUploadImagesHandler(listingService, imageStore, maxUploadBytes))
		r.Delete("/listings/{id}/images/{filename}", handlers.NewRemoveImageHandler(listingService))
		r.Put("/listings/{id}/primary-image", handlers.NewSetPrimaryImageHandler(listingService))
		r.Get("/me/listings", handlers.NewMyListingsHandler(sellerService))
		r.Put("/me/profile", handlers.NewUpdateProfileHandler(sellerService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Uploaded originals and thumbnails are served as static files
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
