package main

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	appmodules "scout/app"
	"scout/app/jobs"
	coremodules "scout/core/app"
	coresearch "scout/core/app/search"
	"scout/core/config"
	"scout/core/database"
	"scout/core/emitter"
	"scout/core/logger"
	"scout/core/module"
	"scout/core/router"
	"scout/core/router/middleware"
	"scout/core/scheduler"

	_ "scout/docs"

	"github.com/joho/godotenv"
)

// @title Scout API
// @description Dialect-aware global search over registered application models
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @version 1.0.0
// @BasePath /api
// @schemes http https
// @accept json
// @produce json
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
// @description API Key for authentication
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your token with the prefix "Bearer "

// App represents the Scout application with simplified initialization
type App struct {
	config    *config.Config
	db        *database.Database
	router    *router.Router
	logger    logger.Logger
	emitter   *emitter.Emitter
	scheduler *scheduler.CronScheduler

	// State
	running bool
	verbose bool
}

// New creates a new application instance
func New() *App {
	// Check for verbose flag
	verbose := false
	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			break
		}
	}
	return &App{verbose: verbose}
}

// Start initializes and starts the application
func (app *App) Start() error {
	return app.
		loadEnvironment().
		initConfig().
		initLogger().
		initDatabase().
		initInfrastructure().
		initRouter().
		autoDiscoverModules().
		initScheduler().
		setupRoutes().
		displayServerInfo().
		run()
}

// loadEnvironment loads environment variables
func (app *App) loadEnvironment() *App {
	if err := godotenv.Load(); err != nil {
		// Non-fatal - continue without .env file
	}
	return app
}

// initConfig initializes configuration
func (app *App) initConfig() *App {
	app.config = config.NewConfig()
	return app
}

// initLogger initializes the logger
func (app *App) initLogger() *App {
	logConfig := logger.Config{
		Environment: app.config.Env,
		LogPath:     "logs",
		Level:       "debug",
	}

	log, err := logger.NewLogger(logConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	app.logger = log
	return app
}

// initDatabase initializes the database connection
func (app *App) initDatabase() *App {
	db, err := database.InitDB(app.config)
	if err != nil {
		app.logger.Error("Failed to initialize database", logger.String("error", err.Error()))
		panic(fmt.Sprintf("Database initialization failed: %v", err))
	}

	app.db = db

	if app.verbose {
		app.logger.Info("Database connected",
			logger.String("driver", app.config.DBDriver),
			logger.String("adapter", db.Adapter()))
	}

	return app
}

// initInfrastructure initializes core infrastructure components
func (app *App) initInfrastructure() *App {
	app.emitter = emitter.New()
	return app
}

// initRouter initializes the router with middleware
func (app *App) initRouter() *App {
	app.router = router.New()
	app.setupMiddleware()
	app.setupStaticRoutes()

	if app.verbose {
		app.logger.Info("Router and middleware initialized")
	}

	return app
}

// setupMiddleware configures all middleware using the configurable system
func (app *App) setupMiddleware() {
	// Apply configurable middleware system (recovery, CORS)
	middleware.ApplyConfigurableMiddleware(app.router, &app.config.Middleware)

	// Custom request logging middleware (conditional based on config)
	app.router.Use(func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			path := c.Request.URL.Path

			// Check if logging is required for this path
			if app.config.Middleware.IsLoggingRequired(path) {
				start := time.Now()
				err := next(c)

				app.logger.Info("Request",
					logger.String("method", c.Request.Method),
					logger.String("path", path),
					logger.Int("status", c.Writer.Status()),
					logger.Duration("duration", time.Since(start)),
					logger.String("ip", c.ClientIP()),
				)
				return err
			}

			// Skip logging for this path
			return next(c)
		}
	})
}

// setupStaticRoutes configures static file serving
func (app *App) setupStaticRoutes() {
	app.router.Static("/static", "./static")
	app.router.Static("/swagger", "./swagger")
}

// apiGroup returns the authenticated /api route group
func (app *App) apiGroup() *router.RouterGroup {
	api := app.router.Group("/api")
	api.Use(middleware.AuthMiddleware(app.config))
	return api
}

// autoDiscoverModules registers core and app modules
func (app *App) autoDiscoverModules() *App {
	app.registerCoreModules()
	app.registerAppModules()

	return app
}

// registerCoreModules registers core framework modules
func (app *App) registerCoreModules() {
	deps := module.Dependencies{
		DB:      app.db.DB,
		Router:  app.apiGroup(),
		Logger:  app.logger,
		Emitter: app.emitter,
		Config:  app.config,
	}

	// Get search registry from app
	searchRegistry := appmodules.GetSearchRegistry()

	// Initialize core modules via orchestrator to ensure proper init/migrate/routes
	initializer := module.NewInitializer(app.logger)
	coreProvider := coremodules.NewCoreModules(searchRegistry)
	orchestrator := module.NewCoreOrchestrator(initializer, coreProvider)

	initialized, err := orchestrator.InitializeCoreModules(deps)
	if err != nil {
		app.logger.Error("Failed to initialize core modules", logger.String("error", err.Error()))
	}

	if app.verbose {
		app.logger.Info("Core modules registered", logger.Int("count", len(initialized)))
	}
}

// registerAppModules registers application modules using the app provider
func (app *App) registerAppModules() {
	deps := module.Dependencies{
		DB:      app.db.DB,
		Router:  app.apiGroup(),
		Logger:  app.logger,
		Emitter: app.emitter,
		Config:  app.config,
	}

	initializer := module.NewInitializer(app.logger)
	appProvider := appmodules.NewAppModules()
	orchestrator := module.NewAppOrchestrator(initializer, appProvider)

	initialized, err := orchestrator.InitializeAppModules(deps)
	if err != nil {
		app.logger.Error("Failed to initialize app modules", logger.String("error", err.Error()))
	}

	if app.verbose {
		app.logger.Info("App modules initialized", logger.Int("count", len(initialized)))
	}
}

// initScheduler wires and starts the cron scheduler
func (app *App) initScheduler() *App {
	searchModule, ok := module.GetModule("search")
	if !ok {
		app.logger.Warn("Search module not registered, skipping scheduler setup")
		return app
	}

	mod, ok := searchModule.(*coresearch.Module)
	if !ok {
		return app
	}

	app.scheduler = jobs.SetupScheduler(mod.Service, app.logger)
	app.scheduler.Start()

	if app.verbose {
		app.logger.Info("Scheduler started")
	}

	return app
}

// setupRoutes sets up basic system routes
func (app *App) setupRoutes() *App {
	// Health check
	app.router.GET("/health", func(c *router.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"version": app.config.Version,
		})
	})

	// Swagger documentation - redirect /swagger root to /swagger/index.html
	app.router.GET("/swagger", func(c *router.Context) error {
		return c.Redirect(302, "/swagger/index.html")
	})

	app.router.GET("/", func(c *router.Context) error {
		return c.JSON(200, map[string]any{
			"message": "pong",
			"version": app.config.Version,
		})
	})

	return app
}

// displayServerInfo shows server startup information
func (app *App) displayServerInfo() *App {
	localIP := app.getLocalIP()
	port := app.config.ServerPort

	fmt.Printf("\n\033[1;32mScout Ready!\033[0m\n\n")
	fmt.Printf("\033[36mServer URLs:\033[0m\n")
	fmt.Printf("  Local:   http://localhost%s\n", port)
	fmt.Printf("  Network: http://%s%s\n\n", localIP, port)
	fmt.Printf("\033[36mAPI Documentation:\033[0m\n")
	fmt.Printf("  Swagger: http://localhost%s/swagger/\n\n", port)

	return app
}

// getLocalIP gets the local network IP address
func (app *App) getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "localhost"
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return "localhost"
}

// run starts the HTTP server
func (app *App) run() error {
	app.running = true
	port := app.config.ServerPort

	if app.verbose {
		app.logger.Info("Server starting", logger.String("port", port))
	}

	err := app.router.Run(port)
	if err != nil {
		// Check if it's an "address already in use" error
		if strings.Contains(err.Error(), "bind: address already in use") {
			app.logger.Error("Server failed to start - Port already in use",
				logger.String("port", port),
				logger.String("error", err.Error()))
			return fmt.Errorf("port %s is already in use. Please:\n  • Stop any other servers running on this port\n  • Change the SERVER_PORT in your .env file\n  • Use a different port with: export SERVER_PORT=:8101", port)
		}
		// For other network errors, provide a generic helpful message
		app.logger.Error("Server failed to start",
			logger.String("error", err.Error()))
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Stop stops the scheduler and marks the app as no longer running
func (app *App) Stop() error {
	if !app.running {
		return nil
	}

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	app.logger.Info("Shutting down gracefully...")
	app.running = false
	return nil
}

func main() {
	app := New()

	if err := app.Start(); err != nil {
		// Print user-friendly error message instead of panicking
		fmt.Printf("\n\033[31mApplication failed to start:\033[0m\n%v\n\n", err)
		os.Exit(1)
	}
}
