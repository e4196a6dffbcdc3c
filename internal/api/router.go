package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/lamsaclean/backoffice-api/internal/api/handler"
	"github.com/lamsaclean/backoffice-api/internal/api/middleware"
	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// Deps carries the wired services the router mounts. AuthRepo is needed
// separately because the permission middleware re-fetches users per call.
type Deps struct {
	Log           zerolog.Logger
	JWTSecret     string
	SecureCookies bool
	DataDir       string
	RelaxedWrites bool
	Redis         *redis.Client // nil when the rate limiter is not wired

	AuthService   ports.AuthService
	AuthRepo      ports.AuthRepository
	Customers     ports.CustomerService
	Messages      ports.MessageService
	Notifications ports.NotificationService
	Settings      ports.SettingsService
	Content       ports.ContentService
	Reports       ports.ReportService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.SecureCookies)
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)
	contentHandler := handler.NewContentHandler(deps.Content)
	reportHandler := handler.NewReportHandler(deps.Reports)

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/verify", authHandler.Verify)
	e.POST("/v1/auth/logout", authHandler.Logout)

	// --- Public site routes (no auth) ---
	public := e.Group("/v1/public")
	public.GET("/content", contentHandler.GetContent)
	public.GET("/palettes", contentHandler.ListPalettes)
	public.POST("/contact", messageHandler.Contact)

	// --- Admin routes ---
	admin := e.Group("/v1/admin",
		middleware.Auth(deps.JWTSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleEditor),
	)
	permit := func(module, action string) echo.MiddlewareFunc {
		return middleware.Permit(deps.AuthRepo, module, action)
	}

	admin.GET("/customers", customerHandler.List, permit("customers", "view"))
	admin.POST("/customers", customerHandler.Create, permit("customers", "create"))
	admin.PUT("/customers/:id", customerHandler.Update, permit("customers", "update"))
	admin.DELETE("/customers/:id", customerHandler.Delete, permit("customers", "delete"))

	admin.GET("/messages", messageHandler.List, permit("messages", "view"))
	admin.PUT("/messages/:id", messageHandler.Update, permit("messages", "update"))
	admin.DELETE("/messages/:id", messageHandler.Delete, permit("messages", "delete"))
	admin.POST("/messages/read-all", messageHandler.MarkAllRead, permit("messages", "update"))
	admin.POST("/messages/:id/read", messageHandler.MarkRead, permit("messages", "update"))
	admin.POST("/messages/:id/reply", messageHandler.Reply, permit("messages", "update"))
	admin.POST("/messages/:id/resolve", messageHandler.Resolve, permit("messages", "update"))
	admin.POST("/messages/:id/archive", messageHandler.Archive, permit("messages", "update"))

	admin.GET("/notifications", notificationHandler.List, permit("notifications", "view"))
	admin.POST("/notifications", notificationHandler.Create, permit("notifications", "create"))
	admin.POST("/notifications/read-all", notificationHandler.MarkAllRead, permit("notifications", "update"))
	admin.POST("/notifications/:id/read", notificationHandler.MarkRead, permit("notifications", "update"))
	admin.DELETE("/notifications/:id", notificationHandler.Delete, permit("notifications", "delete"))

	admin.GET("/settings", settingsHandler.Get, permit("settings", "view"))
	admin.PUT("/settings", settingsHandler.Update, permit("settings", "update"))

	admin.GET("/content", contentHandler.GetContent, permit("content", "view"))
	admin.PUT("/content", contentHandler.UpdateContent, permit("content", "update"))
	admin.GET("/palettes", contentHandler.ListPalettes, permit("content", "view"))
	admin.POST("/palettes", contentHandler.CreatePalette, permit("content", "create"))
	admin.PUT("/palettes/:id", contentHandler.UpdatePalette, permit("content", "update"))
	admin.POST("/palettes/:id/activate", contentHandler.ActivatePalette, permit("content", "update"))
	admin.DELETE("/palettes/:id", contentHandler.DeletePalette, permit("content", "delete"))

	admin.GET("/reports/summary", reportHandler.Summary, permit("reports", "view"))

	// --- Ops endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DataDir, deps.Redis, deps.RelaxedWrites)

	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
