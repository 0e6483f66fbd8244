package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barberbook/internal/handler/api"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, availabilityHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListServices},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetService},
			})

			adminOnly := services.Group("")
			adminOnly.Use(authMiddleware.RequireAuth())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateService},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeactivateService},
			})
		}

		stylists := apiGroup.Group("/stylists")
		{
			addRoutes(stylists, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListStylists},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: availabilityHandler.ListSlots},
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: availabilityHandler.GetDaySchedule},
			})

			staff := stylists.Group("")
			staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/:id/templates", Handler: availabilityHandler.ListTemplates},
				{Method: http.MethodPost, Path: "/:id/templates", Handler: availabilityHandler.CreateTemplate},
				{Method: http.MethodGet, Path: "/:id/exceptions/:date", Handler: availabilityHandler.GetException},
				{Method: http.MethodPut, Path: "/:id/exceptions/:date", Handler: availabilityHandler.SetException},
				{Method: http.MethodDelete, Path: "/:id/exceptions/:date", Handler: availabilityHandler.ClearException},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.ListStylistBookings},
			})
		}

		templates := apiGroup.Group("/templates")
		templates.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(templates, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: availabilityHandler.UpdateTemplate},
				{Method: http.MethodDelete, Path: "/:id", Handler: availabilityHandler.DeactivateTemplate},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
