package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/handler/api"
	"physio-scheduler/internal/handler/middleware"
	"physio-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Schedule     *api.ScheduleHandler
	Payment      *api.PaymentWebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/webhooks/payments", h.Payment.Handle)

	apiGroup := engine.Group("/api")
	{
		providers := apiGroup.Group("/providers")
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "/:providerId/slots", Handler: h.Availability.Slots},
				{Method: http.MethodGet, Path: "/:providerId/available-dates", Handler: h.Availability.AvailableDates},
			})

			me := providers.Group("/me")
			me.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleProvider, actor.RoleAdmin))
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/template", Handler: h.Schedule.GetTemplate},
				{Method: http.MethodPut, Path: "/template", Handler: h.Schedule.PutTemplate},
				{Method: http.MethodGet, Path: "/overrides", Handler: h.Schedule.ListOverrides},
				{Method: http.MethodPut, Path: "/overrides/:date", Handler: h.Schedule.PutOverride},
				{Method: http.MethodDelete, Path: "/overrides/:date", Handler: h.Schedule.DeleteOverride},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			staff := authMiddleware.RequireRole(actor.RoleProvider, actor.RoleAdmin)
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{limiter.Middleware(), authMiddleware.RequireRole(actor.RoleClient)}},
				{Method: http.MethodGet, Path: "/:reference", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:reference/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/:reference/decline", Handler: h.Booking.Decline, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/:reference/complete", Handler: h.Booking.Complete, Mw: []gin.HandlerFunc{staff}},
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
