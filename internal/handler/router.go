package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"charterlink/internal/handler/api"
	"charterlink/internal/handler/middleware"
	"charterlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, notifyHandler *api.NotifyHandler, channelHandler *api.ChannelHandler, webhookHandler *api.WebhookHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, notifyHandler, channelHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, notifyHandler *api.NotifyHandler, channelHandler *api.ChannelHandler, webhookHandler *api.WebhookHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Provider callbacks authenticate with an HMAC signature, not a
		// bearer token.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhooks/payments", Handler: webhookHandler.IngestPayment},
		})

		dispatch := apiGroup.Group("")
		dispatch.Use(authMiddleware.RequireAuth(), authMiddleware.RequirePrivileged())
		{
			addRoutes(dispatch, []route{
				{Method: http.MethodPost, Path: "/notify", Handler: notifyHandler.Dispatch},
				{Method: http.MethodPost, Path: "/send-push", Handler: channelHandler.SendPush},
				{Method: http.MethodPost, Path: "/send-email", Handler: channelHandler.SendEmail},
				{Method: http.MethodPost, Path: "/send-sms", Handler: channelHandler.SendSMS},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notifyHandler.List},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: notifyHandler.MarkRead},
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
