package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"referral-engine/internal/domain/party"
	"referral-engine/internal/handler/api"
	"referral-engine/internal/handler/middleware"
	"referral-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Health       *api.HealthHandler
	Partnerships *api.PartnershipHandler
	Assignments  *api.AssignmentHandler
	Tracking     *api.TrackingHandler
	Stats        *api.StatsHandler
	Purchases    *api.PurchaseHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	merchant := authMiddleware.RequireRole(party.RoleMerchant)
	influencer := authMiddleware.RequireRole(party.RoleInfluencer)
	either := authMiddleware.RequireRole(party.RoleMerchant, party.RoleInfluencer)

	apiGroup := engine.Group("/api")
	{
		track := apiGroup.Group("/track")
		{
			addRoutes(track, []route{
				{Method: http.MethodPost, Path: "/visit", Handler: h.Tracking.Visit},
				{Method: http.MethodPost, Path: "/conversion", Handler: h.Tracking.Conversion},
			})
		}

		partnerships := apiGroup.Group("/partnerships")
		partnerships.Use(authMiddleware.RequireAuth())
		{
			addRoutes(partnerships, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Partnerships.Request, Mw: []gin.HandlerFunc{merchant}},
				{Method: http.MethodGet, Path: "", Handler: h.Partnerships.List, Mw: []gin.HandlerFunc{either}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Partnerships.Get, Mw: []gin.HandlerFunc{either}},
				{Method: http.MethodPost, Path: "/:id/respond", Handler: h.Partnerships.Respond, Mw: []gin.HandlerFunc{influencer}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Partnerships.Cancel, Mw: []gin.HandlerFunc{merchant}},
			})
		}

		assignments := apiGroup.Group("/assignments")
		assignments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(assignments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Assignments.Assign, Mw: []gin.HandlerFunc{merchant}},
				{Method: http.MethodGet, Path: "", Handler: h.Assignments.List, Mw: []gin.HandlerFunc{either}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Assignments.Get, Mw: []gin.HandlerFunc{either}},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Assignments.Deactivate, Mw: []gin.HandlerFunc{merchant}},
				{Method: http.MethodPost, Path: "/:id/reactivate", Handler: h.Assignments.Reactivate, Mw: []gin.HandlerFunc{merchant}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Assignments.Delete, Mw: []gin.HandlerFunc{merchant}},
				{Method: http.MethodGet, Path: "/:id/stats", Handler: h.Stats.AssignmentStats, Mw: []gin.HandlerFunc{either}},
			})
		}

		codes := apiGroup.Group("/referral-codes")
		codes.Use(authMiddleware.RequireAuth(), merchant)
		{
			addRoutes(codes, []route{
				{Method: http.MethodGet, Path: "/:code/availability", Handler: h.Assignments.CodeAvailability},
			})
		}

		me := apiGroup.Group("")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/influencers/me/overview", Handler: h.Stats.InfluencerOverview, Mw: []gin.HandlerFunc{influencer}},
				{Method: http.MethodGet, Path: "/merchants/me/influencer-stats", Handler: h.Stats.MerchantInfluencerStats, Mw: []gin.HandlerFunc{merchant}},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(party.RoleService))
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Purchases.Register},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Purchases.UpdateStatus},
			})
		}
	}
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
