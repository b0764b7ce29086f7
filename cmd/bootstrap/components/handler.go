package components

import (
	"referral-engine/internal/handler"
	"referral-engine/internal/handler/api"
	"referral-engine/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
			fx.As(new(api.Pinger)),
		),
		api.NewHealthHandler,
		api.NewPartnershipHandler,
		api.NewAssignmentHandler,
		api.NewTrackingHandler,
		api.NewStatsHandler,
		api.NewPurchaseHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
