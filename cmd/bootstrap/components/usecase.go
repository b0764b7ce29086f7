package components

import (
	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/pkg/reftoken"
	"referral-engine/internal/usecase"
	"referral-engine/internal/usecase/commands"
	"referral-engine/internal/usecase/queries"
	"referral-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		assignment.NewGenerator,
		fx.As(new(commands.CodeGenerator)),
	),
	fx.Annotate(
		func(c *reftoken.Codec) *reftoken.Codec { return c },
		fx.As(new(shared.TokenCodec)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPartnershipUseCase,
		commands.NewAssignmentUseCase,
		commands.NewPurchaseUseCase,
		NewAttributionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPartnershipQueries,
		queries.NewAssignmentQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAttributionUseCase(uow shared.UnitOfWork, codec shared.TokenCodec, cache shared.CounterCache, clk clock.Clock, cfg config.Config) commands.AttributionCommands {
	return commands.NewAttributionUseCase(uow, codec, cache, clk, cfg.Attribution.Window)
}
