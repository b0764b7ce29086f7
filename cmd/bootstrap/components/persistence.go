package components

import (
	"referral-engine/internal/infra/outbox"
	"referral-engine/internal/infra/readstore"
	"referral-engine/internal/infra/repository"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/infra/uow"
	"referral-engine/internal/usecase/queries"
	"referral-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Partnership
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PartnershipReadQueries)),
		),
		fx.Annotate(
			readstore.NewPartnershipReadStore,
			fx.As(new(queries.PartnershipReadStore)),
		),
		// Assignment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AssignmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewAssignmentReadStore,
			fx.As(new(queries.AssignmentReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Outbox, drained by the dispatcher outside command transactions
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OutboxWriteQueries)),
		),
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(outbox.Store)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
