package cmd

import (
	"context"
	"log/slog"
	"time"

	"logistics/api"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewCompositionRoot wires the application. publisher may be nil, in which
// case transit events are not published.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for ids, history and timestamps.
func (c CompositionRoot) WithClock(now func() time.Time) CompositionRoot {
	c.now = now
	return c
}

func (c *CompositionRoot) CreateCreateTransitBatchCommandHandler() commands.CreateTransitBatchCommandHandler {
	var f commands.CreateUoWFactory = FuncCreateUoWFactory(func() commands.CreateUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateTransitBatchCommandHandler(
		f, services.NewTransitIDGenerator(c.now), c.publisher, c.logger, c.now)
}

func (c *CompositionRoot) CreateAdvanceTransitStatusCommandHandler() commands.AdvanceTransitStatusCommandHandler {
	var f commands.AdvanceUoWFactory = FuncAdvanceUoWFactory(func() commands.AdvanceUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewAdvanceTransitStatusCommandHandler(f, c.publisher, c.logger, c.now)
}

func (c *CompositionRoot) CreateListTransitBatchesQueryHandler() queries.ListTransitBatchesQueryHandler {
	return queries.NewListTransitBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEligibleOrdersQueryHandler() queries.ListEligibleOrdersQueryHandler {
	uow := c.uowFactory.CreateGorm()
	return queries.NewListEligibleOrdersQueryHandler(
		uow.OrderRepository(), uow.TransitRepository(), services.NewEligibilityComputer())
}

func (c *CompositionRoot) CreateGetTransitItemsQueryHandler() queries.GetTransitItemsQueryHandler {
	return queries.NewGetTransitItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindItemCountMismatchesQueryHandler() queries.FindItemCountMismatchesQueryHandler {
	return queries.NewFindItemCountMismatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateTransitBatchCommandHandler(),
		c.CreateAdvanceTransitStatusCommandHandler(),
		c.CreateListTransitBatchesQueryHandler(),
		c.CreateListEligibleOrdersQueryHandler(),
		c.CreateGetTransitItemsQueryHandler(),
		c.CreateGetStatusHistoryQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(c.CreateServer(), httpin.RouterConfig{
		Doc:       doc,
		JWTSecret: []byte(c.configs.JWTSecret),
		Logger:    c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFindItemCountMismatchesQueryHandler(), c.logger)
}

type FuncCreateUoWFactory func() commands.CreateUoW

func (f FuncCreateUoWFactory) Create() commands.CreateUoW {
	return f()
}

type FuncAdvanceUoWFactory func() commands.AdvanceUoW

func (f FuncAdvanceUoWFactory) Create() commands.AdvanceUoW {
	return f()
}
