package cmd

import (
	"log/slog"
	"time"

	httpin "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/relay"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/jobs"

	"gorm.io/gorm"
)

const defaultStaleAfter = 15 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *services.NotificationDispatcher
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var relayPusher services.RelayPusher
	if config.RelayURL != "" {
		relayPusher = relay.NewClient(config.RelayURL, logger)
	}

	staleAfter := defaultStaleAfter
	if config.StaleAfter != "" {
		parsed, err := time.ParseDuration(config.StaleAfter)
		if err != nil {
			logger.Warn("Invalid STALE_AFTER value, using default",
				"value", config.StaleAfter, "default", defaultStaleAfter.String())
		} else {
			staleAfter = parsed
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: services.NewNotificationDispatcher(relayPusher, logger),
		staleAfter: staleAfter,
		logger:     logger,
	}
}

// NotificationDispatcher exposes the shared dispatcher so callers can
// register in-process subscribers.
func (c *CompositionRoot) NotificationDispatcher() *services.NotificationDispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdatePreparationCommandHandler() commands.UpdatePreparationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePreparationCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateListChangedOrdersQueryHandler() queries.ListChangedOrdersQueryHandler {
	return queries.NewListChangedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateUpdatePreparationCommandHandler(),
		c.CreateListChangedOrdersQueryHandler(),
		c.CreateGetOrderStatusQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.dispatcher, c.staleAfter, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
