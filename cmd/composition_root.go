package cmd

import (
	"context"
	"fmt"
	"log/slog"

	cafehttp "cafe/internal/adapters/in/http"
	"cafe/internal/adapters/in/tcp"
	"cafe/internal/adapters/out/sqlstore"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/ports"
	"cafe/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	gormDB   *gorm.DB
	broker   *sqlstore.Broker
	clock    ports.Clock
	logger   *slog.Logger
	useCases *tcp.UseCases
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	broker := sqlstore.NewBroker(gormDB, logger)
	clock := ports.SystemClock

	return CompositionRoot{
		config:   config,
		gormDB:   gormDB,
		broker:   broker,
		clock:    clock,
		logger:   logger,
		useCases: tcp.NewUseCases(broker, broker, clock),
	}
}

// OpenStore connects to the configured database, creates the tables and
// seeds the menu on first run.
func OpenStore(ctx context.Context, config Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := sqlstore.Open(config.DBDriver, config.DSN())
	if err != nil {
		return nil, err
	}

	if err = sqlstore.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	items := menu.DefaultItems()
	if config.MenuSeedFile != "" {
		if items, err = sqlstore.LoadMenuSeed(config.MenuSeedFile); err != nil {
			return nil, err
		}
	}

	seeded, err := sqlstore.Seed(ctx, db, items)
	if err != nil {
		return nil, fmt.Errorf("seed menu: %w", err)
	}
	if seeded {
		logger.InfoContext(ctx, "Seeded menu", "items", len(items))
	}

	return db, nil
}

func (c *CompositionRoot) CreateCustomerListener() *tcp.Listener {
	return tcp.NewListener(tcp.RoleCustomer, c.config.CustomerAddr, c.useCases, c.logger)
}

func (c *CompositionRoot) CreateStaffListener() *tcp.Listener {
	return tcp.NewListener(tcp.RoleStaff, c.config.StaffAddr, c.useCases, c.logger)
}

func (c *CompositionRoot) CreateGetBacklogQueryHandler() queries.GetBacklogQueryHandler {
	return queries.NewGetBacklogQueryHandler(c.broker, c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *cafehttp.Server {
	return cafehttp.NewServer(
		c.useCases.AddMenuItem,
		c.useCases.RemoveMenuItem,
		c.useCases.PlaceOrder,
		c.useCases.MarkOrderReady,
		c.useCases.ListMenuItems,
		c.useCases.GetMenuItem,
		c.useCases.ListOrders,
		c.useCases.GetOrder,
		c.CreateGetBacklogQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetBacklogQueryHandler(), c.config.BacklogReportSchedule, c.logger)
}
