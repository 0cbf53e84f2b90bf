// Package sqlstore provides the GORM-backed cafe store: the menu and order
// repositories, the Unit of Work used by commands, and the Broker that
// serializes all writes against one store instance.
//
// Usage Patterns:
//
// Write Transaction:
//
//	broker := NewBroker(db, logger)
//	uow := broker.Create()
//
//	if err := uow.Begin(ctx); err != nil { // takes the write lock
//	    return err
//	}
//	defer uow.Rollback(ctx) // no-op after a successful Commit
//
//	saved, err := uow.OrderRepository().Add(ctx, o)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // releases the write lock
//
// Read:
//
//	err := broker.View(ctx, func(view ports.ReadView) error {
//	    items, err = view.MenuRepository().List(ctx)
//	    return err
//	})
//
// Concurrency Considerations:
//   - Each UnitOfWork instance holds its own transaction state
//   - Units of work of one Broker never overlap: Begin waits for the
//     previous Commit or Rollback
//   - Views run in parallel with each other and wait for a write in progress
package sqlstore

import (
	"context"
	"log/slog"

	"cafe/internal/adapters/out/sqlstore/menurepo"
	"cafe/internal/adapters/out/sqlstore/orderrepo"
	"cafe/internal/core/ports"

	"gorm.io/gorm"
)

// trackedChange records one write made during the unit of work.
type trackedChange struct {
	Kind   string
	ID     int64
	Change string
}

// GormUnitOfWork coordinates one write transaction. It holds the Broker's
// write lock from Begin until Commit or Rollback, and logs the changes its
// repositories made once they are committed.
type GormUnitOfWork struct {
	broker         *Broker
	tx             *gorm.DB
	trackedChanges []trackedChange
}

// Begin acquires the write lock and starts a transaction.
// Calling Begin twice on the same instance is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.broker.mu.Lock()

	tx := uow.broker.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		uow.broker.mu.Unlock()
		return tx.Error
	}

	uow.tx = tx
	uow.trackedChanges = uow.trackedChanges[:0]
	return nil
}

// Commit finalizes the transaction and releases the write lock.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.broker.mu.Unlock()

	if err == nil {
		for _, c := range uow.trackedChanges {
			uow.broker.logger.InfoContext(ctx, "Store change committed", "kind", c.Kind, "id", c.ID, "change", c.Change)
		}
	}
	uow.trackedChanges = nil
	return err
}

// Rollback discards the transaction and releases the write lock.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which
// makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedChanges = nil
	uow.broker.mu.Unlock()
	return err
}

// MenuRepository returns a menu repository bound to the current transaction,
// or to the plain connection when no transaction is active.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current transaction,
// or to the plain connection when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow, uow.broker.logger)
}

// TrackChange registers a write made by one of the repositories.
func (uow *GormUnitOfWork) TrackChange(kind string, id int64, change string) {
	uow.trackedChanges = append(uow.trackedChanges, trackedChange{Kind: kind, ID: id, Change: change})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.broker.db
}

// discardTracker is used by read views, which never write.
type discardTracker struct{}

func (discardTracker) TrackChange(string, int64, string) {}

// readView binds repositories to the shared connection for one View call.
type readView struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (v readView) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(v.db, discardTracker{})
}

func (v readView) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(v.db, discardTracker{}, v.logger)
}
