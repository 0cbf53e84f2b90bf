package sqlstore_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"cafe/internal/adapters/out/sqlstore"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/ports"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var placedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// storeSuite holds the store behaviour shared by the SQLite and PostgreSQL suites.
type storeSuite struct {
	suite.Suite
	db     *gorm.DB
	broker *sqlstore.Broker
}

func (s *storeSuite) line(itemID int64, qty int) order.Line {
	line, err := order.NewLine(itemID, qty)
	s.Require().NoError(err)
	return line
}

// write runs fn inside a committed unit of work.
func (s *storeSuite) write(fn func(uow ports.UnitOfWork) error) error {
	ctx := context.Background()
	uow := s.broker.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (s *storeSuite) placeOrder(lines ...order.Line) *order.Order {
	o, err := order.NewOrder(lines, placedAt)
	s.Require().NoError(err)

	var saved *order.Order
	s.Require().NoError(s.write(func(uow ports.UnitOfWork) error {
		var addErr error
		saved, addErr = uow.OrderRepository().Add(context.Background(), o)
		return addErr
	}))
	return saved
}

func (s *storeSuite) getOrder(id int64) (*order.Order, error) {
	var got *order.Order
	err := s.broker.View(context.Background(), func(view ports.ReadView) error {
		var getErr error
		got, getErr = view.OrderRepository().Get(context.Background(), id)
		return getErr
	})
	return got, err
}

func (s *storeSuite) listMenu() []menu.Item {
	var items []menu.Item
	s.Require().NoError(s.broker.View(context.Background(), func(view ports.ReadView) error {
		var err error
		items, err = view.MenuRepository().List(context.Background())
		return err
	}))
	return items
}

func (s *storeSuite) TestSeed_DefaultMenuOnlyOnce() {
	items := s.listMenu()
	s.Require().Len(items, 13)
	s.Equal("Black (Hot)", items[0].Name())

	seeded, err := sqlstore.Seed(context.Background(), s.db, menu.DefaultItems())
	s.Require().NoError(err)
	s.False(seeded)
	s.Len(s.listMenu(), 13)
}

func (s *storeSuite) TestMenu_AddListGetRemove() {
	ctx := context.Background()
	item, err := menu.NewItem(14, "Iced Matcha")
	s.Require().NoError(err)

	s.Require().NoError(s.write(func(uow ports.UnitOfWork) error {
		return uow.MenuRepository().Add(ctx, item)
	}))

	items := s.listMenu()
	s.Require().Len(items, 14)
	s.Equal(int64(14), items[13].ID())
	for i := 1; i < len(items); i++ {
		s.Less(items[i-1].ID(), items[i].ID())
	}

	var removed menu.Item
	s.Require().NoError(s.write(func(uow ports.UnitOfWork) error {
		var removeErr error
		removed, removeErr = uow.MenuRepository().Remove(ctx, 14)
		return removeErr
	}))
	s.Equal("Iced Matcha", removed.Name())

	err = s.broker.View(ctx, func(view ports.ReadView) error {
		_, getErr := view.MenuRepository().Get(ctx, 14)
		return getErr
	})
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *storeSuite) TestMenu_Conflicts() {
	ctx := context.Background()
	add := func(id int64, name string) error {
		item, err := menu.NewItem(id, name)
		s.Require().NoError(err)
		return s.write(func(uow ports.UnitOfWork) error {
			return uow.MenuRepository().Add(ctx, item)
		})
	}

	s.Require().NoError(add(14, "Iced Matcha"))

	err := add(14, "X")
	s.Require().ErrorIs(err, menu.ErrDuplicateID)
	s.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	err = add(15, "Iced Matcha")
	s.Require().ErrorIs(err, menu.ErrDuplicateName)

	s.Require().NoError(add(16, "iced matcha"), "names are case-sensitive")
	s.Len(s.listMenu(), 15)
}

func (s *storeSuite) TestMenu_RemoveMissing() {
	err := s.write(func(uow ports.UnitOfWork) error {
		_, removeErr := uow.MenuRepository().Remove(context.Background(), 999)
		return removeErr
	})
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *storeSuite) TestOrder_AddAndGetRoundTrip() {
	saved := s.placeOrder(s.line(1, 1), s.line(5, 2))
	s.Positive(saved.ID())

	got, err := s.getOrder(saved.ID())
	s.Require().NoError(err)
	s.Equal(saved.ID(), got.ID())
	s.Require().Len(got.Lines(), 2)
	s.Equal(int64(1), got.Lines()[0].ItemID())
	s.Equal(int64(5), got.Lines()[1].ItemID())
	s.Equal(2, got.Lines()[1].Quantity())
	s.WithinDuration(placedAt, got.PlacedAt(), time.Millisecond)
	s.Nil(got.ReadyAt())
}

func (s *storeSuite) TestOrder_GetMissing() {
	_, err := s.getOrder(12345)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *storeSuite) TestOrder_IDsIncreaseAndListIsMostRecentFirst() {
	first := s.placeOrder(s.line(1, 1))
	second := s.placeOrder(s.line(2, 1))
	third := s.placeOrder(s.line(3, 1))

	s.Less(first.ID(), second.ID())
	s.Less(second.ID(), third.ID())

	var orders []*order.Order
	s.Require().NoError(s.broker.View(context.Background(), func(view ports.ReadView) error {
		var err error
		orders, err = view.OrderRepository().List(context.Background())
		return err
	}))
	s.Require().Len(orders, 3)
	s.Equal(third.ID(), orders[0].ID())
	s.Equal(first.ID(), orders[2].ID())
}

func (s *storeSuite) TestOrder_ConcurrentPlacementAssignsDistinctIDs() {
	const workers = 16
	const perWorker = 5

	var (
		mu  sync.Mutex
		ids []int64
		wg  sync.WaitGroup
	)
	errCh := make(chan error, workers*perWorker)

	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				line, err := order.NewLine(int64(w%13+1), 1)
				if err != nil {
					errCh <- err
					return
				}
				o, err := order.NewOrder([]order.Line{line}, placedAt)
				if err != nil {
					errCh <- err
					return
				}
				err = s.write(func(uow ports.UnitOfWork) error {
					saved, addErr := uow.OrderRepository().Add(context.Background(), o)
					if addErr != nil {
						return addErr
					}
					mu.Lock()
					ids = append(ids, saved.ID())
					mu.Unlock()
					return nil
				})
				if err != nil {
					errCh <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		s.Require().NoError(err)
	}

	s.Require().Len(ids, workers*perWorker)
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		s.False(seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	// commit order is the append order, which must match id order
	s.True(sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }))
}

func (s *storeSuite) TestOrder_ListingsSkipUnreadableRows() {
	ctx := context.Background()
	first := s.placeOrder(s.line(1, 1))
	for _, items := range []string{`{not json`, `{"version":2,"lines":[{"item_id":1,"quantity":1}]}`} {
		s.Require().NoError(s.db.Exec("INSERT INTO orders (items, placed_at) VALUES (?, ?)", items, placedAt).Error)
	}
	last := s.placeOrder(s.line(2, 1))

	var badIDs []int64
	s.Require().NoError(s.db.Table("orders").Where("id NOT IN ?", []int64{first.ID(), last.ID()}).Order("id").Pluck("id", &badIDs).Error)
	s.Require().Len(badIDs, 2)

	var logs bytes.Buffer
	broker := sqlstore.NewBroker(s.db, slog.New(slog.NewTextHandler(&logs, nil)))

	var all, pending []*order.Order
	s.Require().NoError(broker.View(ctx, func(view ports.ReadView) error {
		var err error
		if all, err = view.OrderRepository().List(ctx); err != nil {
			return err
		}
		pending, err = view.OrderRepository().ListPending(ctx)
		return err
	}))

	ids := func(orders []*order.Order) []int64 {
		out := make([]int64, len(orders))
		for i, o := range orders {
			out[i] = o.ID()
		}
		return out
	}
	s.Equal([]int64{last.ID(), first.ID()}, ids(all))
	s.Equal([]int64{first.ID(), last.ID()}, ids(pending))

	s.Contains(logs.String(), "Skipping unreadable order")
	for _, id := range badIDs {
		s.Contains(logs.String(), fmt.Sprintf("order_id=%d", id))

		_, err := s.getOrder(id)
		s.Error(err)
		s.NotErrorIs(err, errs.ErrObjectNotFound)
	}
}

func (s *storeSuite) TestOrder_MarkReadyPersistsAndNeverMovesBack() {
	ctx := context.Background()
	saved := s.placeOrder(s.line(1, 1))
	later := placedAt.Add(5 * time.Minute)

	markReady := func(now time.Time) {
		s.Require().NoError(s.write(func(uow ports.UnitOfWork) error {
			repo := uow.OrderRepository()
			o, err := repo.Get(ctx, saved.ID())
			if err != nil {
				return err
			}
			o.MarkReady(now)
			return repo.Update(ctx, o)
		}))
	}

	markReady(later)
	markReady(placedAt.Add(time.Minute))

	got, err := s.getOrder(saved.ID())
	s.Require().NoError(err)
	s.Require().NotNil(got.ReadyAt())
	s.WithinDuration(later, *got.ReadyAt(), time.Millisecond)

	var pending []*order.Order
	s.Require().NoError(s.broker.View(ctx, func(view ports.ReadView) error {
		var listErr error
		pending, listErr = view.OrderRepository().ListPending(ctx)
		return listErr
	}))
	s.Empty(pending)
}

func (s *storeSuite) TestOrder_UpdateMissing() {
	o, err := order.RestoreOrder(4242, []order.Line{s.line(1, 1)}, placedAt, nil)
	s.Require().NoError(err)
	o.MarkReady(placedAt)

	err = s.write(func(uow ports.UnitOfWork) error {
		return uow.OrderRepository().Update(context.Background(), o)
	})
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *storeSuite) TestRemovingMenuItemKeepsOrders() {
	saved := s.placeOrder(s.line(5, 2))

	s.Require().NoError(s.write(func(uow ports.UnitOfWork) error {
		_, err := uow.MenuRepository().Remove(context.Background(), 5)
		return err
	}))

	got, err := s.getOrder(saved.ID())
	s.Require().NoError(err)
	s.Require().Len(got.Lines(), 1)
	s.Equal(int64(5), got.Lines()[0].ItemID())
	s.Equal(2, got.Lines()[0].Quantity())
}

func (s *storeSuite) TestUnitOfWork_RollbackDiscardsAndReleasesLock() {
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := s.write(func(uow ports.UnitOfWork) error {
		item, itemErr := menu.NewItem(20, "Chai")
		s.Require().NoError(itemErr)
		s.Require().NoError(uow.MenuRepository().Add(ctx, item))
		return errBoom
	})
	s.Require().ErrorIs(err, errBoom)
	s.Len(s.listMenu(), 13)

	// the lock was released, so a new write goes through
	s.placeOrder(s.line(1, 1))
}

func (s *storeSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := s.broker.Create()

	s.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	s.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	s.Require().NoError(uow.Commit(ctx))
	s.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (s *storeSuite) TestBroker_ViewWaitsForWriter() {
	ctx := context.Background()
	uow := s.broker.Create()
	s.Require().NoError(uow.Begin(ctx))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.broker.View(ctx, func(ports.ReadView) error { return nil })
	}()

	select {
	case <-done:
		s.Fail("view ran while a write was in progress")
	case <-time.After(50 * time.Millisecond):
	}

	s.Require().NoError(uow.Commit(ctx))
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("view did not run after the write committed")
	}
}

func (s *storeSuite) TestBroker_ViewsRunConcurrently() {
	ctx := context.Background()
	inside := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = s.broker.View(ctx, func(ports.ReadView) error {
			close(inside)
			<-release
			return nil
		})
	}()
	<-inside

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.broker.View(ctx, func(ports.ReadView) error { return nil })
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("second view blocked on the first")
	}
	close(release)
}
