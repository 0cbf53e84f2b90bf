package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker changeTracker
	logger  *slog.Logger
}

// changeTracker receives every successful write so the unit of work can
// report it after commit.
type changeTracker interface {
	TrackChange(kind string, id int64, change string)
}

// NewGormOrderRepository creates a new GORM order repository. Listings
// report rows they cannot read to logger.
func NewGormOrderRepository(db *gorm.DB, tracker changeTracker, logger *slog.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		logger:  logger,
	}
}

// Add inserts an unsaved order and returns it with the id the database assigned.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if aggregate.ID() != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order %d is already saved", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	saved, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackChange("order", saved.ID(), "placed")
	return saved, nil
}

// Update writes the ready timestamp of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("ready_at", dto.ReadyAt)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackChange("order", dto.ID, "marked ready")
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves every order, most recent first. Rows whose items record
// cannot be read are logged and left out.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&OrderDTO{}).Order("id DESC"))
}

// ListPending retrieves orders without a ready timestamp, oldest first.
// Unreadable rows are skipped as in List.
func (r *GormOrderRepository) ListPending(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&OrderDTO{}).Where("ready_at IS NULL").Order("id ASC"))
}

// orderRow is OrderDTO with the items column left undecoded, so one
// corrupt record cannot fail the whole query.
type orderRow struct {
	ID       int64
	Items    string
	PlacedAt time.Time
	ReadyAt  *time.Time
}

func (r *GormOrderRepository) list(ctx context.Context, query *gorm.DB) ([]*order.Order, error) {
	var rows []orderRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toDomain()
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping unreadable order", "order_id", row.ID, "error", err)
			continue
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (row orderRow) toDomain() (*order.Order, error) {
	dto := OrderDTO{ID: row.ID, PlacedAt: row.PlacedAt, ReadyAt: row.ReadyAt}
	if err := json.Unmarshal([]byte(row.Items), &dto.Items); err != nil {
		return nil, fmt.Errorf("decode items record: %w", err)
	}
	return toDomain(dto)
}
