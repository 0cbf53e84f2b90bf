package menurepo

import (
	"context"
	"errors"

	"cafe/internal/core/domain/model/menu"
	"cafe/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker receives every successful write so the unit of work can
// report it after commit.
type changeTracker interface {
	TrackChange(kind string, id int64, change string)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker changeTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item, rejecting taken ids and names.
func (r *GormMenuRepository) Add(ctx context.Context, item menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&MenuItemDTO{}).Where("id = ?", item.ID()).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewObjectAlreadyExistsErrorWithCause("menu item id", item.ID(), menu.ErrDuplicateID)
	}

	if err := db.Model(&MenuItemDTO{}).Where("name = ?", item.Name()).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewObjectAlreadyExistsErrorWithCause("menu item name", item.Name(), menu.ErrDuplicateName)
	}

	dto := fromDomain(item)
	if err := db.Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("menu item", item.ID(), err)
		}
		return err
	}

	r.tracker.TrackChange("menu item", item.ID(), "added")
	return nil
}

// Remove deletes a menu item and returns it.
func (r *GormMenuRepository) Remove(ctx context.Context, id int64) (menu.Item, error) {
	item, err := r.Get(ctx, id)
	if err != nil {
		return menu.Item{}, err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id)
	if result.Error != nil {
		return menu.Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return menu.Item{}, errs.NewObjectNotFoundError("menu item", id)
	}

	r.tracker.TrackChange("menu item", id, "removed")
	return item, nil
}

// Get retrieves a menu item by id.
func (r *GormMenuRepository) Get(ctx context.Context, id int64) (menu.Item, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Item{}, errs.NewObjectNotFoundError("menu item", id)
		}
		return menu.Item{}, err
	}

	return toDomain(dto)
}

// List retrieves all menu items ordered by id.
func (r *GormMenuRepository) List(ctx context.Context) ([]menu.Item, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
