// Package menurepo provides data transfer objects and mapping functions for menu persistence.
// It implements the repository pattern for menu items, handling the conversion
// between domain values and the menu_items table.
package menurepo

import (
	"cafe/internal/core/domain/model/menu"
)

// MenuItemDTO represents one row of menu_items.
// The id is chosen by staff, so it is not auto-incremented; the name is unique.
type MenuItemDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"size:64;not null;uniqueIndex"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:   item.ID(),
		Name: item.Name(),
	}
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	return menu.NewItem(dto.ID, dto.Name)
}
