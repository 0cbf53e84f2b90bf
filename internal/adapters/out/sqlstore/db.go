package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cafe/internal/adapters/out/sqlstore/menurepo"
	"cafe/internal/adapters/out/sqlstore/orderrepo"
	"cafe/internal/core/domain/model/menu"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver is returned by Open for drivers other than sqlite and postgres.
var ErrUnknownDriver = errors.New("unknown database driver")

// Open connects to the store. For sqlite, dsn is the database file path;
// a busy timeout and WAL journaling are added unless the path already
// carries query parameters.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite, "":
		if !strings.Contains(dsn, "?") {
			dsn += "?_busy_timeout=5000&_journal_mode=WAL"
		}
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}

	return db, nil
}

// Migrate creates or updates the orders and menu_items tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&menurepo.MenuItemDTO{}, &orderrepo.OrderDTO{})
}

// Seed inserts items when the menu is empty, so the first run of a fresh
// store starts with a menu. It reports whether anything was inserted.
func Seed(ctx context.Context, db *gorm.DB, items []menu.Item) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&menurepo.MenuItemDTO{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(items) == 0 {
			return nil
		}

		repo := menurepo.NewGormMenuRepository(tx, discardTracker{})
		for _, item := range items {
			if err := repo.Add(ctx, item); err != nil {
				return fmt.Errorf("seed menu item %d: %w", item.ID(), err)
			}
		}
		seeded = true
		return nil
	})
	return seeded, err
}

// menuSeedFile is the YAML layout accepted by LoadMenuSeed:
//
//	items:
//	  - id: 1
//	    name: Black (Hot)
type menuSeedFile struct {
	Items []struct {
		ID   int64  `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"items"`
}

// LoadMenuSeed reads a YAML menu for first-run seeding.
func LoadMenuSeed(path string) ([]menu.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu seed: %w", err)
	}

	var file menuSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse menu seed %s: %w", path, err)
	}

	items := make([]menu.Item, 0, len(file.Items))
	var errList []error
	for _, entry := range file.Items {
		item, err := menu.NewItem(entry.ID, entry.Name)
		if err != nil {
			errList = append(errList, fmt.Errorf("menu seed entry %d: %w", entry.ID, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return items, nil
}
