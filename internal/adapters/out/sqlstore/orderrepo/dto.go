// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"
)

// itemsRecordVersion is the schema version written into every items column.
const itemsRecordVersion = 1

// OrderDTO represents one row of orders. The id is assigned by the database
// and never reused; items hold the versioned line record as JSON text.
type OrderDTO struct {
	ID       int64       `gorm:"primaryKey;autoIncrement"`
	Items    ItemsRecord `gorm:"type:text;serializer:json;not null"`
	PlacedAt time.Time   `gorm:"not null"`
	ReadyAt  *time.Time  `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemsRecord is the persisted form of an order's lines.
// Version lets later builds migrate or reject rows written by other schemas.
type ItemsRecord struct {
	Version int          `json:"version"`
	Lines   []LineRecord `json:"lines"`
}

// LineRecord is one persisted (menu item id, quantity) pair.
type LineRecord struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// fromDomain converts an order aggregate to its row. Timestamps are stored in UTC.
func fromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	record := ItemsRecord{
		Version: itemsRecordVersion,
		Lines:   make([]LineRecord, 0, len(lines)),
	}
	for _, line := range lines {
		record.Lines = append(record.Lines, LineRecord{ItemID: line.ItemID(), Quantity: line.Quantity()})
	}

	var readyAt *time.Time
	if ready := o.ReadyAt(); ready != nil {
		utc := ready.UTC()
		readyAt = &utc
	}

	return OrderDTO{
		ID:       o.ID(),
		Items:    record,
		PlacedAt: o.PlacedAt().UTC(),
		ReadyAt:  readyAt,
	}
}

// toDomain rebuilds the aggregate from a row using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	if dto.Items.Version != itemsRecordVersion {
		return nil, errs.NewVersionIsInvalidError("items record version", dto.Items.Version)
	}

	lines := make([]order.Line, 0, len(dto.Items.Lines))
	for _, rec := range dto.Items.Lines {
		line, err := order.NewLine(rec.ItemID, rec.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, lines, dto.PlacedAt, dto.ReadyAt)
}
