// Package itemrepo provides data transfer objects and mapping functions for
// order item persistence. The item table carries nullable validation columns;
// the mapping preserves NULLs so the domain capability probe sees exactly
// what the store holds.
package itemrepo

import (
	"time"

	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting order items.
// Every validation column is nullable: a NULL means the record carries no
// value for the field, which the domain treats the same as a legacy schema
// that never had the column.
type ItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	QuantityOrdered     int
	ProductionStatus    *string
	QualityStatus       *string
	ProductionCheckedBy *string
	ProductionCheckedAt *time.Time
	QualityCheckedBy    *string
	QualityCheckedAt    *time.Time
	QuantityProduced    *int
	Notes               *string
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an item domain entity to its database representation.
// Attribute values the item does not hold become NULL columns.
func fromDomain(itm *item.OrderItem) ItemDTO {
	attrs := itm.Attributes()

	return ItemDTO{
		ID:                  itm.ID().Bytes(),
		OrderID:             itm.OrderID().Bytes(),
		QuantityOrdered:     itm.QuantityOrdered(),
		ProductionStatus:    stringColumn(attrs, item.AttrProductionStatus),
		QualityStatus:       stringColumn(attrs, item.AttrQualityStatus),
		ProductionCheckedBy: stringColumn(attrs, item.AttrProductionCheckedBy),
		ProductionCheckedAt: timeColumn(attrs, item.AttrProductionCheckedAt),
		QualityCheckedBy:    stringColumn(attrs, item.AttrQualityCheckedBy),
		QualityCheckedAt:    timeColumn(attrs, item.AttrQualityCheckedAt),
		QuantityProduced:    intColumn(attrs, item.AttrQuantityProduced),
		Notes:               stringColumn(attrs, item.AttrNotes),
	}
}

// toDomain converts a database DTO to an item domain entity.
// Every schema column appears in the attribute set; NULL columns map to nil
// values so the capability probe can distinguish "column present but empty"
// from a truncated attribute set.
func toDomain(dto ItemDTO) (*item.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	attrs := item.Attributes{
		item.AttrProductionStatus:    anyColumn(dto.ProductionStatus),
		item.AttrQualityStatus:       anyColumn(dto.QualityStatus),
		item.AttrProductionCheckedBy: anyColumn(dto.ProductionCheckedBy),
		item.AttrProductionCheckedAt: anyColumn(dto.ProductionCheckedAt),
		item.AttrQualityCheckedBy:    anyColumn(dto.QualityCheckedBy),
		item.AttrQualityCheckedAt:    anyColumn(dto.QualityCheckedAt),
		item.AttrQuantityProduced:    anyColumn(dto.QuantityProduced),
		item.AttrNotes:               anyColumn(dto.Notes),
	}

	return item.RestoreOrderItem(id, orderID, dto.QuantityOrdered, attrs)
}

func stringColumn(attrs item.Attributes, key string) *string {
	if v, ok := attrs[key].(string); ok {
		return &v
	}
	return nil
}

func timeColumn(attrs item.Attributes, key string) *time.Time {
	if v, ok := attrs[key].(time.Time); ok {
		return &v
	}
	return nil
}

func intColumn(attrs item.Attributes, key string) *int {
	if v, ok := attrs[key].(int); ok {
		return &v
	}
	return nil
}

func anyColumn[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
