package itemrepo

import (
	"context"
	"errors"

	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item to the database.
func (r *GormItemRepository) Add(ctx context.Context, itm *item.OrderItem) error {
	if err := itm.Validate(); err != nil {
		return err
	}

	dto := fromDomain(itm)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(itm.ID(), itm)
	return nil
}

// Update saves an existing item to the database.
func (r *GormItemRepository) Update(ctx context.Context, itm *item.OrderItem) error {
	if err := itm.Validate(); err != nil {
		return err
	}

	dto := fromDomain(itm)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(itm.ID(), itm)
	return nil
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrderID retrieves the complete item set of one order.
func (r *GormItemRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*item.OrderItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]*item.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		itm, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, itm)
	}

	return items, nil
}
