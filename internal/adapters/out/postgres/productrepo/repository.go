package productrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/product"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// referenceRowID pins the catalog reference to one row.
const referenceRowID = 1

// DefaultCatalogID is the generation used until an admin rebinds the
// reference.
const DefaultCatalogID = 1

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product under the given catalog generation and returns the
// assigned id.
func (r *GormProductRepository) Add(ctx context.Context, catalogID uint64, aggregate *product.Product) (uint64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate, catalogID)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return dto.ID, nil
}

// Update saves an existing product.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, 0)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "cost": dto.Cost})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", fmt.Sprint(dto.ID))
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves a product by id.
func (r *GormProductRepository) Get(ctx context.Context, id uint64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", fmt.Sprint(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsInCatalog reports whether the product belongs to the given catalog
// generation.
func (r *GormProductRepository) ExistsInCatalog(ctx context.Context, catalogID, productID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("catalog_id = ? AND id = ?", catalogID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormCatalogReference implements CatalogReference on the single-row
// catalog_reference table.
type GormCatalogReference struct {
	db *gorm.DB
}

// NewGormCatalogReference creates a catalog reference accessor.
func NewGormCatalogReference(db *gorm.DB) *GormCatalogReference {
	return &GormCatalogReference{db: db}
}

// Active returns the active catalog generation. Before the first rebind the
// default generation is active.
func (r *GormCatalogReference) Active(ctx context.Context) (uint64, error) {
	var dto CatalogReferenceDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", referenceRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultCatalogID, nil
	}
	if err != nil {
		return 0, err
	}
	return dto.CatalogID, nil
}

// Rebind points the reference at another catalog generation.
func (r *GormCatalogReference) Rebind(ctx context.Context, catalogID uint64) error {
	dto := CatalogReferenceDTO{ID: referenceRowID, CatalogID: catalogID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"catalog_id"}),
	}).Create(&dto).Error
}
