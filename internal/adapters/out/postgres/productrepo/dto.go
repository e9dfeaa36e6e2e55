// Package productrepo persists the product catalog. Products belong to a
// catalog generation; the single-row catalog reference decides which
// generation new orders are validated against.
package productrepo

import (
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/product"
)

// ProductDTO is the database representation of a catalog entry. The id is
// assigned by the database sequence on insert.
type ProductDTO struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	CatalogID uint64 `gorm:"index"`
	Name      string
	Cost      uint64
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// CatalogReferenceDTO is the single-row pointer to the active catalog
// generation.
type CatalogReferenceDTO struct {
	ID        uint64 `gorm:"primaryKey"`
	CatalogID uint64
}

// TableName overrides GORM's default naming to use "catalog_reference".
func (CatalogReferenceDTO) TableName() string {
	return "catalog_reference"
}

func fromDomain(aggregate *product.Product, catalogID uint64) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID(),
		CatalogID: catalogID,
		Name:      aggregate.Name(),
		Cost:      aggregate.Cost(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Cost)
}
