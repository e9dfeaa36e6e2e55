package ports

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
// Products are grouped into catalog generations: the ledger validates order
// line items only against the currently referenced generation (see
// CatalogReference), while lookups by product id work across generations.
type ProductRepository interface {
	// Add persists a new product under the given catalog generation and
	// returns the assigned product id (a monotonic sequence starting at 1).
	Add(ctx context.Context, catalogID uint64, aggregate *product.Product) (uint64, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id uint64) (*product.Product, error)

	// ExistsInCatalog reports whether the product id resolves within the
	// given catalog generation. Used to validate order line items.
	ExistsInCatalog(ctx context.Context, catalogID, productID uint64) (bool, error)
}

// CatalogReference is the ledger's swappable pointer at a product catalog
// generation. Rebinding it is an admin-only operation; order validation
// always consults the currently active generation.
type CatalogReference interface {
	// Active returns the catalog generation orders are validated against.
	Active(ctx context.Context) (uint64, error)

	// Rebind points the ledger at a different catalog generation.
	Rebind(ctx context.Context, catalogID uint64) error
}
