// Package product contains the catalog side of the domain: sellable items
// identified by monotonically assigned ids, carrying a display name and a
// unit cost. Products are created and updated by the marketplace operator and
// never deleted, so the product counter doubles as the highest assigned id.
package product
