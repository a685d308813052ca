package models

import "github.com/google/uuid"

// ProductStatus represents the lifecycle state of an inventory product
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusAssigned  ProductStatus = "assigned"
	ProductStatusRetired   ProductStatus = "retired"
)

// MovementType represents the direction of a stock movement
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// InventoryProduct represents a tracked asset or stock item
type InventoryProduct struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	// Partial unique index excludes soft-deleted records so a retired SKU can be recreated
	SKU         string        `json:"sku" gorm:"size:60;not null;uniqueIndex:idx_products_tenant_sku,where:deleted_at IS NULL" validate:"required,max=60"`
	Name        string        `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Category    string        `json:"category" gorm:"size:100" validate:"max=100"`
	Quantity    int           `json:"quantity" gorm:"not null;default:0" validate:"min=0"`
	MinQuantity int           `json:"min_quantity" gorm:"not null;default:0" validate:"min=0"`
	Location    string        `json:"location" gorm:"size:100" validate:"max=100"`
	Status      ProductStatus `json:"status" gorm:"type:varchar(20);not null;default:'available'"`

	Tenant    Tenant              `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Movements []InventoryMovement `json:"movements,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for InventoryProduct
func (InventoryProduct) TableName() string {
	return "inventory_products"
}

// InventoryMovement records a stock change against a product
type InventoryMovement struct {
	BaseModel
	ProductID uuid.UUID    `json:"product_id" gorm:"type:uuid;not null;index" validate:"required"`
	PersonID  *uuid.UUID   `json:"person_id,omitempty" gorm:"type:uuid;index"`
	Type      MovementType `json:"type" gorm:"type:varchar(10);not null" validate:"required"`
	Quantity  int          `json:"quantity" gorm:"not null" validate:"required,min=1"`
	Note      string       `json:"note" gorm:"size:300" validate:"max=300"`

	Product InventoryProduct `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Person  *Person          `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for InventoryMovement
func (InventoryMovement) TableName() string {
	return "inventory_movements"
}
