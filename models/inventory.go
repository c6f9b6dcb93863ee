package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemType categorizes inventory items.
type ItemType string

const (
	ItemTypeFeed      ItemType = "Feed"
	ItemTypeChemical  ItemType = "Chemical"
	ItemTypeProbiotic ItemType = "Probiotic"
	ItemTypeFuel      ItemType = "Fuel"
	ItemTypeOther     ItemType = "Other"
)

// Adjustment type labels recorded in the ledger.
const (
	AdjustmentInitialStock = "Initial Stock"
	AdjustmentPurchase     = "Purchase"
	AdjustmentUsage        = "Usage"
	AdjustmentCorrection   = "Correction"
)

// InventoryItem is a catalog entry for a stocked material. Current quantity
// is never stored here; it is derived from the adjustment ledger.
type InventoryItem struct {
	ID                uuid.UUID        `bson:"_id" json:"id"`
	Name              MultilingualText `bson:"name" json:"name"`
	Type              ItemType         `bson:"type" json:"type"`
	Unit              string           `bson:"unit" json:"unit"`
	CostPerUnit       float64          `bson:"cost_per_unit" json:"costPerUnit"`
	InitialQuantity   float64          `bson:"initial_quantity,omitempty" json:"initialQuantity,omitempty"`
	LowStockThreshold float64          `bson:"low_stock_threshold,omitempty" json:"lowStockThreshold,omitempty"`
	IsActive          bool             `bson:"is_active" json:"isActive"`
	DeletedAt         *time.Time       `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	CreatedAt         time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time        `bson:"updated_at" json:"updatedAt"`
}

// InventoryAdjustment is one append-only ledger row. Rows are never updated
// or deleted; the current quantity of an item is the sum of its rows.
type InventoryAdjustment struct {
	ID                   uuid.UUID  `bson:"_id" json:"id"`
	InventoryItemID      uuid.UUID  `bson:"inventory_item_id" json:"inventoryItemId"`
	AdjustmentType       string     `bson:"adjustment_type" json:"adjustmentType"`
	QuantityChange       float64    `bson:"quantity_change" json:"quantityChange"`
	Reason               string     `bson:"reason,omitempty" json:"reason,omitempty"`
	RelatedDocument      *uuid.UUID `bson:"related_document,omitempty" json:"relatedDocument,omitempty"`
	RelatedDocumentModel string     `bson:"related_document_model,omitempty" json:"relatedDocumentModel,omitempty"`
	PondID               *uuid.UUID `bson:"pond_id,omitempty" json:"pondId,omitempty"`
	SeasonID             *uuid.UUID `bson:"season_id,omitempty" json:"seasonId,omitempty"`
	CreatedAt            time.Time  `bson:"created_at" json:"createdAt"`
}

// CreateItemRequest is the payload for registering a new inventory item.
type CreateItemRequest struct {
	Name              MultilingualText `json:"name" binding:"required"`
	Type              ItemType         `json:"type" binding:"required,oneof=Feed Chemical Probiotic Fuel Other"`
	Unit              string           `json:"unit" binding:"required"`
	CostPerUnit       float64          `json:"costPerUnit" binding:"gte=0"`
	InitialQuantity   float64          `json:"initialQuantity" binding:"omitempty,gte=0"`
	LowStockThreshold float64          `json:"lowStockThreshold" binding:"omitempty,gte=0"`
}

// UpdateItemRequest carries partial updates for an item. Pointer fields
// distinguish "absent" from zero values.
type UpdateItemRequest struct {
	Name              MultilingualText `json:"name"`
	Unit              *string          `json:"unit"`
	CostPerUnit       *float64         `json:"costPerUnit" binding:"omitempty,gte=0"`
	LowStockThreshold *float64         `json:"lowStockThreshold" binding:"omitempty,gte=0"`
}

// CreateAdjustmentRequest is the payload for a direct ledger append.
// QuantityChange is a pointer so a missing field can be told apart from 0.
type CreateAdjustmentRequest struct {
	InventoryItemID      uuid.UUID  `json:"inventoryItemId" binding:"required"`
	AdjustmentType       string     `json:"adjustmentType" binding:"required"`
	QuantityChange       *float64   `json:"quantityChange" binding:"required"`
	Reason               string     `json:"reason"`
	RelatedDocument      *uuid.UUID `json:"relatedDocument"`
	RelatedDocumentModel string     `json:"relatedDocumentModel"`
	PondID               *uuid.UUID `json:"pondId"`
	SeasonID             *uuid.UUID `json:"seasonId"`
}

// StockLevel is a derived per-item view: ledger sum joined with the catalog.
type StockLevel struct {
	InventoryItemID uuid.UUID        `bson:"_id" json:"inventoryItemId"`
	Name            MultilingualText `bson:"name" json:"name"`
	Type            ItemType         `bson:"type" json:"type"`
	Unit            string           `bson:"unit" json:"unit"`
	CostPerUnit     float64          `bson:"cost_per_unit" json:"costPerUnit"`
	CurrentQuantity float64          `bson:"current_quantity" json:"currentQuantity"`
	LowStock        bool             `bson:"low_stock" json:"lowStock"`
}

// UsageSummaryRow is one group of the usage rollup: usage-type adjustments
// grouped by pond and item, costed at the item's unit cost.
type UsageSummaryRow struct {
	PondID            *uuid.UUID       `bson:"pond_id" json:"pondId"`
	InventoryItemID   uuid.UUID        `bson:"inventory_item_id" json:"inventoryItemId"`
	ItemName          MultilingualText `bson:"item_name" json:"itemName"`
	ItemType          ItemType         `bson:"item_type" json:"itemType"`
	Unit              string           `bson:"unit" json:"unit"`
	TotalQuantityUsed float64          `bson:"total_quantity_used" json:"totalQuantityUsed"`
	TotalCostUsed     float64          `bson:"total_cost_used" json:"totalCostUsed"`
}

// AggregatedInventory is the combined read-side projection served by the
// aggregated inventory endpoint.
type AggregatedInventory struct {
	CurrentStock []StockLevel      `json:"currentStock"`
	UsageSummary []UsageSummaryRow `json:"usageSummary"`
}
