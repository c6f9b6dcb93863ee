package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedInput is one feeding event for a pond. Recording one appends a usage
// adjustment for the fed item to the inventory ledger.
type FeedInput struct {
	ID              uuid.UUID  `bson:"_id" json:"id"`
	PondID          uuid.UUID  `bson:"pond_id" json:"pondId"`
	SeasonID        uuid.UUID  `bson:"season_id" json:"seasonId"`
	InventoryItemID uuid.UUID  `bson:"inventory_item_id" json:"inventoryItemId"`
	Quantity        float64    `bson:"quantity" json:"quantity"`
	Date            time.Time  `bson:"date" json:"date"`
	Notes           string     `bson:"notes,omitempty" json:"notes,omitempty"`
	DeletedAt       *time.Time `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updatedAt"`
}

type CreateFeedRequest struct {
	PondID          uuid.UUID `json:"pondId" binding:"required"`
	SeasonID        uuid.UUID `json:"seasonId" binding:"required"`
	InventoryItemID uuid.UUID `json:"inventoryItemId" binding:"required"`
	Quantity        float64   `json:"quantity" binding:"required,gt=0"`
	Date            time.Time `json:"date" binding:"required"`
	Notes           string    `json:"notes"`
}

type UpdateFeedRequest struct {
	Quantity *float64   `json:"quantity" binding:"omitempty,gt=0"`
	Date     *time.Time `json:"date"`
	Notes    *string    `json:"notes"`
}

// FeedFilter narrows feed listings.
type FeedFilter struct {
	PondID   *uuid.UUID
	SeasonID *uuid.UUID
	From     *time.Time
	To       *time.Time
}
