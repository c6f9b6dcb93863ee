package models

import (
	"time"

	"github.com/google/uuid"
)

// WaterTreatment is a chemical applied while taking a reading. Recording one
// appends a usage adjustment to the inventory ledger as a best-effort
// secondary write.
type WaterTreatment struct {
	InventoryItemID uuid.UUID `bson:"inventory_item_id" json:"inventoryItemId" binding:"required"`
	Quantity        float64   `bson:"quantity" json:"quantity" binding:"required,gt=0"`
}

// WaterQualityReading is one measurement event for a pond.
type WaterQualityReading struct {
	ID              uuid.UUID        `bson:"_id" json:"id"`
	PondID          uuid.UUID        `bson:"pond_id" json:"pondId"`
	SeasonID        uuid.UUID        `bson:"season_id" json:"seasonId"`
	Date            time.Time        `bson:"date" json:"date"`
	PH              *float64         `bson:"ph,omitempty" json:"pH,omitempty"`
	Salinity        *float64         `bson:"salinity,omitempty" json:"salinity,omitempty"`
	Temperature     *float64         `bson:"temperature,omitempty" json:"temperature,omitempty"`
	DissolvedOxygen *float64         `bson:"dissolved_oxygen,omitempty" json:"dissolvedOxygen,omitempty"`
	Ammonia         *float64         `bson:"ammonia,omitempty" json:"ammonia,omitempty"`
	Nitrite         *float64         `bson:"nitrite,omitempty" json:"nitrite,omitempty"`
	Alkalinity      *float64         `bson:"alkalinity,omitempty" json:"alkalinity,omitempty"`
	Treatments      []WaterTreatment `bson:"treatments,omitempty" json:"treatments,omitempty"`
	Notes           string           `bson:"notes,omitempty" json:"notes,omitempty"`
	DeletedAt       *time.Time       `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	CreatedAt       time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updatedAt"`
}

type CreateWaterQualityRequest struct {
	PondID          uuid.UUID        `json:"pondId" binding:"required"`
	SeasonID        uuid.UUID        `json:"seasonId" binding:"required"`
	Date            time.Time        `json:"date" binding:"required"`
	PH              *float64         `json:"pH" binding:"omitempty,gte=0,lte=14"`
	Salinity        *float64         `json:"salinity" binding:"omitempty,gte=0"`
	Temperature     *float64         `json:"temperature"`
	DissolvedOxygen *float64         `json:"dissolvedOxygen" binding:"omitempty,gte=0"`
	Ammonia         *float64         `json:"ammonia" binding:"omitempty,gte=0"`
	Nitrite         *float64         `json:"nitrite" binding:"omitempty,gte=0"`
	Alkalinity      *float64         `json:"alkalinity" binding:"omitempty,gte=0"`
	Treatments      []WaterTreatment `json:"treatments" binding:"omitempty,dive"`
	Notes           string           `json:"notes"`
}

type UpdateWaterQualityRequest struct {
	Date            *time.Time `json:"date"`
	PH              *float64   `json:"pH" binding:"omitempty,gte=0,lte=14"`
	Salinity        *float64   `json:"salinity" binding:"omitempty,gte=0"`
	Temperature     *float64   `json:"temperature"`
	DissolvedOxygen *float64   `json:"dissolvedOxygen" binding:"omitempty,gte=0"`
	Ammonia         *float64   `json:"ammonia" binding:"omitempty,gte=0"`
	Nitrite         *float64   `json:"nitrite" binding:"omitempty,gte=0"`
	Alkalinity      *float64   `json:"alkalinity" binding:"omitempty,gte=0"`
	Notes           *string    `json:"notes"`
}

// WaterQualityFilter narrows reading listings.
type WaterQualityFilter struct {
	PondID   *uuid.UUID
	SeasonID *uuid.UUID
	From     *time.Time
	To       *time.Time
}
