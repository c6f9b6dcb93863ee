package models

import (
	"time"

	"github.com/google/uuid"
)

// PondStatus tracks whether a pond is currently stocked.
type PondStatus string

const (
	PondStatusActive   PondStatus = "Active"
	PondStatusInactive PondStatus = "Inactive"
)

// Pond is a single grow-out pond, scoped to a culture season.
type Pond struct {
	ID        uuid.UUID        `bson:"_id" json:"id"`
	Name      MultilingualText `bson:"name" json:"name"`
	SeasonID  uuid.UUID        `bson:"season_id" json:"seasonId"`
	Size      float64          `bson:"size" json:"size"`         // surface area, m2
	Depth     float64          `bson:"depth" json:"depth"`       // meters
	Capacity  int              `bson:"capacity" json:"capacity"` // stocking capacity, post-larvae
	Status    PondStatus       `bson:"status" json:"status"`
	DeletedAt *time.Time       `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	CreatedAt time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updatedAt"`
}

type CreatePondRequest struct {
	Name     MultilingualText `json:"name" binding:"required"`
	SeasonID uuid.UUID        `json:"seasonId" binding:"required"`
	Size     float64          `json:"size" binding:"required,gt=0"`
	Depth    float64          `json:"depth" binding:"omitempty,gt=0"`
	Capacity int              `json:"capacity" binding:"omitempty,gt=0"`
	Status   PondStatus       `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type UpdatePondRequest struct {
	Name     MultilingualText `json:"name"`
	Size     *float64         `json:"size" binding:"omitempty,gt=0"`
	Depth    *float64         `json:"depth" binding:"omitempty,gt=0"`
	Capacity *int             `json:"capacity" binding:"omitempty,gt=0"`
	Status   *PondStatus      `json:"status" binding:"omitempty,oneof=Active Inactive"`
}
