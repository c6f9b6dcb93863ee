package models

import (
	"time"

	"github.com/google/uuid"
)

// SeasonStatus tracks the lifecycle of a culture season.
type SeasonStatus string

const (
	SeasonStatusPlanning  SeasonStatus = "Planning"
	SeasonStatusActive    SeasonStatus = "Active"
	SeasonStatusCompleted SeasonStatus = "Completed"
)

// Season is one culture cycle across the farm's ponds.
type Season struct {
	ID        uuid.UUID        `bson:"_id" json:"id"`
	Name      MultilingualText `bson:"name" json:"name"`
	StartDate time.Time        `bson:"start_date" json:"startDate"`
	EndDate   *time.Time       `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Status    SeasonStatus     `bson:"status" json:"status"`
	DeletedAt *time.Time       `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	CreatedAt time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updatedAt"`
}

type CreateSeasonRequest struct {
	Name      MultilingualText `json:"name" binding:"required"`
	StartDate time.Time        `json:"startDate" binding:"required"`
	EndDate   *time.Time       `json:"endDate"`
	Status    SeasonStatus     `json:"status" binding:"omitempty,oneof=Planning Active Completed"`
}

type UpdateSeasonRequest struct {
	Name      MultilingualText `json:"name"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
	Status    *SeasonStatus    `json:"status" binding:"omitempty,oneof=Planning Active Completed"`
}
