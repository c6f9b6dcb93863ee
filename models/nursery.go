package models

import (
	"time"

	"github.com/google/uuid"
)

// NurseryBatchStatus tracks a batch from stocking to transfer.
type NurseryBatchStatus string

const (
	NurseryBatchStatusActive      NurseryBatchStatus = "Active"
	NurseryBatchStatusTransferred NurseryBatchStatus = "Transferred"
	NurseryBatchStatusClosed      NurseryBatchStatus = "Closed"
)

// NurseryBatch is a post-larvae batch raised in the nursery before transfer
// to a grow-out pond.
type NurseryBatch struct {
	ID           uuid.UUID          `bson:"_id" json:"id"`
	BatchName    MultilingualText   `bson:"batch_name" json:"batchName"`
	Species      string             `bson:"species" json:"species"`
	InitialCount int                `bson:"initial_count" json:"initialCount"`
	StartDate    time.Time          `bson:"start_date" json:"startDate"`
	SeasonID     uuid.UUID          `bson:"season_id" json:"seasonId"`
	Status       NurseryBatchStatus `bson:"status" json:"status"`
	DeletedAt    *time.Time         `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CreateNurseryBatchRequest struct {
	BatchName    MultilingualText `json:"batchName" binding:"required"`
	Species      string           `json:"species" binding:"required"`
	InitialCount int              `json:"initialCount" binding:"required,gt=0"`
	StartDate    time.Time        `json:"startDate" binding:"required"`
	SeasonID     uuid.UUID        `json:"seasonId" binding:"required"`
}

type UpdateNurseryBatchRequest struct {
	BatchName    MultilingualText    `json:"batchName"`
	Species      *string             `json:"species"`
	InitialCount *int                `json:"initialCount" binding:"omitempty,gt=0"`
	Status       *NurseryBatchStatus `json:"status" binding:"omitempty,oneof=Active Transferred Closed"`
}
