package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ErrReadingNotFound is returned when a reading lookup misses.
var ErrReadingNotFound = errors.New("water quality reading not found")

// WaterQualityService records pond measurements and their treatments.
type WaterQualityService interface {
	CreateReading(ctx context.Context, req *models.CreateWaterQualityRequest) (*models.WaterQualityReading, AdjustmentOutcome, error)
	GetReading(ctx context.Context, id uuid.UUID) (*models.WaterQualityReading, error)
	ListReadings(ctx context.Context, filter models.WaterQualityFilter) ([]*models.WaterQualityReading, error)
	UpdateReading(ctx context.Context, id uuid.UUID, req *models.UpdateWaterQualityRequest) (*models.WaterQualityReading, error)
	DeleteReading(ctx context.Context, id uuid.UUID) error
}

type waterQualityService struct {
	repo      repository.WaterQualityRepository
	inventory InventoryService
	logger    *zap.Logger
}

func NewWaterQualityService(repo repository.WaterQualityRepository, inventory InventoryService, logger *zap.Logger) WaterQualityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &waterQualityService{repo: repo, inventory: inventory, logger: logger}
}

// CreateReading persists the reading, then appends one usage adjustment per
// treatment. The reading is the primary write: ledger failures never undo
// it, they are collected into the returned outcome instead.
func (s *waterQualityService) CreateReading(ctx context.Context, req *models.CreateWaterQualityRequest) (*models.WaterQualityReading, AdjustmentOutcome, error) {
	now := time.Now().UTC()
	reading := &models.WaterQualityReading{
		ID:              uuid.New(),
		PondID:          req.PondID,
		SeasonID:        req.SeasonID,
		Date:            req.Date,
		PH:              req.PH,
		Salinity:        req.Salinity,
		Temperature:     req.Temperature,
		DissolvedOxygen: req.DissolvedOxygen,
		Ammonia:         req.Ammonia,
		Nitrite:         req.Nitrite,
		Alkalinity:      req.Alkalinity,
		Treatments:      req.Treatments,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var outcome AdjustmentOutcome
	if err := s.repo.Create(ctx, reading); err != nil {
		return nil, outcome, fmt.Errorf("failed to create water quality reading: %w", err)
	}

	outcome.Attempted = len(req.Treatments)
	for _, treatment := range req.Treatments {
		_, err := s.inventory.RecordUsage(ctx, UsageRecord{
			InventoryItemID:      treatment.InventoryItemID,
			Quantity:             treatment.Quantity,
			Reason:               "Water treatment",
			RelatedDocument:      reading.ID,
			RelatedDocumentModel: "WaterQualityReading",
			PondID:               req.PondID,
			SeasonID:             req.SeasonID,
		})
		if err != nil {
			outcome.Failures = append(outcome.Failures,
				fmt.Sprintf("item %s: %v", treatment.InventoryItemID, err))
			s.logger.Warn("treatment usage adjustment failed",
				zap.String("reading_id", reading.ID.String()),
				zap.String("item_id", treatment.InventoryItemID.String()),
				zap.Error(err),
			)
			continue
		}
		outcome.Recorded++
	}

	return reading, outcome, nil
}

func (s *waterQualityService) GetReading(ctx context.Context, id uuid.UUID) (*models.WaterQualityReading, error) {
	reading, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReadingNotFound
		}
		return nil, err
	}
	return reading, nil
}

func (s *waterQualityService) ListReadings(ctx context.Context, filter models.WaterQualityFilter) ([]*models.WaterQualityReading, error) {
	return s.repo.Find(ctx, filter)
}

// UpdateReading edits measurement fields only. Treatments are immutable once
// recorded; their ledger rows must stay consistent with the reading.
func (s *waterQualityService) UpdateReading(ctx context.Context, id uuid.UUID, req *models.UpdateWaterQualityRequest) (*models.WaterQualityReading, error) {
	updates := bson.M{}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.PH != nil {
		updates["ph"] = *req.PH
	}
	if req.Salinity != nil {
		updates["salinity"] = *req.Salinity
	}
	if req.Temperature != nil {
		updates["temperature"] = *req.Temperature
	}
	if req.DissolvedOxygen != nil {
		updates["dissolved_oxygen"] = *req.DissolvedOxygen
	}
	if req.Ammonia != nil {
		updates["ammonia"] = *req.Ammonia
	}
	if req.Nitrite != nil {
		updates["nitrite"] = *req.Nitrite
	}
	if req.Alkalinity != nil {
		updates["alkalinity"] = *req.Alkalinity
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		matched, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update water quality reading: %w", err)
		}
		if matched == 0 {
			return nil, ErrReadingNotFound
		}
	}
	return s.GetReading(ctx, id)
}

func (s *waterQualityService) DeleteReading(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete water quality reading: %w", err)
	}
	if matched == 0 {
		return ErrReadingNotFound
	}
	return nil
}
