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

// ErrFeedNotFound is returned when a feed input lookup misses.
var ErrFeedNotFound = errors.New("feed input not found")

// FeedService records feeding events and charges them against inventory.
type FeedService interface {
	RecordFeeding(ctx context.Context, req *models.CreateFeedRequest) (*models.FeedInput, AdjustmentOutcome, error)
	GetFeeding(ctx context.Context, id uuid.UUID) (*models.FeedInput, error)
	ListFeedings(ctx context.Context, filter models.FeedFilter) ([]*models.FeedInput, error)
	UpdateFeeding(ctx context.Context, id uuid.UUID, req *models.UpdateFeedRequest) (*models.FeedInput, error)
	DeleteFeeding(ctx context.Context, id uuid.UUID) error
}

type feedService struct {
	repo      repository.FeedRepository
	inventory InventoryService
	logger    *zap.Logger
}

func NewFeedService(repo repository.FeedRepository, inventory InventoryService, logger *zap.Logger) FeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &feedService{repo: repo, inventory: inventory, logger: logger}
}

// RecordFeeding validates the fed item up front, persists the feeding, then
// appends a usage adjustment. A bad item reference fails the whole request;
// a ledger failure after the feeding is saved only degrades the outcome.
func (s *feedService) RecordFeeding(ctx context.Context, req *models.CreateFeedRequest) (*models.FeedInput, AdjustmentOutcome, error) {
	var outcome AdjustmentOutcome

	item, err := s.inventory.GetItem(ctx, req.InventoryItemID)
	if err != nil {
		return nil, outcome, err
	}
	if !item.IsActive {
		return nil, outcome, ErrItemInactive
	}

	now := time.Now().UTC()
	feed := &models.FeedInput{
		ID:              uuid.New(),
		PondID:          req.PondID,
		SeasonID:        req.SeasonID,
		InventoryItemID: req.InventoryItemID,
		Quantity:        req.Quantity,
		Date:            req.Date,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, feed); err != nil {
		return nil, outcome, fmt.Errorf("failed to create feed input: %w", err)
	}

	outcome.Attempted = 1
	_, err = s.inventory.RecordUsage(ctx, UsageRecord{
		InventoryItemID:      req.InventoryItemID,
		Quantity:             req.Quantity,
		Reason:               "Feeding",
		RelatedDocument:      feed.ID,
		RelatedDocumentModel: "FeedInput",
		PondID:               req.PondID,
		SeasonID:             req.SeasonID,
	})
	if err != nil {
		outcome.Failures = append(outcome.Failures,
			fmt.Sprintf("item %s: %v", req.InventoryItemID, err))
		s.logger.Warn("feeding usage adjustment failed",
			zap.String("feed_id", feed.ID.String()),
			zap.String("item_id", req.InventoryItemID.String()),
			zap.Error(err),
		)
	} else {
		outcome.Recorded = 1
	}

	return feed, outcome, nil
}

func (s *feedService) GetFeeding(ctx context.Context, id uuid.UUID) (*models.FeedInput, error) {
	feed, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFeedNotFound
		}
		return nil, err
	}
	return feed, nil
}

func (s *feedService) ListFeedings(ctx context.Context, filter models.FeedFilter) ([]*models.FeedInput, error) {
	return s.repo.Find(ctx, filter)
}

// UpdateFeeding edits the event record only. The usage adjustment already in
// the ledger is append-only and is not rewritten; corrections go through a
// Correction adjustment.
func (s *feedService) UpdateFeeding(ctx context.Context, id uuid.UUID, req *models.UpdateFeedRequest) (*models.FeedInput, error) {
	updates := bson.M{}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		matched, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update feed input: %w", err)
		}
		if matched == 0 {
			return nil, ErrFeedNotFound
		}
	}
	return s.GetFeeding(ctx, id)
}

func (s *feedService) DeleteFeeding(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete feed input: %w", err)
	}
	if matched == 0 {
		return ErrFeedNotFound
	}
	return nil
}
