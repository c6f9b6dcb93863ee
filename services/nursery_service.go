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
)

// ErrBatchNotFound is returned when a nursery batch lookup misses.
var ErrBatchNotFound = errors.New("nursery batch not found")

// NurseryService manages post-larvae batches.
type NurseryService interface {
	CreateBatch(ctx context.Context, req *models.CreateNurseryBatchRequest) (*models.NurseryBatch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*models.NurseryBatch, error)
	ListBatches(ctx context.Context) ([]*models.NurseryBatch, error)
	UpdateBatch(ctx context.Context, id uuid.UUID, req *models.UpdateNurseryBatchRequest) (*models.NurseryBatch, error)
	DeleteBatch(ctx context.Context, id uuid.UUID) error
}

type nurseryService struct {
	repo *repository.MongoNurseryRepository
}

func NewNurseryService(repo *repository.MongoNurseryRepository) NurseryService {
	return &nurseryService{repo: repo}
}

func (s *nurseryService) CreateBatch(ctx context.Context, req *models.CreateNurseryBatchRequest) (*models.NurseryBatch, error) {
	now := time.Now().UTC()
	batch := &models.NurseryBatch{
		ID:           uuid.New(),
		BatchName:    req.BatchName,
		Species:      req.Species,
		InitialCount: req.InitialCount,
		StartDate:    req.StartDate,
		SeasonID:     req.SeasonID,
		Status:       models.NurseryBatchStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to create nursery batch: %w", err)
	}
	return batch, nil
}

func (s *nurseryService) GetBatch(ctx context.Context, id uuid.UUID) (*models.NurseryBatch, error) {
	batch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	return batch, nil
}

func (s *nurseryService) ListBatches(ctx context.Context) ([]*models.NurseryBatch, error) {
	return s.repo.FindAll(ctx)
}

func (s *nurseryService) UpdateBatch(ctx context.Context, id uuid.UUID, req *models.UpdateNurseryBatchRequest) (*models.NurseryBatch, error) {
	updates := bson.M{}
	if len(req.BatchName) > 0 {
		updates["batch_name"] = req.BatchName
	}
	if req.Species != nil {
		updates["species"] = *req.Species
	}
	if req.InitialCount != nil {
		updates["initial_count"] = *req.InitialCount
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		matched, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update nursery batch: %w", err)
		}
		if matched == 0 {
			return nil, ErrBatchNotFound
		}
	}
	return s.GetBatch(ctx, id)
}

func (s *nurseryService) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete nursery batch: %w", err)
	}
	if matched == 0 {
		return ErrBatchNotFound
	}
	return nil
}
