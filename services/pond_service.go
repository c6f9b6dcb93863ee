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

var (
	// ErrPondNotFound is returned when a pond lookup misses.
	ErrPondNotFound = errors.New("pond not found")
	// ErrSeasonNotFound is returned when a season reference is invalid.
	ErrSeasonNotFound = errors.New("season not found")
)

// PondService manages grow-out ponds.
type PondService interface {
	CreatePond(ctx context.Context, req *models.CreatePondRequest) (*models.Pond, error)
	GetPond(ctx context.Context, id uuid.UUID) (*models.Pond, error)
	ListPonds(ctx context.Context, seasonID *uuid.UUID) ([]*models.Pond, error)
	UpdatePond(ctx context.Context, id uuid.UUID, req *models.UpdatePondRequest) (*models.Pond, error)
	DeletePond(ctx context.Context, id uuid.UUID) error
}

type pondService struct {
	repo    repository.PondRepository
	seasons repository.SeasonRepository
}

func NewPondService(repo repository.PondRepository, seasons repository.SeasonRepository) PondService {
	return &pondService{repo: repo, seasons: seasons}
}

func (s *pondService) CreatePond(ctx context.Context, req *models.CreatePondRequest) (*models.Pond, error) {
	if _, err := s.seasons.FindByID(ctx, req.SeasonID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.PondStatusActive
	}

	now := time.Now().UTC()
	pond := &models.Pond{
		ID:        uuid.New(),
		Name:      req.Name,
		SeasonID:  req.SeasonID,
		Size:      req.Size,
		Depth:     req.Depth,
		Capacity:  req.Capacity,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, pond); err != nil {
		return nil, fmt.Errorf("failed to create pond: %w", err)
	}
	return pond, nil
}

func (s *pondService) GetPond(ctx context.Context, id uuid.UUID) (*models.Pond, error) {
	pond, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPondNotFound
		}
		return nil, err
	}
	return pond, nil
}

func (s *pondService) ListPonds(ctx context.Context, seasonID *uuid.UUID) ([]*models.Pond, error) {
	if seasonID != nil {
		return s.repo.FindBySeason(ctx, *seasonID)
	}
	return s.repo.FindAll(ctx)
}

func (s *pondService) UpdatePond(ctx context.Context, id uuid.UUID, req *models.UpdatePondRequest) (*models.Pond, error) {
	updates := bson.M{}
	if len(req.Name) > 0 {
		updates["name"] = req.Name
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.Depth != nil {
		updates["depth"] = *req.Depth
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		matched, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update pond: %w", err)
		}
		if matched == 0 {
			return nil, ErrPondNotFound
		}
	}
	return s.GetPond(ctx, id)
}

func (s *pondService) DeletePond(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete pond: %w", err)
	}
	if matched == 0 {
		return ErrPondNotFound
	}
	return nil
}
