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

// SeasonService manages culture seasons.
type SeasonService interface {
	CreateSeason(ctx context.Context, req *models.CreateSeasonRequest) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]*models.Season, error)
	UpdateSeason(ctx context.Context, id uuid.UUID, req *models.UpdateSeasonRequest) (*models.Season, error)
	DeleteSeason(ctx context.Context, id uuid.UUID) error
}

type seasonService struct {
	repo repository.SeasonRepository
}

func NewSeasonService(repo repository.SeasonRepository) SeasonService {
	return &seasonService{repo: repo}
}

func (s *seasonService) CreateSeason(ctx context.Context, req *models.CreateSeasonRequest) (*models.Season, error) {
	status := req.Status
	if status == "" {
		status = models.SeasonStatusPlanning
	}

	now := time.Now().UTC()
	season := &models.Season{
		ID:        uuid.New(),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return season, nil
}

func (s *seasonService) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	season, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}
	return season, nil
}

func (s *seasonService) ListSeasons(ctx context.Context) ([]*models.Season, error) {
	return s.repo.FindAll(ctx)
}

func (s *seasonService) UpdateSeason(ctx context.Context, id uuid.UUID, req *models.UpdateSeasonRequest) (*models.Season, error) {
	updates := bson.M{}
	if len(req.Name) > 0 {
		updates["name"] = req.Name
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		matched, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update season: %w", err)
		}
		if matched == 0 {
			return nil, ErrSeasonNotFound
		}
	}
	return s.GetSeason(ctx, id)
}

func (s *seasonService) DeleteSeason(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}
	if matched == 0 {
		return ErrSeasonNotFound
	}
	return nil
}
