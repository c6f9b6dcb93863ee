package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/repository"
)

// DashboardService assembles read-side rollups. Everything here is derived
// on demand from the underlying collections; nothing is precomputed.
type DashboardService interface {
	PondDashboard(ctx context.Context, pondID uuid.UUID) (*models.PondDashboard, error)
	SeasonSummary(ctx context.Context, seasonID uuid.UUID) (*models.SeasonSummary, error)
}

type dashboardService struct {
	ponds        repository.PondRepository
	seasons      repository.SeasonRepository
	expenses     repository.ExpenseRepository
	waterQuality repository.WaterQualityRepository
	inventory    repository.InventoryRepository
}

func NewDashboardService(
	ponds repository.PondRepository,
	seasons repository.SeasonRepository,
	expenses repository.ExpenseRepository,
	waterQuality repository.WaterQualityRepository,
	inventory repository.InventoryRepository,
) DashboardService {
	return &dashboardService{
		ponds:        ponds,
		seasons:      seasons,
		expenses:     expenses,
		waterQuality: waterQuality,
		inventory:    inventory,
	}
}

func (s *dashboardService) PondDashboard(ctx context.Context, pondID uuid.UUID) (*models.PondDashboard, error) {
	pond, err := s.ponds.FindByID(ctx, pondID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPondNotFound
		}
		return nil, err
	}

	totals, err := s.expenses.TotalByCategory(ctx, models.ExpenseFilter{PondID: &pondID})
	if err != nil {
		return nil, fmt.Errorf("failed to roll up pond expenses: %w", err)
	}
	var totalExpenses float64
	for _, t := range totals {
		totalExpenses += t.Total
	}

	feedType := models.ItemTypeFeed
	feedUsage, err := s.inventory.UsageSummary(ctx, repository.UsageFilter{
		PondID:   &pondID,
		ItemType: feedType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to roll up feed usage: %w", err)
	}

	latest, err := s.waterQuality.LatestForPond(ctx, pondID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load latest reading: %w", err)
	}

	return &models.PondDashboard{
		Pond:          pond,
		TotalExpenses: totalExpenses,
		FeedUsage:     feedUsage,
		LatestReading: latest,
	}, nil
}

func (s *dashboardService) SeasonSummary(ctx context.Context, seasonID uuid.UUID) (*models.SeasonSummary, error) {
	season, err := s.seasons.FindByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	pondCount, err := s.ponds.CountBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to count ponds: %w", err)
	}

	totals, err := s.expenses.TotalByCategory(ctx, models.ExpenseFilter{SeasonID: &seasonID})
	if err != nil {
		return nil, fmt.Errorf("failed to roll up season expenses: %w", err)
	}
	var totalExpenses float64
	for _, t := range totals {
		totalExpenses += t.Total
	}

	usage, err := s.inventory.UsageSummary(ctx, repository.UsageFilter{SeasonID: &seasonID})
	if err != nil {
		return nil, fmt.Errorf("failed to roll up season usage: %w", err)
	}

	return &models.SeasonSummary{
		Season:            season,
		PondCount:         int(pondCount),
		TotalExpenses:     totalExpenses,
		ExpenseByCategory: totals,
		UsageSummary:      usage,
	}, nil
}
