package services

import (
	"context"
	"math"
	"strings"

	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/internal/repository"
)

const maxTitleLength = 100

type programStore interface {
	Create(ctx context.Context, input repository.CreateProgramInput) (*models.Program, error)
	ListByOwnerID(ctx context.Context, ownerID int64) ([]models.Program, error)
}

type CatalogService struct {
	programRepo programStore
}

func NewCatalogService(programRepo programStore) *CatalogService {
	return &CatalogService{programRepo: programRepo}
}

type PublishProgramInput struct {
	Title        string
	Description  string
	Price        float64
	DurationDays int
}

// Publish creates a program owned by the acting coach. Ownership is fixed
// at creation and never transferred.
func (s *CatalogService) Publish(
	ctx context.Context,
	owner *models.Member,
	input PublishProgramInput,
) (*models.Program, error) {
	if owner == nil || owner.Role != models.RoleCoach {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || len(title) > maxTitleLength {
		return nil, ErrInvalidInput
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrInvalidInput
	}
	if input.Price < 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return nil, ErrInvalidInput
	}
	if input.DurationDays <= 0 {
		return nil, ErrInvalidInput
	}

	return s.programRepo.Create(ctx, repository.CreateProgramInput{
		OwnerID:      owner.ID,
		Title:        title,
		Description:  description,
		Price:        input.Price,
		DurationDays: input.DurationDays,
	})
}

// ListOwned returns the caller's own library. Non-coaches get an empty
// list, not an error.
func (s *CatalogService) ListOwned(ctx context.Context, owner *models.Member) ([]models.Program, error) {
	if owner == nil || owner.Role != models.RoleCoach {
		return []models.Program{}, nil
	}
	return s.programRepo.ListByOwnerID(ctx, owner.ID)
}
