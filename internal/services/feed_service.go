package services

import (
	"context"

	"github.com/yash12-git/FitPlanHub/internal/models"
)

const lockedDetailPlaceholder = "🔒 Locked Content"

type enrollmentReader interface {
	ListProgramIDsByClient(ctx context.Context, clientID int64) ([]int64, error)
}

type ownedProgramLister interface {
	ListByOwnerIDs(ctx context.Context, ownerIDs []int64) ([]models.ProgramWithOwner, error)
}

type FeedService struct {
	followRepo     followEdgeReader
	enrollmentRepo enrollmentReader
	programRepo    ownedProgramLister
}

func NewFeedService(
	followRepo followEdgeReader,
	enrollmentRepo enrollmentReader,
	programRepo ownedProgramLister,
) *FeedService {
	return &FeedService{
		followRepo:     followRepo,
		enrollmentRepo: enrollmentRepo,
		programRepo:    programRepo,
	}
}

// ComposeFeed joins the follow edges, the enrollment ledger, and the
// catalog into the client's gated view. Follow membership alone decides
// which programs appear; enrollment only decides whether the detail text
// is unlocked.
func (s *FeedService) ComposeFeed(ctx context.Context, client *models.Member) ([]models.FeedItem, error) {
	if client == nil {
		return nil, ErrInvalidInput
	}

	coachIDs, err := s.followRepo.ListCoachIDsByFan(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	if len(coachIDs) == 0 {
		return []models.FeedItem{}, nil
	}

	enrolledIDs, err := s.enrollmentRepo.ListProgramIDsByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	enrolled := make(map[int64]struct{}, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = struct{}{}
	}

	programs, err := s.programRepo.ListByOwnerIDs(ctx, coachIDs)
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedItem, 0, len(programs))
	for _, program := range programs {
		_, unlocked := enrolled[program.ID]
		detail := lockedDetailPlaceholder
		if unlocked {
			detail = program.Description
		}
		feed = append(feed, models.FeedItem{
			ID:           program.ID,
			Title:        program.Title,
			CoachHandle:  program.OwnerHandle,
			Price:        program.Price,
			DurationDays: program.DurationDays,
			Detail:       detail,
			Unlocked:     unlocked,
		})
	}

	return feed, nil
}
