package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/internal/repository"
)

const (
	FollowStatusConnected    = "Connected"
	FollowStatusDisconnected = "Disconnected"
)

type memberDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	ListCoaches(ctx context.Context) ([]models.Member, error)
}

type followEdgeReader interface {
	ListCoachIDsByFan(ctx context.Context, fanID int64) ([]int64, error)
}

type SocialService struct {
	db         *pgxpool.Pool
	memberRepo memberDirectory
	followRepo followEdgeReader
}

func NewSocialService(
	db *pgxpool.Pool,
	memberRepo memberDirectory,
	followRepo followEdgeReader,
) *SocialService {
	return &SocialService{
		db:         db,
		memberRepo: memberRepo,
		followRepo: followRepo,
	}
}

// ToggleFollow flips the (fan, coach) edge and reports the resulting state.
// The advisory lock on the fan serializes concurrent toggles for the same
// pair; the composite primary key backstops the check-then-write window.
func (s *SocialService) ToggleFollow(
	ctx context.Context,
	fan *models.Member,
	coachID int64,
) (string, error) {
	if fan == nil || coachID <= 0 || fan.ID == coachID {
		return "", ErrInvalidInput
	}

	target, err := s.memberRepo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrCoachNotFound
		}
		return "", err
	}
	if target.Role != models.RoleCoach {
		return "", ErrCoachNotFound
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", fan.ID); err != nil {
		return "", err
	}

	txFollowRepo := repository.NewFollowRepository(tx)

	exists, err := txFollowRepo.Exists(ctx, fan.ID, coachID)
	if err != nil {
		return "", err
	}

	status := FollowStatusConnected
	if exists {
		if err := txFollowRepo.Delete(ctx, fan.ID, coachID); err != nil {
			return "", err
		}
		status = FollowStatusDisconnected
	} else {
		if err := txFollowRepo.Create(ctx, fan.ID, coachID); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	return status, nil
}

// ListCoachesWithFollowState enumerates every coach, annotated with whether
// the viewer currently follows them.
func (s *SocialService) ListCoachesWithFollowState(
	ctx context.Context,
	viewer *models.Member,
) ([]models.CoachListing, error) {
	if viewer == nil {
		return nil, ErrInvalidInput
	}

	coaches, err := s.memberRepo.ListCoaches(ctx)
	if err != nil {
		return nil, err
	}

	followedIDs, err := s.followRepo.ListCoachIDsByFan(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	followed := make(map[int64]struct{}, len(followedIDs))
	for _, id := range followedIDs {
		followed[id] = struct{}{}
	}

	listings := make([]models.CoachListing, 0, len(coaches))
	for _, coach := range coaches {
		_, isFollowing := followed[coach.ID]
		listings = append(listings, models.CoachListing{
			ID:          coach.ID,
			Handle:      coach.Handle,
			IsFollowing: isFollowing,
		})
	}

	return listings, nil
}
