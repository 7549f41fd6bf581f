package repository

import (
	"context"
)

type FollowRepository struct {
	db DBTX
}

func NewFollowRepository(db DBTX) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Exists(ctx context.Context, fanID, coachID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM connections
			WHERE fan_id = $1 AND coach_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, fanID, coachID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *FollowRepository) Create(ctx context.Context, fanID, coachID int64) error {
	query := `
		INSERT INTO connections (fan_id, coach_id)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(ctx, query, fanID, coachID)
	return err
}

func (r *FollowRepository) Delete(ctx context.Context, fanID, coachID int64) error {
	query := `
		DELETE FROM connections
		WHERE fan_id = $1 AND coach_id = $2
	`
	_, err := r.db.Exec(ctx, query, fanID, coachID)
	return err
}

func (r *FollowRepository) ListCoachIDsByFan(ctx context.Context, fanID int64) ([]int64, error) {
	query := `
		SELECT coach_id
		FROM connections
		WHERE fan_id = $1
		ORDER BY coach_id ASC
	`
	rows, err := r.db.Query(ctx, query, fanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coachIDs := make([]int64, 0)
	for rows.Next() {
		var coachID int64
		if err := rows.Scan(&coachID); err != nil {
			return nil, err
		}
		coachIDs = append(coachIDs, coachID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coachIDs, nil
}
