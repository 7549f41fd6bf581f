package repository

import (
	"context"
)

type EnrollmentRepository struct {
	db DBTX
}

func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Exists(ctx context.Context, clientID, programID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM enrollments
			WHERE client_id = $1 AND program_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, clientID, programID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, clientID, programID int64) error {
	query := `
		INSERT INTO enrollments (client_id, program_id)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(ctx, query, clientID, programID)
	return err
}

func (r *EnrollmentRepository) ListProgramIDsByClient(ctx context.Context, clientID int64) ([]int64, error) {
	query := `
		SELECT program_id
		FROM enrollments
		WHERE client_id = $1
		ORDER BY program_id ASC
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programIDs := make([]int64, 0)
	for rows.Next() {
		var programID int64
		if err := rows.Scan(&programID); err != nil {
			return nil, err
		}
		programIDs = append(programIDs, programID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programIDs, nil
}
