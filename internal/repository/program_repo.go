package repository

import (
	"context"

	"github.com/yash12-git/FitPlanHub/internal/models"
)

type CreateProgramInput struct {
	OwnerID      int64
	Title        string
	Description  string
	Price        float64
	DurationDays int
}

type ProgramRepository struct {
	db DBTX
}

func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(
	ctx context.Context,
	input CreateProgramInput,
) (*models.Program, error) {
	query := `
		INSERT INTO programs (owner_id, title, description, price, duration_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, title, description, price, duration_days, created_at
	`

	var program models.Program
	err := r.db.QueryRow(
		ctx,
		query,
		input.OwnerID,
		input.Title,
		input.Description,
		input.Price,
		input.DurationDays,
	).Scan(
		&program.ID,
		&program.OwnerID,
		&program.Title,
		&program.Description,
		&program.Price,
		&program.DurationDays,
		&program.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &program, nil
}

func (r *ProgramRepository) GetByID(ctx context.Context, programID int64) (*models.Program, error) {
	query := `
		SELECT id, owner_id, title, description, price, duration_days, created_at
		FROM programs
		WHERE id = $1
	`

	var program models.Program
	err := r.db.QueryRow(ctx, query, programID).Scan(
		&program.ID,
		&program.OwnerID,
		&program.Title,
		&program.Description,
		&program.Price,
		&program.DurationDays,
		&program.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &program, nil
}

func (r *ProgramRepository) ListByOwnerID(ctx context.Context, ownerID int64) ([]models.Program, error) {
	query := `
		SELECT id, owner_id, title, description, price, duration_days, created_at
		FROM programs
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.Program, 0)
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.OwnerID,
			&program.Title,
			&program.Description,
			&program.Price,
			&program.DurationDays,
			&program.CreatedAt,
		); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}

// ListByOwnerIDs resolves the owner handle in the same query so the feed
// composer never walks back to the members table per program.
func (r *ProgramRepository) ListByOwnerIDs(ctx context.Context, ownerIDs []int64) ([]models.ProgramWithOwner, error) {
	if len(ownerIDs) == 0 {
		return []models.ProgramWithOwner{}, nil
	}

	query := `
		SELECT p.id, p.owner_id, p.title, p.description, p.price, p.duration_days, p.created_at, m.handle
		FROM programs p
		JOIN members m ON m.id = p.owner_id
		WHERE p.owner_id = ANY($1)
		ORDER BY p.created_at DESC, p.id DESC
	`
	rows, err := r.db.Query(ctx, query, ownerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.ProgramWithOwner, 0)
	for rows.Next() {
		var program models.ProgramWithOwner
		if err := rows.Scan(
			&program.ID,
			&program.OwnerID,
			&program.Title,
			&program.Description,
			&program.Price,
			&program.DurationDays,
			&program.CreatedAt,
			&program.OwnerHandle,
		); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}
