package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/internal/repository"
)

const (
	EnrollStatusEnrolled        = "Enrollment successful"
	EnrollStatusAlreadyEnrolled = "Already enrolled"
)

type programReader interface {
	GetByID(ctx context.Context, programID int64) (*models.Program, error)
}

type EnrollmentService struct {
	db          *pgxpool.Pool
	programRepo programReader
}

func NewEnrollmentService(db *pgxpool.Pool, programRepo programReader) *EnrollmentService {
	return &EnrollmentService{
		db:          db,
		programRepo: programRepo,
	}
}

// Enroll records the (client, program) edge. Duplicate calls are a no-op
// success. Price is informational only; no payment is taken here.
func (s *EnrollmentService) Enroll(
	ctx context.Context,
	client *models.Member,
	programID int64,
) (string, error) {
	if client == nil || programID <= 0 {
		return "", ErrInvalidInput
	}

	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrProgramNotFound
		}
		return "", err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", client.ID); err != nil {
		return "", err
	}

	txEnrollmentRepo := repository.NewEnrollmentRepository(tx)

	exists, err := txEnrollmentRepo.Exists(ctx, client.ID, programID)
	if err != nil {
		return "", err
	}
	if exists {
		return EnrollStatusAlreadyEnrolled, nil
	}

	if err := txEnrollmentRepo.Create(ctx, client.ID, programID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return EnrollStatusAlreadyEnrolled, nil
		}
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	return EnrollStatusEnrolled, nil
}
