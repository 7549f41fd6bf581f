package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yash12-git/FitPlanHub/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type MemberRepository struct {
	db DBTX
}

func NewMemberRepository(db DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (handle, contact_email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, member.Handle, member.ContactEmail, member.PasswordHash, member.Role).
		Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *MemberRepository) GetByHandle(ctx context.Context, handle string) (*models.Member, error) {
	query := `
		SELECT id, handle, contact_email, password_hash, role, created_at, updated_at
		FROM members
		WHERE handle = $1
	`
	var member models.Member
	err := r.db.QueryRow(ctx, query, handle).Scan(
		&member.ID,
		&member.Handle,
		&member.ContactEmail,
		&member.PasswordHash,
		&member.Role,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	query := `
		SELECT id, handle, contact_email, password_hash, role, created_at, updated_at
		FROM members
		WHERE id = $1
	`
	var member models.Member
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Handle,
		&member.ContactEmail,
		&member.PasswordHash,
		&member.Role,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) ListCoaches(ctx context.Context) ([]models.Member, error) {
	query := `
		SELECT id, handle, contact_email, password_hash, role, created_at, updated_at
		FROM members
		WHERE role = 'coach'
		ORDER BY handle ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := make([]models.Member, 0)
	for rows.Next() {
		var member models.Member
		if err := rows.Scan(
			&member.ID,
			&member.Handle,
			&member.ContactEmail,
			&member.PasswordHash,
			&member.Role,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		coaches = append(coaches, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coaches, nil
}
