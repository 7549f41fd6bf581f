package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/pkg/utils"
)

var (
	ErrDuplicateHandle    = errors.New("handle already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrCoachNotFound      = errors.New("coach not found")
	ErrProgramNotFound    = errors.New("program not found")
)

const (
	maxHandleLength   = 50
	minPasswordLength = 8
	contactDomain     = "fithub.local"
)

type memberStore interface {
	Create(ctx context.Context, member *models.Member) error
	GetByHandle(ctx context.Context, handle string) (*models.Member, error)
}

type AuthService struct {
	memberRepo memberStore
}

func NewAuthService(memberRepo memberStore) *AuthService {
	return &AuthService{memberRepo: memberRepo}
}

// Register creates a member with a one-way password hash and a contact
// address derived from the handle. The unique constraints on handle and
// contact_email are the backstop for races past the pre-check.
func (s *AuthService) Register(
	ctx context.Context,
	handle string,
	password string,
	role string,
) (*models.Member, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" || len(handle) > maxHandleLength || strings.ContainsAny(handle, " \t@") {
		return nil, ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return nil, ErrInvalidInput
	}
	if role != models.RoleCoach && role != models.RoleClient {
		return nil, ErrInvalidInput
	}

	existing, err := s.memberRepo.GetByHandle(ctx, handle)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateHandle
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		Handle:       handle,
		ContactEmail: fmt.Sprintf("%s@%s", handle, contactDomain),
		PasswordHash: hashed,
		Role:         role,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateHandle
		}
		return nil, err
	}

	return member, nil
}

// Authenticate deliberately reports the same failure for an unknown handle
// and a wrong password, so callers cannot enumerate accounts.
func (s *AuthService) Authenticate(
	ctx context.Context,
	handle string,
	password string,
) (*models.Member, error) {
	member, err := s.memberRepo.GetByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(password, member.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return member, nil
}
