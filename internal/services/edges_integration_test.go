package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/internal/repository"
)

var (
	testDBOnce sync.Once
	testDBPool *pgxpool.Pool
	testDBErr  error
)

func TestToggleFollowFlipsEdgeState(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)

	memberRepo := repository.NewMemberRepository(pool)
	followRepo := repository.NewFollowRepository(pool)
	service := NewSocialService(pool, memberRepo, followRepo)

	fan := createTestMember(t, ctx, pool, models.RoleClient)
	coach := createTestMember(t, ctx, pool, models.RoleCoach)
	t.Cleanup(func() { cleanupTestMembers(t, ctx, pool, fan.ID, coach.ID) })

	status, err := service.ToggleFollow(ctx, fan, coach.ID)
	if err != nil {
		t.Fatalf("first ToggleFollow: %v", err)
	}
	if status != FollowStatusConnected {
		t.Fatalf("expected %q, got %q", FollowStatusConnected, status)
	}
	if exists, err := followRepo.Exists(ctx, fan.ID, coach.ID); err != nil || !exists {
		t.Fatalf("expected edge after connect, exists=%v err=%v", exists, err)
	}

	status, err = service.ToggleFollow(ctx, fan, coach.ID)
	if err != nil {
		t.Fatalf("second ToggleFollow: %v", err)
	}
	if status != FollowStatusDisconnected {
		t.Fatalf("expected %q, got %q", FollowStatusDisconnected, status)
	}
	if exists, err := followRepo.Exists(ctx, fan.ID, coach.ID); err != nil || exists {
		t.Fatalf("expected no edge after disconnect, exists=%v err=%v", exists, err)
	}
}

func TestEnrollIsIdempotent(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)

	programRepo := repository.NewProgramRepository(pool)
	service := NewEnrollmentService(pool, programRepo)

	client := createTestMember(t, ctx, pool, models.RoleClient)
	coach := createTestMember(t, ctx, pool, models.RoleCoach)
	t.Cleanup(func() { cleanupTestMembers(t, ctx, pool, client.ID, coach.ID) })

	program, err := programRepo.Create(ctx, repository.CreateProgramInput{
		OwnerID:      coach.ID,
		Title:        "Integration block",
		Description:  "Edge case coverage",
		Price:        15,
		DurationDays: 14,
	})
	if err != nil {
		t.Fatalf("Create program: %v", err)
	}

	status, err := service.Enroll(ctx, client, program.ID)
	if err != nil {
		t.Fatalf("first Enroll: %v", err)
	}
	if status != EnrollStatusEnrolled {
		t.Fatalf("expected %q, got %q", EnrollStatusEnrolled, status)
	}

	status, err = service.Enroll(ctx, client, program.ID)
	if err != nil {
		t.Fatalf("second Enroll: %v", err)
	}
	if status != EnrollStatusAlreadyEnrolled {
		t.Fatalf("expected %q, got %q", EnrollStatusAlreadyEnrolled, status)
	}

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM enrollments WHERE client_id = $1 AND program_id = $2",
		client.ID, program.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one enrollment edge, got %d", count)
	}
}

func integrationTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("..", "..", ".env"))

		dbURL := os.Getenv("DB_URL")
		if dbURL == "" {
			testDBErr = fmt.Errorf("DB_URL is not set")
			return
		}

		cfg, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			testDBErr = err
			return
		}

		testDBPool, testDBErr = pgxpool.NewWithConfig(context.Background(), cfg)
		if testDBErr != nil {
			return
		}
		testDBErr = testDBPool.Ping(context.Background())
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDBPool
}

func createTestMember(t *testing.T, ctx context.Context, pool *pgxpool.Pool, role string) *models.Member {
	t.Helper()

	handle := fmt.Sprintf("edge-test-%s-%d", role, time.Now().UnixNano())
	member := &models.Member{
		Handle:       handle,
		ContactEmail: handle + "@fithub.local",
		PasswordHash: "test-hash",
		Role:         role,
	}
	if err := repository.NewMemberRepository(pool).Create(ctx, member); err != nil {
		t.Fatalf("Create member (%s): %v", role, err)
	}
	return member
}

func cleanupTestMembers(t *testing.T, ctx context.Context, pool *pgxpool.Pool, memberIDs ...int64) {
	t.Helper()

	if len(memberIDs) == 0 {
		return
	}

	if _, err := pool.Exec(ctx, "DELETE FROM enrollments WHERE client_id = ANY($1) OR program_id IN (SELECT id FROM programs WHERE owner_id = ANY($1))", memberIDs); err != nil {
		t.Fatalf("cleanup enrollments: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM connections WHERE fan_id = ANY($1) OR coach_id = ANY($1)", memberIDs); err != nil {
		t.Fatalf("cleanup connections: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM programs WHERE owner_id = ANY($1)", memberIDs); err != nil {
		t.Fatalf("cleanup programs: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM members WHERE id = ANY($1)", memberIDs); err != nil {
		t.Fatalf("cleanup members: %v", err)
	}
}
