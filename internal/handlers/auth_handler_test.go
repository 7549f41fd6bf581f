package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/internal/services"
	"github.com/yash12-git/FitPlanHub/pkg/utils"
)

type stubAuthService struct {
	registerResult   *models.Member
	registerErr      error
	authResult       *models.Member
	authErr          error
	lastRegisterArgs [3]string
}

func (s *stubAuthService) Register(_ context.Context, handle, password, role string) (*models.Member, error) {
	s.lastRegisterArgs = [3]string{handle, password, role}
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Authenticate(_ context.Context, _, _ string) (*models.Member, error) {
	return s.authResult, s.authErr
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestSignupCreatesAccount(t *testing.T) {
	service := &stubAuthService{
		registerResult: &models.Member{ID: 1, Handle: "ana", Role: models.RoleClient},
	}
	handler := NewAuthHandler(service, "test-secret", time.Hour)

	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)

	resp := postJSON(t, app, "/api/auth/signup", signupRequest{
		Handle:   "ana",
		Password: "password123",
		Role:     "client",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastRegisterArgs != [3]string{"ana", "password123", "client"} {
		t.Fatalf("unexpected register args: %+v", service.lastRegisterArgs)
	}
}

func TestSignupDuplicateHandleReturns400(t *testing.T) {
	service := &stubAuthService{registerErr: services.ErrDuplicateHandle}
	handler := NewAuthHandler(service, "test-secret", time.Hour)

	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)

	resp := postJSON(t, app, "/api/auth/signup", signupRequest{
		Handle:   "ana",
		Password: "password123",
		Role:     "client",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLoginIssuesBearerTokenWithMatchingClaims(t *testing.T) {
	service := &stubAuthService{
		authResult: &models.Member{ID: 7, Handle: "coach_mike", Role: models.RoleCoach},
	}
	handler := NewAuthHandler(service, "test-secret", time.Hour)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	resp := postJSON(t, app, "/api/auth/login", loginRequest{
		Handle:   "coach_mike",
		Password: "password123",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
		Role      string `json:"role"`
		MemberID  int64  `json:"member_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if body.TokenType != "bearer" || body.Role != "coach" || body.MemberID != 7 {
		t.Fatalf("unexpected login body: %+v", body)
	}

	claims, err := utils.ValidateToken(body.Token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Handle != "coach_mike" || claims.Role != "coach" {
		t.Fatalf("token claims do not match member: %+v", claims)
	}
}

func TestLoginFailureIsUniform(t *testing.T) {
	service := &stubAuthService{authErr: services.ErrInvalidCredentials}
	handler := NewAuthHandler(service, "test-secret", time.Hour)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	resp := postJSON(t, app, "/api/auth/login", loginRequest{
		Handle:   "nobody",
		Password: "whatever123",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Error != "Invalid handle or password" {
		t.Fatalf("expected uniform login failure message, got %q", body.Error)
	}
}
