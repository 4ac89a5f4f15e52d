package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"medcore-clinic/config"
	"medcore-clinic/internal/delivery/dto"
	repoImpl "medcore-clinic/internal/repository"
	"medcore-clinic/internal/seed"
	"medcore-clinic/internal/service"
	"medcore-clinic/pkg/jwt"

	"github.com/sirupsen/logrus"
)

func newAuthEnv() (AuthUsecase, *jwt.JWTService) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Hour,
	})
	userRepo := repoImpl.NewUserRepository(seed.Users())
	audit := service.NewAuditService(log, repoImpl.NewAuditLogRepository())

	return NewAuthUsecase(log, userRepo, jwtService, audit), jwtService
}

func TestLoginMintsValidToken(t *testing.T) {
	auth, jwtService := newAuthEnv()

	tokens, err := auth.Login(context.Background(), &dto.LoginRequest{UserID: "user-doctor"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if tokens.User.Role != "doctor" {
		t.Errorf("role = %s, want doctor", tokens.User.Role)
	}
	if tokens.ExpiresIn != 3600 {
		t.Errorf("expires_in = %d, want 3600", tokens.ExpiresIn)
	}

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-doctor" || claims.Role != "doctor" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	auth, _ := newAuthEnv()

	if _, err := auth.Login(context.Background(), &dto.LoginRequest{UserID: "user-nobody"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsersCoversEveryWard(t *testing.T) {
	auth, _ := newAuthEnv()

	users, err := auth.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if users.Total != 4 {
		t.Fatalf("expected 4 users, got %d", users.Total)
	}

	roles := map[string]bool{}
	for _, u := range users.Users {
		roles[u.Role] = true
	}
	for _, role := range []string{"recepcion", "triaje", "doctor", "farmacia"} {
		if !roles[role] {
			t.Errorf("missing ward role %s", role)
		}
	}
}
