package usecase

import (
	"context"
	"errors"
	"testing"

	"user-management/internal/dto/request"

	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	users := newTestUserService(repo)
	auth := NewAuthService(repo, zap.NewNop())

	created, err := users.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := auth.Login(context.Background(), &request.LoginRequest{Username: "ana1", Password: "p1"})
		if err != nil {
			t.Fatalf("login: %v", err)
		}

		profile := resp.Usuario
		if profile.ID != created.ID || profile.Name != "Ana" || profile.Username != "ana1" || profile.Email != "a@x.com" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), &request.LoginRequest{Username: "ana1", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		// Failure is undifferentiated: same error as a wrong password
		_, err := auth.Login(context.Background(), &request.LoginRequest{Username: "ghost", Password: "p1"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("case sensitive username", func(t *testing.T) {
		_, err := auth.Login(context.Background(), &request.LoginRequest{Username: "ANA1", Password: "p1"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
