package user

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/entities"
	"Cookshare-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) UserService {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

func TestRegister_ReturnsToken(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "cook",
		Email:    "Cook@Example.Com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
	if res.Email != "cook@example.com" {
		t.Fatalf("expected normalized email, got %q", res.Email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := domain.RegisterRequest{Username: "cook", Email: "cook@example.com", Password: "secret123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, req)
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegister_BlankCredentials(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Username: "cook"})
	if !errors.Is(err, domain.ErrEmailPasswordBlank) {
		t.Fatalf("expected ErrEmailPasswordBlank, got %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "cook", Email: "cook@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "COOK@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "cook", Email: "cook@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(ctx, domain.LoginRequest{Email: "cook@example.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid, got %v", err)
	}
}
