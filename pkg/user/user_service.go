package user

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/entities"
	"Cookshare-Backend/internal/utils/mailing"
	"Cookshare-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return domain.AuthResponse{}, domain.ErrEmailPasswordBlank
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := entities.User{
		Username: req.Username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.AuthResponse{}, err
	}

	// best effort, failures never block registration
	go func() {
		body := fmt.Sprintf("<p>Hi %s, welcome to Cookshare. Start sharing your recipes!</p>", user.Username)
		_ = mailing.SendMail(user.Email, "Welcome to Cookshare", body)
	}()

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)

	return domain.AuthResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)

	return domain.AuthResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
