package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"os"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type AuthService struct {
	userRepo  *repository.UserRepository
	tokens    *TokenManager
	publisher EventPublisher
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo *repository.UserRepository, tokens *TokenManager, publisher EventPublisher) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		publisher: publisher,
	}
}

// Register creates the account and returns a token for it.
func (s *AuthService) Register(ctx context.Context, req entity.CreateUserRequest) (*entity.AuthResponse, error) {
	if req.UserName == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: userName, email and password are required", ErrBadRequest)
	}

	user, err := s.userRepo.CreateUser(entity.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if !errors.Is(err, ErrEmailExists) {
			logger.Error().Err(err).Msg("Error creating user")
		}
		return nil, err
	}

	resp, err := s.authResponse(user)
	if err != nil {
		return nil, err
	}

	logger.Info().Msgf("Registered user %d", user.UserID)
	publish(ctx, s.publisher, newEvent(EventUserRegistered, user.UserID, 0, 0))

	return resp, nil
}

// Login checks the credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, req entity.LoginRequest) (*entity.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrBadRequest)
	}

	user, err := s.userRepo.GetUserByEmailAndPassword(req.Email, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetProfile retrieves a user by ID.
func (s *AuthService) GetProfile(ctx context.Context, userID int) (*entity.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) authResponse(user entity.User) (*entity.AuthResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		logger.Error().Err(err).Msgf("Error generating token for user %d", user.UserID)
		return nil, err
	}

	return &entity.AuthResponse{
		Token:    token,
		UserID:   user.UserID,
		UserName: user.UserName,
		Email:    user.Email,
	}, nil
}
