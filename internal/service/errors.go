package service

import (
	"errors"
	"sneaker-shop/internal/repository"
)

var (
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrEmailExists        = repository.ErrEmailExists
	ErrSneakerNotFound    = errors.New("sneaker not found")
	ErrAlreadyFavorite    = errors.New("sneaker already in favorites")
	ErrInvalidToken       = errors.New("invalid token")
)
