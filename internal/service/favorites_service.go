package service

import (
	"context"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
)

type FavoritesService struct {
	userRepo  *repository.UserRepository
	catalog   *repository.CatalogRepository
	publisher EventPublisher
}

// NewFavoritesService creates a new instance of FavoritesService.
func NewFavoritesService(userRepo *repository.UserRepository, catalog *repository.CatalogRepository, publisher EventPublisher) *FavoritesService {
	return &FavoritesService{
		userRepo:  userRepo,
		catalog:   catalog,
		publisher: publisher,
	}
}

// List returns the user's favorite sneakers in catalog order. Ids that no
// longer exist in the catalog are skipped.
func (s *FavoritesService) List(ctx context.Context, userID int) ([]entity.Sneaker, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	favorites := []entity.Sneaker{}
	for _, sn := range s.catalog.GetSneakers() {
		if user.HasFavorite(sn.ID) {
			favorites = append(favorites, sn)
		}
	}
	return favorites, nil
}

// Add marks the sneaker as a favorite. Adding the same sneaker twice fails
// with ErrAlreadyFavorite.
func (s *FavoritesService) Add(ctx context.Context, userID, sneakerID int) error {
	_, err := s.userRepo.UpdateUser(userID, func(user *entity.User) error {
		if !s.catalog.Exists(sneakerID) {
			return ErrSneakerNotFound
		}
		if user.HasFavorite(sneakerID) {
			return ErrAlreadyFavorite
		}
		user.FavoriteSneakerIDs = append(user.FavoriteSneakerIDs, sneakerID)
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, newEvent(EventFavoriteAdded, userID, sneakerID, 0))
	return nil
}

// Remove drops the sneaker from favorites. Removing an absent id succeeds.
func (s *FavoritesService) Remove(ctx context.Context, userID, sneakerID int) error {
	_, err := s.userRepo.UpdateUser(userID, func(user *entity.User) error {
		user.RemoveFavorite(sneakerID)
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, newEvent(EventFavoriteRemoved, userID, sneakerID, 0))
	return nil
}
