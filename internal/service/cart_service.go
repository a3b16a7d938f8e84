package service

import (
	"context"
	"fmt"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
)

const (
	FreeDeliveryThreshold = 500.0
	DeliveryFee           = 60.0

	// MaxLineQuantity bounds a single cart line; Total lists every occurrence.
	MaxLineQuantity = 100
)

type CartService struct {
	userRepo  *repository.UserRepository
	catalog   *repository.CatalogRepository
	publisher EventPublisher
}

// NewCartService creates a new instance of CartService.
func NewCartService(userRepo *repository.UserRepository, catalog *repository.CatalogRepository, publisher EventPublisher) *CartService {
	return &CartService{
		userRepo:  userRepo,
		catalog:   catalog,
		publisher: publisher,
	}
}

// Add puts one more occurrence of sneakerID into the cart. The id is not
// checked against the catalog; unknown ids are dropped when the cart is read.
func (s *CartService) Add(ctx context.Context, userID, sneakerID int) error {
	user, err := s.userRepo.UpdateUser(userID, func(user *entity.User) error {
		if user.Cart.Quantity(sneakerID) >= MaxLineQuantity {
			return fmt.Errorf("%w: at most %d of one sneaker per cart", ErrBadRequest, MaxLineQuantity)
		}
		user.Cart.Add(sneakerID)
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, newEvent(EventCartItemAdded, userID, sneakerID, user.Cart.Quantity(sneakerID)))
	return nil
}

// View returns one entry per distinct sneaker with quantity set to the
// number of occurrences.
func (s *CartService) View(ctx context.Context, userID int) ([]entity.Sneaker, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	items := []entity.Sneaker{}
	for _, line := range user.Cart.Lines {
		sn, ok := s.catalog.GetSneakerByID(line.SneakerID)
		if !ok {
			continue
		}
		sn.Quantity = line.Quantity
		items = append(items, sn)
	}
	return items, nil
}

// Remove drops a single occurrence of sneakerID.
func (s *CartService) Remove(ctx context.Context, userID, sneakerID int) error {
	user, err := s.userRepo.UpdateUser(userID, func(user *entity.User) error {
		user.Cart.RemoveOne(sneakerID)
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, newEvent(EventCartItemRemoved, userID, sneakerID, user.Cart.Quantity(sneakerID)))
	return nil
}

// RemoveAll drops every occurrence of sneakerID.
func (s *CartService) RemoveAll(ctx context.Context, userID, sneakerID int) error {
	if _, err := s.userRepo.UpdateUser(userID, func(user *entity.User) error {
		user.Cart.RemoveAll(sneakerID)
		return nil
	}); err != nil {
		return err
	}

	publish(ctx, s.publisher, newEvent(EventCartLineRemoved, userID, sneakerID, 0))
	return nil
}

// UpdateQuantity replaces the line for productID with exactly quantity
// occurrences. Zero removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrBadRequest)
	}
	if quantity > MaxLineQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrBadRequest, MaxLineQuantity)
	}

	if _, err := s.userRepo.UpdateUser(userID, func(user *entity.User) error {
		user.Cart.SetQuantity(productID, quantity)
		return nil
	}); err != nil {
		return err
	}

	publish(ctx, s.publisher, newEvent(EventCartLineQuantity, userID, productID, quantity))
	return nil
}

// Total prices the cart. Items are listed once per occurrence; delivery is
// free only when the sum is strictly above FreeDeliveryThreshold.
func (s *CartService) Total(ctx context.Context, userID int) (*entity.CartTotal, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	total := &entity.CartTotal{Items: []entity.Sneaker{}}
	for _, id := range user.Cart.IDs() {
		sn, ok := s.catalog.GetSneakerByID(id)
		if !ok {
			continue
		}
		total.Items = append(total.Items, sn)
		total.Total += sn.Price
	}

	total.Delivery = DeliveryFee
	if total.Total > FreeDeliveryThreshold {
		total.Delivery = 0
	}
	total.FinalTotal = total.Total + total.Delivery

	return total, nil
}
