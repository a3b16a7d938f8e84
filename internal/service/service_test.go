package service

import (
	"context"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
	"sync"
	"time"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.ShopEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event entity.ShopEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []string{}
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	users     *repository.UserRepository
	catalog   *repository.CatalogRepository
	tokens    *TokenManager
	publisher *recordingPublisher
	auth      *AuthService
	favorites *FavoritesService
	cart      *CartService
}

func newFixture(sneakers []entity.Sneaker) *fixture {
	f := &fixture{
		users:     repository.NewUserRepository(),
		catalog:   repository.NewCatalogRepository(sneakers),
		tokens:    NewTokenManager(testTokenConfig()),
		publisher: &recordingPublisher{},
	}
	f.auth = NewAuthService(f.users, f.tokens, f.publisher)
	f.favorites = NewFavoritesService(f.users, f.catalog, f.publisher)
	f.cart = NewCartService(f.users, f.catalog, f.publisher)
	return f
}

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:   "test-secret",
		Issuer:   "http://0.0.0.0:8080/",
		Audience: "http://0.0.0.0:8080/hello",
		TTL:      60 * time.Second,
	}
}

func (f *fixture) register(email string) *entity.AuthResponse {
	resp, err := f.auth.Register(context.Background(), entity.CreateUserRequest{
		UserName: "user",
		Email:    email,
		Password: "pw",
	})
	if err != nil {
		panic(err)
	}
	return resp
}
