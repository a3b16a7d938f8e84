package repository

import (
	"errors"
	"sneaker-shop/internal/entity"
	"sync"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

// UserRepository keeps every registered user in memory. All writes go
// through a single lock, so id assignment and read-modify-write updates are
// atomic with respect to concurrent requests.
type UserRepository struct {
	mu      sync.RWMutex
	users   map[int]entity.User
	byEmail map[string]int
	lastID  int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[int]entity.User),
		byEmail: make(map[string]int),
	}
}

// CreateUser assigns the next id and stores the user. Emails are matched exactly.
func (r *UserRepository) CreateUser(user entity.User) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return entity.User{}, ErrEmailExists
	}

	r.lastID++
	user.UserID = r.lastID
	if user.FavoriteSneakerIDs == nil {
		user.FavoriteSneakerIDs = []int{}
	}
	stored := user.Clone()
	r.users[stored.UserID] = stored
	r.byEmail[stored.Email] = stored.UserID

	return stored.Clone(), nil
}

func (r *UserRepository) GetUserByID(id int) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return entity.User{}, ErrUserNotFound
	}
	return user.Clone(), nil
}

func (r *UserRepository) GetUserByEmailAndPassword(email, password string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return entity.User{}, ErrUserNotFound
	}
	user := r.users[id]
	if user.Password != password {
		return entity.User{}, ErrUserNotFound
	}
	return user.Clone(), nil
}

// UpdateUser runs fn against a copy of the user under the write lock and
// stores the copy only if fn succeeds.
func (r *UserRepository) UpdateUser(id int, fn func(user *entity.User) error) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[id]
	if !ok {
		return entity.User{}, ErrUserNotFound
	}

	updated := current.Clone()
	if err := fn(&updated); err != nil {
		return entity.User{}, err
	}
	updated.UserID = current.UserID
	updated.Email = current.Email
	r.users[id] = updated

	return updated.Clone(), nil
}

// Count returns the number of registered users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
