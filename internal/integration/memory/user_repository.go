package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// userRepository implements adapter.UserRepository over the volatile store.
type userRepository struct {
	store *Store
}

// NewUserRepository creates a new volatile user repository.
func NewUserRepository(store *Store) adapter.UserRepository {
	return &userRepository{store: store}
}

// Create creates a new user, enforcing username uniqueness.
func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return domainerror.ErrUsernameTaken
		}
	}

	r.store.users[user.ID] = copyUser(user)
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return copyUser(user), nil
}

// FindByUsername retrieves a user by their unique username.
func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// ExistsByUsername checks if a user with the given username exists.
func (r *userRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}
