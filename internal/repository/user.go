package repository

import (
	"context"
	"fmt"

	"github.com/minicart/minicart-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user model.User) error
	Get(ctx context.Context, username string) (model.User, error)
}

type memUserRepo struct{ store *Store }

func NewUserRepository(store *Store) UserRepository {
	return &memUserRepo{store: store}
}

func (r *memUserRepo) Create(_ context.Context, user model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return fmt.Errorf("user %q: %w", user.Username, ErrUserExists)
	}
	s.users[user.Username] = user
	return nil
}

func (r *memUserRepo) Get(_ context.Context, username string) (model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return model.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return user, nil
}
