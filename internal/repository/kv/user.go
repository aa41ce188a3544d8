package kv

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"suraksha/internal/models"
	"suraksha/internal/repository"
	"suraksha/internal/storage"
)

type userRepositoryImpl struct {
	store storage.Store
	mu    sync.Mutex
}

// NewUserRepository creates a user repository backed by the key-value store
func NewUserRepository(store storage.Store) repository.UserRepository {
	return &userRepositoryImpl{store: store}
}

func (r *userRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := loadList[models.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return err
	}

	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrEmailExists
		}
	}

	users = append(users, *user)
	return saveList(ctx, r.store, storage.KeyUsers, users)
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := loadList[models.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user := users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *userRepositoryImpl) MarkVerified(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := loadList[models.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			users[i].IsVerified = true
			return saveList(ctx, r.store, storage.KeyUsers, users)
		}
	}
	return repository.ErrUserNotFound
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]models.User, error) {
	return loadList[models.User](ctx, r.store, storage.KeyUsers)
}

type sessionRepositoryImpl struct {
	store storage.Store
}

// NewSessionRepository creates a session repository backed by the key-value store
func NewSessionRepository(store storage.Store) repository.SessionRepository {
	return &sessionRepositoryImpl{store: store}
}

func (r *sessionRepositoryImpl) Set(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeySession, string(data))
}

func (r *sessionRepositoryImpl) Get(ctx context.Context) (*models.User, error) {
	raw, found, err := r.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrNoSession
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, repository.ErrNoSession
	}
	return &user, nil
}

func (r *sessionRepositoryImpl) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeySession)
}
