package kv

import (
	"context"
	"sync"

	"suraksha/internal/models"
	"suraksha/internal/repository"
	"suraksha/internal/storage"
)

type breachRepositoryImpl struct {
	store storage.Store
	mu    sync.Mutex
}

// NewBreachRepository creates a breach repository backed by the key-value store
func NewBreachRepository(store storage.Store) repository.BreachRepository {
	return &breachRepositoryImpl{store: store}
}

func (r *breachRepositoryImpl) Replace(ctx context.Context, breaches []models.Breach) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return saveList(ctx, r.store, storage.KeyBreaches, breaches)
}

func (r *breachRepositoryImpl) List(ctx context.Context) ([]models.Breach, error) {
	return loadList[models.Breach](ctx, r.store, storage.KeyBreaches)
}

type notificationRepositoryImpl struct {
	store storage.Store
	mu    sync.Mutex
}

// NewNotificationRepository creates an email notification history
// repository, most-recent-first, capped at MaxEmailNotifications.
func NewNotificationRepository(store storage.Store) repository.NotificationRepository {
	return &notificationRepositoryImpl{store: store}
}

func (r *notificationRepositoryImpl) Insert(ctx context.Context, analysis models.EmailAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, err := loadList[models.EmailAnalysis](ctx, r.store, storage.KeyNotifications)
	if err != nil {
		return err
	}

	history = append([]models.EmailAnalysis{analysis}, history...)
	if len(history) > repository.MaxEmailNotifications {
		history = history[:repository.MaxEmailNotifications]
	}
	return saveList(ctx, r.store, storage.KeyNotifications, history)
}

func (r *notificationRepositoryImpl) List(ctx context.Context) ([]models.EmailAnalysis, error) {
	return loadList[models.EmailAnalysis](ctx, r.store, storage.KeyNotifications)
}
