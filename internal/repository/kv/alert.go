package kv

import (
	"context"
	"sync"

	"suraksha/internal/models"
	"suraksha/internal/repository"
	"suraksha/internal/storage"

	"github.com/google/uuid"
)

type alertRepositoryImpl struct {
	store storage.Store
	mu    sync.Mutex
}

// NewAlertRepository creates an alert repository backed by the key-value
// store. The list is kept most-recent-first and truncated to MaxAlerts.
func NewAlertRepository(store storage.Store) repository.AlertRepository {
	return &alertRepositoryImpl{store: store}
}

func (r *alertRepositoryImpl) Insert(ctx context.Context, alert models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alerts, err := loadList[models.Alert](ctx, r.store, storage.KeyAlerts)
	if err != nil {
		return err
	}

	alerts = append([]models.Alert{alert}, alerts...)
	if len(alerts) > repository.MaxAlerts {
		alerts = alerts[:repository.MaxAlerts]
	}
	return saveList(ctx, r.store, storage.KeyAlerts, alerts)
}

// Resolve flips the alert's status to resolved. A missing id is a no-op.
func (r *alertRepositoryImpl) Resolve(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alerts, err := loadList[models.Alert](ctx, r.store, storage.KeyAlerts)
	if err != nil {
		return err
	}

	for i := range alerts {
		if alerts[i].ID == id {
			alerts[i].Status = models.StatusResolved
			return saveList(ctx, r.store, storage.KeyAlerts, alerts)
		}
	}
	return nil
}

// Delete removes the alert by id. A missing id is a no-op.
func (r *alertRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alerts, err := loadList[models.Alert](ctx, r.store, storage.KeyAlerts)
	if err != nil {
		return err
	}

	for i := range alerts {
		if alerts[i].ID == id {
			alerts = append(alerts[:i], alerts[i+1:]...)
			return saveList(ctx, r.store, storage.KeyAlerts, alerts)
		}
	}
	return nil
}

func (r *alertRepositoryImpl) List(ctx context.Context) ([]models.Alert, error) {
	return loadList[models.Alert](ctx, r.store, storage.KeyAlerts)
}
