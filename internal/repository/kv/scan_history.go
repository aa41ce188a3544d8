package kv

import (
	"context"
	"sync"

	"suraksha/internal/models"
	"suraksha/internal/repository"
	"suraksha/internal/storage"
)

type scanHistoryRepositoryImpl struct {
	store storage.Store
	mu    sync.Mutex
}

// NewScanHistoryRepository creates a scan history repository backed by
// the key-value store, most-recent-first, capped at MaxScanHistoryEntries.
func NewScanHistoryRepository(store storage.Store) repository.ScanHistoryRepository {
	return &scanHistoryRepositoryImpl{store: store}
}

func (r *scanHistoryRepositoryImpl) Insert(ctx context.Context, entry models.ScanHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := loadList[models.ScanHistoryEntry](ctx, r.store, storage.KeyScanHistory)
	if err != nil {
		return err
	}

	entries = append([]models.ScanHistoryEntry{entry}, entries...)
	if len(entries) > repository.MaxScanHistoryEntries {
		entries = entries[:repository.MaxScanHistoryEntries]
	}
	return saveList(ctx, r.store, storage.KeyScanHistory, entries)
}

func (r *scanHistoryRepositoryImpl) List(ctx context.Context) ([]models.ScanHistoryEntry, error) {
	return loadList[models.ScanHistoryEntry](ctx, r.store, storage.KeyScanHistory)
}

func (r *scanHistoryRepositoryImpl) Recent(ctx context.Context, n int) ([]models.ScanHistoryEntry, error) {
	entries, err := loadList[models.ScanHistoryEntry](ctx, r.store, storage.KeyScanHistory)
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
