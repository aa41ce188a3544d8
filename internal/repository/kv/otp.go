package kv

import (
	"context"
	"encoding/json"
	"strings"

	"suraksha/internal/models"
	"suraksha/internal/repository"
	"suraksha/internal/storage"
)

type challengeRepositoryImpl struct {
	store storage.Store
}

// NewChallengeRepository creates an OTP challenge repository backed by
// the key-value store. Challenges live under a per-email key.
func NewChallengeRepository(store storage.Store) repository.ChallengeRepository {
	return &challengeRepositoryImpl{store: store}
}

func challengeKey(email string) string {
	return storage.OTPKey(strings.ToLower(email))
}

func (r *challengeRepositoryImpl) Save(ctx context.Context, challenge *models.OTPChallenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, challengeKey(challenge.Email), string(data))
}

func (r *challengeRepositoryImpl) Get(ctx context.Context, email string) (*models.OTPChallenge, error) {
	raw, found, err := r.store.Get(ctx, challengeKey(email))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrChallengeNotFound
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal([]byte(raw), &challenge); err != nil {
		return nil, repository.ErrChallengeNotFound
	}
	return &challenge, nil
}

func (r *challengeRepositoryImpl) Delete(ctx context.Context, email string) error {
	return r.store.Delete(ctx, challengeKey(email))
}
