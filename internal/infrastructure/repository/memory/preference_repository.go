package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
)

type PreferenceRepository struct {
	mu       sync.RWMutex
	byClient map[string]preference.Values
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{byClient: make(map[string]preference.Values)}
}

func (r *PreferenceRepository) Get(_ context.Context, clientID string) (preference.Values, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byClient[clientID]
	out := make(preference.Values, len(stored))
	for key, value := range stored {
		out[key] = value
	}
	return out, nil
}

// Put upserts the given keys and leaves other stored keys untouched.
func (r *PreferenceRepository) Put(_ context.Context, clientID string, values preference.Values) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byClient[clientID]
	if !ok {
		stored = make(preference.Values, len(values))
		r.byClient[clientID] = stored
	}
	for key, value := range values {
		stored[key] = value
	}
	return nil
}
