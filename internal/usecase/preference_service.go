package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

const maxClientIDLength = 128

type PreferenceService struct {
	repo   preference.Repository
	logger *logging.Logger
}

func NewPreferenceService(repo preference.Repository, logger *logging.Logger) *PreferenceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PreferenceService{repo: repo, logger: logger}
}

// Get resolves the client's stored preferences over the defaults. A client
// with nothing stored gets the defaults.
func (s *PreferenceService) Get(ctx context.Context, clientID string) (preference.Preferences, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.Get")
	defer span.End()

	clientID, err := normalizeClientID(clientID)
	if err != nil {
		return preference.Preferences{}, err
	}

	values, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return preference.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return preference.Resolve(values), nil
}

// Stored returns only the client's stored values that still validate, so a
// caller can tell an explicit choice from a default.
func (s *PreferenceService) Stored(ctx context.Context, clientID string) (preference.Values, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.Stored")
	defer span.End()

	clientID, err := normalizeClientID(clientID)
	if err != nil {
		return nil, err
	}

	values, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	out := make(preference.Values, len(values))
	for key, value := range values {
		if preference.Validate(key, value) == nil {
			out[key] = value
		}
	}
	return out, nil
}

// Set validates and stores the given keys; keys not given keep their value.
func (s *PreferenceService) Set(ctx context.Context, clientID string, values preference.Values) (preference.Preferences, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.Set")
	defer span.End()

	clientID, err := normalizeClientID(clientID)
	if err != nil {
		return preference.Preferences{}, err
	}
	if len(values) == 0 {
		return preference.Preferences{}, fmt.Errorf("%w: no preferences given", ErrInvalidInput)
	}

	clean := make(preference.Values, len(values))
	for key, value := range values {
		value = strings.TrimSpace(value)
		if err := preference.Validate(key, value); err != nil {
			return preference.Preferences{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
		}
		clean[key] = value
	}

	if err := s.repo.Put(ctx, clientID, clean); err != nil {
		return preference.Preferences{}, fmt.Errorf("put preferences: %w", err)
	}
	s.logger.InfoContext(ctx, "preferences updated", "client_id", clientID, "keys", len(clean))

	stored, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return preference.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return preference.Resolve(stored), nil
}

func normalizeClientID(clientID string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if len(clientID) > maxClientIDLength {
		return "", fmt.Errorf("%w: client id is too long", ErrInvalidInput)
	}
	return clientID, nil
}
