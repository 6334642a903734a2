package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
)

const defaultKeyPrefix = "pl:preferences:"

// PreferenceRepository keeps one hash per client: field = preference key.
// The hash expiry is refreshed on every write.
type PreferenceRepository struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewPreferenceRepository(client *goredis.Client, ttl time.Duration) *PreferenceRepository {
	return &PreferenceRepository{client: client, prefix: defaultKeyPrefix, ttl: ttl}
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, rawURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (r *PreferenceRepository) key(clientID string) string {
	return r.prefix + clientID
}

func (r *PreferenceRepository) Get(ctx context.Context, clientID string) (preference.Values, error) {
	fields, err := r.client.HGetAll(ctx, r.key(clientID)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall preferences: %w", err)
	}

	out := make(preference.Values, len(fields))
	for field, value := range fields {
		key := preference.Key(field)
		if !key.Valid() {
			continue
		}
		out[key] = value
	}
	return out, nil
}

func (r *PreferenceRepository) Put(ctx context.Context, clientID string, values preference.Values) error {
	if len(values) == 0 {
		return nil
	}

	fields := make(map[string]any, len(values))
	for key, value := range values {
		fields[string(key)] = value
	}

	key := r.key(clientID)
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("hset preferences: %w", err)
	}
	return nil
}
