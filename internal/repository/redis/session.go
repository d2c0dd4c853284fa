package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/kurochkinivan/sheet_ingest/internal/config"
	goredis "github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

func NewClient(ctx context.Context, cfg config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

type sessionClient interface {
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
}

// SessionStore keeps uploader sessions alive while a long upload is running.
type SessionStore struct {
	client sessionClient
	prefix string
	ttl    time.Duration
}

func NewSessionStore(client sessionClient, prefix string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// KeepAlive extends the session TTL, creating the session key when it has already
// expired.
func (s *SessionStore) KeepAlive(ctx context.Context, identity string) error {
	key := s.prefix + identity

	ok, err := s.client.Expire(ctx, key, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to extend session %s: %w", key, err)
	}
	if ok {
		return nil
	}

	if err := s.client.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to create session %s: %w", key, err)
	}

	return nil
}
