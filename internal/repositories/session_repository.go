package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Meyyun/HobbyHub/internal/models"
	"github.com/go-redis/redis/v8"
)

// SessionRepository stores the cached session identity and per-user
// preferences, the server-side counterpart of the key-value cache the
// client keeps across reloads. A missing entry is not an error: both
// getters return zero values on a cache miss.
type SessionRepository interface {
	PutIdentity(ctx context.Context, userID uint, identity *models.SessionIdentity) error
	GetIdentity(ctx context.Context, userID uint) (*models.SessionIdentity, error)
	DeleteIdentity(ctx context.Context, userID uint) error
	PutTheme(ctx context.Context, userID uint, theme string) error
	GetTheme(ctx context.Context, userID uint) (string, error)
}

// RedisSessionRepository implements SessionRepository on Redis
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository. The
// TTL tracks the 72h token lifetime so stale identities age out.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: 72 * time.Hour}
}

func identityKey(userID uint) string { return fmt.Sprintf("travel:user:%d", userID) }
func themeKey(userID uint) string    { return fmt.Sprintf("travel:theme:%d", userID) }

// PutIdentity caches the session identity for a user
func (r *RedisSessionRepository) PutIdentity(ctx context.Context, userID uint, identity *models.SessionIdentity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, identityKey(userID), payload, r.ttl).Err()
}

// GetIdentity returns the cached identity, or nil on a cache miss
func (r *RedisSessionRepository) GetIdentity(ctx context.Context, userID uint) (*models.SessionIdentity, error) {
	payload, err := r.client.Get(ctx, identityKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var identity models.SessionIdentity
	if err := json.Unmarshal([]byte(payload), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// DeleteIdentity clears the cached identity on sign-out
func (r *RedisSessionRepository) DeleteIdentity(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, identityKey(userID)).Err()
}

// PutTheme stores the UI theme preference for a user
func (r *RedisSessionRepository) PutTheme(ctx context.Context, userID uint, theme string) error {
	return r.client.Set(ctx, themeKey(userID), theme, 0).Err()
}

// GetTheme returns the stored theme, or "" when none was ever set
func (r *RedisSessionRepository) GetTheme(ctx context.Context, userID uint) (string, error) {
	theme, err := r.client.Get(ctx, themeKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}
