package tokenstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the Redis store writes when none is configured.
const DefaultRedisKey = "authkit:session_token"

var _ Store = (*RedisStore)(nil)

// RedisStore keeps the token in Redis. Intended for host applications that
// already run Redis and want the remembered session shared across restarts
// or instances of the same client profile.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a Redis-backed store. An empty key selects
// DefaultRedisKey. The token is stored verbatim with no TTL; the backend
// owns session expiry.
func NewRedisStore(client redis.UniversalClient, key string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// ErrNilRedisClient is returned when NewRedisStore receives a nil client.
var ErrNilRedisClient = errors.New("tokenstore: nil redis client")

func (s *RedisStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrClearFailed, err)
	}
	return nil
}
