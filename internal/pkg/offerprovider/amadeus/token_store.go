package amadeus

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenKey = "amadeus:access_token"

// TokenStore caches the OAuth2 access token between requests.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string, ttl time.Duration) error
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisTokenStore keeps the token in Redis so every process instance shares
// one token and its expiry.
type RedisTokenStore struct {
	redis RedisClient
}

func NewRedisTokenStore(redisClient RedisClient) *RedisTokenStore {
	return &RedisTokenStore{redis: redisClient}
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.redis.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}

		return "", err
	}

	return token, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	return s.redis.Set(ctx, tokenKey, token, ttl).Err()
}
