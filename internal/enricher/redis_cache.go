package enricher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const tokenNameKeyPrefix = "inspector:token_name"

// RedisTokenNameCache shares resolved token names between runs. Redis errors are
// logged and reported as misses, the cache never turns into a failure path.
type RedisTokenNameCache struct {
	client  redis.UniversalClient
	chainID string
	ttl     time.Duration
}

func NewRedisTokenNameCache(client redis.UniversalClient, chainID string, ttl time.Duration) *RedisTokenNameCache {
	return &RedisTokenNameCache{client: client, chainID: chainID, ttl: ttl}
}

func (c *RedisTokenNameCache) key(address gethCommon.Address) string {
	return fmt.Sprintf("%s:%s:%s", tokenNameKeyPrefix, c.chainID, strings.ToLower(address.Hex()))
}

func (c *RedisTokenNameCache) Get(ctx context.Context, address gethCommon.Address) (string, bool) {
	name, err := c.client.Get(ctx, c.key(address)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("address", address.Hex()).Msg("Failed to read token name from redis")
		}
		return "", false
	}
	return name, true
}

func (c *RedisTokenNameCache) Set(ctx context.Context, address gethCommon.Address, name string) {
	if err := c.client.Set(ctx, c.key(address), name, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("address", address.Hex()).Msg("Failed to store token name in redis")
	}
}
