// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"courtside/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// DraftCacheClient holds in-progress financial aid drafts.
	DraftCacheClient *redis.Client
	// ChatCacheClient holds weather assistant conversation history.
	ChatCacheClient *redis.Client
)

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	GetCacheClient()
	GetDraftCacheClient()
	GetChatCacheClient()
}

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetDraftCacheClient returns the Redis client holding aid application drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
	}
	return DraftCacheClient
}

// GetChatCacheClient returns the Redis client for assistant chat history.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		ChatCacheClient = newRedisClient(config.AppConfig.RedisChatDB)
	}
	return ChatCacheClient
}
