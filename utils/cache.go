package utils

import (
	"context"
	"log"
	"sync"
	"time"

	"onehour/config"

	"github.com/go-redis/redis/v8"
)

var (
	// QueueClient backs the notification queue and health checks.
	QueueClient *redis.Client
	queueOnce   sync.Once
)

// InitQueueRedis initializes the Redis client for the notification queue DB.
func InitQueueRedis() {
	QueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QueueClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Queue): %v", err)
	}
}

// GetQueueRedisClient returns the queue Redis client. First use is guarded so
// concurrent callers never construct the client twice.
func GetQueueRedisClient() *redis.Client {
	queueOnce.Do(InitQueueRedis)
	return QueueClient
}
