package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Summary caching keeps repeated dashboard-style queries off Postgres for a
// short window. Writes to the ledger must invalidate the whole namespace.
type IRedis interface {
	SetSummary(ctx context.Context, key string, payload string, expiration time.Duration) error
	GetSummary(ctx context.Context, key string) (string, error)
	InvalidateSummaries(ctx context.Context) error
}

type redisClient struct {
	client *redis.Client
}

const summaryKeyPrefix = "ledger:summary:"

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetSummary(ctx context.Context, key string, payload string, expiration time.Duration) error {
	err := r.client.Set(ctx, summaryKeyPrefix+key, payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching summary %s: %v", key, err))
		return err
	}
	logrus.Debug(fmt.Sprintf("Cached summary %s for %v", key, expiration))
	return nil
}

func (r *redisClient) GetSummary(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, summaryKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading cached summary %s: %v", key, err))
		return "", err
	}
	return val, nil
}

// InvalidateSummaries drops every cached summary. Called after any write to
// the transactions table so stale totals never outlive a mutation.
func (r *redisClient) InvalidateSummaries(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, summaryKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error scanning summary keys: %v", err))
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error invalidating summaries: %v", err))
		return err
	}
	logrus.Debug(fmt.Sprintf("Invalidated %d cached summaries", len(keys)))
	return nil
}

// IsCacheMiss reports whether err is a plain key-not-found from Redis.
func IsCacheMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}
