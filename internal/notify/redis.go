package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisChannel = "portfolio.updated"

// Redis is a Broadcaster backed by a Redis pub/sub channel, for
// deployments where admin and public processes (or multiple instances)
// must see each other's writes without waiting for a page reload.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the given Redis URL and verifies the connection.
func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Redis{client: client}, nil
}

// NewRedisWithClient wraps an existing Redis client.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

var _ Broadcaster = (*Redis)(nil)

// Publish sends one invalidation tick over the pub/sub channel.
func (r *Redis) Publish(ctx context.Context) error {
	if err := r.client.Publish(ctx, redisChannel, "1").Err(); err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}
	return nil
}

// Subscribe listens on the pub/sub channel and forwards one tick per
// received message until stop is called or ctx is cancelled.
func (r *Redis) Subscribe(ctx context.Context) (<-chan struct{}, func()) {
	pubsub := r.client.Subscribe(ctx, redisChannel)
	out := make(chan struct{}, 1)

	go func() {
		for range pubsub.Channel() {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()

	stop := func() {
		_ = pubsub.Close()
	}
	return out, stop
}

// Close releases the underlying Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}
