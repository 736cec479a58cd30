package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps a go-redis client. It is constructed once in main and passed
// to whatever needs it.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis and verifies the connection with a ping
func New(url, password string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	if password != "" {
		opts.Password = password
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}

// NewFromClient wraps an existing go-redis client (used for testing)
func NewFromClient(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Set stores a key-value pair with expiration
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key. Returns redis.Nil for a missing key.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

// Del removes a key
func (c *Client) Del(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// SetNX sets a key only if it does not exist
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key, value, expiration).Result()
}

// Ping checks the connection
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Nil is the sentinel returned by Get for a missing key
var Nil = redis.Nil
