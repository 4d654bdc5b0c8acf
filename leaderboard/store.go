// Package leaderboard persists run metrics into daily sorted sets and ranks them.
package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keys shared by every leaderboard.
const (
	UsernamesKey = "game:usernames"
	CountKey     = "count"
)

// Member is one scored member of a sorted set.
type Member struct {
	ID    string
	Score float64
}

// Store is the key-value backend of the leaderboards.
type Store interface {
	AddScore(ctx context.Context, key, member string, score float64) error
	Members(ctx context.Context, key string) ([]Member, error)
	Score(ctx context.Context, key, member string) (float64, bool, error)
	SetUsername(ctx context.Context, userID, username string) error
	Usernames(ctx context.Context, userIDs []string) (map[string]string, error)
	Count(ctx context.Context) (int64, error)
}

// RedisStore implements Store on Redis sorted sets and hashes.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Dial connects to the Redis server at url (redis://host:port/db) and pings it.
func Dial(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(client), nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) AddScore(ctx context.Context, key, member string, score float64) error {
	if err := s.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("zadd %s: %w", key, err)
	}
	return nil
}

// Members returns every member of key in ascending score order.
func (s *RedisStore) Members(ctx context.Context, key string) ([]Member, error) {
	zs, err := s.client.ZRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("zrange %s: %w", key, err)
	}
	members := make([]Member, 0, len(zs))
	for _, z := range zs {
		id, ok := z.Member.(string)
		if !ok {
			id = fmt.Sprint(z.Member)
		}
		members = append(members, Member{ID: id, Score: z.Score})
	}
	return members, nil
}

// Score returns the member's score, and false when it has none.
func (s *RedisStore) Score(ctx context.Context, key, member string) (float64, bool, error) {
	score, err := s.client.ZScore(ctx, key, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("zscore %s: %w", key, err)
	}
	return score, true, nil
}

func (s *RedisStore) SetUsername(ctx context.Context, userID, username string) error {
	if err := s.client.HSet(ctx, UsernamesKey, userID, username).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", UsernamesKey, err)
	}
	return nil
}

// Usernames resolves user IDs to names. Unknown IDs are absent from the result.
func (s *RedisStore) Usernames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}
	values, err := s.client.HMGet(ctx, UsernamesKey, userIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("hmget %s: %w", UsernamesKey, err)
	}
	for i, v := range values {
		if name, ok := v.(string); ok {
			names[userIDs[i]] = name
		}
	}
	return names, nil
}

// Count returns the shared counter, zero when unset.
func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	n, err := s.client.Get(ctx, CountKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", CountKey, err)
	}
	return n, nil
}
