// Package kvstore provides the observable key-value store Parley keeps
// client state in. Writes publish the new value so subscribers of a key
// see every update as it lands.
package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces the pub/sub channel carrying a key's update
// notifications.
const channelPrefix = "parley:update:"

// Store is the Redis-backed observable key-value store.
type Store struct {
	client *redis.Client
}

// Open connects to the store at redisURL and verifies it is reachable.
func Open(redisURL string) (*Store, error) {
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

	return &Store{client: client}, nil
}

// NewWithClient wraps an existing Redis client.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get returns the value stored under key, or the empty string when the
// key is unset.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key and pushes it to the key's subscribers.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if err := s.client.Publish(ctx, channelPrefix+key, value).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}

// Delete removes key and pushes an empty value to its subscribers.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	if err := s.client.Publish(ctx, channelPrefix+key, "").Err(); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}

// Subscribe starts streaming the values written to key. Close the
// subscription to stop.
func (s *Store) Subscribe(ctx context.Context, key string) (*Subscription, error) {
	pubsub := s.client.Subscribe(ctx, channelPrefix+key)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", key, err)
	}

	sub := &Subscription{
		pubsub:  pubsub,
		updates: make(chan string, 16),
	}
	go sub.pump()
	return sub, nil
}

// Ping checks the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the connection to the store.
func (s *Store) Close() error {
	return s.client.Close()
}

// Subscription streams the values written to one key, oldest first.
type Subscription struct {
	pubsub  *redis.PubSub
	updates chan string
}

func (sub *Subscription) pump() {
	defer close(sub.updates)
	for msg := range sub.pubsub.Channel() {
		sub.updates <- msg.Payload
	}
}

// Updates returns the value stream. It closes when the subscription is
// closed.
func (sub *Subscription) Updates() <-chan string {
	return sub.updates
}

// Close stops the subscription and closes the update stream.
func (sub *Subscription) Close() error {
	return sub.pubsub.Close()
}
