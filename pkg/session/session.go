// Package session is the auth provider's session half: opaque tokens mapped
// to identities in Redis. Credential verification lives at the sign-in
// handler; everything here is token lifecycle.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	redisclient "github.com/redis/go-redis/v9"

	"gamestore-api/pkg/models"
	"gamestore-api/pkg/redis"
)

const sessionTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// Create issues a fresh opaque token for the identity and stores it with a
// 24h sliding expiry.
func Create(ctx context.Context, identity models.Identity) (string, error) {
	client := redis.RedisClient()
	defer client.Close()

	identityJSON, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session identity: %w", err)
	}

	token := uuid.NewString()
	if err := client.Set(ctx, sessionKey(token), identityJSON, sessionTTL).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Get resolves a token to its identity, refreshing the expiry on hit.
func Get(ctx context.Context, token string) (*models.Identity, error) {
	client := redis.RedisClient()
	defer client.Close()

	identityJSON, err := client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(identityJSON), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session identity: %w", err)
	}

	client.Expire(ctx, sessionKey(token), sessionTTL)

	return &identity, nil
}

// Delete signs the token out. Deleting an unknown token is a no-op.
func Delete(ctx context.Context, token string) error {
	client := redis.RedisClient()
	defer client.Close()

	return client.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
