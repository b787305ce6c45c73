package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamestore-api/pkg/models"
)

const gameCacheTTL = 24 * time.Hour

// CacheGame stores a single game in the cache keyed by record id. Callers
// refresh the cache only after the record store write has succeeded, so a
// cached game never runs ahead of the source of truth.
func CacheGame(ctx context.Context, game *models.Game) error {
	client := RedisClient()
	defer client.Close()

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game %s: %w", game.ID.Hex(), err)
	}

	pipe := client.TxPipeline()

	gameKey := fmt.Sprintf("game:%s", game.ID.Hex())
	pipe.Set(ctx, gameKey, gameJSON, gameCacheTTL)

	// Genre membership list for warm filtered listings
	genreKey := fmt.Sprintf("genre:%s", game.Genre)
	pipe.LRem(ctx, genreKey, 0, game.ID.Hex())
	pipe.LPush(ctx, genreKey, game.ID.Hex())
	pipe.Expire(ctx, genreKey, gameCacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute Redis pipeline for game %s: %w", game.ID.Hex(), err)
	}

	return nil
}

// GetGameFromCache retrieves a cached game by record id.
func GetGameFromCache(ctx context.Context, id string) (*models.Game, error) {
	client := RedisClient()
	defer client.Close()

	gameKey := fmt.Sprintf("game:%s", id)
	gameJSON, err := client.Get(ctx, gameKey).Result()
	if err != nil {
		return nil, err
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// RemoveGameFromCache drops a game and its genre membership after deletion.
func RemoveGameFromCache(ctx context.Context, game *models.Game) error {
	client := RedisClient()
	defer client.Close()

	pipe := client.TxPipeline()

	gameKey := fmt.Sprintf("game:%s", game.ID.Hex())
	pipe.Del(ctx, gameKey)

	genreKey := fmt.Sprintf("genre:%s", game.Genre)
	pipe.LRem(ctx, genreKey, 0, game.ID.Hex())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove game from Redis cache: %w", err)
	}

	return nil
}
