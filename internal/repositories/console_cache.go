package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

const consoleCacheKey = "consoles:all"

// ConsoleCacheRepository caches the console reference list in Redis.
type ConsoleCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached list
}

// NewConsoleCacheRepository creates a new cache repository with the given TTL.
func NewConsoleCacheRepository(client *redis.Client, expiration time.Duration) *ConsoleCacheRepository {
	return &ConsoleCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetAll returns the cached console list, or (nil, nil) on a cache miss.
func (r *ConsoleCacheRepository) GetAll(ctx context.Context) ([]models.Console, error) {
	val, err := r.client.Get(ctx, consoleCacheKey).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", consoleCacheKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var consoles []models.Console
	if err := json.Unmarshal([]byte(val), &consoles); err != nil {
		logger.Log.Errorw("cache payload corrupt",
			"key", consoleCacheKey,
			"error", err,
		)
		return nil, err
	}

	return consoles, nil
}

// SetAll caches the console list with the configured expiration.
func (r *ConsoleCacheRepository) SetAll(ctx context.Context, consoles []models.Console) error {
	data, err := json.Marshal(consoles)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, consoleCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", consoleCacheKey,
		"count", len(consoles),
		"error", err,
	)

	return err
}
