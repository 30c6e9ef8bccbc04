package geo

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const geocodeCacheTTL = 24 * time.Hour

// CachedGeocoder wraps a Geocoder with a Redis lookup keyed by the
// normalized address. Cache errors degrade to a live geocoder call.
type CachedGeocoder struct {
	next   Geocoder
	client *redis.Client
	logger *slog.Logger
}

func NewCachedGeocoder(next Geocoder, client *redis.Client, logger *slog.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		next:   next,
		client: client,
		logger: logger,
	}
}

func cacheKey(address string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (cg *CachedGeocoder) Geocode(ctx context.Context, address string) (Coordinates, error) {
	key := cacheKey(address)

	if raw, err := cg.client.Get(ctx, key).Result(); err == nil {
		var coords Coordinates
		if err := json.Unmarshal([]byte(raw), &coords); err == nil {
			return coords, nil
		}
	} else if err != redis.Nil {
		cg.logger.Warn("geocode cache read failed", "key", key, "error", err)
	}

	coords, err := cg.next.Geocode(ctx, address)
	if err != nil {
		return Coordinates{}, err
	}

	if raw, err := json.Marshal(coords); err == nil {
		if err := cg.client.Set(ctx, key, raw, geocodeCacheTTL).Err(); err != nil {
			cg.logger.Warn("geocode cache write failed", "key", key, "error", err)
		}
	}

	return coords, nil
}
