package redisx

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// BannerStore persists the hero banner URL list, rehydrated on startup.
type BannerStore struct{ RDB *redis.Client }

func (b *BannerStore) SaveBanners(ctx context.Context, urls []string) error {
	raw, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	return b.RDB.Set(ctx, KeyBanners, raw, 0).Err()
}

func (b *BannerStore) LoadBanners(ctx context.Context) ([]string, error) {
	raw, err := b.RDB.Get(ctx, KeyBanners).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return nil, nil // payload rusak: mulai kosong saja
	}
	return urls, nil
}
