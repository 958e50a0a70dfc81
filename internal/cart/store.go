package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adisetya/lapakstore/internal/redisx"
	"github.com/redis/go-redis/v9"
)

// Store menyimpan keranjang per sesi sebagai satu dokumen JSON di Redis,
// ditulis tiap ada perubahan dan dibaca ulang kapan pun dibutuhkan.
type Store struct{ RDB *redis.Client }

func (s *Store) Get(ctx context.Context, sessionID string) (Cart, error) {
	key := fmt.Sprintf(redisx.KeyCart, sessionID)
	raw, err := s.RDB.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, err
	}
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		// dokumen rusak dianggap keranjang kosong, jangan sampai fatal
		return Cart{}, nil
	}
	return c, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, c Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(redisx.KeyCart, sessionID)
	return s.RDB.Set(ctx, key, b, redisx.TTLCart).Err()
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(redisx.KeyCart, sessionID)
	return s.RDB.Del(ctx, key).Err()
}
