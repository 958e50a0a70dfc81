// Package dispatch mengonsumsi event OrderPlaced: catat ke journal lokal
// lalu teruskan ke sheet remote dengan kontrak best-effort.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	kafkax "github.com/adisetya/lapakstore/internal/kafka"
	"github.com/adisetya/lapakstore/internal/orders"
	"github.com/adisetya/lapakstore/internal/redisx"
	"github.com/adisetya/lapakstore/internal/sheet"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Service struct {
	Journal     *orders.Journal
	Redis       *redis.Client
	Sheet       *sheet.Client
	Log         *zap.Logger
	ServiceName string
}

// HandleOrderPlaced: dipasang sebagai handler consumer.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderPlaced {
		return nil
	} // ignore

	// dedup via Redis (pakai event_id); journal sendiri sudah idempotent,
	// ini cuma short-circuit murah
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	exists, _ := redisx.Exists(ctx, s.Redis, dkey)
	if exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}

	inserted, err := s.Journal.Append(ctx, p.Order, p.Items)
	if err != nil {
		return err
	}
	if !inserted {
		return nil // event ulang, sudah tercatat
	}

	// Best-effort ke sheet: gagal dispatch tidak menggagalkan commit
	// offset, journal lokal tetap kebenarannya untuk seller hub.
	row := map[string]any{
		"id":            p.Order.ID,
		"customer_name": p.Order.CustomerName,
		"phone":         p.Order.Phone,
		"address":       p.Order.Address,
		"items":         p.Order.ItemsSummary,
		"total":         p.Order.Total,
		"status":        string(p.Order.Status),
		"created_at":    p.Order.CreatedAt,
	}
	if err := s.Sheet.DispatchOrderCreate(ctx, row); err != nil {
		s.Log.Warn("order create dispatch failed",
			zap.String("order_id", p.Order.ID), zap.Error(err))
	}

	s.Log.Info("order recorded",
		zap.String("order_id", p.Order.ID), zap.Int("total", p.Order.Total))
	return nil
}
