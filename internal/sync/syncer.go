// Package sync menjalankan siklus pull-and-reconcile: tarik koleksi dari
// sheet remote, bandingkan dengan mirror lokal, commit hanya kalau beda.
package sync

import (
	"context"
	"time"

	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/adisetya/lapakstore/internal/metrics"
	"github.com/adisetya/lapakstore/internal/sheet"
	"github.com/adisetya/lapakstore/internal/state"
	"go.uber.org/zap"
)

// Fetcher is what the syncer needs from the sheet gateway.
type Fetcher interface {
	Configured() bool
	FetchProducts(ctx context.Context) (sheet.Snapshot, bool)
}

// BannerSaver persists the banner list to durable storage as a side
// effect of a banner change.
type BannerSaver interface {
	SaveBanners(ctx context.Context, urls []string) error
}

type Syncer struct {
	Fetch    Fetcher
	Store    *state.Store
	Banners  BannerSaver
	Seed     []catalog.Product
	Interval time.Duration
	Log      *zap.Logger
}

// Refresh is one sync cycle. Semua langkah best-effort: decode sentinel
// yang rusak di-skip diam-diam, fetch gagal berarti state lama dipertahankan.
// Flag syncing selalu bersih lagi di akhir, sukses maupun gagal.
func (s *Syncer) Refresh(ctx context.Context, initial bool) {
	s.Store.SetSyncing(true)
	defer s.Store.SetSyncing(false)

	if !s.Fetch.Configured() {
		return
	}

	metrics.SyncCycles.Inc()

	snap, ok := s.Fetch.FetchProducts(ctx)
	if !ok || snap.Empty() {
		// Fallback seed hanya di panggilan pertama; siklus berikutnya
		// yang gagal membiarkan state apa adanya.
		if initial && s.Store.SetProducts(s.Seed) {
			s.Log.Info("remote empty on initial sync, seeded catalog",
				zap.Int("products", len(s.Seed)))
		}
		return
	}

	if s.Store.SetProducts(snap.Products) {
		metrics.SyncUpdates.Inc()
		s.Log.Info("products updated from sheet", zap.Int("count", len(snap.Products)))
	}

	if snap.BannerPayload != "" {
		if urls, err := catalog.DecodeBanners(snap.BannerPayload); err == nil {
			if s.Store.SetBanners(urls) {
				metrics.SyncUpdates.Inc()
				if s.Banners != nil {
					if err := s.Banners.SaveBanners(ctx, urls); err != nil {
						s.Log.Warn("persist banners failed", zap.Error(err))
					}
				}
			}
		}
	}

	if snap.CategoryPayload != "" {
		if cs, err := catalog.DecodeCategories(snap.CategoryPayload); err == nil {
			if s.Store.SetCategories(cs) {
				metrics.SyncUpdates.Inc()
			}
		}
	}
}

// Run refreshes eagerly once, then on a fixed ticker. Satu goroutine,
// jadi dua siklus tidak pernah jalan tumpang tindih.
func (s *Syncer) Run(ctx context.Context) {
	s.Refresh(ctx, true)

	t := time.NewTicker(s.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if s.Store.AdminActive() {
				// jangan timpa edit admin yang sedang in-flight
				continue
			}
			s.Refresh(ctx, false)
		}
	}
}
