package sync

import (
	"context"
	"testing"
	"time"

	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/adisetya/lapakstore/internal/sheet"
	"github.com/adisetya/lapakstore/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	configured bool
	snap       sheet.Snapshot
	ok         bool
	calls      int
}

func (f *fakeFetcher) Configured() bool { return f.configured }

func (f *fakeFetcher) FetchProducts(ctx context.Context) (sheet.Snapshot, bool) {
	f.calls++
	return f.snap, f.ok
}

type fakeSaver struct{ calls int }

func (f *fakeSaver) SaveBanners(ctx context.Context, urls []string) error {
	f.calls++
	return nil
}

func newSyncer(fetch *fakeFetcher, st *state.Store, saver *fakeSaver) *Syncer {
	return &Syncer{
		Fetch:    fetch,
		Store:    st,
		Banners:  saver,
		Seed:     catalog.Seed(),
		Interval: time.Second,
		Log:      zap.NewNop(),
	}
}

func someProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "Kopi", Price: 25000, Images: []string{"a.jpg"}},
		{ID: "p2", Name: "Teh", Price: 9500, Images: []string{"b.jpg"}},
	}
}

func TestRefreshUnconfiguredIsNoop(t *testing.T) {
	st := state.NewStore()
	st.SetProducts(someProducts())
	fetch := &fakeFetcher{configured: false}

	s := newSyncer(fetch, st, &fakeSaver{})
	s.Refresh(context.Background(), true)

	assert.Equal(t, 0, fetch.calls, "unconfigured endpoint must not fetch")
	assert.Equal(t, someProducts(), st.Products())
	assert.False(t, st.Syncing(), "syncing flag must clear even on no-op")
}

func TestRefreshInitialFallsBackToSeed(t *testing.T) {
	st := state.NewStore()
	fetch := &fakeFetcher{configured: true, ok: false}

	s := newSyncer(fetch, st, &fakeSaver{})
	s.Refresh(context.Background(), true)

	assert.Equal(t, catalog.Seed(), st.Products())
	assert.False(t, st.Syncing())
}

func TestRefreshSubsequentFailureKeepsState(t *testing.T) {
	st := state.NewStore()
	st.SetProducts(someProducts())
	fetch := &fakeFetcher{configured: true, ok: false}

	s := newSyncer(fetch, st, &fakeSaver{})
	s.Refresh(context.Background(), false)

	assert.Equal(t, someProducts(), st.Products(), "failed non-initial sync must not touch state")
	assert.False(t, st.Syncing())
}

func TestRefreshCommitsSnapshot(t *testing.T) {
	st := state.NewStore()
	saver := &fakeSaver{}
	fetch := &fakeFetcher{
		configured: true,
		ok:         true,
		snap: sheet.Snapshot{
			Products:        someProducts(),
			BannerPayload:   `["b1.jpg","b2.jpg"]`,
			CategoryPayload: `[{"id":"minuman","name":"Minuman","icon":"coffee","visible":true}]`,
		},
	}

	s := newSyncer(fetch, st, saver)
	s.Refresh(context.Background(), false)

	assert.Equal(t, someProducts(), st.Products())
	assert.Equal(t, []string{"b1.jpg", "b2.jpg"}, st.Banners())
	require.Len(t, st.Categories(), 1)
	assert.Equal(t, 1, saver.calls, "banner change must be persisted")
}

func TestRefreshIdempotentOnUnchangedSnapshot(t *testing.T) {
	st := state.NewStore()
	saver := &fakeSaver{}
	fetch := &fakeFetcher{
		configured: true,
		ok:         true,
		snap: sheet.Snapshot{
			Products:      someProducts(),
			BannerPayload: `["b1.jpg"]`,
		},
	}

	s := newSyncer(fetch, st, saver)
	s.Refresh(context.Background(), true)
	s.Refresh(context.Background(), false)

	assert.Equal(t, 2, fetch.calls)
	assert.Equal(t, 1, saver.calls, "unchanged banners must not be re-persisted")
	assert.Equal(t, someProducts(), st.Products())
}

func TestRefreshMalformedCategoryPayloadKeepsPrior(t *testing.T) {
	st := state.NewStore()
	prior := st.Categories()
	fetch := &fakeFetcher{
		configured: true,
		ok:         true,
		snap: sheet.Snapshot{
			Products:        someProducts(),
			CategoryPayload: `{not valid json`,
		},
	}

	s := newSyncer(fetch, st, &fakeSaver{})
	s.Refresh(context.Background(), false)

	assert.Equal(t, prior, st.Categories(), "malformed settings payload must be skipped silently")
	assert.Equal(t, someProducts(), st.Products(), "product update still goes through")
}
