// Package state memegang mirror in-memory dari koleksi remote. Satu
// struct eksplisit, semua mutasi lewat command Set* — tidak ada setter
// ambient yang tersebar di handler.
package state

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/adisetya/lapakstore/internal/catalog"
)

type Store struct {
	mu         sync.RWMutex
	products   []catalog.Product
	banners    []string
	categories []catalog.CategoryConfig

	syncing     atomic.Bool
	adminActive atomic.Bool
}

func NewStore() *Store {
	return &Store{categories: catalog.DefaultCategories()}
}

func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id string) (catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (s *Store) Banners() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.banners))
	copy(out, s.banners)
	return out
}

func (s *Store) Categories() []catalog.CategoryConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.CategoryConfig, len(s.categories))
	copy(out, s.categories)
	return out
}

// SetProducts replaces the product set only when it actually differs.
// Return value memberi tahu caller apakah ada perubahan yang di-commit.
func (s *Store) SetProducts(ps []catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reflect.DeepEqual(s.products, ps) {
		return false
	}
	s.products = ps
	return true
}

func (s *Store) SetBanners(urls []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reflect.DeepEqual(s.banners, urls) {
		return false
	}
	s.banners = urls
	return true
}

func (s *Store) SetCategories(cs []catalog.CategoryConfig) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reflect.DeepEqual(s.categories, cs) {
		return false
	}
	s.categories = cs
	return true
}

func (s *Store) SetSyncing(v bool) { s.syncing.Store(v) }
func (s *Store) Syncing() bool     { return s.syncing.Load() }

// AdminActive menahan sync cycle selama seller hub dipakai, supaya pull
// periodik tidak menimpa edit yang sedang berjalan.
func (s *Store) SetAdminActive(v bool) { s.adminActive.Store(v) }
func (s *Store) AdminActive() bool     { return s.adminActive.Load() }
