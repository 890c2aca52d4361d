// Package cache envuelve un kv.Store con una cache en memoria (freecache).
// Las colecciones se leen enteras en cada operación; la cache evita ir al
// backend (sqlite/postgres) en cada lectura.
package cache

import (
	"context"
	"sync"

	"github.com/coocood/freecache"

	"pawnote/internal/ports/kv"
)

// Observer recibe hits/misses (metrics). Puede ser nil.
type Observer interface {
	IncCacheHits()
	IncCacheMisses()
}

type KVStore struct {
	next  kv.Store
	cache *freecache.Cache
	obs   Observer

	// gen cuenta escrituras por key. Un Get que vio una generación vieja no
	// llena la cache.
	mu  sync.Mutex
	gen map[string]uint64
}

var _ kv.Store = (*KVStore)(nil)

// Wrap devuelve next sin cambios si sizeMB <= 0.
func Wrap(next kv.Store, sizeMB int, obs Observer) kv.Store {
	if sizeMB <= 0 {
		return next
	}
	return &KVStore{
		next:  next,
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		obs:   obs,
		gen:   make(map[string]uint64),
	}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v, err := s.cache.Get([]byte(key)); err == nil {
		s.hit()
		return string(v), true, nil
	}
	s.miss()

	s.mu.Lock()
	seen := s.gen[key]
	s.mu.Unlock()

	v, ok, err := s.next.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}

	// sin TTL: toda escritura pasa por Set/Remove de este wrapper
	s.mu.Lock()
	if s.gen[key] == seen {
		_ = s.cache.Set([]byte(key), []byte(v), 0)
	}
	s.mu.Unlock()
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	err := s.next.Set(ctx, key, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[key]++
	if err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	// valores más grandes que 1/1024 de la cache no entran; se leen del backend
	if err := s.cache.Set([]byte(key), []byte(value), 0); err != nil {
		s.cache.Del([]byte(key))
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	err := s.next.Remove(ctx, key)

	s.mu.Lock()
	s.gen[key]++
	s.cache.Del([]byte(key))
	s.mu.Unlock()
	return err
}

func (s *KVStore) hit() {
	if s.obs != nil {
		s.obs.IncCacheHits()
	}
}

func (s *KVStore) miss() {
	if s.obs != nil {
		s.obs.IncCacheMisses()
	}
}
