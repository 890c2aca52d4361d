package localdb

import (
	"context"
	"errors"
	"fmt"
)

const SnapshotVersion = 1

var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// Snapshot es una copia cruda de todas las keys del store (backup/export).
type Snapshot struct {
	Version    int               `json:"version"`
	ExportedAt int64             `json:"exported_at"`
	Values     map[string]string `json:"values"`
}

func (s *Store) Snapshot(ctx context.Context) (_ Snapshot, err error) {
	defer s.track("snapshot")(&err)

	// bajo writeMu para no copiar un cascade a medias
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: s.stamp(),
		Values:     make(map[string]string),
	}
	for _, k := range OwnedKeys() {
		v, ok, err := s.kv.Get(ctx, k)
		if err != nil {
			return Snapshot{}, fmt.Errorf("snapshot %s: %w", k, err)
		}
		if ok {
			snap.Values[k] = v
		}
	}
	return snap, nil
}

// Restore reemplaza el contenido del store: las keys ausentes en el snapshot se borran.
func (s *Store) Restore(ctx context.Context, snap Snapshot) (err error) {
	defer s.track("restore")(&err)

	if snap.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	for _, k := range OwnedKeys() {
		if v, ok := snap.Values[k]; ok {
			err = s.kv.Set(ctx, k, v)
		} else {
			err = s.kv.Remove(ctx, k)
		}
		if err != nil {
			return fmt.Errorf("restore %s: %w", k, err)
		}
	}

	s.log.Info("store restored", map[string]any{"keys": len(snap.Values)})
	return s.reloadSession(ctx)
}
