package localdb

import (
	"context"
)

// Helpers sobre colecciones completas. Los que escriben asumen writeMu tomado.

func indexOf[T record](items []T, id string) int {
	for i, it := range items {
		if it.recordID() == id {
			return i
		}
	}
	return -1
}

func getByID[T record](ctx context.Context, s *Store, key, id string) (T, bool, error) {
	var zero T
	items, _, err := readCollection[T](ctx, s, key)
	if err != nil {
		return zero, false, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, false, nil
	}
	return items[i], true, nil
}

// prepend agrega rec al principio de la colección y la persiste.
func prepend[T record](ctx context.Context, s *Store, key string, rec T) error {
	items, _, err := readCollection[T](ctx, s, key)
	if err != nil {
		return err
	}
	items = append([]T{rec}, items...)
	return writeCollection(ctx, s, key, items)
}

// updateByID devuelve ok=false sin escribir nada si el id no existe.
func updateByID[T record](ctx context.Context, s *Store, key, id string, apply func(T) (T, error)) (T, bool, error) {
	var zero T
	items, _, err := readCollection[T](ctx, s, key)
	if err != nil {
		return zero, false, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, false, nil
	}

	next, err := apply(items[i])
	if err != nil {
		return zero, false, err
	}
	items[i] = next

	if err := writeCollection(ctx, s, key, items); err != nil {
		return zero, false, err
	}
	return next, true, nil
}

func removeByID[T record](ctx context.Context, s *Store, key, id string) (bool, error) {
	items, _, err := readCollection[T](ctx, s, key)
	if err != nil {
		return false, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return false, nil
	}
	items = append(items[:i], items[i+1:]...)
	return true, writeCollection(ctx, s, key, items)
}

// removeOwnedBy borra todos los records de petID. Si no hay nada que borrar
// no escribe (un valor corrupto queda como está para poder inspeccionarlo).
func removeOwnedBy[T record](ctx context.Context, s *Store, key, petID string) (int, error) {
	items, _, err := readCollection[T](ctx, s, key)
	if err != nil {
		return 0, err
	}

	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.ownerID() != petID {
			kept = append(kept, it)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, writeCollection(ctx, s, key, kept)
}

func ownedBy[T record](items []T, petID string) []T {
	out := make([]T, 0)
	for _, it := range items {
		if it.ownerID() == petID {
			out = append(out, it)
		}
	}
	return out
}

// upsertAll reemplaza los records con el mismo id y antepone el resto,
// manteniendo el orden de recs. Escribe una sola vez.
func upsertAll[T record](ctx context.Context, s *Store, key string, recs []T) (inserted int, err error) {
	if len(recs) == 0 {
		return 0, nil
	}
	items, _, err := readCollection[T](ctx, s, key)
	if err != nil {
		return 0, err
	}

	fresh := make([]T, 0, len(recs))
	for _, rec := range recs {
		if i := indexOf(items, rec.recordID()); i >= 0 {
			items[i] = rec
			continue
		}
		fresh = append(fresh, rec)
	}
	items = append(fresh, items...)
	return len(fresh), writeCollection(ctx, s, key, items)
}
