package localdb

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DeletePet borra el pet y todo lo que le pertenece (reminders, checklists, vet visits).
//
// Antes de tocar las colecciones se guarda el pet id en KeyPendingCascade.
// Si el proceso muere a mitad de camino, Open completa el borrado.
// ok=false si el pet no estaba en la lista; los hijos huérfanos se borran igual.
func (s *Store) DeletePet(ctx context.Context, id string) (ok bool, err error) {
	defer s.track("deletePet")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.kv.Set(ctx, KeyPendingCascade, id); err != nil {
		return false, fmt.Errorf("delete pet %s: write intent: %w", id, err)
	}
	removed, err := s.cascade(ctx, id)
	if err != nil {
		return false, err
	}
	return removed > 0, s.kv.Remove(ctx, KeyPendingCascade)
}

// cascade lanza las escrituras en paralelo: lista de pets, puntero (si era el
// actual) y las tres colecciones hijas. Cada una toca una key distinta.
// Devuelve cuántos pets se borraron de la lista.
func (s *Store) cascade(ctx context.Context, petID string) (int, error) {
	current, hasCurrent, err := s.readPointer(ctx)
	if err != nil {
		return 0, err
	}
	clearPointer := hasCurrent && current == petID

	counts := make([]int, 4)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := removeOwnedBy[Pet](gctx, s, KeyPets, petID)
		counts[0] = n
		return err
	})
	if clearPointer {
		g.Go(func() error {
			return s.kv.Remove(gctx, KeyCurrentPetID)
		})
	}
	g.Go(func() error {
		n, err := removeOwnedBy[Reminder](gctx, s, KeyReminders, petID)
		counts[1] = n
		return err
	})
	g.Go(func() error {
		n, err := removeOwnedBy[Checklist](gctx, s, KeyChecklists, petID)
		counts[2] = n
		return err
	})
	g.Go(func() error {
		n, err := removeOwnedBy[VetVisit](gctx, s, KeyVetVisits, petID)
		counts[3] = n
		return err
	})

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("delete pet %s: %w", petID, err)
	}

	if clearPointer {
		s.session.clear()
	}

	s.log.Info("pet deleted", map[string]any{
		"pet_id":      petID,
		"pets":        counts[0],
		"reminders":   counts[1],
		"checklists":  counts[2],
		"vet_visits":  counts[3],
		"was_current": clearPointer,
	})
	return counts[0], nil
}

// resumePendingCascade devuelve el pet cuyo borrado se completó ("" si no había).
func (s *Store) resumePendingCascade(ctx context.Context) (string, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, ok, err := s.kv.Get(ctx, KeyPendingCascade)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", KeyPendingCascade, err)
	}
	if !ok {
		return "", nil
	}

	petID := strings.TrimSpace(raw)
	if petID != "" {
		s.log.Warn("resuming interrupted pet deletion", map[string]any{"pet_id": petID})
		if _, err := s.cascade(ctx, petID); err != nil {
			return "", err
		}
	}
	return petID, s.kv.Remove(ctx, KeyPendingCascade)
}
