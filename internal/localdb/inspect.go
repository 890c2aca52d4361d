package localdb

import (
	"context"
)

// KeyHealth describe el estado de una colección en el kv store.
type KeyHealth struct {
	Key     string `json:"key"`
	State   string `json:"state"` // absent, ok, corrupt
	Records int    `json:"records"`
}

// Report es lo que muestra `pawnote doctor`.
type Report struct {
	Collections     []KeyHealth `json:"collections"`
	CurrentPetID    string      `json:"current_pet_id,omitempty"`
	DanglingPointer bool        `json:"dangling_pointer"`
	Orphans         int         `json:"orphans"` // hijos cuyo pet_id no existe
	PendingCascade  string      `json:"pending_cascade,omitempty"`
	LegacyPresent   bool        `json:"legacy_present"`
}

// Healthy es true si no hay colecciones corruptas, huérfanos ni cascades pendientes.
func (r Report) Healthy() bool {
	for _, c := range r.Collections {
		if c.State == stateCorrupt.String() {
			return false
		}
	}
	return !r.DanglingPointer && r.Orphans == 0 && r.PendingCascade == ""
}

// Inspect no modifica nada. A diferencia de los getters, distingue key ausente de corrupta.
func (s *Store) Inspect(ctx context.Context) (_ Report, err error) {
	defer s.track("inspect")(&err)

	var rep Report

	pets, st, err := readCollection[Pet](ctx, s, KeyPets)
	if err != nil {
		return Report{}, err
	}
	rep.Collections = append(rep.Collections, KeyHealth{Key: KeyPets, State: st.String(), Records: len(pets)})

	known := make(map[string]struct{}, len(pets))
	for _, p := range pets {
		known[p.ID] = struct{}{}
	}

	reminders, st, err := readCollection[Reminder](ctx, s, KeyReminders)
	if err != nil {
		return Report{}, err
	}
	rep.Collections = append(rep.Collections, KeyHealth{Key: KeyReminders, State: st.String(), Records: len(reminders)})
	rep.Orphans += countOrphans(reminders, known)

	checklists, st, err := readCollection[Checklist](ctx, s, KeyChecklists)
	if err != nil {
		return Report{}, err
	}
	rep.Collections = append(rep.Collections, KeyHealth{Key: KeyChecklists, State: st.String(), Records: len(checklists)})
	rep.Orphans += countOrphans(checklists, known)

	visits, st, err := readCollection[VetVisit](ctx, s, KeyVetVisits)
	if err != nil {
		return Report{}, err
	}
	rep.Collections = append(rep.Collections, KeyHealth{Key: KeyVetVisits, State: st.String(), Records: len(visits)})
	rep.Orphans += countOrphans(visits, known)

	id, ok, err := s.readPointer(ctx)
	if err != nil {
		return Report{}, err
	}
	if ok {
		rep.CurrentPetID = id
		_, exists := known[id]
		rep.DanglingPointer = !exists
	}

	pending, _, err := s.kv.Get(ctx, KeyPendingCascade)
	if err != nil {
		return Report{}, err
	}
	rep.PendingCascade = pending

	_, rep.LegacyPresent, err = s.kv.Get(ctx, LegacyKeyPet)
	if err != nil {
		return Report{}, err
	}

	return rep, nil
}

func countOrphans[T record](items []T, known map[string]struct{}) int {
	n := 0
	for _, it := range items {
		if _, ok := known[it.ownerID()]; !ok {
			n++
		}
	}
	return n
}
