package localdb

import (
	"context"
	"sort"
)

func (s *Store) GetVetVisits(ctx context.Context) (_ []VetVisit, err error) {
	defer s.track("getVetVisits")(&err)

	items, _, err := readCollection[VetVisit](ctx, s, KeyVetVisits)
	return items, err
}

func (s *Store) GetVetVisit(ctx context.Context, id string) (_ VetVisit, _ bool, err error) {
	defer s.track("getVetVisit")(&err)

	return getByID[VetVisit](ctx, s, KeyVetVisits, id)
}

// VetVisitsForPet ordena por fecha descendente (más reciente primero).
func (s *Store) VetVisitsForPet(ctx context.Context, petID string) ([]VetVisit, error) {
	items, err := s.GetVetVisits(ctx)
	if err != nil {
		return nil, err
	}
	out := ownedBy(items, petID)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

func (s *Store) AddVetVisit(ctx context.Context, in VetVisitInput) (_ VetVisit, err error) {
	defer s.track("addVetVisit")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	instructions := make([]string, 0, len(in.Instructions))
	instructions = append(instructions, in.Instructions...)

	now := s.stamp()
	v := VetVisit{
		ID:           s.newID("vet"),
		PetID:        in.PetID,
		Title:        in.Title,
		Date:         in.Date,
		Notes:        in.Notes,
		VetName:      in.VetName,
		Instructions: instructions,
		FollowUpDate: in.FollowUpDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := prepend(ctx, s, KeyVetVisits, v); err != nil {
		return VetVisit{}, err
	}
	return v, nil
}

func (s *Store) UpdateVetVisit(ctx context.Context, id string, patch VetVisitPatch) (_ VetVisit, _ bool, err error) {
	defer s.track("updateVetVisit")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return updateByID(ctx, s, KeyVetVisits, id, func(cur VetVisit) (VetVisit, error) {
		next, err := mergePatch(cur, patch)
		if err != nil {
			return VetVisit{}, err
		}
		next.ID = cur.ID
		next.PetID = cur.PetID
		next.CreatedAt = cur.CreatedAt
		next.UpdatedAt = s.touch(cur.UpdatedAt)
		return next, nil
	})
}

func (s *Store) DeleteVetVisit(ctx context.Context, id string) (_ bool, err error) {
	defer s.track("deleteVetVisit")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return removeByID[VetVisit](ctx, s, KeyVetVisits, id)
}

// VetVisitToChecklist convierte las instrucciones de la visita en una checklist "vet".
// ok=false si la visita no existe; ErrNoInstructions si no tiene instrucciones.
func (s *Store) VetVisitToChecklist(ctx context.Context, visitID string) (_ Checklist, _ bool, err error) {
	defer s.track("vetVisitToChecklist")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	v, ok, err := getByID[VetVisit](ctx, s, KeyVetVisits, visitID)
	if err != nil || !ok {
		return Checklist{}, false, err
	}
	if len(v.Instructions) == 0 {
		return Checklist{}, true, ErrNoInstructions
	}

	items := make([]ChecklistItem, 0, len(v.Instructions))
	for _, text := range v.Instructions {
		items = append(items, ChecklistItem{Text: text})
	}

	c, err := s.addChecklist(ctx, ChecklistInput{
		PetID:    v.PetID,
		Title:    "Vet Instructions - " + v.Title,
		Category: "vet",
		Items:    items,
	})
	if err != nil {
		return Checklist{}, true, err
	}
	return c, true, nil
}
