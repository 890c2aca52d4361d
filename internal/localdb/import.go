package localdb

import (
	"context"
	"fmt"
	"strings"
)

// Bundle es un pet con todos sus hijos, tal como llega de una fuente externa.
type Bundle struct {
	Pet        Pet
	Reminders  []Reminder
	Checklists []Checklist
	VetVisits  []VetVisit
}

type ImportResult struct {
	PetCreated bool
	Reminders  int
	Checklists int
	VetVisits  int
}

// ImportBundle guarda el bundle conservando ids y timestamps.
// Los hijos se fuerzan al pet del bundle. Si no hay pet actual, el importado
// pasa a serlo.
func (s *Store) ImportBundle(ctx context.Context, b Bundle) (_ ImportResult, err error) {
	defer s.track("importBundle")(&err)

	if strings.TrimSpace(b.Pet.ID) == "" {
		return ImportResult{}, fmt.Errorf("%w: pet id is required", ErrInvalidInput)
	}
	now := s.stamp()
	fill := func(created, updated *int64) {
		if *created == 0 {
			*created = now
		}
		if *updated < *created {
			*updated = *created
		}
	}

	pet := b.Pet
	fill(&pet.CreatedAt, &pet.UpdatedAt)

	reminders := make([]Reminder, 0, len(b.Reminders))
	for _, r := range b.Reminders {
		r.PetID = pet.ID
		if r.RecurrenceDays == nil {
			r.RecurrenceDays = append([]int(nil), allDays...)
		}
		if r.Category == "" {
			r.Category = defaultReminderCategory
		}
		fill(&r.CreatedAt, &r.UpdatedAt)
		reminders = append(reminders, r)
	}
	checklists := make([]Checklist, 0, len(b.Checklists))
	for _, c := range b.Checklists {
		c.PetID = pet.ID
		if c.Category == "" {
			c.Category = defaultChecklistCategory
		}
		c.Items = s.withItemIDs(c.Items)
		fill(&c.CreatedAt, &c.UpdatedAt)
		checklists = append(checklists, c)
	}
	visits := make([]VetVisit, 0, len(b.VetVisits))
	for _, v := range b.VetVisits {
		v.PetID = pet.ID
		if v.Instructions == nil {
			v.Instructions = []string{}
		}
		fill(&v.CreatedAt, &v.UpdatedAt)
		visits = append(visits, v)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var res ImportResult
	n, err := upsertAll(ctx, s, KeyPets, []Pet{pet})
	if err != nil {
		return ImportResult{}, err
	}
	res.PetCreated = n == 1
	if res.Reminders, err = upsertAll(ctx, s, KeyReminders, reminders); err != nil {
		return res, err
	}
	if res.Checklists, err = upsertAll(ctx, s, KeyChecklists, checklists); err != nil {
		return res, err
	}
	if res.VetVisits, err = upsertAll(ctx, s, KeyVetVisits, visits); err != nil {
		return res, err
	}

	if _, ok := s.session.PetID(); !ok {
		if err := s.kv.Set(ctx, KeyCurrentPetID, pet.ID); err != nil {
			return res, err
		}
		s.session.set(pet.ID)
	}

	s.log.Info("bundle imported", map[string]any{
		"pet_id":      pet.ID,
		"pet_created": res.PetCreated,
		"reminders":   res.Reminders,
		"checklists":  res.Checklists,
		"vet_visits":  res.VetVisits,
	})
	return res, nil
}
