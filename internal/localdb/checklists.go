package localdb

import (
	"context"
	"strings"
)

const defaultChecklistCategory = "daily"

func (s *Store) GetChecklists(ctx context.Context) (_ []Checklist, err error) {
	defer s.track("getChecklists")(&err)

	items, _, err := readCollection[Checklist](ctx, s, KeyChecklists)
	return items, err
}

func (s *Store) GetChecklist(ctx context.Context, id string) (_ Checklist, _ bool, err error) {
	defer s.track("getChecklist")(&err)

	return getByID[Checklist](ctx, s, KeyChecklists, id)
}

// ChecklistsForPet filtra por pet y por categoría (vacía = todas).
func (s *Store) ChecklistsForPet(ctx context.Context, petID, category string) ([]Checklist, error) {
	items, err := s.GetChecklists(ctx)
	if err != nil {
		return nil, err
	}
	out := ownedBy(items, petID)
	if category == "" {
		return out, nil
	}
	filtered := out[:0]
	for _, c := range out {
		if c.Category == category {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *Store) AddChecklist(ctx context.Context, in ChecklistInput) (_ Checklist, err error) {
	defer s.track("addChecklist")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.addChecklist(ctx, in)
}

func (s *Store) addChecklist(ctx context.Context, in ChecklistInput) (Checklist, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultChecklistCategory
	}

	now := s.stamp()
	c := Checklist{
		ID:                s.newID("checklist"),
		PetID:             in.PetID,
		Title:             in.Title,
		Category:          category,
		Items:             s.withItemIDs(in.Items),
		IsRecurring:       in.IsRecurring,
		RecurrencePattern: in.RecurrencePattern,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := prepend(ctx, s, KeyChecklists, c); err != nil {
		return Checklist{}, err
	}
	return c, nil
}

func (s *Store) UpdateChecklist(ctx context.Context, id string, patch ChecklistPatch) (_ Checklist, _ bool, err error) {
	defer s.track("updateChecklist")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if patch.Items != nil {
		items := s.withItemIDs(*patch.Items)
		patch.Items = &items
	}

	return updateByID(ctx, s, KeyChecklists, id, func(cur Checklist) (Checklist, error) {
		next, err := mergePatch(cur, patch)
		if err != nil {
			return Checklist{}, err
		}
		next.ID = cur.ID
		next.PetID = cur.PetID
		next.CreatedAt = cur.CreatedAt
		next.UpdatedAt = s.touch(cur.UpdatedAt)
		return next, nil
	})
}

// SetChecklistItem marca/desmarca un item. ok=false si no existe la checklist o el item.
func (s *Store) SetChecklistItem(ctx context.Context, checklistID, itemID string, completed bool) (_ Checklist, _ bool, err error) {
	defer s.track("setChecklistItem")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	c, ok, err := getByID[Checklist](ctx, s, KeyChecklists, checklistID)
	if err != nil || !ok {
		return Checklist{}, false, err
	}
	found := false
	for _, it := range c.Items {
		if it.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return Checklist{}, false, nil
	}

	return updateByID(ctx, s, KeyChecklists, checklistID, func(cur Checklist) (Checklist, error) {
		items := make([]ChecklistItem, len(cur.Items))
		copy(items, cur.Items)
		for i := range items {
			if items[i].ID == itemID {
				items[i].Completed = completed
			}
		}
		cur.Items = items
		cur.UpdatedAt = s.touch(cur.UpdatedAt)
		return cur, nil
	})
}

func (s *Store) DeleteChecklist(ctx context.Context, id string) (_ bool, err error) {
	defer s.track("deleteChecklist")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return removeByID[Checklist](ctx, s, KeyChecklists, id)
}

func (s *Store) withItemIDs(in []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, 0, len(in))
	for _, it := range in {
		if strings.TrimSpace(it.ID) == "" {
			it.ID = s.newID("item")
		}
		out = append(out, it)
	}
	return out
}
