package localdb

import (
	"context"
	"strings"
)

var allDays = []int{0, 1, 2, 3, 4, 5, 6}

const defaultReminderCategory = "general"

func (s *Store) GetReminders(ctx context.Context) (_ []Reminder, err error) {
	defer s.track("getReminders")(&err)

	items, _, err := readCollection[Reminder](ctx, s, KeyReminders)
	return items, err
}

// RemindersForPet filtra por pet y por is_active (nil = todos).
func (s *Store) RemindersForPet(ctx context.Context, petID string, active *bool) ([]Reminder, error) {
	items, err := s.GetReminders(ctx)
	if err != nil {
		return nil, err
	}
	return FilterActive(ownedBy(items, petID), active), nil
}

// FilterActive deja los reminders con is_active == *active. nil no filtra.
func FilterActive(items []Reminder, active *bool) []Reminder {
	if active == nil {
		return items
	}
	out := items[:0]
	for _, r := range items {
		if r.IsActive == *active {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) AddReminder(ctx context.Context, in ReminderInput) (_ Reminder, err error) {
	defer s.track("addReminder")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	days := in.RecurrenceDays
	if days == nil {
		days = append([]int(nil), allDays...)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultReminderCategory
	}

	now := s.stamp()
	r := Reminder{
		ID:             s.newID("reminder"),
		PetID:          in.PetID,
		Title:          in.Title,
		Description:    in.Description,
		Time:           in.Time,
		ReminderDate:   in.ReminderDate,
		IsRecurring:    in.IsRecurring,
		RecurrenceDays: days,
		Category:       category,
		IsActive:       in.IsActive,
		SoundID:        in.SoundID,
		NotificationID: in.NotificationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := prepend(ctx, s, KeyReminders, r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Store) UpdateReminder(ctx context.Context, id string, patch ReminderPatch) (_ Reminder, _ bool, err error) {
	defer s.track("updateReminder")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return updateByID(ctx, s, KeyReminders, id, func(cur Reminder) (Reminder, error) {
		next, err := mergePatch(cur, patch)
		if err != nil {
			return Reminder{}, err
		}
		next.ID = cur.ID
		next.PetID = cur.PetID
		next.CreatedAt = cur.CreatedAt
		next.UpdatedAt = s.touch(cur.UpdatedAt)
		return next, nil
	})
}

// ToggleReminder invierte is_active.
func (s *Store) ToggleReminder(ctx context.Context, id string) (_ Reminder, _ bool, err error) {
	defer s.track("toggleReminder")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return updateByID(ctx, s, KeyReminders, id, func(cur Reminder) (Reminder, error) {
		cur.IsActive = !cur.IsActive
		cur.UpdatedAt = s.touch(cur.UpdatedAt)
		return cur, nil
	})
}

func (s *Store) DeleteReminder(ctx context.Context, id string) (_ bool, err error) {
	defer s.track("deleteReminder")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return removeByID[Reminder](ctx, s, KeyReminders, id)
}
