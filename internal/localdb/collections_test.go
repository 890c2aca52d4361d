package localdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReminder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	r, err := s.AddReminder(ctx, ReminderInput{
		PetID:    "pet_1",
		Title:    "Heartworm pill",
		Time:     "20:30",
		IsActive: true,
		SoundID:  strp("chime"),
	})
	require.NoError(t, err)
	assert.Equal(t, allDays, r.RecurrenceDays)
	assert.Equal(t, "general", r.Category)
	assert.Nil(t, r.NotificationID)

	items, err := s.GetReminders(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, r, items[0])
}

func TestReminders_UpdateToggleDelete(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	r, err := s.AddReminder(ctx, ReminderInput{PetID: "pet_1", Title: "Walk", Time: "08:00", IsActive: true})
	require.NoError(t, err)

	days := []int{1, 3, 5}
	updated, ok, err := s.UpdateReminder(ctx, r.ID, ReminderPatch{Time: strp("09:15"), RecurrenceDays: &days, NotificationID: strp("notif-1")})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "09:15", updated.Time)
	assert.Equal(t, days, updated.RecurrenceDays)
	assert.Equal(t, "Walk", updated.Title)
	assert.Equal(t, "notif-1", *updated.NotificationID)

	toggled, ok, err := s.ToggleReminder(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, toggled.IsActive)

	yes, no := true, false
	active, err := s.RemindersForPet(ctx, "pet_1", &yes)
	require.NoError(t, err)
	assert.Empty(t, active)

	inactive, err := s.RemindersForPet(ctx, "pet_1", &no)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)

	all, err := s.RemindersForPet(ctx, "pet_1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, ok, err = s.ToggleReminder(ctx, "reminder_missing")
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := s.DeleteReminder(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteReminder(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestChecklists_ItemsGetIDsAndToggle(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	c, err := s.AddChecklist(ctx, ChecklistInput{
		PetID: "pet_1",
		Title: "Morning",
		Items: []ChecklistItem{{Text: "Feed"}, {ID: "keep-me", Text: "Water"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "daily", c.Category)
	require.Len(t, c.Items, 2)
	assert.NotEmpty(t, c.Items[0].ID)
	assert.Equal(t, "keep-me", c.Items[1].ID)

	got, ok, err := s.SetChecklistItem(ctx, c.ID, "keep-me", true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Items[1].Completed)
	assert.False(t, got.Items[0].Completed)

	_, ok, err = s.SetChecklistItem(ctx, c.ID, "nope", true)
	require.NoError(t, err)
	assert.False(t, ok)

	items := []ChecklistItem{{Text: "Brush"}}
	updated, ok, err := s.UpdateChecklist(ctx, c.ID, ChecklistPatch{Items: &items, Category: strp("feeding")})
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, updated.Items, 1)
	assert.NotEmpty(t, updated.Items[0].ID)
	assert.Equal(t, "Morning", updated.Title)

	feeding, err := s.ChecklistsForPet(ctx, "pet_1", "feeding")
	require.NoError(t, err)
	assert.Len(t, feeding, 1)

	daily, err := s.ChecklistsForPet(ctx, "pet_1", "daily")
	require.NoError(t, err)
	assert.Empty(t, daily)

	removed, err := s.DeleteChecklist(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestVetVisits_SortedAndConvertedToChecklist(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	older, err := s.AddVetVisit(ctx, VetVisitInput{PetID: "pet_1", Title: "Vaccines", Date: "2024-01-10"})
	require.NoError(t, err)
	newer, err := s.AddVetVisit(ctx, VetVisitInput{
		PetID:        "pet_1",
		Title:        "Ear infection",
		Date:         "2024-02-20",
		Instructions: []string{"Drops twice a day", "Recheck in 2 weeks"},
	})
	require.NoError(t, err)

	visits, err := s.VetVisitsForPet(ctx, "pet_1")
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, newer.ID, visits[0].ID)
	assert.Equal(t, older.ID, visits[1].ID)

	c, ok, err := s.VetVisitToChecklist(ctx, newer.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Vet Instructions - Ear infection", c.Title)
	assert.Equal(t, "vet", c.Category)
	assert.Equal(t, "pet_1", c.PetID)
	require.Len(t, c.Items, 2)
	assert.Equal(t, "Drops twice a day", c.Items[0].Text)

	_, ok, err = s.VetVisitToChecklist(ctx, older.ID)
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrNoInstructions)

	_, ok, err = s.VetVisitToChecklist(ctx, "vet_missing")
	require.NoError(t, err)
	assert.False(t, ok)

	updated, ok, err := s.UpdateVetVisit(ctx, older.ID, VetVisitPatch{Notes: strp("all good")})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "all good", *updated.Notes)
	assert.Equal(t, older.Date, updated.Date)

	removed, err := s.DeleteVetVisit(ctx, older.ID)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestGetChecklistAndGetVetVisit(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	c, err := s.AddChecklist(ctx, ChecklistInput{
		PetID:             "pet_1",
		Title:             "Meds",
		Category:          "medication",
		IsRecurring:       true,
		RecurrencePattern: strp("weekly"),
	})
	require.NoError(t, err)

	got, ok, err := s.GetChecklist(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, c, got)
	assert.True(t, got.IsRecurring)
	assert.Equal(t, "weekly", *got.RecurrencePattern)

	_, ok, err = s.GetChecklist(ctx, "checklist_missing")
	require.NoError(t, err)
	assert.False(t, ok)

	v, err := s.AddVetVisit(ctx, VetVisitInput{PetID: "pet_1", Title: "Checkup", Date: "2024-02-01"})
	require.NoError(t, err)

	gotVisit, ok, err := s.GetVetVisit(ctx, v.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, v, gotVisit)

	_, ok, err = s.GetVetVisit(ctx, "vet_missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReminder_OneTimeFields(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	r, err := s.AddReminder(ctx, ReminderInput{
		PetID:        "pet_1",
		Title:        "Vaccine",
		Time:         "10:00",
		ReminderDate: strp("2024-05-01"),
		Category:     "medication",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.False(t, r.IsRecurring)
	assert.Equal(t, "medication", r.Category)
	assert.Equal(t, "2024-05-01", *r.ReminderDate)

	recurring := true
	updated, ok, err := s.UpdateReminder(ctx, r.ID, ReminderPatch{IsRecurring: &recurring, Category: strp("walk")})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, updated.IsRecurring)
	assert.Equal(t, "walk", updated.Category)
	assert.Equal(t, "2024-05-01", *updated.ReminderDate)
}
