package localdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBundle_InsertsAndSelectsPet(t *testing.T) {
	s, _, clock := newTestStore(t)
	ctx := context.Background()

	res, err := s.ImportBundle(ctx, Bundle{
		Pet:        Pet{ID: "remote-1", Name: "Luna", BirthDate: "2019-05-05", PetType: "cat"},
		Reminders:  []Reminder{{ID: "r-1", PetID: "someone-else", Title: "Pills", Time: "08:00", IsActive: true}},
		Checklists: []Checklist{{ID: "c-1", Title: "Daily", Items: []ChecklistItem{{Text: "water"}}}},
		VetVisits:  []VetVisit{{ID: "v-1", Title: "Checkup", Date: "2024-01-10"}},
	})
	require.NoError(t, err)
	assert.Equal(t, ImportResult{PetCreated: true, Reminders: 1, Checklists: 1, VetVisits: 1}, res)

	pet, ok, err := s.GetPet(ctx, "remote-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, clock.Now().UnixMilli(), pet.CreatedAt)

	cur, ok := s.Session().PetID()
	assert.True(t, ok)
	assert.Equal(t, "remote-1", cur)

	reminders, err := s.RemindersForPet(ctx, "remote-1", nil)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, allDays, reminders[0].RecurrenceDays)
	assert.Equal(t, "general", reminders[0].Category)

	checklists, err := s.ChecklistsForPet(ctx, "remote-1", "")
	require.NoError(t, err)
	require.Len(t, checklists, 1)
	assert.Equal(t, "daily", checklists[0].Category)
	assert.NotEmpty(t, checklists[0].Items[0].ID)

	visits, err := s.VetVisitsForPet(ctx, "remote-1")
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.NotNil(t, visits[0].Instructions)
}

func TestImportBundle_ReplacesSameIDAndKeepsCurrentPet(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	local := addTestPet(t, s, "Rex")

	b := Bundle{Pet: Pet{ID: "remote-1", Name: "Luna", PetType: "cat"}}
	_, err := s.ImportBundle(ctx, b)
	require.NoError(t, err)

	b.Pet.Name = "Luna II"
	res, err := s.ImportBundle(ctx, b)
	require.NoError(t, err)
	assert.False(t, res.PetCreated)

	pets, err := s.GetPets(ctx)
	require.NoError(t, err)
	assert.Len(t, pets, 2)

	pet, _, err := s.GetPet(ctx, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, "Luna II", pet.Name)

	cur, _ := s.Session().PetID()
	assert.Equal(t, local.ID, cur)
}

func TestImportBundle_RequiresPetID(t *testing.T) {
	s, _, _ := newTestStore(t)
	_, err := s.ImportBundle(context.Background(), Bundle{Pet: Pet{Name: "Ghost"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
