package localdb

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawnote/internal/adapters/storage/memory"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T) (*Store, *memory.KVStore, *fakeClock) {
	t.Helper()
	kvs := memory.NewKVStore()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	return New(kvs, Options{Now: clock.Now}), kvs, clock
}

func strp(s string) *string { return &s }

func addTestPet(t *testing.T, s *Store, name string) Pet {
	t.Helper()
	p, err := s.AddPet(context.Background(), PetInput{Name: name, BirthDate: "2020-01-01", PetType: "dog"})
	require.NoError(t, err)
	return p
}

func TestAddPet_GeneratesIDAndStampsTimestamps(t *testing.T) {
	s, _, clock := newTestStore(t)
	weight := 12.5

	in := PetInput{
		Name:          "Rex",
		BirthDate:     "2020-01-01",
		PetType:       "other",
		CustomPetType: strp("Rabbit"),
		Breed:         strp("Lop"),
		Weight:        &weight,
		Gender:        strp("male"),
		Photo:         strp("data:image/jpeg;base64,AAAA"),
	}
	p, err := s.AddPet(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.True(t, strings.HasPrefix(p.ID, "pet_"))
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Equal(t, clock.Now().UnixMilli(), p.CreatedAt)

	assert.Equal(t, in.Name, p.Name)
	assert.Equal(t, in.BirthDate, p.BirthDate)
	assert.Equal(t, in.PetType, p.PetType)
	assert.Equal(t, in.CustomPetType, p.CustomPetType)
	assert.Equal(t, in.Breed, p.Breed)
	assert.Equal(t, in.Weight, p.Weight)
	assert.Equal(t, in.Gender, p.Gender)
	assert.Equal(t, in.Photo, p.Photo)
	assert.Equal(t, "Rabbit", p.DisplayType())
}

func TestAddPet_BecomesCurrentPet(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	first := addTestPet(t, s, "Rex")
	second := addTestPet(t, s, "Milo")

	cur, ok, err := s.GetCurrentPet(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second.ID, cur.ID)

	id, ok := s.Session().PetID()
	assert.True(t, ok)
	assert.Equal(t, second.ID, id)

	// prepend: el más nuevo primero
	pets, err := s.GetPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, second.ID, pets[0].ID)
	assert.Equal(t, first.ID, pets[1].ID)
}

func TestUpdatePet_MissingIDLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	s, kvs, _ := newTestStore(t)
	addTestPet(t, s, "Rex")

	before, _, _ := kvs.Get(ctx, KeyPets)

	_, ok, err := s.UpdatePet(ctx, "pet_missing", PetPatch{Name: strp("X")})
	require.NoError(t, err)
	assert.False(t, ok)

	after, _, _ := kvs.Get(ctx, KeyPets)
	assert.Equal(t, before, after)
}

func TestUpdatePet_ChangesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	s, _, clock := newTestStore(t)
	weight := 20.0
	orig, err := s.AddPet(ctx, PetInput{Name: "Rex", BirthDate: "2020-01-01", PetType: "dog", Weight: &weight, Breed: strp("Beagle")})
	require.NoError(t, err)

	clock.Advance(time.Second)
	updated, ok, err := s.UpdatePet(ctx, orig.ID, PetPatch{Name: strp("X")})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "X", updated.Name)
	assert.Greater(t, updated.UpdatedAt, orig.UpdatedAt)

	want := orig
	want.Name = "X"
	want.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, want, updated)

	stored, ok, err := s.GetPet(ctx, orig.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated, stored)
}

func TestUpdatePet_UpdatedAtIncreasesWithFrozenClock(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	p := addTestPet(t, s, "Rex")

	updated, ok, err := s.UpdatePet(ctx, p.ID, PetPatch{Gender: strp("male")})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Greater(t, updated.UpdatedAt, p.UpdatedAt)
}

func TestDeletePet_CascadesOnlyOwnedRecords(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	a := addTestPet(t, s, "A")
	b := addTestPet(t, s, "B")

	for _, p := range []Pet{a, b} {
		_, err := s.AddReminder(ctx, ReminderInput{PetID: p.ID, Title: "Walk", Time: "08:00", IsActive: true})
		require.NoError(t, err)
		_, err = s.AddChecklist(ctx, ChecklistInput{PetID: p.ID, Title: "Daily", Items: []ChecklistItem{{Text: "Feed"}}})
		require.NoError(t, err)
		_, err = s.AddVetVisit(ctx, VetVisitInput{PetID: p.ID, Title: "Checkup", Date: "2024-02-01"})
		require.NoError(t, err)
	}

	removed, err := s.DeletePet(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	pets, err := s.GetPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, b.ID, pets[0].ID)

	reminders, err := s.GetReminders(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, b.ID, reminders[0].PetID)

	checklists, err := s.GetChecklists(ctx)
	require.NoError(t, err)
	require.Len(t, checklists, 1)
	assert.Equal(t, b.ID, checklists[0].PetID)

	visits, err := s.GetVetVisits(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, b.ID, visits[0].PetID)

	rep, err := s.Inspect(ctx)
	require.NoError(t, err)
	assert.True(t, rep.Healthy())
	assert.Empty(t, rep.PendingCascade)
}

func TestDeletePet_PointerHandling(t *testing.T) {
	ctx := context.Background()
	s, kvs, _ := newTestStore(t)

	a := addTestPet(t, s, "A")
	b := addTestPet(t, s, "B") // actual

	// borrar un pet que no es el actual no toca el puntero
	_, err := s.DeletePet(ctx, a.ID)
	require.NoError(t, err)
	v, ok, _ := kvs.Get(ctx, KeyCurrentPetID)
	assert.True(t, ok)
	assert.Equal(t, b.ID, v)

	// borrar el actual limpia el puntero
	_, err = s.DeletePet(ctx, b.ID)
	require.NoError(t, err)
	_, ok, _ = kvs.Get(ctx, KeyCurrentPetID)
	assert.False(t, ok)

	_, ok = s.Session().PetID()
	assert.False(t, ok)

	_, ok, err = s.GetCurrentPet(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeletePet_UnknownIDReportsNotRemoved(t *testing.T) {
	ctx := context.Background()
	s, kvs, _ := newTestStore(t)
	p := addTestPet(t, s, "Rex")

	_, err := s.AddReminder(ctx, ReminderInput{PetID: "pet_gone", Title: "Walk", Time: "08:00"})
	require.NoError(t, err)

	removed, err := s.DeletePet(ctx, "pet_gone")
	require.NoError(t, err)
	assert.False(t, removed)

	// los hijos huérfanos se borran igual
	reminders, err := s.GetReminders(ctx)
	require.NoError(t, err)
	assert.Empty(t, reminders)

	pets, err := s.GetPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, p.ID, pets[0].ID)

	_, ok, _ := kvs.Get(ctx, KeyPendingCascade)
	assert.False(t, ok)
}

func TestGetCurrentPet_StalePointerIsAbsent(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	addTestPet(t, s, "Rex")

	require.NoError(t, s.SetCurrentPetID(ctx, "pet_gone"))
	_, ok, err := s.GetCurrentPet(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetCurrentPet_AcceptsJSONQuotedPointer(t *testing.T) {
	ctx := context.Background()
	s, kvs, _ := newTestStore(t)
	p := addTestPet(t, s, "Rex")

	require.NoError(t, kvs.Set(ctx, KeyCurrentPetID, `"`+p.ID+`"`))
	cur, ok, err := s.GetCurrentPet(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.ID, cur.ID)
}

func TestClearCurrentPet(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	addTestPet(t, s, "Rex")

	require.NoError(t, s.ClearCurrentPet(ctx))
	_, ok, err := s.GetCurrentPet(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindPetByAccess(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	p := addTestPet(t, s, "Rex")

	got, ok, err := s.FindPetByAccess(ctx, "  rEx ", "2020-01-01")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)

	_, ok, err = s.FindPetByAccess(ctx, "Rex", "2021-01-01")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.FindPetByAccess(ctx, "", "2020-01-01")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetReminders_FreshStoreIsEmpty(t *testing.T) {
	s, _, _ := newTestStore(t)

	items, err := s.GetReminders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetCollections_CorruptValueIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, kvs, _ := newTestStore(t)
	require.NoError(t, kvs.Set(ctx, KeyChecklists, "{not json"))

	items, err := s.GetChecklists(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	rep, err := s.Inspect(ctx)
	require.NoError(t, err)
	assert.False(t, rep.Healthy())
	for _, c := range rep.Collections {
		if c.Key == KeyChecklists {
			assert.Equal(t, "corrupt", c.State)
		} else {
			assert.Equal(t, "absent", c.State)
		}
	}
}

type failingKV struct {
	*memory.KVStore
	failSet map[string]bool
	err     error
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet[key] {
		return f.err
	}
	return f.KVStore.Set(ctx, key, value)
}

func TestStorageFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("storage unavailable")
	kvs := &failingKV{KVStore: memory.NewKVStore(), failSet: map[string]bool{KeyReminders: true}, err: boom}
	s := New(kvs, Options{})

	_, err := s.AddReminder(ctx, ReminderInput{PetID: "pet_1", Title: "Walk", Time: "08:00"})
	assert.ErrorIs(t, err, boom)
}

func TestStore_ObserverReceivesOps(t *testing.T) {
	obs := &recordingObserver{}
	s := New(memory.NewKVStore(), Options{Observer: obs})

	_, err := s.GetPets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"getPets"}, obs.ops)
}

type recordingObserver struct {
	mu  sync.Mutex
	ops []string
}

func (o *recordingObserver) ObserveStoreOp(op string, _ time.Duration, _ error) {
	o.mu.Lock()
	o.ops = append(o.ops, op)
	o.mu.Unlock()
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddReminder(ctx, ReminderInput{PetID: "pet_1", Title: "Walk", Time: "08:00"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := s.GetReminders(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 20)
}
