package localdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	defaultPetName = "My Pet"
	defaultPetType = "dog"
)

// MigrateIfNeeded pasa el formato viejo (un solo pet en LegacyKeyPet) a la
// colección de pets. No hace nada si ya hay pet actual o no hay datos viejos.
// Un JSON viejo inválido se ignora. Las keys viejas se borran después de migrar
// para que un DeletePet posterior no vuelva a importarlas.
func (s *Store) MigrateIfNeeded(ctx context.Context) (migrated bool, err error) {
	defer s.track("migrateIfNeeded")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, ok, err := s.readPointer(ctx); err != nil || ok {
		return false, err
	}

	raw, ok, err := s.kv.Get(ctx, LegacyKeyPet)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", LegacyKeyPet, err)
	}
	if !ok {
		return false, nil
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		s.log.Warn("legacy pet is not valid JSON, skipping migration", map[string]any{"key": LegacyKeyPet})
		return false, nil
	}

	legacyID, _, err := s.kv.Get(ctx, LegacyKeyPetID)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", LegacyKeyPetID, err)
	}

	p := s.petFromLegacy(fields, strings.TrimSpace(legacyID))

	items, _, err := readCollection[Pet](ctx, s, KeyPets)
	if err != nil {
		return false, err
	}
	if i := indexOf(items, p.ID); i >= 0 {
		items[i] = p
	} else {
		items = append([]Pet{p}, items...)
	}
	if err := writeCollection(ctx, s, KeyPets, items); err != nil {
		return false, err
	}
	if err := s.kv.Set(ctx, KeyCurrentPetID, p.ID); err != nil {
		return false, err
	}
	s.session.set(p.ID)

	for _, k := range []string{LegacyKeyPet, LegacyKeyPetID} {
		if err := s.kv.Remove(ctx, k); err != nil {
			return true, err
		}
	}

	s.log.Info("legacy pet migrated", map[string]any{"pet_id": p.ID})
	return true, nil
}

func (s *Store) petFromLegacy(m map[string]any, legacyID string) Pet {
	id := str(m["id"])
	if id == "" {
		id = legacyID
	}
	if id == "" {
		id = s.newID("pet")
	}

	name := str(m["name"])
	if name == "" {
		name = defaultPetName
	}
	petType := str(m["pet_type"])
	if petType == "" {
		petType = defaultPetType
	}

	now := s.stamp()
	created := millis(m["created_at"], now)

	return Pet{
		ID:            id,
		Name:          name,
		BirthDate:     str(m["birth_date"]),
		PetType:       petType,
		CustomPetType: strPtr(m["custom_pet_type"]),
		Breed:         strPtr(m["breed"]),
		Weight:        floatPtr(m["weight"]),
		Gender:        strPtr(m["gender"]),
		Photo:         strPtr(m["photo"]),
		CreatedAt:     created,
		UpdatedAt:     millis(m["updated_at"], created),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func strPtr(v any) *string {
	s := str(v)
	if s == "" {
		return nil
	}
	return &s
}

func floatPtr(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func millis(v any, fallback int64) int64 {
	if n, ok := v.(float64); ok && n > 0 {
		return int64(n)
	}
	return fallback
}
