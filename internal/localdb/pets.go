package localdb

import (
	"context"
	"strings"
)

func (s *Store) GetPets(ctx context.Context) (_ []Pet, err error) {
	defer s.track("getPets")(&err)

	items, _, err := readCollection[Pet](ctx, s, KeyPets)
	return items, err
}

func (s *Store) GetPet(ctx context.Context, id string) (Pet, bool, error) {
	return getByID[Pet](ctx, s, KeyPets, id)
}

// AddPet crea el pet y lo deja como pet actual.
func (s *Store) AddPet(ctx context.Context, in PetInput) (_ Pet, err error) {
	defer s.track("addPet")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	now := s.stamp()
	p := Pet{
		ID:            s.newID("pet"),
		Name:          in.Name,
		BirthDate:     in.BirthDate,
		PetType:       in.PetType,
		CustomPetType: in.CustomPetType,
		Breed:         in.Breed,
		Weight:        in.Weight,
		Gender:        in.Gender,
		Photo:         in.Photo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := prepend(ctx, s, KeyPets, p); err != nil {
		return Pet{}, err
	}
	if err := s.kv.Set(ctx, KeyCurrentPetID, p.ID); err != nil {
		return Pet{}, err
	}
	s.session.set(p.ID)

	return p, nil
}

// UpdatePet devuelve ok=false si el pet no existe.
func (s *Store) UpdatePet(ctx context.Context, id string, patch PetPatch) (_ Pet, _ bool, err error) {
	defer s.track("updatePet")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return updateByID(ctx, s, KeyPets, id, func(cur Pet) (Pet, error) {
		next, err := mergePatch(cur, patch)
		if err != nil {
			return Pet{}, err
		}
		next.ID = cur.ID
		next.CreatedAt = cur.CreatedAt
		next.UpdatedAt = s.touch(cur.UpdatedAt)
		return next, nil
	})
}

// FindPetByAccess busca por nombre (sin distinguir mayúsculas) + fecha de nacimiento exacta.
func (s *Store) FindPetByAccess(ctx context.Context, name, birthDate string) (Pet, bool, error) {
	name = strings.TrimSpace(name)
	birthDate = strings.TrimSpace(birthDate)
	if name == "" || birthDate == "" {
		return Pet{}, false, nil
	}

	items, err := s.GetPets(ctx)
	if err != nil {
		return Pet{}, false, err
	}
	for _, p := range items {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) && p.BirthDate == birthDate {
			return p, true, nil
		}
	}
	return Pet{}, false, nil
}

// GetCurrentPet devuelve ok=false si no hay puntero o apunta a un pet que ya no existe.
func (s *Store) GetCurrentPet(ctx context.Context) (_ Pet, _ bool, err error) {
	defer s.track("getCurrentPet")(&err)

	id, ok, err := s.readPointer(ctx)
	if err != nil || !ok {
		return Pet{}, false, err
	}
	return s.GetPet(ctx, id)
}

// SetCurrentPetID no verifica que el pet exista.
func (s *Store) SetCurrentPetID(ctx context.Context, id string) (err error) {
	defer s.track("setCurrentPetId")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.kv.Set(ctx, KeyCurrentPetID, id); err != nil {
		return err
	}
	s.session.set(id)
	return nil
}

// ClearCurrentPet es el equivalente a "salir": borra el puntero.
func (s *Store) ClearCurrentPet(ctx context.Context) (err error) {
	defer s.track("clearCurrentPet")(&err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.kv.Remove(ctx, KeyCurrentPetID); err != nil {
		return err
	}
	s.session.clear()
	return nil
}
