// Package localdb es la base local de Pawnote: colecciones de pets, reminders,
// checklists y vet visits guardadas como arrays JSON sobre un kv.Store.
//
// Cada operación lee la colección completa, la modifica en memoria y la vuelve
// a escribir. Las colecciones son chicas (un usuario, un dispositivo).
// Las escrituras se serializan con un único mutex; las lecturas no bloquean.
package localdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pawnote/internal/platform/logger"
	"pawnote/internal/ports/kv"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNoInstructions = errors.New("vet visit has no instructions")
)

// Observer recibe la duración de cada operación pública (metrics). Puede ser nil.
type Observer interface {
	ObserveStoreOp(op string, d time.Duration, err error)
}

type Options struct {
	Logger   logger.Logger
	Observer Observer
	Now      func() time.Time
}

type Store struct {
	kv  kv.Store
	log logger.Logger
	obs Observer
	now func() time.Time

	writeMu sync.Mutex
	session *Session

	opened OpenReport
}

// OpenReport resume lo que hizo Open al arrancar.
type OpenReport struct {
	ResumedCascade string `json:"resumed_cascade,omitempty"` // pet cuyo borrado se completó
	Migrated       bool   `json:"migrated"`
}

func New(store kv.Store, opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:      store,
		log:     log.With(map[string]any{"component": "localdb"}),
		obs:     opts.Observer,
		now:     now,
		session: &Session{},
	}
}

// Open deja el store listo al arrancar la app:
// completa un cascade interrumpido, migra el formato viejo y carga la sesión.
func (s *Store) Open(ctx context.Context) error {
	resumed, err := s.resumePendingCascade(ctx)
	if err != nil {
		return err
	}
	migrated, err := s.MigrateIfNeeded(ctx)
	if err != nil {
		return err
	}
	s.opened = OpenReport{ResumedCascade: resumed, Migrated: migrated}
	return s.reloadSession(ctx)
}

// Opened devuelve el resultado del último Open.
func (s *Store) Opened() OpenReport {
	return s.opened
}

// Session expone el pet actual como estado explícito de la app.
func (s *Store) Session() *Session {
	return s.session
}

func (s *Store) reloadSession(ctx context.Context) error {
	id, ok, err := s.readPointer(ctx)
	if err != nil {
		return err
	}
	if ok {
		s.session.set(id)
	} else {
		s.session.clear()
	}
	return nil
}

func (s *Store) track(op string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		if s.obs == nil {
			return
		}
		var err error
		if errp != nil {
			err = *errp
		}
		s.obs.ObserveStoreOp(op, time.Since(start), err)
	}
}

func (s *Store) stamp() int64 {
	return s.now().UnixMilli()
}

// touch garantiza updated_at estrictamente creciente aunque el reloj no avance.
func (s *Store) touch(prev int64) int64 {
	n := s.stamp()
	if n <= prev {
		n = prev + 1
	}
	return n
}

// newID arma prefix_<ms>_<random>. La unicidad es probabilística.
func (s *Store) newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, s.stamp(), suffix)
}

// Session es el puntero "pet actual". Se inicializa en Open, cambia con
// AddPet/SetCurrentPetID/DeletePet y se limpia con ClearCurrentPet.
type Session struct {
	mu    sync.RWMutex
	petID string
}

// PetID devuelve ok=false si no hay pet seleccionado.
func (s *Session) PetID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.petID, s.petID != ""
}

func (s *Session) set(id string) {
	s.mu.Lock()
	s.petID = id
	s.mu.Unlock()
}

func (s *Session) clear() {
	s.set("")
}
