package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const petIDKey ctxKey = "pet_id"

// HeaderPetID permite elegir el pet por request sin tocar la sesión.
const HeaderPetID = "X-Pet-ID"

// CurrentPet lo implementa localdb.Session.
type CurrentPet interface {
	PetID() (string, bool)
}

// PetContext:
// - Si viene X-Pet-ID => ese pet.
// - Si no, el pet actual de la sesión (si hay).
// - Si no hay ninguno, el request sigue igual; los handlers decidirán.
func PetContext(session CurrentPet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get(HeaderPetID)); id != "" {
				next.ServeHTTP(w, r.WithContext(WithPetID(r.Context(), id)))
				return
			}
			if session != nil {
				if id, ok := session.PetID(); ok {
					next.ServeHTTP(w, r.WithContext(WithPetID(r.Context(), id)))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithPetID(ctx context.Context, petID string) context.Context {
	return context.WithValue(ctx, petIDKey, petID)
}

func GetPetID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(petIDKey).(string)
	return id, ok && id != ""
}

// ResolvePetID devuelve explicit si viene, si no el pet del contexto.
func ResolvePetID(ctx context.Context, explicit string) (string, bool) {
	if id := strings.TrimSpace(explicit); id != "" {
		return id, true
	}
	return GetPetID(ctx)
}
