package pets

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/gookit/validate"

	"pawnote/internal/localdb"
)

// Store es lo que estos handlers usan de localdb.Store.
type Store interface {
	GetPets(ctx context.Context) ([]localdb.Pet, error)
	GetPet(ctx context.Context, id string) (localdb.Pet, bool, error)
	AddPet(ctx context.Context, in localdb.PetInput) (localdb.Pet, error)
	UpdatePet(ctx context.Context, id string, patch localdb.PetPatch) (localdb.Pet, bool, error)
	DeletePet(ctx context.Context, id string) (bool, error)
	FindPetByAccess(ctx context.Context, name, birthDate string) (localdb.Pet, bool, error)
	GetCurrentPet(ctx context.Context) (localdb.Pet, bool, error)
	SetCurrentPetID(ctx context.Context, id string) error
	ClearCurrentPet(ctx context.Context) error
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Post("/access", accessHandler(store))

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(store))
		pr.Post("/", createPetHandler(store))

		// Pet actual (sesión). Rutas estáticas antes que {petID}.
		pr.Get("/current", getCurrentPetHandler(store))
		pr.Put("/current", setCurrentPetHandler(store))
		pr.Delete("/current", clearCurrentPetHandler(store))

		pr.Get("/{petID}", getPetHandler(store))
		pr.Patch("/{petID}", updatePetHandler(store))
		pr.Delete("/{petID}", deletePetHandler(store))
	})
}

type accessRequest struct {
	PetName   string `json:"pet_name" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"`
}

type accessResponse struct {
	Success bool        `json:"success"`
	Pet     localdb.Pet `json:"pet"`
}

type createPetRequest struct {
	Name          string   `json:"name" validate:"required"`
	BirthDate     string   `json:"birth_date" validate:"required"`
	PetType       string   `json:"pet_type"`
	CustomPetType *string  `json:"custom_pet_type"`
	Breed         *string  `json:"breed"`
	Weight        *float64 `json:"weight"`
	Gender        *string  `json:"gender"`
	Photo         *string  `json:"photo"`
}

type setCurrentRequest struct {
	PetID string `json:"pet_id" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// accessHandler godoc
// @Summary Entrar con nombre de mascota + fecha de nacimiento
// @Description Busca el pet (nombre sin distinguir mayúsculas, fecha exacta) y lo deja como pet actual.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body accessRequest true "Nombre y fecha YYYY-MM-DD"
// @Success 200 {object} accessResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 404 {string} string "pet not found"
// @Router /access [post]
func accessHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accessRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, ok, err := store.FindPetByAccess(r.Context(), req.PetName, req.BirthDate)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "pet not found, check the name and birth date", http.StatusNotFound)
			return
		}
		if err := store.SetCurrentPetID(r.Context(), p.ID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, accessResponse{Success: true, Pet: p})
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Param name query string false "Filtro exacto por nombre, sin distinguir mayúsculas"
// @Success 200 {array} localdb.Pet
// @Router /pets [get]
func listPetsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.GetPets(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
			filtered := make([]localdb.Pet, 0, len(items))
			for _, p := range items {
				if strings.EqualFold(p.Name, name) {
					filtered = append(filtered, p)
				}
			}
			items = filtered
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea la mascota y la deja como pet actual. pet_type por defecto "dog".
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} localdb.Pet
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Router /pets [post]
func createPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if req.PetType == "" {
			req.PetType = "dog"
		}

		p, err := store.AddPet(r.Context(), localdb.PetInput{
			Name:          strings.TrimSpace(req.Name),
			BirthDate:     strings.TrimSpace(req.BirthDate),
			PetType:       req.PetType,
			CustomPetType: req.CustomPetType,
			Breed:         req.Breed,
			Weight:        req.Weight,
			Gender:        req.Gender,
			Photo:         req.Photo,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} localdb.Pet
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok, err := store.GetPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota (PATCH)
// @Description Sólo se tocan los campos enviados. null equivale a no enviar el campo.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body localdb.PetPatch true "Campos a cambiar"
// @Success 200 {object} localdb.Pet
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var patch localdb.PetPatch
		if err := dec.Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, ok, err := store.UpdatePet(r.Context(), chi.URLParam(r, "petID"), patch)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota con todos sus reminders, checklists y visitas al vet.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} messageResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := store.DeletePet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "pet deleted"})
	}
}

func getCurrentPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok, err := store.GetCurrentPet(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "no current pet", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func setCurrentPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setCurrentRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, ok, err := store.GetPet(r.Context(), req.PetID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if err := store.SetCurrentPetID(r.Context(), p.ID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// clearCurrentPetHandler es el "logout": no borra datos.
func clearCurrentPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.ClearCurrentPet(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	v := validate.Struct(dst)
	if !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, localdb.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON se repite en cada paquete de handlers.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
