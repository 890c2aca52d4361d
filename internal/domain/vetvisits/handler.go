package vetvisits

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/gookit/validate"

	"pawnote/internal/localdb"
	"pawnote/internal/middleware"
)

type Store interface {
	GetVetVisits(ctx context.Context) ([]localdb.VetVisit, error)
	GetVetVisit(ctx context.Context, id string) (localdb.VetVisit, bool, error)
	VetVisitsForPet(ctx context.Context, petID string) ([]localdb.VetVisit, error)
	AddVetVisit(ctx context.Context, in localdb.VetVisitInput) (localdb.VetVisit, error)
	UpdateVetVisit(ctx context.Context, id string, patch localdb.VetVisitPatch) (localdb.VetVisit, bool, error)
	DeleteVetVisit(ctx context.Context, id string) (bool, error)
	VetVisitToChecklist(ctx context.Context, visitID string) (localdb.Checklist, bool, error)
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/vet-visits", func(vr chi.Router) {
		vr.Get("/", listVetVisitsHandler(store))
		vr.Post("/", createVetVisitHandler(store))
		vr.Get("/{visitID}", getVetVisitHandler(store))
		vr.Patch("/{visitID}", updateVetVisitHandler(store))
		vr.Delete("/{visitID}", deleteVetVisitHandler(store))
		vr.Post("/{visitID}/to-checklist", toChecklistHandler(store))
	})
}

type createVetVisitRequest struct {
	PetID        string   `json:"pet_id"`
	Title        string   `json:"title" validate:"required"`
	Date         string   `json:"date" validate:"required"`
	Notes        *string  `json:"notes"`
	VetName      *string  `json:"vet_name"`
	Instructions []string `json:"instructions"`
	FollowUpDate *string  `json:"follow_up_date"`
}

// listVetVisitsHandler godoc
// @Summary Listar visitas al veterinario
// @Description Con pet resuelto se ordenan por fecha, la más reciente primero.
// @Tags vet-visits
// @Produce json
// @Param X-Pet-ID header string false "Pet para este request"
// @Param pet_id query string false "ID de la mascota"
// @Success 200 {array} localdb.VetVisit
// @Router /vet-visits [get]
func listVetVisitsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []localdb.VetVisit
			err   error
		)
		if petID, ok := middleware.ResolvePetID(r.Context(), r.URL.Query().Get("pet_id")); ok {
			items, err = store.VetVisitsForPet(r.Context(), petID)
		} else {
			items, err = store.GetVetVisits(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createVetVisitHandler godoc
// @Summary Registrar visita al veterinario
// @Tags vet-visits
// @Accept json
// @Produce json
// @Param X-Pet-ID header string false "Pet si el body no trae pet_id"
// @Param payload body createVetVisitRequest true "Datos de la visita"
// @Success 201 {object} localdb.VetVisit
// @Failure 400 {string} string "invalid json / campos requeridos / pet_id requerido"
// @Router /vet-visits [post]
func createVetVisitHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVetVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		v := validate.Struct(&req)
		if !v.Validate() {
			http.Error(w, v.Errors.One(), http.StatusBadRequest)
			return
		}
		petID, ok := middleware.ResolvePetID(r.Context(), req.PetID)
		if !ok {
			http.Error(w, "pet_id is required", http.StatusBadRequest)
			return
		}

		visit, err := store.AddVetVisit(r.Context(), localdb.VetVisitInput{
			PetID:        petID,
			Title:        strings.TrimSpace(req.Title),
			Date:         strings.TrimSpace(req.Date),
			Notes:        req.Notes,
			VetName:      req.VetName,
			Instructions: req.Instructions,
			FollowUpDate: req.FollowUpDate,
		})
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, visit)
	}
}

// getVetVisitHandler godoc
// @Summary Obtener visita al veterinario
// @Tags vet-visits
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Success 200 {object} localdb.VetVisit
// @Failure 404 {string} string "vet visit not found"
// @Router /vet-visits/{visitID} [get]
func getVetVisitHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visit, ok, err := store.GetVetVisit(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "vet visit not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, visit)
	}
}

func updateVetVisitHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var patch localdb.VetVisitPatch
		if err := dec.Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		visit, ok, err := store.UpdateVetVisit(r.Context(), chi.URLParam(r, "visitID"), patch)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "vet visit not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, visit)
	}
}

func deleteVetVisitHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := store.DeleteVetVisit(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "vet visit not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// toChecklistHandler godoc
// @Summary Convertir instrucciones del vet en checklist
// @Description Crea un checklist "Vet Instructions - <title>" con categoría vet, un item por instrucción.
// @Tags vet-visits
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Success 201 {object} localdb.Checklist
// @Failure 400 {string} string "la visita no tiene instrucciones"
// @Failure 404 {string} string "vet visit not found"
// @Router /vet-visits/{visitID}/to-checklist [post]
func toChecklistHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok, err := store.VetVisitToChecklist(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "vet visit not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, localdb.ErrNoInstructions), errors.Is(err, localdb.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
