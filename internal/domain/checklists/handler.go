package checklists

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/gookit/validate"

	"pawnote/internal/localdb"
	"pawnote/internal/middleware"
)

type Store interface {
	GetChecklists(ctx context.Context) ([]localdb.Checklist, error)
	GetChecklist(ctx context.Context, id string) (localdb.Checklist, bool, error)
	ChecklistsForPet(ctx context.Context, petID, category string) ([]localdb.Checklist, error)
	AddChecklist(ctx context.Context, in localdb.ChecklistInput) (localdb.Checklist, error)
	UpdateChecklist(ctx context.Context, id string, patch localdb.ChecklistPatch) (localdb.Checklist, bool, error)
	SetChecklistItem(ctx context.Context, checklistID, itemID string, completed bool) (localdb.Checklist, bool, error)
	DeleteChecklist(ctx context.Context, id string) (bool, error)
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/checklists", func(cr chi.Router) {
		cr.Get("/", listChecklistsHandler(store))
		cr.Post("/", createChecklistHandler(store))
		cr.Get("/{checklistID}", getChecklistHandler(store))
		cr.Patch("/{checklistID}", updateChecklistHandler(store))
		cr.Delete("/{checklistID}", deleteChecklistHandler(store))
		cr.Patch("/{checklistID}/items/{itemID}", setItemHandler(store))
	})
}

type createChecklistRequest struct {
	PetID             string                  `json:"pet_id"`
	Title             string                  `json:"title" validate:"required"`
	Category          string                  `json:"category" validate:"in:daily,medication,feeding,vet"`
	Items             []localdb.ChecklistItem `json:"items"`
	IsRecurring       bool                    `json:"is_recurring"`
	RecurrencePattern *string                 `json:"recurrence_pattern"` // daily, weekly, monthly
}

type setItemRequest struct {
	Completed *bool `json:"completed"`
}

// listChecklistsHandler godoc
// @Summary Listar checklists
// @Tags checklists
// @Produce json
// @Param X-Pet-ID header string false "Pet para este request"
// @Param pet_id query string false "ID de la mascota"
// @Param category query string false "daily, medication, feeding o vet"
// @Success 200 {array} localdb.Checklist
// @Router /checklists [get]
func listChecklistsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		var (
			items []localdb.Checklist
			err   error
		)
		if petID, ok := middleware.ResolvePetID(r.Context(), r.URL.Query().Get("pet_id")); ok {
			items, err = store.ChecklistsForPet(r.Context(), petID, category)
		} else {
			items, err = store.GetChecklists(r.Context())
			if err == nil && category != "" {
				filtered := items[:0]
				for _, c := range items {
					if c.Category == category {
						filtered = append(filtered, c)
					}
				}
				items = filtered
			}
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// createChecklistHandler godoc
// @Summary Crear checklist
// @Description Los items sin id reciben uno. category por defecto "daily".
// @Tags checklists
// @Accept json
// @Produce json
// @Param X-Pet-ID header string false "Pet si el body no trae pet_id"
// @Param payload body createChecklistRequest true "Datos del checklist"
// @Success 201 {object} localdb.Checklist
// @Failure 400 {string} string "invalid json / campos requeridos / pet_id requerido"
// @Router /checklists [post]
func createChecklistHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createChecklistRequest
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

		c, err := store.AddChecklist(r.Context(), localdb.ChecklistInput{
			PetID:             petID,
			Title:             strings.TrimSpace(req.Title),
			Category:          req.Category,
			Items:             req.Items,
			IsRecurring:       req.IsRecurring,
			RecurrencePattern: req.RecurrencePattern,
		})
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, c)
	}
}

// getChecklistHandler godoc
// @Summary Obtener checklist
// @Tags checklists
// @Produce json
// @Param checklistID path string true "ID del checklist"
// @Success 200 {object} localdb.Checklist
// @Failure 404 {string} string "checklist not found"
// @Router /checklists/{checklistID} [get]
func getChecklistHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok, err := store.GetChecklist(r.Context(), chi.URLParam(r, "checklistID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "checklist not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func updateChecklistHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var patch localdb.ChecklistPatch
		if err := dec.Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, ok, err := store.UpdateChecklist(r.Context(), chi.URLParam(r, "checklistID"), patch)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "checklist not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// setItemHandler godoc
// @Summary Marcar item de checklist
// @Description completed va en query (?completed=true) o en el body.
// @Tags checklists
// @Accept json
// @Produce json
// @Param checklistID path string true "ID del checklist"
// @Param itemID path string true "ID del item"
// @Param completed query bool false "Nuevo estado"
// @Success 200 {object} localdb.Checklist
// @Failure 400 {string} string "completed requerido"
// @Failure 404 {string} string "checklist not found"
// @Router /checklists/{checklistID}/items/{itemID} [patch]
func setItemHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var completed *bool
		if v := strings.TrimSpace(r.URL.Query().Get("completed")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "completed must be a boolean", http.StatusBadRequest)
				return
			}
			completed = &b
		} else if r.ContentLength != 0 {
			var req setItemRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			completed = req.Completed
		}
		if completed == nil {
			http.Error(w, "completed is required", http.StatusBadRequest)
			return
		}

		c, ok, err := store.SetChecklistItem(r.Context(), chi.URLParam(r, "checklistID"), chi.URLParam(r, "itemID"), *completed)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "checklist or item not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func deleteChecklistHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := store.DeleteChecklist(r.Context(), chi.URLParam(r, "checklistID"))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "checklist not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, localdb.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
