package reminders

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
	GetReminders(ctx context.Context) ([]localdb.Reminder, error)
	RemindersForPet(ctx context.Context, petID string, active *bool) ([]localdb.Reminder, error)
	AddReminder(ctx context.Context, in localdb.ReminderInput) (localdb.Reminder, error)
	UpdateReminder(ctx context.Context, id string, patch localdb.ReminderPatch) (localdb.Reminder, bool, error)
	ToggleReminder(ctx context.Context, id string) (localdb.Reminder, bool, error)
	DeleteReminder(ctx context.Context, id string) (bool, error)
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(store))
		rr.Post("/", createReminderHandler(store))
		rr.Patch("/{reminderID}", updateReminderHandler(store))
		rr.Delete("/{reminderID}", deleteReminderHandler(store))
		rr.Patch("/{reminderID}/toggle", toggleReminderHandler(store))
	})
}

type createReminderRequest struct {
	PetID          string  `json:"pet_id"`
	Title          string  `json:"title" validate:"required"`
	Description    *string `json:"description"`
	Time           string  `json:"time" validate:"required"`
	ReminderDate   *string `json:"reminder_date"`
	IsRecurring    *bool   `json:"is_recurring"`
	RecurrenceDays []int   `json:"recurrence_days"`
	Category       string  `json:"category"`
	IsActive       *bool   `json:"is_active"`
	SoundID        *string `json:"sound_id"`
	NotificationID *string `json:"notification_id"`
}

type toggleResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

// listRemindersHandler godoc
// @Summary Listar reminders
// @Description Sin pet_id usa X-Pet-ID o el pet actual. is_active por defecto true; "all" no filtra.
// @Tags reminders
// @Produce json
// @Param X-Pet-ID header string false "Pet para este request"
// @Param pet_id query string false "ID de la mascota"
// @Param is_active query string false "true (default), false o all"
// @Success 200 {array} localdb.Reminder
// @Failure 400 {string} string "is_active inválido"
// @Router /reminders [get]
func listRemindersHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, err := parseActive(r.URL.Query().Get("is_active"))
		if err != nil {
			http.Error(w, "is_active must be true, false or all", http.StatusBadRequest)
			return
		}

		var items []localdb.Reminder
		if petID, ok := middleware.ResolvePetID(r.Context(), r.URL.Query().Get("pet_id")); ok {
			items, err = store.RemindersForPet(r.Context(), petID, active)
		} else {
			items, err = store.GetReminders(r.Context())
			items = localdb.FilterActive(items, active)
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// createReminderHandler godoc
// @Summary Crear reminder
// @Description recurrence_days vacío = todos los días (0=domingo). is_active e is_recurring por defecto true, category "general".
// @Tags reminders
// @Accept json
// @Produce json
// @Param X-Pet-ID header string false "Pet si el body no trae pet_id"
// @Param payload body createReminderRequest true "Datos del reminder"
// @Success 201 {object} localdb.Reminder
// @Failure 400 {string} string "invalid json / campos requeridos / pet_id requerido"
// @Router /reminders [post]
func createReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReminderRequest
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
		for _, d := range req.RecurrenceDays {
			if d < 0 || d > 6 {
				http.Error(w, "recurrence_days must be between 0 and 6", http.StatusBadRequest)
				return
			}
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}
		isRecurring := true
		if req.IsRecurring != nil {
			isRecurring = *req.IsRecurring
		}

		rem, err := store.AddReminder(r.Context(), localdb.ReminderInput{
			PetID:          petID,
			Title:          strings.TrimSpace(req.Title),
			Description:    req.Description,
			Time:           strings.TrimSpace(req.Time),
			ReminderDate:   req.ReminderDate,
			IsRecurring:    isRecurring,
			RecurrenceDays: req.RecurrenceDays,
			Category:       strings.TrimSpace(req.Category),
			IsActive:       isActive,
			SoundID:        req.SoundID,
			NotificationID: req.NotificationID,
		})
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, rem)
	}
}

func updateReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var patch localdb.ReminderPatch
		if err := dec.Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rem, ok, err := store.UpdateReminder(r.Context(), chi.URLParam(r, "reminderID"), patch)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rem)
	}
}

// toggleReminderHandler godoc
// @Summary Activar/desactivar reminder
// @Tags reminders
// @Produce json
// @Param reminderID path string true "ID del reminder"
// @Success 200 {object} toggleResponse
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/toggle [patch]
func toggleReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rem, ok, err := store.ToggleReminder(r.Context(), chi.URLParam(r, "reminderID"))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toggleResponse{ID: rem.ID, IsActive: rem.IsActive})
	}
}

func deleteReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := store.DeleteReminder(r.Context(), chi.URLParam(r, "reminderID"))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !ok {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// parseActive: vacío = sólo activos, "all" = sin filtro.
func parseActive(v string) (*bool, error) {
	v = strings.TrimSpace(v)
	switch v {
	case "":
		b := true
		return &b, nil
	case "all":
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
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
