package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pawnote/internal/localdb"
)

// Formas del backend. Las fechas llegan como ISO 8601 sin zona (UTC).

type petDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BirthDate     string   `json:"birth_date"`
	PetType       string   `json:"pet_type"`
	CustomPetType *string  `json:"custom_pet_type"`
	Breed         *string  `json:"breed"`
	Weight        *float64 `json:"weight"`
	Gender        *string  `json:"gender"`
	Photo         *string  `json:"photo"`
	CreatedAt     string   `json:"created_at"`
}

type reminderDTO struct {
	ID             string  `json:"id"`
	PetID          string  `json:"pet_id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	ReminderTime   string  `json:"reminder_time"`
	ReminderDate   *string `json:"reminder_date"`
	IsRecurring    *bool   `json:"is_recurring"`
	RecurrenceDays []int   `json:"recurrence_days"`
	Category       string  `json:"category"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
}

type checklistItemDTO struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	DueTime   *string `json:"due_time"`
}

type checklistDTO struct {
	ID                string             `json:"id"`
	PetID             string             `json:"pet_id"`
	Title             string             `json:"title"`
	Category          string             `json:"category"`
	Items             []checklistItemDTO `json:"items"`
	IsRecurring       bool               `json:"is_recurring"`
	RecurrencePattern *string            `json:"recurrence_pattern"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at"`
}

type vetVisitDTO struct {
	ID           string   `json:"id"`
	PetID        string   `json:"pet_id"`
	VisitDate    string   `json:"visit_date"`
	VetName      *string  `json:"vet_name"`
	Reason       string   `json:"reason"`
	Notes        *string  `json:"notes"`
	Instructions []string `json:"instructions"`
	FollowUpDate *string  `json:"follow_up_date"`
	CreatedAt    string   `json:"created_at"`
}

// FetchBundle trae el pet y sus hijos. Los listados van en paralelo.
func (c *Client) FetchBundle(ctx context.Context, petID string) (localdb.Bundle, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return localdb.Bundle{}, fmt.Errorf("%w: pet id is required", localdb.ErrInvalidInput)
	}

	var pet petDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/pets/"+url.PathEscape(petID), nil, nil, &pet); err != nil {
		return localdb.Bundle{}, fmt.Errorf("fetch pet %s: %w", petID, err)
	}

	byPet := url.Values{"pet_id": {petID}}
	var (
		active, inactive []reminderDTO
		checklists       []checklistDTO
		visits           []vetVisitDTO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := url.Values{"pet_id": {petID}, "is_active": {"true"}}
		return c.doJSON(gctx, http.MethodGet, "/api/reminders", q, nil, &active)
	})
	g.Go(func() error {
		q := url.Values{"pet_id": {petID}, "is_active": {"false"}}
		return c.doJSON(gctx, http.MethodGet, "/api/reminders", q, nil, &inactive)
	})
	g.Go(func() error {
		return c.doJSON(gctx, http.MethodGet, "/api/checklists", byPet, nil, &checklists)
	})
	g.Go(func() error {
		return c.doJSON(gctx, http.MethodGet, "/api/vet-visits", byPet, nil, &visits)
	})
	if err := g.Wait(); err != nil {
		return localdb.Bundle{}, fmt.Errorf("fetch children of %s: %w", petID, err)
	}

	b := localdb.Bundle{Pet: pet.toLocal()}
	for _, r := range append(active, inactive...) {
		b.Reminders = append(b.Reminders, r.toLocal())
	}
	for _, cl := range checklists {
		b.Checklists = append(b.Checklists, cl.toLocal())
	}
	for _, v := range visits {
		b.VetVisits = append(b.VetVisits, v.toLocal())
	}
	return b, nil
}

// Importer es la parte de localdb.Store que usa Pull.
type Importer interface {
	ImportBundle(ctx context.Context, b localdb.Bundle) (localdb.ImportResult, error)
}

// Pull copia un pet del backend al store local.
func Pull(ctx context.Context, c *Client, dst Importer, petID string) (localdb.ImportResult, error) {
	b, err := c.FetchBundle(ctx, petID)
	if err != nil {
		return localdb.ImportResult{}, err
	}
	return dst.ImportBundle(ctx, b)
}

func (p petDTO) toLocal() localdb.Pet {
	created := millis(p.CreatedAt)
	return localdb.Pet{
		ID:            p.ID,
		Name:          p.Name,
		BirthDate:     p.BirthDate,
		PetType:       p.PetType,
		CustomPetType: p.CustomPetType,
		Breed:         p.Breed,
		Weight:        p.Weight,
		Gender:        p.Gender,
		Photo:         p.Photo,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func (r reminderDTO) toLocal() localdb.Reminder {
	created := millis(r.CreatedAt)
	// el backend asume recurrente si no viene
	recurring := r.IsRecurring == nil || *r.IsRecurring
	return localdb.Reminder{
		ID:             r.ID,
		PetID:          r.PetID,
		Title:          r.Title,
		Description:    r.Description,
		Time:           r.ReminderTime,
		ReminderDate:   r.ReminderDate,
		IsRecurring:    recurring,
		RecurrenceDays: r.RecurrenceDays,
		Category:       r.Category,
		IsActive:       r.IsActive,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func (c checklistDTO) toLocal() localdb.Checklist {
	items := make([]localdb.ChecklistItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, localdb.ChecklistItem{
			ID:        it.ID,
			Text:      it.Text,
			Completed: it.Completed,
			DueTime:   it.DueTime,
		})
	}
	return localdb.Checklist{
		ID:                c.ID,
		PetID:             c.PetID,
		Title:             c.Title,
		Category:          c.Category,
		Items:             items,
		IsRecurring:       c.IsRecurring,
		RecurrencePattern: c.RecurrencePattern,
		CreatedAt:         millis(c.CreatedAt),
		UpdatedAt:         millis(c.UpdatedAt),
	}
}

func (v vetVisitDTO) toLocal() localdb.VetVisit {
	created := millis(v.CreatedAt)
	return localdb.VetVisit{
		ID:           v.ID,
		PetID:        v.PetID,
		Title:        v.Reason,
		Date:         v.VisitDate,
		Notes:        v.Notes,
		VetName:      v.VetName,
		Instructions: v.Instructions,
		FollowUpDate: v.FollowUpDate,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// millis devuelve 0 si no se puede parsear; ImportBundle completa con "now".
func millis(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
