package localdb

// Timestamps en epoch milliseconds (created_at, updated_at).

// Pet es la entidad raíz. Reminder, Checklist y VetVisit la referencian por pet_id.
type Pet struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BirthDate     string   `json:"birth_date"` // YYYY-MM-DD esperado, no se valida acá
	PetType       string   `json:"pet_type"`   // texto libre; la app usa dog, cat, bird, other
	CustomPetType *string  `json:"custom_pet_type"`
	Breed         *string  `json:"breed"`
	Weight        *float64 `json:"weight"` // lb
	Gender        *string  `json:"gender"`
	Photo         *string  `json:"photo"` // base64 o URI
	CreatedAt     int64    `json:"created_at"`
	UpdatedAt     int64    `json:"updated_at"`
}

// PetInput son los campos de Pet sin id ni timestamps.
type PetInput struct {
	Name          string
	BirthDate     string
	PetType       string
	CustomPetType *string
	Breed         *string
	Weight        *float64
	Gender        *string
	Photo         *string
}

// PetPatch: nil = no tocar.
type PetPatch struct {
	Name          *string  `json:"name,omitempty"`
	BirthDate     *string  `json:"birth_date,omitempty"`
	PetType       *string  `json:"pet_type,omitempty"`
	CustomPetType *string  `json:"custom_pet_type,omitempty"`
	Breed         *string  `json:"breed,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Photo         *string  `json:"photo,omitempty"`
}

// DisplayType devuelve custom_pet_type cuando pet_type es "other".
func (p Pet) DisplayType() string {
	if p.PetType == "other" && p.CustomPetType != nil && *p.CustomPetType != "" {
		return *p.CustomPetType
	}
	return p.PetType
}

type Reminder struct {
	ID             string  `json:"id"`
	PetID          string  `json:"pet_id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	Time           string  `json:"time"`          // HH:MM, no se valida acá
	ReminderDate   *string `json:"reminder_date"` // YYYY-MM-DD, sólo para los que no se repiten
	IsRecurring    bool    `json:"is_recurring"`
	RecurrenceDays []int   `json:"recurrence_days"` // 0=domingo
	Category       string  `json:"category"`        // medication, feeding, walk, general
	IsActive       bool    `json:"is_active"`
	SoundID        *string `json:"sound_id"`
	// NotificationID referencia una notificación del sistema operativo; el store no la interpreta.
	NotificationID *string `json:"notification_id"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

type ReminderInput struct {
	PetID          string
	Title          string
	Description    *string
	Time           string
	ReminderDate   *string
	IsRecurring    bool
	RecurrenceDays []int  // nil = todos los días
	Category       string // vacía = general
	IsActive       bool
	SoundID        *string
	NotificationID *string
}

type ReminderPatch struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Time           *string `json:"time,omitempty"`
	ReminderDate   *string `json:"reminder_date,omitempty"`
	IsRecurring    *bool   `json:"is_recurring,omitempty"`
	RecurrenceDays *[]int  `json:"recurrence_days,omitempty"`
	Category       *string `json:"category,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	SoundID        *string `json:"sound_id,omitempty"`
	NotificationID *string `json:"notification_id,omitempty"`
}

// ChecklistItem vive embebido en su Checklist.
type ChecklistItem struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	DueTime   *string `json:"due_time,omitempty"`
}

type Checklist struct {
	ID                string          `json:"id"`
	PetID             string          `json:"pet_id"`
	Title             string          `json:"title"`
	Category          string          `json:"category"` // daily, medication, feeding, vet
	Items             []ChecklistItem `json:"items"`
	IsRecurring       bool            `json:"is_recurring"`
	RecurrencePattern *string         `json:"recurrence_pattern"` // daily, weekly, monthly
	CreatedAt         int64           `json:"created_at"`
	UpdatedAt         int64           `json:"updated_at"`
}

// ChecklistInput: los items sin id reciben uno nuevo.
type ChecklistInput struct {
	PetID             string
	Title             string
	Category          string
	Items             []ChecklistItem
	IsRecurring       bool
	RecurrencePattern *string
}

type ChecklistPatch struct {
	Title             *string          `json:"title,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Items             *[]ChecklistItem `json:"items,omitempty"`
	IsRecurring       *bool            `json:"is_recurring,omitempty"`
	RecurrencePattern *string          `json:"recurrence_pattern,omitempty"`
}

type VetVisit struct {
	ID           string   `json:"id"`
	PetID        string   `json:"pet_id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Notes        *string  `json:"notes"`
	VetName      *string  `json:"vet_name"`
	Instructions []string `json:"instructions"`
	FollowUpDate *string  `json:"follow_up_date"`
	CreatedAt    int64    `json:"created_at"`
	UpdatedAt    int64    `json:"updated_at"`
}

type VetVisitInput struct {
	PetID        string
	Title        string
	Date         string
	Notes        *string
	VetName      *string
	Instructions []string
	FollowUpDate *string
}

type VetVisitPatch struct {
	Title        *string   `json:"title,omitempty"`
	Date         *string   `json:"date,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	VetName      *string   `json:"vet_name,omitempty"`
	Instructions *[]string `json:"instructions,omitempty"`
	FollowUpDate *string   `json:"follow_up_date,omitempty"`
}

// record permite los helpers genéricos sobre las cuatro colecciones.
type record interface {
	recordID() string
	ownerID() string
}

func (p Pet) recordID() string       { return p.ID }
func (p Pet) ownerID() string        { return p.ID }
func (r Reminder) recordID() string  { return r.ID }
func (r Reminder) ownerID() string   { return r.PetID }
func (c Checklist) recordID() string { return c.ID }
func (c Checklist) ownerID() string  { return c.PetID }
func (v VetVisit) recordID() string  { return v.ID }
func (v VetVisit) ownerID() string   { return v.PetID }
