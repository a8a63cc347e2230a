package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. pending -> confirmed -> completed, and anything non-terminal may be
// cancelled. Terminal states admit nothing.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s.Terminal() {
		return false
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Appointment represents a booked time slot for a hairdresser.
type Appointment struct {
	BaseModel
	ClientName     string `gorm:"size:100;not null" json:"clientName"`
	ClientLastName string `gorm:"size:100;not null" json:"clientLastName"`
	ClientPhone    string `gorm:"size:30;not null" json:"clientPhone"`

	// HairdresserName is denormalized from the user record at booking time so
	// historical appointments keep a readable name even after staff changes.
	HairdresserID   string `gorm:"size:36;index:idx_hairdresser_date" json:"hairdresserId"`
	HairdresserName string `gorm:"size:100" json:"hairdresserName"`

	Date               string            `gorm:"type:date;index:idx_hairdresser_date" json:"date"` // YYYY-MM-DD
	Time               string            `gorm:"size:5;not null" json:"time"`                      // HH:MM
	Service            string            `gorm:"size:255;not null" json:"service"`
	EstimatedDuration  int               `gorm:"not null" json:"estimatedDuration"` // minutes
	TotalCost          float64           `gorm:"not null" json:"totalCost"`
	Status             AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	Deposit            *float64          `json:"deposit,omitempty"` // meaningful while confirmed
	AdditionalComments string            `gorm:"type:text" json:"additionalComments,omitempty"`

	CreatedBy string `gorm:"size:36" json:"createdBy"`
}
