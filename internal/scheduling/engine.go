// Package scheduling owns the occupancy model for each hairdresser's day:
// conflict detection, the booking operations, and the summary statistics.
// The engine keeps no state of its own; every decision re-reads the current
// occupancy from the store, so there is no cache to invalidate.
package scheduling

import (
	"fmt"
	"sort"
	"time"

	"salon-booking-server/internal/apperr"
	"salon-booking-server/internal/auth"
	"salon-booking-server/internal/models"
	"salon-booking-server/internal/store"
)

// MinDurationMinutes is the shortest bookable appointment.
const MinDurationMinutes = 30

// Slot is one occupied interval on a hairdresser's day, in minutes from
// midnight, half-open [Start, End).
type Slot struct {
	Start       int
	End         int
	Appointment models.Appointment
}

// Engine mediates every booking mutation and enforces the no-overlap
// invariant per hairdresser. Safe for concurrent use.
type Engine struct {
	appointments store.AppointmentStore
	users        store.UserStore
}

// NewEngine creates an Engine over the given store collaborators.
func NewEngine(appointments store.AppointmentStore, users store.UserStore) *Engine {
	return &Engine{appointments: appointments, users: users}
}

// MinuteOfDay parses an HH:MM time of day into minutes from midnight.
func MinuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func validDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperr.Validation("date", "must be a YYYY-MM-DD date")
	}
	return nil
}

// authorize maps a denied action onto the error taxonomy: missing claims are
// unauthorized, present-but-insufficient claims are forbidden. This runs
// before any existence lookup so a denied caller learns nothing about ids.
func authorize(claims *auth.Claims, action auth.Action) error {
	if claims == nil {
		return apperr.ErrUnauthorized
	}
	if !auth.Authorize(claims, action) {
		return apperr.ErrForbidden
	}
	return nil
}

// ListOccupancy returns the non-cancelled intervals for a hairdresser on a
// date, sorted by start minute. Two rows sharing a start minute cannot be
// created through the engine, but manual data edits can produce them; ties
// fall back to appointment id so the order stays deterministic.
func (e *Engine) ListOccupancy(hairdresserID, date string) ([]Slot, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	appointments, err := e.appointments.Find(store.AppointmentFilter{
		HairdresserID:    hairdresserID,
		Date:             date,
		ExcludeCancelled: true,
	})
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(appointments))
	for _, a := range appointments {
		start, err := MinuteOfDay(a.Time)
		if err != nil {
			// A hand-edited row with an unparsable time cannot occupy a slot.
			continue
		}
		slots = append(slots, Slot{Start: start, End: start + a.EstimatedDuration, Appointment: a})
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Start != slots[j].Start {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].Appointment.ID < slots[j].Appointment.ID
	})
	return slots, nil
}

// IsSlotFree reports whether [start, start+duration) is free of non-cancelled
// appointments for the hairdresser on that date. Intervals are half-open, so
// a booking ending exactly when another begins does not conflict.
func (e *Engine) IsSlotFree(hairdresserID, date, timeOfDay string, durationMinutes int) (bool, error) {
	start, err := MinuteOfDay(timeOfDay)
	if err != nil {
		return false, apperr.Validation("time", "must be an HH:MM time of day")
	}
	if durationMinutes <= 0 {
		return false, apperr.Validation("estimatedDuration", "must be positive")
	}
	return e.slotFree(hairdresserID, date, start, durationMinutes, "")
}

func (e *Engine) slotFree(hairdresserID, date string, start, duration int, excludeID string) (bool, error) {
	slots, err := e.ListOccupancy(hairdresserID, date)
	if err != nil {
		return false, err
	}
	end := start + duration
	for _, s := range slots {
		if s.Appointment.ID == excludeID {
			continue
		}
		if s.Start < end && start < s.End {
			return false, nil
		}
	}
	return true, nil
}

// CreateRequest carries the validated input for a new booking.
type CreateRequest struct {
	ClientName         string
	ClientLastName     string
	ClientPhone        string
	HairdresserID      string
	Date               string
	Time               string
	Service            string
	EstimatedDuration  int
	TotalCost          float64
	Deposit            *float64
	AdditionalComments string
}

func (r *CreateRequest) validate() error {
	if r.ClientName == "" {
		return apperr.Validation("clientName", "is required")
	}
	if r.ClientLastName == "" {
		return apperr.Validation("clientLastName", "is required")
	}
	if r.ClientPhone == "" {
		return apperr.Validation("clientPhone", "is required")
	}
	if r.HairdresserID == "" {
		return apperr.Validation("hairdresserId", "is required")
	}
	if r.Service == "" {
		return apperr.Validation("service", "is required")
	}
	if err := validDate(r.Date); err != nil {
		return err
	}
	if _, err := MinuteOfDay(r.Time); err != nil {
		return apperr.Validation("time", "must be an HH:MM time of day")
	}
	if r.EstimatedDuration < MinDurationMinutes {
		return apperr.Validation("estimatedDuration", fmt.Sprintf("must be at least %d minutes", MinDurationMinutes))
	}
	if r.TotalCost < 0 {
		return apperr.Validation("totalCost", "must not be negative")
	}
	if r.Deposit != nil && *r.Deposit < 0 {
		return apperr.Validation("deposit", "must not be negative")
	}
	return nil
}

// Create books a new appointment with status pending. Past dates are
// accepted; forbidding them is a product decision for callers, not a core
// invariant.
func (e *Engine) Create(claims *auth.Claims, req CreateRequest) (*models.Appointment, error) {
	if err := authorize(claims, auth.ActionCreateAppointment); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	hairdresser, err := e.lookupHairdresser(req.HairdresserID)
	if err != nil {
		return nil, err
	}

	start, _ := MinuteOfDay(req.Time)
	free, err := e.slotFree(req.HairdresserID, req.Date, start, req.EstimatedDuration, "")
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, apperr.ErrConflict
	}

	appointment := models.Appointment{
		ClientName:         req.ClientName,
		ClientLastName:     req.ClientLastName,
		ClientPhone:        req.ClientPhone,
		HairdresserID:      hairdresser.ID,
		HairdresserName:    hairdresser.Name,
		Date:               req.Date,
		Time:               req.Time,
		Service:            req.Service,
		EstimatedDuration:  req.EstimatedDuration,
		TotalCost:          req.TotalCost,
		Status:             models.StatusPending,
		Deposit:            req.Deposit,
		AdditionalComments: req.AdditionalComments,
		CreatedBy:          claims.UserID,
	}
	if err := e.appointments.Insert(&appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (e *Engine) lookupHairdresser(id string) (*models.User, error) {
	user, err := e.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleHairdresser || !user.IsActive {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}

// UpdatePatch is a partial update; nil fields are left unchanged.
type UpdatePatch struct {
	ClientName         *string
	ClientLastName     *string
	ClientPhone        *string
	HairdresserID      *string
	Date               *string
	Time               *string
	Service            *string
	EstimatedDuration  *int
	TotalCost          *float64
	Status             *models.AppointmentStatus
	Deposit            *float64
	AdditionalComments *string
}

// Update applies a patch to an appointment. Changing hairdresser, date, time
// or duration re-runs the overlap check against all other non-cancelled
// appointments for the (possibly new) hairdresser and date; a status change
// must be a legal lifecycle transition.
func (e *Engine) Update(claims *auth.Claims, id string, patch UpdatePatch) (*models.Appointment, error) {
	if err := authorize(claims, auth.ActionModifyAppointment); err != nil {
		return nil, err
	}

	appointment, err := e.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}

	rescheduled := false
	if patch.ClientName != nil {
		appointment.ClientName = *patch.ClientName
	}
	if patch.ClientLastName != nil {
		appointment.ClientLastName = *patch.ClientLastName
	}
	if patch.ClientPhone != nil {
		appointment.ClientPhone = *patch.ClientPhone
	}
	if patch.HairdresserID != nil && *patch.HairdresserID != appointment.HairdresserID {
		hairdresser, err := e.lookupHairdresser(*patch.HairdresserID)
		if err != nil {
			return nil, err
		}
		appointment.HairdresserID = hairdresser.ID
		appointment.HairdresserName = hairdresser.Name
		rescheduled = true
	}
	if patch.Date != nil && *patch.Date != appointment.Date {
		appointment.Date = *patch.Date
		rescheduled = true
	}
	if patch.Time != nil && *patch.Time != appointment.Time {
		appointment.Time = *patch.Time
		rescheduled = true
	}
	if patch.EstimatedDuration != nil && *patch.EstimatedDuration != appointment.EstimatedDuration {
		appointment.EstimatedDuration = *patch.EstimatedDuration
		rescheduled = true
	}
	if patch.Service != nil {
		appointment.Service = *patch.Service
	}
	if patch.TotalCost != nil {
		appointment.TotalCost = *patch.TotalCost
	}
	if patch.Deposit != nil {
		appointment.Deposit = patch.Deposit
	}
	if patch.AdditionalComments != nil {
		appointment.AdditionalComments = *patch.AdditionalComments
	}

	if err := validDate(appointment.Date); err != nil {
		return nil, err
	}
	start, err := MinuteOfDay(appointment.Time)
	if err != nil {
		return nil, apperr.Validation("time", "must be an HH:MM time of day")
	}
	if appointment.EstimatedDuration < MinDurationMinutes {
		return nil, apperr.Validation("estimatedDuration", fmt.Sprintf("must be at least %d minutes", MinDurationMinutes))
	}
	if appointment.TotalCost < 0 {
		return nil, apperr.Validation("totalCost", "must not be negative")
	}
	if appointment.Deposit != nil && *appointment.Deposit < 0 {
		return nil, apperr.Validation("deposit", "must not be negative")
	}

	if patch.Status != nil && *patch.Status != appointment.Status {
		if !models.ValidStatus(*patch.Status) {
			return nil, apperr.Validation("status", "unknown status")
		}
		if !appointment.Status.CanTransitionTo(*patch.Status) {
			return nil, apperr.Validation("status",
				fmt.Sprintf("cannot transition from %s to %s", appointment.Status, *patch.Status))
		}
		appointment.Status = *patch.Status
	}

	if rescheduled && appointment.Status != models.StatusCancelled {
		free, err := e.slotFree(appointment.HairdresserID, appointment.Date, start, appointment.EstimatedDuration, appointment.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, apperr.ErrConflict
		}
	}

	if err := e.appointments.Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Cancel moves an appointment to cancelled, immediately freeing its interval
// for future bookings. Cancelling an already-cancelled appointment is an
// idempotent no-op; cancelling a completed one is an invalid transition.
func (e *Engine) Cancel(claims *auth.Claims, id string) (*models.Appointment, error) {
	if err := authorize(claims, auth.ActionModifyAppointment); err != nil {
		return nil, err
	}

	appointment, err := e.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if appointment.Status == models.StatusCancelled {
		return appointment, nil
	}
	if !appointment.Status.CanTransitionTo(models.StatusCancelled) {
		return nil, apperr.Validation("status",
			fmt.Sprintf("cannot transition from %s to %s", appointment.Status, models.StatusCancelled))
	}

	appointment.Status = models.StatusCancelled
	if err := e.appointments.Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Remove physically deletes an appointment. Distinct from cancellation: it
// does not preserve history and is meant for management cleanup flows.
func (e *Engine) Remove(claims *auth.Claims, id string) error {
	if err := authorize(claims, auth.ActionModifyAppointment); err != nil {
		return err
	}
	return e.appointments.DeleteByID(id)
}

// List returns appointments visible to the caller for the calendar view.
// Non-admins only ever see their own calendar, regardless of the filter.
func (e *Engine) List(claims *auth.Claims, filter store.AppointmentFilter) ([]models.Appointment, error) {
	if err := authorize(claims, auth.ActionReadOwnAppointments); err != nil {
		return nil, err
	}
	if filter.Date != "" {
		if err := validDate(filter.Date); err != nil {
			return nil, err
		}
	}
	if auth.ScopedToOwn(claims) {
		filter.HairdresserID = claims.UserID
	}
	return e.appointments.Find(filter)
}

// ListAll returns the full calendar with optional date-range and status
// filters. Hairdressers may read the whole calendar; writes stay gated by
// the modify capability.
func (e *Engine) ListAll(claims *auth.Claims, filter store.AppointmentFilter) ([]models.Appointment, error) {
	if err := authorize(claims, auth.ActionReadAllAppointments); err != nil {
		return nil, err
	}
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, apperr.Validation("status", "unknown status")
	}
	return e.appointments.Find(filter)
}
