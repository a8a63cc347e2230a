package scheduling

import (
	"time"

	"salon-booking-server/internal/apperr"
	"salon-booking-server/internal/auth"
	"salon-booking-server/internal/models"
	"salon-booking-server/internal/store"
)

// Periods accepted by Summarize.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// Summary is the reduced view of a period's appointments.
type Summary struct {
	Total          int                              `json:"total"`
	CountsByStatus map[models.AppointmentStatus]int `json:"countsByStatus"`
	TotalRevenue   float64                          `json:"totalRevenue"`
	TotalDeposits  float64                          `json:"totalDeposits"`
}

// Aggregator reduces a filtered appointment set into period counters and
// revenue. Like the engine it holds no state between calls.
type Aggregator struct {
	appointments store.AppointmentStore
	now          func() time.Time
}

// NewAggregator creates an Aggregator over the appointment store.
func NewAggregator(appointments store.AppointmentStore) *Aggregator {
	return &Aggregator{appointments: appointments, now: time.Now}
}

// periodStart computes the lower date bound for a period in local time:
// day = start of today, week = now minus 7 days, month = first of the month.
func periodStart(now time.Time, period string) (time.Time, error) {
	switch period {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour), nil
	case PeriodMonth, "":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, apperr.Validation("period", "must be day, week or month")
}

// Summarize counts the appointments since the period's start, broken down by
// status. Revenue only counts completed appointments; deposits only count
// confirmed ones that actually carry a deposit. Non-admin callers are
// forcibly narrowed to their own calendar before the store is queried.
func (a *Aggregator) Summarize(claims *auth.Claims, period string) (*Summary, error) {
	if claims == nil {
		return nil, apperr.ErrUnauthorized
	}

	start, err := periodStart(a.now(), period)
	if err != nil {
		return nil, err
	}

	filter := store.AppointmentFilter{FromDate: start.Format("2006-01-02")}
	if auth.ScopedToOwn(claims) {
		filter.HairdresserID = claims.UserID
	}

	appointments, err := a.appointments.Find(filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Total:          len(appointments),
		CountsByStatus: make(map[models.AppointmentStatus]int),
	}
	for _, apt := range appointments {
		summary.CountsByStatus[apt.Status]++
		switch apt.Status {
		case models.StatusCompleted:
			summary.TotalRevenue += apt.TotalCost
		case models.StatusConfirmed:
			if apt.Deposit != nil {
				summary.TotalDeposits += *apt.Deposit
			}
		}
	}
	return summary, nil
}
