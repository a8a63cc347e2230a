package scheduling

import (
	"fmt"
	"sort"
	"sync"

	"salon-booking-server/internal/apperr"
	"salon-booking-server/internal/auth"
	"salon-booking-server/internal/models"
	"salon-booking-server/internal/store"
)

// In-memory stand-ins for the gorm stores, good enough to exercise every
// engine and aggregator path without a database.

type fakeAppointmentStore struct {
	mu   sync.Mutex
	rows map[string]models.Appointment
	seq  int
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{rows: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentStore) Find(filter store.AppointmentFilter) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, a := range f.rows {
		if filter.HairdresserID != "" && a.HairdresserID != filter.HairdresserID {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		if filter.FromDate != "" && a.Date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && a.Date > filter.ToDate {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.ExcludeCancelled && a.Status == models.StatusCancelled {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeAppointmentStore) FindByID(id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAppointmentStore) Insert(a *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == "" {
		f.seq++
		a.ID = fmt.Sprintf("apt-%d", f.seq)
	}
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeAppointmentStore) Update(a *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[a.ID]; !ok {
		return apperr.ErrNotFound
	}
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeAppointmentStore) DeleteByID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeUserStore struct {
	mu   sync.Mutex
	rows map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{rows: make(map[string]models.User)}
}

func (f *fakeUserStore) Find(role models.Role, activeOnly bool) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.rows {
		if role != "" && u.Role != role {
			continue
		}
		if activeOnly && !u.IsActive {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeUserStore) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserStore) Insert(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUserStore) Update(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUserStore) DeactivateByID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return apperr.ErrNotFound
	}
	u.IsActive = false
	f.rows[id] = u
	return nil
}

// Test fixtures

func seedHairdresser(users *fakeUserStore, id, name string) {
	u := models.User{
		Name:     name,
		Email:    id + "@salon.local",
		Role:     models.RoleHairdresser,
		IsActive: true,
	}
	u.ID = id
	_ = users.Insert(&u)
}

func listFilter(hairdresserID, date string) store.AppointmentFilter {
	return store.AppointmentFilter{HairdresserID: hairdresserID, Date: date}
}

func allFilter(from, to, status string) store.AppointmentFilter {
	return store.AppointmentFilter{FromDate: from, ToDate: to, Status: models.AppointmentStatus(status)}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: "admin-1", Email: "admin@salon.local", Role: models.RoleAdmin}
}

func hairdresserClaims(id string, canCreate, canModify bool) *auth.Claims {
	return &auth.Claims{
		UserID:                id,
		Email:                 id + "@salon.local",
		Role:                  models.RoleHairdresser,
		CanCreateAppointments: canCreate,
		CanModifyAppointments: canModify,
	}
}
