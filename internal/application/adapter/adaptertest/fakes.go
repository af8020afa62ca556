// Package adaptertest provides in-memory implementations of the adapter ports for tests.
package adaptertest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// table is a hub scoped in-memory collection kept in insertion order.
type table[T any] struct {
	mu       sync.Mutex
	rows     []*T
	id       func(*T) uuid.UUID
	hub      func(*T) uuid.UUID
	notFound error
}

func newTable[T any](id, hub func(*T) uuid.UUID, notFound error) *table[T] {
	return &table[T]{id: id, hub: hub, notFound: notFound}
}

func (t *table[T]) insert(row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
}

func (t *table[T]) find(hubID, id uuid.UUID) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, row := range t.rows {
		if t.id(row) == id && (hubID == uuid.Nil || t.hub(row) == hubID) {
			return row, nil
		}
	}
	return nil, t.notFound
}

func (t *table[T]) filter(keep func(*T) bool) []*T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := []*T{}
	for _, row := range t.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) byHub(hubID uuid.UUID) []*T {
	return t.filter(func(row *T) bool { return t.hub(row) == hubID })
}

func (t *table[T]) replace(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, existing := range t.rows {
		if t.id(existing) == t.id(row) {
			t.rows[i] = row
			return nil
		}
	}
	return t.notFound
}

func (t *table[T]) remove(hubID, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, row := range t.rows {
		if t.id(row) == id && (hubID == uuid.Nil || t.hub(row) == hubID) {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return t.notFound
}

func (t *table[T]) removeWhere(match func(*T) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.rows[:0]
	for _, row := range t.rows {
		if !match(row) {
			kept = append(kept, row)
		}
	}
	t.rows = kept
}

func (t *table[T]) count() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return int64(len(t.rows))
}

// Store holds every fake repository sharing one set of tables, so cascades work.
type Store struct {
	Users        *UserRepository
	Hubs         *HubRepository
	Employees    *EmployeeRepository
	Routes       *RouteRepository
	Contacts     *ContactRepository
	Vehicles     *VehicleRepository
	Incidents    *IncidentRepository
	Attendance   *AttendanceRepository
	Liquidations *LiquidationRepository
	KilosLitros  *KilosLitrosRepository
	Holidays     *HolidayRepository
	Restrictions *TimeRestrictionRepository
	Purchases    *PurchaseRepository
	Records      *RecordRepository
}

// NewStore creates an empty Store.
func NewStore() *Store {
	s := &Store{}
	s.Users = &UserRepository{t: newTable(func(u *entity.User) uuid.UUID { return u.ID }, func(*entity.User) uuid.UUID { return uuid.Nil }, domainerror.ErrUserNotFound)}
	s.Employees = &EmployeeRepository{t: newTable(func(e *entity.Employee) uuid.UUID { return e.ID }, func(e *entity.Employee) uuid.UUID { return e.HubID }, domainerror.ErrEmployeeNotFound)}
	s.Routes = &RouteRepository{t: newTable(func(r *entity.Route) uuid.UUID { return r.ID }, func(r *entity.Route) uuid.UUID { return r.HubID }, domainerror.ErrRouteNotFound)}
	s.Contacts = &ContactRepository{t: newTable(func(c *entity.Contact) uuid.UUID { return c.ID }, func(c *entity.Contact) uuid.UUID { return c.HubID }, domainerror.ErrContactNotFound)}
	s.Vehicles = &VehicleRepository{t: newTable(func(v *entity.Vehicle) uuid.UUID { return v.ID }, func(v *entity.Vehicle) uuid.UUID { return v.HubID }, domainerror.ErrVehicleNotFound)}
	s.Incidents = &IncidentRepository{t: newTable(func(i *entity.Incident) uuid.UUID { return i.ID }, func(i *entity.Incident) uuid.UUID { return i.HubID }, domainerror.ErrIncidentNotFound)}
	s.Attendance = &AttendanceRepository{t: newTable(func(a *entity.AttendanceEntry) uuid.UUID { return a.ID }, func(a *entity.AttendanceEntry) uuid.UUID { return a.HubID }, errors.New("attendance not found"))}
	s.Liquidations = &LiquidationRepository{t: newTable(func(l *entity.LiquidationEntry) uuid.UUID { return l.ID }, func(l *entity.LiquidationEntry) uuid.UUID { return l.HubID }, domainerror.ErrLiquidationNotFound)}
	s.KilosLitros = &KilosLitrosRepository{t: newTable(func(k *entity.KilosLitrosEntry) uuid.UUID { return k.ID }, func(k *entity.KilosLitrosEntry) uuid.UUID { return k.HubID }, domainerror.ErrKilosLitrosNotFound)}
	s.Holidays = &HolidayRepository{t: newTable(func(h *entity.Holiday) uuid.UUID { return h.ID }, func(h *entity.Holiday) uuid.UUID { return h.HubID }, domainerror.ErrHolidayNotFound)}
	s.Restrictions = &TimeRestrictionRepository{t: newTable(func(r *entity.TimeRestriction) uuid.UUID { return r.ID }, func(r *entity.TimeRestriction) uuid.UUID { return r.HubID }, domainerror.ErrTimeRestrictionNotFound)}
	s.Purchases = &PurchaseRepository{t: newTable(func(p *entity.Purchase) uuid.UUID { return p.ID }, func(p *entity.Purchase) uuid.UUID { return p.HubID }, domainerror.ErrPurchaseNotFound)}
	s.Records = &RecordRepository{t: newTable(func(r *entity.Record) uuid.UUID { return r.ID }, func(r *entity.Record) uuid.UUID { return r.HubID }, domainerror.ErrRecordNotFound)}
	s.Hubs = &HubRepository{t: newTable(func(h *entity.Hub) uuid.UUID { return h.ID }, func(*entity.Hub) uuid.UUID { return uuid.Nil }, domainerror.ErrHubNotFound), store: s}
	return s
}

// UserRepository is an in-memory adapter.UserRepository.
type UserRepository struct{ t *table[entity.User] }

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	if exists, _ := r.ExistsByEmail(context.Background(), user.Email); exists {
		return domainerror.ErrEmailAlreadyExists
	}
	r.t.insert(user)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.t.find(uuid.Nil, id)
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	users := r.t.filter(func(u *entity.User) bool { return u.Email == email })
	if len(users) == 0 {
		return nil, domainerror.ErrUserNotFound
	}
	return users[0], nil
}

func (r *UserRepository) Update(_ context.Context, user *entity.User) error {
	return r.t.replace(user)
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.t.remove(uuid.Nil, id)
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return len(r.t.filter(func(u *entity.User) bool { return u.Email == email })) > 0, nil
}

func (r *UserRepository) List(_ context.Context, pendingOnly bool) ([]*entity.User, error) {
	return r.t.filter(func(u *entity.User) bool { return !pendingOnly || !u.IsApproved }), nil
}

func (r *UserRepository) ListAdmins(_ context.Context) ([]*entity.User, error) {
	return r.t.filter(func(u *entity.User) bool { return u.IsAdmin && u.IsApproved }), nil
}

func (r *UserRepository) Count(_ context.Context) (int64, int64, error) {
	pending := r.t.filter(func(u *entity.User) bool { return !u.IsApproved })
	return r.t.count(), int64(len(pending)), nil
}

// HubRepository is an in-memory adapter.HubRepository. Delete cascades through the store.
type HubRepository struct {
	t     *table[entity.Hub]
	store *Store
}

func (r *HubRepository) Create(_ context.Context, hub *entity.Hub) error {
	r.t.insert(hub)
	return nil
}

func (r *HubRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Hub, error) {
	return r.t.find(uuid.Nil, id)
}

func (r *HubRepository) FindByName(_ context.Context, name string) (*entity.Hub, error) {
	hubs := r.t.filter(func(h *entity.Hub) bool { return h.Name == name })
	if len(hubs) == 0 {
		return nil, domainerror.ErrHubNotFound
	}
	return hubs[0], nil
}

func (r *HubRepository) List(_ context.Context) ([]*entity.Hub, error) {
	return r.t.filter(func(*entity.Hub) bool { return true }), nil
}

func (r *HubRepository) Update(_ context.Context, hub *entity.Hub) error {
	return r.t.replace(hub)
}

func (r *HubRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.t.remove(uuid.Nil, id); err != nil {
		return err
	}
	s := r.store
	s.Employees.t.removeWhere(func(e *entity.Employee) bool { return e.HubID == id })
	s.Routes.t.removeWhere(func(x *entity.Route) bool { return x.HubID == id })
	s.Contacts.t.removeWhere(func(x *entity.Contact) bool { return x.HubID == id })
	s.Vehicles.t.removeWhere(func(x *entity.Vehicle) bool { return x.HubID == id })
	s.Incidents.t.removeWhere(func(x *entity.Incident) bool { return x.HubID == id })
	s.Attendance.t.removeWhere(func(x *entity.AttendanceEntry) bool { return x.HubID == id })
	s.Liquidations.t.removeWhere(func(x *entity.LiquidationEntry) bool { return x.HubID == id })
	s.KilosLitros.t.removeWhere(func(x *entity.KilosLitrosEntry) bool { return x.HubID == id })
	s.Holidays.t.removeWhere(func(x *entity.Holiday) bool { return x.HubID == id })
	s.Restrictions.t.removeWhere(func(x *entity.TimeRestriction) bool { return x.HubID == id })
	s.Purchases.t.removeWhere(func(x *entity.Purchase) bool { return x.HubID == id })
	s.Records.t.removeWhere(func(x *entity.Record) bool { return x.HubID == id })
	return nil
}

func (r *HubRepository) Count(_ context.Context) (int64, error) {
	return r.t.count(), nil
}

// EmployeeRepository is an in-memory adapter.EmployeeRepository.
type EmployeeRepository struct{ t *table[entity.Employee] }

func (r *EmployeeRepository) Create(_ context.Context, e *entity.Employee) error {
	r.t.insert(e)
	return nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.Employee, error) {
	return r.t.find(hubID, id)
}

func (r *EmployeeRepository) ListByHub(_ context.Context, hubID uuid.UUID) ([]*entity.Employee, error) {
	return r.t.byHub(hubID), nil
}

func (r *EmployeeRepository) Update(_ context.Context, e *entity.Employee) error {
	return r.t.replace(e)
}

func (r *EmployeeRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

func (r *EmployeeRepository) Count(_ context.Context) (int64, error) {
	return r.t.count(), nil
}

// RouteRepository is an in-memory adapter.RouteRepository.
type RouteRepository struct{ t *table[entity.Route] }

func (r *RouteRepository) Create(ctx context.Context, route *entity.Route) error {
	if exists, _ := r.ExistsByName(ctx, route.HubID, route.Name); exists {
		return domainerror.ErrRouteNameExists
	}
	r.t.insert(route)
	return nil
}

func (r *RouteRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.Route, error) {
	return r.t.find(hubID, id)
}

func (r *RouteRepository) ListByHub(_ context.Context, hubID uuid.UUID) ([]*entity.Route, error) {
	return r.t.byHub(hubID), nil
}

func (r *RouteRepository) ExistsByName(_ context.Context, hubID uuid.UUID, name string) (bool, error) {
	return len(r.t.filter(func(x *entity.Route) bool { return x.HubID == hubID && x.Name == name })) > 0, nil
}

func (r *RouteRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

// ContactRepository is an in-memory adapter.ContactRepository.
type ContactRepository struct{ t *table[entity.Contact] }

func (r *ContactRepository) Create(_ context.Context, c *entity.Contact) error {
	r.t.insert(c)
	return nil
}

func (r *ContactRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.Contact, error) {
	return r.t.find(hubID, id)
}

func (r *ContactRepository) ListByHub(_ context.Context, hubID uuid.UUID) ([]*entity.Contact, error) {
	return r.t.byHub(hubID), nil
}

func (r *ContactRepository) Update(_ context.Context, c *entity.Contact) error {
	return r.t.replace(c)
}

func (r *ContactRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

// VehicleRepository is an in-memory adapter.VehicleRepository.
type VehicleRepository struct{ t *table[entity.Vehicle] }

func (r *VehicleRepository) Create(_ context.Context, v *entity.Vehicle) error {
	r.t.insert(v)
	return nil
}

func (r *VehicleRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.Vehicle, error) {
	return r.t.find(hubID, id)
}

func (r *VehicleRepository) ListByHub(_ context.Context, hubID uuid.UUID) ([]*entity.Vehicle, error) {
	return r.t.byHub(hubID), nil
}

func (r *VehicleRepository) Update(_ context.Context, v *entity.Vehicle) error {
	return r.t.replace(v)
}

func (r *VehicleRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

func (r *VehicleRepository) ExistsByPlate(_ context.Context, plate string, excludeID *uuid.UUID) (bool, error) {
	matches := r.t.filter(func(v *entity.Vehicle) bool {
		return v.Plate == plate && (excludeID == nil || v.ID != *excludeID)
	})
	return len(matches) > 0, nil
}

// IncidentRepository is an in-memory adapter.IncidentRepository.
type IncidentRepository struct{ t *table[entity.Incident] }

func (r *IncidentRepository) Create(_ context.Context, i *entity.Incident) error {
	r.t.insert(i)
	return nil
}

func (r *IncidentRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.Incident, error) {
	return r.t.find(hubID, id)
}

func (r *IncidentRepository) ListByHub(_ context.Context, hubID uuid.UUID, vehicleID *uuid.UUID) ([]*entity.Incident, error) {
	return r.t.filter(func(i *entity.Incident) bool {
		return i.HubID == hubID && (vehicleID == nil || i.VehicleID == *vehicleID)
	}), nil
}

func (r *IncidentRepository) Update(_ context.Context, i *entity.Incident) error {
	return r.t.replace(i)
}

func (r *IncidentRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

// AttendanceRepository is an in-memory adapter.AttendanceRepository.
type AttendanceRepository struct{ t *table[entity.AttendanceEntry] }

func (r *AttendanceRepository) Upsert(_ context.Context, entry *entity.AttendanceEntry) (*entity.AttendanceEntry, error) {
	r.t.removeWhere(func(a *entity.AttendanceEntry) bool {
		return a.EmployeeID == entry.EmployeeID && a.HubID == entry.HubID && a.Date == entry.Date
	})
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.UpdatedAt = time.Now().UTC()
	r.t.insert(entry)
	return entry, nil
}

func (r *AttendanceRepository) ListByHubAndRange(_ context.Context, hubID uuid.UUID, start, end string) ([]*entity.AttendanceEntry, error) {
	out := r.t.filter(func(a *entity.AttendanceEntry) bool {
		return a.HubID == hubID && a.Date >= start && a.Date <= end
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// LiquidationRepository is an in-memory adapter.LiquidationRepository.
type LiquidationRepository struct{ t *table[entity.LiquidationEntry] }

func (r *LiquidationRepository) Upsert(_ context.Context, entry *entity.LiquidationEntry) (*entity.LiquidationEntry, error) {
	r.t.removeWhere(func(l *entity.LiquidationEntry) bool {
		return l.RouteID == entry.RouteID && l.Date == entry.Date
	})
	r.t.insert(entry)
	return entry, nil
}

func (r *LiquidationRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.LiquidationEntry, error) {
	return r.t.find(hubID, id)
}

func (r *LiquidationRepository) ListByHubAndRange(_ context.Context, hubID uuid.UUID, start, end string, routeID *uuid.UUID) ([]*entity.LiquidationEntry, error) {
	out := r.t.filter(func(l *entity.LiquidationEntry) bool {
		return l.HubID == hubID && l.Date >= start && l.Date <= end && (routeID == nil || l.RouteID == *routeID)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *LiquidationRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

// KilosLitrosRepository is an in-memory adapter.KilosLitrosRepository.
type KilosLitrosRepository struct{ t *table[entity.KilosLitrosEntry] }

func (r *KilosLitrosRepository) Upsert(_ context.Context, entry *entity.KilosLitrosEntry) (*entity.KilosLitrosEntry, error) {
	r.t.removeWhere(func(k *entity.KilosLitrosEntry) bool {
		return k.RouteID == entry.RouteID && k.Date == entry.Date && k.Repartidor == entry.Repartidor
	})
	r.t.insert(entry)
	return entry, nil
}

func (r *KilosLitrosRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.KilosLitrosEntry, error) {
	return r.t.find(hubID, id)
}

func (r *KilosLitrosRepository) ListByHubAndRange(_ context.Context, hubID uuid.UUID, start, end string, routeID *uuid.UUID) ([]*entity.KilosLitrosEntry, error) {
	out := r.t.filter(func(k *entity.KilosLitrosEntry) bool {
		return k.HubID == hubID && k.Date >= start && k.Date <= end && (routeID == nil || k.RouteID == *routeID)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *KilosLitrosRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

// HolidayRepository is an in-memory adapter.HolidayRepository.
type HolidayRepository struct{ t *table[entity.Holiday] }

func (r *HolidayRepository) Create(ctx context.Context, h *entity.Holiday) error {
	if exists, _ := r.ExistsByDate(ctx, h.HubID, h.Date); exists {
		return domainerror.ErrHolidayDateExists
	}
	r.t.insert(h)
	return nil
}

func (r *HolidayRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.Holiday, error) {
	return r.t.find(hubID, id)
}

func (r *HolidayRepository) ListByHubAndRange(_ context.Context, hubID uuid.UUID, start, end string) ([]*entity.Holiday, error) {
	return r.t.filter(func(h *entity.Holiday) bool {
		return h.HubID == hubID && h.Date >= start && h.Date <= end
	}), nil
}

func (r *HolidayRepository) ExistsByDate(_ context.Context, hubID uuid.UUID, date string) (bool, error) {
	return len(r.t.filter(func(h *entity.Holiday) bool { return h.HubID == hubID && h.Date == date })) > 0, nil
}

func (r *HolidayRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

// TimeRestrictionRepository is an in-memory adapter.TimeRestrictionRepository.
type TimeRestrictionRepository struct{ t *table[entity.TimeRestriction] }

func (r *TimeRestrictionRepository) Create(_ context.Context, x *entity.TimeRestriction) error {
	r.t.insert(x)
	return nil
}

func (r *TimeRestrictionRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.TimeRestriction, error) {
	return r.t.find(hubID, id)
}

func (r *TimeRestrictionRepository) ListByHub(_ context.Context, hubID uuid.UUID) ([]*entity.TimeRestriction, error) {
	return r.t.byHub(hubID), nil
}

func (r *TimeRestrictionRepository) Update(_ context.Context, x *entity.TimeRestriction) error {
	return r.t.replace(x)
}

func (r *TimeRestrictionRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

func (r *TimeRestrictionRepository) CountByHub(_ context.Context, hubID uuid.UUID) (int64, error) {
	return int64(len(r.t.byHub(hubID))), nil
}

// PurchaseRepository is an in-memory adapter.PurchaseRepository.
type PurchaseRepository struct{ t *table[entity.Purchase] }

func (r *PurchaseRepository) Create(_ context.Context, p *entity.Purchase) error {
	r.t.insert(p)
	return nil
}

func (r *PurchaseRepository) FindByID(_ context.Context, hubID, id uuid.UUID) (*entity.Purchase, error) {
	return r.t.find(hubID, id)
}

func (r *PurchaseRepository) ListByHub(_ context.Context, hubID uuid.UUID) ([]*entity.Purchase, error) {
	return r.t.byHub(hubID), nil
}

func (r *PurchaseRepository) Update(_ context.Context, p *entity.Purchase) error {
	return r.t.replace(p)
}

func (r *PurchaseRepository) Delete(_ context.Context, hubID, id uuid.UUID) error {
	return r.t.remove(hubID, id)
}

// RecordRepository is an in-memory adapter.RecordRepository.
type RecordRepository struct{ t *table[entity.Record] }

func (r *RecordRepository) Create(_ context.Context, x *entity.Record) error {
	r.t.insert(x)
	return nil
}

func (r *RecordRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Record, error) {
	return r.t.find(uuid.Nil, id)
}

func (r *RecordRepository) List(_ context.Context, filter adapter.RecordFilter) ([]*entity.Record, error) {
	return r.t.filter(func(x *entity.Record) bool {
		return (filter.HubID == nil || x.HubID == *filter.HubID) &&
			(filter.Category == "" || x.Category == filter.Category)
	}), nil
}

func (r *RecordRepository) Update(_ context.Context, x *entity.Record) error {
	return r.t.replace(x)
}

func (r *RecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.t.remove(uuid.Nil, id)
}

func (r *RecordRepository) Count(_ context.Context) (int64, error) {
	return r.t.count(), nil
}

func (r *RecordRepository) CountByCategory(_ context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, x := range r.t.filter(func(*entity.Record) bool { return true }) {
		out[x.Category]++
	}
	return out, nil
}

var (
	_ adapter.UserRepository            = (*UserRepository)(nil)
	_ adapter.HubRepository             = (*HubRepository)(nil)
	_ adapter.EmployeeRepository        = (*EmployeeRepository)(nil)
	_ adapter.RouteRepository           = (*RouteRepository)(nil)
	_ adapter.ContactRepository         = (*ContactRepository)(nil)
	_ adapter.VehicleRepository         = (*VehicleRepository)(nil)
	_ adapter.IncidentRepository        = (*IncidentRepository)(nil)
	_ adapter.AttendanceRepository      = (*AttendanceRepository)(nil)
	_ adapter.LiquidationRepository     = (*LiquidationRepository)(nil)
	_ adapter.KilosLitrosRepository     = (*KilosLitrosRepository)(nil)
	_ adapter.HolidayRepository         = (*HolidayRepository)(nil)
	_ adapter.TimeRestrictionRepository = (*TimeRestrictionRepository)(nil)
	_ adapter.PurchaseRepository        = (*PurchaseRepository)(nil)
	_ adapter.RecordRepository          = (*RecordRepository)(nil)
)
