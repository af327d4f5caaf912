package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

var errNotFound = errors.New("not found")

// Dobles en memoria de las interfaces de almacén. Cada prueba arma los
// suyos; nada es global.

// --------------------------------------------------
// SlotStore
// --------------------------------------------------

type fakeSlotStore struct {
	slots []models.Slot

	listErr error
	getErr  error
	setErr  error

	bookedWrites map[uint]int
}

func newFakeSlotStore(slots ...models.Slot) *fakeSlotStore {
	return &fakeSlotStore{slots: slots, bookedWrites: map[uint]int{}}
}

func (f *fakeSlotStore) ListEnabled(ctx context.Context, date, agentID string) ([]models.Slot, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Slot, 0)
	for _, s := range f.slots {
		if s.Enabled && s.Date == date && s.AgentID == agentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotStore) Get(ctx context.Context, id uint) (*models.Slot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.slots {
		if f.slots[i].ID == id {
			s := f.slots[i]
			return &s, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeSlotStore) SetBooked(ctx context.Context, id uint, booked int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.bookedWrites[id] = booked
	for i := range f.slots {
		if f.slots[i].ID == id {
			f.slots[i].Booked = booked
		}
	}
	return nil
}

// --------------------------------------------------
// AppointmentStore
// --------------------------------------------------

type fakeAppointmentStore struct {
	caps    domain.Capabilities
	capsErr error

	// columnas que el "esquema" rechaza al escribir aunque el descriptor
	// dijera otra cosa (simula drift entre sondeo y escritura)
	rejectColumns map[domain.OptionalField]bool

	insertErr error
	updateErr error
	countErr  error

	nextID uint
	stored []models.Appointment
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{
		caps:          domain.Capabilities{PropertyLink: true, ClientLink: true},
		rejectColumns: map[domain.OptionalField]bool{},
	}
}

func (f *fakeAppointmentStore) Capabilities(ctx context.Context) (domain.Capabilities, error) {
	if f.capsErr != nil {
		return domain.Capabilities{}, f.capsErr
	}
	return f.caps, nil
}

func (f *fakeAppointmentStore) checkColumns(omit domain.FieldSet) error {
	for col := range f.rejectColumns {
		if !omit.Omitted(col) {
			return &domain.UnsupportedColumnError{Column: col}
		}
	}
	return nil
}

func (f *fakeAppointmentStore) Insert(ctx context.Context, ap *models.Appointment, omit domain.FieldSet) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if err := f.checkColumns(omit); err != nil {
		return err
	}

	f.nextID++
	ap.ID = f.nextID
	ap.CreatedAt = time.Now()

	stored := *ap
	if omit.Omitted(domain.FieldPropertyID) {
		stored.PropertyID = nil
	}
	if omit.Omitted(domain.FieldClientID) {
		stored.ClientID = nil
	}
	f.stored = append(f.stored, stored)
	return nil
}

func (f *fakeAppointmentStore) Update(ctx context.Context, ap *models.Appointment, omit domain.FieldSet) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if err := f.checkColumns(omit); err != nil {
		return err
	}
	for i := range f.stored {
		if f.stored[i].Folio == ap.Folio {
			f.stored[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (f *fakeAppointmentStore) GetByFolio(ctx context.Context, folio string) (*models.Appointment, error) {
	for i := range f.stored {
		if f.stored[i].Folio == folio {
			ap := f.stored[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeAppointmentStore) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range f.stored {
		if ap.Slot.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) CountActive(ctx context.Context, slotID uint) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, ap := range f.stored {
		if ap.SlotID == slotID && domain.IsActive(domain.Status(ap.Status)) {
			count++
		}
	}
	return count, nil
}

// --------------------------------------------------
// ClientStore / PropertyResolver
// --------------------------------------------------

type upsertCall struct {
	email, name, phone string
}

type fakeClientStore struct {
	id      uint
	err     error
	upserts []upsertCall
}

func (f *fakeClientStore) UpsertByEmail(ctx context.Context, email, name, phone string) (uint, error) {
	f.upserts = append(f.upserts, upsertCall{email, name, phone})
	if f.err != nil {
		return 0, f.err
	}
	if f.id == 0 {
		f.id = 1
	}
	return f.id, nil
}

type fakePropertyResolver struct {
	ids map[string]uint
	err error
}

func (f *fakePropertyResolver) Resolve(ctx context.Context, externalRef string) (*uint, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id, ok := f.ids[externalRef]; ok {
		return &id, nil
	}
	return nil, nil
}

// --------------------------------------------------
// Cache
// --------------------------------------------------

type fakeCache struct {
	data    map[string][]byte
	deleted []string
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	f.deleted = append(f.deleted, key)
	return nil
}
