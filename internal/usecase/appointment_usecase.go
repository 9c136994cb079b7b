package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go-doctor-appointment/internal/domain/entity"
	"go-doctor-appointment/internal/domain/repository"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDuplicateSlot = errors.New("this time slot has already been booked")
)

// DuplicateSlotMessage is the user-facing text for a DuplicateSlotError
const DuplicateSlotMessage = "This time slot has already been booked."

// bookedAtLayout matches JavaScript's Date.toISOString output
const bookedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// DuplicateSlotError is returned by BookAppointment when SlotID is already held
type DuplicateSlotError struct {
	SlotID string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("slot %s: %v", e.SlotID, ErrDuplicateSlot)
}

func (e *DuplicateSlotError) Unwrap() error {
	return ErrDuplicateSlot
}

type AppointmentUsecase interface {
	LoadAppointments(ctx context.Context) entity.AppointmentState
	BookAppointment(ctx context.Context, slot entity.TimeSlot) (*entity.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) (string, error)
	ListAppointments(ctx context.Context) []entity.Appointment
	State() entity.AppointmentState
	BookedSlotIDs() map[string]struct{}
}

type appointmentUsecase struct {
	log   *logrus.Logger
	store repository.AppointmentStore
	now   func() time.Time
	newID func() string

	// mu serializes load/book/cancel end to end, including the store write
	mu sync.Mutex

	// stateMu guards state for snapshot readers while mu is held by a writer
	stateMu sync.RWMutex
	state   entity.AppointmentState
}

func NewAppointmentUsecase(log *logrus.Logger, store repository.AppointmentStore) AppointmentUsecase {
	return newAppointmentUsecase(log, store, time.Now, uuid.NewString)
}

func newAppointmentUsecase(log *logrus.Logger, store repository.AppointmentStore, now func() time.Time, newID func() string) *appointmentUsecase {
	return &appointmentUsecase{
		log:   log,
		store: store,
		now:   now,
		newID: newID,
		state: entity.AppointmentState{Appointments: []entity.Appointment{}},
	}
}

// LoadAppointments replaces the in-memory list with the persisted one. Any
// failure to read or decode leaves the ledger empty and is only logged.
func (u *appointmentUsecase) LoadAppointments(ctx context.Context) entity.AppointmentState {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.setLoading(true)

	appointments, err := u.readStore(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		appointments = []entity.Appointment{}
	}

	u.stateMu.Lock()
	u.state = entity.AppointmentState{Appointments: appointments, Loading: false}
	u.stateMu.Unlock()

	u.log.Infof("Appointments loaded: count=%d", len(appointments))
	return u.State()
}

// BookAppointment creates an appointment for slot unless one already holds
// its id. The full updated list is persisted before it becomes visible.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, slot entity.TimeSlot) (*entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	current := u.snapshot()
	if current.HasSlot(slot.ID) {
		return nil, &DuplicateSlotError{SlotID: slot.ID}
	}

	appointment := entity.Appointment{
		ID:         u.newID(),
		DoctorID:   slot.DoctorID,
		DoctorName: slot.DoctorName,
		SlotID:     slot.ID,
		DayOfWeek:  slot.DayOfWeek,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Timezone:   slot.Timezone,
		BookedAt:   u.now().UTC().Format(bookedAtLayout),
	}

	updated := append(slices.Clone(current.Appointments), appointment)
	if err := u.writeStore(ctx, updated); err != nil {
		u.log.Errorf("Failed to persist booking for slot %s: %+v", slot.ID, err)
		return nil, err
	}

	u.commit(updated)

	u.log.Infof("Appointment booked: id=%s, slot=%s", appointment.ID, slot.ID)
	return &appointment, nil
}

// CancelAppointment removes appointmentID if present and persists the
// resulting list either way. The id is echoed back even when nothing matched.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	current := u.snapshot()
	updated := slices.DeleteFunc(slices.Clone(current.Appointments), func(a entity.Appointment) bool {
		return a.ID == appointmentID
	})

	if err := u.writeStore(ctx, updated); err != nil {
		u.log.Errorf("Failed to persist cancellation of %s: %+v", appointmentID, err)
		return "", err
	}

	u.commit(updated)

	if len(updated) == len(current.Appointments) {
		u.log.Debugf("Cancel of unknown appointment %s", appointmentID)
	} else {
		u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	}
	return appointmentID, nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) []entity.Appointment {
	return u.State().Appointments
}

// State returns a copy of the ledger that callers may keep or modify
func (u *appointmentUsecase) State() entity.AppointmentState {
	return u.snapshot()
}

func (u *appointmentUsecase) BookedSlotIDs() map[string]struct{} {
	state := u.snapshot()
	ids := make(map[string]struct{}, len(state.Appointments))
	for _, a := range state.Appointments {
		ids[a.SlotID] = struct{}{}
	}
	return ids
}

func (u *appointmentUsecase) snapshot() entity.AppointmentState {
	u.stateMu.RLock()
	defer u.stateMu.RUnlock()
	return entity.AppointmentState{
		Appointments: slices.Clone(u.state.Appointments),
		Loading:      u.state.Loading,
	}
}

func (u *appointmentUsecase) setLoading(loading bool) {
	u.stateMu.Lock()
	u.state.Loading = loading
	u.stateMu.Unlock()
}

func (u *appointmentUsecase) commit(appointments []entity.Appointment) {
	u.stateMu.Lock()
	u.state.Appointments = appointments
	u.stateMu.Unlock()
}

func (u *appointmentUsecase) readStore(ctx context.Context) ([]entity.Appointment, error) {
	blob, ok, err := u.store.LoadBlob(ctx)
	if err != nil {
		return nil, fmt.Errorf("load blob: %w", err)
	}
	if !ok || blob == "" {
		return []entity.Appointment{}, nil
	}

	var appointments []entity.Appointment
	if err := json.Unmarshal([]byte(blob), &appointments); err != nil {
		return nil, fmt.Errorf("decode blob: %w", err)
	}
	if appointments == nil {
		appointments = []entity.Appointment{}
	}
	return appointments, nil
}

// writeStore always runs to completion once started, even if ctx is cancelled
func (u *appointmentUsecase) writeStore(ctx context.Context, appointments []entity.Appointment) error {
	if appointments == nil {
		appointments = []entity.Appointment{}
	}
	blob, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := u.store.SaveBlob(context.WithoutCancel(ctx), string(blob)); err != nil {
		return fmt.Errorf("save blob: %w", err)
	}
	return nil
}
