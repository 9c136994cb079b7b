package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go-doctor-appointment/internal/converter"
	"go-doctor-appointment/internal/domain/entity"
	"go-doctor-appointment/internal/domain/repository"
	"go-doctor-appointment/internal/service"
	"go-doctor-appointment/internal/timeslot"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrSlotNotFound            = errors.New("time slot not found")
	ErrDoctorSourceUnavailable = errors.New("failed to load doctors")
)

// DaySection is one schedule entry of a doctor with its generated slots
type DaySection struct {
	Title    string
	Subtitle string
	Slots    []entity.TimeSlot
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
	RefreshDoctors(ctx context.Context) ([]entity.Doctor, error)
	GetDoctor(ctx context.Context, doctorID string) (*entity.Doctor, error)
	SlotsFor(ctx context.Context, doctorID string, dayOfWeek string) ([]entity.TimeSlot, error)
	DoctorAvailability(ctx context.Context, doctorID string) (*entity.Doctor, []DaySection, error)
	FindSlot(ctx context.Context, doctorID string, slotID string) (*entity.TimeSlot, error)
}

type doctorUsecase struct {
	log          *logrus.Logger
	source       repository.DoctorSource
	slotCache    *service.SlotCache
	slotDuration time.Duration

	fetch singleflight.Group

	mu      sync.RWMutex
	doctors []entity.Doctor
	loaded  bool
}

func NewDoctorUsecase(
	log *logrus.Logger,
	source repository.DoctorSource,
	slotCache *service.SlotCache,
	slotDuration time.Duration,
) DoctorUsecase {
	if slotDuration <= 0 {
		slotDuration = timeslot.SlotDuration
	}
	return &doctorUsecase{
		log:          log,
		source:       source,
		slotCache:    slotCache,
		slotDuration: slotDuration,
	}
}

// ListDoctors returns a copy of the held catalog, fetching it once when none
// is held. A fetch failure wraps ErrDoctorSourceUnavailable; an empty catalog
// is not an error.
func (u *doctorUsecase) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	doctors, loaded := u.catalog()
	if loaded {
		return cloneDoctors(doctors), nil
	}
	return u.RefreshDoctors(ctx)
}

// RefreshDoctors refetches and replaces the whole catalog. Concurrent callers
// share one in-flight fetch; it is detached from any single caller's
// cancellation and bounded by the source's own timeout. Each caller stops
// waiting when its own ctx is done.
func (u *doctorUsecase) RefreshDoctors(ctx context.Context) ([]entity.Doctor, error) {
	fetchCtx := context.WithoutCancel(ctx)
	ch := u.fetch.DoChan("doctors", func() (interface{}, error) {
		return u.load(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneDoctors(res.Val.([]entity.Doctor)), nil
	}
}

func (u *doctorUsecase) load(ctx context.Context) ([]entity.Doctor, error) {
	raw, err := u.source.FetchRawSchedules(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctor schedules: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrDoctorSourceUnavailable, err)
	}

	doctors := converter.GroupDoctors(raw)

	u.mu.Lock()
	u.doctors = doctors
	u.loaded = true
	u.mu.Unlock()
	u.slotCache.Purge()

	u.log.Infof("Doctor catalog loaded: records=%d, doctors=%d", len(raw), len(doctors))
	return doctors, nil
}

func (u *doctorUsecase) catalog() ([]entity.Doctor, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.doctors, u.loaded
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*entity.Doctor, error) {
	doctors, loaded := u.catalog()
	if !loaded {
		var err error
		if doctors, err = u.RefreshDoctors(ctx); err != nil {
			return nil, err
		}
	}

	for i := range doctors {
		if doctors[i].ID == doctorID {
			doctor := cloneDoctor(doctors[i])
			return &doctor, nil
		}
	}
	return nil, ErrDoctorNotFound
}

// SlotsFor returns the slots of every schedule entry the doctor has on dayOfWeek
func (u *doctorUsecase) SlotsFor(ctx context.Context, doctorID string, dayOfWeek string) ([]entity.TimeSlot, error) {
	doctor, err := u.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	slots := []entity.TimeSlot{}
	for _, schedule := range doctor.SchedulesOn(dayOfWeek) {
		slots = append(slots, u.generate(doctor, schedule)...)
	}
	return slots, nil
}

// DoctorAvailability returns one section per schedule entry, in schedule order
func (u *doctorUsecase) DoctorAvailability(ctx context.Context, doctorID string) (*entity.Doctor, []DaySection, error) {
	doctor, err := u.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}

	sections := make([]DaySection, len(doctor.Schedules))
	for i, schedule := range doctor.Schedules {
		sections[i] = DaySection{
			Title:    schedule.DayOfWeek,
			Subtitle: fmt.Sprintf("%s - %s", schedule.AvailableAt, schedule.AvailableUntil),
			Slots:    u.generate(doctor, schedule),
		}
	}
	return doctor, sections, nil
}

// FindSlot regenerates the doctor's slots and returns the one with slotID
func (u *doctorUsecase) FindSlot(ctx context.Context, doctorID string, slotID string) (*entity.TimeSlot, error) {
	doctor, err := u.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	for _, schedule := range doctor.Schedules {
		for _, slot := range u.generate(doctor, schedule) {
			if slot.ID == slotID {
				return &slot, nil
			}
		}
	}
	return nil, ErrSlotNotFound
}

func (u *doctorUsecase) generate(doctor *entity.Doctor, schedule entity.WeeklySchedule) []entity.TimeSlot {
	return u.slotCache.GetOrGenerate(service.KeyFor(doctor.ID, schedule), func() []entity.TimeSlot {
		return timeslot.GenerateTimeSlotsWithDuration(doctor.ID, doctor.Name, doctor.Timezone, schedule, u.slotDuration)
	})
}

// cloneDoctors copies the catalog so callers cannot reach the held schedules
func cloneDoctors(doctors []entity.Doctor) []entity.Doctor {
	out := make([]entity.Doctor, len(doctors))
	for i := range doctors {
		out[i] = cloneDoctor(doctors[i])
	}
	return out
}

func cloneDoctor(doctor entity.Doctor) entity.Doctor {
	doctor.Schedules = slices.Clone(doctor.Schedules)
	return doctor
}
