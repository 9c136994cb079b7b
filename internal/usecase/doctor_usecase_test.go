package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-doctor-appointment/internal/domain/entity"
	"go-doctor-appointment/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sampleRaw = []entity.DoctorRaw{
	{Name: "Christy Schumm", Timezone: "Australia/Sydney", DayOfWeek: "Wednesday", AvailableAt: "9:00AM", AvailableUntil: "10:00AM"},
	{Name: "Christy Schumm", Timezone: "Australia/Sydney", DayOfWeek: "Monday", AvailableAt: " 9:00AM", AvailableUntil: "10:30AM "},
	{Name: "Dr. Geovany Keebler", Timezone: "Australia/Perth", DayOfWeek: "Thursday", AvailableAt: "7:00AM", AvailableUntil: "2:00PM"},
	{Name: "Christy Schumm", Timezone: "Australia/Sydney", DayOfWeek: "Monday", AvailableAt: "1:00PM", AvailableUntil: "1:30PM"},
}

func newTestCatalog(t *testing.T, source *mockDoctorSource, cacheSize int) DoctorUsecase {
	t.Helper()
	cache, err := service.NewSlotCache(cacheSize, quietLogger())
	require.NoError(t, err)
	return NewDoctorUsecase(quietLogger(), source, cache, 30*time.Minute)
}

func TestListDoctorsFetchesOnce(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil).Once()
	catalog := newTestCatalog(t, source, 16)
	ctx := context.Background()

	doctors, err := catalog.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Christy Schumm", doctors[0].ID)
	assert.Equal(t, "Dr. Geovany Keebler", doctors[1].ID)

	_, err = catalog.ListDoctors(ctx)
	require.NoError(t, err)
	source.AssertNumberOfCalls(t, "FetchRawSchedules", 1)
}

func TestListDoctorsEmptyIsNotAnError(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return([]entity.DoctorRaw{}, nil)
	catalog := newTestCatalog(t, source, 0)

	doctors, err := catalog.ListDoctors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doctors)
	assert.Empty(t, doctors)
}

func TestListDoctorsSourceFailureThenRefresh(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(nil, errors.New("timeout")).Once()
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil).Once()
	catalog := newTestCatalog(t, source, 0)
	ctx := context.Background()

	_, err := catalog.ListDoctors(ctx)
	assert.ErrorIs(t, err, ErrDoctorSourceUnavailable)

	doctors, err := catalog.RefreshDoctors(ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
}

func TestRefreshDoctorsReplacesCatalog(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil).Once()
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw[2:3], nil).Once()
	catalog := newTestCatalog(t, source, 16)
	ctx := context.Background()

	_, err := catalog.ListDoctors(ctx)
	require.NoError(t, err)

	doctors, err := catalog.RefreshDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)

	_, err = catalog.GetDoctor(ctx, "Christy Schumm")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGetDoctor(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil)
	catalog := newTestCatalog(t, source, 0)
	ctx := context.Background()

	doctor, err := catalog.GetDoctor(ctx, "Christy Schumm")
	require.NoError(t, err)
	assert.Equal(t, "Australia/Sydney", doctor.Timezone)
	require.Len(t, doctor.Schedules, 3)
	assert.Equal(t, "Monday", doctor.Schedules[0].DayOfWeek)
	assert.Equal(t, "9:00AM", doctor.Schedules[0].AvailableAt)
	assert.Equal(t, "Monday", doctor.Schedules[1].DayOfWeek)
	assert.Equal(t, "Wednesday", doctor.Schedules[2].DayOfWeek)

	_, err = catalog.GetDoctor(ctx, "nobody")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestSlotsFor(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil)
	catalog := newTestCatalog(t, source, 16)
	ctx := context.Background()

	slots, err := catalog.SlotsFor(ctx, "Christy Schumm", "Monday")
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, "Christy Schumm_Monday_09:00", slots[0].ID)
	assert.Equal(t, "Christy Schumm_Monday_10:00", slots[2].ID)
	assert.Equal(t, "Christy Schumm_Monday_13:00", slots[3].ID)
	assert.Equal(t, "Australia/Sydney", slots[3].Timezone)

	slots, err = catalog.SlotsFor(ctx, "Christy Schumm", "Sunday")
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = catalog.SlotsFor(ctx, "nobody", "Monday")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorAvailability(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil)
	catalog := newTestCatalog(t, source, 0)

	doctor, sections, err := catalog.DoctorAvailability(context.Background(), "Christy Schumm")
	require.NoError(t, err)
	assert.Equal(t, "Christy Schumm", doctor.Name)
	require.Len(t, sections, 3)
	assert.Equal(t, "Monday", sections[0].Title)
	assert.Equal(t, "9:00AM - 10:30AM", sections[0].Subtitle)
	assert.Len(t, sections[0].Slots, 3)
	assert.Len(t, sections[1].Slots, 1)
	assert.Equal(t, "Wednesday", sections[2].Title)
	assert.Len(t, sections[2].Slots, 2)
}

func TestFindSlot(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil)
	catalog := newTestCatalog(t, source, 16)
	ctx := context.Background()

	slot, err := catalog.FindSlot(ctx, "Dr. Geovany Keebler", "Dr. Geovany Keebler_Thursday_13:30")
	require.NoError(t, err)
	assert.Equal(t, "1:30PM", slot.StartTime)
	assert.Equal(t, "2:00PM", slot.EndTime)

	_, err = catalog.FindSlot(ctx, "Dr. Geovany Keebler", "Dr. Geovany Keebler_Thursday_14:00")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

// gatedSource blocks every fetch until release is closed or the fetch ctx ends
type gatedSource struct {
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func newGatedSource() *gatedSource {
	return &gatedSource{started: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSource) FetchRawSchedules(ctx context.Context) ([]entity.DoctorRaw, error) {
	if s.calls.Add(1) == 1 {
		close(s.started)
	}
	select {
	case <-s.release:
		return sampleRaw, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestListDoctorsSharedFetchSurvivesFirstCallerCancel(t *testing.T) {
	source := newGatedSource()
	catalog := NewDoctorUsecase(quietLogger(), source, nil, 30*time.Minute)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := catalog.ListDoctors(firstCtx)
		firstErr <- err
	}()
	<-source.started

	type result struct {
		doctors []entity.Doctor
		err     error
	}
	second := make(chan result, 1)
	go func() {
		doctors, err := catalog.ListDoctors(context.Background())
		second <- result{doctors, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(source.release)
	select {
	case res := <-second:
		require.NoError(t, res.err)
		assert.Len(t, res.doctors, 2)
	case <-time.After(time.Second):
		t.Fatal("live caller did not return")
	}
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestCatalogReturnsCopies(t *testing.T) {
	source := new(mockDoctorSource)
	source.On("FetchRawSchedules", mock.Anything).Return(sampleRaw, nil).Once()
	catalog := newTestCatalog(t, source, 0)
	ctx := context.Background()

	doctors, err := catalog.ListDoctors(ctx)
	require.NoError(t, err)
	doctors[0].Name = "changed"
	doctors[0].Schedules[0].DayOfWeek = "Sunday"

	doctor, err := catalog.GetDoctor(ctx, "Christy Schumm")
	require.NoError(t, err)
	assert.Equal(t, "Christy Schumm", doctor.Name)
	assert.Equal(t, "Monday", doctor.Schedules[0].DayOfWeek)

	doctor.Schedules[0].AvailableAt = "1:00AM"
	again, err := catalog.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9:00AM", again[0].Schedules[0].AvailableAt)
	source.AssertNumberOfCalls(t, "FetchRawSchedules", 1)
}
