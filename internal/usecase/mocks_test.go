package usecase

import (
	"context"
	"io"

	"go-doctor-appointment/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type mockAppointmentStore struct {
	mock.Mock
}

func (m *mockAppointmentStore) LoadBlob(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockAppointmentStore) SaveBlob(ctx context.Context, blob string) error {
	args := m.Called(ctx, blob)
	return args.Error(0)
}

type mockDoctorSource struct {
	mock.Mock
}

func (m *mockDoctorSource) FetchRawSchedules(ctx context.Context) ([]entity.DoctorRaw, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).([]entity.DoctorRaw)
	return raw, args.Error(1)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
