package repository

import (
	"context"

	"go-doctor-appointment/internal/domain/entity"
)

// DoctorSource fetches the raw, ungrouped schedule records
type DoctorSource interface {
	FetchRawSchedules(ctx context.Context) ([]entity.DoctorRaw, error)
}
