package repository

import (
	"context"
	"errors"
	"fmt"

	"go-doctor-appointment/internal/domain/entity"
	domainRepo "go-doctor-appointment/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresAppointmentStore struct {
	db  *gorm.DB
	key string
}

// NewPostgresAppointmentStore keeps the appointment blob in one key_values row.
// The table must exist; see MigrateKeyValues.
func NewPostgresAppointmentStore(db *gorm.DB, key string) domainRepo.AppointmentStore {
	return &postgresAppointmentStore{
		db:  db,
		key: key,
	}
}

// MigrateKeyValues creates or updates the key_values table
func MigrateKeyValues(db *gorm.DB) error {
	return db.AutoMigrate(&entity.KeyValue{})
}

func (s *postgresAppointmentStore) LoadBlob(ctx context.Context) (string, bool, error) {
	var row entity.KeyValue
	err := s.db.WithContext(ctx).Where("key = ?", s.key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find key %s: %w", s.key, err)
	}
	return row.Value, true, nil
}

func (s *postgresAppointmentStore) SaveBlob(ctx context.Context, blob string) error {
	row := entity.KeyValue{Key: s.key, Value: blob}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert key %s: %w", s.key, err)
	}
	return nil
}
