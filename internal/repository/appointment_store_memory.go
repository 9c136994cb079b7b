package repository

import (
	"context"
	"sync"

	domainRepo "go-doctor-appointment/internal/domain/repository"
)

// MemoryAppointmentStore holds the blob in process memory. Contents are lost on exit.
type MemoryAppointmentStore struct {
	mu    sync.RWMutex
	blob  string
	saved bool
	saves int
}

var _ domainRepo.AppointmentStore = (*MemoryAppointmentStore)(nil)

func NewMemoryAppointmentStore() *MemoryAppointmentStore {
	return &MemoryAppointmentStore{}
}

func (s *MemoryAppointmentStore) LoadBlob(ctx context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blob, s.saved, nil
}

func (s *MemoryAppointmentStore) SaveBlob(ctx context.Context, blob string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = blob
	s.saved = true
	s.saves++
	return nil
}

// Saves returns how many times SaveBlob has been called
func (s *MemoryAppointmentStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
